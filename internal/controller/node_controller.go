package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studyhub-be/internal/apperror"
	"studyhub-be/internal/dto"
	"studyhub-be/internal/pkg/serverutils"
	"studyhub-be/internal/service"
)

type INodeController interface {
	RegisterRoutes(r fiber.Router)
	GetRoots(ctx *fiber.Ctx) error
	GetChildren(ctx *fiber.Ctx) error
	GetSubtree(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Move(ctx *fiber.Ctx) error
	UpdateProgress(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type nodeController struct {
	service service.INodeService
}

func NewNodeController(service service.INodeService) INodeController {
	return &nodeController{service: service}
}

func (c *nodeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/node/v1")
	h.Get("", c.GetRoots)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Get(":id/children", c.GetChildren)
	h.Get(":id/subtree", c.GetSubtree)
	h.Put(":id", c.Update)
	h.Put(":id/move", c.Move)
	h.Put(":id/progress", c.UpdateProgress)
	h.Delete(":id", c.Delete)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.ValidationFailed("id", "invalid id")
	}
	return id, nil
}

func (c *nodeController) GetRoots(ctx *fiber.Ctx) error {
	res, err := c.service.GetRoots(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get root nodes", res))
}

func (c *nodeController) GetChildren(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetChildren(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get children", res))
}

func (c *nodeController) GetSubtree(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetSubtree(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get subtree", res))
}

func (c *nodeController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show node", res))
}

func (c *nodeController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create node", res))
}

func (c *nodeController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update node", res))
}

func (c *nodeController) Move(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.MoveNodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Move(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move node", res))
}

func (c *nodeController) UpdateProgress(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNodeProgressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateProgress(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update progress", res))
}

func (c *nodeController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete node", nil))
}
