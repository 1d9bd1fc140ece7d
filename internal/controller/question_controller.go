package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"studyhub-be/internal/dto"
	"studyhub-be/internal/pkg/serverutils"
	"studyhub-be/internal/service"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	ReviewQueue(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	SetMastery(ctx *fiber.Ctx) error
}

type questionController struct {
	service service.IQuestionService
}

func NewQuestionController(service service.IQuestionService) IQuestionController {
	return &questionController{service: service}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/question/v1")
	h.Get("", c.List)
	h.Get("queue", c.ReviewQueue)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Put(":id/mastery", c.SetMastery)
}

func (c *questionController) List(ctx *fiber.Ctx) error {
	var filter dto.QuestionFilterRequest
	if err := ctx.QueryParser(&filter); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(filter); err != nil {
		return err
	}

	if filter.View == "tree" {
		res, err := c.service.GroupedList(ctx.Context(), &filter)
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.SuccessResponse("Success get grouped questions", res))
	}

	res, err := c.service.List(ctx.Context(), &filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get questions", res))
}

func (c *questionController) ReviewQueue(ctx *fiber.Ctx) error {
	res, err := c.service.ReviewQueue(ctx.Context(), time.Now())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get review queue", res))
}

func (c *questionController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show question", res))
}

func (c *questionController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update question", res))
}

func (c *questionController) SetMastery(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SetMasteryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetMastery(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set mastery", res))
}
