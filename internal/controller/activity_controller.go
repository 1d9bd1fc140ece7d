package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studyhub-be/internal/apperror"
	"studyhub-be/internal/dto"
	"studyhub-be/internal/pkg/serverutils"
	"studyhub-be/internal/service"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	Beacon(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
}

func NewActivityController(service service.IActivityService) IActivityController {
	return &activityController{service: service}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activity/v1")
	h.Post("beacon", c.Beacon)
	h.Get(":nodeId", c.Summary)
}

// Beacon answers 202 as soon as the message is published. Browsers send it
// via navigator.sendBeacon on tab hide and never read the body.
func (c *activityController) Beacon(ctx *fiber.Ctx) error {
	var req dto.ActivityBeaconRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.RecordBeacon(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).
		JSON(serverutils.SuccessResponse[any]("Accepted", nil))
}

func (c *activityController) Summary(ctx *fiber.Ctx) error {
	nodeId, err := uuid.Parse(ctx.Params("nodeId"))
	if err != nil {
		return apperror.ValidationFailed("nodeId", "invalid node id")
	}

	res, err := c.service.Summary(ctx.Context(), nodeId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get activity summary", res))
}
