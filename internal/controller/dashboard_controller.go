package controller

import (
	"github.com/gofiber/fiber/v2"

	"studyhub-be/internal/pkg/serverutils"
	"studyhub-be/internal/service"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Get("stats", c.GetStats)
}

func (c *dashboardController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}
