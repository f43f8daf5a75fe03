// FILE: internal/controller/dashboard_controller.go
package controller

import (
	"errors"

	"harvestguard-be/internal/dto"
	"harvestguard-be/internal/pkg/serverutils"
	"harvestguard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetRisks(ctx *fiber.Ctx) error
	GetRecommendations(ctx *fiber.Ctx) error
	GetTracker(ctx *fiber.Ctx) error
	SubmitFeedback(ctx *fiber.Ctx) error
}

type dashboardController struct {
	riskService           service.IRiskService
	recommendationService service.IRecommendationService
	trackerService        service.ITrackerService
}

func NewDashboardController(
	riskService service.IRiskService,
	recommendationService service.IRecommendationService,
	trackerService service.ITrackerService,
) IDashboardController {
	return &dashboardController{
		riskService:           riskService,
		recommendationService: recommendationService,
		trackerService:        trackerService,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard")
	h.Get("/risks", c.GetRisks)
	h.Get("/recommendations", c.GetRecommendations)
	h.Get("/tracker", c.GetTracker)
	h.Post("/recommendations/:id/feedback", c.SubmitFeedback)
}

func guardStatus(err error) (int, bool) {
	if errors.Is(err, service.ErrLocationNotAvailable) || errors.Is(err, service.ErrSelectionIncomplete) {
		return fiber.StatusUnprocessableEntity, true
	}
	return 0, false
}

func (c *dashboardController) GetRisks(ctx *fiber.Ctx) error {
	res, err := c.riskService.GetRisks(ctx.Context())
	if err != nil {
		if code, ok := guardStatus(err); ok {
			return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *dashboardController) GetRecommendations(ctx *fiber.Ctx) error {
	res, err := c.recommendationService.GetRecommendations(ctx.Context())
	if err != nil {
		if code, ok := guardStatus(err); ok {
			return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *dashboardController) GetTracker(ctx *fiber.Ctx) error {
	res, err := c.trackerService.GetTracker(ctx.Context())
	if err != nil {
		if code, ok := guardStatus(err); ok {
			return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *dashboardController) SubmitFeedback(ctx *fiber.Ctx) error {
	productID := ctx.Params("id")
	if productID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "product id is required"))
	}

	var req dto.ProductFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.recommendationService.SubmitFeedback(ctx.Context(), productID, &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"saved": true}))
}
