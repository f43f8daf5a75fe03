// FILE: internal/controller/location_controller.go
package controller

import (
	"errors"

	"harvestguard-be/internal/dto"
	"harvestguard-be/internal/pkg/serverutils"
	"harvestguard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILocationController interface {
	RegisterRoutes(r fiber.Router)
	Detect(ctx *fiber.Ctx) error
	SubmitManual(ctx *fiber.Ctx) error
	Confirm(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type locationController struct {
	service service.ILocationService
}

func NewLocationController(service service.ILocationService) ILocationController {
	return &locationController{service: service}
}

func (c *locationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/location")
	h.Post("/detect", c.Detect)
	h.Post("/manual", c.SubmitManual)
	h.Post("/confirm", c.Confirm)
	h.Post("/reset", c.Reset)
}

func (c *locationController) Detect(ctx *fiber.Ctx) error {
	var req dto.DetectLocationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}

	// The device either reported coordinates or a failure reason. Both
	// failure variants halt the detection path with an inline message; the
	// client may retry or switch to manual entry.
	if req.Latitude == nil || req.Longitude == nil {
		if req.Reason == "unsupported" {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, service.ErrGeolocationUnsupported.Error()))
		}
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, service.ErrGeolocationDenied.Error()))
	}

	res, err := c.service.Detect(ctx.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *locationController) SubmitManual(ctx *fiber.Ctx) error {
	var req dto.ManualLocationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}

	res, err := c.service.SubmitManual(ctx.Context(), req.Query)
	if err != nil {
		if errors.Is(err, service.ErrEmptyLocation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *locationController) Confirm(ctx *fiber.Ctx) error {
	var req dto.ConfirmLocationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.service.Confirm(ctx.Context(), req.Location); err != nil {
		if errors.Is(err, service.ErrEmptyLocation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"location": req.Location, "next_step": string(service.StepCrop)}))
}

func (c *locationController) Reset(ctx *fiber.Ctx) error {
	if err := c.service.ResetLocation(ctx.Context()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(fiber.Map{"reset": true}))
}
