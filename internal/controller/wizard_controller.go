// FILE: internal/controller/wizard_controller.go
package controller

import (
	"errors"

	"harvestguard-be/internal/dto"
	"harvestguard-be/internal/pkg/serverutils"
	"harvestguard-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type IWizardController interface {
	RegisterRoutes(r fiber.Router)
	GetState(ctx *fiber.Ctx) error
	GetCrops(ctx *fiber.Ctx) error
	SelectCrop(ctx *fiber.Ctx) error
	Back(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type wizardController struct {
	service service.IWizardService
}

func NewWizardController(service service.IWizardService) IWizardController {
	return &wizardController{service: service}
}

func (c *wizardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wizard")
	h.Get("/state", c.GetState)
	h.Get("/crops", c.GetCrops)
	h.Post("/crop", c.SelectCrop)
	h.Post("/back", c.Back)
	h.Post("/reset", c.Reset)
}

func (c *wizardController) GetState(ctx *fiber.Ctx) error {
	res, err := c.service.State(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *wizardController) GetCrops(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse(c.service.Crops()))
}

func (c *wizardController) SelectCrop(ctx *fiber.Ctx) error {
	var req dto.SelectCropRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SelectCrop(ctx.Context(), req.Crop)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedCrop) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *wizardController) Back(ctx *fiber.Ctx) error {
	var req dto.BackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if err := validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Back(ctx.Context(), req.From)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *wizardController) Reset(ctx *fiber.Ctx) error {
	res, err := c.service.ResetAll(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}
