package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/application/usecase"
	"github.com/everflown/logistics-api/internal/domain"
)

// CarrierHandler maneja las peticiones HTTP de transportistas.
type CarrierHandler struct {
	uc *usecase.CarrierUseCase
}

// NewCarrierHandler construye el handler.
func NewCarrierHandler(uc *usecase.CarrierUseCase) *CarrierHandler {
	return &CarrierHandler{uc: uc}
}

// Create POST /api/carriers
func (h *CarrierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarrierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	carrier, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "companyName es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el transportista ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(carrier)
}

// GetByID GET /api/carriers/:id
func (h *CarrierHandler) GetByID(c *fiber.Ctx) error {
	carrier, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if carrier == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transportista no encontrado"})
	}
	return c.JSON(carrier)
}

// Update PUT /api/carriers/:id
func (h *CarrierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCarrierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	carrier, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if carrier == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transportista no encontrado"})
	}
	return c.JSON(carrier)
}

// List GET /api/carriers?limit=50&offset=0
func (h *CarrierHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Delete DELETE /api/carriers/:id
func (h *CarrierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "transportista eliminado"})
}
