package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/application/usecase"
	"github.com/everflown/logistics-api/internal/domain"
)

// DispatchHandler maneja las peticiones HTTP de despachos, incluida la
// confirmación de tarifa en PDF.
type DispatchHandler struct {
	uc    *usecase.DispatchUseCase
	docUC *usecase.DocumentUseCase
}

// NewDispatchHandler construye el handler.
func NewDispatchHandler(uc *usecase.DispatchUseCase, docUC *usecase.DocumentUseCase) *DispatchHandler {
	return &DispatchHandler{uc: uc, docUC: docUC}
}

// Create POST /api/dispatches
func (h *DispatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dispatch, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "orderId es requerido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la orden no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dispatch)
}

// GetByID GET /api/dispatches/:id
func (h *DispatchHandler) GetByID(c *fiber.Ctx) error {
	dispatch, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if dispatch == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "despacho no encontrado"})
	}
	return c.JSON(dispatch)
}

// Update PUT /api/dispatches/:id
func (h *DispatchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dispatch, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return statusTransitionError(c, err)
	}
	if dispatch == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "despacho no encontrado"})
	}
	return c.JSON(dispatch)
}

// RateConfirmation GET /api/dispatches/:id/rate-confirmation
func (h *DispatchHandler) RateConfirmation(c *fiber.Ctx) error {
	data, filename, err := h.docUC.RateConfirmationPDF(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "despacho no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// List GET /api/dispatches?limit=50&offset=0
func (h *DispatchHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Delete DELETE /api/dispatches/:id
func (h *DispatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "despacho eliminado"})
}
