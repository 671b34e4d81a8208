package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/application/usecase"
	"github.com/everflown/logistics-api/internal/domain"
)

// FollowUpHandler maneja las peticiones HTTP de tareas de seguimiento.
type FollowUpHandler struct {
	uc *usecase.FollowUpUseCase
}

// NewFollowUpHandler construye el handler.
func NewFollowUpHandler(uc *usecase.FollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{uc: uc}
}

// Create POST /api/followups
func (h *FollowUpHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	followUp, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(followUp)
}

// GetByID GET /api/followups/:id
func (h *FollowUpHandler) GetByID(c *fiber.Ctx) error {
	followUp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if followUp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
	}
	return c.JSON(followUp)
}

// Update PUT /api/followups/:id
func (h *FollowUpHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	followUp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return statusTransitionError(c, err)
	}
	if followUp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
	}
	return c.JSON(followUp)
}

// Complete POST /api/followups/:id/complete — idempotente.
func (h *FollowUpHandler) Complete(c *fiber.Ctx) error {
	followUp, err := h.uc.Complete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if followUp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
	}
	return c.JSON(followUp)
}

// List GET /api/followups?limit=50&offset=0
func (h *FollowUpHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Urgent GET /api/followups/urgent?limit=10 — tareas abiertas de prioridad
// urgente o alta, las más próximas a vencer primero.
func (h *FollowUpHandler) Urgent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	items, err := h.uc.ListUrgent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Delete DELETE /api/followups/:id
func (h *FollowUpHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "tarea eliminada"})
}
