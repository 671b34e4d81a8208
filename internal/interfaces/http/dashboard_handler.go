package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/everflown/logistics-api/internal/application/analytics"
	"github.com/everflown/logistics-api/internal/application/dto"
)

// DashboardHandler expone los contadores agregados del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats GET /api/dashboard/stats?periodStart=2026-08-01&periodEnd=2026-08-31
//
// Sin parámetros usa el mes en curso. Fechas en formato 2006-01-02; el fin de
// período se extiende al final del día para que los extremos sean inclusivos.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	var periodStart, periodEnd time.Time
	if s := c.Query("periodStart"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodStart inválido, formato 2006-01-02"})
		}
		periodStart = t
	}
	if s := c.Query("periodEnd"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodEnd inválido, formato 2006-01-02"})
		}
		periodEnd = t.Add(24*time.Hour - time.Nanosecond)
	}

	stats, err := h.uc.GetStats(periodStart, periodEnd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}
