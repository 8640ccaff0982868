package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sagarkwankhade/CRM-Version-One/internal/application/usecase"
)

// DashboardHandler conteos agregados para el panel de admin.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Counts godoc
// @Summary      Conteos del dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Counts(c *fiber.Ctx) error {
	out, err := h.uc.Counts(GetAccount(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
