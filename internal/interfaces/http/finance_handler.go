package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caucamais/MAIS-Platform/internal/application/dashboard"
	"github.com/caucamais/MAIS-Platform/internal/application/dto"
	"github.com/caucamais/MAIS-Platform/internal/application/session"
)

// FinanceHandler expone los registros financieros visibles y su resumen.
type FinanceHandler struct {
	mgr *session.Manager
}

// NewFinanceHandler construye el handler de finanzas.
func NewFinanceHandler(mgr *session.Manager) *FinanceHandler {
	return &FinanceHandler{mgr: mgr}
}

// List godoc
// @Summary      Registros financieros visibles para la sesión
// @Tags         finances
// @Produce      json
// @Success      200  {array}  dto.FinanceResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/finances [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	sess, err := currentSession(c, h.mgr)
	if sess == nil {
		return err
	}
	return c.JSON(dto.FromFinances(sess.State().Finances()))
}

// Summary godoc
// @Summary      Resumen financiero del alcance de la sesión
// @Tags         finances
// @Produce      json
// @Success      200  {object}  dto.FinanceSummaryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/finances/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	sess, err := currentSession(c, h.mgr)
	if sess == nil {
		return err
	}
	sum := dashboard.SummarizeFinances(sess.State().Finances())
	return c.JSON(dto.FromFinanceSummary(sum))
}
