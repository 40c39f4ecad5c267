package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caucamais/MAIS-Platform/internal/application/dashboard"
	"github.com/caucamais/MAIS-Platform/internal/application/dto"
	"github.com/caucamais/MAIS-Platform/internal/application/session"
	"github.com/caucamais/MAIS-Platform/internal/domain"
)

// DashboardHandler compone el tablero de la sesión desde sus almacenes.
type DashboardHandler struct {
	mgr *session.Manager
	svc *dashboard.Service
}

// NewDashboardHandler construye el handler del tablero.
func NewDashboardHandler(mgr *session.Manager, svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{mgr: mgr, svc: svc}
}

// Get godoc
// @Summary      Tablero de la sesión: capacidades y agregados
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	sess, err := currentSession(c, h.mgr)
	if sess == nil {
		return err
	}
	u := sess.User()
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: domain.ErrNoSession.Error()})
	}
	st := sess.State()
	ov := h.svc.Compose(u, st.Users(), st.Messages(), st.Finances())
	return c.JSON(dto.FromOverview(ov))
}
