package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caucamais/MAIS-Platform/internal/application/dto"
	"github.com/caucamais/MAIS-Platform/internal/application/session"
	"github.com/caucamais/MAIS-Platform/internal/domain"
)

// UserHandler expone el perfil propio y el equipo visible de la sesión.
type UserHandler struct {
	mgr *session.Manager
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(mgr *session.Manager) *UserHandler {
	return &UserHandler{mgr: mgr}
}

// currentSession resuelve la sesión activa o responde 401.
func currentSession(c *fiber.Ctx, mgr *session.Manager) (*session.Session, error) {
	sess, ok := mgr.Current(GetUserID(c))
	if !ok {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: domain.ErrNoSession.Error()})
	}
	return sess, nil
}

// Me godoc
// @Summary      Perfil de la sesión
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	sess, err := currentSession(c, h.mgr)
	if sess == nil {
		return err
	}
	u := sess.User()
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: domain.ErrNoSession.Error()})
	}
	return c.JSON(dto.FromUser(u))
}

// List godoc
// @Summary      Equipo visible para la sesión
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	sess, err := currentSession(c, h.mgr)
	if sess == nil {
		return err
	}
	return c.JSON(dto.FromUsers(sess.State().Users()))
}

// UpdateProfile godoc
// @Summary      Actualizar el propio perfil
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	u, err := h.mgr.UpdateProfile(c.Context(), GetUserID(c), session.ProfileUpdate{
		FullName:     in.FullName,
		Municipality: in.Municipality,
		Phone:        in.Phone,
		AvatarURL:    in.AvatarURL,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "full_name no puede quedar vacío"})
		}
		if err == domain.ErrNoSession {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: domain.ErrNoSession.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromUser(u))
}
