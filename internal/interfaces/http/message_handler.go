package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caucamais/MAIS-Platform/internal/application/dto"
	"github.com/caucamais/MAIS-Platform/internal/application/session"
	"github.com/caucamais/MAIS-Platform/internal/domain"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// MessageHandler expone la bandeja visible, el envío y las marcas de lectura.
type MessageHandler struct {
	mgr *session.Manager
}

// NewMessageHandler construye el handler de mensajes.
func NewMessageHandler(mgr *session.Manager) *MessageHandler {
	return &MessageHandler{mgr: mgr}
}

// List godoc
// @Summary      Mensajes visibles para la sesión (más reciente primero)
// @Tags         messages
// @Produce      json
// @Success      200  {array}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/messages [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	sess, err := currentSession(c, h.mgr)
	if sess == nil {
		return err
	}
	return c.JSON(dto.FromMessages(sess.State().Messages(), GetUserID(c)))
}

// Send godoc
// @Summary      Enviar un mensaje (zona propia; difusión solo comité nacional)
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendMessageRequest  true  "content, territory_zone opcional"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/messages [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "content es requerido"})
	}
	var zone *entity.Zone
	if in.TerritoryZone != nil && *in.TerritoryZone != "" {
		z := entity.Zone(*in.TerritoryZone)
		zone = &z
	}
	msg, err := h.mgr.SendMessage(c.Context(), GetUserID(c), session.SendMessageInput{
		Content:        in.Content,
		TargetZone:     zone,
		IsUrgent:       in.IsUrgent,
		IsConfidential: in.IsConfidential,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "zona inválida o contenido vacío"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso para enviar a esa zona"})
		case domain.ErrNoSession:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: domain.ErrNoSession.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMessage(msg, GetUserID(c)))
}

// MarkRead godoc
// @Summary      Marcar un mensaje como leído (idempotente)
// @Tags         messages
// @Produce      json
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	messageID := c.Params("id")
	if err := h.mgr.MarkMessageRead(c.Context(), GetUserID(c), messageID); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mensaje fuera del conjunto visible"})
		case domain.ErrNoSession:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: domain.ErrNoSession.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Notifications godoc
// @Summary      Drenar los avisos pendientes de la sesión
// @Tags         messages
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/notifications [get]
func (h *MessageHandler) Notifications(c *fiber.Ctx) error {
	notifs, err := h.mgr.Notifications(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: domain.ErrNoSession.Error()})
	}
	out := make([]dto.NotificationResponse, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Text:      n.Text,
			SenderID:  n.SenderID,
			CreatedAt: n.CreatedAt,
		})
	}
	return c.JSON(out)
}
