package dto

import (
	"time"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// SendMessageRequest entrada para enviar un mensaje. territory_zone null o
// ausente = difusión general (solo comité nacional).
type SendMessageRequest struct {
	Content        string  `json:"content" validate:"required"`
	TerritoryZone  *string `json:"territory_zone"`
	IsUrgent       bool    `json:"is_urgent"`
	IsConfidential bool    `json:"is_confidential"`
}

// MessageResponse salida de un mensaje. read efímero: calculado para el
// usuario de la sesión.
type MessageResponse struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	SenderRole     string    `json:"sender_role"`
	Content        string    `json:"content"`
	TerritoryZone  *string   `json:"territory_zone"`
	IsUrgent       bool      `json:"is_urgent"`
	IsConfidential bool      `json:"is_confidential"`
	CreatedAt      time.Time `json:"created_at"`
	Read           bool      `json:"read"`
}

// FromMessage convierte la entidad a DTO, marcando lectura para viewerID.
func FromMessage(m *entity.Message, viewerID string) MessageResponse {
	var zone *string
	if m.TerritoryZone != nil {
		z := string(*m.TerritoryZone)
		zone = &z
	}
	return MessageResponse{
		ID:             m.ID,
		SenderID:       m.SenderID,
		SenderName:     m.SenderName,
		SenderRole:     string(m.SenderRole),
		Content:        m.Content,
		TerritoryZone:  zone,
		IsUrgent:       m.IsUrgent,
		IsConfidential: m.IsConfidential,
		CreatedAt:      m.CreatedAt,
		Read:           m.IsReadBy(viewerID),
	}
}

// FromMessages convierte el listado visible, más reciente primero.
func FromMessages(msgs []*entity.Message, viewerID string) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromMessage(m, viewerID))
	}
	return out
}

// NotificationResponse aviso pendiente de la sesión.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	SenderID  string    `json:"sender_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
