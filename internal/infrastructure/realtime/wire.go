package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// Representación en el cable de los eventos (snake_case, igual que las tablas).

type wireMessage struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	SenderRole     string    `json:"sender_role"`
	Content        string    `json:"content"`
	TerritoryZone  *string   `json:"territory_zone,omitempty"`
	IsUrgent       bool      `json:"is_urgent"`
	IsConfidential bool      `json:"is_confidential"`
	CreatedAt      time.Time `json:"created_at"`
	ReadBy         []string  `json:"read_by"`
}

func (w *wireMessage) toEntity() *entity.Message {
	m := &entity.Message{
		ID:             w.ID,
		SenderID:       w.SenderID,
		SenderName:     w.SenderName,
		SenderRole:     entity.Role(w.SenderRole),
		Content:        w.Content,
		IsUrgent:       w.IsUrgent,
		IsConfidential: w.IsConfidential,
		CreatedAt:      w.CreatedAt,
		ReadBy:         w.ReadBy,
	}
	if w.TerritoryZone != nil {
		z := entity.Zone(*w.TerritoryZone)
		m.TerritoryZone = &z
	}
	return m
}

func fromMessage(m *entity.Message) wireMessage {
	w := wireMessage{
		ID:             m.ID,
		SenderID:       m.SenderID,
		SenderName:     m.SenderName,
		SenderRole:     string(m.SenderRole),
		Content:        m.Content,
		IsUrgent:       m.IsUrgent,
		IsConfidential: m.IsConfidential,
		CreatedAt:      m.CreatedAt,
		ReadBy:         m.ReadBy,
	}
	if m.TerritoryZone != nil {
		z := string(*m.TerritoryZone)
		w.TerritoryZone = &z
	}
	return w
}

type wireUser struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	FullName          string     `json:"full_name"`
	Role              string     `json:"role"`
	TerritoryZone     string     `json:"territory_zone"`
	Municipality      string     `json:"municipality,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	AvatarURL         string     `json:"avatar_url,omitempty"`
	IsPasswordChanged bool       `json:"is_password_changed"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
}

func (w *wireUser) toEntity() *entity.User {
	return &entity.User{
		ID:                w.ID,
		Email:             w.Email,
		FullName:          w.FullName,
		Role:              entity.Role(w.Role),
		TerritoryZone:     entity.Zone(w.TerritoryZone),
		Municipality:      w.Municipality,
		Phone:             w.Phone,
		AvatarURL:         w.AvatarURL,
		IsPasswordChanged: w.IsPasswordChanged,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
		LastLogin:         w.LastLogin,
	}
}

func fromUser(u *entity.User) wireUser {
	return wireUser{
		ID:                u.ID,
		Email:             u.Email,
		FullName:          u.FullName,
		Role:              string(u.Role),
		TerritoryZone:     string(u.TerritoryZone),
		Municipality:      u.Municipality,
		Phone:             u.Phone,
		AvatarURL:         u.AvatarURL,
		IsPasswordChanged: u.IsPasswordChanged,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
		LastLogin:         u.LastLogin,
	}
}

// PublishMessage difunde la inserción de un mensaje a todas las sesiones.
func (f *Feed) PublishMessage(ctx context.Context, m *entity.Message) error {
	payload, err := json.Marshal(fromMessage(m))
	if err != nil {
		return fmt.Errorf("encode mensaje: %w", err)
	}
	if err := f.client.Publish(ctx, channelMessages, payload).Err(); err != nil {
		return fmt.Errorf("publish mensaje: %w", err)
	}
	return nil
}

// PublishUserUpdate difunde la actualización de un perfil (sin password_hash).
func (f *Feed) PublishUserUpdate(ctx context.Context, u *entity.User) error {
	payload, err := json.Marshal(fromUser(u))
	if err != nil {
		return fmt.Errorf("encode perfil: %w", err)
	}
	if err := f.client.Publish(ctx, channelProfiles, payload).Err(); err != nil {
		return fmt.Errorf("publish perfil: %w", err)
	}
	return nil
}
