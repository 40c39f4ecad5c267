package dto

import (
	"time"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// UserResponse salida de un perfil (sin hash de contraseña).
type UserResponse struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	FullName          string     `json:"full_name"`
	Role              string     `json:"role"`
	RoleName          string     `json:"role_name"`
	TerritoryZone     string     `json:"territory_zone"`
	Municipality      string     `json:"municipality,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	AvatarURL         string     `json:"avatar_url,omitempty"`
	IsPasswordChanged bool       `json:"is_password_changed"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
}

// FromUser convierte la entidad a DTO de respuesta.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		FullName:          u.FullName,
		Role:              string(u.Role),
		RoleName:          u.Role.DisplayName(),
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

// FromUsers convierte el listado de usuarios visibles.
func FromUsers(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// UpdateProfileRequest campos editables del propio perfil; nil = sin cambio.
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name"`
	Municipality *string `json:"municipality"`
	Phone        *string `json:"phone"`
	AvatarURL    *string `json:"avatar_url"`
}
