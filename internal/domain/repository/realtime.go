package repository

import (
	"context"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// Entidades y acciones del feed de cambios en tiempo real.
const (
	EventEntityMessage     = "message"
	EventEntityUserProfile = "user_profile"

	EventActionInsert = "insert"
	EventActionUpdate = "update"
)

// Event evento de cambio entregado por el feed. El feed NO filtra por permisos:
// entrega cada insert/update a todos los suscriptores y cada sesión debe
// re-aplicar el evaluador de permisos antes de mezclar (la capa de transporte
// no es de confianza para el aislamiento territorial).
type Event struct {
	Entity  string
	Action  string
	Message *entity.Message // presente si Entity == message
	User    *entity.User    // presente si Entity == user_profile
}

// RealtimeFeed puerto del canal de eventos en tiempo real.
// La suscripción entrega eventos por un canal; cancelarla cierra el canal.
type RealtimeFeed interface {
	// PublishMessage difunde la inserción de un mensaje.
	PublishMessage(ctx context.Context, m *entity.Message) error
	// PublishUserUpdate difunde la actualización de un perfil.
	PublishUserUpdate(ctx context.Context, u *entity.User) error
	// Subscribe registra un suscriptor identificado y devuelve su canal de
	// eventos junto con la función de cancelación (que cierra el canal).
	Subscribe(id string) (<-chan Event, func())
}
