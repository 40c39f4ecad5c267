package repository

import (
	"context"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// MessageRepository define el puerto hacia el backend de mensajería.
type MessageRepository interface {
	Create(ctx context.Context, m *entity.Message) error
	// ListVisible devuelve mensajes visibles para (role, zone), más reciente
	// primero. Para el comité nacional no aplica filtro; para el resto devuelve
	// mensajes sin zona (difusión) o con la zona exacta. El mismo criterio que
	// aplica el evaluador de permisos en cliente.
	ListVisible(ctx context.Context, role entity.Role, zone entity.Zone) ([]*entity.Message, error)
	// MarkRead añade userID a read_by si no estaba. Idempotente.
	MarkRead(ctx context.Context, messageID, userID string) error
}
