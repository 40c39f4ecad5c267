package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

const messageColumns = `id, sender_id, sender_name, sender_role, content,
	territory_zone, is_urgent, is_confidential, created_at, read_by`

// MessageRepo implementación del puerto MessageRepository sobre PostgreSQL (tabla messages).
type MessageRepo struct {
	pool *pgxpool.Pool
}

// NewMessageRepository construye el adaptador de persistencia para mensajes.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// Create persiste un mensaje nuevo. read_by arranca vacío.
func (r *MessageRepo) Create(ctx context.Context, m *entity.Message) error {
	query := `
		INSERT INTO messages (` + messageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	var zone *string
	if m.TerritoryZone != nil {
		z := string(*m.TerritoryZone)
		zone = &z
	}
	readBy := m.ReadBy
	if readBy == nil {
		readBy = []string{}
	}
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.SenderID, m.SenderName, string(m.SenderRole), m.Content,
		zone, m.IsUrgent, m.IsConfidential, m.CreatedAt, readBy,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListVisible lista mensajes visibles para (role, zone), más reciente primero.
// Comité nacional: todos. Resto: difusión (zona NULL) o zona exacta, el mismo
// criterio que el evaluador de permisos aplica luego en cliente.
func (r *MessageRepo) ListVisible(ctx context.Context, role entity.Role, zone entity.Zone) ([]*entity.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages`
	var args []any
	if role != entity.RoleComiteEjecutivoNacional {
		query += ` WHERE territory_zone IS NULL OR territory_zone = $1`
		args = append(args, string(zone))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// MarkRead añade userID a read_by si no estaba. El predicado en el WHERE hace
// la operación idempotente del lado del servidor.
func (r *MessageRepo) MarkRead(ctx context.Context, messageID, userID string) error {
	query := `
		UPDATE messages
		SET read_by = array_append(read_by, $2)
		WHERE id = $1 AND NOT ($2 = ANY(read_by))`
	_, err := r.pool.Exec(ctx, query, messageID, userID)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

// scanMessage escanea una fila de messages. Devuelve (nil, nil) en pgx.ErrNoRows.
func scanMessage(row pgx.Row) (*entity.Message, error) {
	var m entity.Message
	var senderRole string
	var zone *string
	err := row.Scan(
		&m.ID, &m.SenderID, &m.SenderName, &senderRole, &m.Content,
		&zone, &m.IsUrgent, &m.IsConfidential, &m.CreatedAt, &m.ReadBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	m.SenderRole = entity.Role(senderRole)
	if zone != nil {
		z := entity.Zone(*zone)
		m.TerritoryZone = &z
	}
	return &m, nil
}
