package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caucamais/MAIS-Platform/internal/domain"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, full_name, role, territory_zone,
	municipality, phone, avatar_url, is_password_changed, created_at, updated_at, last_login`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (tabla user_profiles).
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para perfiles.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo perfil (solo seeding; el aprovisionamiento real es externo).
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO user_profiles (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.FullName, string(u.Role), string(u.TerritoryZone),
		nullIfEmpty(u.Municipality), nullIfEmpty(u.Phone), nullIfEmpty(u.AvatarURL),
		u.IsPasswordChanged, u.CreatedAt, u.UpdatedAt, u.LastLogin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert user_profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get user_profile by id: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un perfil por email. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles WHERE email = $1 LIMIT 1`
	u, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("get user_profile by email: %w", err)
	}
	return u, nil
}

// ListAll lista todos los perfiles, más reciente primero.
func (r *UserRepo) ListAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM user_profiles ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list user_profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user_profile: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// UpdateProfile actualiza los campos editables del perfil y refresca updated_at.
func (r *UserRepo) UpdateProfile(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE user_profiles
		SET full_name = $2, municipality = $3, phone = $4, avatar_url = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.FullName, nullIfEmpty(u.Municipality), nullIfEmpty(u.Phone), nullIfEmpty(u.AvatarURL),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update user_profile: %w", err)
	}
	return nil
}

// UpdateLastLogin marca la última entrada del usuario.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE user_profiles SET last_login = $2, updated_at = $2 WHERE id = $1`,
		id, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}

// UpdatePassword reemplaza el hash y fija is_password_changed en true.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE user_profiles SET password_hash = $2, is_password_changed = true, updated_at = $3 WHERE id = $1`,
		id, passwordHash, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// scanUser escanea una fila de user_profiles. Devuelve (nil, nil) en pgx.ErrNoRows.
func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var role, zone string
	var municipality, phone, avatar *string
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &role, &zone,
		&municipality, &phone, &avatar, &u.IsPasswordChanged,
		&u.CreatedAt, &u.UpdatedAt, &u.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.Role = entity.Role(role)
	u.TerritoryZone = entity.Zone(zone)
	u.Municipality = deref(municipality)
	u.Phone = deref(phone)
	u.AvatarURL = deref(avatar)
	return &u, nil
}
