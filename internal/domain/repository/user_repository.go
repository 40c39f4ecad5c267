package repository

import (
	"context"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// UserRepository define el puerto hacia el backend de perfiles (DIP).
// El aprovisionamiento de cuentas es externo: Create existe solo para seeding.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListAll devuelve todos los perfiles, más reciente primero. El recorte por
	// zona para roles no nacionales es responsabilidad del consumidor.
	ListAll(ctx context.Context) ([]*entity.User, error)
	// UpdateProfile actualiza campos de perfil editables (nombre, municipio,
	// teléfono, avatar) y refresca updated_at.
	UpdateProfile(ctx context.Context, user *entity.User) error
	// UpdateLastLogin marca la última entrada; escritura fire-and-forget.
	UpdateLastLogin(ctx context.Context, id string) error
	// UpdatePassword reemplaza el hash y fija is_password_changed en true.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
