package repository

import (
	"context"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// FinanceRepository define el puerto de lectura hacia el backend financiero.
// Las finanzas se administran en una herramienta externa; aquí solo se consultan
// y se siembran datos de demostración.
type FinanceRepository interface {
	Create(ctx context.Context, f *entity.CampaignFinance) error
	// ListVisible devuelve registros financieros visibles para (role, zone),
	// más reciente primero. Comité nacional: sin filtro. Resto: zona exacta
	// (los registros financieros siempre tienen zona asignada).
	ListVisible(ctx context.Context, role entity.Role, zone entity.Zone) ([]*entity.CampaignFinance, error)
}
