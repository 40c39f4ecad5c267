package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

const financeColumns = `id, territory_zone, municipality, income, expenses,
	budget_allocated, budget_used, last_updated, updated_by`

// FinanceRepo implementación del puerto FinanceRepository sobre PostgreSQL (tabla campaign_finances).
type FinanceRepo struct {
	pool *pgxpool.Pool
}

// NewFinanceRepository construye el adaptador de persistencia para finanzas de campaña.
func NewFinanceRepository(pool *pgxpool.Pool) *FinanceRepo {
	return &FinanceRepo{pool: pool}
}

// Create persiste un registro financiero (seeding y cargas administrativas).
func (r *FinanceRepo) Create(ctx context.Context, f *entity.CampaignFinance) error {
	query := `
		INSERT INTO campaign_finances (` + financeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		f.ID, string(f.TerritoryZone), nullIfEmpty(f.Municipality),
		f.Income, f.Expenses, f.BudgetAllocated, f.BudgetUsed,
		f.LastUpdated, f.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert campaign_finance: %w", err)
	}
	return nil
}

// ListVisible lista registros financieros visibles para (role, zone), más
// reciente primero. Comité nacional: todas las zonas sin filtro. Resto: solo
// la zona exacta (las finanzas siempre tienen zona, no hay registros de difusión).
func (r *FinanceRepo) ListVisible(ctx context.Context, role entity.Role, zone entity.Zone) ([]*entity.CampaignFinance, error) {
	query := `SELECT ` + financeColumns + ` FROM campaign_finances`
	var args []any
	if role != entity.RoleComiteEjecutivoNacional {
		query += ` WHERE territory_zone = $1`
		args = append(args, string(zone))
	}
	query += ` ORDER BY last_updated DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaign_finances: %w", err)
	}
	defer rows.Close()
	var list []*entity.CampaignFinance
	for rows.Next() {
		var f entity.CampaignFinance
		var zoneCol string
		var municipality *string
		if err := rows.Scan(
			&f.ID, &zoneCol, &municipality, &f.Income, &f.Expenses,
			&f.BudgetAllocated, &f.BudgetUsed, &f.LastUpdated, &f.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan campaign_finance: %w", err)
		}
		f.TerritoryZone = entity.Zone(zoneCol)
		f.Municipality = deref(municipality)
		list = append(list, &f)
	}
	return list, rows.Err()
}
