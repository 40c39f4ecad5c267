package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/caucamais/MAIS-Platform/internal/application/dashboard"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// FinanceResponse salida de un registro financiero. Montos como string decimal
// (COP), nunca float.
type FinanceResponse struct {
	ID              string          `json:"id"`
	TerritoryZone   string          `json:"territory_zone"`
	Municipality    string          `json:"municipality,omitempty"`
	Income          decimal.Decimal `json:"income"`
	Expenses        decimal.Decimal `json:"expenses"`
	Balance         decimal.Decimal `json:"balance"`
	BudgetAllocated decimal.Decimal `json:"budget_allocated"`
	BudgetUsed      decimal.Decimal `json:"budget_used"`
	BudgetExecution decimal.Decimal `json:"budget_execution"`
	LastUpdated     time.Time       `json:"last_updated"`
	UpdatedBy       string          `json:"updated_by,omitempty"`
}

// FromFinance convierte la entidad a DTO con los derivados calculados.
func FromFinance(f *entity.CampaignFinance) FinanceResponse {
	return FinanceResponse{
		ID:              f.ID,
		TerritoryZone:   string(f.TerritoryZone),
		Municipality:    f.Municipality,
		Income:          f.Income,
		Expenses:        f.Expenses,
		Balance:         f.Balance(),
		BudgetAllocated: f.BudgetAllocated,
		BudgetUsed:      f.BudgetUsed,
		BudgetExecution: f.BudgetExecution(),
		LastUpdated:     f.LastUpdated,
		UpdatedBy:       f.UpdatedBy,
	}
}

// FromFinances convierte el listado financiero visible.
func FromFinances(fins []*entity.CampaignFinance) []FinanceResponse {
	out := make([]FinanceResponse, 0, len(fins))
	for _, f := range fins {
		out = append(out, FromFinance(f))
	}
	return out
}

// FinanceSummaryResponse agregados financieros de la sesión.
type FinanceSummaryResponse struct {
	Records        int             `json:"records"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	Balance        decimal.Decimal `json:"balance"`
	TotalAllocated decimal.Decimal `json:"total_allocated"`
	TotalUsed      decimal.Decimal `json:"total_used"`
	ExecutionPct   decimal.Decimal `json:"execution_pct"`
}

// FromFinanceSummary convierte el agregado del compositor de tableros.
func FromFinanceSummary(s dashboard.FinanceSummary) FinanceSummaryResponse {
	return FinanceSummaryResponse{
		Records:        s.Records,
		TotalIncome:    s.TotalIncome,
		TotalExpenses:  s.TotalExpenses,
		Balance:        s.Balance,
		TotalAllocated: s.TotalAllocated,
		TotalUsed:      s.TotalUsed,
		ExecutionPct:   s.ExecutionPct,
	}
}
