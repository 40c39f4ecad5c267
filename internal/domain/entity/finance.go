package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignFinance registro financiero de campaña por zona (y opcionalmente municipio).
// Montos en una sola moneda (COP). La invariante budget_used <= budget_allocated es
// responsabilidad del backend de datos: aquí se muestra, no se rechaza.
type CampaignFinance struct {
	ID              string
	TerritoryZone   Zone
	Municipality    string // opcional, vacío = registro de toda la zona
	Income          decimal.Decimal
	Expenses        decimal.Decimal
	BudgetAllocated decimal.Decimal
	BudgetUsed      decimal.Decimal
	LastUpdated     time.Time
	UpdatedBy       string
}

// Balance ingresos menos gastos.
func (f *CampaignFinance) Balance() decimal.Decimal {
	return f.Income.Sub(f.Expenses)
}

// BudgetExecution porcentaje de ejecución presupuestal (0 si no hay presupuesto asignado).
func (f *CampaignFinance) BudgetExecution() decimal.Decimal {
	if f.BudgetAllocated.IsZero() {
		return decimal.Zero
	}
	return f.BudgetUsed.Div(f.BudgetAllocated).Mul(decimal.NewFromInt(100)).Round(2)
}
