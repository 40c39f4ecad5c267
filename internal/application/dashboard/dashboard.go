// Package dashboard compone la vista de tablero de una sesión: capacidades del
// rol más agregados financieros, de equipo, de mensajería y territoriales.
// Todos los agregados se calculan sobre el conjunto de trabajo ya filtrado de
// la sesión, de modo que el recorte territorial se hereda sin reevaluarlo aquí.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/territory"
)

// Service compositor de tableros. El registro territorial es la única fuente
// externa al conjunto de trabajo de la sesión.
type Service struct {
	registry *territory.Registry
}

// NewService crea el compositor con el registro territorial dado.
func NewService(registry *territory.Registry) *Service {
	return &Service{registry: registry}
}

// FinanceSummary agregados financieros sobre los registros visibles.
type FinanceSummary struct {
	Records        int
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	Balance        decimal.Decimal
	TotalAllocated decimal.Decimal
	TotalUsed      decimal.Decimal
	ExecutionPct   decimal.Decimal // budget_used / budget_allocated * 100
}

// TeamStats conteo del equipo visible por rol y por zona.
type TeamStats struct {
	Total  int
	ByRole map[entity.Role]int
	ByZone map[entity.Zone]int
}

// MessageStats conteos de la bandeja visible para el usuario de la sesión.
type MessageStats struct {
	Total  int
	Unread int
	Urgent int
}

// Overview tablero completo de una sesión.
type Overview struct {
	Role         entity.Role
	RoleName     string
	Zone         entity.Zone
	Capabilities []Capability
	Finances     FinanceSummary
	Team         TeamStats
	Messages     MessageStats
	Territories  []territory.ZoneStats
}

// Compose arma el tablero a partir del conjunto de trabajo de la sesión. El
// alcance territorial de los agregados ya viene dado por los almacenes; las
// estadísticas territoriales siguen la misma regla: el comité nacional ve
// todas las zonas, el resto solo la propia.
func (s *Service) Compose(u *entity.User, users []*entity.User, messages []*entity.Message, finances []*entity.CampaignFinance) *Overview {
	ov := &Overview{
		Role:         u.Role,
		RoleName:     u.Role.DisplayName(),
		Zone:         u.TerritoryZone,
		Capabilities: CapabilitiesFor(u.Role),
		Finances:     SummarizeFinances(finances),
		Team:         SummarizeTeam(users),
		Messages:     SummarizeMessages(messages, u.ID),
	}
	if u.Role == entity.RoleComiteEjecutivoNacional {
		ov.Territories = s.registry.Stats()
	} else if st := s.registry.StatsFor(u.TerritoryZone); st != nil {
		ov.Territories = []territory.ZoneStats{*st}
	}
	return ov
}

// SummarizeFinances acumula los montos de los registros visibles.
func SummarizeFinances(finances []*entity.CampaignFinance) FinanceSummary {
	sum := FinanceSummary{Records: len(finances)}
	for _, f := range finances {
		sum.TotalIncome = sum.TotalIncome.Add(f.Income)
		sum.TotalExpenses = sum.TotalExpenses.Add(f.Expenses)
		sum.TotalAllocated = sum.TotalAllocated.Add(f.BudgetAllocated)
		sum.TotalUsed = sum.TotalUsed.Add(f.BudgetUsed)
	}
	sum.Balance = sum.TotalIncome.Sub(sum.TotalExpenses)
	if !sum.TotalAllocated.IsZero() {
		sum.ExecutionPct = sum.TotalUsed.Div(sum.TotalAllocated).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return sum
}

// SummarizeTeam cuenta el equipo visible por rol y zona.
func SummarizeTeam(users []*entity.User) TeamStats {
	st := TeamStats{
		Total:  len(users),
		ByRole: make(map[entity.Role]int),
		ByZone: make(map[entity.Zone]int),
	}
	for _, u := range users {
		st.ByRole[u.Role]++
		st.ByZone[u.TerritoryZone]++
	}
	return st
}

// SummarizeMessages cuenta mensajes totales, urgentes y no leídos por el usuario.
func SummarizeMessages(messages []*entity.Message, userID string) MessageStats {
	st := MessageStats{Total: len(messages)}
	for _, m := range messages {
		if m.IsUrgent {
			st.Urgent++
		}
		if !m.IsReadBy(userID) {
			st.Unread++
		}
	}
	return st
}
