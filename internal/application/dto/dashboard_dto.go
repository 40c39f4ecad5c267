package dto

import (
	"github.com/caucamais/MAIS-Platform/internal/application/dashboard"
)

// TeamStatsResponse conteo del equipo visible.
type TeamStatsResponse struct {
	Total  int            `json:"total"`
	ByRole map[string]int `json:"by_role"`
	ByZone map[string]int `json:"by_zone"`
}

// MessageStatsResponse conteos de la bandeja visible.
type MessageStatsResponse struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	Urgent int `json:"urgent"`
}

// DashboardResponse tablero completo de la sesión.
type DashboardResponse struct {
	Role         string                   `json:"role"`
	RoleName     string                   `json:"role_name"`
	Zone         string                   `json:"zone"`
	Capabilities []string                 `json:"capabilities"`
	Finances     FinanceSummaryResponse   `json:"finances"`
	Team         TeamStatsResponse        `json:"team"`
	Messages     MessageStatsResponse     `json:"messages"`
	Territories  []TerritoryStatsResponse `json:"territories"`
}

// FromOverview convierte el tablero compuesto a DTO.
func FromOverview(ov *dashboard.Overview) DashboardResponse {
	caps := make([]string, 0, len(ov.Capabilities))
	for _, c := range ov.Capabilities {
		caps = append(caps, string(c))
	}
	byRole := make(map[string]int, len(ov.Team.ByRole))
	for r, n := range ov.Team.ByRole {
		byRole[string(r)] = n
	}
	byZone := make(map[string]int, len(ov.Team.ByZone))
	for z, n := range ov.Team.ByZone {
		byZone[string(z)] = n
	}
	terr := make([]TerritoryStatsResponse, 0, len(ov.Territories))
	for _, st := range ov.Territories {
		terr = append(terr, FromZoneStats(st))
	}
	return DashboardResponse{
		Role:         string(ov.Role),
		RoleName:     ov.RoleName,
		Zone:         string(ov.Zone),
		Capabilities: caps,
		Finances:     FromFinanceSummary(ov.Finances),
		Team:         TeamStatsResponse{Total: ov.Team.Total, ByRole: byRole, ByZone: byZone},
		Messages:     MessageStatsResponse{Total: ov.Messages.Total, Unread: ov.Messages.Unread, Urgent: ov.Messages.Urgent},
		Territories:  terr,
	}
}
