package dto

import (
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/territory"
)

// CoordinatesResponse punto geográfico de un municipio.
type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MunicipalityResponse municipio con sus datos demográficos.
type MunicipalityResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Zone             string              `json:"zone"`
	Population       int                 `json:"population"`
	RegisteredVoters int                 `json:"registered_voters"`
	Coordinates      CoordinatesResponse `json:"coordinates"`
}

// TerritoryResponse zona territorial con sus municipios.
type TerritoryResponse struct {
	ID             string                 `json:"id"`
	Zone           string                 `json:"zone"`
	Name           string                 `json:"name"`
	Color          string                 `json:"color"`
	Municipalities []MunicipalityResponse `json:"municipalities"`
}

// FromTerritory convierte una zona materializada del registro.
func FromTerritory(t entity.Territory) TerritoryResponse {
	munis := make([]MunicipalityResponse, 0, len(t.Municipalities))
	for _, m := range t.Municipalities {
		munis = append(munis, MunicipalityResponse{
			ID:               m.ID,
			Name:             m.Name,
			Zone:             string(m.Zone),
			Population:       m.Population,
			RegisteredVoters: m.RegisteredVoters,
			Coordinates:      CoordinatesResponse{Lat: m.Coordinates.Lat, Lng: m.Coordinates.Lng},
		})
	}
	return TerritoryResponse{
		ID:             t.ID,
		Zone:           string(t.Zone),
		Name:           t.Name,
		Color:          t.Color,
		Municipalities: munis,
	}
}

// FromTerritories convierte el registro completo en orden estable.
func FromTerritories(ts []entity.Territory) []TerritoryResponse {
	out := make([]TerritoryResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTerritory(t))
	}
	return out
}

// TerritoryStatsResponse agregados demográficos de una zona.
type TerritoryStatsResponse struct {
	Zone             string `json:"zone"`
	Name             string `json:"name"`
	Municipalities   int    `json:"municipalities"`
	Population       int    `json:"population"`
	RegisteredVoters int    `json:"registered_voters"`
}

// FromZoneStats convierte los agregados del registro.
func FromZoneStats(s territory.ZoneStats) TerritoryStatsResponse {
	return TerritoryStatsResponse{
		Zone:             string(s.Zone),
		Name:             s.Name,
		Municipalities:   s.Municipalities,
		Population:       s.Population,
		RegisteredVoters: s.RegisteredVoters,
	}
}
