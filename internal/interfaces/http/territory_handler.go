package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caucamais/MAIS-Platform/internal/application/dto"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/territory"
)

// TerritoryHandler expone el registro territorial. Los datos son públicos
// dentro de la plataforma: toda sesión autenticada puede consultarlos.
type TerritoryHandler struct {
	registry *territory.Registry
}

// NewTerritoryHandler construye el handler territorial.
func NewTerritoryHandler(registry *territory.Registry) *TerritoryHandler {
	return &TerritoryHandler{registry: registry}
}

// List godoc
// @Summary      Las 5 zonas del Cauca con sus municipios
// @Tags         territories
// @Produce      json
// @Success      200  {array}  dto.TerritoryResponse
// @Router       /api/territories [get]
func (h *TerritoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.FromTerritories(h.registry.All()))
}

// Stats godoc
// @Summary      Agregados demográficos de una zona
// @Tags         territories
// @Produce      json
// @Success      200  {object}  dto.TerritoryStatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/territories/{zone}/stats [get]
func (h *TerritoryHandler) Stats(c *fiber.Ctx) error {
	zone := entity.Zone(c.Params("zone"))
	st := h.registry.StatsFor(zone)
	if st == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "zona desconocida"})
	}
	return c.JSON(dto.FromZoneStats(*st))
}
