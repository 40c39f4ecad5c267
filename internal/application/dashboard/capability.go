package dashboard

import "github.com/caucamais/MAIS-Platform/internal/domain/entity"

// Capability acción habilitada en el tablero según el rol de la sesión.
type Capability string

const (
	CapViewNationalOverview Capability = "view_national_overview"
	CapViewAllFinances      Capability = "view_all_finances"
	CapViewZoneFinances     Capability = "view_zone_finances"
	CapSendBroadcast        Capability = "send_broadcast"
	CapSendZoneMessage      Capability = "send_zone_message"
	CapViewTeam             Capability = "view_team"
	CapViewTerritoryStats   Capability = "view_territory_stats"
	CapManageUsers          Capability = "manage_users"
	CapModerateContent      Capability = "moderate_content"
	CapCoordinateLeaders    Capability = "coordinate_leaders"
	CapManageCandidates     Capability = "manage_candidates"
	CapViewOwnCampaign      Capability = "view_own_campaign"
	CapPublishContent       Capability = "publish_content"
	CapOrganizeCommunity    Capability = "organize_community"
)

// roleCapabilities tabla de capacidades por rol. El tablero de cada rol se
// deriva de esta tabla, no de condicionales dispersos por los handlers.
var roleCapabilities = map[entity.Role][]Capability{
	entity.RoleComiteEjecutivoNacional: {
		CapViewNationalOverview, CapViewAllFinances, CapViewZoneFinances,
		CapSendBroadcast, CapSendZoneMessage, CapViewTeam, CapViewTerritoryStats,
		CapManageUsers, CapModerateContent,
	},
	entity.RoleLiderRegional: {
		CapViewZoneFinances, CapSendZoneMessage, CapViewTeam,
		CapViewTerritoryStats, CapCoordinateLeaders,
	},
	entity.RoleComiteDepartamental: {
		CapViewZoneFinances, CapSendZoneMessage, CapViewTeam,
		CapViewTerritoryStats, CapManageCandidates,
	},
	entity.RoleCandidato: {
		CapSendZoneMessage, CapViewTeam, CapViewTerritoryStats, CapViewOwnCampaign,
	},
	entity.RoleInfluenciadorDigital: {
		CapSendZoneMessage, CapViewTerritoryStats, CapPublishContent,
	},
	entity.RoleLiderComunitario: {
		CapSendZoneMessage, CapViewTerritoryStats, CapOrganizeCommunity,
	},
	entity.RoleVotanteSimpatizante: {
		CapViewTerritoryStats,
	},
}

// CapabilitiesFor devuelve las capacidades del rol (copia; vacío si el rol es
// desconocido, nunca nil).
func CapabilitiesFor(role entity.Role) []Capability {
	caps := roleCapabilities[role]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// Has indica si el rol tiene la capacidad dada.
func Has(role entity.Role, c Capability) bool {
	for _, have := range roleCapabilities[role] {
		if have == c {
			return true
		}
	}
	return false
}
