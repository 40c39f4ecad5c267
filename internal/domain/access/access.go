// Package access implementa el evaluador de permisos por rol y territorio.
// Todas las funciones son predicados puros sobre el perfil del usuario:
// no consultan la DB ni producen efectos, y la denegación nunca es un error.
package access

import "github.com/caucamais/MAIS-Platform/internal/domain/entity"

// HasMinimumRole reporta si el usuario alcanza al menos el nivel jerárquico
// del rol requerido. Total: nunca falla, un rol desconocido tiene nivel 0.
func HasMinimumRole(u *entity.User, required entity.Role) bool {
	if u == nil {
		return false
	}
	return u.Role.Level() >= required.Level()
}

// HasZoneAccess reporta si el usuario puede ver o actuar sobre datos de la zona.
// Regla única de aislamiento territorial: el Comité Ejecutivo Nacional accede a
// todas las zonas; cualquier otro rol solo a su propia zona.
func HasZoneAccess(u *entity.User, zone entity.Zone) bool {
	if u == nil {
		return false
	}
	if u.Role == entity.RoleComiteEjecutivoNacional {
		return true
	}
	return u.TerritoryZone == zone
}

// CanAccess combina jerarquía y territorio: el usuario debe alcanzar el rol
// requerido y, si hay zona objetivo, tener acceso a ella. Zona nil no restringe.
func CanAccess(u *entity.User, required entity.Role, targetZone *entity.Zone) bool {
	if !HasMinimumRole(u, required) {
		return false
	}
	if targetZone == nil {
		return true
	}
	return HasZoneAccess(u, *targetZone)
}

// CanSeeMessage reporta si el mensaje es visible para el usuario.
// Un mensaje sin zona es de difusión general: visible para todo rol en toda
// zona (ausencia de zona = "coincide con cualquier zona", nunca "con ninguna").
func CanSeeMessage(u *entity.User, m *entity.Message) bool {
	if u == nil || m == nil {
		return false
	}
	if m.TerritoryZone == nil {
		return true
	}
	return HasZoneAccess(u, *m.TerritoryZone)
}

// CanSeeUser reporta si el perfil de otro usuario es visible: la regla
// territorial aplica también al listado de equipo.
func CanSeeUser(u *entity.User, other *entity.User) bool {
	if u == nil || other == nil {
		return false
	}
	return HasZoneAccess(u, other.TerritoryZone)
}

// CanSeeFinance reporta si el registro financiero es visible para el usuario.
// Las finanzas siempre tienen zona; aplica la regla territorial directamente.
func CanSeeFinance(u *entity.User, f *entity.CampaignFinance) bool {
	if u == nil || f == nil {
		return false
	}
	return HasZoneAccess(u, f.TerritoryZone)
}
