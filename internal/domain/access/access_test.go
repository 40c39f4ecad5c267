package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caucamais/MAIS-Platform/internal/domain/access"
	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

func userWith(role entity.Role, zone entity.Zone) *entity.User {
	return &entity.User{ID: "u-test", Role: role, TerritoryZone: zone}
}

func zonePtr(z entity.Zone) *entity.Zone { return &z }

// ──────────────────────────────────────────────────────────────────────────────
// HasMinimumRole
// ──────────────────────────────────────────────────────────────────────────────

// Para todo par de roles: el acceso se niega siempre que el nivel del usuario
// sea menor al requerido, sin importar la zona.
func TestHasMinimumRole_OrdenTotalDeJerarquia(t *testing.T) {
	for _, userRole := range entity.AllRoles {
		for _, required := range entity.AllRoles {
			u := userWith(userRole, entity.ZonaNorte)
			got := access.HasMinimumRole(u, required)
			want := userRole.Level() >= required.Level()
			assert.Equal(t, want, got,
				"rol %s contra requerido %s", userRole, required)
		}
	}
}

func TestHasMinimumRole_UsuarioNil(t *testing.T) {
	assert.False(t, access.HasMinimumRole(nil, entity.RoleVotanteSimpatizante),
		"sin usuario no hay permisos")
}

func TestHasMinimumRole_RolDesconocidoNivelCero(t *testing.T) {
	u := userWith(entity.Role("rol_inexistente"), entity.ZonaSur)
	assert.False(t, access.HasMinimumRole(u, entity.RoleVotanteSimpatizante),
		"un rol desconocido no alcanza ni el nivel mínimo")
	// Pero sí "alcanza" otro rol desconocido (ambos nivel 0): la función es total.
	assert.True(t, access.HasMinimumRole(u, entity.Role("otro_desconocido")))
}

// ──────────────────────────────────────────────────────────────────────────────
// HasZoneAccess
// ──────────────────────────────────────────────────────────────────────────────

// El Comité Ejecutivo Nacional accede a cualquier zona.
func TestHasZoneAccess_ComiteNacionalAccedeATodas(t *testing.T) {
	u := userWith(entity.RoleComiteEjecutivoNacional, entity.ZonaCentro)
	for _, z := range entity.AllZones {
		assert.True(t, access.HasZoneAccess(u, z),
			"comité nacional debe acceder a %s", z)
	}
}

// Cualquier otro rol solo accede a su propia zona.
func TestHasZoneAccess_OtrosRolesSoloSuZona(t *testing.T) {
	for _, role := range entity.AllRoles {
		if role == entity.RoleComiteEjecutivoNacional {
			continue
		}
		u := userWith(role, entity.ZonaNorte)
		for _, z := range entity.AllZones {
			want := z == entity.ZonaNorte
			assert.Equal(t, want, access.HasZoneAccess(u, z),
				"rol %s en zona_norte contra %s", role, z)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccess
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccess_NivelInsuficienteNiegaSinImportarZona(t *testing.T) {
	u := userWith(entity.RoleLiderComunitario, entity.ZonaSur)
	// Nivel insuficiente: la zona propia no salva el chequeo de jerarquía.
	assert.False(t, access.CanAccess(u, entity.RoleCandidato, zonePtr(entity.ZonaSur)))
	assert.False(t, access.CanAccess(u, entity.RoleCandidato, nil))
}

func TestCanAccess_SinZonaObjetivoSoloChequeaJerarquia(t *testing.T) {
	u := userWith(entity.RoleCandidato, entity.ZonaOriente)
	assert.True(t, access.CanAccess(u, entity.RoleLiderComunitario, nil))
	assert.True(t, access.CanAccess(u, entity.RoleCandidato, nil))
}

func TestCanAccess_ZonaAjenaNiegaAunConJerarquia(t *testing.T) {
	u := userWith(entity.RoleLiderRegional, entity.ZonaNorte)
	assert.False(t, access.CanAccess(u, entity.RoleVotanteSimpatizante, zonePtr(entity.ZonaSur)),
		"líder regional de zona_norte no puede actuar sobre zona_sur")
	assert.True(t, access.CanAccess(u, entity.RoleVotanteSimpatizante, zonePtr(entity.ZonaNorte)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad de mensajes y finanzas
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: líder regional de zona_norte.
// M1 (zona_sur) no visible; M2 (difusión) visible; M3 (zona_norte) visible.
func TestCanSeeMessage_FiltradoTerritorial(t *testing.T) {
	u := userWith(entity.RoleLiderRegional, entity.ZonaNorte)

	m1 := &entity.Message{ID: "m1", TerritoryZone: zonePtr(entity.ZonaSur)}
	m2 := &entity.Message{ID: "m2"} // difusión general
	m3 := &entity.Message{ID: "m3", TerritoryZone: zonePtr(entity.ZonaNorte)}

	assert.False(t, access.CanSeeMessage(u, m1), "mensaje de zona ajena debe filtrarse")
	assert.True(t, access.CanSeeMessage(u, m2), "difusión general visible en toda zona")
	assert.True(t, access.CanSeeMessage(u, m3), "mensaje de la propia zona visible")
}

// Un mensaje de difusión es visible para todos los roles en todas las zonas.
func TestCanSeeMessage_DifusionVisibleParaTodos(t *testing.T) {
	broadcast := &entity.Message{ID: "b1"}
	for _, role := range entity.AllRoles {
		for _, zone := range entity.AllZones {
			assert.True(t, access.CanSeeMessage(userWith(role, zone), broadcast),
				"difusión debe ser visible para %s en %s", role, zone)
		}
	}
}

func TestCanSeeFinance_ComiteNacionalVeTodo(t *testing.T) {
	u := userWith(entity.RoleComiteEjecutivoNacional, entity.ZonaCentro)
	for _, z := range entity.AllZones {
		f := &entity.CampaignFinance{ID: "f-" + string(z), TerritoryZone: z}
		assert.True(t, access.CanSeeFinance(u, f))
	}
}

func TestCanSeeFinance_ZonaAjenaFiltrada(t *testing.T) {
	u := userWith(entity.RoleComiteDepartamental, entity.ZonaOccidente)
	assert.True(t, access.CanSeeFinance(u, &entity.CampaignFinance{TerritoryZone: entity.ZonaOccidente}))
	assert.False(t, access.CanSeeFinance(u, &entity.CampaignFinance{TerritoryZone: entity.ZonaCentro}))
}
