package entity

import "time"

// Role rol político dentro de la estructura organizativa del movimiento.
type Role string

// Roles válidos, de mayor a menor jerarquía.
const (
	RoleComiteEjecutivoNacional Role = "comite_ejecutivo_nacional"
	RoleLiderRegional           Role = "lider_regional"
	RoleComiteDepartamental     Role = "comite_departamental"
	RoleCandidato               Role = "candidato"
	RoleInfluenciadorDigital    Role = "influenciador_digital"
	RoleLiderComunitario        Role = "lider_comunitario"
	RoleVotanteSimpatizante     Role = "votante_simpatizante"
)

// RoleHierarchy orden total estricto de roles para comparaciones de permisos.
// Mayor número = mayor jerarquía. No hay empates.
var RoleHierarchy = map[Role]int{
	RoleComiteEjecutivoNacional: 7,
	RoleLiderRegional:           6,
	RoleComiteDepartamental:     5,
	RoleCandidato:               4,
	RoleInfluenciadorDigital:    3,
	RoleLiderComunitario:        2,
	RoleVotanteSimpatizante:     1,
}

// roleNames nombres de rol para presentación.
var roleNames = map[Role]string{
	RoleComiteEjecutivoNacional: "Comité Ejecutivo Nacional",
	RoleLiderRegional:           "Líder Regional",
	RoleComiteDepartamental:     "Comité Departamental",
	RoleCandidato:               "Candidato",
	RoleInfluenciadorDigital:    "Influenciador Digital",
	RoleLiderComunitario:        "Líder Comunitario",
	RoleVotanteSimpatizante:     "Votante Simpatizante",
}

// AllRoles todos los roles en orden descendente de jerarquía.
var AllRoles = []Role{
	RoleComiteEjecutivoNacional,
	RoleLiderRegional,
	RoleComiteDepartamental,
	RoleCandidato,
	RoleInfluenciadorDigital,
	RoleLiderComunitario,
	RoleVotanteSimpatizante,
}

// Level devuelve el nivel jerárquico del rol (0 si el rol no existe).
func (r Role) Level() int {
	return RoleHierarchy[r]
}

// Valid reporta si el rol es uno de los 7 conocidos.
func (r Role) Valid() bool {
	_, ok := RoleHierarchy[r]
	return ok
}

// DisplayName nombre legible del rol.
func (r Role) DisplayName() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return string(r)
}

// User representa un perfil de usuario de la plataforma.
// El aprovisionamiento de cuentas es externo; la plataforma solo lee y actualiza perfiles.
type User struct {
	ID                string
	Email             string
	PasswordHash      string // bcrypt hash, nunca plano en dominio después de persistir
	FullName          string
	Role              Role
	TerritoryZone     Zone
	Municipality      string // opcional
	Phone             string // opcional
	AvatarURL         string // opcional
	IsPasswordChanged bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastLogin         *time.Time
}
