package entity

// Zone zona territorial fija de operación del movimiento en el Cauca.
type Zone string

// Las 5 zonas territoriales. No se crean ni destruyen en runtime.
const (
	ZonaNorte     Zone = "zona_norte"
	ZonaCentro    Zone = "zona_centro"
	ZonaSur       Zone = "zona_sur"
	ZonaOriente   Zone = "zona_oriente"
	ZonaOccidente Zone = "zona_occidente"
)

// AllZones todas las zonas en orden estable.
var AllZones = []Zone{ZonaNorte, ZonaCentro, ZonaSur, ZonaOriente, ZonaOccidente}

// Valid reporta si la zona es una de las 5 conocidas.
func (z Zone) Valid() bool {
	_, ok := ZoneConfig[z]
	return ok
}

// DisplayName nombre legible de la zona.
func (z Zone) DisplayName() string {
	if cfg, ok := ZoneConfig[z]; ok {
		return cfg.Name
	}
	return string(z)
}

// ZoneMetadata metadatos de presentación y composición de una zona.
type ZoneMetadata struct {
	Name           string
	Color          string // hex para el mapa territorial
	Municipalities []string
}

// ZoneConfig configuración estática de las zonas: nombre, color y municipios.
var ZoneConfig = map[Zone]ZoneMetadata{
	ZonaNorte: {
		Name:           "Zona Norte",
		Color:          "#ef4444",
		Municipalities: []string{"Santander de Quilichao", "Caloto", "Guachené", "Villa Rica", "Padilla"},
	},
	ZonaCentro: {
		Name:           "Zona Centro",
		Color:          "#f59e0b",
		Municipalities: []string{"Popayán", "Timbío", "Cajibío", "Piendamó", "Morales"},
	},
	ZonaSur: {
		Name:           "Zona Sur",
		Color:          "#10b981",
		Municipalities: []string{"Bolívar", "La Sierra", "Almaguer", "San Sebastián", "Sucre"},
	},
	ZonaOriente: {
		Name:           "Zona Oriente",
		Color:          "#3b82f6",
		Municipalities: []string{"Inzá", "Belalcázar", "Páez", "Silvia", "Jambaló"},
	},
	ZonaOccidente: {
		Name:           "Zona Occidente",
		Color:          "#8b5cf6",
		Municipalities: []string{"López de Micay", "Timbiquí", "Guapi", "Argelia", "El Tambo"},
	},
}

// Coordinates par lat/lng.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Municipality municipio perteneciente a exactamente una zona.
// Inmutable después de construirse el registro territorial.
type Municipality struct {
	ID               string
	Name             string
	Zone             Zone
	Population       int
	RegisteredVoters int
	Coordinates      Coordinates
}

// Territory zona territorial con sus municipios materializados.
type Territory struct {
	ID             string
	Zone           Zone
	Name           string
	Color          string
	Municipalities []Municipality
}
