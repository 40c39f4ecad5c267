// Package territory construye el registro territorial en memoria a partir de la
// configuración estática de zonas. Los datos demográficos de municipios son un
// generador de relleno con semilla fija (no hay fuente censal conectada): el
// registro es determinista para una misma semilla e inmutable tras construirse.
package territory

import (
	"fmt"
	"math/rand"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
)

// DefaultSeed semilla por defecto del generador demográfico.
const DefaultSeed = 19

// Registry registro territorial inmutable: las 5 zonas con sus municipios.
type Registry struct {
	territories []entity.Territory
	byZone      map[entity.Zone]*entity.Territory
}

// NewRegistry genera el registro a partir de ZoneConfig. Las zonas y municipios
// se recorren en orden estable, de modo que una misma semilla produce siempre
// los mismos valores demográficos.
func NewRegistry(seed int64) *Registry {
	rng := rand.New(rand.NewSource(seed))

	r := &Registry{
		territories: make([]entity.Territory, 0, len(entity.AllZones)),
		byZone:      make(map[entity.Zone]*entity.Territory, len(entity.AllZones)),
	}

	for _, zone := range entity.AllZones {
		cfg := entity.ZoneConfig[zone]
		t := entity.Territory{
			ID:             string(zone),
			Zone:           zone,
			Name:           cfg.Name,
			Color:          cfg.Color,
			Municipalities: make([]entity.Municipality, 0, len(cfg.Municipalities)),
		}
		for i, name := range cfg.Municipalities {
			t.Municipalities = append(t.Municipalities, entity.Municipality{
				ID:               fmt.Sprintf("%s_%d", zone, i),
				Name:             name,
				Zone:             zone,
				Population:       10000 + rng.Intn(50000),
				RegisteredVoters: 5000 + rng.Intn(30000),
				Coordinates: entity.Coordinates{
					Lat: 2.4 + rng.Float64()*0.5,
					Lng: -76.6 + rng.Float64()*0.5,
				},
			})
		}
		r.territories = append(r.territories, t)
		r.byZone[zone] = &r.territories[len(r.territories)-1]
	}

	return r
}

// All devuelve las zonas materializadas en orden estable.
func (r *Registry) All() []entity.Territory {
	out := make([]entity.Territory, len(r.territories))
	copy(out, r.territories)
	return out
}

// ByZone devuelve la zona solicitada, o nil si no existe.
func (r *Registry) ByZone(zone entity.Zone) *entity.Territory {
	return r.byZone[zone]
}

// ZoneStats agregados demográficos de una zona.
type ZoneStats struct {
	Zone             entity.Zone
	Name             string
	Municipalities   int
	Population       int
	RegisteredVoters int
}

// StatsFor agregados de una zona; nil si la zona no existe.
func (r *Registry) StatsFor(zone entity.Zone) *ZoneStats {
	t := r.byZone[zone]
	if t == nil {
		return nil
	}
	s := &ZoneStats{Zone: zone, Name: t.Name, Municipalities: len(t.Municipalities)}
	for _, m := range t.Municipalities {
		s.Population += m.Population
		s.RegisteredVoters += m.RegisteredVoters
	}
	return s
}

// Stats agregados de todas las zonas en orden estable.
func (r *Registry) Stats() []ZoneStats {
	out := make([]ZoneStats, 0, len(r.territories))
	for _, t := range r.territories {
		out = append(out, *r.StatsFor(t.Zone))
	}
	return out
}
