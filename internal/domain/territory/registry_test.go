package territory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caucamais/MAIS-Platform/internal/domain/entity"
	"github.com/caucamais/MAIS-Platform/internal/domain/territory"
)

func TestNewRegistry_CincoZonasConCincoMunicipios(t *testing.T) {
	r := territory.NewRegistry(territory.DefaultSeed)

	all := r.All()
	require.Len(t, all, 5, "deben materializarse las 5 zonas")

	for _, terr := range all {
		assert.Len(t, terr.Municipalities, 5, "zona %s debe tener 5 municipios", terr.Zone)
		cfg := entity.ZoneConfig[terr.Zone]
		assert.Equal(t, cfg.Name, terr.Name)
		assert.Equal(t, cfg.Color, terr.Color)
		for i, m := range terr.Municipalities {
			assert.Equal(t, cfg.Municipalities[i], m.Name)
			assert.Equal(t, terr.Zone, m.Zone, "cada municipio pertenece a su zona")
		}
	}
}

// Misma semilla, mismos datos demográficos: el generador es determinista.
func TestNewRegistry_DeterministaPorSemilla(t *testing.T) {
	a := territory.NewRegistry(42)
	b := territory.NewRegistry(42)
	assert.Equal(t, a.All(), b.All(), "una misma semilla debe producir el mismo registro")

	c := territory.NewRegistry(43)
	assert.NotEqual(t, a.All(), c.All(), "semillas distintas deben producir demografía distinta")
}

func TestNewRegistry_RangosDemograficos(t *testing.T) {
	r := territory.NewRegistry(territory.DefaultSeed)
	for _, terr := range r.All() {
		for _, m := range terr.Municipalities {
			assert.GreaterOrEqual(t, m.Population, 10000)
			assert.Less(t, m.Population, 60000)
			assert.GreaterOrEqual(t, m.RegisteredVoters, 5000)
			assert.Less(t, m.RegisteredVoters, 35000)
			assert.InDelta(t, 2.65, m.Coordinates.Lat, 0.26)
			assert.InDelta(t, -76.35, m.Coordinates.Lng, 0.26)
		}
	}
}

func TestStatsFor_SumaMunicipios(t *testing.T) {
	r := territory.NewRegistry(7)
	s := r.StatsFor(entity.ZonaNorte)
	require.NotNil(t, s)
	assert.Equal(t, 5, s.Municipalities)

	var population, voters int
	for _, m := range r.ByZone(entity.ZonaNorte).Municipalities {
		population += m.Population
		voters += m.RegisteredVoters
	}
	assert.Equal(t, population, s.Population)
	assert.Equal(t, voters, s.RegisteredVoters)

	assert.Nil(t, r.StatsFor(entity.Zone("zona_inexistente")), "zona desconocida no tiene stats")
}

// El registro no debe ser mutable a través de los valores devueltos.
func TestAll_DevuelveCopia(t *testing.T) {
	r := territory.NewRegistry(territory.DefaultSeed)
	first := r.All()
	first[0].Name = "mutado"
	assert.NotEqual(t, "mutado", r.All()[0].Name, "mutar la copia no debe afectar el registro")
}
