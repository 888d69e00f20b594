package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/movilog-app/internal/domain/geo"
)

// TestHaversine_PuntoCoincidente: la distancia de un punto a sí mismo es 0.
func TestHaversine_PuntoCoincidente(t *testing.T) {
	assert.Zero(t, geo.HaversineDistance(0, 0, 0, 0))
	assert.Zero(t, geo.HaversineDistance(-23.5505, -46.6333, -23.5505, -46.6333),
		"un punto coincidente debe dar distancia cero en cualquier coordenada")
}

// TestHaversine_Simetrica: d(a,b) == d(b,a).
func TestHaversine_Simetrica(t *testing.T) {
	ab := geo.HaversineDistance(-23.5505, -46.6333, -22.9068, -43.1729) // São Paulo -> Río
	ba := geo.HaversineDistance(-22.9068, -43.1729, -23.5505, -46.6333)
	assert.InDelta(t, ab, ba, 1e-9, "la distancia debe ser simétrica")
}

// TestHaversine_GradoDeLongitudEnElEcuador: un grado de longitud sobre el
// ecuador mide ~111.19 km con R=6371.
func TestHaversine_GradoDeLongitudEnElEcuador(t *testing.T) {
	d := geo.HaversineDistance(0, 0, 0, 1)
	assert.InDelta(t, 111.19, d, 0.01)
}

// TestFormatKm: dos decimales y sufijo km para la vista.
func TestFormatKm(t *testing.T) {
	assert.Equal(t, "111.19 km", geo.FormatKm(111.1949))
	assert.Equal(t, "0.00 km", geo.FormatKm(0))
}
