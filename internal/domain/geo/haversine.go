// Package geo calcula la distancia en línea recta entre el origen y el
// destino de un movimiento, para mostrarla junto al listado y en el mapa.
package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm radio medio de la Tierra usado por la fórmula del
// semiverseno (gran círculo).
const earthRadiusKm = 6371.0

// HaversineDistance devuelve la distancia del gran círculo en kilómetros
// entre dos coordenadas en grados decimales.
//
// Cálculo puro, sin caché y sin validación de rango: coordenadas basura
// producen distancias basura, igual que en la vista de mapa.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FormatKm formatea una distancia para mostrar: dos decimales y sufijo km.
func FormatKm(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
