package geo

import "math"

// EarthRadiusMeters - радиус сферы для формулы гаверсинусов.
// Эллипсоидная поправка не применяется, на масштабе одного города погрешность несущественна.
const EarthRadiusMeters = 6371000.0

// Point - точка в десятичных градусах
type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance возвращает расстояние по большому кругу между двумя точками в метрах
func Distance(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// CountWithinRadius возвращает количество кандидатов в радиусе radiusMeters от center.
// Линейный проход: активное множество ограничено сотнями записей, пространственный
// индекс с тем же контрактом остается возможной оптимизацией.
func CountWithinRadius(center Point, radiusMeters float64, candidates []Point) int {
	count := 0
	for _, p := range candidates {
		if Distance(center, p) <= radiusMeters {
			count++
		}
	}
	return count
}
