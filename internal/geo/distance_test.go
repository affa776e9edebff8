package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	p := Point{Latitude: -37.8136, Longitude: 144.9631}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_KnownPairs(t *testing.T) {
	// Эталонные расстояния посчитаны по той же сферической модели,
	// допуск покрывает погрешность плавающей точки
	tests := []struct {
		name      string
		a, b      Point
		expected  float64
		tolerance float64
	}{
		{
			name:      "один градус широты на экваторе",
			a:         Point{Latitude: 0, Longitude: 0},
			b:         Point{Latitude: 1, Longitude: 0},
			expected:  111195,
			tolerance: 10,
		},
		{
			name:      "короткая дистанция внутри города",
			a:         Point{Latitude: -37.8136, Longitude: 144.9631},
			b:         Point{Latitude: -37.8140, Longitude: 144.9633},
			expected:  47.8,
			tolerance: 1,
		},
		{
			name:      "антиподы",
			a:         Point{Latitude: 0, Longitude: 0},
			b:         Point{Latitude: 0, Longitude: 180},
			expected:  EarthRadiusMeters * 3.14159265358979,
			tolerance: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), tt.tolerance)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{Latitude: 55.7558, Longitude: 37.6173}
	b := Point{Latitude: 59.9343, Longitude: 30.3351}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestCountWithinRadius_Boundary(t *testing.T) {
	center := Point{Latitude: -37.8136, Longitude: 144.9631}
	// ~445 метров к югу
	near := Point{Latitude: -37.8176, Longitude: 144.9631}
	// ~1.1 км к югу
	far := Point{Latitude: -37.8236, Longitude: 144.9631}

	assert.Equal(t, 1, CountWithinRadius(center, 500, []Point{near, far}))
}

func TestCountWithinRadius(t *testing.T) {
	center := Point{Latitude: -37.8136, Longitude: 144.9631}
	candidates := []Point{
		center, // нулевая дистанция тоже считается
		{Latitude: -37.8140, Longitude: 144.9633},
		{Latitude: -37.8176, Longitude: 144.9631},
		{Latitude: -37.9000, Longitude: 144.9631}, // далеко за радиусом
	}

	assert.Equal(t, 3, CountWithinRadius(center, 500, candidates))
	assert.Equal(t, 0, CountWithinRadius(center, 500, nil))
}
