package geo

import (
	"math"
	"testing"
)

func TestDistanceKM(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
		tol  float64
	}{
		{"same point", Point{-33.4372, -70.6341}, Point{-33.4372, -70.6341}, 0, 1e-9},
		{"one degree of latitude", Point{0, 0}, Point{1, 0}, 111.195, 0.01},
		{"santiago to valparaiso", Point{-33.4489, -70.6693}, Point{-33.0472, -71.6127}, 98.0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKM(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tol {
				t.Fatalf("DistanceKM = %f, want %f ± %f", got, tt.want, tt.tol)
			}
		})
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := Point{-33.4372, -70.6341}
	b := Point{-33.4569, -70.6483}
	if d1, d2 := DistanceKM(a, b), DistanceKM(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("asymmetric distance: %f vs %f", d1, d2)
	}
}
