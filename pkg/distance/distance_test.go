package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 32},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}, 0},
		{"Mixed", []float32{1, -1, 2}, []float32{1, 1, -2}, -4},
		{"Empty", []float32{}, []float32{}, 0},
		{"Single", []float32{2}, []float32{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		name     string
		v        []float32
		expected float32
	}{
		{"Unit", []float32{1, 0, 0}, 1},
		{"Pythagorean", []float32{3, 4}, 5},
		{"Zero", []float32{0, 0}, 0},
		{"Empty", []float32{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Norm(tt.v)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float64
	}{
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"SameDirection", []float32{1, 0}, []float32{5, 0}, 0},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 1},
		{"Opposite", []float32{1, 0}, []float32{-1, 0}, 2},
		{"ZeroVector", []float32{0, 0}, []float32{1, 1}, 1},
		{"BothZero", []float32{0, 0}, []float32{0, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-6)
		})
	}
}

// Косинусная дистанция не зависит от масштаба векторов.
func TestCosineScaleInvariant(t *testing.T) {
	a := []float32{0.5, -1.25, 3, 0.01}
	b := []float32{1, 2, -0.5, 4}

	scaled := make([]float32, len(a))
	for i := range a {
		scaled[i] = a[i] * 42
	}

	assert.InDelta(t, Cosine(a, b), Cosine(scaled, b), 1e-6)
}
