package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationWithSeed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := 100 * time.Millisecond

	got := DurationWithSeed(base, DefaultJitter, rng)
	assert.GreaterOrEqual(t, got, base)
	assert.LessOrEqual(t, got, base+base/2)
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		name    string
		attempt int
		max     time.Duration
	}{
		{"FirstAttempt", 0, 30 * time.Second},
		{"ThirdAttempt", 2, 30 * time.Second},
		{"CappedByMax", 10, 2 * time.Second},
	}

	base := time.Second
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExponentialBackoff(base, tt.max, tt.attempt, DefaultJitter)
			assert.GreaterOrEqual(t, got, base)
			// верхняя граница: max с полным джиттером
			assert.LessOrEqual(t, got, tt.max+tt.max/2)
		})
	}
}
