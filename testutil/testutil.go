package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Uniform generates a coordinate tuple with values in range [0, 1).
func (r *RNG) Uniform(dimension int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	coords := make([]float64, dimension)
	for i := range coords {
		coords[i] = r.rand.Float64()
	}

	return coords
}

// UniformRange generates a coordinate tuple with values in range [minVal, maxVal).
func (r *RNG) UniformRange(dimension int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	coords := make([]float64, dimension)
	for i := range coords {
		coords[i] = minVal + r.rand.Float64()*span
	}

	return coords
}

// Unit generates an L2-normalized coordinate tuple (on the hypersphere).
// Uses a Gaussian distribution for uniform direction coverage.
func (r *RNG) Unit(dimension int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	coords := make([]float64, dimension)
	var norm float64
	for i := range coords {
		v := r.rand.NormFloat64()
		coords[i] = v
		norm += v * v
	}

	if norm == 0 {
		norm = 1 // Avoid division by zero, though unlikely with floats
	}

	invNorm := 1.0 / math.Sqrt(norm)
	for i := range coords {
		coords[i] *= invNorm
	}

	return coords
}

// NonZero generates a coordinate tuple guaranteed to have a magnitude
// comfortably above any equality tolerance.
func (r *RNG) NonZero(dimension int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	coords := make([]float64, dimension)
	for i := range coords {
		coords[i] = 1 + r.rand.Float64()
	}

	return coords
}
