package dataset

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Alphabet holds every byte a generated key may contain.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#%:;^&*()-."

// Defaults used when no configuration overrides them.
const (
	DefaultSize      = 3000
	DefaultMinLen    = 10
	DefaultMaxLen    = 200
	DefaultSwapRatio = 0.01
)

// Generator produces datasets of random keys over Alphabet.
type Generator struct {
	MinLen    int
	MaxLen    int
	SwapRatio float64

	rng *rand.Rand
}

// NewGenerator validates the parameters and returns a generator seeded with seed.
func NewGenerator(minLen, maxLen int, swapRatio float64, seed uint64) (*Generator, error) {
	if minLen < 0 {
		return nil, fmt.Errorf("min length must not be negative, got %d", minLen)
	}
	if minLen > maxLen {
		return nil, fmt.Errorf("min length %d exceeds max length %d", minLen, maxLen)
	}
	if swapRatio < 0 || swapRatio > 1 {
		return nil, fmt.Errorf("swap ratio must be within [0, 1], got %v", swapRatio)
	}
	return &Generator{
		MinLen:    minLen,
		MaxLen:    maxLen,
		SwapRatio: swapRatio,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Key returns one random key with a length in [MinLen, MaxLen].
func (g *Generator) Key() string {
	n := g.MinLen + g.rng.IntN(g.MaxLen-g.MinLen+1)
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(Alphabet[g.rng.IntN(len(Alphabet))])
	}
	return b.String()
}

// Random returns n random keys.
func (g *Generator) Random(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = g.Key()
	}
	return keys
}

// ReverseSorted returns n random keys in descending order.
func (g *Generator) ReverseSorted(n int) []string {
	keys := g.Random(n)
	slices.Sort(keys)
	slices.Reverse(keys)
	return keys
}

// AlmostSorted returns n random keys in ascending order, perturbed by
// floor(n*SwapRatio) swaps of two randomly chosen positions.
func (g *Generator) AlmostSorted(n int) []string {
	keys := g.Random(n)
	slices.Sort(keys)
	if n == 0 {
		return keys
	}
	swaps := int(float64(n) * g.SwapRatio)
	for i := 0; i < swaps; i++ {
		a, b := g.rng.IntN(n), g.rng.IntN(n)
		keys[a], keys[b] = keys[b], keys[a]
	}
	return keys
}

// Generate returns n keys in the given shape.
func (g *Generator) Generate(shape Shape, n int) ([]string, error) {
	switch shape {
	case Random:
		return g.Random(n), nil
	case Reversed:
		return g.ReverseSorted(n), nil
	case AlmostSorted:
		return g.AlmostSorted(n), nil
	}
	return nil, fmt.Errorf("unknown shape %q", shape)
}
