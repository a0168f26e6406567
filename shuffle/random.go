package shuffle

import (
	rand "math/rand/v2"

	"github.com/tetsuya-zama/guccicci/types"
	"github.com/zeebo/xxh3"
)

// Random is a shuffler that applies a uniform Fisher-Yates permutation.
//
// By default it draws from the process-wide PRNG, so two Random instances
// never repeat each other. Seed it (WithSeed, WithSeedLabel) or inject an rng
// (WithRand) to make draws reproducible.
type Random struct {
	rng *rand.Rand
}

var _ types.Shuffler = (*Random)(nil)

// RandomOption configures a Random shuffler.
type RandomOption func(*Random)

// NewRandom creates a new random shuffler.
//
// Parameters:
//   - opts: Optional configuration (WithSeed, WithSeedLabel, WithRand)
//
// Returns:
//   - *Random: Initialized random shuffler
//
// Example:
//
//	shuffler := shuffle.NewRandom(
//	    shuffle.WithSeed(42),
//	)
//	teams, err := guccicci.Form(&setting, shuffler)
func NewRandom(opts ...RandomOption) *Random {
	r := &Random{}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithSeed makes the shuffler deterministic for a given seed.
//
// Seed 0 keeps the package-level PRNG, matching the unseeded default. Any
// other value produces the same permutation sequence on every run.
//
// Parameters:
//   - seed: Seed value (0 for the package-level PRNG)
//
// Returns:
//   - RandomOption: Configuration option
//
//nolint:gosec
func WithSeed(seed int64) RandomOption {
	return func(r *Random) {
		if seed == 0 {
			r.rng = nil
			return
		}
		s1 := uint64(seed)
		s2 := s1 ^ 0x9e3779b97f4a7c15

		r.rng = rand.New(rand.NewPCG(s1, s2))
	}
}

// WithSeedLabel derives a deterministic seed from a human-readable label,
// e.g. an event name or a date. The same label always yields the same draw.
//
// Parameters:
//   - label: Seed label (hashed with xxh3)
//
// Returns:
//   - RandomOption: Configuration option
//
// Example:
//
//	shuffler := shuffle.NewRandom(
//	    shuffle.WithSeedLabel("sprint-42 retro"),
//	)
func WithSeedLabel(label string) RandomOption {
	return func(r *Random) {
		h := xxh3.HashString(label)
		r.rng = rand.New(rand.NewPCG(h, h^0x9e3779b97f4a7c15))
	}
}

// WithRand injects a custom random source, e.g. one shared across several
// shufflers in a test.
//
// Parameters:
//   - rng: Random source (nil for the package-level PRNG)
//
// Returns:
//   - RandomOption: Configuration option
func WithRand(rng *rand.Rand) RandomOption {
	return func(r *Random) {
		r.rng = rng
	}
}

// Shuffle implements types.Shuffler with a uniform permutation of n elements.
// It never fails.
func (r *Random) Shuffle(n int, swap func(i, j int)) error {
	if n < 2 {
		return nil
	}

	if r.rng != nil {
		r.rng.Shuffle(n, swap)
	} else {
		rand.Shuffle(n, swap) //nolint:gosec // non-crypto team draw
	}

	return nil
}
