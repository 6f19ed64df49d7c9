package instance

import "math/rand"

// GenerateNodes draws opts.N coordinate rows of opts.Dims integer-valued
// components uniformly from [opts.Lo, opts.Hi), using a deterministic RNG
// derived from opts.Seed (0 ⇒ fixed default seed).
//
// Coordinates are returned as float64 so they feed Distances and the
// renderers directly.
//
// Errors: ErrBadGenOptions.
//
// Complexity: O(N·Dims).
func GenerateNodes(opts GenOptions) ([][]float64, error) {
	if opts.N <= 0 || opts.Dims <= 0 || opts.Lo >= opts.Hi {
		return nil, ErrBadGenOptions
	}

	var (
		rng   = rngFromSeed(opts.Seed)
		span  = opts.Hi - opts.Lo
		nodes = make([][]float64, opts.N)
		i, d  int
	)
	for i = 0; i < opts.N; i++ {
		nodes[i] = make([]float64, opts.Dims)
		for d = 0; d < opts.Dims; d++ {
			nodes[i][d] = float64(opts.Lo + rng.Intn(span))
		}
	}

	return nodes, nil
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
