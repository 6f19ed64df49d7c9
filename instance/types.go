// Package instance: types, options and sentinel errors.
package instance

import "errors"

var (
	// ErrBadGenOptions indicates an invalid generation configuration
	// (n ≤ 0, dims ≤ 0, lo ≥ hi, or a non-positive grid size).
	ErrBadGenOptions = errors.New("instance: invalid generation options")

	// ErrRaggedNodes indicates a coordinate set whose rows differ in length
	// or are empty.
	ErrRaggedNodes = errors.New("instance: ragged or empty coordinate rows")

	// ErrBadInstance indicates an instance file that carries neither
	// coordinates nor a usable cost matrix, or carries a non-square one.
	ErrBadInstance = errors.New("instance: invalid instance definition")
)

// defaultSeed is the fixed seed substituted when GenOptions.Seed == 0,
// keeping zero-value configurations reproducible.
const defaultSeed int64 = 1

// GenOptions configures random node generation.
//
// N    — number of nodes (the first generated node serves as the depot).
// Dims — coordinate dimensionality (2 for planar, 3 for volumetric).
// Lo, Hi — integer half-open range [Lo, Hi) each coordinate is drawn from.
// Seed — RNG seed; 0 selects a fixed default (same seed ⇒ same nodes).
type GenOptions struct {
	N    int
	Dims int
	Lo   int
	Hi   int
	Seed int64
}

// DefaultGenOptions mirrors the canonical survey set-up: 20 planar nodes
// with coordinates in [-50, 50).
func DefaultGenOptions() GenOptions {
	return GenOptions{N: 20, Dims: 2, Lo: -50, Hi: 50}
}
