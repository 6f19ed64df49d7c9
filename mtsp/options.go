package mtsp

import (
	"time"

	"github.com/taridan/mtsp/milp"
)

// DefaultMinCities is the least cities per route when Options.MinCities is 0.
const DefaultMinCities = 2

// Options configures one solve attempt.
//
// Salesmen  — number of disjoint depot-closed routes; must be in [1, n-1].
// MinCities — least cities per route (K); 0 ⇒ DefaultMinCities.
// MaxCities — most cities per route (L); 0 ⇒ n (the matrix order).
// TimeLimit — wall-clock budget handed to the solver; 0 ⇒ milp.DefaultTimeLimit.
// Verbose   — surface the solver engine's own log output.
// Solver    — MILP backend; must be non-nil for any instance with n ≥ 2.
type Options struct {
	Salesmen  int
	MinCities int
	MaxCities int
	TimeLimit time.Duration
	Verbose   bool
	Solver    milp.Solver
}

// Option is a functional override applied on top of DefaultOptions.
type Option func(*Options)

// DefaultOptions returns the canonical configuration for the given salesmen
// count and backend: MinCities/MaxCities at their defaults (resolved against
// n during validation) and the default solver time limit.
func DefaultOptions(salesmen int, solver milp.Solver, opts ...Option) Options {
	o := Options{
		Salesmen:  salesmen,
		TimeLimit: milp.DefaultTimeLimit,
		Solver:    solver,
	}

	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o
}

// WithMinCities sets the least cities any single route may visit.
func WithMinCities(k int) Option {
	return func(o *Options) { o.MinCities = k }
}

// WithMaxCities sets the most cities any single route may visit.
func WithMaxCities(l int) Option {
	return func(o *Options) { o.MaxCities = l }
}

// WithTimeLimit caps the wall-clock solve budget.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithVerbose surfaces the solver engine's log output.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}
