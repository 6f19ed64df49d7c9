// Package highs implements milp.Solver on top of the HiGHS engine via
// github.com/bartolsthoorn/gohighs. The adapter lowers a milp.Model into
// HiGHS column/row arrays, runs a single bounded solve, and maps the engine
// result back onto milp.Solution with honest status semantics: a time-limit
// stop with an incumbent is StatusFeasible, a stop without one is
// StatusNoSolution — never a fabricated assignment.
//
// The package is cgo-backed (it links against libhighs) and therefore lives
// apart from the pure-Go core; everything above it depends only on the
// milp.Solver interface.
package highs
