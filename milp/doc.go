// Package milp provides a small, backend-agnostic builder for mixed-integer
// linear programs and the Solver capability interface used to run them.
//
// A Model is a set of named columns (continuous, integer or binary variables
// with bounds and an objective coefficient) and two-sided linear rows
//
//	lo ≤ Σ c_k·x_k ≤ hi
//
// Equality rows use lo == hi; one-sided rows use ±Inf on the open side.
// The representation maps directly onto column/row MILP engines (HiGHS, GLPK,
// CPLEX and friends) without committing the formulating code to any of them.
//
// Solving is delegated through the Solver interface:
//
//	type Solver interface {
//		Solve(m *Model, opts SolveOptions) (Solution, error)
//	}
//
// See milp/highs for the HiGHS-backed implementation. The package also ships
// assignment introspection (Model.CheckAssignment, Model.ObjectiveAt) so that
// callers and tests can verify a returned assignment against the declared
// constraint system instead of trusting the engine blindly.
//
// The package is deterministic and allocation-conscious; all user-triggered
// failures are reported via the sentinel errors in errors.go and matched with
// errors.Is. No function panics on user input.
package milp
