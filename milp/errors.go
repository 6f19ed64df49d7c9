// SPDX-License-Identifier: MIT
// Package milp: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the milp
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for programmer errors in private
// helpers (if any).

package milp

import "errors"

// Every message is prefixed with "milp: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilModel indicates that a nil *Model was passed to a Solver or helper.
	ErrNilModel = errors.New("milp: model is nil")

	// ErrEmptyName indicates that a variable or row name is empty.
	ErrEmptyName = errors.New("milp: empty name")

	// ErrBadBounds indicates an invalid bound pair (lo > hi, or NaN).
	ErrBadBounds = errors.New("milp: invalid bounds")

	// ErrBadCoefficient indicates a NaN or ±Inf objective/row coefficient.
	ErrBadCoefficient = errors.New("milp: coefficient is NaN or Inf")

	// ErrUnknownVar indicates a Var handle outside the model's column range.
	ErrUnknownVar = errors.New("milp: unknown variable")

	// ErrNoTerms indicates a row with no terms.
	ErrNoTerms = errors.New("milp: row has no terms")

	// ErrBadAssignment indicates an assignment vector that does not fit the
	// model (wrong length) or violates a row/bound/integrality requirement.
	ErrBadAssignment = errors.New("milp: assignment violates model")

	// ErrBackendFailure indicates that the underlying engine rejected the
	// model or failed internally; inspect the wrapped message for details.
	ErrBackendFailure = errors.New("milp: backend failure")
)
