// Package instance builds and persists mTSP problem instances.
//
// It covers the glue around the core formulation:
//
//   - GenerateNodes — random coordinate sets from an explicit, seeded RNG
//     configuration (no process-global randomness);
//   - GenerateGrid — deterministic survey-grid node layouts with dedicated
//     entry and exit nodes;
//   - Distances — pairwise Euclidean cost matrices (symmetric, zero
//     diagonal) computed with gonum;
//   - Instance + Load/Save — a YAML file format carrying coordinates or an
//     explicit cost matrix together with the solve parameters.
//
// All failures are sentinel errors matched with errors.Is.
package instance
