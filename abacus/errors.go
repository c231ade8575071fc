// Package abacus implements AbacusTotal and AbacusGroup (spec.md §4.4,
// §4.5): aggregating PathScanner's per-path item streams into a dense
// coverage vector or a sparse by-group CSR matrix.
package abacus

import "errors"

// ErrConsistencyAnomaly names the condition of a countable's coverage
// exceeding n (spec.md §7 ConsistencyAnomaly). No function in this
// package returns it: BuildTotal logs a warning, clamps the offending
// item and continues.
var ErrConsistencyAnomaly = errors.New("abacus: consistency anomaly")
