package nodedist

import "errors"

// ErrInsufficientData is returned when fewer than two nodes are
// available to bin, mirroring the Rust original's requirement that
// node distribution needs at least two countables to establish a
// min/max domain.
var ErrInsufficientData = errors.New("nodedist: need at least two nodes")
