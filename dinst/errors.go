package dinst

import "errors"

// Sentinel errors for instance construction and mutation.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, N).
	ErrNodeOutOfRange = errors.New("dinst: node index out of range")

	// ErrArcOutOfRange indicates an arc index outside [0, M).
	ErrArcOutOfRange = errors.New("dinst: arc index out of range")

	// ErrArcAlreadyDeleted indicates an operation targeted an arc already
	// marked Fe0 (removed from both adjacency lists).
	ErrArcAlreadyDeleted = errors.New("dinst: arc already deleted")

	// ErrFixedInOutConflict indicates a node was about to be flagged both
	// fixed-in and fixed-out, violating the §3 invariant.
	ErrFixedInOutConflict = errors.New("dinst: node cannot be both fixed-in and fixed-out")

	// ErrNoRoot indicates an operation requiring a rooted instance was
	// invoked on an unrooted one (R == NoRoot).
	ErrNoRoot = errors.New("dinst: instance has no root")
)
