package bbsolve

import "errors"

// Sentinel errors for precondition violations (§7 "Precondition
// violation ... fatal"): these signal implementation bugs, not ordinary
// search outcomes, and are never produced by a well-formed instance.
var (
	// ErrNoFreeNode indicates branch was invoked on a node with no free
	// (not f0, not f1) variable to select.
	ErrNoFreeNode = errors.New("bbsolve: branch invoked with no free variable")

	// ErrEmptyQueue indicates select was invoked with both priority
	// queues empty.
	ErrEmptyQueue = errors.New("bbsolve: select invoked with no open nodes")
)
