package bbsolve

import (
	"time"

	"github.com/mluipersbeck/dapcstp/dsol"
)

// LogEntry records one incumbent improvement: its objective and when,
// relative to Solve's start, it was found (§6 "a log of (obj,
// time-found) pairs").
type LogEntry struct {
	Obj     float64
	FoundAt time.Duration
}

// Result is Solve's full output (§6 "Outputs"): the incumbent solution
// expressed on the original instance, bound/summary statistics, and the
// termination cause.
type Result struct {
	// Solution is nil when no incumbent was found: the instance is
	// infeasible (no valid rooted arborescence exists, §7), or a limit
	// stopped the search before any solution was accepted.
	Solution *dsol.Solution

	Bestlb float64
	Rootlb float64
	Rootub float64

	Cause TerminationCause

	NRoots          int
	NRootsProcessed int
	NRootsOpen      int
	NImprovements   int
	NIter           int

	Log []LogEntry
}
