package bbsolve

import "runtime"

// DefaultMemProbe returns the current heap allocation in MB via
// runtime.ReadMemStats, the trivial in-process stand-in for the host
// memory probe collaborator (§6 "Memory probe"); a real deployment with
// stricter RSS accounting can supply its own Options.MemProbe instead.
func DefaultMemProbe() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.Alloc) / (1 << 20)
}
