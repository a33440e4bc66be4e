package bbsolve

// Options collects every tunable knob of the search (§6 "Options
// struct"). Flag parsing, config files, and other presentation-layer
// concerns live outside this package; Options is the data contract
// between them and Solve.
type Options struct {
	// Seed drives the RNG used for guide-pool shuffling in
	// strengthenBounds. Seed roots of the heuristic phase are chosen
	// deterministically, without the RNG.
	Seed int64

	// Heureps is the perturbation epsilon for the primal heuristic.
	// Negative requests the per-instance default (0.05 integer costs,
	// 0.005 real costs) computed from Instance.IsInt.
	Heureps float64
	// PerturbedHeur enables the perturbed primal heuristic variant.
	PerturbedHeur bool
	// HeurSupportG restricts primI to the dual-ascent support graph.
	HeurSupportG bool
	// HeurBB runs a time-limited inner B&B during the heuristic phase.
	HeurBB bool
	// HeurBBTime is the time limit, in seconds, for that inner B&B.
	HeurBBTime float64
	// HeurRoots caps the number of seed roots tried in the heuristic
	// phase.
	HeurRoots int

	// DAIterations is the number of daR rounds run per B&B node
	// (process step 3 plus up to DAIterations-1 strengthenBounds
	// rounds).
	DAIterations int
	// DAEager enables early-exit of daR once lb crosses the cutoff
	// threshold.
	DAEager bool
	// Dasat is the saturation threshold below which a reduced cost is
	// treated as "in the support graph." Negative requests the
	// per-instance default.
	Dasat float64
	// Precision scales real-valued costs for the default Dasat.
	Precision float64
	// Absgap is the absolute optimality gap used by every cutoff test.
	Absgap float64

	// NodeSelect picks the open-node selection policy: 0 worst-bound,
	// 1 DFS, 2 best-bound.
	NodeSelect int
	// BranchType picks the branch-variable selection rule (0-3, §4.6).
	BranchType int
	// RedRootOnly restricts the reduction cascade to the B&B root node.
	RedRootOnly bool

	// D1, D2, MA, MS, SS, LC, NR toggle individual reduction families.
	D1, D2, MA, MS, SS, LC, NR bool

	// BigM/SemiBigM enable the bigM-rooted auxiliary instance used to
	// bound unrooted root candidates during enumeration.
	BigM     bool
	SemiBigM bool
	// InitPrep applies the initial preprocessing fixpoint before root
	// enumeration begins.
	InitPrep bool

	// MemLimit is the host memory cap, in MB; MemProbe is polled against
	// it at every B&B iteration.
	MemLimit float64
	// MemProbe returns current resident memory in MB; defaults to
	// DefaultMemProbe (runtime.ReadMemStats-backed) when nil.
	MemProbe func() float64
}

// DefaultOptions returns every reduction enabled, best-bound node
// selection, eager dual ascent, and no heuristic-phase inner B&B —
// matching the reference solver's out-of-the-box defaults.
func DefaultOptions() Options {
	return Options{
		Seed: 1,

		Heureps:       -1,
		PerturbedHeur: true,
		HeurSupportG:  true,
		HeurBB:        false,
		HeurBBTime:    10,
		HeurRoots:     10,

		DAIterations: 1,
		DAEager:      true,
		Dasat:        -1,
		Precision:    1e6,
		Absgap:       1e-6,

		NodeSelect:  2,
		BranchType:  0,
		RedRootOnly: false,

		D1: true, D2: true, MA: true, MS: true, SS: true, LC: true, NR: true,

		BigM:     false,
		SemiBigM: false,
		InitPrep: true,

		MemLimit: 4096,
		MemProbe: nil,
	}
}

// resolvedHeureps returns opts.Heureps, or the per-instance default when
// negative (§6).
func resolvedHeureps(heureps float64, isInt bool) float64 {
	if heureps >= 0 {
		return heureps
	}
	if isInt {
		return 0.05
	}
	return 0.005
}

// resolvedDasat returns opts.Dasat, or the per-instance default when
// negative (§4.3 "Saturation threshold").
func resolvedDasat(dasat, precision float64, isInt bool) float64 {
	if dasat >= 0 {
		return dasat
	}
	if isInt {
		return 0.0
	}
	return 1e-4 * precision
}

// Limits bounds the search independent of Options: solution count, node
// count, wall-clock time, and an externally supplied cutoff upper bound.
type Limits struct {
	SolLim  int
	NodeLim int
	TimeLim float64
	// Cutup is an external upper bound (e.g. from a known feasible
	// solution); if non-negative and tighter than the trivial bound, it
	// seeds ub directly.
	Cutup float64
}

// DefaultLimits imposes no practical bound on solution count, node
// count, or time, and supplies no external cutoff.
func DefaultLimits() Limits {
	return Limits{
		SolLim:  int(^uint(0) >> 1),
		NodeLim: int(^uint(0) >> 1),
		TimeLim: 1e18,
		Cutup:   -1,
	}
}

// TerminationCause reports why Solve stopped.
type TerminationCause int

const (
	// BBNone indicates Solve has not yet completed (internal use only).
	BBNone TerminationCause = iota
	// BBOptimal indicates the search proved optimality.
	BBOptimal
	// BBTimeLimit indicates Limits.TimeLim was reached.
	BBTimeLimit
	// BBNodeLimit indicates Limits.NodeLim was reached.
	BBNodeLimit
	// BBSolLimit indicates Limits.SolLim was reached.
	BBSolLimit
	// BBMemLimit indicates Options.MemLimit was reached.
	BBMemLimit
)

func (c TerminationCause) String() string {
	switch c {
	case BBOptimal:
		return "optimal"
	case BBTimeLimit:
		return "time_limit"
	case BBNodeLimit:
		return "node_limit"
	case BBSolLimit:
		return "sol_limit"
	case BBMemLimit:
		return "mem_limit"
	default:
		return "none"
	}
}
