package reduce

import "github.com/mluipersbeck/dapcstp/dinst"

// Bound bundles the dual-ascent output a B&B node needs to run the
// bound-based LC reduction: the lower bound lb itself, the per-arc
// reduced costs cr and per-node potentials pi it was computed with, and
// the incumbent ub it was measured against.
type Bound struct {
	Lb     float64
	Cr     []float64
	Pi     []float64
	Ub     float64
	Absgap float64
}

// LC (least-cost elimination) removes every arc and node whose bound
// would push the lower bound past the incumbent if forced into the
// solution: an arc ij is deleted when lb + cr[ij] > ub - absgap, and a
// free node i is fixed out when lb + pi[i] > ub - absgap. Neither can
// appear in any solution improving on the incumbent.
//
// Returns the total number of arcs and nodes removed.
//
// Complexity: O(n + m).
func LC(inst *dinst.Instance, b Bound) int {
	removed := 0
	threshold := b.Ub - b.Absgap

	for ij := 0; ij < inst.M; ij++ {
		if inst.Fe0[ij] {
			continue
		}
		if b.Lb+b.Cr[ij] > threshold {
			inst.DelArc(ij)
			removed++
		}
	}

	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || inst.T[i] || inst.F1[i] || i == inst.R {
			continue
		}
		if b.Lb+b.Pi[i] > threshold {
			inst.RemoveNode(i)
			removed++
		}
	}

	return removed
}

// NR (non-reachability) removes every node unreachable from the root
// using surviving outgoing arcs, once the caller has already established
// the instance is feasible (a node unreachable from a feasible root can
// never be covered by any arborescence on this instance, fixed or not).
//
// Returns the number of nodes removed. A no-op on unrooted instances.
//
// Complexity: O(n + m).
func NR(inst *dinst.Instance) int {
	if inst.R == dinst.NoRoot {
		return 0
	}
	reached := inst.ReachableFrom(inst.R)
	removed := 0
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || reached[i] {
			continue
		}
		inst.RemoveNode(i)
		removed++
	}
	return removed
}
