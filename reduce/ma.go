package reduce

import (
	"github.com/mluipersbeck/dapcstp/artic"
	"github.com/mluipersbeck/dapcstp/dinst"
)

// MA (min-adjacency) fixes out any non-terminal, non-fixed node i whose
// revenue cannot possibly offset the cheapest way of visiting it: if the
// cheapest incoming arc cost plus the cheapest outgoing arc cost exceeds
// i's revenue, no optimal arborescence benefits from routing through i,
// so i is fixed out — unless i is currently the only connection some
// required node has back to the root, in which case removing it would
// prove the instance infeasible rather than merely suboptimal, so it is
// left for APFixing/the B&B reachability test to deal with instead.
//
// Returns the number of nodes fixed.
//
// Complexity: O(n + m), plus one reachability scan per node actually
// removed.
func MA(inst *dinst.Instance) int {
	fixed := 0
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || inst.F1[i] || inst.T[i] || i == inst.R {
			continue
		}
		minIn, hasIn := cheapestIncident(inst.Din[i], inst)
		minOut, hasOut := cheapestIncident(inst.Dout[i], inst)
		if !hasIn || !hasOut {
			continue
		}
		if minIn+minOut > inst.P[i] && requiredNodesSurviveWithout(inst, i) {
			inst.RemoveNode(i)
			fixed++
		}
	}
	return fixed
}

// requiredNodesSurviveWithout reports whether every terminal or fixed-in
// node remains reachable from the root if i were removed, without
// mutating inst beyond the probe.
func requiredNodesSurviveWithout(inst *dinst.Instance, i int) bool {
	if inst.R == dinst.NoRoot {
		return true
	}
	old := inst.F0[i]
	inst.F0[i] = true
	reached := inst.ReachableFrom(inst.R)
	inst.F0[i] = old

	for j := 0; j < inst.N; j++ {
		if inst.F0[j] || j == i {
			continue
		}
		if (inst.T[j] || inst.F1[j]) && !reached[j] {
			return false
		}
	}
	return true
}

func cheapestIncident(arcs []int, inst *dinst.Instance) (float64, bool) {
	best := dinst.Inf
	found := false
	for _, ij := range arcs {
		if inst.Fe0[ij] {
			continue
		}
		if inst.C[ij] < best {
			best = inst.C[ij]
			found = true
		}
	}
	return best, found
}

// APFixing fixes in every articulation point that cuts off a subtree
// containing a fixed-in node from the root: such an articulation must
// itself be on the path to that subtree, so it is required.
//
// Returns the number of nodes fixed.
//
// Complexity: O(n + m) for the AP search, plus O(n) for the sweep.
func APFixing(inst *dinst.Instance, ap []bool, lastap []int) int {
	if inst.R == dinst.NoRoot {
		return 0
	}
	fixed := 0
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || !inst.F1[i] {
			continue
		}
		a := lastap[i]
		for a != -1 {
			if !inst.F1[a] {
				inst.F1[a] = true
				inst.T[a] = true
				inst.P[a] = dinst.Inf
				fixed++
			}
			a = lastap[a]
		}
	}
	return fixed
}

// MACutNode bounds the best possible contribution of each subtree
// hanging off an articulation point (sum of node revenues minus the
// cheapest way to connect the subtree to its articulation); if that
// bound is negative, every node in the subtree is fixed out, since
// including any of them can only hurt the objective.
//
// Returns the number of nodes fixed.
//
// Complexity: O(n + m).
func MACutNode(inst *dinst.Instance, ap []bool, lastap []int) int {
	subtrees := artic.FindAllSubtrees(inst, ap, lastap)
	fixed := 0
	for center, members := range subtrees {
		if center < 0 {
			continue
		}
		bound := subtreeBound(inst, center, members)
		if bound < 0 {
			for _, i := range members {
				if !inst.F0[i] && !inst.F1[i] {
					inst.RemoveNode(i)
					fixed++
				}
			}
		}
	}
	return fixed
}

// MACutArc removes every arc between a hanging subtree whose bound (per
// MACutNode) is negative and any node outside that subtree.
//
// Returns the number of arcs removed.
//
// Complexity: O(n + m).
func MACutArc(inst *dinst.Instance, ap []bool, lastap []int) int {
	subtrees := artic.FindAllSubtrees(inst, ap, lastap)
	removed := 0
	for center, members := range subtrees {
		if center < 0 {
			continue
		}
		bound := subtreeBound(inst, center, members)
		if bound >= 0 {
			continue
		}
		inSub := make(map[int]bool, len(members))
		for _, i := range members {
			inSub[i] = true
		}
		for _, i := range members {
			for _, ij := range inst.Dout[i] {
				if inst.Fe0[ij] {
					continue
				}
				if !inSub[inst.Head[ij]] {
					inst.DelArc(ij)
					removed++
				}
			}
			for _, ij := range inst.Din[i] {
				if inst.Fe0[ij] {
					continue
				}
				if !inSub[inst.Tail[ij]] {
					inst.DelArc(ij)
					removed++
				}
			}
		}
	}
	return removed
}

// subtreeBound estimates the best possible net contribution of a hanging
// subtree: total revenue of its members minus the cheapest arc
// connecting the subtree to its articulation point.
func subtreeBound(inst *dinst.Instance, center int, members []int) float64 {
	var revenue float64
	inSub := make(map[int]bool, len(members))
	for _, i := range members {
		revenue += inst.P[i]
		inSub[i] = true
	}

	cheapest := dinst.Inf
	for _, i := range members {
		for _, ij := range inst.Din[i] {
			if inst.Fe0[ij] {
				continue
			}
			if inst.Tail[ij] == center && inst.C[ij] < cheapest {
				cheapest = inst.C[ij]
			}
		}
		for _, ij := range inst.Dout[i] {
			if inst.Fe0[ij] {
				continue
			}
			if inst.Head[ij] == center && inst.C[ij] < cheapest {
				cheapest = inst.C[ij]
			}
		}
	}
	if cheapest >= dinst.Inf {
		return revenue
	}
	return revenue - cheapest
}
