package reduce

import "github.com/mluipersbeck/dapcstp/dinst"

// NTD1 eliminates every node with exactly one incident arc (in either
// direction). A node whose sole arc is outgoing has in-degree 0 and can
// never receive the one incoming arc a non-root arborescence member
// requires: a required (terminal or fixed-in) node shaped this way makes
// the instance infeasible (§7), so it is left untouched for the
// reachability-based feasibility check downstream to report that, rather
// than have a merge fabricate a connection that never existed; a
// non-required node shaped this way can simply never be used and is
// deleted outright.
//
// A node whose sole arc is incoming is handled by the classical degree-1
// test: a required node is unconditionally contracted along that arc,
// since it and its neighbor are both then forced. A non-required node is
// contracted only when doing so is strictly profitable (its revenue
// exceeds the arc's cost) — folding the net profit into the neighbor's
// own, still-conditional revenue — and deleted otherwise.
//
// Returns the number of nodes eliminated.
//
// Complexity: O(n + m) amortized across repeated calls to a fixpoint,
// since each eliminated node is O(deg) work.
func NTD1(inst *dinst.Instance) int {
	removed := 0
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || i == inst.R {
			continue
		}
		deg, only := degreeAndOnlyArc(inst, i)
		if deg != 1 {
			continue
		}
		required := inst.T[i] || inst.F1[i]

		if inst.Tail[only] == i {
			// i's sole arc leaves i: in-degree 0.
			if required {
				continue
			}
			inst.RemoveNode(i)
			removed++
			continue
		}

		nb := otherEnd(inst, i, only)
		if nb == inst.R {
			// Already directly and uniquely attached to the root: there
			// is nothing to contract without merging the root's own
			// identity away, and re-trying every round would loop
			// forever reporting a fixpoint that never settles.
			continue
		}

		switch {
		case required:
			contractRequiredLeaf(inst, i, only, nb)
		case inst.P[i] > inst.C[only]:
			contractProfitableLeaf(inst, i, only, nb)
		default:
			inst.RemoveNode(i)
		}
		removed++
	}
	return removed
}

// otherEnd returns the node at the far end of i's unique incident arc.
func otherEnd(inst *dinst.Instance, i, only int) int {
	if inst.Tail[only] == i {
		return inst.Head[only]
	}
	return inst.Tail[only]
}

// degreeAndOnlyArc returns the number of non-deleted arcs incident to i
// and, if exactly one, that arc's index.
func degreeAndOnlyArc(inst *dinst.Instance, i int) (int, int) {
	deg := 0
	only := -1
	for _, ij := range inst.Dout[i] {
		if !inst.Fe0[ij] {
			deg++
			only = ij
		}
	}
	for _, ij := range inst.Din[i] {
		if !inst.Fe0[ij] {
			deg++
			only = ij
		}
	}
	return deg, only
}

// contractRequiredLeaf absorbs a forced node i's sole (incoming) neighbor
// nb into i: since i must be included and only is its one possible
// parent arc, nb and only's cost are forced right along with it, so both
// fold unconditionally into Offset. i survives under its own index so
// its own T/F1 status needs no propagation.
func contractRequiredLeaf(inst *dinst.Instance, i, only, nb int) {
	inst.Offset += inst.P[nb] + inst.C[only]
	inst.Merge(only, i, nb)
}

// contractProfitableLeaf absorbs i's sole (incoming) neighbor nb into i,
// for a non-required i whose own revenue strictly exceeds the cost of
// reaching it: that net profit is folded into nb's revenue, carried
// forward under i's surviving index, so it is collected exactly when nb
// (and hence i) ends up part of a solution — still conditional, not
// unconditional like the required case. nb's own T/F1 status, if any,
// carries over too, since i now stands in for nb's position in the
// graph.
func contractProfitableLeaf(inst *dinst.Instance, i, only, nb int) {
	profit := inst.P[i] - inst.C[only]
	inst.P[i] = inst.P[nb] + profit
	if inst.T[nb] {
		inst.T[i] = true
	}
	if inst.F1[nb] {
		inst.F1[i] = true
	}
	inst.Merge(only, i, nb)
}

// NTD2 replaces a non-terminal, non-fixed, degree-2 node i by a single
// arc summing the costs of its two incident arcs, provided both are
// directed the same way through i (one entering, one leaving, forming an
// i-on-a-path pattern): i is eliminated and the two arcs collapse into
// one direct arc between its neighbors. If the collapse would create a
// parallel arc (the neighbors are already directly connected), the
// cheaper of the two survives.
//
// Returns the number of nodes eliminated.
//
// Complexity: O(n) amortized per fixpoint pass.
func NTD2(inst *dinst.Instance) int {
	removed := 0
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || inst.T[i] || inst.F1[i] || i == inst.R {
			continue
		}
		in, out, ok := twoPathArcs(inst, i)
		if !ok {
			continue
		}
		collapseTwoPath(inst, i, in, out)
		removed++
	}
	return removed
}

// twoPathArcs returns (incoming, outgoing) if i has exactly one
// surviving incoming arc and one surviving outgoing arc whose other
// endpoints differ (a genuine through-path, not a 2-cycle on i).
func twoPathArcs(inst *dinst.Instance, i int) (int, int, bool) {
	var ins, outs []int
	for _, ij := range inst.Din[i] {
		if !inst.Fe0[ij] {
			ins = append(ins, ij)
		}
	}
	for _, ij := range inst.Dout[i] {
		if !inst.Fe0[ij] {
			outs = append(outs, ij)
		}
	}
	if len(ins) != 1 || len(outs) != 1 {
		return 0, 0, false
	}
	in, out := ins[0], outs[0]
	if inst.Tail[in] == inst.Head[out] {
		return 0, 0, false // 2-cycle through i, not a through-path
	}
	return in, out, true
}

// collapseTwoPath eliminates i, replacing arcs (u->i) and (i->v) with a
// single arc u->v whose weight is the summed cost of the two arcs minus
// i's own revenue: since i has no other neighbor, any tree that uses this
// arc visits i and collects P[i] unconditionally, so folding -P[i] into
// the combined weight keeps that revenue accounted for even though i
// itself is about to disappear from the reduced instance. The merge goes
// through Merge (absorbing i into u) rather than a bare RemoveNode, so
// Bmna[u] inherits i's back-mapping entry, and Merge's own back-mapping
// bookkeeping carries (u->i)'s Bmaa onto the surviving u->v arc, so a
// later recovery onto the original instance still reports i as a visited
// node with a matching incoming arc whenever the collapsed arc ends up
// selected. Deduplicates against any existing direct u->v arc by keeping
// the cheaper (triangle case, §4.4).
func collapseTwoPath(inst *dinst.Instance, i, in, out int) {
	u := inst.Tail[in]
	w := inst.C[in] + inst.C[out] - inst.P[i]

	inst.C[out] = w
	inst.Merge(in, u, i)
}

// findDirectArc returns a surviving arc u->v, or -1 if none exists.
func findDirectArc(inst *dinst.Instance, u, v int) int {
	for _, ij := range inst.Dout[u] {
		if !inst.Fe0[ij] && inst.Head[ij] == v {
			return ij
		}
	}
	return -1
}
