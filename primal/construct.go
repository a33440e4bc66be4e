package primal

import "github.com/mluipersbeck/dapcstp/dinst"

// Construct builds a deterministic feasible arborescence rooted at r
// using cost vector c (§4.5 primI): greedy grow-and-prune. Starting from
// {r}, it repeatedly adds the cheapest arc from a reached node to an
// unreached one whose marginal (arc cost minus the revenue the new node
// opens up) is beneficial, or that is fixed-in (mandatory regardless of
// marginal), then prunes any leaf subtree whose net contribution to the
// objective is negative — skipping fixed-in nodes, which must survive
// the prune pass even when their own marginal is unfavorable.
//
// Returns the node/arc membership bitmaps and the solution's objective
// value (inst.Offset plus the arc costs under inst.C, minus the revenue
// collected).
//
// Complexity: O(m log n) (a priority-queue frontier scan, amortized).
func Construct(r int, inst *dinst.Instance, c []float64) (nodes, arcs []bool, obj float64) {
	nodes = make([]bool, inst.N)
	arcs = make([]bool, inst.M)
	parentArc := make([]int, inst.N)
	for i := range parentArc {
		parentArc[i] = -1
	}

	nodes[r] = true
	frontier := newArcHeap()
	pushFrontier(inst, c, nodes, frontier, r)

	for frontier.Len() > 0 {
		ij := popArcHeap(frontier)
		if inst.Fe0[ij] {
			continue
		}
		j := inst.Head[ij]
		if nodes[j] {
			continue
		}
		marginal := c[ij] - inst.P[j]
		if marginal >= 0 && !inst.F1[j] {
			continue
		}
		nodes[j] = true
		arcs[ij] = true
		parentArc[j] = ij
		pushFrontier(inst, c, nodes, frontier, j)
	}

	pruneNegativeLeaves(inst, c, nodes, arcs, parentArc, r)

	// Report the objective under inst's true costs/revenues, even though
	// construction itself was guided by c (which may be a support-graph
	// or perturbed stand-in): the caller's Validate recomputes against
	// true costs, so the two must agree.
	obj = inst.Offset
	for i := 0; i < inst.N; i++ {
		if nodes[i] {
			obj -= inst.P[i]
		}
	}
	for ij := 0; ij < inst.M; ij++ {
		if arcs[ij] {
			obj += inst.C[ij]
		}
	}
	return nodes, arcs, obj
}

// pruneNegativeLeaves repeatedly removes any reached non-root leaf (no
// child depends on it) whose own revenue minus its parent-arc cost is
// negative, since keeping it only hurts the objective. A fixed-in leaf is
// never pruned, since it is mandatory regardless of its own marginal.
// Removal may expose a new leaf, so the scan repeats until a full pass
// removes nothing.
func pruneNegativeLeaves(inst *dinst.Instance, c []float64, nodes, arcs []bool, parentArc []int, r int) {
	childCount := make([]int, inst.N)
	for i := 0; i < inst.N; i++ {
		if nodes[i] && parentArc[i] != -1 {
			childCount[inst.Tail[parentArc[i]]]++
		}
	}

	for {
		removed := false
		for i := 0; i < inst.N; i++ {
			if i == r || !nodes[i] || childCount[i] > 0 {
				continue
			}
			if inst.F1[i] {
				continue
			}
			pa := parentArc[i]
			if pa == -1 {
				continue
			}
			if inst.P[i]-c[pa] >= 0 {
				continue
			}
			nodes[i] = false
			arcs[pa] = false
			childCount[inst.Tail[pa]]--
			parentArc[i] = -1
			removed = true
		}
		if !removed {
			return
		}
	}
}
