package reduce

import "github.com/mluipersbeck/dapcstp/dinst"

// CostShift subtracts, for each non-root node i, the minimum cost among
// i's incoming arcs from every incoming arc, folding that amount into
// i's own revenue instead (inst.P[i] -= m). This is objective-preserving
// regardless of whether i ends up an interior node or a leaf of the
// final arborescence: any feasible solution containing i pays for
// exactly one incoming arc, so its cost drops by m while i's revenue
// credit drops by the same m, leaving cost-minus-revenue unchanged. It
// tightens reduced-cost based reductions (LC, MA) without changing the
// optimum.
//
// Returns the number of nodes actually shifted (non-zero minimum).
//
// Complexity: O(n + m).
func CostShift(inst *dinst.Instance) int {
	shifted := 0
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || i == inst.R || len(inst.Din[i]) == 0 {
			continue
		}
		m := dinst.Inf
		for _, ij := range inst.Din[i] {
			if inst.Fe0[ij] {
				continue
			}
			if inst.C[ij] < m {
				m = inst.C[ij]
			}
		}
		if m <= 0 || m >= dinst.Inf {
			continue
		}
		for _, ij := range inst.Din[i] {
			if !inst.Fe0[ij] {
				inst.C[ij] -= m
			}
		}
		inst.IncreaseRevenue(i, -m)
		shifted++
	}
	return shifted
}
