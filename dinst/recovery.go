package dinst

import "github.com/mluipersbeck/dapcstp/dsol"

// RecoverPartialSolution expands a solution found on this (reduced)
// instance back onto orig, the pre-reduction instance this Instance's
// back-mapping (Bmna/Bmaa) refers into, re-instating every original arc
// and node that collapsed into a surviving selected arc or node.
//
// Antiparallel arcs introduced by contractions are resolved to a tree
// using orig's Opposite links: when both directions of an antiparallel
// pair would be selected, the heavier one (by orig.C) is dropped, ties
// broken by keeping the lower arc index.
//
// Complexity: O(n + m).
func (inst *Instance) RecoverPartialSolution(partial *dsol.Solution, orig *Instance) *dsol.Solution {
	out := &dsol.Solution{
		Nodes: make([]bool, orig.N),
		Arcs:  make([]bool, orig.M),
		Root:  -1,
		Obj:   partial.Obj,
	}

	for i := 0; i < inst.N; i++ {
		if !partial.Nodes[i] {
			continue
		}
		for _, o := range inst.Bmna[i] {
			out.Nodes[o] = true
		}
	}

	for ij := 0; ij < inst.M; ij++ {
		if !partial.Arcs[ij] {
			continue
		}
		for _, o := range inst.Bmaa[ij] {
			out.Arcs[o] = true
		}
	}

	resolveAntiparallel(out, orig)

	if partial.Root >= 0 && partial.Root < inst.N {
		for _, o := range inst.Bmna[partial.Root] {
			out.Root = o
			break
		}
	}

	out.Partial = false
	return out
}

// resolveAntiparallel drops the heavier arc of any antiparallel pair both
// marked selected in sol, since a recovered arborescence cannot contain
// both directions between the same endpoints.
func resolveAntiparallel(sol *dsol.Solution, orig *Instance) {
	for ij := 0; ij < orig.M; ij++ {
		if !sol.Arcs[ij] {
			continue
		}
		ji := orig.Opposite[ij]
		if ji == NoArc || ji <= ij || !sol.Arcs[ji] {
			continue
		}
		if orig.C[ij] <= orig.C[ji] {
			sol.Arcs[ji] = false
		} else {
			sol.Arcs[ij] = false
		}
	}
}
