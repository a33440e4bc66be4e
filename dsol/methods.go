package dsol

import "github.com/mluipersbeck/dapcstp/dinst"

// Validate checks sol against inst's §8 invariants: the selected arc set
// forms a directed arborescence rooted at sol.Root, every terminal or
// F1 node is included, no F0 node is included, and the reported Obj
// matches an independently recomputed objective.
//
// Returns (true, obj) on success; (false, 0) on the first violation
// found, so callers (updatePrimal) can discard and log without aborting
// the search (§7 "Validation failure ... rejected silently").
func (sol *Solution) Validate(inst *dinst.Instance) (bool, float64) {
	if sol.Root < 0 || sol.Root >= inst.N || !sol.Nodes[sol.Root] {
		return false, 0
	}

	for i := 0; i < inst.N; i++ {
		if (inst.T[i] || inst.F1[i]) && !sol.Nodes[i] {
			return false, 0
		}
		if inst.F0[i] && sol.Nodes[i] {
			return false, 0
		}
	}

	// Every selected node other than the root must have exactly one
	// selected incoming arc (arborescence in-degree invariant); the root
	// must have zero.
	inDeg := make([]int, inst.N)
	selectedNodes := 0
	for i := 0; i < inst.N; i++ {
		if sol.Nodes[i] {
			selectedNodes++
		}
	}

	var cost, revenue float64
	selectedArcs := 0
	for ij := 0; ij < inst.M; ij++ {
		if !sol.Arcs[ij] {
			continue
		}
		i, j := inst.Tail[ij], inst.Head[ij]
		if !sol.Nodes[i] || !sol.Nodes[j] {
			return false, 0
		}
		inDeg[j]++
		cost += inst.C[ij]
		selectedArcs++
	}
	if inDeg[sol.Root] != 0 {
		return false, 0
	}
	for i := 0; i < inst.N; i++ {
		if !sol.Nodes[i] {
			continue
		}
		revenue += inst.P[i]
		if i == sol.Root {
			continue
		}
		if inDeg[i] != 1 {
			return false, 0
		}
	}
	if selectedNodes > 0 && selectedArcs != selectedNodes-1 {
		return false, 0
	}

	if !connectedFromRoot(inst, sol) {
		return false, 0
	}

	obj := inst.Offset + cost - revenue
	if !almostEqual(obj, sol.Obj) {
		return false, 0
	}

	return true, obj
}

func almostEqual(a, b float64) bool {
	const eps = 1e-6
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps*(1+absf(a))
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// connectedFromRoot verifies every selected node is reachable from
// sol.Root using only selected arcs.
func connectedFromRoot(inst *dinst.Instance, sol *Solution) bool {
	reached := make([]bool, inst.N)
	queue := []int{sol.Root}
	reached[sol.Root] = true
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		for _, ij := range inst.Dout[i] {
			if !sol.Arcs[ij] {
				continue
			}
			j := inst.Head[ij]
			if !reached[j] {
				reached[j] = true
				queue = append(queue, j)
			}
		}
	}
	for i := 0; i < inst.N; i++ {
		if sol.Nodes[i] && !reached[i] {
			return false
		}
	}
	return true
}
