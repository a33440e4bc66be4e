package primal

import "github.com/mluipersbeck/dapcstp/dinst"

// SupportGraphCosts returns a modified cost vector where every arc whose
// reduced cost exceeds dasat is pushed to dinst.Inf, so Construct's
// greedy frontier never crosses a non-support arc: the heuristic is
// restricted to arcs the current dual solution considers promising.
//
// Complexity: O(m).
func SupportGraphCosts(inst *dinst.Instance, cr []float64, dasat float64) []float64 {
	c := make([]float64, inst.M)
	for ij := 0; ij < inst.M; ij++ {
		if inst.Fe0[ij] {
			continue
		}
		if cr[ij] > dasat {
			c[ij] = dinst.Inf
		} else {
			c[ij] = inst.C[ij]
		}
	}
	return c
}

// PerturbedCosts returns a copy of c where every arc's cost is scaled by
// 1±heureps: the sign is negative (cheaper) if the arc is in the
// incumbent, positive (costlier) otherwise, clamped at 0. Running dual
// ascent and Construct over this perturbed vector instead of c biases
// the heuristic toward keeping incumbent arcs and away from the rest,
// diversifying repeated restarts without any random draw.
//
// Complexity: O(m).
func PerturbedCosts(c []float64, incumbentArcs []bool, heureps float64) []float64 {
	out := make([]float64, len(c))
	for ij := range c {
		eps := heureps
		if ij < len(incumbentArcs) && incumbentArcs[ij] {
			eps = -heureps
		}
		v := c[ij] * (1 + eps)
		if v < 0 {
			v = 0
		}
		out[ij] = v
	}
	return out
}
