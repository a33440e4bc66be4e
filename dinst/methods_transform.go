package dinst

// ConvertMWCS2PCSTP rewrites a Maximum Weight Connected Subgraph instance
// into an equivalent Prize-Collecting Steiner Tree instance: every node
// with negative revenue has that deficit shifted onto the cost of each of
// its incoming arcs (increasing their cost by -p(i)), and its own revenue
// is zeroed. Each shift is appended to Transform so the bound can be
// translated back via ConvertPCSTPBound2MWCS.
//
// This only has meaning while IsMWCS is true; it is a no-op otherwise.
//
// Complexity: O(n + m).
func (inst *Instance) ConvertMWCS2PCSTP() {
	if !inst.IsMWCS {
		return
	}
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || inst.P[i] >= 0 {
			continue
		}
		deficit := -inst.P[i]
		for _, ij := range inst.Din[i] {
			inst.C[ij] += deficit
		}
		inst.Transform = append(inst.Transform, TransformStep{Node: i, Delta: -deficit})
		inst.P[i] = 0
	}
}

// ConvertPCSTPBound2MWCS reverses the revenue-shift transformations
// recorded by ConvertMWCS2PCSTP, translating a PCSTP objective bound back
// into the corresponding MWCS objective.
//
// Complexity: O(len(Transform)).
func (inst *Instance) ConvertPCSTPBound2MWCS(bound float64) float64 {
	adjusted := bound
	for _, step := range inst.Transform {
		adjusted -= step.Delta
	}
	return adjusted
}

// SetBigM marks this instance as a synthetic bigM-rooted copy with the
// given large arc cost.
//
// Complexity: O(1).
func (inst *Instance) SetBigM(m float64) {
	inst.BigM = m
}

// CreateRootedBigMCopy builds an auxiliary rooted instance for an
// unrooted inst: a synthetic root node n is added, connected to every
// node eligible to be a root (terminals, or all nodes if asymmetric) by a
// zero-cost arc whose opposite-direction twin costs BigM — simulating
// per-root selection so dual ascent on the copy yields a global bound for
// the original unrooted instance (§3 "BigM copy").
//
// The returned instance has N = inst.N+1, with the synthetic root at
// index inst.N, rooted at that index.
//
// Complexity: O(n + m).
func (inst *Instance) CreateRootedBigMCopy() *Instance {
	candidates := make([]int, 0, inst.N)
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] {
			continue
		}
		if !inst.IsAsym && !inst.T[i] {
			continue
		}
		candidates = append(candidates, i)
	}

	extraArcs := 2 * len(candidates)
	out := NewInstance(inst.N+1, inst.M+extraArcs)
	synthRoot := inst.N

	copyArcsInto(inst, out)
	copyNodeFieldsInto(inst, out)

	out.R = synthRoot
	out.F1[synthRoot] = true
	out.T[synthRoot] = true
	out.IsAsym = inst.IsAsym
	out.IsMWCS = inst.IsMWCS
	out.Offset = inst.Offset
	out.SetBigM(Inf)

	ij := inst.M
	for _, k := range candidates {
		ji := ij + 1
		out.NewArc(synthRoot, k, ij, ji, 0)
		out.NewArc(k, synthRoot, ji, ij, Inf)
		ij += 2
	}

	return out
}

func copyArcsInto(src, dst *Instance) {
	for a := 0; a < src.M; a++ {
		if src.Fe0[a] {
			dst.Fe0[a] = true
			continue
		}
		dst.NewArc(src.Tail[a], src.Head[a], a, src.Opposite[a], src.C[a])
	}
}

func copyNodeFieldsInto(src, dst *Instance) {
	for i := 0; i < src.N; i++ {
		dst.P[i] = src.P[i]
		dst.F0[i] = src.F0[i]
		dst.F1[i] = src.F1[i]
		dst.T[i] = src.T[i]
		dst.Bmna[i] = append([]int(nil), src.Bmna[i]...)
	}
}
