package dinst

// Merge contracts arc ij by folding node j into node i: every arc
// incident to j is rerouted to touch i instead, any arcs directly between
// i and j are deleted, and the back-mapping is updated so that Bmna[i]
// absorbs Bmna[j] (j itself is left with empty adjacency and flagged F0,
// mirroring removeNode's bookkeeping without double-accounting revenue —
// callers that want revenue accounted use ContractArc).
//
// Deduplication: if rerouting would create two parallel arcs with the
// same direction (same tail and head), the higher-cost one is deleted;
// ties are broken by keeping the lower arc index.
//
// Complexity: O(deg(i) + deg(j)).
func (inst *Instance) Merge(ij, i, j int) {
	inst.updateBMMerge(i, j)

	// Delete every arc directly connecting i and j (both directions).
	for _, direct := range inst.arcsBetween(i, j) {
		inst.DelArc(direct)
	}

	// Reroute every arc touching j onto i.
	outJ := append([]int(nil), inst.Dout[j]...)
	for _, a := range outJ {
		inst.MoveTail(a, i)
	}
	inJ := append([]int(nil), inst.Din[j]...)
	for _, a := range inJ {
		inst.MoveHead(a, i)
	}

	inst.dedupeParallel(i)

	inst.Bmna[i] = append(inst.Bmna[i], inst.Bmna[j]...)
	inst.Bmna[j] = nil
	inst.F0[j] = true
}

// arcsBetween returns every arc (in either direction) directly connecting
// i and j, scanning the smaller of the two adjacency footprints.
func (inst *Instance) arcsBetween(i, j int) []int {
	var found []int
	for _, a := range inst.Dout[i] {
		if inst.Head[a] == j {
			found = append(found, a)
		}
	}
	for _, a := range inst.Dout[j] {
		if inst.Head[a] == i {
			found = append(found, a)
		}
	}
	return found
}

// dedupeParallel removes higher-cost duplicate arcs sharing the same
// (tail, head) pair among node i's incident arcs, keeping the cheaper
// (ties broken by lower index).
func (inst *Instance) dedupeParallel(i int) {
	dedupeDirection(inst, append([]int(nil), inst.Dout[i]...), func(a int) int { return inst.Head[a] })
	dedupeDirection(inst, append([]int(nil), inst.Din[i]...), func(a int) int { return inst.Tail[a] })
}

func dedupeDirection(inst *Instance, arcs []int, other func(int) int) {
	best := make(map[int]int, len(arcs))
	for _, a := range arcs {
		if inst.Fe0[a] {
			continue
		}
		k := other(a)
		cur, ok := best[k]
		if !ok {
			best[k] = a
			continue
		}
		keep, drop := cur, a
		if inst.C[a] < inst.C[cur] || (inst.C[a] == inst.C[cur] && a < cur) {
			keep, drop = a, cur
		}
		best[k] = keep
		inst.DelArc(drop)
	}
}

// ContractArc is a convenience wrapper around Merge(ji, Head[ji], Tail[ji])
// (i.e. merging the tail of ji into its head) for a caller contracting a
// node's sole incident arc: since that node can only ever be reached (or
// have its own subtree attached) through ji, both the tail's revenue and
// ji's own cost are unconditionally incurred whenever the merged node is,
// and are folded into the Offset, mirroring the original's contractArc
// which adds p(j) on behalf of the caller.
//
// Complexity: O(deg(i) + deg(j)).
func (inst *Instance) ContractArc(ji int) {
	j := inst.Tail[ji]
	i := inst.Head[ji]
	inst.Offset += inst.P[j] + inst.C[ji]
	inst.Merge(ji, i, j)
}

// updateBMMerge preserves the back-mapping of every arc directly
// connecting i and j, which Merge is about to delete (arcsBetween(i, j),
// computed again here before that deletion happens): once i and j become
// one node, such an arc no longer represents anything on its own, but it
// may have been the *only* connection j had to the rest of the graph (the
// NTD1/ContractArc case), so simply dropping it would lose the fact that
// using it was unconditional. Its back-mapping is instead copied onto
// every other arc still touching j (rerouted onto i by the reroute step
// that follows), so that whichever of those ends up selected in a
// solution also reinstates the direct connection on recovery. If j has no
// other arcs, the copy loop is simply a no-op and nothing is lost beyond
// what the caller (ContractArc) already folds into Offset.
func (inst *Instance) updateBMMerge(i, j int) {
	direct := inst.arcsBetween(i, j)
	isDirect := make(map[int]bool, len(direct))
	for _, d := range direct {
		isDirect[d] = true
	}
	for _, d := range direct {
		for _, a := range inst.Dout[j] {
			if !isDirect[a] {
				inst.Bmaa[a] = append(inst.Bmaa[a], inst.Bmaa[d]...)
			}
		}
		for _, a := range inst.Din[j] {
			if !isDirect[a] {
				inst.Bmaa[a] = append(inst.Bmaa[a], inst.Bmaa[d]...)
			}
		}
	}
}
