package dinst

// NewArc inserts arc ij with tail i, head j and cost w, appending it to
// Dout[i] and Din[j] and recording its position in each. If ji != NoArc,
// ij and ji are cross-linked as opposites of one another.
//
// Complexity: O(1).
func (inst *Instance) NewArc(i, j, ij, ji int, w float64) {
	inst.Tail[ij] = i
	inst.Head[ij] = j
	inst.C[ij] = w
	inst.Opposite[ij] = ji

	inst.Pout[ij] = len(inst.Dout[i])
	inst.Dout[i] = append(inst.Dout[i], ij)

	inst.Pin[ij] = len(inst.Din[j])
	inst.Din[j] = append(inst.Din[j], ij)

	if ji != NoArc {
		inst.Opposite[ji] = ij
	}
}

// DelArc removes ij from Din[Head[ij]] and Dout[Tail[ij]] in O(1) using
// the cached positions, swapping each list's last entry into the freed
// slot and fixing that entry's cached position. Marks Fe0[ij]; clears the
// Opposite link on ij's antiparallel partner, if any.
//
// Complexity: O(1).
func (inst *Instance) DelArc(ij int) {
	if inst.Fe0[ij] {
		return
	}
	i := inst.Tail[ij]
	j := inst.Head[ij]

	removeFromAdjacency(inst.Dout[i], inst.Pout, ij, func(moved int) { inst.Pout[moved] = inst.Pout[ij] })
	inst.Dout[i] = inst.Dout[i][:len(inst.Dout[i])-1]

	removeFromAdjacency(inst.Din[j], inst.Pin, ij, func(moved int) { inst.Pin[moved] = inst.Pin[ij] })
	inst.Din[j] = inst.Din[j][:len(inst.Din[j])-1]

	if ji := inst.Opposite[ij]; ji != NoArc {
		inst.Opposite[ji] = NoArc
		inst.Opposite[ij] = NoArc
	}

	inst.Fe0[ij] = true
}

// removeFromAdjacency swaps the entry equal to ij (at its cached position
// in pos[ij]) with the last element of list, then invokes fixup on the
// arc that moved into ij's old slot so the caller can update its cached
// position. list is mutated in place but not truncated; the caller drops
// the last element after this returns.
func removeFromAdjacency(list []int, pos []int, ij int, fixup func(moved int)) {
	p := pos[ij]
	last := len(list) - 1
	moved := list[last]
	list[p] = moved
	if moved != ij {
		fixup(moved)
	}
}

// MoveHead rewires arc ij so its head becomes k: removes ij from
// Din[Head[ij]] and appends it to Din[k], updating Pin accordingly.
// Dout bookkeeping is untouched.
//
// Complexity: O(1).
func (inst *Instance) MoveHead(ij, k int) {
	j := inst.Head[ij]
	removeFromAdjacency(inst.Din[j], inst.Pin, ij, func(moved int) { inst.Pin[moved] = inst.Pin[ij] })
	inst.Din[j] = inst.Din[j][:len(inst.Din[j])-1]

	inst.Head[ij] = k
	inst.Pin[ij] = len(inst.Din[k])
	inst.Din[k] = append(inst.Din[k], ij)
}

// MoveTail rewires arc ij so its tail becomes k, symmetric to MoveHead.
//
// Complexity: O(1).
func (inst *Instance) MoveTail(ij, k int) {
	i := inst.Tail[ij]
	removeFromAdjacency(inst.Dout[i], inst.Pout, ij, func(moved int) { inst.Pout[moved] = inst.Pout[ij] })
	inst.Dout[i] = inst.Dout[i][:len(inst.Dout[i])-1]

	inst.Tail[ij] = k
	inst.Pout[ij] = len(inst.Dout[k])
	inst.Dout[k] = append(inst.Dout[k], ij)
}

// RemoveNode marks i fixed-out and deletes every arc incident to i. The
// graph store does not touch Offset; callers (reductions) are
// responsible for accumulating the removed revenue, per §4.1.
//
// Complexity: O(deg(i)).
func (inst *Instance) RemoveNode(i int) {
	inst.F0[i] = true

	out := append([]int(nil), inst.Dout[i]...)
	for _, ij := range out {
		inst.DelArc(ij)
	}
	in := append([]int(nil), inst.Din[i]...)
	for _, ij := range in {
		inst.DelArc(ij)
	}
}
