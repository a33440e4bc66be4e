package dinst

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mluipersbeck/dapcstp/dsol"
)

// buildPath3 builds 0 -(1)-> 1 -(2)-> 2, with 0 rooted and 2 terminal.
func buildPath3(t *testing.T) *Instance {
	t.Helper()
	inst := NewInstance(3, 2)
	inst.NewArc(0, 1, 0, NoArc, 1)
	inst.NewArc(1, 2, 1, NoArc, 2)
	inst.R = 0
	inst.T[0] = true
	inst.T[2] = true
	return inst
}

func TestNewArcDelArc(t *testing.T) {
	inst := buildPath3(t)
	require.Equal(t, []int{0}, inst.Dout[0])
	require.Equal(t, []int{1}, inst.Dout[1])
	require.Equal(t, []int{0}, inst.Din[1])
	require.Equal(t, []int{1}, inst.Din[2])

	inst.DelArc(0)
	require.True(t, inst.Fe0[0])
	require.Empty(t, inst.Dout[0])
	require.Empty(t, inst.Din[1])

	// Deleting an already-deleted arc is a no-op, not a panic.
	inst.DelArc(0)
}

func TestDelArcSwapRemoveKeepsOthersConsistent(t *testing.T) {
	inst := NewInstance(2, 3)
	inst.NewArc(0, 1, 0, NoArc, 1)
	inst.NewArc(0, 1, 1, NoArc, 2)
	inst.NewArc(0, 1, 2, NoArc, 3)

	inst.DelArc(0) // swaps arc 2 into slot 0 within Dout[0]

	remaining := map[int]bool{}
	for _, ij := range inst.Dout[0] {
		remaining[ij] = true
	}
	require.Equal(t, map[int]bool{1: true, 2: true}, remaining)

	// arc 2's cached Pout must match its new position.
	require.Equal(t, inst.Pout[2], indexOf(inst.Dout[0], 2))
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func TestRemoveNodeDeletesIncidentArcs(t *testing.T) {
	inst := buildPath3(t)
	inst.RemoveNode(1)
	require.True(t, inst.F0[1])
	require.Empty(t, inst.Dout[0])
	require.Empty(t, inst.Din[2])
	require.True(t, inst.Fe0[0])
	require.True(t, inst.Fe0[1])
}

func TestReachableFrom(t *testing.T) {
	inst := buildPath3(t)
	reached := inst.ReachableFrom(0)
	require.Equal(t, []bool{true, true, true}, reached)

	inst.DelArc(1)
	reached = inst.ReachableFrom(0)
	require.Equal(t, []bool{true, true, false}, reached)
}

func TestCloneIsIndependent(t *testing.T) {
	inst := buildPath3(t)
	clone := inst.Clone()

	clone.DelArc(0)
	require.False(t, inst.Fe0[0], "mutating the clone must not affect the original")
	require.True(t, clone.Fe0[0])

	clone.P[1] = 42
	require.NotEqual(t, clone.P[1], inst.P[1])
}

func TestConvertMWCS2PCSTP(t *testing.T) {
	inst := NewInstance(2, 1)
	inst.NewArc(0, 1, 0, NoArc, 1)
	inst.IsMWCS = true
	inst.P[1] = -5

	inst.ConvertMWCS2PCSTP()

	require.Equal(t, 0.0, inst.P[1])
	require.Equal(t, 6.0, inst.C[0]) // 1 + 5 deficit shifted onto the incoming arc
	require.Len(t, inst.Transform, 1)

	back := inst.ConvertPCSTPBound2MWCS(10)
	require.Equal(t, 15.0, back) // 10 - Delta(-5) => 10 + 5
}

func TestCreateRootedBigMCopy(t *testing.T) {
	inst := NewInstance(3, 1)
	inst.NewArc(0, 1, 0, NoArc, 1)
	inst.IsAsym = true // every node is a root candidate
	inst.P[0], inst.P[1], inst.P[2] = 3, 2, 1

	copyInst := inst.CreateRootedBigMCopy()
	require.Equal(t, inst.N+1, copyInst.N)
	require.Equal(t, inst.N, copyInst.R)
	require.True(t, copyInst.F1[copyInst.R])

	// One zero-cost outgoing arc and one BigM-cost return arc per candidate.
	require.Len(t, copyInst.Dout[copyInst.R], inst.N)
	for _, ij := range copyInst.Dout[copyInst.R] {
		require.Equal(t, 0.0, copyInst.C[ij])
	}
}

func TestRecoverPartialSolutionResolvesAntiparallel(t *testing.T) {
	orig := NewInstance(2, 2)
	orig.NewArc(0, 1, 0, 1, 1)
	orig.NewArc(1, 0, 1, 0, 5)

	reduced := orig.Clone()
	partial := &dsol.Solution{
		Nodes: []bool{true, true},
		Arcs:  []bool{true, true},
		Root:  0,
		Obj:   1,
	}

	out := reduced.RecoverPartialSolution(partial, orig)
	require.True(t, out.Arcs[0], "cheaper direction kept")
	require.False(t, out.Arcs[1], "heavier antiparallel twin dropped")
	require.Equal(t, 0, out.Root)
	require.False(t, out.Partial)
}
