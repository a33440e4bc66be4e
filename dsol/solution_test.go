package dsol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mluipersbeck/dapcstp/dinst"
)

func buildPath3(t *testing.T) *dinst.Instance {
	t.Helper()
	inst := dinst.NewInstance(3, 2)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.NewArc(1, 2, 1, dinst.NoArc, 2)
	inst.R = 0
	inst.T[0] = true
	inst.T[2] = true
	inst.F1[0] = true
	inst.F1[2] = true
	return inst
}

func TestValidateAcceptsArborescence(t *testing.T) {
	inst := buildPath3(t)
	sol := &Solution{
		Nodes: []bool{true, true, true},
		Arcs:  []bool{true, true},
		Root:  0,
		Obj:   3,
	}
	ok, obj := sol.Validate(inst)
	require.True(t, ok)
	require.Equal(t, 3.0, obj)
}

func TestValidateRejectsMissingFixedInNode(t *testing.T) {
	inst := buildPath3(t)
	sol := &Solution{
		Nodes: []bool{true, true, false},
		Arcs:  []bool{true, false},
		Root:  0,
		Obj:   1,
	}
	ok, _ := sol.Validate(inst)
	require.False(t, ok, "node 2 is fixed-in but excluded from the solution")
}

func TestValidateRejectsMissingTerminalNotYetFixedIn(t *testing.T) {
	// Node 2 is a terminal (T) but hasn't been branched on yet, so it
	// carries no F1 flag: Validate must still require its presence.
	inst := dinst.NewInstance(3, 2)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.NewArc(1, 2, 1, dinst.NoArc, 2)
	inst.R = 0
	inst.T[2] = true

	sol := &Solution{
		Nodes: []bool{true, false, false},
		Arcs:  []bool{false, false},
		Root:  0,
		Obj:   0,
	}
	ok, _ := sol.Validate(inst)
	require.False(t, ok, "terminal node 2 is required regardless of F1")
}

func TestValidateRejectsCycle(t *testing.T) {
	inst := dinst.NewInstance(2, 2)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.NewArc(1, 0, 1, dinst.NoArc, 1)
	sol := &Solution{
		Nodes: []bool{true, true},
		Arcs:  []bool{true, true},
		Root:  0,
		Obj:   2,
	}
	ok, _ := sol.Validate(inst)
	require.False(t, ok, "two selected nodes with two selected arcs can't be a tree")
}

func TestValidateRejectsWrongObjective(t *testing.T) {
	inst := buildPath3(t)
	sol := &Solution{
		Nodes: []bool{true, true, true},
		Arcs:  []bool{true, true},
		Root:  0,
		Obj:   999,
	}
	ok, _ := sol.Validate(inst)
	require.False(t, ok)
}

func TestRootSolution(t *testing.T) {
	sol := NewSolution(3, 2, -1)
	sol.Nodes[1] = true
	sol.Arcs[0] = true
	sol.Obj = 5

	sol.RootSolution(2)
	require.Equal(t, 2, sol.Root)
	require.Equal(t, []bool{false, false, true}, sol.Nodes)
	require.Equal(t, []bool{false, false}, sol.Arcs)
	require.Equal(t, 0.0, sol.Obj)
}

func TestClone(t *testing.T) {
	sol := NewSolution(2, 1, 0)
	sol.Nodes[0] = true
	clone := sol.Clone()
	clone.Nodes[1] = true
	require.False(t, sol.Nodes[1], "mutating the clone must not affect the original")
}
