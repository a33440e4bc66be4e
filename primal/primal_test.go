package primal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mluipersbeck/dapcstp/dinst"
)

func TestConstructAddsProfitableNodeOnly(t *testing.T) {
	// 0 -(1)-> 1 -(3)-> 2; node 1 is profitable to visit (P=5 > cost 1),
	// node 2 is not (P=1 < cost 3) and must be left out.
	inst := dinst.NewInstance(3, 2)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.NewArc(1, 2, 1, dinst.NoArc, 3)
	inst.P[1] = 5
	inst.P[2] = 1

	nodes, arcs, obj := Construct(0, inst, inst.C)
	require.Equal(t, []bool{true, true, false}, nodes)
	require.Equal(t, []bool{true, false}, arcs)
	require.Equal(t, -4.0, obj) // 0 + 1 - 5
}

func TestConstructSkipsUnreachedDeadEnd(t *testing.T) {
	inst := dinst.NewInstance(2, 1)
	inst.NewArc(0, 1, 0, dinst.NoArc, 10)
	inst.P[1] = 1 // never worth crossing a cost-10 arc for revenue 1

	nodes, arcs, _ := Construct(0, inst, inst.C)
	require.Equal(t, []bool{true, false}, nodes)
	require.Equal(t, []bool{false}, arcs)
}

func TestConstructForcesInFixedInNodeDespiteUnfavorableMarginal(t *testing.T) {
	// Node 1 is fixed-in (F1) even though its revenue (1) doesn't cover
	// the arc cost (10): Construct must include it anyway, and the prune
	// pass must not later discard it.
	inst := dinst.NewInstance(2, 1)
	inst.NewArc(0, 1, 0, dinst.NoArc, 10)
	inst.P[1] = 1
	inst.F1[1] = true

	nodes, arcs, _ := Construct(0, inst, inst.C)
	require.Equal(t, []bool{true, true}, nodes)
	require.Equal(t, []bool{true}, arcs)
}

func TestPruneNegativeLeavesRemovesUnprofitableLeaf(t *testing.T) {
	// Whitebox: construct a tree state directly (bypassing Construct's own
	// marginal<0 gate) where leaf 1 costs more than it earns, and check
	// the prune pass removes it.
	inst := dinst.NewInstance(2, 1)
	inst.NewArc(0, 1, 0, dinst.NoArc, 5)
	inst.P[1] = 2

	nodes := []bool{true, true}
	arcs := []bool{true}
	parentArc := []int{-1, 0}

	pruneNegativeLeaves(inst, inst.C, nodes, arcs, parentArc, 0)
	require.False(t, nodes[1])
	require.False(t, arcs[0])
}

func TestPruneNegativeLeavesKeepsProfitableLeaf(t *testing.T) {
	inst := dinst.NewInstance(2, 1)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.P[1] = 5

	nodes := []bool{true, true}
	arcs := []bool{true}
	parentArc := []int{-1, 0}

	pruneNegativeLeaves(inst, inst.C, nodes, arcs, parentArc, 0)
	require.True(t, nodes[1])
	require.True(t, arcs[0])
}

func TestPruneNegativeLeavesKeepsFixedInLeafRegardless(t *testing.T) {
	inst := dinst.NewInstance(2, 1)
	inst.NewArc(0, 1, 0, dinst.NoArc, 5)
	inst.P[1] = 2
	inst.F1[1] = true

	nodes := []bool{true, true}
	arcs := []bool{true}
	parentArc := []int{-1, 0}

	pruneNegativeLeaves(inst, inst.C, nodes, arcs, parentArc, 0)
	require.True(t, nodes[1])
	require.True(t, arcs[0])
}

func TestDMSTAcyclicPicksCheapestIncomingPerNode(t *testing.T) {
	inst := dinst.NewInstance(3, 3)
	inst.NewArc(0, 1, 0, dinst.NoArc, 2)
	inst.NewArc(0, 2, 1, dinst.NoArc, 5)
	inst.NewArc(1, 2, 2, dinst.NoArc, 1)

	arcs, cost, ok := DMST(0, inst, inst.C)
	require.True(t, ok)
	require.Equal(t, 3.0, cost)
	require.Equal(t, []bool{true, false, true}, arcs)
}

func TestDMSTIgnoresUnreachableNode(t *testing.T) {
	inst := dinst.NewInstance(2, 0)
	_, _, ok := DMST(0, inst, inst.C)
	require.True(t, ok)
}

func TestDMSTContractsCycle(t *testing.T) {
	// 0->1(10), 0->2(10), 1->2(1), 2->1(1): the cheapest-incoming choice
	// for both 1 and 2 forms a 1<->2 cycle that must be contracted.
	inst := dinst.NewInstance(3, 4)
	inst.NewArc(0, 1, 0, dinst.NoArc, 10)
	inst.NewArc(0, 2, 1, dinst.NoArc, 10)
	inst.NewArc(1, 2, 2, dinst.NoArc, 1)
	inst.NewArc(2, 1, 3, dinst.NoArc, 1)

	arcs, cost, ok := DMST(0, inst, inst.C)
	require.True(t, ok)
	require.Equal(t, 11.0, cost)
	require.Equal(t, []bool{true, false, true, false}, arcs)
}

func TestSupportGraphCostsCutsArcsAboveDasat(t *testing.T) {
	inst := dinst.NewInstance(2, 2)
	inst.NewArc(0, 1, 0, dinst.NoArc, 3)
	inst.NewArc(0, 1, 1, dinst.NoArc, 7)
	cr := []float64{0.1, 0.9}

	c := SupportGraphCosts(inst, cr, 0.5)
	require.Equal(t, 3.0, c[0])
	require.Equal(t, dinst.Inf, c[1])
}

func TestPerturbedCostsFavorsIncumbentArcs(t *testing.T) {
	c := []float64{10, 10}
	incumbent := []bool{true, false}

	out := PerturbedCosts(c, incumbent, 0.1)
	require.InDelta(t, 9.0, out[0], 1e-9)
	require.InDelta(t, 11.0, out[1], 1e-9)
}

func TestPerturbedCostsClampsAtZero(t *testing.T) {
	c := []float64{0}
	out := PerturbedCosts(c, []bool{true}, 2.0) // 0 * (1-2) = 0, already at floor
	require.Equal(t, 0.0, out[0])
}
