package dapcstp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mluipersbeck/dapcstp/bbsolve"
	"github.com/mluipersbeck/dapcstp/dinst"
)

func TestSolveTinyRooted(t *testing.T) {
	// nodes {0,1,2}, r=0, terminals {0,2}, arcs 0->1(1), 1->2(2), 0->2(10).
	inst := dinst.NewInstance(3, 3)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.NewArc(1, 2, 1, dinst.NoArc, 2)
	inst.NewArc(0, 2, 2, dinst.NoArc, 10)
	inst.R = 0
	inst.T[0] = true
	inst.T[2] = true

	res := Solve(inst, DefaultOptions(), DefaultLimits())
	require.Equal(t, bbsolve.BBOptimal, res.Cause)
	require.NotNil(t, res.Solution)
	require.Equal(t, 3.0, res.Solution.Obj)
}

func TestSolvePrizeCollectingTradeoff(t *testing.T) {
	// nodes {0..3}, r=0, arcs 0->1(5), 1->2(5), 2->3(5), p=[0,2,2,20].
	// Expected: all nodes included, obj = 15 - 24 = -9.
	inst := dinst.NewInstance(4, 3)
	inst.NewArc(0, 1, 0, dinst.NoArc, 5)
	inst.NewArc(1, 2, 1, dinst.NoArc, 5)
	inst.NewArc(2, 3, 2, dinst.NoArc, 5)
	inst.P[1] = 2
	inst.P[2] = 2
	inst.P[3] = 20
	inst.R = 0

	res := Solve(inst, DefaultOptions(), DefaultLimits())
	require.NotNil(t, res.Solution)
	require.Equal(t, -9.0, res.Solution.Obj)
	require.Equal(t, []bool{true, true, true, true}, res.Solution.Nodes)
}

func TestSolveUnprofitableLeafPruned(t *testing.T) {
	// Chain of cost-1 arcs, p=[0,2,2,0]: nodes 1 and 2 each pay for
	// themselves (and then some), but node 3 carries no revenue at all
	// and isn't worth its arc. Expected optimum keeps {1,2}, drops 3:
	// obj = 2 - 4 = -2.
	inst := dinst.NewInstance(4, 3)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.NewArc(1, 2, 1, dinst.NoArc, 1)
	inst.NewArc(2, 3, 2, dinst.NoArc, 1)
	inst.P[1] = 2
	inst.P[2] = 2
	inst.R = 0

	res := Solve(inst, DefaultOptions(), DefaultLimits())
	require.NotNil(t, res.Solution)
	require.Equal(t, -2.0, res.Solution.Obj)
	require.Equal(t, []bool{true, true, true, false}, res.Solution.Nodes)
}

func TestSolveAntiparallelContraction(t *testing.T) {
	// Two mutually terminal nodes joined by 0->1(1) and 1->0(1): the pair
	// must end up connected at cost 1, using whichever of the two arcs
	// survives contraction/recovery.
	inst := dinst.NewInstance(2, 2)
	inst.NewArc(0, 1, 0, 1, 1)
	inst.NewArc(1, 0, 1, 0, 1)
	inst.T[0] = true
	inst.T[1] = true
	inst.R = 0

	res := Solve(inst, DefaultOptions(), DefaultLimits())
	require.Equal(t, bbsolve.BBOptimal, res.Cause)
	require.NotNil(t, res.Solution)
	require.Equal(t, 1.0, res.Solution.Obj)
	require.Equal(t, []bool{true, true}, res.Solution.Nodes)
	require.Equal(t, 1, countTrue(res.Solution.Arcs))
}

func TestSolveSingleNodeInstance(t *testing.T) {
	inst := dinst.NewInstance(1, 0)
	inst.P[0] = 7
	inst.R = 0

	res := Solve(inst, DefaultOptions(), DefaultLimits())
	require.Equal(t, bbsolve.BBOptimal, res.Cause)
	require.NotNil(t, res.Solution)
	require.Equal(t, -7.0, res.Solution.Obj)
	require.Equal(t, []bool{true}, res.Solution.Nodes)
	require.Equal(t, 0, res.NIter)
}

func TestSolveRespectsTimeLimit(t *testing.T) {
	inst := dinst.NewInstance(4, 3)
	inst.NewArc(0, 1, 0, dinst.NoArc, 5)
	inst.NewArc(1, 2, 1, dinst.NoArc, 5)
	inst.NewArc(2, 3, 2, dinst.NoArc, 5)
	inst.P[1] = 2
	inst.P[2] = 2
	inst.P[3] = 20
	inst.R = 0

	limits := DefaultLimits()
	limits.TimeLim = 1e-9

	res := Solve(inst, DefaultOptions(), limits)
	require.True(t, res.Cause == bbsolve.BBTimeLimit || res.Cause == bbsolve.BBOptimal)
	if res.Solution != nil {
		require.LessOrEqual(t, res.Bestlb, res.Solution.Obj+1)
	}
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
