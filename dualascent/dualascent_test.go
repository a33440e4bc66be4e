package dualascent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mluipersbeck/dapcstp/dinst"
	"github.com/mluipersbeck/dapcstp/dsol"
)

// buildTinyRooted matches spec scenario 1: 0 -(1)-> 1 -(2)-> 2, r=0,
// terminals {0,2}.
func buildTinyRooted() *dinst.Instance {
	inst := dinst.NewInstance(3, 2)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.NewArc(1, 2, 1, dinst.NoArc, 2)
	inst.R = 0
	inst.T[0] = true
	inst.T[2] = true
	return inst
}

func TestRunComputesExactLowerBoundOnChain(t *testing.T) {
	inst := buildTinyRooted()
	lb, cr, pi := Run(0, inst, inst.C, dinst.Inf, false, 1e-9, nil)

	require.InDelta(t, 3.0, lb, 1e-9)
	require.InDelta(t, 0.0, cr[0], 1e-9)
	require.InDelta(t, 0.0, cr[1], 1e-9)
	require.InDelta(t, 3.0, pi[2], 1e-9)
}

func TestRunNoRequiredNodesYieldsZeroBound(t *testing.T) {
	inst := dinst.NewInstance(2, 1)
	inst.NewArc(0, 1, 0, dinst.NoArc, 5)
	inst.R = 0

	lb, cr, _ := Run(0, inst, inst.C, dinst.Inf, false, 1e-9, nil)
	require.Equal(t, 0.0, lb)
	require.Equal(t, inst.C[0], cr[0])
}

func TestRunEagerStopsOnceCutoff(t *testing.T) {
	inst := buildTinyRooted()
	// ub - absgap is already below the true lb of 3, so eager must return
	// as soon as the running bound crosses it rather than computing the
	// exact 3.0.
	lb, _, _ := Run(0, inst, inst.C, 1.0, true, 0, nil)
	require.Greater(t, lb, 1.0-1e-9)
	require.Less(t, lb, 3.0)
}

func TestRunSumsBoundAcrossMultipleComponents(t *testing.T) {
	// Two disjoint required singleton components {1} and {2}, each
	// entered by one arc of cost 4: the total bound sums both regardless
	// of which component a guide would prefer first.
	inst := dinst.NewInstance(3, 2)
	inst.NewArc(0, 1, 0, dinst.NoArc, 4)
	inst.NewArc(0, 2, 1, dinst.NoArc, 4)
	inst.R = 0
	inst.T[1] = true
	inst.T[2] = true

	guide := &dsol.Solution{Nodes: []bool{false, false, true}}
	lb, _, _ := Run(0, inst, inst.C, dinst.Inf, false, 1e-9, guide)
	require.InDelta(t, 8.0, lb, 1e-9)
}
