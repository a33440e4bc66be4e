package dinst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeReroutesAndAbsorbsBmna(t *testing.T) {
	// 0 -(1)-> 1 -(2)-> 2: merge arc 0 (0->1), absorbing 1 into 0.
	inst := NewInstance(3, 2)
	inst.NewArc(0, 1, 0, NoArc, 1)
	inst.NewArc(1, 2, 1, NoArc, 2)

	inst.Merge(0, 0, 1)

	require.True(t, inst.F0[1])
	require.True(t, inst.Fe0[0], "the contracted arc itself is deleted")
	require.Equal(t, []int{1}, inst.Dout[0], "arc 1 rerouted to originate at 0")
	require.Equal(t, 0, inst.Tail[1])
	require.Equal(t, []int{0, 1}, inst.Bmna[0])
}

func TestMergeDedupesParallelArcsKeepingCheaper(t *testing.T) {
	// 0->1(5), 1->2(1), 0->2(3): merging 1 into 0 along 0->1 would
	// reroute 1->2 into a second 0->2 arc alongside the existing one;
	// the cheaper of the two must survive.
	inst := NewInstance(3, 3)
	inst.NewArc(0, 1, 0, NoArc, 5)
	inst.NewArc(1, 2, 1, NoArc, 1)
	inst.NewArc(0, 2, 2, NoArc, 3)

	inst.Merge(0, 0, 1)

	var survivors []int
	for _, ij := range inst.Dout[0] {
		if !inst.Fe0[ij] {
			survivors = append(survivors, ij)
		}
	}
	require.Equal(t, []int{1}, survivors, "the cost-1 rerouted arc beats the cost-3 original")
}

func TestContractArcFoldsRevenueAndArcCostIntoOffset(t *testing.T) {
	inst := NewInstance(2, 1)
	inst.NewArc(0, 1, 0, NoArc, 4)
	inst.P[0] = 3

	// ContractArc merges the arc's tail (0) into its head (1).
	inst.ContractArc(0)

	require.Equal(t, 7.0, inst.Offset, "arc cost 4 plus absorbed revenue 3")
	require.True(t, inst.F0[0])
}

func TestUpdateBMMergeRedistributesContractedArcBackMapping(t *testing.T) {
	// 0 -(only)-> 1 -(other)-> 2: contracting "only" (absorbing 1 into 0)
	// must carry its back-mapping onto "other", the sole arc still
	// touching the absorbed node, so recovery can reinstate it later.
	inst := NewInstance(3, 2)
	inst.NewArc(0, 1, 0, NoArc, 1)
	inst.NewArc(1, 2, 1, NoArc, 1)
	inst.Bmaa[0] = []int{100}
	inst.Bmaa[1] = []int{200}

	inst.Merge(0, 0, 1)

	require.Contains(t, inst.Bmaa[1], 100, "the contracted arc's back-mapping survives on the rerouted arc")
	require.Contains(t, inst.Bmaa[1], 200, "alongside its own original back-mapping")
}
