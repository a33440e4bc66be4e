package artic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mluipersbeck/dapcstp/dinst"
)

// buildPathGraph builds 0-1-2-3 as a directed chain; the underlying
// undirected structure is a path, so nodes 1 and 2 are the cut vertices.
func buildPathGraph() *dinst.Instance {
	inst := dinst.NewInstance(4, 3)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.NewArc(1, 2, 1, dinst.NoArc, 1)
	inst.NewArc(2, 3, 2, dinst.NoArc, 1)
	return inst
}

func TestFindOnPathGraph(t *testing.T) {
	inst := buildPathGraph()
	ap, _ := Find(inst)
	require.Equal(t, []bool{false, true, true, false}, ap)
}

func TestFindOnTriangleHasNoArticulationPoint(t *testing.T) {
	inst := dinst.NewInstance(3, 3)
	inst.NewArc(0, 1, 0, dinst.NoArc, 1)
	inst.NewArc(1, 2, 1, dinst.NoArc, 1)
	inst.NewArc(2, 0, 2, dinst.NoArc, 1)

	ap, _ := Find(inst)
	require.Equal(t, []bool{false, false, false}, ap)
}

func TestFindAllSubtreesGroupsByNearestArticulation(t *testing.T) {
	inst := buildPathGraph()
	ap, lastap := Find(inst)
	groups := FindAllSubtrees(inst, ap, lastap)

	// Node 0 hangs off no articulation point above it (root of the DFS).
	require.Contains(t, groups[-1], 0)
	// Node 3 hangs off articulation point 2.
	require.Contains(t, groups[2], 3)
}

func TestFindSkipsRemovedNodes(t *testing.T) {
	inst := buildPathGraph()
	inst.RemoveNode(1)
	ap, _ := Find(inst)
	// With node 1 gone, the remaining structure is 0 isolated and 2-3
	// connected: no articulation points remain.
	require.False(t, ap[2])
	require.False(t, ap[3])
}
