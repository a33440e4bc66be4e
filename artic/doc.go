// Package artic finds articulation points of the undirected structure
// underlying a dinst.Instance (an arc in either direction counts as a
// connection) via a classical low-link DFS, extended to record, for
// every non-articulation node, the nearest ancestor articulation point
// ("lastap") — used by the AP-fixing and MAcutnode/MAcutarc reductions to
// test whether a hanging subtree contains a fixed-in node.
//
// State tracking follows the teacher's dfs package convention of an
// explicit White/Gray/Black visitation enum rather than relying solely on
// a "visited" bitmap, which keeps the DFS-stack membership test and the
// disc/low bookkeeping in one place.
package artic
