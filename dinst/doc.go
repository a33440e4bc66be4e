// Package dinst implements the directed problem-instance data model used
// throughout the dapcstp solver: a mutable directed multigraph with
// per-arc cost, per-node revenue, fixed-in/fixed-out/terminal flags, and a
// back-mapping that records which original nodes and arcs collapsed into
// each current node/arc across a sequence of reductions.
//
// Design goals:
//   - Determinism: adjacency order depends only on the sequence of arc
//     insertions and deletions (DelArc swaps the last entry into the
//     freed slot); no map iteration drives algorithmic decisions anywhere
//     in this package.
//   - O(1) arc deletion: each arc caches its position in the head's
//     incoming list and the tail's outgoing list (Pin/Pout), so DelArc can
//     swap-with-last instead of scanning.
//   - Ownership: Instance is not safe for concurrent use. The solver is
//     strictly single-threaded (see bbsolve); every BBNode owns an
//     exclusive Instance snapshot produced by Clone.
//
// Every mutation that removes objective value (removing a node, fixing a
// terminal out) must be balanced by the caller updating Offset. The only
// Instance method that changes Offset is ContractArc, which adds the
// merged tail's revenue and the contracted arc's cost to it.
package dinst
