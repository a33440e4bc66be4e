// Package primal implements the primal heuristic of §4.5: a deterministic
// greedy grow-and-prune construction (Construct/primI), an exact
// minimum-cost arborescence solver for leaf evaluation (DMST, Chu-Liu/
// Edmonds'), and the support-graph and perturbed-cost vectors the B&B
// engine feeds through them to diversify repeated restarts.
package primal
