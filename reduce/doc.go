// Package reduce implements the reduction cascade of §4.4: a fixpoint
// loop of cost-shifting, degree-1/2 simplification, min-adjacency
// fixing, articulation-point fixing and subtree bounding, and
// reduced-cost/bound-based elimination, applied in the exact order
// bbtree.cpp's preprocess loop uses:
//
//	costShift -> NTD1 -> NTD2 -> MA -> AP-fixing -> MAcutnode -> MAcutarc -> LC -> NR
//
// Preprocess runs the bound-free part (costShift through MAcutarc) to a
// fixpoint; bbsolve calls it once up front and, unless its own
// Options.RedRootOnly is set, at every B&B node. BBRed runs LC, which
// needs fresh reduced costs from a daR call, mirroring process()'s
// separate bbred invocation; NR is called by the caller on its own.
package reduce
