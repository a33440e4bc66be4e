// Package bbsolve implements the branch-and-bound driver of §4.6: root
// enumeration over candidate roots, the per-node process/branch/select
// state machine, and the exported Solve entrypoint tying together
// dinst, dualascent, reduce, and primal into one search.
//
// Options and Limits form the data-contract surface external callers
// (CLI flags, config files) populate; everything else in this package is
// internal to the search.
package bbsolve
