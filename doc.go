// Package dapcstp is an exact branch-and-bound solver for the
// (asymmetric) Prize-Collecting Steiner Tree Problem on directed graphs,
// including Maximum Weight Connected Subgraph as a reducible variant.
//
// The solver is organized as one package per concern:
//
//	dinst/       — the directed instance data model and back-mapping
//	dsol/        — candidate solutions and their validation
//	artic/       — articulation-point detection
//	dualascent/  — Lagrangian dual ascent (lower bounds, reduced costs)
//	reduce/      — the graph reduction cascade
//	primal/      — the primal heuristic and exact leaf evaluation
//	bbsolve/     — the branch-and-bound driver (bbsolve.Solve)
//
// Callers build a dinst.Instance, then call bbsolve.Solve with an
// Options and Limits pair (bbsolve.DefaultOptions, bbsolve.DefaultLimits
// are reasonable starting points) to obtain a bbsolve.Result holding the
// incumbent solution and search statistics.
package dapcstp

import (
	"github.com/mluipersbeck/dapcstp/bbsolve"
	"github.com/mluipersbeck/dapcstp/dinst"
)

// Solve re-exports bbsolve.Solve as the package's single entrypoint.
func Solve(inst *dinst.Instance, opts bbsolve.Options, limits bbsolve.Limits) bbsolve.Result {
	return bbsolve.Solve(inst, opts, limits)
}

// DefaultOptions re-exports bbsolve.DefaultOptions.
func DefaultOptions() bbsolve.Options { return bbsolve.DefaultOptions() }

// DefaultLimits re-exports bbsolve.DefaultLimits.
func DefaultLimits() bbsolve.Limits { return bbsolve.DefaultLimits() }
