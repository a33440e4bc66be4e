// Package dsol defines Solution, the selected-arc/selected-node candidate
// produced by the primal heuristic and the B&B leaf evaluator, along with
// the validation contract every accepted incumbent must pass (§8).
package dsol
