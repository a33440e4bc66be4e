package bbsolve

import (
	"github.com/mluipersbeck/dapcstp/dinst"
	"github.com/mluipersbeck/dapcstp/reduce"
)

// isFeasible tests whether inst.R can reach every required node
// (terminal or fixed-in) using surviving arcs. When the instance is
// feasible and doNR is set, it immediately runs the NR reduction, since a
// feasible instance's unreachable nodes are exactly the ones NR removes
// (§4.4 "if the instance is feasible" / §7 "isFeas doubles as the NR
// reduction trigger").
//
// Returns false immediately (without running NR) if any required node is
// unreachable.
func isFeasible(inst *dinst.Instance, doNR bool) bool {
	if inst.R == dinst.NoRoot {
		return true
	}
	reached := inst.ReachableFrom(inst.R)
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] {
			continue
		}
		if (inst.T[i] || inst.F1[i]) && !reached[i] {
			return false
		}
	}
	if doNR {
		reduce.NR(inst)
	}
	return true
}
