package reduce

import "github.com/mluipersbeck/dapcstp/dinst"

// Options toggles each reduction in the cascade independently, mirroring
// the solver's per-test command-line switches; all default to enabled
// via DefaultOptions.
type Options struct {
	CostShift bool
	D1        bool
	D2        bool
	MA        bool
	MS        bool // MAcutnode
	SS        bool // MAcutarc
}

// DefaultOptions enables every reduction.
func DefaultOptions() Options {
	return Options{CostShift: true, D1: true, D2: true, MA: true, MS: true, SS: true}
}

// Preprocess runs the bound-free reduction cascade to a fixpoint: repeated
// rounds of cost-shifting, degree-1/2 simplification, min-adjacency
// fixing, and articulation-point based fixing/cutting, stopping when a
// full round eliminates nothing. NTD1/NTD2 and the articulation-point
// steps run only on rooted instances; MA also runs on unrooted ones.
// During back-mapping recovery passes (recover=true) NTD1/NTD2/MA and
// the subtree cuts are skipped, leaving cost-shifting and AP-fixing.
//
// Returns the total number of nodes/arcs eliminated across all rounds.
//
// Complexity: O((n+m) * rounds); rounds is small in practice since each
// round either removes structure or terminates the loop.
func Preprocess(inst *dinst.Instance, opt Options, recover bool) int {
	total := 0
	for {
		round := 0

		if opt.CostShift {
			CostShift(inst)
		}

		if inst.R != dinst.NoRoot && !recover {
			if opt.D1 {
				round += NTD1(inst)
			}
			if opt.D2 {
				round += NTD2(inst)
			}
		}

		if !recover && opt.MA {
			round += MA(inst)
		}

		if inst.R != dinst.NoRoot {
			ap, lastap := articulationPoints(inst)
			round += APFixing(inst, ap, lastap)

			if !recover {
				if opt.MS {
					round += MACutNode(inst, ap, lastap)
				}
				ap, lastap = articulationPoints(inst)
				if opt.SS {
					round += MACutArc(inst, ap, lastap)
				}
			}
		}

		total += round
		if round == 0 {
			break
		}
	}
	return total
}

// BBRed runs the bound-based LC reduction to a fixpoint using a single
// dual-ascent bound, mirroring the separate bbred call the B&B engine
// makes after daR rather than re-running the full cascade. The caller is
// responsible for invoking NR separately once feasibility is confirmed
// (§4.4 "if the instance is feasible"), since NR has no bound dependency.
//
// Returns the total number of arcs/nodes eliminated.
//
// Complexity: O((n+m) * rounds).
func BBRed(inst *dinst.Instance, b Bound) int {
	total := 0
	for {
		round := LC(inst, b)
		total += round
		if round == 0 {
			break
		}
	}
	return total
}
