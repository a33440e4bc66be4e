package bbsolve

import "github.com/mluipersbeck/dapcstp/dinst"

// NodeState is the per-BBNode outcome of process (§4.6 "State machine").
type NodeState int

const (
	// StateNone is a node that has not yet been processed.
	StateNone NodeState = iota
	// StateInfeas is a node proven infeasible by the reachability test.
	StateInfeas
	// StateCutoff is a node whose lower bound meets or exceeds the
	// incumbent within the optimality gap.
	StateCutoff
	// StateLeaf is a node with no free variables left: dmst evaluates it
	// exactly.
	StateLeaf
	// StateBranch is a node requiring a branch decision.
	StateBranch
)

// BBNode is one node of the search tree: an exclusively owned Instance
// snapshot plus the bookkeeping process/branch/select need.
//
// Ownership: Inst is owned solely by this node until branch clones it
// into a sibling (§5 "copying happens only at branch time"); the node is
// eligible for collection only once it has left both priority queues.
type BBNode struct {
	Inst *dinst.Instance

	Depth int
	Lb    float64

	// Cr, Pi are the reduced costs and potentials from the most recent
	// dual-ascent round run on this node, stashed by process for
	// selectBranchVariable's deg/degS computation.
	Cr, Pi []float64

	// V is the node index branched on to reach this BBNode from its
	// parent, or -1 at the search root (used to credit prio on cutoff).
	V int

	Processed bool
	State     NodeState
	// Feas records whether this node is still feasible after branch
	// mutates it in place into one of its two children.
	Feas bool

	// heap bookkeeping: position within each queue's backing slice, and
	// a monotonically increasing sequence number breaking depth ties in
	// DFS node-select order (higher seq wins: LIFO on ties,
	// most-recently-pushed wins).
	minIdx, maxIdx int
	seq            int64
}

func newBBNode(inst *dinst.Instance, depth int, v int) *BBNode {
	return &BBNode{
		Inst:  inst,
		Depth: depth,
		V:     v,
		Feas:  true,
	}
}
