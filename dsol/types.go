package dsol

// Solution is a candidate arborescence on some Instance: boolean vectors
// over current nodes and arcs, a root, an objective value, and a Partial
// flag indicating recovery onto the original (pre-reduction) instance is
// still required.
type Solution struct {
	Nodes []bool
	Arcs  []bool
	Root  int
	Obj   float64

	// Partial is true when this Solution lives on a reduced instance and
	// has not yet been expanded via dinst.Instance.RecoverPartialSolution.
	Partial bool
}

// NewSolution allocates an empty Solution over n nodes and m arcs, rooted
// at r with objective 0.
func NewSolution(n, m, r int) *Solution {
	return &Solution{
		Nodes: make([]bool, n),
		Arcs:  make([]bool, m),
		Root:  r,
	}
}

// Clone returns a deep copy of sol.
func (sol *Solution) Clone() *Solution {
	out := &Solution{
		Nodes:   append([]bool(nil), sol.Nodes...),
		Arcs:    append([]bool(nil), sol.Arcs...),
		Root:    sol.Root,
		Obj:     sol.Obj,
		Partial: sol.Partial,
	}
	return out
}

// RootSolution resets sol to the trivial single-node solution {r}, used
// to seed an incumbent before a root candidate k has been explored and as
// the guide passed into dual ascent for a freshly fixed root (§4.6
// processRoots: "inc.rootSolution(k)").
func (sol *Solution) RootSolution(r int) {
	for i := range sol.Nodes {
		sol.Nodes[i] = false
	}
	for i := range sol.Arcs {
		sol.Arcs[i] = false
	}
	sol.Nodes[r] = true
	sol.Root = r
	sol.Obj = 0
}
