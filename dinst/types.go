package dinst

import "math"

// NoRoot is the sentinel value of Instance.R for unrooted instances,
// mirroring the original solver's r == -1 convention exactly.
const NoRoot = -1

// NoArc is the sentinel value used in place of an arc index when no arc
// applies (e.g. Opposite when an arc has no antiparallel twin).
const NoArc = -1

// Inf is the "effectively infinite" cost used by bound-based elimination
// and by the bigM construction; it is finite so ordinary float64
// arithmetic on it remains well-defined, unlike math.Inf(1).
const Inf = math.MaxFloat64 / 4

// TransformStep records one revenue-shift transformation applied while
// converting an MWCS instance into its PCSTP equivalent, sufficient to
// reverse the bound afterward (§3 Transformation record).
type TransformStep struct {
	// Node is the node whose revenue was shifted.
	Node int
	// Delta is the node's original negative revenue, i.e. the negation of
	// the amount by which p(Node) was raised to zero.
	Delta float64
}

// Instance is a mutable directed multigraph instance of the (asymmetric)
// Prize-Collecting Steiner Tree Problem.
//
// Adjacency is stored by arc index: Dout[i] lists the indices of arcs
// leaving node i, Din[i] lists arcs entering node i. Each arc caches its
// position within those lists (Pout/Pin) so DelArc can remove it in O(1)
// via swap-with-last.
//
// Instance is not safe for concurrent use; see package doc.
type Instance struct {
	N, M int // current node/arc counts (including flagged-removed slots)

	// Adjacency by arc index.
	Din, Dout [][]int

	// Per-arc data.
	Tail, Head, Opposite []int
	Pin, Pout            []int // cached position of this arc within Din[Head]/Dout[Tail]
	C                     []float64
	Fe0                   []bool

	// Per-node data.
	P          []float64
	F0, F1, T  []bool
	Bmna       [][]int // back-mapping: original node indices collapsed into node i
	Bmaa       [][]int // back-mapping: original arc indices collapsed into arc ij

	R      int // root, or NoRoot if unrooted
	Offset float64

	IsInt  bool
	IsAsym bool
	IsMWCS bool

	BigM float64 // >0 when this instance is a synthetic bigM-rooted copy

	Transform []TransformStep
}

// NewInstance allocates an empty Instance for n nodes and m arcs, sized
// but with no arcs yet populated; callers add arcs via NewArc in [0, m).
func NewInstance(n, m int) *Instance {
	inst := &Instance{
		N:        n,
		M:        m,
		Din:      make([][]int, n),
		Dout:     make([][]int, n),
		Tail:     make([]int, m),
		Head:     make([]int, m),
		Opposite: make([]int, m),
		Pin:      make([]int, m),
		Pout:     make([]int, m),
		C:        make([]float64, m),
		Fe0:      make([]bool, m),
		P:        make([]float64, n),
		F0:       make([]bool, n),
		F1:       make([]bool, n),
		T:        make([]bool, n),
		Bmna:     make([][]int, n),
		Bmaa:     make([][]int, m),
		R:        NoRoot,
	}
	for ij := range inst.Opposite {
		inst.Opposite[ij] = NoArc
	}
	for i := 0; i < n; i++ {
		inst.Bmna[i] = []int{i}
	}
	for ij := 0; ij < m; ij++ {
		inst.Bmaa[ij] = []int{ij}
	}
	return inst
}
