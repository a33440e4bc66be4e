package artic

import "github.com/mluipersbeck/dapcstp/dinst"

// Visitation states for the DFS, mirroring the teacher's White/Gray/Black
// convention (dfs/types.go).
const (
	white = iota
	gray
	black
)

// state carries the mutable DFS bookkeeping across the recursive walk
// without closures capturing loop variables.
type state struct {
	inst    *dinst.Instance
	color   []int
	disc    []int
	low     []int
	parent  []int
	ap      []bool
	lastap  []int
	time    int
}

// Find runs articulation-point detection over inst's node set, skipping
// F0 nodes, and returns:
//   - ap: ap[i] is true iff i is an articulation point of the underlying
//     undirected structure.
//   - lastap: for every non-articulation node i, lastap[i] is the nearest
//     proper ancestor of i (in DFS order) that is an articulation point,
//     or -1 if none exists (i.e. i's whole component has no cut vertex
//     above it).
//
// The DFS treats every arc as undirected (an arc ij connects Tail[ij]
// and Head[ij] regardless of direction) and runs once per undiscovered
// component, so the result covers the whole instance even if it is
// disconnected.
//
// Complexity: O(n + m).
func Find(inst *dinst.Instance) (ap []bool, lastap []int) {
	s := &state{
		inst:   inst,
		color:  make([]int, inst.N),
		disc:   make([]int, inst.N),
		low:    make([]int, inst.N),
		parent: make([]int, inst.N),
		ap:     make([]bool, inst.N),
		lastap: make([]int, inst.N),
	}
	for i := range s.parent {
		s.parent[i] = -1
		s.lastap[i] = -1
	}

	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || s.color[i] != white {
			continue
		}
		s.dfsRoot(i)
	}

	// lastap depends on every ap flag, so it is filled once the DFS is
	// done, in discovery order: a parent is always finalized before its
	// children.
	byDisc := make([]int, s.time)
	for i := 0; i < inst.N; i++ {
		if s.color[i] == black {
			byDisc[s.disc[i]] = i
		}
	}
	for _, i := range byDisc {
		s.finalizeLastAP(i)
	}

	return s.ap, s.lastap
}

// dfsRoot runs the articulation-point DFS from root, applying the
// standard "root is an articulation point iff it has more than one DFS
// child" special case.
func (s *state) dfsRoot(root int) {
	children := 0
	s.color[root] = gray
	s.disc[root] = s.time
	s.low[root] = s.time
	s.time++
	for _, ij := range s.inst.Dout[root] {
		if s.inst.Fe0[ij] {
			continue
		}
		j := s.inst.Head[ij]
		if s.color[j] == white {
			children++
			s.dfs(j, root)
		}
	}
	for _, ij := range s.inst.Din[root] {
		if s.inst.Fe0[ij] {
			continue
		}
		j := s.inst.Tail[ij]
		if s.color[j] == white {
			children++
			s.dfs(j, root)
		}
	}
	if children > 1 {
		s.ap[root] = true
	}
	s.color[root] = black
}

// neighbors returns every node adjacent to i in the undirected sense,
// skipping deleted arcs.
func (s *state) neighbors(i int) []int {
	var out []int
	for _, ij := range s.inst.Dout[i] {
		if !s.inst.Fe0[ij] {
			out = append(out, s.inst.Head[ij])
		}
	}
	for _, ij := range s.inst.Din[i] {
		if !s.inst.Fe0[ij] {
			out = append(out, s.inst.Tail[ij])
		}
	}
	return out
}

// dfs is the standard recursive low-link articulation-point search,
// excluding the root's special child-count rule (handled by dfsRoot).
func (s *state) dfs(i, parent int) {
	s.color[i] = gray
	s.disc[i] = s.time
	s.low[i] = s.time
	s.time++
	s.parent[i] = parent

	for _, j := range s.neighbors(i) {
		if j == parent {
			continue
		}
		if s.color[j] == white {
			s.dfs(j, i)
			if s.low[j] < s.low[i] {
				s.low[i] = s.low[j]
			}
			if s.low[j] >= s.disc[i] {
				s.ap[i] = true
			}
		} else if s.disc[j] < s.disc[i] {
			if s.disc[j] < s.low[i] {
				s.low[i] = s.disc[j]
			}
		}
	}

	s.color[i] = black
}

// finalizeLastAP fills lastap[i] once every ap flag is known and i's
// parent has its own lastap: i's parent if that is an articulation point,
// otherwise the parent's lastap.
func (s *state) finalizeLastAP(i int) {
	p := s.parent[i]
	if p < 0 {
		return
	}
	if s.ap[p] {
		s.lastap[i] = p
	} else {
		s.lastap[i] = s.lastap[p]
	}
}

// FindAllSubtrees partitions the non-articulation nodes into the
// maximal subtrees hanging off each articulation point, keyed by the
// articulation's node index; nodes with no articulation-point ancestor in
// the DFS (lastap -1) are grouped under key -1.
//
// Complexity: O(n).
func FindAllSubtrees(inst *dinst.Instance, ap []bool, lastap []int) map[int][]int {
	groups := make(map[int][]int)
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] || ap[i] {
			continue
		}
		groups[lastap[i]] = append(groups[lastap[i]], i)
	}
	return groups
}
