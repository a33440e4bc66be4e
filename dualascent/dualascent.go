package dualascent

import (
	"sort"

	"github.com/mluipersbeck/dapcstp/dinst"
	"github.com/mluipersbeck/dapcstp/dsol"
)

// unionFind is a small disjoint-set structure over node indices with
// path-compression and union-by-size, used to track the current
// partition of nodes into root-components as arcs saturate.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

func (uf *unionFind) union(a, b int) int {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return ra
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	return ra
}

// Run computes a lower bound and reduced costs for inst rooted at root,
// using arc cost vector c (which may differ from inst.C, e.g. a
// perturbed cost vector). If guide is non-nil, ties among equally small
// active components are broken in favor of a component containing any
// node the guide selects, then by lowest member index.
//
// If eager is true, Run returns as soon as the running lb exceeds
// ub-absgap, since the caller (process) only needs to know the node is
// cut off, not the exact bound.
//
// Returns lb, the per-arc reduced costs cr (0 <= cr[ij] <= c[ij]), and
// per-node potentials pi.
//
// Complexity: O((n+m) log n) amortized (union-find with path compression
// over at most n-1 merges, each preceded by an O(deg) arc scan).
func Run(root int, inst *dinst.Instance, c []float64, ub float64, eager bool, absgap float64, guide *dsol.Solution) (lb float64, cr, pi []float64) {
	cr = append([]float64(nil), c...)
	pi = make([]float64, inst.N)

	uf := newUnionFind(inst.N)

	required := requiredNodes(inst, root)
	if len(required) == 0 {
		return 0, cr, pi
	}

	for {
		active := activeComponents(inst, uf, required, root)
		if len(active) == 0 {
			break
		}

		w := pickComponent(active, guide)

		delta, entering := minEnteringReducedCost(inst, uf, cr, w)
		if entering == nil {
			// No arc enters this component: instance is infeasible for
			// this root. The caller's feasibility test is responsible
			// for detecting this; daR simply stops ascending on it.
			break
		}

		for _, ij := range entering {
			cr[ij] -= delta
		}
		lb += delta
		for _, node := range w {
			pi[node] += delta
		}

		for _, ij := range entering {
			if cr[ij] <= 0 {
				uf.union(w[0], inst.Tail[ij])
			}
		}

		if eager && lb > ub-absgap {
			return lb, cr, pi
		}
	}

	return lb, cr, pi
}

// requiredNodes returns every node that must be connected to root: every
// terminal and every fixed-in node, excluding root itself.
func requiredNodes(inst *dinst.Instance, root int) []int {
	var req []int
	for i := 0; i < inst.N; i++ {
		if i == root || inst.F0[i] {
			continue
		}
		if inst.T[i] || inst.F1[i] {
			req = append(req, i)
		}
	}
	return req
}

// activeComponents groups required nodes by their current union-find
// component, excluding any component that already contains root (root
// can already reach it via zero-reduced-cost arcs through prior merges).
func activeComponents(inst *dinst.Instance, uf *unionFind, required []int, root int) [][]int {
	rootComp := uf.find(root)
	groups := make(map[int][]int)
	for _, i := range required {
		c := uf.find(i)
		if c == rootComp {
			continue
		}
		groups[c] = append(groups[c], i)
	}

	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([][]int, 0, len(keys))
	for _, k := range keys {
		members := fullComponentMembers(inst, uf, k)
		out = append(out, members)
	}
	return out
}

// fullComponentMembers expands a union-find root into the full member
// list by scanning every node (O(n) per call; acceptable since daR's
// dominant cost is the O(n) number of merge rounds times this scan).
func fullComponentMembers(inst *dinst.Instance, uf *unionFind, comp int) []int {
	var members []int
	for i := 0; i < inst.N; i++ {
		if inst.F0[i] {
			continue
		}
		if uf.find(i) == comp {
			members = append(members, i)
		}
	}
	return members
}

// pickComponent selects the smallest active component, tie-broken by the
// guide's preference (a component containing a guide-selected node wins)
// and then by lowest member index, per §4.3 "Determinism".
func pickComponent(active [][]int, guide *dsol.Solution) []int {
	best := active[0]
	bestGuided := componentInGuide(best, guide)
	for _, w := range active[1:] {
		guided := componentInGuide(w, guide)
		switch {
		case len(w) < len(best):
			best, bestGuided = w, guided
		case len(w) == len(best) && guided && !bestGuided:
			best, bestGuided = w, guided
		case len(w) == len(best) && guided == bestGuided && w[0] < best[0]:
			best, bestGuided = w, guided
		}
	}
	return best
}

func componentInGuide(w []int, guide *dsol.Solution) bool {
	if guide == nil {
		return false
	}
	for _, i := range w {
		if i < len(guide.Nodes) && guide.Nodes[i] {
			return true
		}
	}
	return false
}

// minEnteringReducedCost finds the minimum reduced cost among arcs
// entering component w (tail outside w, head inside w, not deleted), and
// returns that value along with every arc achieving it.
func minEnteringReducedCost(inst *dinst.Instance, uf *unionFind, cr []float64, w []int) (float64, []int) {
	inW := make(map[int]bool, len(w))
	for _, i := range w {
		inW[i] = true
	}

	best := dinst.Inf
	var arcs []int
	for _, i := range w {
		for _, ij := range inst.Din[i] {
			if inst.Fe0[ij] {
				continue
			}
			tail := inst.Tail[ij]
			if inW[tail] {
				continue
			}
			if cr[ij] < best {
				best = cr[ij]
				arcs = []int{ij}
			} else if cr[ij] == best {
				arcs = append(arcs, ij)
			}
		}
	}
	if len(arcs) == 0 {
		return 0, nil
	}
	return best, arcs
}
