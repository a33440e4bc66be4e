package primal

import "github.com/mluipersbeck/dapcstp/dinst"

// DMST computes an exact minimum-cost arborescence rooted at r on the
// subgraph of inst induced by the nodes reachable from r, using reduced
// costs cr. Used to evaluate a B&B leaf exactly once the free-node set is
// empty and only fixed-in/terminal nodes remain to be connected.
//
// Implements Chu-Liu/Edmonds' algorithm: repeatedly take, for every node
// but the root, its cheapest incoming arc; if the resulting graph has no
// cycle it is the optimal arborescence, otherwise every node on a cycle
// is contracted into a single supernode with entering-arc costs adjusted
// by the cycle arc each would displace, and the process recurses on the
// contracted graph.
//
// Returns the set of arcs forming the arborescence and its total cost
// under cr. If some reachable non-root node has no incoming arc at all,
// the subgraph has no arborescence and ok is false.
//
// Complexity: O(n*m) (textbook Chu-Liu/Edmonds; the instance sizes this
// solver targets don't warrant the O(m log n) Tarjan variant).
func DMST(r int, inst *dinst.Instance, cr []float64) (arcs []bool, cost float64, ok bool) {
	reached := inst.ReachableFrom(r)
	var nodes []int
	for i := 0; i < inst.N; i++ {
		if reached[i] {
			nodes = append(nodes, i)
		}
	}
	if len(nodes) == 0 || !reached[r] {
		return nil, 0, false
	}

	var edges []cleEdge
	for _, i := range nodes {
		for _, ij := range inst.Dout[i] {
			if inst.Fe0[ij] {
				continue
			}
			j := inst.Head[ij]
			if !reached[j] {
				continue
			}
			edges = append(edges, cleEdge{u: i, v: j, w: cr[ij], orig: ij, realV: j})
		}
	}

	chosen, solveOK := solveCLE(r, nodes, edges)
	if !solveOK {
		return nil, 0, false
	}

	arcs = make([]bool, inst.M)
	for _, ij := range chosen {
		arcs[ij] = true
		cost += cr[ij]
	}
	return arcs, cost, true
}

// cleEdge is one arc of a (possibly contracted) Chu-Liu/Edmonds working
// graph: u/v are current-level node ids, w is the current-level weight
// (adjusted by prior contractions), orig is the real inst arc index this
// edge ultimately represents, and realV is the node it enters before any
// contraction remaps v to a supernode (needed to identify, after
// recursing, which cycle-internal arc an entering edge displaces).
type cleEdge struct {
	u, v  int
	w     float64
	orig  int
	realV int
}

// solveCLE returns the chosen real arc indices forming a minimum
// arborescence rooted at root over nodes/edges, or ok=false if some
// non-root node has no incoming edge.
func solveCLE(root int, nodes []int, edges []cleEdge) (chosen []int, ok bool) {
	chosenEdges, ok := solveCLEEdges(root, nodes, edges)
	if !ok {
		return nil, false
	}
	out := make([]int, 0, len(chosenEdges))
	for _, e := range chosenEdges {
		out = append(out, e.orig)
	}
	return out, true
}

// contractCycle collapses cycle into one supernode, recurses on the
// resulting graph, and expands the recursive solution back into real arc
// indices: the one edge chosen into the supernode (if any) displaces the
// cycle arc entering its real target node; every other cycle arc is kept.
func contractCycle(root int, nodes []int, edges []cleEdge, minIdx map[int]int, cycle []int, onCycle map[int]bool) ([]int, bool) {
	super := minID(nodes) - 1

	nodeOf := make(map[int]int, len(nodes))
	for _, v := range nodes {
		if onCycle[v] {
			nodeOf[v] = super
		} else {
			nodeOf[v] = v
		}
	}

	cycleIn := make(map[int]int, len(cycle))
	for _, v := range cycle {
		cycleIn[v] = minIdx[v]
	}

	newNodes := make([]int, 0, len(nodes)-len(cycle)+1)
	newNodes = append(newNodes, super)
	for _, v := range nodes {
		if !onCycle[v] {
			newNodes = append(newNodes, v)
		}
	}

	var newEdges []cleEdge
	for _, e := range edges {
		u2, v2 := nodeOf[e.u], nodeOf[e.v]
		if u2 == v2 {
			continue // internal to the cycle (or a self-loop), never useful
		}
		w := e.w
		if v2 == super {
			w -= edges[cycleIn[e.realV]].w
		}
		newEdges = append(newEdges, cleEdge{u: u2, v: v2, w: w, orig: e.orig, realV: e.realV})
	}

	subRoot := nodeOf[root]
	subChosenEdges, ok := solveCLEEdges(subRoot, newNodes, newEdges)
	if !ok {
		return nil, false
	}

	displacedV := -1
	result := make([]int, 0, len(subChosenEdges)+len(cycle))
	for _, e := range subChosenEdges {
		result = append(result, e.orig)
		if e.v == super {
			displacedV = e.realV
		}
	}
	for _, v := range cycle {
		if v == displacedV {
			continue
		}
		result = append(result, edges[cycleIn[v]].orig)
	}
	return result, true
}

// solveCLEEdges is solveCLE but returns the chosen edge structs rather
// than bare arc indices, so the caller can inspect which edge (if any)
// entered a supernode and which real node it targeted.
func solveCLEEdges(root int, nodes []int, edges []cleEdge) ([]cleEdge, bool) {
	minIdx := make(map[int]int, len(nodes))
	for i, e := range edges {
		if e.v == root {
			continue
		}
		if cur, has := minIdx[e.v]; !has || e.w < edges[cur].w {
			minIdx[e.v] = i
		}
	}
	for _, v := range nodes {
		if v == root {
			continue
		}
		if _, has := minIdx[v]; !has {
			return nil, false
		}
	}

	parent := make(map[int]int, len(nodes))
	for v, i := range minIdx {
		parent[v] = edges[i].u
	}

	cycle, onCycle := findCycle(nodes, parent)
	if cycle == nil {
		out := make([]cleEdge, 0, len(minIdx))
		for _, i := range minIdx {
			out = append(out, edges[i])
		}
		return out, true
	}

	chosenOrig, ok := contractCycle(root, nodes, edges, minIdx, cycle, onCycle)
	if !ok {
		return nil, false
	}
	out := make([]cleEdge, 0, len(chosenOrig))
	byOrig := make(map[int]cleEdge, len(edges))
	for _, e := range edges {
		byOrig[e.orig] = e
	}
	for _, o := range chosenOrig {
		out = append(out, byOrig[o])
	}
	return out, true
}

func minID(nodes []int) int {
	m := nodes[0]
	for _, v := range nodes[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// findCycle detects a cycle in the functional graph defined by parent
// (parent[v] is v's chosen in-edge source), searching over nodes in
// order for determinism, and returns its member list and membership set,
// or (nil, nil) if the parent graph is acyclic.
func findCycle(nodes []int, parent map[int]int) ([]int, map[int]bool) {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[int]int, len(nodes))
	for _, v := range nodes {
		state[v] = unvisited
	}

	for _, start := range nodes {
		if state[start] != unvisited {
			continue
		}
		var path []int
		v := start
		closed := true
		for state[v] == unvisited {
			state[v] = visiting
			path = append(path, v)
			p, has := parent[v]
			if !has {
				closed = false
				break
			}
			v = p
		}
		if closed && state[v] == visiting {
			onCycle := make(map[int]bool)
			idx := len(path) - 1
			for path[idx] != v {
				idx--
			}
			cycle := append([]int(nil), path[idx:]...)
			for _, u := range cycle {
				onCycle[u] = true
			}
			for _, u := range path {
				state[u] = done
			}
			return cycle, onCycle
		}
		for _, u := range path {
			state[u] = done
		}
	}
	return nil, nil
}
