package bbsolve

import "container/heap"

// minLBHeap is a min-heap over open BBNodes ordered by Lb, always kept
// in sync with every open node so bestlb = min Lb is reportable in O(1)
// (§4.6 "The min-queue is always maintained").
type minLBHeap []*BBNode

func (h minLBHeap) Len() int           { return len(h) }
func (h minLBHeap) Less(i, j int) bool { return h[i].Lb < h[j].Lb }
func (h minLBHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].minIdx, h[j].minIdx = i, j
}
func (h *minLBHeap) Push(x interface{}) {
	b := x.(*BBNode)
	b.minIdx = len(*h)
	*h = append(*h, b)
}
func (h *minLBHeap) Pop() interface{} {
	old := *h
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return b
}

// selectHeap is the node-selection queue, ordered by the policy chosen
// in Options.NodeSelect (§4.6 "Node selection"): worst-bound (max by Lb)
// or DFS (max by Depth, ties broken LIFO by insertion sequence). It is
// unused (left empty) when NodeSelect is best-bound, since that policy
// reuses minLBHeap directly.
type selectHeap struct {
	nodes  []*BBNode
	policy int // 0 worst-bound, 1 DFS
}

func (h *selectHeap) Len() int { return len(h.nodes) }
func (h *selectHeap) Less(i, j int) bool {
	a, b := h.nodes[i], h.nodes[j]
	switch h.policy {
	case 1:
		if a.Depth != b.Depth {
			return a.Depth > b.Depth
		}
		return a.seq > b.seq
	default: // worst-bound
		return a.Lb > b.Lb
	}
}
func (h *selectHeap) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].maxIdx, h.nodes[j].maxIdx = i, j
}
func (h *selectHeap) Push(x interface{}) {
	b := x.(*BBNode)
	b.maxIdx = len(h.nodes)
	h.nodes = append(h.nodes, b)
}
func (h *selectHeap) Pop() interface{} {
	old := h.nodes
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	h.nodes = old[:n-1]
	return b
}

// openQueues bundles the two priority queues every open BBNode lives in,
// plus the monotonic sequence counter selectHeap's DFS policy needs for
// LIFO tie-breaking.
type openQueues struct {
	min    minLBHeap
	sel    selectHeap
	nextSeq int64
}

func newOpenQueues(nodeSelect int) *openQueues {
	q := &openQueues{sel: selectHeap{policy: nodeSelect}}
	heap.Init(&q.min)
	heap.Init(&q.sel)
	return q
}

func (q *openQueues) push(b *BBNode) {
	b.seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.min, b)
	if q.sel.policy != 2 {
		heap.Push(&q.sel, b)
	}
}

func (q *openQueues) len() int { return q.min.Len() }

func (q *openQueues) bestLb(ub float64) float64 {
	if q.min.Len() == 0 {
		return ub
	}
	return q.min[0].Lb
}

// popSelect removes and returns the next node to process per the
// configured node-selection policy, removing it from both queues.
func (q *openQueues) popSelect() *BBNode {
	if q.len() == 0 {
		return nil
	}
	var b *BBNode
	if q.sel.policy == 2 {
		b = heap.Pop(&q.min).(*BBNode)
	} else {
		b = heap.Pop(&q.sel).(*BBNode)
		heap.Remove(&q.min, b.minIdx)
	}
	return b
}

// drain empties both queues, releasing every open node's owned instance
// (§5 graceful shutdown: "free every open node's owned instance").
func (q *openQueues) drain() {
	for q.min.Len() > 0 {
		b := heap.Pop(&q.min).(*BBNode)
		b.Inst = nil
	}
	q.sel.nodes = nil
}
