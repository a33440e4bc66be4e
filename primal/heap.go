package primal

import (
	"container/heap"

	"github.com/mluipersbeck/dapcstp/dinst"
)

// frontierItem is one candidate extension arc on the construction
// frontier, keyed by its marginal cost (arc cost minus the revenue it
// would collect at its head).
type frontierItem struct {
	arc      int
	marginal float64
}

// frontierPQ is a min-heap of frontierItem ordered by marginal cost,
// mirroring the teacher's nodePQ pattern in dijkstra.go.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int            { return len(pq) }
func (pq frontierPQ) Less(i, j int) bool  { return pq[i].marginal < pq[j].marginal }
func (pq frontierPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

func newArcHeap() *frontierPQ {
	pq := &frontierPQ{}
	heap.Init(pq)
	return pq
}

// pushFrontier enqueues every non-deleted outgoing arc of i whose head is
// not yet reached, keyed by its marginal cost under c. Stale entries
// (head reached by another path before this one is popped) are skipped
// by the caller at pop time rather than removed here.
func pushFrontier(inst *dinst.Instance, c []float64, nodes []bool, pq *frontierPQ, i int) {
	for _, ij := range inst.Dout[i] {
		if inst.Fe0[ij] {
			continue
		}
		j := inst.Head[ij]
		if nodes[j] {
			continue
		}
		heap.Push(pq, &frontierItem{arc: ij, marginal: c[ij] - inst.P[j]})
	}
}

func popArcHeap(pq *frontierPQ) int {
	item := heap.Pop(pq).(*frontierItem)
	return item.arc
}
