package centrality

import "github.com/katalvlaran/gasgraph/core"

// queueItem is one priority-queue entry: a vertex with the distance it had
// when pushed. A vertex may have several entries; all but the first popped
// are stale and are discarded because the vertex is explored by then.
type queueItem struct {
	id   core.VertexID
	dist uint64
	seq  uint64 // push order, breaks distance ties FIFO
}

// vertexPQ is a min-heap of *queueItem ordered by dist, then seq.
// It has no decrease-key: a relaxed vertex is pushed again.
type vertexPQ []*queueItem

func (pq vertexPQ) Len() int { return len(pq) }

func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *queueItem.
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*queueItem)) }

// Pop is called by heap.Pop.
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
