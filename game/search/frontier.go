package search

import (
	"container/heap"

	"github.com/PhoneMk/treasure-hunt/game/engine"
)

// node is an entry in a search structure. Parent pointers let the result
// path be rebuilt once the goal is reached.
type node struct {
	state  engine.State
	parent *node
	g      int     // path cost from the start
	f      float64 // frontier priority
	depth  int
	seq    uint64 // insertion order, breaks priority ties FIFO
	index  int    // heap bookkeeping
}

// priorityQueue orders nodes by f, oldest first on ties.
type priorityQueue []*node

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	n := x.(*node)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*pq = old[:last]
	return n
}

// frontier is a priority queue with a strictly increasing insertion
// counter, so equal-priority nodes come out in insertion order.
type frontier struct {
	pq  priorityQueue
	seq uint64
}

func newFrontier() *frontier {
	return &frontier{}
}

func (fr *frontier) push(n *node, f float64) {
	n.f = f
	n.seq = fr.seq
	fr.seq++
	heap.Push(&fr.pq, n)
}

func (fr *frontier) pop() *node {
	return heap.Pop(&fr.pq).(*node)
}

func (fr *frontier) len() int {
	return fr.pq.Len()
}

// reconstructPath walks parent pointers back to the start and reverses
// the result, so the path runs start to goal inclusive.
func reconstructPath(n *node) []engine.Position {
	var path []engine.Position
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.state.Pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
