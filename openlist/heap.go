package openlist

import (
	"container/heap"

	"github.com/kstarplan/kstar/task"
)

// item is a single open-list entry: a state with its f/g pair at the time
// it was inserted. Stale entries (a state reinserted at a better f) are not
// removed; the A* driver skips already-closed states when it pops them,
// exactly as the teacher's nodeItem/visited-map pattern does.
type item struct {
	state task.StateId
	f     int64
	g     int64
}

type itemHeap []*item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*item)) }
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Heap is a binary-heap task.OpenList ordered by ascending f-value.
type Heap struct {
	h itemHeap
}

// New returns an empty Heap open list.
func New() *Heap {
	hp := &Heap{h: make(itemHeap, 0, 64)}
	heap.Init(&hp.h)
	return hp
}

// Insert implements task.OpenList.
func (hp *Heap) Insert(s task.StateId, f, g int64) {
	heap.Push(&hp.h, &item{state: s, f: f, g: g})
}

// RemoveMin implements task.OpenList.
func (hp *Heap) RemoveMin() (task.StateId, bool) {
	if hp.h.Len() == 0 {
		return "", false
	}
	it := heap.Pop(&hp.h).(*item)
	return it.state, true
}

// PeekMin implements task.OpenList.
func (hp *Heap) PeekMin() (int64, bool) {
	if hp.h.Len() == 0 {
		return 0, false
	}
	return hp.h[0].f, true
}

// Empty implements task.OpenList.
func (hp *Heap) Empty() bool { return hp.h.Len() == 0 }

// IsDeadEnd implements task.OpenList: by convention h == task.Infinity
// marks a dead end.
func (hp *Heap) IsDeadEnd(h int64) bool { return h == task.Infinity }
