package pathgraph

import (
	"container/heap"

	"github.com/kstarplan/kstar/ste"
	"github.com/kstarplan/kstar/task"
)

// PathGraphNode encodes a prefix of a plan deviation sequence (§3). Parent
// pointers form a DAG (multiple children may share a parent); ownership is
// shared, immutable once constructed.
type PathGraphNode struct {
	SidHtree      task.StateId  // state whose HtreeList this node navigates
	HtreeIdx      int           // index into HtreeList(SidHtree).sortedList
	HinIdx        int           // index into HinList(CurrentTo).SortedList()
	CurrentTo     task.StateId  // the "to" endpoint of Handle's STE
	Handle        *ste.STEHandle
	Parent        *PathGraphNode
	ByCrossingArc bool
	SteDelta      int64
	EdgeValue     int64
	PathValue     int64
	CreationTime  int64
}

// deriveValues computes EdgeValue and PathValue from SteDelta and the
// parent, per §3's derivation rules.
func (n *PathGraphNode) deriveValues() {
	if n.ByCrossingArc || n.Parent == nil {
		n.EdgeValue = n.SteDelta
	} else {
		n.EdgeValue = n.SteDelta - n.Parent.SteDelta
	}
	n.PathValue = n.EdgeValue
	if n.Parent != nil {
		n.PathValue += n.Parent.PathValue
	}
}

// Heap is a min-heap of *PathGraphNode ordered by (PathValue, CreationTime)
// ascending, per §3's ordering rule.
type Heap struct {
	items []*PathGraphNode
}

// NewHeap returns an empty, initialized Eppstein heap.
func NewHeap() *Heap {
	h := &Heap{}
	heap.Init(h)
	return h
}

func (h Heap) Len() int { return len(h.items) }
func (h Heap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.PathValue != b.PathValue {
		return a.PathValue < b.PathValue
	}
	return a.CreationTime < b.CreationTime
}
func (h Heap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *Heap) Push(x interface{}) { h.items = append(h.items, x.(*PathGraphNode)) }
func (h *Heap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}

// PushNode pushes n onto the heap.
func (h *Heap) PushNode(n *PathGraphNode) { heap.Push(h, n) }

// PopNode pops the minimum node, or nil if the heap is empty.
func (h *Heap) PopNode() *PathGraphNode {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(*PathGraphNode)
}

// Empty reports whether the heap holds no nodes.
func (h *Heap) Empty() bool { return h.Len() == 0 }
