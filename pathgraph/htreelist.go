package pathgraph

import (
	"github.com/kstarplan/kstar/searchspace"
	"github.com/kstarplan/kstar/ste"
	"github.com/kstarplan/kstar/task"
)

// rootEntry pairs a root STE handle with the ancestor state it was taken
// from, so a later rebuild can find and replace the entry keyed by that
// ancestor (§9's "replace-by-ancestor-id" recommendation).
type rootEntry struct {
	ancestor task.StateId
	handle   *ste.STEHandle
}

// HtreeList is the per-state sorted list of root STEs over every ancestor
// on the tree path to that state (§3).
type HtreeList struct {
	byAncestor  map[task.StateId]int // ancestor -> index into sortedList
	sortedList  []*rootEntry
	UpdatedIter int
	Stable      bool
}

func newHtreeList() *HtreeList {
	return &HtreeList{byAncestor: make(map[task.StateId]int)}
}

// Len reports the number of root STEs currently held.
func (h *HtreeList) Len() int { return len(h.sortedList) }

// at returns the handle at sortedList index i.
func (h *HtreeList) at(i int) *rootEntry { return h.sortedList[i] }

// insert places handle, originating from ancestor, into sortedList in delta
// order. If an entry for the same ancestor already exists it is erased
// first and Stable is set to false (§4.3.1).
func (h *HtreeList) insert(ancestor task.StateId, handle *ste.STEHandle) {
	if idx, ok := h.byAncestor[ancestor]; ok {
		h.sortedList = append(h.sortedList[:idx], h.sortedList[idx+1:]...)
		delete(h.byAncestor, ancestor)
		for a, i := range h.byAncestor {
			if i > idx {
				h.byAncestor[a] = i - 1
			}
		}
		h.Stable = false
	}
	entry := &rootEntry{ancestor: ancestor, handle: handle}
	i := len(h.sortedList)
	for i > 0 && handle.Less(h.sortedList[i-1].handle) {
		i--
	}
	h.sortedList = append(h.sortedList, nil)
	copy(h.sortedList[i+1:], h.sortedList[i:])
	h.sortedList[i] = entry
	for a, idx := range h.byAncestor {
		if idx >= i {
			h.byAncestor[a] = idx + 1
		}
	}
	h.byAncestor[ancestor] = i
}

// Store owns one HtreeList per state that has been navigated, plus the
// monotonic counter used for PathGraphNode.CreationTime.
type Store struct {
	lists map[task.StateId]*HtreeList
	clock int64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{lists: make(map[task.StateId]*HtreeList)}
}

// Reset clears every HtreeList (§4.4 step 2: "clear all HtreeLists" after
// a reopen-affected burst).
func (s *Store) Reset() {
	s.lists = make(map[task.StateId]*HtreeList)
}

// nextTime returns a fresh, strictly increasing creation-time value.
func (s *Store) nextTime() int64 {
	s.clock++
	return s.clock
}

// Get returns the HtreeList for state s, creating an empty one if absent.
func (s *Store) Get(state task.StateId) *HtreeList {
	hl, ok := s.lists[state]
	if !ok {
		hl = newHtreeList()
		s.lists[state] = hl
	}
	return hl
}

// Build populates HtreeList(s) per §4.3.1: a no-op if already built this
// outer iteration, otherwise traces the tree path to s and inserts the root
// STE of every ancestor whose threshold test passes.
func (s *Store) Build(
	state task.StateId,
	ss *searchspace.SearchSpace,
	hinlists map[task.StateId]*ste.HinList,
	cStar int64,
	minFOpenList func() (int64, bool),
	openEmpty bool,
	restartEppstein bool,
	currentIter int,
) *HtreeList {
	hl := s.Get(state)
	if hl.UpdatedIter == currentIter {
		return hl
	}

	path := ss.TreePath(state)
	for _, ancestor := range path {
		in, ok := hinlists[ancestor]
		if !ok || in.RootHandle() == nil {
			continue
		}
		root := in.RootHandle()

		ok = openEmpty
		if !ok {
			minF, hasMin := minFOpenList()
			if hasMin {
				if restartEppstein {
					ok = root.Delta()+cStar <= minF
				} else {
					ok = root.Delta()+cStar < minF
				}
			}
		}
		if ok {
			hl.insert(ancestor, root)
		}
	}
	hl.UpdatedIter = currentIter
	return hl
}
