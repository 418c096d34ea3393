package ste

import "github.com/kstarplan/kstar/task"

// HinList is the per-state record of incoming edges described in §3: a
// fingerprint-keyed set (upserts replace delta/g values) plus a sorted,
// tree-edge-excluding list of handles, valid only once NodeClosed is true.
type HinList struct {
	set        map[Fingerprint]*STEHandle
	sortedList []*STEHandle
	NodeClosed bool
}

// NewHinList returns an empty HinList.
func NewHinList() *HinList {
	return &HinList{set: make(map[Fingerprint]*STEHandle)}
}

// Upsert inserts or replaces the STE identified by fp in the set, per
// §4.2's upsert-by-fingerprint rule. It returns the handle now held in the
// set (a fresh handle on insert, the same handle with updated body on
// replace — the body is mutated in place so existing Clone()s observe the
// new delta).
func (h *HinList) Upsert(fp Fingerprint, gFrom, costOp, gTo int64) *STEHandle {
	if existing, ok := h.set[fp]; ok {
		existing.ste.GFrom = gFrom
		existing.ste.CostOp = costOp
		existing.ste.GTo = gTo
		existing.ste.Delta = gFrom + costOp - gTo
		return existing
	}
	handle := newHandle(newSTE(fp, gFrom, costOp, gTo))
	h.set[fp] = handle
	return handle
}

// Size reports how many distinct (from, op) incoming edges are recorded.
func (h *HinList) Size() int { return len(h.set) }

// UpdateSTEDelta recomputes every STE's delta in the set from its cached
// g_from/cost_op and the freshly-known g_to for this state (update_ste_delta,
// §4.2). gOf resolves a state's current g-value (math.MaxInt64 for unknown
// states is the caller's concern — callers only call this for reachable
// predecessors).
func (h *HinList) UpdateSTEDelta(gTo int64, gOf func(task.StateId) (int64, bool)) {
	for _, handle := range h.set {
		if g, ok := gOf(handle.ste.From); ok {
			handle.ste.refresh(g, gTo)
		} else {
			handle.ste.refresh(handle.ste.GFrom, gTo)
		}
	}
}

// CreateListFromSet rebuilds the sorted list from scratch: every STE in the
// set whose (from, op) is not the tree edge (parentState, parentOp) is
// inserted, then the whole list is sorted ascending by (delta, g_from,
// from) (§4.2).
func (h *HinList) CreateListFromSet(parentState task.StateId, parentOp task.OperatorId, hasParent bool) {
	h.sortedList = h.sortedList[:0]
	for fp, handle := range h.set {
		if hasParent && fp.From == parentState && fp.Op == parentOp {
			continue
		}
		h.pushSorted(handle)
	}
}

// pushSorted performs an ordered insert using <= on handles (stable with
// respect to equal delta), matching push_back_ste_handle_to_sorted_list.
func (h *HinList) pushSorted(handle *STEHandle) {
	i := len(h.sortedList)
	for i > 0 && handle.Less(h.sortedList[i-1]) {
		i--
	}
	h.sortedList = append(h.sortedList, nil)
	copy(h.sortedList[i+1:], h.sortedList[i:])
	h.sortedList[i] = handle
}

// PushBack appends a freshly discovered handle into the sorted list at its
// sorted position, used by the A* driver for the "already had an
// equal-or-better g, state is closed, no reopen occurred" case (§4.1).
func (h *HinList) PushBack(handle *STEHandle) { h.pushSorted(handle) }

// SortedList returns the current non-tree, delta-ordered list. While
// NodeClosed is false this is undefined per §3 and callers must not rely on
// it.
func (h *HinList) SortedList() []*STEHandle { return h.sortedList }

// RootHandle returns the head of the sorted list (the minimum-delta
// non-tree incoming edge, "root STE of H_in(s)"), or nil if the list is
// empty.
func (h *HinList) RootHandle() *STEHandle {
	if len(h.sortedList) == 0 {
		return nil
	}
	return h.sortedList[0]
}
