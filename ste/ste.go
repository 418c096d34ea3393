package ste

import "github.com/kstarplan/kstar/task"

// Fingerprint identifies a SideTrackEdge by its (from, op, to) tuple. Two
// STEs are equal iff their fingerprints match (§3).
type Fingerprint struct {
	From task.StateId
	Op   task.OperatorId
	To   task.StateId
}

// SideTrackEdge is a non-tree edge observed during A* expansion, carrying
// the cached values needed to compute and refresh its delta without
// re-walking the graph.
//
// delta = g_from + cost_op - g_to, always >= 0 for a correctly-functioning
// A* driver (§3, testable property 4).
type SideTrackEdge struct {
	Fingerprint
	GFrom  int64
	GTo    int64
	CostOp int64
	Delta  int64
}

// newSTE computes Delta from the given cached values.
func newSTE(fp Fingerprint, gFrom, costOp, gTo int64) *SideTrackEdge {
	return &SideTrackEdge{
		Fingerprint: fp,
		GFrom:       gFrom,
		GTo:         gTo,
		CostOp:      costOp,
		Delta:       gFrom + costOp - gTo,
	}
}

// refresh recomputes Delta from current cached values, used when g_from or
// g_to change (update_ste_delta, §4.2).
func (s *SideTrackEdge) refresh(gFrom, gTo int64) {
	s.GFrom = gFrom
	s.GTo = gTo
	s.Delta = gFrom + s.CostOp - gTo
}

// Less orders two STEs by (delta, g_from, from) ascending, matching §3's
// lexicographic ordering.
func (s *SideTrackEdge) Less(o *SideTrackEdge) bool {
	if s.Delta != o.Delta {
		return s.Delta < o.Delta
	}
	if s.GFrom != o.GFrom {
		return s.GFrom < o.GFrom
	}
	return s.From < o.From
}

// STEHandle is a reference-counted pointer to a SideTrackEdge body. A
// HinList's set and its sorted_list both hold handles to the same body, so
// re-sorting or inserting into multiple lists copies cheap handles rather
// than STE bodies (§9).
type STEHandle struct {
	ste *SideTrackEdge
	refs *int
}

// newHandle wraps ste in a fresh, singly-referenced handle.
func newHandle(s *SideTrackEdge) *STEHandle {
	one := 1
	return &STEHandle{ste: s, refs: &one}
}

// Clone returns a new handle sharing the same underlying STE body,
// incrementing the shared reference count.
func (h *STEHandle) Clone() *STEHandle {
	*h.refs++
	return &STEHandle{ste: h.ste, refs: h.refs}
}

// STE returns the shared SideTrackEdge body.
func (h *STEHandle) STE() *SideTrackEdge { return h.ste }

// Delta is shorthand for h.STE().Delta.
func (h *STEHandle) Delta() int64 { return h.ste.Delta }

// Less orders two handles by their bodies' ordering.
func (h *STEHandle) Less(o *STEHandle) bool { return h.ste.Less(o.ste) }
