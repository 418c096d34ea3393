package ste_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/kstarplan/kstar/ste"
	"github.com/kstarplan/kstar/task"
)

// TestHinList_DeltaNeverNegative is testable property 4 (spec.md §8): for
// any sequence of upserts whose g_to respects the shortest-path invariant
// (g_to <= g_from + cost_op, the only way a correctly functioning A*
// driver ever calls Upsert), every STE's Delta stays >= 0.
func TestHinList_DeltaNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := ste.NewHinList()
		states := []task.StateId{"a", "b", "c", "d"}
		ops := []task.OperatorId{"op1", "op2"}

		n := rapid.IntRange(1, 50).Draw(rt, "n")
		for i := 0; i < n; i++ {
			from := states[rapid.IntRange(0, len(states)-1).Draw(rt, "from")]
			op := ops[rapid.IntRange(0, len(ops)-1).Draw(rt, "op")]
			to := states[rapid.IntRange(0, len(states)-1).Draw(rt, "to")]
			gFrom := rapid.Int64Range(0, 1000).Draw(rt, "gFrom")
			costOp := rapid.Int64Range(0, 1000).Draw(rt, "costOp")
			// gTo is drawn no larger than gFrom+costOp, mirroring the bound
			// every real caller (the A* driver) already enforces.
			gTo := rapid.Int64Range(0, gFrom+costOp).Draw(rt, "gTo")

			fp := ste.Fingerprint{From: from, Op: op, To: to}
			handle := h.Upsert(fp, gFrom, costOp, gTo)
			if handle.Delta() < 0 {
				rt.Fatalf("delta went negative: %+v", handle.STE())
			}
		}
	})
}

// TestHinList_FingerprintUniqueness is testable property 5: no matter how
// many times a given (from, op) fingerprint is upserted, the set holds at
// most one STE for it.
func TestHinList_FingerprintUniqueness(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := ste.NewHinList()
		fingerprints := []ste.Fingerprint{
			{From: "a", Op: "op1", To: "goal"},
			{From: "b", Op: "op1", To: "goal"},
			{From: "a", Op: "op2", To: "goal"},
		}

		n := rapid.IntRange(1, 50).Draw(rt, "n")
		seen := map[ste.Fingerprint]struct{}{}
		for i := 0; i < n; i++ {
			fp := fingerprints[rapid.IntRange(0, len(fingerprints)-1).Draw(rt, "fp")]
			gFrom := rapid.Int64Range(0, 1000).Draw(rt, "gFrom")
			costOp := rapid.Int64Range(0, 1000).Draw(rt, "costOp")
			gTo := rapid.Int64Range(0, gFrom+costOp).Draw(rt, "gTo")
			h.Upsert(fp, gFrom, costOp, gTo)
			seen[fp] = struct{}{}
		}
		if h.Size() != len(seen) {
			rt.Fatalf("expected %d distinct fingerprints, HinList reports %d", len(seen), h.Size())
		}
	})
}

// TestHinList_SortedListExcludesTreeEdge is testable property 6: the
// rebuilt sorted list never contains the (parent, parentOp) tree edge.
func TestHinList_SortedListExcludesTreeEdge(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := ste.NewHinList()
		from := []task.StateId{"a", "b", "c"}
		ops := []task.OperatorId{"op1", "op2"}

		n := rapid.IntRange(1, 20).Draw(rt, "n")
		var fps []ste.Fingerprint
		for i := 0; i < n; i++ {
			fp := ste.Fingerprint{
				From: from[rapid.IntRange(0, len(from)-1).Draw(rt, "from")],
				Op:   ops[rapid.IntRange(0, len(ops)-1).Draw(rt, "op")],
				To:   "goal",
			}
			gFrom := rapid.Int64Range(0, 100).Draw(rt, "gFrom")
			costOp := rapid.Int64Range(0, 100).Draw(rt, "costOp")
			gTo := rapid.Int64Range(0, gFrom+costOp).Draw(rt, "gTo")
			h.Upsert(fp, gFrom, costOp, gTo)
			fps = append(fps, fp)
		}
		parent := fps[rapid.IntRange(0, len(fps)-1).Draw(rt, "parentIdx")]
		h.CreateListFromSet(parent.From, parent.Op, true)

		for _, handle := range h.SortedList() {
			s := handle.STE()
			if s.From == parent.From && s.Op == parent.Op {
				rt.Fatalf("sorted list contains the excluded tree edge (%s, %s)", s.From, s.Op)
			}
		}
	})
}
