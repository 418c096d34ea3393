package pathgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstarplan/kstar/pathgraph"
	"github.com/kstarplan/kstar/searchspace"
	"github.com/kstarplan/kstar/ste"
	"github.com/kstarplan/kstar/task"
)

// buildChainWithShortcut reproduces the S1-style fixture: a tree path
// s0->s1->s2->s3->s4 (cost 1 each) plus a direct shortcut b0:s0->s4 cost 10
// observed as a side-track edge into s4.
func buildChainWithShortcut(t *testing.T) (*searchspace.SearchSpace, map[task.StateId]*ste.HinList) {
	t.Helper()
	ss := searchspace.New()
	states := []task.StateId{"s0", "s1", "s2", "s3", "s4"}
	var g int64
	for i, s := range states {
		n := ss.GetOrCreate(s)
		n.Status = searchspace.Closed
		n.G = g
		if i > 0 {
			n.Parent = states[i-1]
			n.CreateOp = task.OperatorId("a" + string(rune('0'+i-1)))
			n.HasEdge = true
		}
		g++
	}

	hinlists := make(map[task.StateId]*ste.HinList)
	for _, s := range states {
		hinlists[s] = ste.NewHinList()
	}
	// Shortcut b0: s0 -> s4, cost 10, observed once s4 is closed at g=4.
	hinlists["s4"].Upsert(ste.Fingerprint{From: "s0", Op: "b0", To: "s4"}, 0, 10, 4)
	hinlists["s4"].CreateListFromSet("s3", "a3", true)

	return ss, hinlists
}

func TestHtreeList_Build_IncludesAncestorRoots(t *testing.T) {
	ss, hinlists := buildChainWithShortcut(t)
	store := pathgraph.NewStore()

	htl := store.Build("s4", ss, hinlists, 4, func() (int64, bool) { return 0, false }, true, true, 1)
	require.Equal(t, 1, htl.Len())
}

func TestWalker_EmitsShortcutAsSecondPlan(t *testing.T) {
	ss, hinlists := buildChainWithShortcut(t)
	store := pathgraph.NewStore()
	w := pathgraph.NewWalker()
	w.Store = store

	cfg := pathgraph.BuildConfig{
		SearchSpace:     ss,
		HinLists:        hinlists,
		CStar:           4,
		MinFOpenList:    func() (int64, bool) { return 0, false },
		OpenEmpty:       true,
		RestartEppstein: true,
		CurrentIter:     1,
		TargetCostBound: math.MaxInt64,
	}

	root := store.SeedGoalRoot("s4", cfg)
	require.NotNil(t, root)
	w.Heap.PushNode(root)

	status, emitted := w.StepEppstein(cfg, -1, true, true)
	assert.Equal(t, pathgraph.InProgress, status)
	require.NotNil(t, emitted)
	assert.Equal(t, int64(10), emitted.PathValue+cfg.CStar) // shortcut plan cost: 0 + 10 = 10

	plan := pathgraph.Decode(emitted, ss, "s4")
	assert.Equal(t, []task.OperatorId{"b0"}, plan)
}
