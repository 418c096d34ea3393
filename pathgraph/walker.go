package pathgraph

import (
	"github.com/kstarplan/kstar/ste"
	"github.com/kstarplan/kstar/searchspace"
	"github.com/kstarplan/kstar/task"
)

// BuildConfig bundles the read-only inputs Children and Walker need to
// reach into the astar.Driver's state without importing astar (which would
// create an import cycle, since the engine wires astar and pathgraph
// together at a higher level).
type BuildConfig struct {
	SearchSpace     *searchspace.SearchSpace
	HinLists        map[task.StateId]*ste.HinList
	CStar           int64
	MinFOpenList    func() (int64, bool)
	OpenEmpty       bool
	RestartEppstein bool
	CurrentIter     int
	TargetCostBound int64

	// IgnoreQuality disables the target-cost-bound filter entirely (q
	// disabled, §6): children are generated regardless of path_value, and
	// StepEppstein's quality-exceeded termination never fires.
	IgnoreQuality bool
	// AllowGreedyKSelection loosens StepEppstein's switch-back-to-A* bound
	// to target_cost_bound instead of min_f_open_list when quality is
	// active and restart_eppstein is set; k-mode is not checked (§9
	// supplemented feature, original: allow_greedy_k_plans_selection).
	AllowGreedyKSelection bool
	// NonRestartStrictBound flips the non-restart switching predicate from
	// the literal upstream `>=` to `>` against min_f_open_list (§9 Open
	// Questions: the source flags this comparison as unconfirmed).
	// Default false preserves the literal original behavior.
	NonRestartStrictBound bool
}

// Children generates up to three child PathGraphNodes from n per §4.3.2,
// filtered by the target-cost-bound condition
// (child.PathValue + cStar <= targetCostBound).
func (s *Store) Children(n *PathGraphNode, cfg BuildConfig) []*PathGraphNode {
	hl, ok := cfg.HinLists[n.CurrentTo]
	if !ok {
		return nil
	}
	sortedList := hl.SortedList()
	if n.HinIdx < 0 || n.HinIdx >= len(sortedList) {
		return nil
	}

	var children []*PathGraphNode
	htl := s.Get(n.SidHtree)

	// Right: next root in HtreeList.
	if n.HinIdx == 0 && n.HtreeIdx < htl.Len()-1 {
		next := htl.at(n.HtreeIdx + 1)
		children = append(children, &PathGraphNode{
			SidHtree:  n.SidHtree,
			HtreeIdx:  n.HtreeIdx + 1,
			HinIdx:    0,
			CurrentTo: next.ancestor,
			Handle:    next.handle,
			Parent:    n,
			SteDelta:  next.handle.Delta(),
		})
	}

	// Down: next in HinList.
	if n.HinIdx < len(sortedList)-1 {
		next := sortedList[n.HinIdx+1]
		children = append(children, &PathGraphNode{
			SidHtree:  n.SidHtree,
			HtreeIdx:  n.HtreeIdx,
			HinIdx:    n.HinIdx + 1,
			CurrentTo: n.CurrentTo,
			Handle:    next,
			Parent:    n,
			SteDelta:  next.Delta(),
		})
	}

	// Cross arc: build the HtreeList of the current STE's "from" state on
	// demand.
	fromState := n.Handle.STE().From
	crossHtl := s.Build(fromState, cfg.SearchSpace, cfg.HinLists, cfg.CStar, cfg.MinFOpenList, cfg.OpenEmpty, cfg.RestartEppstein, cfg.CurrentIter)
	if crossHtl.Len() > 0 {
		first := crossHtl.at(0)
		children = append(children, &PathGraphNode{
			SidHtree:      fromState,
			HtreeIdx:      0,
			HinIdx:        0,
			CurrentTo:     first.ancestor,
			Handle:        first.handle,
			Parent:        n,
			ByCrossingArc: true,
			SteDelta:      first.handle.Delta(),
		})
	}

	filtered := children[:0]
	for _, c := range children {
		c.deriveValues()
		c.CreationTime = s.nextTime()
		if cfg.IgnoreQuality || c.PathValue+cfg.CStar <= cfg.TargetCostBound {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// SeedGoalRoot builds the goal_root PathGraphNode for a (re)initialized
// Eppstein pass: sid_htree = goal, iterators at the first element of the
// goal's HtreeList and its corresponding HinList (§4.4 step 3).
func (s *Store) SeedGoalRoot(goal task.StateId, cfg BuildConfig) *PathGraphNode {
	htl := s.Build(goal, cfg.SearchSpace, cfg.HinLists, cfg.CStar, cfg.MinFOpenList, cfg.OpenEmpty, cfg.RestartEppstein, cfg.CurrentIter)
	if htl.Len() == 0 {
		return nil
	}
	first := htl.at(0)
	n := &PathGraphNode{
		SidHtree:  goal,
		HtreeIdx:  0,
		HinIdx:    0,
		CurrentTo: first.ancestor,
		Handle:    first.handle,
		SteDelta:  first.handle.Delta(),
	}
	n.deriveValues()
	n.CreationTime = s.nextTime()
	return n
}
