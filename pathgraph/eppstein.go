package pathgraph

// Status is the result of one StepEppstein call.
type Status int

const (
	// InProgress indicates a candidate may or may not have been emitted,
	// and more Eppstein work remains.
	InProgress Status = iota
	// Solved indicates k plans were extracted, or the threshold now
	// exceeds the quality bound.
	Solved
	// Failed indicates the walker ceded control back to A*: either the
	// heap is empty (nothing left to extract without a wider search
	// tree) or the next candidate could exceed the current open-list
	// lower bound.
	Failed
)

// Walker drives the Eppstein extraction loop of §4.3.3 over a Store and
// its priority queue of PathGraphNodes.
type Walker struct {
	Store       *Store
	Heap        *Heap
	EppsteinThr int64 // -1 until any node has been generated
	GoalRoot    *PathGraphNode
	planCount   int
}

// NewWalker returns an empty Walker.
func NewWalker() *Walker {
	return &Walker{Store: NewStore(), Heap: NewHeap(), EppsteinThr: -1}
}

// Reset discards the heap and goal root (§4.4 step 2, after a
// reopen-affected burst, and at every restart-mode Eppstein
// reinitialization). EppsteinThr is deliberately left untouched: the
// original source never resets it either — it is a monotonic record of the
// highest path_value produced by any Eppstein burst so far, consulted by
// the next A*-burst's switch-back condition even across reinitializations.
// The caller is responsible for separately calling Store.Reset() to clear
// HtreeLists.
func (w *Walker) Reset() {
	w.Heap = NewHeap()
	w.GoalRoot = nil
}

// PlanCount reports the total number of plans counted so far, including
// the optimal plan the engine seeds as plan #1 before Eppstein runs.
func (w *Walker) PlanCount() int { return w.planCount }

// SetPlanCount sets the plan counter baseline. The engine calls this with 1
// whenever it (re)initializes Eppstein, since the optimal plan is always
// counted as the first plan and is decoded directly from the shortest-path
// tree rather than popped from the heap.
func (w *Walker) SetPlanCount(n int) { w.planCount = n }

// StepEppstein advances the extraction loop by one pop, per §4.3.3.
//
// k disables the plan-count termination if < 1 (this is the engine's
// target_k, compared directly against the running total from
// SetPlanCount/PlanCount — not an eppstein-only count). openEmpty mirrors
// the A* driver's open list: once it empties, StepEppstein never cedes
// back to A*, since there is nothing left to cede to.
func (w *Walker) StepEppstein(cfg BuildConfig, k int, restartEppstein, openEmpty bool) (Status, *PathGraphNode) {
	if w.Heap.Empty() {
		return Failed, nil
	}

	top := w.Heap.items[0]
	children := w.Store.Children(top, cfg)

	if restartEppstein {
		w.EppsteinThr = top.PathValue
	} else {
		for _, c := range children {
			if c.PathValue > w.EppsteinThr {
				w.EppsteinThr = c.PathValue
			}
		}
	}

	if !openEmpty {
		if minF, ok := cfg.MinFOpenList(); ok && w.thrGtBound(minF, cfg, restartEppstein) {
			return Failed, nil
		}
	}

	n := w.Heap.PopNode()

	var emitted *PathGraphNode
	if cfg.IgnoreQuality || n.PathValue+cfg.CStar <= cfg.TargetCostBound {
		emitted = n
		w.planCount++
		for _, c := range children {
			w.Heap.PushNode(c)
		}
	}

	if k >= 1 && w.planCount >= k {
		return Solved, emitted
	}
	if !cfg.IgnoreQuality && cfg.TargetCostBound < cfg.CStar+w.EppsteinThr {
		return Solved, emitted
	}
	return InProgress, emitted
}

// thrGtBound decides whether the current Eppstein threshold has grown past
// the bound it must stay under to keep extracting without A* expanding
// further (§4.3.3's "Decide the switching condition thr_gt_bound"):
//
//   - non-restart: compared against min_f_open_list with >= (unconfirmed
//     in the upstream source; see DESIGN.md).
//   - restart, with quality active and greedy selection allowed:
//     compared against target_cost_bound instead of min_f_open_list.
//   - restart, otherwise: compared against min_f_open_list with >.
func (w *Walker) thrGtBound(minF int64, cfg BuildConfig, restartEppstein bool) bool {
	sum := cfg.CStar + w.EppsteinThr
	if !restartEppstein {
		if cfg.NonRestartStrictBound {
			return sum > minF
		}
		return sum >= minF
	}
	if cfg.AllowGreedyKSelection && !cfg.IgnoreQuality {
		return sum > cfg.TargetCostBound
	}
	return sum > minF
}
