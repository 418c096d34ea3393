package engine

import (
	"context"
	"math"

	"github.com/kstarplan/kstar/astar"
	"github.com/kstarplan/kstar/pathgraph"
	"github.com/kstarplan/kstar/searchspace"
	"github.com/kstarplan/kstar/ste"
	"github.com/kstarplan/kstar/task"
)

// Status is the outcome of a Run call, mirroring the original's
// SearchStatus values relevant at the engine's top level.
type Status int

const (
	// InProgress is the internal loop state while at least one more outer
	// iteration remains; Run returns it only together with a non-nil error.
	InProgress Status = iota
	// Solved means the engine reached a genuine termination condition:
	// k plans extracted, the quality bound exceeded, both queues
	// exhausted, or the task proved infeasible (zero plans, still
	// SOLVED per §7).
	Solved
	// Timeout means a context deadline/cancellation interrupted the
	// engine; whatever plans were already recorded are preserved.
	Timeout
)

// Engine interleaves an astar.Driver with a pathgraph.Walker per §4.4.
type Engine struct {
	driver *astar.Driver
	walker *pathgraph.Walker
	task   task.Task
	opts   Options
	post   task.PlanPostProcessor
	metrics *Metrics

	firstGoalReached bool
	cStar            int64
	goalState        task.StateId
	targetCostBound  int64
	outerIter        int

	pendingNodes []*pathgraph.PathGraphNode

	lastReportedPlans int
	syncedExpansions  int64
}

// New builds an Engine over t, driven by driver (already constructed over
// t with the caller's choice of evaluator/open list/symmetry) and
// extracting plans via post. opts configures k/q and the burst schedule.
func New(t task.Task, driver *astar.Driver, post task.PlanPostProcessor, opts ...Option) (*Engine, error) {
	if t == nil {
		return nil, ErrNilTask
	}
	if post == nil {
		return nil, ErrNilPostProcessor
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.KEnabled() && !cfg.QEnabled() {
		return nil, ErrNoTerminationCriterion
	}

	return &Engine{
		driver:          driver,
		walker:          pathgraph.NewWalker(),
		task:            t,
		opts:            cfg,
		post:            post,
		metrics:         NewMetrics(),
		targetCostBound: math.MaxInt64,
	}, nil
}

// Metrics exposes the engine's prometheus registry for scraping/testing.
func (e *Engine) Metrics() *Metrics { return e.metrics }

// SearchSpace exposes the A* driver's shortest-path tree, for callers that
// persist the explored state space (planio's DOT export).
func (e *Engine) SearchSpace() *searchspace.SearchSpace { return e.driver.SearchSpace() }

// HinLists exposes the A* driver's per-state STE store, for the same
// persistence use as SearchSpace.
func (e *Engine) HinLists() map[task.StateId]*ste.HinList { return e.driver.HinLists() }

// OptimalCost returns C*, or 0 if no goal has been found yet.
func (e *Engine) OptimalCost() int64 { return e.cStar }

// Plans returns every plan recorded by the post-processor so far, decoding
// any Eppstein nodes that were stashed rather than decoded upfront.
func (e *Engine) Plans() []task.Plan {
	e.decodePending()
	return e.post.Plans()
}

// Run drives the engine to completion: repeated outer iterations (§4.4)
// until a genuine termination condition is reached or ctx is done.
func (e *Engine) Run(ctx context.Context) (Status, error) {
	for {
		select {
		case <-ctx.Done():
			return Timeout, ctx.Err()
		default:
		}

		e.outerIter++
		e.metrics.OuterSteps.Inc()
		status, err := e.step(ctx)
		if err != nil {
			return InProgress, err
		}
		if status != InProgress {
			e.decodePending()
			return status, nil
		}
	}
}

// step runs one outer iteration: an A* burst, reopen handling, Eppstein
// (re)initialization, and an Eppstein burst (§4.4 steps 1-5).
func (e *Engine) step(ctx context.Context) (Status, error) {
	e.driver.ClearReopen()
	goalGeneratedThisBurst := false

	if !e.driver.OpenEmpty() {
		minF, _ := e.driver.MinFOpenList()
		stepAstarIter := 0
		stepAstarIterAfterReopen := 0
		baseline := e.driver.Expansions()
		targetStepsLow := percentSteps(baseline, e.opts.OpenlistIncPercentLB)
		targetStepsUpper := percentSteps(baseline, e.opts.OpenlistIncPercentUB)

		astarStatus := astar.InProgress
		for astarStatus == astar.InProgress {
			select {
			case <-ctx.Done():
				return Timeout, ctx.Err()
			default:
			}

			status, err := e.driver.StepAstar()
			if err != nil {
				return InProgress, err
			}
			e.syncExpansions()
			stepAstarIter++
			stepAstarIterAfterReopen++
			if e.driver.ReopenThisStep() {
				stepAstarIterAfterReopen = 0
				e.metrics.Reopens.Inc()
			}
			if !e.driver.OpenEmpty() {
				minF, _ = e.driver.MinFOpenList()
			}
			if e.driver.LastClosedWasGoal() {
				goalGeneratedThisBurst = true
			}

			astarStatus = status

			switch status {
			case astar.Solved:
				if !e.firstGoalReached {
					e.onFirstGoal()
					if e.opts.KEnabled() && e.walker.PlanCount() >= e.opts.K {
						return Solved, nil
					}
					astarStatus = astar.InProgress
				}
			case astar.Failed:
				if !e.firstGoalReached {
					e.opts.Logger.Info("astar exhausted open list without a goal")
					return Solved, nil
				}
			}

			if e.firstGoalReached {
				if e.opts.QEnabled() && e.targetCostBound < minF {
					break
				}
				if e.opts.KEnabled() {
					if stepAstarIter == targetStepsUpper || (e.opts.SwitchOnGoal && goalGeneratedThisBurst) {
						break
					}
					if !e.driver.ReopenOccurred() {
						if e.walker.EppsteinThr >= 0 {
							if e.thrLtMinF(minF) {
								break
							}
						} else if stepAstarIter >= targetStepsLow {
							break
						}
					} else if stepAstarIterAfterReopen >= targetStepsLow {
						if e.walker.EppsteinThr >= 0 {
							if e.thrLtMinF(minF) {
								break
							}
						} else {
							break
						}
					}
				}
			}
		}
	}

	if e.driver.ReopenOccurred() {
		e.driver.RebuildAfterReopen()
		e.walker.Store.Reset()
		e.walker.Reset()
		e.driver.ClearReopen()
	}

	e.initializeEppstein()

	if !e.walker.Heap.Empty() {
		eppsteinStatus := pathgraph.InProgress
		for eppsteinStatus == pathgraph.InProgress {
			select {
			case <-ctx.Done():
				return Timeout, ctx.Err()
			default:
			}

			cfg := e.buildConfig()
			status, node := e.walker.StepEppstein(cfg, e.opts.effectiveK(), e.opts.RestartEppstein, e.driver.OpenEmpty())
			eppsteinStatus = status
			if node != nil {
				e.emit(node)
			}
			if status == pathgraph.Solved {
				return Solved, nil
			}
		}
	}

	if e.walker.Heap.Empty() {
		if e.driver.OpenEmpty() {
			e.opts.Logger.Info("termination: both queues empty", "plans", e.walker.PlanCount())
			return Solved, nil
		}
		if minF, ok := e.driver.MinFOpenList(); ok && e.opts.QEnabled() && e.targetCostBound < minF {
			e.opts.Logger.Info("termination: target_cost_bound < min_f_open_list", "plans", e.walker.PlanCount())
			return Solved, nil
		}
	}

	e.reportProgress()
	return InProgress, nil
}

// onFirstGoal records C*, derives target_cost_bound from q (once it is
// known), disables pruning if it never fired, seeds the optimal plan, and
// resets the plan counter baseline to 1 (§4.1, §4.4).
func (e *Engine) onFirstGoal() {
	e.firstGoalReached = true
	e.cStar = e.driver.OptimalCost()
	e.goalState = e.driver.GoalState()
	e.metrics.OptimalCost.Set(float64(e.cStar))

	if e.opts.Pruning != nil && !e.opts.Pruning.WasPruned() {
		e.opts.Pruning.DisablePruning()
	}

	if e.opts.QEnabled() {
		e.targetCostBound = int64(math.Floor(e.opts.Q * float64(e.cStar)))
	} else {
		e.targetCostBound = math.MaxInt64
	}
	e.driver.SetTargetCostBound(e.targetCostBound)

	if e.post.DecodePlansUpfront() {
		e.post.AddPlanIfNecessary(e.optimalPlan())
	}
	e.walker.SetPlanCount(1)
	e.metrics.PlansFound.Inc()
	e.opts.Logger.Info("first goal found", "cost", e.cStar, "state", e.goalState)
}

// optimalPlan decodes the shortest-path tree's operator sequence to the
// goal state, the plan emitted as soon as C* is known.
func (e *Engine) optimalPlan() task.Plan {
	ops := e.driver.SearchSpace().TreeOperators(e.goalState)
	return task.Plan{Cost: e.cStar, Actions: ops}
}

// initializeEppstein implements §4.4 step 3: ensure the goal's HtreeList is
// built, and (unless non-restart mode is preserving a non-empty heap)
// purge the Eppstein heap/goal_root, reset the plan counter, and re-seed
// goal_root.
func (e *Engine) initializeEppstein() {
	if !e.firstGoalReached {
		return
	}
	cfg := e.buildConfig()
	e.walker.Store.Build(e.goalState, e.driver.SearchSpace(), e.driver.HinLists(), e.cStar, e.driver.MinFOpenList, e.driver.OpenEmpty(), e.opts.RestartEppstein, e.outerIter)

	if !e.opts.RestartEppstein && !e.walker.Heap.Empty() {
		return
	}

	e.walker.Reset()
	e.walker.SetPlanCount(1)
	e.post.Clear()
	if e.post.DecodePlansUpfront() {
		e.post.AddPlanIfNecessary(e.optimalPlan())
	}

	root := e.walker.Store.SeedGoalRoot(e.goalState, cfg)
	if root == nil {
		return
	}
	e.walker.GoalRoot = root

	ok := e.driver.OpenEmpty()
	if !ok {
		if minF, hasMin := e.driver.MinFOpenList(); hasMin {
			if e.opts.RestartEppstein {
				ok = root.PathValue+e.cStar <= minF
			} else {
				ok = root.PathValue+e.cStar < minF
			}
		}
	}
	if ok {
		e.walker.Heap.PushNode(root)
	}
}

// thrLtMinF decides the A* burst's "ensure extracting at least one plan"
// switching condition (§4.4 step 1), comparing the previous burst's
// eppstein_thr against the current open-list lower bound.
func (e *Engine) thrLtMinF(minF int64) bool {
	sum := e.walker.EppsteinThr + e.cStar
	if e.opts.RestartEppstein {
		return sum <= minF
	}
	return sum < minF
}

// buildConfig assembles the read-only snapshot pathgraph needs without
// importing astar or engine (avoiding an import cycle).
func (e *Engine) buildConfig() pathgraph.BuildConfig {
	return pathgraph.BuildConfig{
		SearchSpace:           e.driver.SearchSpace(),
		HinLists:              e.driver.HinLists(),
		CStar:                 e.cStar,
		MinFOpenList:          e.driver.MinFOpenList,
		OpenEmpty:             e.driver.OpenEmpty(),
		RestartEppstein:       e.opts.RestartEppstein,
		CurrentIter:           e.outerIter,
		TargetCostBound:       e.targetCostBound,
		IgnoreQuality:         !e.opts.QEnabled(),
		AllowGreedyKSelection: e.opts.AllowGreedyKSelection,
		NonRestartStrictBound: e.opts.NonRestartStrictBound,
	}
}

// emit records a freshly-extracted PathGraphNode either by decoding it
// immediately or by stashing it for a final decode pass (§4.3.3,
// task.PlanPostProcessor.DecodePlansUpfront).
func (e *Engine) emit(n *pathgraph.PathGraphNode) {
	if e.post.DecodePlansUpfront() {
		ops := pathgraph.Decode(n, e.driver.SearchSpace(), e.goalState)
		e.post.AddPlanIfNecessary(task.Plan{Cost: e.cStar + n.PathValue, Actions: ops})
	} else {
		e.pendingNodes = append(e.pendingNodes, n)
	}
	e.metrics.PlansFound.Inc()
}

// decodePending decodes any nodes stashed by emit when the post-processor
// does not decode upfront. Safe to call repeatedly; it drains the queue.
func (e *Engine) decodePending() {
	if len(e.pendingNodes) == 0 {
		return
	}
	for _, n := range e.pendingNodes {
		ops := pathgraph.Decode(n, e.driver.SearchSpace(), e.goalState)
		e.post.AddPlanIfNecessary(task.Plan{Cost: e.cStar + n.PathValue, Actions: ops})
	}
	e.pendingNodes = nil
}

// reportProgress logs a progress line whenever the plan count has grown
// since the last report (SPEC_FULL supplemented feature 6). It does not
// read Options.ReportPeriod: there is no time-based limit on the lines.
func (e *Engine) reportProgress() {
	plans := e.walker.PlanCount()
	if plans > e.lastReportedPlans {
		e.opts.Logger.Info("progress", "step", e.outerIter, "found_plans", plans)
		e.lastReportedPlans = plans
	}
}

// syncExpansions mirrors the driver's cumulative expansion count into the
// metrics counter (a Counter only grows, so this adds the delta).
func (e *Engine) syncExpansions() {
	cur := e.driver.Expansions()
	if delta := cur - e.syncedExpansions; delta > 0 {
		e.metrics.Expansions.Add(float64(delta))
	}
	e.syncedExpansions = cur
}

// percentSteps computes a percentage of cumulative expansions, floored to
// at least 1 (§4.4's target_steps_low/upper derivation).
func percentSteps(expanded int64, pct int) int {
	v := int(float64(expanded) * float64(pct) / 100.0)
	if v < 1 {
		v = 1
	}
	return v
}
