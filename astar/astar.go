package astar

import (
	"fmt"

	"github.com/kstarplan/kstar/searchspace"
	"github.com/kstarplan/kstar/ste"
	"github.com/kstarplan/kstar/task"
)

// Driver runs the A* forward search described in §4.1. A single Driver
// instance owns the shortest-path tree (via searchspace.SearchSpace) and
// the STE store (one ste.HinList per discovered state) for the lifetime of
// an engine run.
type Driver struct {
	t    task.Task
	opts Options

	ss       *searchspace.SearchSpace
	hinlists map[task.StateId]*ste.HinList

	reopenOccurred bool
	reopenThisStep bool
	failed         bool
	firstGoal      bool
	optimalCost    int64
	goalState      task.StateId
	lastClosed     task.StateId
	lastWasGoal    bool
	expansions     int64
}

// NewDriver builds a Driver over t, seeds the open list with t's initial
// state, and resolves opts against DefaultOptions().
func NewDriver(t task.Task, opts ...Option) (*Driver, error) {
	if t == nil {
		return nil, ErrNilTask
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.OpenList == nil {
		return nil, ErrNilOpenList
	}

	d := &Driver{
		t:           t,
		opts:        cfg,
		ss:          searchspace.New(),
		hinlists:    make(map[task.StateId]*ste.HinList),
		optimalCost: -1,
	}

	init := t.InitialState()
	n := d.ss.GetOrCreate(init)
	n.Status = searchspace.Open
	n.G = 0
	h := cfg.Evaluator.Evaluate(init, 0)
	cfg.OpenList.Insert(init, 0+h, 0)
	d.hinlist(init) // ensure a HinList exists even if nothing points to it

	return d, nil
}

// hinlist returns the HinList for s, creating one on first reference.
func (d *Driver) hinlist(s task.StateId) *ste.HinList {
	hl, ok := d.hinlists[s]
	if !ok {
		hl = ste.NewHinList()
		d.hinlists[s] = hl
	}
	return hl
}

// SearchSpace exposes the underlying tree bookkeeping, read-only in
// practice (the path-graph walker needs TreePath/TreeOperators).
func (d *Driver) SearchSpace() *searchspace.SearchSpace { return d.ss }

// HinLists exposes the per-state STE store, keyed by the state the edges
// point into.
func (d *Driver) HinLists() map[task.StateId]*ste.HinList { return d.hinlists }

// ReopenOccurred reports whether a reopen has happened since the last
// ClearReopen call (consumed by the engine loop at burst boundaries, §4.4
// step 2).
func (d *Driver) ReopenOccurred() bool { return d.reopenOccurred }

// ClearReopen resets the reopen flag; call once the engine has rebuilt the
// dependent HtreeLists/Eppstein state.
func (d *Driver) ClearReopen() { d.reopenOccurred = false }

// MinFOpenList peeks the open list's minimum f-value without removing it
// (§4.4's min_f_open_list probe).
func (d *Driver) MinFOpenList() (int64, bool) { return d.opts.OpenList.PeekMin() }

// OpenEmpty reports whether the open list holds no entries.
func (d *Driver) OpenEmpty() bool { return d.opts.OpenList.Empty() }

// OptimalCost returns C*, or -1 if no goal has been found yet.
func (d *Driver) OptimalCost() int64 { return d.optimalCost }

// GoalState returns the first-discovered goal state, valid once
// OptimalCost() >= 0.
func (d *Driver) GoalState() task.StateId { return d.goalState }

// LastClosedState returns the state closed by the most recent StepAstar
// call. Used by the engine's switch_on_goal gate (§4.4 step 1), which must
// detect goal generation on every burst step, not just the first.
func (d *Driver) LastClosedState() task.StateId { return d.lastClosed }

// LastClosedWasGoal reports whether the most recently closed state
// satisfies the goal condition, regardless of whether it was the first
// goal found.
func (d *Driver) LastClosedWasGoal() bool { return d.lastWasGoal }

// ReopenThisStep reports whether the most recent StepAstar call itself
// triggered a reopen (as opposed to ReopenOccurred's sticky, burst-lifetime
// flag). The engine uses this to reset its post-reopen step counter on the
// exact call that caused the reopen, matching step_astar_iter_after_reopen's
// "reset to 0 inside step_astar when reopen occurred" (§4.4).
func (d *Driver) ReopenThisStep() bool { return d.reopenThisStep }

// Expansions returns the cumulative number of states closed since this
// Driver was created (statistics.get_expanded() in the original source),
// used by the engine to size percentage-based burst bounds.
func (d *Driver) Expansions() int64 { return d.expansions }

// SetTargetCostBound tightens the successor-cost bound used by StepAstar,
// called once C* is known and the engine derives the real target_cost_bound
// from the quality ratio q (§4.1's bound is unknowable before the first
// goal when q-mode is active).
func (d *Driver) SetTargetCostBound(bound int64) { d.opts.TargetCostBound = bound }

// RebuildAfterReopen recomputes STE deltas and resorts lists for every
// closed state (§4.4 step 2). Call this once per burst in which
// ReopenOccurred() is true, then ClearReopen().
func (d *Driver) RebuildAfterReopen() {
	gOf := func(s task.StateId) (int64, bool) {
		n := d.ss.Get(s)
		if n == nil {
			return 0, false
		}
		return n.G, true
	}
	for sid, hl := range d.hinlists {
		n := d.ss.Get(sid)
		if n == nil || n.Status != searchspace.Closed {
			continue
		}
		hl.UpdateSTEDelta(n.G, gOf)
		hl.CreateListFromSet(n.Parent, n.CreateOp, n.HasEdge)
	}
}

// StepAstar advances the search by one expansion, per §4.1.
func (d *Driver) StepAstar() (Status, error) {
	if d.failed {
		return Failed, ErrAlreadyFailed
	}
	d.reopenThisStep = false

	var current task.StateId
	for {
		s, ok := d.opts.OpenList.RemoveMin()
		if !ok {
			d.failed = true
			return Failed, nil
		}
		n := d.ss.Get(s)
		if n == nil || n.Status == searchspace.Closed {
			continue // stale heap entry
		}

		if d.opts.Evaluator.IsLazy() {
			h, changed := d.opts.Evaluator.Revalidate(s, n.G)
			if h == task.Infinity {
				n.Status = searchspace.DeadEnd
				continue
			}
			if changed {
				d.opts.OpenList.Insert(s, n.G+h, n.G)
				continue
			}
		}
		current = s
		break
	}

	n := d.ss.Get(current)
	n.Status = searchspace.Closed
	d.expansions++
	d.lastClosed = current
	d.lastWasGoal = d.t.GoalTest(current)
	hl := d.hinlist(current)
	hl.NodeClosed = true
	if !d.reopenOccurred {
		gOf := func(s task.StateId) (int64, bool) {
			m := d.ss.Get(s)
			if m == nil {
				return 0, false
			}
			return m.G, true
		}
		hl.UpdateSTEDelta(n.G, gOf)
		hl.CreateListFromSet(n.Parent, n.CreateOp, n.HasEdge)
	}

	if d.t.GoalTest(current) && !d.firstGoal {
		d.firstGoal = true
		d.optimalCost = n.G
		d.goalState = current
		return Solved, nil
	}

	succs := d.t.ApplicableOps(current)
	if d.opts.Pruning != nil {
		succs = d.opts.Pruning.PruneOperators(current, succs)
	}

	for _, succ := range succs {
		cost := d.t.OperatorCost(succ.Op)
		if cost < 0 {
			return InProgress, fmt.Errorf("%w: op %s cost=%d", ErrNegativeCost, succ.Op, cost)
		}
		succG := n.G + cost
		if succG > d.opts.TargetCostBound {
			continue
		}

		sid := succ.To
		sn := d.ss.GetOrCreate(sid)
		fp := ste.Fingerprint{From: current, Op: succ.Op, To: sid}

		switch {
		case sn.Status == searchspace.New:
			sn.Status = searchspace.Open
			sn.Parent, sn.CreateOp, sn.HasEdge, sn.G = current, succ.Op, true, succG
			h := d.opts.Evaluator.Evaluate(sid, succG)
			d.opts.OpenList.Insert(sid, succG+h, succG)
			d.hinlist(sid).Upsert(fp, n.G, cost, succG)

		case succG < sn.G:
			if sn.Status == searchspace.Closed {
				d.reopenOccurred = true
				d.reopenThisStep = true
				sn.Status = searchspace.Open
			} else if sn.Status == searchspace.DeadEnd {
				sn.Status = searchspace.Open
			}
			sn.Parent, sn.CreateOp, sn.HasEdge, sn.G = current, succ.Op, true, succG
			h := d.opts.Evaluator.Evaluate(sid, succG)
			d.opts.OpenList.Insert(sid, succG+h, succG)
			d.hinlist(sid).Upsert(fp, n.G, cost, succG)
			d.hinlist(sid).NodeClosed = false

		default:
			handle := d.hinlist(sid).Upsert(fp, n.G, cost, sn.G)
			if !d.reopenOccurred && sn.Status == searchspace.Closed {
				d.hinlist(sid).PushBack(handle)
			}
		}
	}

	return InProgress, nil
}
