package astar

import (
	"math"

	"github.com/kstarplan/kstar/task"
)

// Options configures a Driver, mirroring the teacher's dijkstra.Options
// functional-options shape.
type Options struct {
	Evaluator       task.Evaluator
	OpenList        task.OpenList
	Pruning         task.PruningMethod
	Symmetry        task.SymmetryGroup
	TargetCostBound int64
}

// Option is a functional option for Driver construction.
type Option func(*Options)

// DefaultOptions returns sensible defaults: a zero evaluator (h=0, making
// the driver degrade to Dijkstra), no pruning, no symmetry, and an
// unbounded target cost.
func DefaultOptions() Options {
	return Options{
		Evaluator:       zeroEvaluator{},
		TargetCostBound: math.MaxInt64,
	}
}

// WithEvaluator sets the heuristic evaluator. Panics on nil: an explicit
// zeroEvaluator should be used instead of a nil evaluator.
func WithEvaluator(e task.Evaluator) Option {
	if e == nil {
		panic("astar: WithEvaluator(nil)")
	}
	return func(o *Options) { o.Evaluator = e }
}

// WithOpenList sets the open-list collaborator. Mandatory; Driver
// construction fails without one. Panics on nil.
func WithOpenList(ol task.OpenList) Option {
	if ol == nil {
		panic("astar: WithOpenList(nil)")
	}
	return func(o *Options) { o.OpenList = ol }
}

// WithPruning sets the operator-pruning collaborator.
func WithPruning(p task.PruningMethod) Option {
	return func(o *Options) { o.Pruning = p }
}

// WithSymmetry sets the optional operator-symmetry collaborator.
func WithSymmetry(sg task.SymmetryGroup) Option {
	return func(o *Options) { o.Symmetry = sg }
}

// WithTargetCostBound sets the hard successor-cost bound (§4.1: "exceeds
// the target_cost_bound or the hard bound").
func WithTargetCostBound(bound int64) Option {
	return func(o *Options) { o.TargetCostBound = bound }
}

// zeroEvaluator is the trivial non-lazy evaluator: h=0 everywhere, reducing
// A* to Dijkstra. Used as the Driver default so callers are never forced to
// supply one for a quick start.
type zeroEvaluator struct{}

func (zeroEvaluator) Evaluate(task.StateId, int64) int64                 { return 0 }
func (zeroEvaluator) IsLazy() bool                                       { return false }
func (zeroEvaluator) Revalidate(task.StateId, int64) (int64, bool)       { return 0, false }
