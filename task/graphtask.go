package task

import (
	"fmt"

	"github.com/kstarplan/kstar/core"
)

// GraphTask adapts a core.Graph into a Task: vertices are StateIds, edges
// are named operators whose Edge.Weight is the operator cost and whose
// Edge.ID is the operator name. It is the only concrete Task this module
// ships; spec collaborators beyond it (evaluators, open lists, pruning,
// symmetry, post-processors) stay interfaces.
//
// GraphTask builds its operator table once, at construction, by scanning
// g.Edges() (O(E)); ApplicableOps thereafter is O(deg(s)) via g.Neighbors.
type GraphTask struct {
	g         *core.Graph
	initial   StateId
	goals     map[StateId]struct{}
	ops       []Operator
	opByEdge  map[string]int // core.Edge.ID -> index into ops
	idByOp    map[OperatorId]int
}

// GraphTaskOption configures a GraphTask at construction.
type GraphTaskOption func(*graphTaskConfig)

type graphTaskConfig struct {
	names map[string]string // core.Edge.ID -> display name override
}

// WithOperatorNames overrides the display name (Operator.Name,
// OperatorName) used for edges, keyed by the core.Graph edge ID AddEdge
// returned. Edges absent from names keep their edge ID as their name. Used
// by taskfile to give YAML-authored operators human-readable names instead
// of the graph's auto-generated "eN" edge IDs.
func WithOperatorNames(names map[string]string) GraphTaskOption {
	return func(c *graphTaskConfig) { c.names = names }
}

// NewGraphTask wraps g as a Task rooted at initial with the given goal
// states. g must be weighted (operator costs come from Edge.Weight) and
// must already contain initial and every goal state.
func NewGraphTask(g *core.Graph, initial StateId, goals []StateId, opts ...GraphTaskOption) (*GraphTask, error) {
	cfg := graphTaskConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(string(initial)) {
		return nil, ErrNoInitialState
	}
	if len(goals) == 0 {
		return nil, ErrNoGoalStates
	}

	goalSet := make(map[StateId]struct{}, len(goals))
	for _, s := range goals {
		if !g.HasVertex(string(s)) {
			return nil, fmt.Errorf("%w: %s", ErrStateNotFound, s)
		}
		goalSet[s] = struct{}{}
	}

	edges := g.Edges()
	ops := make([]Operator, 0, len(edges))
	opByEdge := make(map[string]int, len(edges))
	idByOp := make(map[OperatorId]int, len(edges))
	for _, e := range edges {
		idx := len(ops)
		name := e.ID
		if n, ok := cfg.names[e.ID]; ok {
			name = n
		}
		op := Operator{
			ID:   OperatorId(e.ID),
			Name: name,
			Cost: e.Weight,
		}
		ops = append(ops, op)
		opByEdge[e.ID] = idx
		idByOp[op.ID] = idx
	}

	return &GraphTask{
		g:        g,
		initial:  initial,
		goals:    goalSet,
		ops:      ops,
		opByEdge: opByEdge,
		idByOp:   idByOp,
	}, nil
}

// NumOperators implements Task.
func (t *GraphTask) NumOperators() int { return len(t.ops) }

// Operator implements Task.
func (t *GraphTask) Operator(i int) Operator { return t.ops[i] }

// InitialState implements Task.
func (t *GraphTask) InitialState() StateId { return t.initial }

// GoalTest implements Task.
func (t *GraphTask) GoalTest(s StateId) bool {
	_, ok := t.goals[s]
	return ok
}

// ApplicableOps implements Task. Edges whose Directed flag is false are
// traversable from either endpoint, matching core.Graph.Neighbors's own
// notion of adjacency for undirected edges.
func (t *GraphTask) ApplicableOps(s StateId) []Successor {
	edges, err := t.g.Neighbors(string(s))
	if err != nil {
		return nil
	}
	succs := make([]Successor, 0, len(edges))
	for _, e := range edges {
		if e.Directed && e.From != string(s) {
			continue
		}
		to := e.To
		if e.From != string(s) {
			to = e.From
		}
		succs = append(succs, Successor{Op: OperatorId(e.ID), To: StateId(to)})
	}
	return succs
}

// OperatorName implements Task.
func (t *GraphTask) OperatorName(op OperatorId) string {
	if idx, ok := t.idByOp[op]; ok {
		return t.ops[idx].Name
	}
	return string(op)
}

// OperatorCost implements Task.
func (t *GraphTask) OperatorCost(op OperatorId) int64 {
	if idx, ok := t.idByOp[op]; ok {
		return t.ops[idx].Cost
	}
	return 0
}
