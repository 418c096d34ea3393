package task

// StateId opaquely identifies a state in a Task's state registry.
type StateId string

// OperatorId opaquely identifies an operator in a Task's operator table.
type OperatorId string

// Operator describes one deterministic, non-negative-cost state transition.
type Operator struct {
	ID   OperatorId
	Name string
	Cost int64
}

// Successor is an applicable operator paired with the state it leads to.
type Successor struct {
	Op OperatorId
	To StateId
}

// Task is the collaborator every search driver consumes: a deterministic
// state-transition system with an initial state, a costed operator table,
// and a goal test.
type Task interface {
	// NumOperators returns the size of the operator table.
	NumOperators() int
	// Operator looks up an operator by index in [0, NumOperators()).
	Operator(i int) Operator
	// InitialState returns the task's single start state.
	InitialState() StateId
	// GoalTest reports whether s satisfies the goal condition.
	GoalTest(s StateId) bool
	// ApplicableOps returns every operator applicable in state s, together
	// with the successor state each one reaches.
	ApplicableOps(s StateId) []Successor
	// OperatorName returns the display name for an OperatorId, used for
	// plan rendering.
	OperatorName(op OperatorId) string
	// OperatorCost returns an operator's non-negative cost.
	OperatorCost(op OperatorId) int64
}

// Evaluator supplies heuristic estimates used to order the open list. A
// lazy evaluator caches its estimate per state and is revalidated by the A*
// driver before a state is expanded (§4.1): if the cached estimate changed,
// the state is reinserted instead of expanded.
type Evaluator interface {
	// Evaluate returns an admissible estimate h(s) given the known path
	// cost g, or Infinity if s is recognized as a dead end.
	Evaluate(s StateId, g int64) int64
	// IsLazy reports whether this evaluator caches estimates and requires
	// revalidation before expansion.
	IsLazy() bool
	// Revalidate re-evaluates a cached estimate for s. changed is true iff
	// the cached value differs from the freshly computed one.
	Revalidate(s StateId, g int64) (h int64, changed bool)
}

// Infinity is the sentinel Evaluator.Evaluate returns for a recognized dead
// end.
const Infinity int64 = 1<<63 - 1

// OpenList is the priority queue collaborator ordering states by f-value
// (g + h). Implementations need not be thread-safe; the engine is
// single-threaded (§5).
type OpenList interface {
	// Insert adds s with the given f-value and g-value into the open list.
	Insert(s StateId, f, g int64)
	// RemoveMin pops and returns the state with the smallest f-value.
	RemoveMin() (StateId, bool)
	// PeekMin returns the smallest f-value currently held without removing
	// it. ok is false iff the list is empty.
	PeekMin() (f int64, ok bool)
	// Empty reports whether the open list holds no entries.
	Empty() bool
	// IsDeadEnd reports whether a just-evaluated state should be dropped
	// rather than inserted (h == Infinity by convention).
	IsDeadEnd(h int64) bool
}

// PruningMethod optionally filters the operators applicable in a state
// before A* expands its successors.
type PruningMethod interface {
	// Initialize is called once with the task before search begins.
	Initialize(t Task)
	// PruneOperators filters ops in place for state s, returning the
	// retained subset.
	PruneOperators(s StateId, ops []Successor) []Successor
	// WasPruned reports whether PruneOperators has ever removed an
	// operator since the last Initialize.
	WasPruned() bool
	// WasPruningDisabled reports whether DisablePruning has been called.
	WasPruningDisabled() bool
	// DisablePruning permanently disables PruneOperators (becomes a
	// no-op passthrough). Used once the optimal plan is found and no
	// operator was ever pruned (SPEC_FULL supplemented feature).
	DisablePruning()
}

// SymmetryGroup is the optional operator-level structural-symmetry
// collaborator: it canonicalizes successor states and records operator
// permutations so decoded plans can be mapped back to the original operator
// sequence.
type SymmetryGroup interface {
	// Canonicalize returns the canonical representative of s and the
	// permutation that was applied to reach it.
	Canonicalize(s StateId) (canon StateId, permID int)
	// TracePermutation maps an operator sequence generated over canonical
	// states back to the original operator sequence, given the
	// permutation trail recorded during search.
	TracePermutation(ops []OperatorId, permTrail []int) []OperatorId
}

// Plan is a cost-ordered sequence of operator applications from the
// initial state to a goal state.
type Plan struct {
	Cost    int64
	Actions []OperatorId
}

// PlanPostProcessor deduplicates and persists emitted plans.
type PlanPostProcessor interface {
	// AddPlanIfNecessary records p unless it is a duplicate under the
	// processor's canonical form. It returns the number of genuinely new
	// plans added (0 or 1, or more if extension produces symmetric
	// variants).
	AddPlanIfNecessary(p Plan) int
	// Clear discards all recorded plans.
	Clear()
	// Plans returns every distinct plan recorded so far, in the order
	// they were added.
	Plans() []Plan
	// DecodePlansUpfront reports whether plans should be decoded eagerly
	// as they are extracted rather than stashed for later decoding.
	DecodePlansUpfront() bool
	// IsDumpPlans reports whether plans should be persisted to disk as
	// they are produced.
	IsDumpPlans() bool
}
