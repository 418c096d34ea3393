package searchspace

import "github.com/kstarplan/kstar/task"

// Status is a SearchNode's lifecycle stage.
type Status int

const (
	// New marks a state that has never been reached.
	New Status = iota
	// Open marks a state sitting on the open list, awaiting expansion.
	Open
	// Closed marks a state that has been expanded.
	Closed
	// DeadEnd marks a state an evaluator has recognized as unsolvable.
	DeadEnd
)

// String renders a Status for logging.
func (s Status) String() string {
	switch s {
	case New:
		return "NEW"
	case Open:
		return "OPEN"
	case Closed:
		return "CLOSED"
	case DeadEnd:
		return "DEAD_END"
	default:
		return "UNKNOWN"
	}
}

// SearchNode records one state's position in the shortest-path tree A*
// builds: its parent state, the operator that reached it, its best known
// path cost g, and its lifecycle status.
type SearchNode struct {
	State    task.StateId
	Parent   task.StateId
	CreateOp task.OperatorId
	HasEdge  bool // false only for the initial state, which has no parent edge
	G        int64
	Status   Status
}
