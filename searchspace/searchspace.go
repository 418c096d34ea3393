package searchspace

import "github.com/kstarplan/kstar/task"

// SearchSpace is the A* driver's map from StateId to SearchNode. It owns
// the shortest-path tree: walking Parent/CreateOp from any closed state
// back to the initial state reconstructs the tree-path, which both the A*
// reopen logic and the path-graph walker's HtreeList construction (§4.3.1)
// rely on.
type SearchSpace struct {
	nodes map[task.StateId]*SearchNode
}

// New returns an empty SearchSpace.
func New() *SearchSpace {
	return &SearchSpace{nodes: make(map[task.StateId]*SearchNode)}
}

// Get returns the SearchNode for s, or nil if s has never been discovered.
func (ss *SearchSpace) Get(s task.StateId) *SearchNode {
	return ss.nodes[s]
}

// GetOrCreate returns the SearchNode for s, creating a fresh NEW node if
// none exists yet.
func (ss *SearchSpace) GetOrCreate(s task.StateId) *SearchNode {
	if n, ok := ss.nodes[s]; ok {
		return n
	}
	n := &SearchNode{State: s, Status: New}
	ss.nodes[s] = n
	return n
}

// Len reports how many states have been discovered.
func (ss *SearchSpace) Len() int { return len(ss.nodes) }

// Nodes returns every discovered SearchNode, keyed by state. Used by
// planio's DOT export to render the whole explored tree, not just one
// state's path.
func (ss *SearchSpace) Nodes() map[task.StateId]*SearchNode { return ss.nodes }

// TreePath returns the sequence of states from the initial state to s
// (inclusive), in root-to-s order, by walking Parent pointers backward and
// reversing. It returns nil if s was never discovered.
func (ss *SearchSpace) TreePath(s task.StateId) []task.StateId {
	n := ss.nodes[s]
	if n == nil {
		return nil
	}
	var rev []task.StateId
	for n != nil {
		rev = append(rev, n.State)
		if !n.HasEdge {
			break
		}
		n = ss.nodes[n.Parent]
	}
	path := make([]task.StateId, len(rev))
	for i, st := range rev {
		path[len(rev)-1-i] = st
	}
	return path
}

// TreeOperators returns the operator sequence from the initial state to s,
// i.e. the operators labeling each edge of TreePath(s).
func (ss *SearchSpace) TreeOperators(s task.StateId) []task.OperatorId {
	n := ss.nodes[s]
	if n == nil {
		return nil
	}
	var rev []task.OperatorId
	for n != nil && n.HasEdge {
		rev = append(rev, n.CreateOp)
		n = ss.nodes[n.Parent]
	}
	ops := make([]task.OperatorId, len(rev))
	for i, op := range rev {
		ops[len(rev)-1-i] = op
	}
	return ops
}

// Reset clears every node back to NEW status, keeping the discovered set
// (used when the engine needs to replay tree-structure derived data without
// forgetting which states exist). Not used by a plain rebuild, which instead
// mutates Status in place; provided for tests that need a clean baseline.
func (ss *SearchSpace) Reset() {
	for _, n := range ss.nodes {
		n.Status = New
	}
}
