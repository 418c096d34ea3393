package pathgraph

import (
	"github.com/kstarplan/kstar/searchspace"
	"github.com/kstarplan/kstar/task"
)

// Decode walks n's parent chain gathering every STE whose contribution is
// active (§4.3.4: a node is active iff it is n itself, or its child along
// the chain was reached by a crossing arc), then reconstructs the
// initial-to-goal operator sequence by splicing each active deviation's
// operator into the shortest-path tree's path to goal.
func Decode(n *PathGraphNode, ss *searchspace.SearchSpace, goal task.StateId) []task.OperatorId {
	if n == nil {
		return nil
	}

	// Walk n -> root, keeping nodes that are active. active[0] is n
	// (nearest goal); active[len-1] is the root-most active deviation.
	var active []*PathGraphNode
	childWasCrossing := true // n is always active
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == n || childWasCrossing {
			active = append(active, cur)
		}
		childWasCrossing = cur.ByCrossingArc
	}
	// Reverse so active[0] is the root-most (initial-ward) deviation.
	for i, j := 0, len(active)-1; i < j; i, j = i+1, j-1 {
		active[i], active[j] = active[j], active[i]
	}

	goalPath := ss.TreePath(goal)
	goalOps := ss.TreeOperators(goal)
	idx := make(map[task.StateId]int, len(goalPath))
	for i, s := range goalPath {
		idx[s] = i
	}

	var plan []task.OperatorId
	pos := 0
	for _, a := range active {
		se := a.Handle.STE()
		if fromIdx, ok := idx[se.From]; ok && fromIdx >= pos {
			plan = append(plan, goalOps[pos:fromIdx]...)
			pos = fromIdx
		}
		plan = append(plan, se.Op)
		if toIdx, ok := idx[se.To]; ok {
			pos = toIdx
		}
	}
	if pos < len(goalOps) {
		plan = append(plan, goalOps[pos:]...)
	}
	return plan
}
