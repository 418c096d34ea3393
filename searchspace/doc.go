// Package searchspace holds the A* driver's per-state bookkeeping: the
// Status lifecycle (NEW/OPEN/CLOSED/DEAD_END), the SearchNode recording a
// state's parent edge and g-value, and the SearchSpace map keyed by StateId.
//
// This generalizes the parent/visited maps every teacher traversal
// (BFS/DFS/Dijkstra) already keeps, into a single typed structure shared by
// both the A* driver and the path-graph walker (which needs to trace the
// tree path from the initial state to any closed state).
package searchspace
