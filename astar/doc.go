// Package astar implements the A* driver of §4.1: it builds a best-first
// shortest-path tree over a task.Task, detects reopens, and populates a
// ste.HinList store as a side effect of every expansion.
//
// It is a direct generalization of the teacher's dijkstra.Dijkstra
// runner/Options shape (container/heap priority queue, lazy-decrease-key,
// functional Options): where Dijkstra assumed h=0 and stopped at a fixed
// MaxDistance, Driver takes a pluggable task.Evaluator for the h-value and
// stops at the first goal, handing control back to the engine loop rather
// than computing all-pairs distances.
package astar
