// Package openlist provides a binary-heap implementation of
// task.OpenList, the default priority queue ordering states by f-value.
//
// It reuses the teacher's dijkstra.nodePQ lazy-decrease-key idiom
// (container/heap over a slice of items, stale entries dropped on pop by
// the caller rather than removed from the heap) generalized from a fixed
// (vertex, dist) pair to an (f, g, state) triple.
package openlist
