// Package pathgraph implements the Eppstein deviation search of §4.3: the
// HtreeList (root STEs of every ancestor on a tree path), PathGraphNode (a
// prefix of a plan deviation sequence) ordered by a container/heap min-heap
// on path_value, and the decode step that turns a PathGraphNode into a
// concrete operator sequence.
//
// This generalizes the teacher's container/heap + lazy-decrease-key idiom
// from dijkstra.go: instead of a flat priority queue of (state, distance)
// pairs, the heap here holds deviation-sequence prefixes ordered by
// accumulated extra cost over the shortest-path tree astar.Driver builds.
package pathgraph
