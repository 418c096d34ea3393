// Package ste implements the side-track edge (STE) store: SideTrackEdge
// values, reference-counted STEHandles, and the per-state HinList (the set
// plus sorted non-tree-edge list of §3/§4.2).
//
// This generalizes the teacher's dijkstra.nodePQ "lazy-decrease-key" heap
// idiom: instead of a single flat priority queue of states, every state
// keeps its own sorted list of incoming non-tree edges, deduplicated by
// fingerprint and re-sorted on demand as deltas change.
package ste
