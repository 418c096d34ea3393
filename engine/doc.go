// Package engine interleaves the A* driver (package astar) with the
// Eppstein path-graph walker (package pathgraph) per spec §4.4: run A* in
// bounded bursts, hand control to Eppstein once the open list's lower bound
// rules out cheaper candidates, rebuild Eppstein state after any reopen,
// and stop once k plans are extracted or the quality bound q is exceeded.
package engine
