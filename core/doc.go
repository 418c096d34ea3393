// Package core is the planner's concrete state-graph substrate: a
// thread-safe, in-memory Graph whose vertices become task.StateIds and
// whose edges become task.Operators once wrapped by task.NewGraphTask.
// Edge.Weight is read as operator cost; Edge.ID is the operator's default
// display name (overridable via task.WithOperatorNames, as taskfile does
// for YAML-authored operators).
//
// The Graph G = (V,E) supports a rich mix of behaviors, only some of which
// a planning task exercises directly:
//
//   - Directed vs. undirected edges (WithDirected) — a task graph is
//     directed: an operator only applies in the from→to direction.
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges +
//     WithEdgeDirected) — unused by GraphTask today, kept for a task graph
//     that mixes reversible and one-way operators.
//   - Weighted vs. unweighted edges (WithWeighted) — a task graph is
//     always weighted; operator cost comes from Edge.Weight.
//   - Parallel edges / multi-graphs (WithMultiEdges) — needed whenever two
//     distinct operators connect the same pair of states (taskfile does
//     not enable this option for the graphs it builds).
//   - Self-loops (WithLoops) — a no-op operator from a state to itself.
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency
//
// Why GraphTask is built on this rather than a bespoke state-graph type:
//
//   - Single type, composable flags — the same Graph backs chain, cycle,
//     bipartite and random-sparse task fixtures (builder/) without a
//     separate type per topology.
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs() all
//     return sorted results, so ApplicableOps() is reproducible for a
//     fixed task graph (important for testable property 2, monotone
//     enumeration, which depends on stable operator ordering).
//   - Flexible mixing — combine directed, weighted, multi-edge states in
//     one graph without a combinatorial type explosion.
//   - Clone support — CloneEmpty (states+flags), Clone (deep copy of
//     operators+adjacency), useful for running several engine instances
//     over variants of the same base task without re-parsing a task file.
//   - Extensible utility methods — degree counts, clear, filter, …
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Sets the default orientation of new edges (operators).
//	    • Directed graphs store only “from→to” pointers.
//	    • Undirected graphs mirror edges in adjacencyList[to][from].
//
//	– WithMixedEdges()
//	    Allows per-edge overrides via EdgeOption.WithEdgeDirected().
//	    Without it, any override returns ErrMixedEdgesNotAllowed.
//
//	– WithWeighted()
//	    Permits non-zero weights (operator costs) globally; otherwise
//	    AddEdge(weight≠0) → ErrBadWeight. task.NewGraphTask requires this.
//
//	– WithMultiEdges()
//	    Allows multiple parallel operators between the same pair of
//	    states. Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits a state to have an operator back to itself; otherwise
//	    AddEdge(v,v) → ErrLoopNotAllowed.
//
// EdgeOptions:
//
//	– WithEdgeDirected(directed bool)
//	    Override the graph’s default direction per-operator (mixed mode only).
//
// Core Methods:
//
//	// Vertex (state) lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v)+M)
//
//	// Edge (operator) lifecycle
//	AddEdge(from,to string, weight int64, opts ...EdgeOption) (edgeID string, err error) // O(1)†
//	RemoveEdge(edgeID string) error   // O(1)
//	HasEdge(from,to string) bool      // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)   // O(d·log d) — GraphTask.ApplicableOps's backing call
//	NeighborIDs(id string) ([]string, error)// O(d·log d), unique, sorted
//	AdjacencyList() map[string][]string      // O(V+E)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E) — scanned once at GraphTask construction
//
//	// Counts & degrees
//	Degree(id string) (in,out,undirected int, err error) // in/out counts + undirected count (loops, mirrors)
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1)
//
//	// Maintenance
//	Clear()                              // O(1): reset maps, counter; preserve flags
//	FilterEdges(pred func(*Edge) bool)   // O(E): remove edges failing predicate
//
//	// Cloning
//	CloneEmpty() *Graph                  // O(V): copy vertices+flags only
//	Clone() *Graph                       // O(V+E): deep-copy vertices+edges+adjacency
//
//	// Shallow view
//	VerticesMap() map[string]*Vertex     // O(V): read-only copy of vertices
//	InternalVertices() map[string]*Vertex// live map (no locking!)
//
// Edge struct fields, as a planner operator sees them:
//
//	ID       string   // the operator's default display name ("e1", "e2", …)
//	From     string   // source state
//	To       string   // destination state
//	Weight   int64    // operator cost (zero in unweighted graphs, never for a task graph)
//	Directed bool     // true=one-way operator, false=reversible (mixed graphs only)
//
// Errors:
//
//		ErrEmptyVertexID       – zero-length state ID
//		ErrVertexNotFound      – missing state
//		ErrEdgeNotFound        – missing operator
//		ErrBadWeight           – non-zero cost on an unweighted graph
//		ErrLoopNotAllowed      – self-loop operator when loops disabled
//		ErrMultiEdgeNotAllowed – parallel operator when multi-edges disabled
//		ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
//
//	 also amortized constant time: atomic ID generation + nested-map insertion.
package core
