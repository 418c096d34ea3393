// Package kstar is a top-k shortest-path / classical-planning search engine.
//
// Given a planning task (a deterministic state graph with named, costed
// operators) it finds up to k distinct plans from an initial state to a goal,
// optionally bounded by a quality factor q against the optimal plan cost. It
// is a Go rendering of the Eppstein-plus-A* "K*" algorithm: an A* search
// builds a shortest-path tree while recording every non-tree edge it
// discovers (a "side-track edge"); an Eppstein deviation search then walks
// that recorded structure to enumerate plans in non-decreasing cost order
// without re-running search per plan.
//
// Package layout:
//
//	core/        — thread-safe Graph/Vertex/Edge primitives; the concrete
//	               substrate beneath a planning task's state graph.
//	task/        — the Task/Evaluator/OpenList/PruningMethod/SymmetryGroup/
//	               PlanPostProcessor collaborator interfaces, plus GraphTask.
//	searchspace/ — SearchNode bookkeeping and parent-chain tracing for the
//	               shortest-path tree A* builds.
//	ste/         — SideTrackEdge, STEHandle and HinList: the per-state
//	               sorted record of non-tree edges A* discovers.
//	pathgraph/   — HtreeList, PathGraphNode and the Eppstein deviation
//	               search that enumerates plans from the recorded STEs.
//	astar/       — the A* driver that builds the shortest-path tree and
//	               populates the STE store as a side effect of expansion.
//	openlist/    — a binary-heap OpenList implementation.
//	engine/      — the loop interleaving A* bursts with Eppstein extraction,
//	               termination on k/q, logging and statistics.
//	postprocess/ — PlanPostProcessor implementations (identity, canonical
//	               dedup).
//	planio/      — plan persistence: numbered plan files, JSON dump, DOT
//	               export of the explored state space.
//	builder/     — deterministic task-fixture constructors (chains, cycles,
//	               bipartite branch-merges, random sparse graphs).
//	taskfile/    — YAML task file loading.
//	cmd/kstarplan/ — the CLI entry point.
package kstar
