package task

import "errors"

// Sentinel errors returned by GraphTask construction and lookup.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to NewGraphTask.
	ErrNilGraph = errors.New("task: graph is nil")

	// ErrUnweightedGraph indicates the graph does not carry meaningful
	// edge weights, so operator costs would all read as zero.
	ErrUnweightedGraph = errors.New("task: graph must be weighted")

	// ErrStateNotFound indicates a StateId is not a vertex of the
	// underlying graph.
	ErrStateNotFound = errors.New("task: state not found")

	// ErrNoInitialState indicates NewGraphTask was called with an initial
	// state that is not present in the graph.
	ErrNoInitialState = errors.New("task: initial state not found in graph")

	// ErrNoGoalStates indicates NewGraphTask was given an empty goal set.
	ErrNoGoalStates = errors.New("task: no goal states given")
)
