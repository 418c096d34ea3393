package astar

import "errors"

// Sentinel errors returned by NewDriver and StepAstar.
var (
	// ErrNilTask indicates a nil task.Task was passed to NewDriver.
	ErrNilTask = errors.New("astar: task is nil")

	// ErrNilOpenList indicates no task.OpenList was configured (WithOpenList
	// is mandatory; there is no default to keep the engine explicit about
	// its priority-queue choice).
	ErrNilOpenList = errors.New("astar: open list is nil")

	// ErrNegativeCost indicates an operator carries a negative cost,
	// violating the task.Task contract of non-negative operator costs.
	ErrNegativeCost = errors.New("astar: negative operator cost")

	// ErrAlreadyFailed indicates StepAstar was called again after a
	// previous call already returned Failed.
	ErrAlreadyFailed = errors.New("astar: driver already failed")
)
