package taskfile

import "errors"

// Sentinel errors returned by Load and Parse.
var (
	// ErrNoStates indicates a task file declared zero states.
	ErrNoStates = errors.New("taskfile: no states declared")

	// ErrNoInitial indicates a task file omitted the initial state.
	ErrNoInitial = errors.New("taskfile: no initial state declared")

	// ErrNoGoals indicates a task file declared zero goal states.
	ErrNoGoals = errors.New("taskfile: no goal states declared")

	// ErrUnknownState indicates an operator or goal referenced a state
	// that was never declared in the states list.
	ErrUnknownState = errors.New("taskfile: operator or goal references an undeclared state")

	// ErrNegativeCost indicates an operator declared a negative cost,
	// violating the non-negative-cost invariant every search driver
	// assumes (spec.md §2).
	ErrNegativeCost = errors.New("taskfile: operator cost must be non-negative")
)
