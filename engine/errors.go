package engine

import "errors"

// Sentinel errors returned by New and Run. ErrNegativeDelta is declared
// for the §7 invariant but is not returned by any function in this package.
var (
	// ErrNoTerminationCriterion indicates neither k nor q was enabled
	// (§7's configuration-error taxonomy: "neither k nor q enabled").
	ErrNoTerminationCriterion = errors.New("engine: neither k nor q is enabled")

	// ErrNilTask indicates a nil task.Task was passed to New.
	ErrNilTask = errors.New("engine: task is nil")

	// ErrNilPostProcessor indicates no task.PlanPostProcessor was
	// configured.
	ErrNilPostProcessor = errors.New("engine: post-processor is nil")

	// ErrNegativeDelta is the internal-invariant violation of §7: a STE
	// held a negative delta.
	ErrNegativeDelta = errors.New("engine: negative side-track delta")
)
