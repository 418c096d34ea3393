package planio

import "errors"

// Sentinel errors returned by PlanManager methods.
var (
	// ErrNilTask indicates a nil task.Task was passed where operator
	// names/costs are required to render a plan.
	ErrNilTask = errors.New("planio: task is nil")

	// ErrAnytimeSingleFile indicates SavePlan was asked to write a single
	// (unnumbered) plan file after a plan had already been saved in this
	// run — the original's assert(plan_number == 1).
	ErrAnytimeSingleFile = errors.New("planio: cannot write a single plan file after plans were already saved")
)
