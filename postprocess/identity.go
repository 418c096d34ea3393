package postprocess

import "github.com/kstarplan/kstar/task"

// Identity records every plan handed to it without deduplication — the
// default post-processor when no canonicalization is requested.
type Identity struct {
	plans      []task.Plan
	dumpPlans  bool
	decodeFast bool
}

// NewIdentity returns an Identity post-processor. dumpPlans controls
// IsDumpPlans(); decodeUpfront controls DecodePlansUpfront().
func NewIdentity(dumpPlans, decodeUpfront bool) *Identity {
	return &Identity{dumpPlans: dumpPlans, decodeFast: decodeUpfront}
}

// AddPlanIfNecessary implements task.PlanPostProcessor: always accepts.
func (p *Identity) AddPlanIfNecessary(plan task.Plan) int {
	p.plans = append(p.plans, plan)
	return 1
}

// Clear implements task.PlanPostProcessor.
func (p *Identity) Clear() { p.plans = nil }

// Plans implements task.PlanPostProcessor.
func (p *Identity) Plans() []task.Plan { return p.plans }

// DecodePlansUpfront implements task.PlanPostProcessor.
func (p *Identity) DecodePlansUpfront() bool { return p.decodeFast }

// IsDumpPlans implements task.PlanPostProcessor.
func (p *Identity) IsDumpPlans() bool { return p.dumpPlans }
