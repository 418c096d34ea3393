package planio

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/kstarplan/kstar/task"
)

// PlanDoc is one plan's JSON rendering, matching spec.md §6's
// {"cost": N, "actions": [...]} shape (the original's write_plan_json,
// generalized from a single plan to the whole k-plan collection).
type PlanDoc struct {
	Cost    int64    `json:"cost"`
	Actions []string `json:"actions"`
}

// Document is the full {"run_id": ..., "plans": [...]} document written
// by WriteJSON.
type Document struct {
	RunID string    `json:"run_id,omitempty"`
	Plans []PlanDoc `json:"plans"`
}

// WriteJSON renders plans as a single JSON document to w, via goccy/go-json
// (a drop-in faster encoding/json substitute, same idiom
// vanderheijden86-beadwork depends on it for).
func (m *PlanManager) WriteJSON(w io.Writer, plans []task.Plan, t task.Task) error {
	if t == nil {
		return ErrNilTask
	}
	doc := Document{RunID: m.runID, Plans: make([]PlanDoc, len(plans))}
	for i, p := range plans {
		actions := make([]string, len(p.Actions))
		for j, op := range p.Actions {
			actions[j] = t.OperatorName(op)
		}
		doc.Plans[i] = PlanDoc{Cost: p.Cost, Actions: actions}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
