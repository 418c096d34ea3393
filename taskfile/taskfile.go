package taskfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kstarplan/kstar/core"
	"github.com/kstarplan/kstar/task"
)

// Operator is one YAML-declared state transition.
type Operator struct {
	Name string `yaml:"name"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Cost int64  `yaml:"cost"`
}

// Document is the top-level shape of a task file: a set of states, an
// initial state, one or more goal states, and the operator table
// connecting them. States not explicitly listed but referenced by an
// operator or a goal are still rejected (§ErrUnknownState) — the states
// list is the single source of truth for what exists, matching
// vanderheijden86-beadwork's config.go pattern of an explicit, validated
// struct rather than inferring shape from usage.
type Document struct {
	Directed  bool       `yaml:"directed"`
	States    []string   `yaml:"states"`
	Initial   string     `yaml:"initial"`
	Goals     []string   `yaml:"goals"`
	Operators []Operator `yaml:"operators"`
}

// Load reads and parses a task file from path.
func Load(path string) (*task.GraphTask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taskfile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document and builds the task.GraphTask it
// describes, validating every cross-reference (operator endpoints, goal
// states) against the declared states list.
func Parse(data []byte) (*task.GraphTask, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("taskfile: %w", err)
	}
	return doc.Build()
}

// Build validates d and constructs the task.GraphTask it describes.
func (d *Document) Build() (*task.GraphTask, error) {
	if len(d.States) == 0 {
		return nil, ErrNoStates
	}
	if d.Initial == "" {
		return nil, ErrNoInitial
	}
	if len(d.Goals) == 0 {
		return nil, ErrNoGoals
	}

	known := make(map[string]struct{}, len(d.States))
	for _, s := range d.States {
		known[s] = struct{}{}
	}
	if _, ok := known[d.Initial]; !ok {
		return nil, fmt.Errorf("%w: initial state %q", ErrUnknownState, d.Initial)
	}
	for _, g := range d.Goals {
		if _, ok := known[g]; !ok {
			return nil, fmt.Errorf("%w: goal state %q", ErrUnknownState, g)
		}
	}

	g := core.NewGraph(core.WithDirected(d.Directed), core.WithWeighted())
	for _, s := range d.States {
		if err := g.AddVertex(s); err != nil {
			return nil, fmt.Errorf("taskfile: state %q: %w", s, err)
		}
	}

	// Operator names are deliberately allowed to repeat across distinct
	// operators (e.g. several structurally symmetric edges all named
	// "advance"): postprocess.Canonical's unordered mode canonicalizes
	// plans by name multiset, which only dedups meaningfully when
	// interchangeable operators do share a name.
	names := make(map[string]string, len(d.Operators))
	for _, op := range d.Operators {
		if _, ok := known[op.From]; !ok {
			return nil, fmt.Errorf("%w: operator %q from=%q", ErrUnknownState, op.Name, op.From)
		}
		if _, ok := known[op.To]; !ok {
			return nil, fmt.Errorf("%w: operator %q to=%q", ErrUnknownState, op.Name, op.To)
		}
		if op.Cost < 0 {
			return nil, fmt.Errorf("%w: operator %q cost=%d", ErrNegativeCost, op.Name, op.Cost)
		}

		edgeID, err := g.AddEdge(op.From, op.To, op.Cost)
		if err != nil {
			return nil, fmt.Errorf("taskfile: operator %q: %w", op.Name, err)
		}
		if op.Name != "" {
			names[edgeID] = op.Name
		}
	}

	goals := make([]task.StateId, len(d.Goals))
	for i, gname := range d.Goals {
		goals[i] = task.StateId(gname)
	}

	return task.NewGraphTask(g, task.StateId(d.Initial), goals, task.WithOperatorNames(names))
}
