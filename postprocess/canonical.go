package postprocess

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kstarplan/kstar/task"
)

// Mode selects which operators participate in order-preserving
// canonicalization.
type Mode int

const (
	// ModeUnordered folds the whole plan into an operator multiset:
	// [a,b] and [b,a] canonicalize identically.
	ModeUnordered Mode = iota
	// ModeOrdered keeps the plan's full operator sequence as its own
	// canonical form: only byte-identical sequences are duplicates.
	ModeOrdered
	// ModeHybrid keeps the relative order of operators whose name
	// matches PreserveOrderRegex and folds the rest into a multiset; where
	// the matched operators sit among the others is not part of the key
	// (original: plan_selector.h's PlanCanonical three-way split).
	ModeHybrid
)

// Canonical deduplicates plans by a canonical key computed per Mode.
type Canonical struct {
	mode              Mode
	preserveOrderRe   *regexp.Regexp
	dumpPlans         bool
	decodeFast        bool
	seen              map[string]struct{}
	plans             []task.Plan
	nameOf            func(task.OperatorId) string
}

// NewCanonical returns a Canonical post-processor. nameOf resolves an
// operator ID to its display name for regex matching (task.Task's
// OperatorName). preserveOrderRegex is only consulted in ModeHybrid; pass
// "" for ModeUnordered/ModeOrdered.
func NewCanonical(mode Mode, preserveOrderRegex string, nameOf func(task.OperatorId) string, dumpPlans, decodeUpfront bool) (*Canonical, error) {
	var re *regexp.Regexp
	if mode == ModeHybrid && preserveOrderRegex != "" {
		compiled, err := regexp.Compile(preserveOrderRegex)
		if err != nil {
			return nil, err
		}
		re = compiled
	}
	return &Canonical{
		mode:            mode,
		preserveOrderRe: re,
		dumpPlans:       dumpPlans,
		decodeFast:      decodeUpfront,
		seen:            make(map[string]struct{}),
		nameOf:          nameOf,
	}, nil
}

// key computes the canonical string for a plan under c.mode.
func (c *Canonical) key(plan task.Plan) string {
	switch c.mode {
	case ModeOrdered:
		names := make([]string, len(plan.Actions))
		for i, a := range plan.Actions {
			names[i] = c.nameOf(a)
		}
		return strings.Join(names, ">")

	case ModeHybrid:
		var ordered []string
		counts := make(map[string]int)
		for _, a := range plan.Actions {
			name := c.nameOf(a)
			if c.preserveOrderRe != nil && c.preserveOrderRe.MatchString(name) {
				ordered = append(ordered, name)
			} else {
				counts[name]++
			}
		}
		return strings.Join(ordered, ">") + "|" + multisetKey(counts)

	default: // ModeUnordered
		counts := make(map[string]int)
		for _, a := range plan.Actions {
			counts[c.nameOf(a)]++
		}
		return multisetKey(counts)
	}
}

// multisetKey renders an operator-name histogram deterministically
// (sorted by name) so equal multisets always produce equal strings.
func multisetKey(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(counts[name]))
		b.WriteByte(',')
	}
	return b.String()
}

// AddPlanIfNecessary implements task.PlanPostProcessor.
func (c *Canonical) AddPlanIfNecessary(plan task.Plan) int {
	k := c.key(plan)
	if _, dup := c.seen[k]; dup {
		return 0
	}
	c.seen[k] = struct{}{}
	c.plans = append(c.plans, plan)
	return 1
}

// Clear implements task.PlanPostProcessor.
func (c *Canonical) Clear() {
	c.seen = make(map[string]struct{})
	c.plans = nil
}

// Plans implements task.PlanPostProcessor.
func (c *Canonical) Plans() []task.Plan { return c.plans }

// DecodePlansUpfront implements task.PlanPostProcessor.
func (c *Canonical) DecodePlansUpfront() bool { return c.decodeFast }

// IsDumpPlans implements task.PlanPostProcessor.
func (c *Canonical) IsDumpPlans() bool { return c.dumpPlans }
