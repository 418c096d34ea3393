package postprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstarplan/kstar/postprocess"
	"github.com/kstarplan/kstar/task"
)

func nameOf(op task.OperatorId) string { return string(op) }

func TestIdentity_NeverDedupes(t *testing.T) {
	p := postprocess.NewIdentity(false, false)
	plan := task.Plan{Cost: 2, Actions: []task.OperatorId{"a", "b"}}
	assert.Equal(t, 1, p.AddPlanIfNecessary(plan))
	assert.Equal(t, 1, p.AddPlanIfNecessary(plan))
	assert.Len(t, p.Plans(), 2)
}

func TestCanonical_Unordered_DedupesCommutingOperators(t *testing.T) {
	c, err := postprocess.NewCanonical(postprocess.ModeUnordered, "", nameOf, false, false)
	require.NoError(t, err)

	p1 := task.Plan{Cost: 2, Actions: []task.OperatorId{"a", "b"}}
	p2 := task.Plan{Cost: 2, Actions: []task.OperatorId{"b", "a"}}
	assert.Equal(t, 1, c.AddPlanIfNecessary(p1))
	assert.Equal(t, 0, c.AddPlanIfNecessary(p2))
	assert.Len(t, c.Plans(), 1)
}

func TestCanonical_Ordered_KeepsDistinctSequences(t *testing.T) {
	c, err := postprocess.NewCanonical(postprocess.ModeOrdered, "", nameOf, false, false)
	require.NoError(t, err)

	p1 := task.Plan{Cost: 2, Actions: []task.OperatorId{"a", "b"}}
	p2 := task.Plan{Cost: 2, Actions: []task.OperatorId{"b", "a"}}
	assert.Equal(t, 1, c.AddPlanIfNecessary(p1))
	assert.Equal(t, 1, c.AddPlanIfNecessary(p2))
	assert.Len(t, c.Plans(), 2)
}

func TestCanonical_Hybrid_PreservesRegexMatchedOrder(t *testing.T) {
	c, err := postprocess.NewCanonical(postprocess.ModeHybrid, "^lock_.*", nameOf, false, false)
	require.NoError(t, err)

	// "lock_a" then "lock_b" is a different plan from "lock_b" then
	// "lock_a" (both match the regex, so order matters); the commuting
	// "free_*" ops fold regardless of position.
	p1 := task.Plan{Cost: 3, Actions: []task.OperatorId{"lock_a", "free_x", "lock_b"}}
	p2 := task.Plan{Cost: 3, Actions: []task.OperatorId{"lock_b", "free_x", "lock_a"}}
	p3 := task.Plan{Cost: 3, Actions: []task.OperatorId{"lock_a", "lock_b", "free_x"}}

	assert.Equal(t, 1, c.AddPlanIfNecessary(p1))
	assert.Equal(t, 1, c.AddPlanIfNecessary(p2))
	// p3 matches p1's canonical key: same order of regex-matched
	// operators, same free_x count.
	assert.Equal(t, 0, c.AddPlanIfNecessary(p3))
}
