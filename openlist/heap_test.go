package openlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kstarplan/kstar/openlist"
	"github.com/kstarplan/kstar/task"
)

func TestHeap_OrdersByF(t *testing.T) {
	ol := openlist.New()
	ol.Insert("s2", 5, 5)
	ol.Insert("s0", 1, 1)
	ol.Insert("s1", 3, 3)

	f, ok := ol.PeekMin()
	assert.True(t, ok)
	assert.Equal(t, int64(1), f)

	var order []task.StateId
	for !ol.Empty() {
		s, ok := ol.RemoveMin()
		assert.True(t, ok)
		order = append(order, s)
	}
	assert.Equal(t, []task.StateId{"s0", "s1", "s2"}, order)
}

func TestHeap_EmptyPeek(t *testing.T) {
	ol := openlist.New()
	_, ok := ol.PeekMin()
	assert.False(t, ok)
	_, ok = ol.RemoveMin()
	assert.False(t, ok)
}

func TestHeap_IsDeadEnd(t *testing.T) {
	ol := openlist.New()
	assert.True(t, ol.IsDeadEnd(task.Infinity))
	assert.False(t, ol.IsDeadEnd(42))
}
