package cdclsat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityHeapPopMaxOrder(t *testing.T) {
	h := NewActivityHeap(4)
	h.Bump(2)
	h.Bump(2)
	h.Bump(0)

	v, ok := h.PopMax()
	require.True(t, ok)
	assert.Equal(t, Var(2), v)

	v, ok = h.PopMax()
	require.True(t, ok)
	assert.Equal(t, Var(0), v)
}

func TestActivityHeapPopMaxEmpty(t *testing.T) {
	h := NewActivityHeap(0)
	_, ok := h.PopMax()
	assert.False(t, ok, "PopMax() on an empty heap should report ok=false")
}

func TestActivityHeapPushVarIdempotent(t *testing.T) {
	h := NewActivityHeap(1)
	require.True(t, h.Contains(0), "NewActivityHeap should start with every variable present")
	h.PushVar(0) // no-op, already present
	assert.Equal(t, 1, h.Len())

	h.PopMax()
	assert.False(t, h.Contains(0), "Contains should be false after popping the only variable")

	h.PushVar(0)
	assert.True(t, h.Contains(0), "PushVar should reinstate a popped variable")
}

func TestActivityHeapDecay(t *testing.T) {
	h := NewActivityHeap(1)
	h.Bump(0)
	first := h.Activity(0)
	h.Decay()
	h.Bump(0)
	second := h.Activity(0) - first
	assert.Greaterf(t, second, first, "bump after decay should be larger than pre-decay bump %v", first)
}

func TestActivityHeapRescale(t *testing.T) {
	h := NewActivityHeap(2)
	h.activity[0] = rescaleThreshold / 2
	h.activity[1] = rescaleThreshold / 4
	h.bump = rescaleThreshold
	h.Bump(0)
	assert.Less(t, h.Activity(0), rescaleThreshold, "should have been rescaled below threshold")
	assert.Equal(t, rescaleThreshold/4*rescaleFactor, h.Activity(1), "rescale should have scaled every activity")
}
