package cdclsat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentAssignAndEvaluate(t *testing.T) {
	a := NewAssignment(3)
	require.Equal(t, Undefined, a.ValueOf(0), "fresh assignment should be all Undefined")

	a.Assign(0, True, 1, nil)
	assert.Equal(t, True, a.Evaluate(NewLiteral(0, true)))
	assert.Equal(t, False, a.Evaluate(NewLiteral(0, false)))
	assert.Equal(t, 1, a.Level(0))
}

func TestAssignmentAssignTwicePanics(t *testing.T) {
	a := NewAssignment(1)
	a.Assign(0, True, 0, nil)
	assert.Panics(t, func() { a.Assign(0, False, 0, nil) }, "assigning an already-assigned variable should panic")
}

func TestAssignmentStateOfClause(t *testing.T) {
	a := NewAssignment(2)
	c := Clause{Literals: []Literal{NewLiteral(0, true), NewLiteral(1, false)}}

	assert.Equal(t, Undefined, a.StateOfClause(c), "all undefined")

	a.Assign(0, False, 0, nil)
	assert.Equal(t, Undefined, a.StateOfClause(c), "one undefined")

	a.Assign(1, True, 0, nil)
	assert.Equal(t, False, a.StateOfClause(c), "both falsified")
}

func TestAssignmentUnitLiteral(t *testing.T) {
	a := NewAssignment(2)
	c := Clause{Literals: []Literal{NewLiteral(0, true), NewLiteral(1, false)}}

	_, ok := a.UnitLiteral(c)
	require.False(t, ok, "a clause with two undefined literals is not unit")

	a.Assign(1, True, 0, nil) // falsifies ¬v1
	lit, ok := a.UnitLiteral(c)
	require.True(t, ok, "clause should be unit once one literal is falsified")
	assert.Equal(t, NewLiteral(0, true), lit)

	a.Assign(0, True, 0, nil) // now satisfied
	_, ok = a.UnitLiteral(c)
	assert.False(t, ok, "a satisfied clause is not unit")
}

func TestAssignmentBacktrack(t *testing.T) {
	a := NewAssignment(3)
	h := NewActivityHeap(3)
	h.PopMax() // 0
	h.PopMax() // 1
	h.PopMax() // 2

	a.Assign(0, True, 1, nil)
	a.Assign(1, True, 2, nil)
	a.Assign(2, False, 2, []Literal{NewLiteral(1, true)})

	a.Backtrack(1, h)

	assert.Equal(t, True, a.ValueOf(0), "Backtrack(1) should not touch level-1 variables")
	assert.Equal(t, Undefined, a.ValueOf(1), "Backtrack(1) should unassign every level-2 variable")
	assert.Equal(t, Undefined, a.ValueOf(2), "Backtrack(1) should unassign every level-2 variable")
	assert.Empty(t, a.Reason(2), "Backtrack should clear reasons of unassigned variables")
	assert.True(t, h.Contains(1), "Backtrack should return unassigned variables to the heap")
	assert.True(t, h.Contains(2), "Backtrack should return unassigned variables to the heap")
}
