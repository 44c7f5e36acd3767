package cdclsat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralFromInt(t *testing.T) {
	for _, tt := range []struct {
		in       int
		wantVar  Var
		wantPos  bool
		wantBack int
	}{
		{1, 0, true, 1},
		{-1, 0, false, -1},
		{42, 41, true, 42},
		{-42, 41, false, -42},
	} {
		lit := LiteralFromInt(tt.in)
		assert.Equalf(t, tt.wantVar, lit.Var(), "LiteralFromInt(%d).Var()", tt.in)
		assert.Equalf(t, tt.wantPos, lit.IsPositive(), "LiteralFromInt(%d).IsPositive()", tt.in)
		assert.Equalf(t, !tt.wantPos, lit.IsNegative(), "LiteralFromInt(%d).IsNegative()", tt.in)
		assert.Equalf(t, tt.wantBack, lit.Int(), "LiteralFromInt(%d).Int()", tt.in)
	}
}

func TestLiteralFromIntZeroPanics(t *testing.T) {
	assert.Panics(t, func() { LiteralFromInt(0) })
}

func TestLiteralNegate(t *testing.T) {
	lit := NewLiteral(3, true)
	neg := lit.Negate()
	require.Equal(t, lit.Var(), neg.Var(), "Negate changed variable")
	assert.False(t, neg.IsPositive(), "Negate of a positive literal should be negative")
	assert.Equal(t, lit, neg.Negate(), "Negate is not its own inverse")
}

func TestLiteralString(t *testing.T) {
	assert.Equal(t, "1", NewLiteral(0, true).String())
	assert.Equal(t, "-1", NewLiteral(0, false).String())
}
