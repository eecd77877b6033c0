package crowd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crowdnav/crowd"
)

// TestDefaultPolicy_Table checks every band boundary of the default table.
func TestDefaultPolicy_Table(t *testing.T) {
	p := crowd.DefaultPolicy()
	cases := []struct {
		level, penalty float64
	}{
		{0, 0}, {5, 0}, {5.5, 2}, {6, 2}, {10, 2}, {11, 5}, {15, 5},
		{16, 10}, {18, 10}, {20, 10}, {21, 15}, {1000, 15},
		{-3, 0}, {math.NaN(), 0}, {math.Inf(1), 15},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.penalty, p.Penalty(tc.level), "level %v", tc.level)
		assert.Equal(t, crowd.BaseCost+tc.penalty, p.Cost(tc.level), "level %v", tc.level)
	}
	assert.Equal(t, 15.0, p.MaxPenalty())
}

// TestPolicy_Monotonic sweeps levels and requires non-decreasing penalties.
func TestPolicy_Monotonic(t *testing.T) {
	p := crowd.DefaultPolicy()
	prev := p.Penalty(0)
	for level := 0.0; level <= 100; level += 0.25 {
		cur := p.Penalty(level)
		require.GreaterOrEqual(t, cur, prev, "level %v", level)
		prev = cur
	}
}

// TestZeroPolicy charges nothing.
func TestZeroPolicy(t *testing.T) {
	var p crowd.Policy
	assert.Equal(t, 0.0, p.Penalty(50))
	assert.Equal(t, crowd.BaseCost, p.Cost(50))
}

// TestNewPolicy_Rejects non-monotonic tables.
func TestNewPolicy_Rejects(t *testing.T) {
	cases := map[string]struct {
		steps    []crowd.Step
		overflow float64
	}{
		"DecreasingPenalty": {[]crowd.Step{{UpTo: 5, Penalty: 3}, {UpTo: 10, Penalty: 1}}, 3},
		"RepeatedThreshold": {[]crowd.Step{{UpTo: 5, Penalty: 0}, {UpTo: 5, Penalty: 1}}, 1},
		"NegativePenalty":   {[]crowd.Step{{UpTo: 5, Penalty: -1}}, 0},
		"OverflowBelowLast": {[]crowd.Step{{UpTo: 5, Penalty: 4}}, 2},
		"NaNThreshold":      {[]crowd.Step{{UpTo: math.NaN(), Penalty: 1}}, 1},
		"NaNOverflow":       {nil, math.NaN()},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := crowd.NewPolicy(tc.steps, tc.overflow)
			assert.ErrorIs(t, err, crowd.ErrNonMonotonicPolicy)
		})
	}
}

// TestParsePolicy round-trips the default table and handles defaults.
func TestParsePolicy(t *testing.T) {
	def := crowd.DefaultPolicy()
	assert.Equal(t, "5:0,10:2,15:5,20:10,inf:15", def.String())

	p, err := crowd.ParsePolicy(def.String())
	require.NoError(t, err)
	assert.Equal(t, def.Steps(), p.Steps())
	assert.Equal(t, def.MaxPenalty(), p.MaxPenalty())

	p, err = crowd.ParsePolicy(" 3:1 , 8:2.5 ")
	require.NoError(t, err)
	assert.Equal(t, 2.5, p.MaxPenalty(), "overflow defaults to the last penalty")
	assert.Equal(t, 2.5, p.Penalty(100))
	assert.Equal(t, 1.0, p.Penalty(2))

	p, err = crowd.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Penalty(99))
}

// TestParsePolicy_Errors rejects malformed strings.
func TestParsePolicy_Errors(t *testing.T) {
	for _, s := range []string{"5", "a:1", "5:b", "10:1,5:2", "5:0,inf:3,7:4", "5:4,inf:1"} {
		_, err := crowd.ParsePolicy(s)
		assert.Error(t, err, "input %q", s)
	}
	_, err := crowd.ParsePolicy("5:0,inf:3,7:4")
	assert.ErrorIs(t, err, crowd.ErrNonMonotonicPolicy)
}
