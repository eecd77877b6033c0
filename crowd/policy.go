package crowd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BaseCost is the cost of one orthogonal step into an uncongested cell.
const BaseCost = 1.0

// ErrNonMonotonicPolicy indicates a penalty table whose thresholds are not
// strictly increasing or whose penalties decrease.
var ErrNonMonotonicPolicy = errors.New("crowd: penalty policy must be monotonic")

// Step assigns Penalty to every level ≤ UpTo not claimed by an earlier step.
type Step struct {
	UpTo    float64
	Penalty float64
}

// Policy is a monotonic step function from congestion level to extra cost.
// Levels above the last step's UpTo pay Overflow. The zero value charges
// nothing for any level.
type Policy struct {
	steps    []Step
	overflow float64
}

// NewPolicy validates and builds a policy. Thresholds must be strictly
// increasing, penalties non-negative and non-decreasing, and overflow at
// least the last penalty.
func NewPolicy(steps []Step, overflow float64) (Policy, error) {
	prevUpTo, prevPenalty := math.Inf(-1), 0.0
	for i, s := range steps {
		if s.UpTo <= prevUpTo || s.Penalty < prevPenalty || math.IsNaN(s.UpTo) || math.IsNaN(s.Penalty) {
			return Policy{}, fmt.Errorf("%w: step #%d %+v", ErrNonMonotonicPolicy, i, s)
		}
		prevUpTo, prevPenalty = s.UpTo, s.Penalty
	}
	if overflow < prevPenalty || math.IsNaN(overflow) {
		return Policy{}, fmt.Errorf("%w: overflow %v below last penalty %v", ErrNonMonotonicPolicy, overflow, prevPenalty)
	}
	return Policy{steps: append([]Step(nil), steps...), overflow: overflow}, nil
}

// DefaultPolicy returns the standard crowd penalty table:
// 0–5 → 0, ≤10 → 2, ≤15 → 5, ≤20 → 10, above → 15.
func DefaultPolicy() Policy {
	return Policy{
		steps: []Step{
			{UpTo: 5, Penalty: 0},
			{UpTo: 10, Penalty: 2},
			{UpTo: 15, Penalty: 5},
			{UpTo: 20, Penalty: 10},
		},
		overflow: 15,
	}
}

// Penalty returns the extra cost for entering a cell at the given level.
// Negative and NaN levels are treated as 0.
func (p Policy) Penalty(level float64) float64 {
	if math.IsNaN(level) || level < 0 {
		level = 0
	}
	for _, s := range p.steps {
		if level <= s.UpTo {
			return s.Penalty
		}
	}
	return p.overflow
}

// Cost returns BaseCost plus the penalty for level.
func (p Policy) Cost(level float64) float64 {
	return BaseCost + p.Penalty(level)
}

// MaxPenalty returns the largest penalty the policy can charge.
func (p Policy) MaxPenalty() float64 {
	return p.overflow
}

// Steps returns a copy of the policy's step table.
func (p Policy) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// String renders the policy in the format accepted by ParsePolicy.
func (p Policy) String() string {
	parts := make([]string, 0, len(p.steps)+1)
	for _, s := range p.steps {
		parts = append(parts, fmt.Sprintf("%s:%s", fmtFloat(s.UpTo), fmtFloat(s.Penalty)))
	}
	parts = append(parts, "inf:"+fmtFloat(p.overflow))
	return strings.Join(parts, ",")
}

// ParsePolicy parses a comma-separated list of "upTo:penalty" pairs. The
// final pair may use "inf" as its threshold to set the overflow penalty;
// without it the overflow equals the last penalty.
//
//	"5:0,10:2,15:5,20:10,inf:15"
func ParsePolicy(s string) (Policy, error) {
	var steps []Step
	overflow, haveOverflow := 0.0, false
	for i, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if haveOverflow {
			return Policy{}, fmt.Errorf("%w: pair #%d follows the inf pair", ErrNonMonotonicPolicy, i)
		}
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			return Policy{}, fmt.Errorf("crowd: parse policy pair %q: missing ':'", part)
		}
		penalty, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return Policy{}, fmt.Errorf("crowd: parse policy penalty %q: %w", v, err)
		}
		if strings.EqualFold(strings.TrimSpace(k), "inf") {
			overflow, haveOverflow = penalty, true
			continue
		}
		upTo, err := strconv.ParseFloat(strings.TrimSpace(k), 64)
		if err != nil {
			return Policy{}, fmt.Errorf("crowd: parse policy threshold %q: %w", k, err)
		}
		steps = append(steps, Step{UpTo: upTo, Penalty: penalty})
	}
	if !haveOverflow && len(steps) > 0 {
		overflow = steps[len(steps)-1].Penalty
	}
	return NewPolicy(steps, overflow)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
