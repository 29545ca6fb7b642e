package core

import "math"

// Interval is a closed range [Min, Max] of real numbers.
// Min > Max denotes the empty interval, for which every containment test fails.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real number
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates the interval [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewEmptyInterval returns the empty interval
func NewEmptyInterval() Interval {
	return EmptyInterval
}

// NewIntervalUnion returns the tightest interval enclosing both a and b
func NewIntervalUnion(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Size returns Max - Min
func (iv Interval) Size() float64 {
	return iv.Max - iv.Min
}

// Contains reports whether Min <= x <= Max
func (iv Interval) Contains(x float64) bool {
	return iv.Min <= x && x <= iv.Max
}

// Surrounds reports whether Min < x < Max
func (iv Interval) Surrounds(x float64) bool {
	return iv.Min < x && x < iv.Max
}

// Clamp saturates x to the interval bounds
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

// Expand grows the interval by delta, half on each side
func (iv Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: iv.Min - padding, Max: iv.Max + padding}
}

// Translate shifts both bounds by displacement
func (iv Interval) Translate(displacement float64) Interval {
	return Interval{Min: iv.Min + displacement, Max: iv.Max + displacement}
}
