// SPDX-License-Identifier: Unlicense OR MIT

/*
Package adjust provides the Adjustment type, a scrollable range with a
current value, bounds and a page size.

An Adjustment is the contract between a pannable area and its host: the
engine moves the value, the host observes the changes and positions its
content accordingly. The value is kept inside [Lower, Upper-PageSize]
at all times; visual overshoot past the boundary is modelled separately
by the area and never leaks into the adjustment.
*/
package adjust

// An Adjustment holds a scrollable range's current value, bounds and
// page size.
type Adjustment struct {
	value    float32
	lower    float32
	upper    float32
	pageSize float32

	// ValueChanged, if non-nil, is called after every effective
	// value change.
	ValueChanged func()
	// Changed, if non-nil, is called after the bounds or page
	// size change.
	Changed func()
}

// New returns an adjustment with the given bounds and page size and
// the value clamped inside them.
func New(value, lower, upper, pageSize float32) *Adjustment {
	a := &Adjustment{lower: lower, upper: upper, pageSize: pageSize}
	a.value = a.clamp(value)
	return a
}

// Value returns the current value.
func (a *Adjustment) Value() float32 {
	return a.value
}

// Lower returns the minimum value.
func (a *Adjustment) Lower() float32 {
	return a.lower
}

// Upper returns the maximum value. The maximum reachable value is
// Upper less PageSize.
func (a *Adjustment) Upper() float32 {
	return a.upper
}

// PageSize returns the visible page size.
func (a *Adjustment) PageSize() float32 {
	return a.pageSize
}

// End returns the maximum reachable value, Upper-PageSize, but never
// less than Lower.
func (a *Adjustment) End() float32 {
	end := a.upper - a.pageSize
	if end < a.lower {
		end = a.lower
	}
	return end
}

// Scrollable reports whether the range exceeds the page size, that
// is, whether there is anywhere to scroll to.
func (a *Adjustment) Scrollable() bool {
	return a.upper-a.lower > a.pageSize
}

// SetValue sets the value, clamped to [Lower, Upper-PageSize], and
// reports whether the value changed.
func (a *Adjustment) SetValue(v float32) bool {
	v = a.clamp(v)
	if v == a.value {
		return false
	}
	a.value = v
	if a.ValueChanged != nil {
		a.ValueChanged()
	}
	return true
}

// Configure sets the bounds and page size, re-clamps the value, and
// notifies the Changed callback.
func (a *Adjustment) Configure(lower, upper, pageSize float32) {
	a.lower, a.upper, a.pageSize = lower, upper, pageSize
	if v := a.clamp(a.value); v != a.value {
		a.value = v
		if a.ValueChanged != nil {
			a.ValueChanged()
		}
	}
	if a.Changed != nil {
		a.Changed()
	}
}

func (a *Adjustment) clamp(v float32) float32 {
	if end := a.End(); v > end {
		v = end
	}
	if v < a.lower {
		v = a.lower
	}
	return v
}
