// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements recognition of panning gestures.

A Pan accepts low level pointer positions and decides, from the initial
movement of a drag, whether the drag is vertical, horizontal, rejected,
or free to move on both axes.
*/
package gesture

import (
	"pannable.org/f32"
	"pannable.org/unit"
)

// Pan classifies the initial movement of a drag. Classification
// happens once per press, on the first motion that moves further than
// the panning threshold from the press origin on either axis. The
// dominant axis is whichever absolute delta is larger, subject to the
// error margin: a drag whose deltas are within the margin of each
// other is considered diagonal and locks no single axis.
type Pan struct {
	// Threshold is the distance a drag must cover before it is
	// classified. If zero, DefaultThreshold is used.
	Threshold unit.Value
	// ErrorMargin is the maximum difference between the axis
	// deltas for a drag to count as diagonal. If zero,
	// DefaultErrorMargin is used.
	ErrorMargin unit.Value

	origin  f32.Point
	pressed bool
	done    bool
}

// Classification is the one-shot result of classifying a drag.
type Classification struct {
	// Direction of the initial movement along the dominant axis.
	Direction Direction
	// Origin is the press position the drag started from.
	Origin f32.Point
	// Lock is the axis the drag is locked to. LockNone means the
	// drag was rejected and no panning should start.
	Lock Lock
}

// Direction of the initial movement of a drag.
type Direction uint8

// Lock is the set of axes a classified drag may pan.
type Lock uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

const (
	// LockNone rejects the drag.
	LockNone Lock = iota
	// LockVertical restricts panning to the vertical axis.
	LockVertical
	// LockHorizontal restricts panning to the horizontal axis.
	LockHorizontal
	// LockBoth leaves both axes active for a diagonal drag.
	LockBoth
)

var (
	// DefaultThreshold matches the touch threshold used by the
	// Maemo Fremantle pannable defaults.
	DefaultThreshold = unit.Dp(25)
	// DefaultErrorMargin is the default diagonal error margin.
	DefaultErrorMargin = unit.Dp(10)
)

// Start begins tracking a drag from the press position pos. Any
// earlier classification is discarded.
func (p *Pan) Start(pos f32.Point) {
	p.origin = pos
	p.pressed = true
	p.done = false
}

// Reset stops tracking the current drag.
func (p *Pan) Reset() {
	p.pressed = false
	p.done = false
}

// Pressed reports whether a drag is being tracked.
func (p *Pan) Pressed() bool {
	return p.pressed
}

// Classified reports whether the current drag has been classified.
func (p *Pan) Classified() bool {
	return p.pressed && p.done
}

// Origin returns the press position of the tracked drag.
func (p *Pan) Origin() f32.Point {
	return p.origin
}

// Classify consumes a motion position. It returns a classification,
// exactly once per press, when the motion first exceeds the panning
// threshold on either axis. canHoriz and canVert report whether the
// corresponding axis has scrollable range; an axis without range can
// not be locked, and a drag dominated by such an axis is rejected
// unless it is within the error margin of the other, pannable axis.
func (p *Pan) Classify(cfg unit.Converter, pos f32.Point, canHoriz, canVert bool) (Classification, bool) {
	if !p.pressed || p.done {
		return Classification{}, false
	}
	thr := p.Threshold
	if thr == (unit.Value{}) {
		thr = DefaultThreshold
	}
	margin := p.ErrorMargin
	if margin == (unit.Value{}) {
		margin = DefaultErrorMargin
	}
	d := pos.Sub(p.origin)
	adx, ady := abs(d.X), abs(d.Y)
	if t := float32(cfg.Px(thr)); adx <= t && ady <= t {
		return Classification{}, false
	}
	p.done = true
	m := float32(cfg.Px(margin))
	c := Classification{Origin: p.origin}
	if ady >= adx {
		if d.Y < 0 {
			c.Direction = Up
		} else {
			c.Direction = Down
		}
		c.Lock = lockFor(canVert, canHoriz, ady-adx < m, LockVertical, LockHorizontal)
	} else {
		if d.X < 0 {
			c.Direction = Left
		} else {
			c.Direction = Right
		}
		c.Lock = lockFor(canHoriz, canVert, adx-ady < m, LockHorizontal, LockVertical)
	}
	return c, true
}

// lockFor resolves the axis lock for a drag dominated by the dominant
// axis. A diagonal drag with both axes pannable stays free; a drag
// whose dominant axis has no range may still pan the other axis if it
// is close enough to diagonal.
func lockFor(canDominant, canOther, diagonal bool, dominant, other Lock) Lock {
	switch {
	case canDominant && canOther && diagonal:
		return LockBoth
	case canDominant:
		return dominant
	case canOther && diagonal:
		return other
	default:
		return LockNone
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		panic("invalid Direction")
	}
}

func (l Lock) String() string {
	switch l {
	case LockNone:
		return "LockNone"
	case LockVertical:
		return "LockVertical"
	case LockHorizontal:
		return "LockHorizontal"
	case LockBoth:
		return "LockBoth"
	default:
		panic("invalid Lock")
	}
}
