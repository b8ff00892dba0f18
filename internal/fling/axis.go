// SPDX-License-Identifier: Unlicense OR MIT

/*
Package fling implements the kinetic scrolling physics of a pannable
area: per-axis velocity integration, boundary overshoot and the
bounce-back animation that returns overshot content to its valid
range.

All quantities are in pixels and pixels per tick. The package has no
notion of wall time; the pannable area drives it at a fixed tick rate.
*/
package fling

import "pannable.org/adjust"

// Config are the overshoot parameters of an axis.
type Config struct {
	// OvershootMax is the maximum distance, in pixels, the
	// content may travel past its boundary. Zero disables
	// overshoot: movement stops dead at the boundary.
	OvershootMax float32
	// VelOvershooting caps the velocity while pushing into the
	// overshoot region.
	VelOvershooting float32
	// BounceSteps is the number of ticks the overshoot keeps
	// pushing outward before the rebound reverses it.
	BounceSteps int
}

// Axis is the kinetic state of one scroll direction. The zero value
// is an idle axis.
//
// While not overshooting, movement is applied to the adjustment and
// clamped to its range. Once the boundary is exceeded with overshoot
// enabled, the axis accumulates a signed overshoot distance instead;
// after release, each Scroll call advances the bounce that walks the
// overshoot back to exactly zero.
type Axis struct {
	// Vel is the current velocity in pixels per tick. Positive
	// velocity moves the content toward lower values.
	Vel float32

	// overshooting counts bounce iterations. Zero means the axis
	// is within range.
	overshooting int
	// overshot is the signed distance past the boundary.
	overshot float32

	target    float32
	hasTarget bool
}

// Overshot returns the signed distance the content is past its
// boundary, positive past the lower bound.
func (a *Axis) Overshot() float32 {
	return a.overshot
}

// Overshooting reports whether the axis is past a boundary or
// bouncing back.
func (a *Axis) Overshooting() bool {
	return a.overshooting != 0
}

// Target returns the scroll-to destination, if one is set.
func (a *Axis) Target() (float32, bool) {
	return a.target, a.hasTarget
}

// SetTarget sets a scroll-to destination that short-circuits the
// deceleration: once the position crosses it, movement stops and the
// position snaps exactly to the target.
func (a *Axis) SetTarget(v float32) {
	a.target = v
	a.hasTarget = true
}

// ClearTarget removes the scroll-to destination.
func (a *Axis) ClearTarget() {
	a.target = 0
	a.hasTarget = false
}

// Stop zeroes the velocity and forgets any target. The overshoot
// state is kept; an in-flight bounce still has to come home.
func (a *Axis) Stop() {
	a.Vel = 0
	a.ClearTarget()
}

// Reset returns the axis to idle.
func (a *Axis) Reset() {
	*a = Axis{}
}

// ForceRebound prepares an immediate walk back from the current
// overshoot, used when the finger lifts while holding content past
// the boundary: the bounce push phase is skipped and the velocity is
// set proportional to the overshoot.
func (a *Axis) ForceRebound(bounceSteps int) {
	if a.overshot == 0 {
		return
	}
	a.overshooting = bounceSteps
	a.Vel = a.overshot * 0.9
}

// Scroll advances the axis by inc pixels against adj. pressed tells
// whether the finger is still down; while it is, overshoot follows
// the finger instead of bouncing. It reports whether the movement
// stayed within the scrollable range.
func (a *Axis) Scroll(adj *adjust.Adjustment, inc float32, pressed bool, cfg Config) bool {
	dist := adj.Value() - inc

	if a.overshooting == 0 {
		in := true
		switch {
		case dist < adj.Lower():
			// The content ran past the start while moving;
			// overshoot begins here if it is enabled at all.
			in = false
			dist = adj.Lower()
			if cfg.OvershootMax != 0 {
				a.overshooting = 1
				a.ClearTarget()
				a.overshot = clamp(a.overshot+a.Vel, 0, cfg.OvershootMax)
				if a.Vel > cfg.VelOvershooting {
					a.Vel = cfg.VelOvershooting
				}
			} else {
				a.Stop()
			}
		case dist > adj.End():
			in = false
			dist = adj.End()
			if cfg.OvershootMax != 0 {
				a.overshooting = 1
				a.ClearTarget()
				a.overshot = clamp(a.overshot+a.Vel, -cfg.OvershootMax, 0)
				if a.Vel < -cfg.VelOvershooting {
					a.Vel = -cfg.VelOvershooting
				}
			} else {
				a.Stop()
			}
		default:
			if a.hasTarget {
				if (inc < 0 && a.target <= dist) || (inc > 0 && a.target >= dist) {
					dist = a.target
					a.ClearTarget()
					a.Vel = 0
				}
			}
		}
		adj.SetValue(dist)
		return in
	}

	if !pressed {
		a.bounce(cfg)
		return true
	}

	// Finger still down: the overshoot follows the finger
	// displacement, clamped to the maximum, with no bounce.
	switch {
	case a.overshot > 0:
		a.overshot = clamp(a.overshot+inc, 0, cfg.OvershootMax)
	case a.overshot < 0:
		a.overshot = clamp(a.overshot+inc, -cfg.OvershootMax, 0)
	default:
		a.overshooting = 0
		adj.SetValue(dist)
	}
	return true
}

// bounce advances the bounce-back by one tick. For the first
// BounceSteps iterations the velocity keeps pushing into the
// overshoot, scaled by the fraction of the maximum already covered;
// after that it reverses, with a floor magnitude so the rebound stays
// visible, until the overshoot reaches exactly zero.
func (a *Axis) bounce(cfg Config) {
	switch {
	case a.overshot > 0:
		switch {
		case a.overshooting < cfg.BounceSteps && a.Vel > 0:
			a.overshooting++
			a.Vel = (a.overshot / cfg.OvershootMax) * a.Vel
		case a.overshooting >= cfg.BounceSteps && a.Vel > 0:
			a.Vel = -a.Vel
		case a.overshooting > 1 && a.Vel < 0:
			if v := -(a.overshot * 0.8); v < -10 {
				a.Vel = v
			} else {
				a.Vel = -10
			}
		}
		a.overshot = clamp(a.overshot+a.Vel, 0, cfg.OvershootMax)
	case a.overshot < 0:
		switch {
		case a.overshooting < cfg.BounceSteps && a.Vel < 0:
			a.overshooting++
			a.Vel = -(a.overshot / cfg.OvershootMax) * a.Vel
		case a.overshooting >= cfg.BounceSteps && a.Vel < 0:
			a.Vel = -a.Vel
		case a.overshooting > 1 && a.Vel > 0:
			if v := -(a.overshot * 0.8); v > 10 {
				a.Vel = v
			} else {
				a.Vel = 10
			}
		}
		a.overshot = clamp(a.overshot+a.Vel, -cfg.OvershootMax, 0)
	default:
		a.overshooting = 0
		a.Vel = 0
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
