// SPDX-License-Identifier: Unlicense OR MIT

package pan

import (
	"math"
	"time"

	"pannable.org/f32"
	"pannable.org/internal/fling"
)

func (a *Area) hConfig() fling.Config {
	return fling.Config{
		OvershootMax:    a.params.HOvershootMax,
		VelOvershooting: a.params.VelOvershooting,
		BounceSteps:     a.params.BounceSteps,
	}
}

func (a *Area) vConfig() fling.Config {
	return fling.Config{
		OvershootMax:    a.params.VOvershootMax,
		VelOvershooting: a.params.VelOvershooting,
		BounceSteps:     a.params.BounceSteps,
	}
}

// scrollBy moves the content by the given amount in pixels. An axis
// without scrollable range is kept at rest.
func (a *Area) scrollBy(d f32.Point) {
	if !a.child.Valid() {
		return
	}

	sx, sy := true, true

	if a.vadj.Scrollable() {
		sy = a.yAxis.Scroll(a.vadj, d.Y, a.pressed, a.vConfig())
	} else {
		a.yAxis.Stop()
	}
	if a.hadj.Scrollable() {
		sx = a.xAxis.Scroll(a.hadj, d.X, a.pressed, a.hConfig())
	} else {
		a.xAxis.Stop()
	}

	// If the scroll on an axis hit the boundary, reset the accel
	// origin to the current pointer position so that dragging back
	// takes effect immediately once at the edge.
	if a.params.Mode == ModeAccel {
		if !sx {
			a.pos.X = a.dragPos.X
		}
		if !sy {
			a.pos.Y = a.dragPos.Y
		}
	}
}

// motionScroll batches motion-driven scrolling at a fixed sample
// rate. The first delta is applied immediately; followers within the
// sample interval are coalesced.
func (a *Area) motionScroll(d f32.Point) {
	if a.motionID != 0 {
		a.motionAccum = a.motionAccum.Add(d)
		return
	}
	a.scrollBy(d)
	a.motionAccum = f32.Point{}
	a.motionID = a.timers.after(a.now, time.Second/motionEventsPerSecond, func() bool {
		a.motionID = 0
		if a.motionAccum != (f32.Point{}) {
			a.scrollBy(a.motionAccum)
			a.motionAccum = f32.Point{}
		}
		return false
	})
}

// flushMotion applies any coalesced motion immediately.
func (a *Area) flushMotion() {
	if a.motionAccum != (f32.Point{}) {
		a.scrollBy(a.motionAccum)
	}
	a.motionAccum = f32.Point{}
}

func (a *Area) startTick() {
	sps := a.params.SPS
	if sps <= 0 {
		sps = DefaultParams().SPS
	}
	a.tickID = a.timers.every(a.now, time.Second/time.Duration(sps), a.tick)
}

// tick is one step of the deceleration loop. It applies the current
// velocities, then decays them, and stops once everything settled.
func (a *Area) tick() bool {
	if !a.enabled || a.params.Mode == ModePush {
		a.tickID = 0
		a.panningFinished()
		return false
	}

	a.scrollBy(f32.Point{X: a.xAxis.Vel, Y: a.yAxis.Vel})
	a.invalidate()

	if !a.pressed {
		// Decelerate gradually once the pointer is up, but not
		// while an overshoot is still being walked back.
		if a.xAxis.Overshot() == 0 && a.yAxis.Overshot() == 0 {
			_, hasX := a.xAxis.Target()
			_, hasY := a.yAxis.Target()
			if hasX || hasY {
				// Moving toward a requested point: keep
				// a gentle decay so we arrive instead of
				// stalling short.
				if abs(a.xAxis.Vel) >= 1.5 {
					a.xAxis.Vel *= a.params.Decel
				}
				if abs(a.yAxis.Vel) >= 1.5 {
					a.yAxis.Vel *= a.params.Decel
				}
			} else {
				if !a.params.LowFriction ||
					(a.params.Movement&MovementHoriz != 0 && abs(a.xAxis.Vel) < 0.8*a.params.VelMax) {
					a.xAxis.Vel *= a.params.Decel
				}
				if !a.params.LowFriction ||
					(a.params.Movement&MovementVert != 0 && abs(a.yAxis.Vel) < 0.8*a.params.VelMax) {
					a.yAxis.Vel *= a.params.Decel
				}
				if abs(a.xAxis.Vel) < 1 && abs(a.yAxis.Vel) < 1 {
					a.xAxis.Vel = 0
					a.yAxis.Vel = 0
					a.tickID = 0
					a.panningFinished()
					return false
				}
			}
		}
	} else if a.params.Mode == ModeAuto {
		// In auto mode the drag itself drives the content while
		// the finger is down; the loop resumes on release.
		a.tickID = 0
		return false
	}

	return true
}

// stopKinetic halts all kinetic movement and overshoot.
func (a *Area) stopKinetic(finish bool) {
	a.xAxis.Reset()
	a.yAxis.Reset()
	if a.tickID != 0 {
		a.timers.remove(a.tickID)
		a.tickID = 0
		if finish {
			a.panningFinished()
		}
	}
	a.invalidate()
}

// refresh recomputes scrollability dependent state after the bounds,
// page size or widget extent changed.
func (a *Area) refresh() {
	prevH, prevV := a.hscrollVisible, a.vscrollVisible
	a.hscrollVisible = a.hadj.Scrollable()
	a.vscrollVisible = a.vadj.Scrollable()
	a.updateAccelVel()
	a.updateIndicators()
	if (a.hscrollVisible || a.vscrollVisible) &&
		(a.hscrollVisible != prevH || a.vscrollVisible != prevV) {
		a.initialEffect()
	}
	a.invalidate()
}

// updateAccelVel derives the per-axis acceleration velocity from the
// content-to-page ratio. Larger content gets faster flicks, capped at
// VelMax.
func (a *Area) updateAccelVel() {
	if ps := a.vadj.PageSize(); ps > 0 {
		a.accelVel.Y = minf(a.params.VelMax, a.vadj.Upper()/ps*accelFactor)
	}
	if ps := a.hadj.PageSize(); ps > 0 {
		a.accelVel.X = minf(a.params.VelMax, a.hadj.Upper()/ps*accelFactor)
	}
}

func pow23(v float32) float32 {
	return float32(math.Pow(float64(v), 2.0/3.0))
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
