// SPDX-License-Identifier: Unlicense OR MIT

package pan

import "time"

// smoothScroll is the frame-driven animation behind ScrollTo,
// distinct from gesture-driven panning: it interpolates both
// adjustments from their current values to fixed targets over the
// configured scroll time.
type smoothScroll struct {
	active     bool
	start, end time.Duration
	hFrom, hTo float32
	vFrom, vTo float32
}

// Skip is the coordinate value that leaves an axis untouched in
// ScrollTo and JumpTo.
const Skip = -1

// ScrollTo smoothly scrolls the area so that the point (x, y) is
// centered in the visible page. Pass Skip for a coordinate to leave
// that axis alone; if both are Skip, or nothing is scrollable, the
// call is a no-op. In ModePush the scroll is immediate, like JumpTo.
//
// If kinetic movement is in flight, the momentum is steered toward
// the target instead: the deceleration loop keeps running and each
// axis snaps exactly when it crosses its target.
func (a *Area) ScrollTo(x, y float32) {
	if !a.scrollToOK(x, y) {
		return
	}
	if a.params.Mode == ModePush || a.params.ScrollTime <= 0 {
		a.JumpTo(x, y)
		return
	}
	h, v := a.centerTargets(x, y)
	if a.tickID != 0 && !a.xAxis.Overshooting() && !a.yAxis.Overshooting() {
		a.steerTo(h, v)
		return
	}
	a.startAnim(h, v)
}

// steerTo re-aims the in-flight velocities so the targets are reached
// within the scroll time.
func (a *Area) steerTo(h, v float32) {
	sps := a.params.SPS
	if sps <= 0 {
		sps = DefaultParams().SPS
	}
	ticks := float32(a.params.ScrollTime) / float32(time.Second) * float32(sps)
	if ticks < 1 {
		ticks = 1
	}
	a.stopAnim()
	if d := a.hadj.Value() - h; d != 0 {
		a.xAxis.SetTarget(h)
		a.xAxis.Vel = d / ticks
	} else {
		a.xAxis.ClearTarget()
	}
	if d := a.vadj.Value() - v; d != 0 {
		a.yAxis.SetTarget(v)
		a.yAxis.Vel = d / ticks
	} else {
		a.yAxis.ClearTarget()
	}
}

// JumpTo scrolls immediately so that (x, y) is centered in the
// visible page. Pass Skip for a coordinate to leave that axis alone.
// Any in-flight movement is cancelled.
func (a *Area) JumpTo(x, y float32) {
	if !a.scrollToOK(x, y) {
		return
	}
	h, v := a.centerTargets(x, y)
	a.stopAnim()
	a.stopKinetic(false)
	a.hadj.SetValue(h)
	a.vadj.SetValue(v)
}

func (a *Area) scrollToOK(x, y float32) bool {
	if !a.child.Valid() {
		return false
	}
	if !a.hadj.Scrollable() && !a.vadj.Scrollable() {
		return false
	}
	return x != Skip || y != Skip
}

// centerTargets maps requested content coordinates to adjustment
// values, centering the point in the page and clamping to the
// scrollable range. A Skip coordinate keeps the current value.
func (a *Area) centerTargets(x, y float32) (h, v float32) {
	h = a.hadj.Value()
	if x != Skip {
		h = clampf(x-a.hadj.PageSize()/2, a.hadj.Lower(), a.hadj.End())
	}
	v = a.vadj.Value()
	if y != Skip {
		v = clampf(y-a.vadj.PageSize()/2, a.vadj.Lower(), a.vadj.End())
	}
	return h, v
}

func (a *Area) startAnim(h, v float32) {
	if a.anim.active && a.anim.hTo == h && a.anim.vTo == v {
		return
	}
	// A requested destination overrides whatever momentum is left.
	a.stopKinetic(false)
	a.anim = smoothScroll{
		active: true,
		start:  a.now,
		end:    a.now + a.params.ScrollTime,
		hFrom:  a.hadj.Value(),
		hTo:    h,
		vFrom:  a.vadj.Value(),
		vTo:    v,
	}
	if a.animID == 0 {
		a.animID = a.timers.every(a.now, frameInterval, a.animTick)
	}
}

func (a *Area) stopAnim() {
	a.anim.active = false
	if a.animID != 0 {
		a.timers.remove(a.animID)
		a.animID = 0
	}
}

func (a *Area) animTick() bool {
	if !a.anim.active {
		a.animID = 0
		return false
	}
	if a.now < a.anim.end {
		t := float32(a.now-a.anim.start) / float32(a.anim.end-a.anim.start)
		t = easeOutCubic(t)
		a.hadj.SetValue(a.anim.hFrom + t*(a.anim.hTo-a.anim.hFrom))
		a.vadj.SetValue(a.anim.vFrom + t*(a.anim.vTo-a.anim.vFrom))
		a.invalidate()
		return true
	}
	a.hadj.SetValue(a.anim.hTo)
	a.vadj.SetValue(a.anim.vTo)
	a.anim.active = false
	a.animID = 0
	a.invalidate()
	return false
}

// easeOutCubic is Robert Penner's cubic ease-out curve.
func easeOutCubic(t float32) float32 {
	p := t - 1
	return p*p*p + 1
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
