// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pan implements a pannable area: a touch-drag scrollable
surface with kinetic scrolling, boundary overshoot and fading scroll
indicators, in the manner of the Maemo Fremantle pannable container.

The engine is headless. Inbound it consumes pointer events and timer
wakeups; outbound it mutates two adjustments, requests redraws and
emits panning signals. The host owns the event loop: it feeds events
through Event, sleeps until NextWake and calls Advance with a
monotonic timestamp. All methods must be called from a single
goroutine.
*/
package pan

import (
	"time"

	"pannable.org/adjust"
	"pannable.org/f32"
	"pannable.org/gesture"
	"pannable.org/internal/fling"
	"pannable.org/io/pointer"
	"pannable.org/unit"
)

// Area is a kinetic-scrolling pannable surface.
type Area struct {
	params Params
	metric unit.Metric

	enabled bool
	size    f32.Point

	hadj, vadj *adjust.Adjustment
	child      *Child
	// fwd is the child receiving synthetic events for the
	// current gesture. It is withheld (nil) when the press
	// happened while the content was moving fast, so that
	// stopping a flick does not activate whatever is under the
	// finger.
	fwd *Child

	drag  gesture.Pan
	xAxis fling.Axis
	yAxis fling.Axis
	lock  gesture.Lock

	pressed bool
	moved   bool
	// pos is the last drag sample; in ModeAccel it stays at the
	// press origin so deltas measure distance from the press.
	pos f32.Point
	// dragPos is the latest pointer position in ModeAccel.
	dragPos f32.Point
	// clickPos is the child-relative position of the press,
	// base for translated synthetic events.
	clickPos f32.Point
	lastIn   bool

	now           time.Duration
	lastTime      time.Duration
	lastPressTime time.Duration
	lastKind      pointer.Kind
	haveLast      bool

	oldVel   f32.Point
	accelVel f32.Point

	timers      timerQueue
	tickID      timerID
	motionID    timerID
	fadeID      timerID
	hintID      timerID
	animID      timerID
	motionAccum f32.Point

	anim smoothScroll
	fade fadeState

	hscrollVisible bool
	vscrollVisible bool
	hscrollRect    f32.Rectangle
	vscrollRect    f32.Rectangle
	indicatorW     float32
	hintShown      bool

	// PanningStarted is called when a pan activates. Returning
	// true vetoes the pan: the gesture is delivered to the child
	// instead.
	PanningStarted func() bool
	// PanningFinished is called when all kinetic movement has
	// settled.
	PanningFinished func()
	// Moved is called once per gesture when the drag direction
	// is classified, with the press origin.
	Moved func(dir gesture.Direction, origin f32.Point)
	// Invalidate is called whenever the indicators or content
	// offset changed and the host should redraw.
	Invalidate func()
}

// New returns an enabled area with the given tuning and display
// metric.
func New(metric unit.Metric, params Params) *Area {
	a := &Area{
		params:     params,
		metric:     metric,
		enabled:    true,
		hadj:       adjust.New(0, 0, 0, 0),
		vadj:       adjust.New(0, 0, 0, 0),
		indicatorW: 8,
	}
	a.drag.Threshold = params.PanningThreshold
	a.drag.ErrorMargin = params.DirectionErrorMargin
	a.hadj.Changed = a.refresh
	a.vadj.Changed = a.refresh
	a.hadj.ValueChanged = a.valueChanged
	a.vadj.ValueChanged = a.valueChanged
	return a
}

// HAdjustment returns the horizontal adjustment.
func (a *Area) HAdjustment() *adjust.Adjustment {
	return a.hadj
}

// VAdjustment returns the vertical adjustment.
func (a *Area) VAdjustment() *adjust.Adjustment {
	return a.vadj
}

// Params returns the current tuning.
func (a *Area) Params() Params {
	return a.params
}

// SetParams replaces the tuning. It applies to the next gesture;
// an in-flight gesture keeps its classification.
func (a *Area) SetParams(p Params) {
	a.params = p
	a.drag.Threshold = p.PanningThreshold
	a.drag.ErrorMargin = p.DirectionErrorMargin
	a.refresh()
}

// Enabled reports whether the area reacts to input.
func (a *Area) Enabled() bool {
	return a.enabled
}

// SetEnabled enables or disables panning. Disabling stops any
// kinetic movement.
func (a *Area) SetEnabled(enabled bool) {
	if a.enabled == enabled {
		return
	}
	a.enabled = enabled
	if !enabled {
		a.stopKinetic(true)
	}
}

// SetChild attaches the scrollable content. A nil child makes every
// input event a no-op.
func (a *Area) SetChild(c *Child) {
	a.child = c
	a.fwd = nil
	a.refresh()
}

// Resize sets the widget extent. ModeAccel scales velocities by it
// and the scroll indicators are laid out inside it.
func (a *Area) Resize(size f32.Point) {
	a.size = size
	a.refresh()
}

// Panning reports whether a drag is actively panning the content.
func (a *Area) Panning() bool {
	return a.moved
}

// Moving reports whether kinetic movement or a smooth scroll is in
// flight.
func (a *Area) Moving() bool {
	return a.tickID != 0 || a.anim.active
}

// Overshoot returns the signed per-axis overshoot distance.
func (a *Area) Overshoot() f32.Point {
	return f32.Point{X: a.xAxis.Overshot(), Y: a.yAxis.Overshot()}
}

// Velocity returns the modelled per-axis velocity in pixels per tick.
func (a *Area) Velocity() f32.Point {
	return f32.Point{X: a.xAxis.Vel, Y: a.yAxis.Vel}
}

// Advance runs all scheduled work due at now. now must never go
// backwards relative to earlier calls and event timestamps.
func (a *Area) Advance(now time.Duration) {
	if now > a.now {
		a.now = now
	}
	a.timers.advance(a.now)
}

// NextWake returns the deadline of the earliest scheduled work, if
// any. The host should call Advance no later than this.
func (a *Area) NextWake() (time.Duration, bool) {
	return a.timers.next()
}

// Close unregisters all pending timers. The area must not be used
// afterwards.
func (a *Area) Close() {
	a.timers.clear()
	a.tickID = 0
	a.motionID = 0
	a.fadeID = 0
	a.hintID = 0
	a.animID = 0
	a.anim.active = false
}

// Event feeds one pointer event into the area.
func (a *Area) Event(e pointer.Event) {
	if e.Time > a.now {
		a.now = e.Time
	}
	switch e.Kind {
	case pointer.Press:
		a.press(e)
	case pointer.Move:
		a.motion(e)
	case pointer.Release:
		a.release(e)
	case pointer.Scroll:
		a.wheel(e)
	case pointer.Leave:
		a.leave(e)
	case pointer.Cancel:
		a.cancel()
	}
}

func (a *Area) press(e pointer.Event) {
	if !a.enabled || !e.Buttons.Contain(pointer.ButtonLeft) || !a.child.Valid() {
		return
	}
	// A press repeating the timestamp of a previous press is a
	// double-delivery collision; drop it.
	if a.haveLast && e.Time == a.lastTime && a.lastKind == pointer.Press {
		return
	}

	a.fade.interrupt = true
	a.launchFade(a.fade.alpha)

	a.lastTime = e.Time
	a.lastPressTime = e.Time
	a.lastKind = pointer.Press
	a.haveLast = true

	a.xAxis.ClearTarget()
	a.yAxis.ClearTarget()
	a.stopAnim()

	if a.pressed && a.fwd.Valid() {
		// The previous gesture never saw its release; send the
		// crossing-out it is owed.
		a.synthCrossing(f32.Point{}, e, false)
	}

	a.pos = e.Position
	a.dragPos = e.Position
	a.drag.Start(e.Position)
	a.lock = gesture.LockNone

	// Don't allow a click while still moving fast, so a press can
	// stop a flick without activating the content under it.
	fastV := a.params.VelMax * a.params.VelFastFactor
	if abs(a.xAxis.Vel) <= fastV && abs(a.yAxis.Vel) <= fastV {
		a.fwd = a.child
	} else {
		a.fwd = nil
	}

	a.pressed = true

	// Stop scrolling on press, so you can flick, then hold to
	// stop. The old velocity is kept for the fast-click boost.
	a.oldVel = f32.Point{X: a.xAxis.Vel, Y: a.yAxis.Vel}
	a.xAxis.Vel = 0
	a.yAxis.Vel = 0
	if a.tickID != 0 {
		a.timers.remove(a.tickID)
		a.tickID = 0
		a.panningFinished()
	}

	if a.fwd.Valid() {
		a.clickPos = e.Position
		a.lastIn = true
		a.synthCrossing(e.Position, e, true)
		press := e
		press.Position = a.clickPos
		a.fwd.put(press)
	}
}

func (a *Area) motion(e pointer.Event) {
	if !a.child.Valid() {
		return
	}
	if !a.enabled || !a.pressed {
		return
	}
	if a.haveLast && e.Time == a.lastTime && a.lastKind == pointer.Move {
		return
	}

	d := e.Position.Sub(a.pos)

	if !a.moved {
		a.checkMove(e, &d)
	}
	if a.moved {
		a.handleMove(e, &d)
	} else if a.fwd.Valid() {
		// Unclassified press: keep the child's notion of the
		// pointer being inside it up to date.
		pos := a.clickPos.Add(e.Position.Sub(a.drag.Origin()))
		in := a.fwd.contains(pos)
		if in != a.lastIn {
			a.synthCrossing(pos, e, in)
			a.lastIn = in
		}
		move := e
		move.Position = pos
		a.fwd.put(move)
	}

	a.lastTime = e.Time
	a.lastKind = pointer.Move
	a.haveLast = true
}

// checkMove classifies the drag once it exceeds the panning
// threshold. The over-threshold delta is swallowed so panning starts
// from rest.
func (a *Area) checkMove(e pointer.Event, d *f32.Point) {
	canH := a.hadj.Scrollable() && a.params.Movement&MovementHoriz != 0
	canV := a.vadj.Scrollable() && a.params.Movement&MovementVert != 0
	c, ok := a.drag.Classify(a.metric, e.Position, canH, canV)
	if !ok {
		return
	}
	*d = f32.Point{}

	if a.Moved != nil {
		a.Moved(c.Direction, c.Origin)
	}
	a.lock = c.Lock
	a.moved = c.Lock != gesture.LockNone

	if a.moved && a.fwd.Valid() {
		// Panning has begun: the pointer leaves the child as
		// far as clicking is concerned.
		pos := a.clickPos.Add(e.Position.Sub(a.drag.Origin()))
		a.synthCrossing(pos, e, false)
	}
	if a.moved && a.PanningStarted != nil {
		if a.PanningStarted() {
			a.moved = false
		}
	}

	if a.moved && a.params.Mode == ModeAccel && a.tickID == 0 {
		a.startTick()
	}
}

func (a *Area) handleMove(e pointer.Event, d *f32.Point) {
	allowH := a.lock == gesture.LockHorizontal || a.lock == gesture.LockBoth
	allowV := a.lock == gesture.LockVertical || a.lock == gesture.LockBoth

	switch a.params.Mode {
	case ModePush:
		// Scroll by the amount of pixels the cursor has moved
		// since the last motion event.
		if !allowH {
			d.X = 0
		}
		if !allowV {
			d.Y = 0
		}
		a.motionScroll(*d)
		a.pos = e.Position
	case ModeAccel:
		// Acceleration relative to the initial click.
		a.dragPos = e.Position
		if allowH && a.size.X > 0 {
			a.xAxis.Vel = accelVelocity(d.X, a.size.X, a.params.VelMin, a.params.VelMax)
		} else {
			a.xAxis.Vel = 0
		}
		if allowV && a.size.Y > 0 {
			a.yAxis.Vel = accelVelocity(d.Y, a.size.Y, a.params.VelMin, a.params.VelMax)
		} else {
			a.yAxis.Vel = 0
		}
	case ModeAuto:
		dt := float32(e.Time-a.lastTime) / float32(time.Millisecond)
		if allowV {
			a.yAxis.Vel = fling.Blend(a.yAxis.Vel, dt, e.Position.Y-a.pos.Y,
				a.params.VelMax, a.params.DragInertia, a.params.Force)
		} else {
			d.Y = 0
			a.yAxis.Vel = 0
		}
		if allowH {
			a.xAxis.Vel = fling.Blend(a.xAxis.Vel, dt, e.Position.X-a.pos.X,
				a.params.VelMax, a.params.DragInertia, a.params.Force)
		} else {
			d.X = 0
			a.xAxis.Vel = 0
		}
		a.motionScroll(*d)
		if allowH {
			a.pos.X = e.Position.X
		}
		if allowV {
			a.pos.Y = e.Position.Y
		}
	}
}

func (a *Area) release(e pointer.Event) {
	if a.haveLast && e.Time == a.lastTime && a.lastKind == pointer.Release {
		return
	}
	if !a.child.Valid() || !a.pressed || !a.enabled || !e.Buttons.Contain(pointer.ButtonLeft) {
		return
	}

	forceFast := true

	// If the last event was a motion we have to account for the
	// final movement before launching the animation.
	if a.lastKind == pointer.Move {
		d := e.Position.Sub(a.pos)
		dt := e.Time - a.lastTime
		if !a.moved {
			a.checkMove(e, &d)
		}
		if a.moved {
			a.handleMove(e, &d)

			// Move all the way to the last position now.
			if a.motionID != 0 {
				a.timers.remove(a.motionID)
				a.motionID = 0
				a.flushMotion()
			}

			// A pointer that rested before lifting stops
			// the content instead of flicking it.
			if abs(d.X) < 4 && dt >= cursorStoppedTimeout {
				a.xAxis.Vel = 0
			}
			if abs(d.Y) < 4 && dt >= cursorStoppedTimeout {
				a.yAxis.Vel = 0
			}
		}
	}

	// Overshoot held by the finger rebounds immediately, without
	// the bounce push phase.
	a.xAxis.ForceRebound(a.params.BounceSteps)
	a.yAxis.ForceRebound(a.params.BounceSteps)

	a.pressed = false

	// If the content was already moving when this press-release
	// happened quickly, speed it up even more.
	if e.Time-a.lastPressTime < fastClick &&
		(abs(a.oldVel.X) > a.params.VelMin || abs(a.oldVel.Y) > a.params.VelMin) &&
		(abs(a.oldVel.X) > minAccelThreshold || abs(a.oldVel.Y) > minAccelThreshold) {
		a.xAxis.Vel = boost(a.xAxis.Vel, a.oldVel.X, a.accelVel.X)
		a.yAxis.Vel = boost(a.yAxis.Vel, a.oldVel.Y, a.accelVel.Y)
		forceFast = false
	}

	if abs(a.yAxis.Vel) >= a.params.VelMin || abs(a.xAxis.Vel) >= a.params.VelMin {
		// We may be here without a classified pan when the
		// release happens in an overshot position.
		if !a.moved && a.PanningStarted != nil {
			a.PanningStarted()
		}
		a.fade.alpha = 1
		if forceFast {
			if abs(a.xAxis.Vel) > maxSpeedThreshold && a.accelVel.X > maxSpeedThreshold {
				a.xAxis.Vel = copysign(a.accelVel.X, a.xAxis.Vel)
			}
			if abs(a.yAxis.Vel) > maxSpeedThreshold && a.accelVel.Y > maxSpeedThreshold {
				a.yAxis.Vel = copysign(a.accelVel.Y, a.yAxis.Vel)
			}
		}
		if a.tickID == 0 {
			a.startTick()
		}
	} else if a.moved {
		a.panningFinished()
	}

	a.fade.interrupt = false
	a.fade.delay = a.params.FadeDelay
	a.launchFade(a.fade.alpha)

	a.lastTime = e.Time
	a.lastKind = pointer.Release
	a.haveLast = true

	if !a.fwd.Valid() {
		a.moved = false
		a.drag.Reset()
		return
	}

	// Forward the release so buttons that saw the synthetic press
	// resolve, but cancel the click when the gesture panned: the
	// crossing-out plus an offscreen position stops widgets that
	// ignore leave events from firing.
	pos := a.clickPos.Add(e.Position.Sub(a.drag.Origin()))
	rel := e
	if a.moved || !a.fwd.contains(pos) {
		a.synthCrossing(pos, e, false)
		rel.Position = f32.Point{X: -16384, Y: -16384}
		a.fwd.put(rel)
	} else {
		rel.Position = pos
		a.fwd.put(rel)
		a.synthCrossing(pos, e, false)
	}

	a.moved = false
	a.drag.Reset()
}

// wheel maps a scroll wheel event to a page-relative jump, stopping
// any kinetic movement first.
func (a *Area) wheel(e pointer.Event) {
	if !a.enabled || !a.child.Valid() {
		return
	}

	a.fade.interrupt = false
	a.fade.delay = a.params.FadeDelay + 20
	a.launchFade(1)

	if a.tickID != 0 {
		a.stopKinetic(true)
	}

	adj := a.vadj
	dir := e.Scroll.Y
	if dir == 0 {
		adj = a.hadj
		dir = e.Scroll.X
	}
	if dir == 0 {
		return
	}
	// Delta calculation borrowed from stock range widgets.
	delta := pow23(adj.PageSize())
	if dir < 0 {
		delta = -delta
	}
	adj.SetValue(adj.Value() + delta)
}

func (a *Area) leave(e pointer.Event) {
	if a.fwd.Valid() && a.lastIn {
		a.lastIn = false
		a.synthCrossing(f32.Point{}, e, false)
	}
}

// cancel aborts the gesture when the pointer grab is taken away.
// No synthetic events are sent; the grab owner gets the real ones.
func (a *Area) cancel() {
	if !a.pressed {
		return
	}
	a.pressed = false
	a.moved = false
	a.drag.Reset()
	if a.motionID != 0 {
		a.timers.remove(a.motionID)
		a.motionID = 0
	}
	if abs(a.xAxis.Vel) >= a.params.VelMin || abs(a.yAxis.Vel) >= a.params.VelMin ||
		a.xAxis.Overshooting() || a.yAxis.Overshooting() {
		if a.tickID == 0 {
			a.startTick()
		}
	} else {
		a.xAxis.Stop()
		a.yAxis.Stop()
		a.panningFinished()
	}
}

func (a *Area) synthCrossing(pos f32.Point, from pointer.Event, in bool) {
	if !a.fwd.Valid() {
		return
	}
	kind := pointer.Leave
	if in {
		kind = pointer.Enter
	}
	a.fwd.put(pointer.Event{
		Kind:     kind,
		Source:   from.Source,
		Time:     from.Time,
		Position: pos,
		Root:     from.Root,
	})
}

func (a *Area) panningFinished() {
	if a.PanningFinished != nil {
		a.PanningFinished()
	}
}

func (a *Area) invalidate() {
	if a.Invalidate != nil {
		a.Invalidate()
	}
}

func (a *Area) valueChanged() {
	a.updateIndicators()
	a.invalidate()
	if a.hscrollVisible || a.vscrollVisible {
		a.fade.interrupt = false
		a.fade.delay = a.params.FadeDelay
		a.launchFade(1)
	}
}

// accelVelocity maps a distance from the press origin to a velocity
// between VelMin and VelMax, scaled by the widget extent.
func accelVelocity(d, extent, vmin, vmax float32) float32 {
	v := abs(d)/extent*(vmax-vmin) + vmin
	if d < 0 {
		return -v
	}
	return v
}

// boost speeds up an ongoing movement on a fast re-flick. The boosted
// magnitude is the old velocity plus the per-axis acceleration
// constant; the direction flips when the new drag opposes the old
// movement.
func boost(vel, oldVel, accelVel float32) float32 {
	var symbol float32
	if vel != 0 {
		if vel*oldVel > 0 {
			symbol = 1
		} else {
			symbol = -1
		}
	}
	if oldVel > 0 {
		return symbol * (oldVel + accelVel)
	}
	return symbol * (oldVel - accelVel)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func copysign(v, sign float32) float32 {
	if sign < 0 {
		return -abs(v)
	}
	return abs(v)
}
