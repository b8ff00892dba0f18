// SPDX-License-Identifier: Unlicense OR MIT

package pan

import (
	"testing"
	"time"

	"pannable.org/f32"
	"pannable.org/gesture"
	"pannable.org/io/event"
	"pannable.org/io/pointer"
	"pannable.org/unit"
)

var metric = unit.Metric{PxPerDp: 1}

func newTestArea(p Params) *Area {
	a := New(metric, p)
	a.Resize(f32.Pt(800, 480))
	a.SetChild(NewChild(f32.Pt(800, 480), nil))
	a.VAdjustment().Configure(0, 1000, 400)
	return a
}

func press(t time.Duration, x, y float32) pointer.Event {
	return pointer.Event{
		Kind:     pointer.Press,
		Buttons:  pointer.ButtonLeft,
		Time:     t,
		Position: f32.Pt(x, y),
	}
}

func move(t time.Duration, x, y float32) pointer.Event {
	return pointer.Event{
		Kind:     pointer.Move,
		Buttons:  pointer.ButtonLeft,
		Time:     t,
		Position: f32.Pt(x, y),
	}
}

func release(t time.Duration, x, y float32) pointer.Event {
	return pointer.Event{
		Kind:     pointer.Release,
		Buttons:  pointer.ButtonLeft,
		Time:     t,
		Position: f32.Pt(x, y),
	}
}

// drain advances the area until no work is pending.
func drain(t *testing.T, a *Area) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		w, ok := a.NextWake()
		if !ok {
			return
		}
		a.Advance(w)
	}
	t.Fatal("scheduled work never settled")
}

func approx(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestSmallDragDoesNotPan(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)
	movedCalls := 0
	a.Moved = func(gesture.Direction, f32.Point) { movedCalls++ }

	a.Event(press(0, 100, 100))
	a.Event(move(10*time.Millisecond, 110, 110))
	a.Event(release(20*time.Millisecond, 110, 110))
	drain(t, a)

	if movedCalls != 0 {
		t.Errorf("Moved fired %d times for a sub-threshold drag", movedCalls)
	}
	if v := a.VAdjustment().Value(); v != 0 {
		t.Errorf("value moved to %g on a sub-threshold drag", v)
	}
	if v := a.Velocity(); v != (f32.Point{}) {
		t.Errorf("velocity %v after a sub-threshold drag", v)
	}
}

func TestFlickSettles(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)
	finished := 0
	a.PanningFinished = func() { finished++ }

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 360))
	a.Event(release(20*time.Millisecond, 400, 340))

	if !a.Moving() {
		t.Fatal("no kinetic movement after a flick")
	}
	drain(t, a)

	if finished == 0 {
		t.Error("PanningFinished never fired")
	}
	if v := a.Velocity(); v != (f32.Point{}) {
		t.Errorf("velocity %v after settling", v)
	}
	if o := a.Overshoot(); o != (f32.Point{}) {
		t.Errorf("overshoot %v after settling", o)
	}
	// A hard upward flick runs into the far boundary and must come
	// to rest exactly on it.
	if v := a.VAdjustment().Value(); v != 600 {
		t.Errorf("rest value %g, want 600", v)
	}
	if a.Moving() {
		t.Error("still moving after settling")
	}
	if got := a.IndicatorAlpha(); got != 0 {
		t.Errorf("indicator alpha %g after settling, want 0", got)
	}
}

func TestFastClickBoostsFlick(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 360))
	a.Event(release(20*time.Millisecond, 400, 340))

	v1 := a.Velocity().Y
	if v1 >= 0 {
		t.Fatalf("upward flick velocity %g, want negative", v1)
	}

	// Press while coasting, flick again in the same direction
	// within the fast-click interval.
	a.Event(press(30*time.Millisecond, 400, 400))
	if v := a.Velocity().Y; v != 0 {
		t.Fatalf("velocity %g while held, want 0", v)
	}
	a.Event(move(40*time.Millisecond, 400, 370))
	a.Event(release(45*time.Millisecond, 400, 365))

	// accel velocity is min(VelMax, upper/page*27) = 67.5 here.
	v2 := a.Velocity().Y
	if v2 >= 0 {
		t.Fatalf("boosted velocity %g, want same direction as %g", v2, v1)
	}
	if want := v1 - 67.5; !approx(v2, want, 0.01) {
		t.Errorf("boosted velocity %g, want %g", v2, want)
	}
	drain(t, a)
}

func TestPressStopsFlick(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)
	var forwarded []pointer.Event
	a.SetChild(NewChild(f32.Pt(800, 480), event.SinkFunc(func(e event.Event) {
		forwarded = append(forwarded, e.(pointer.Event))
	})))

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 360))
	a.Event(release(20*time.Millisecond, 400, 340))
	if a.Velocity().Y == 0 {
		t.Fatal("flick did not start")
	}

	before := len(forwarded)
	a.Event(press(200*time.Millisecond, 400, 200))
	if v := a.Velocity(); v != (f32.Point{}) {
		t.Errorf("velocity %v after stopping press, want zero", v)
	}
	// The press landed on fast-moving content: the child must not
	// see it as a click.
	if len(forwarded) != before {
		t.Errorf("%d synthetic events forwarded for a stopping press", len(forwarded)-before)
	}
	a.Event(release(400*time.Millisecond, 400, 200))
	drain(t, a)
}

func TestDuplicatePressDropped(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)
	var forwarded []pointer.Event
	a.SetChild(NewChild(f32.Pt(800, 480), event.SinkFunc(func(e event.Event) {
		forwarded = append(forwarded, e.(pointer.Event))
	})))

	a.Event(press(0, 100, 100))
	n := len(forwarded)
	if n == 0 {
		t.Fatal("press not forwarded to the child")
	}
	for _, e := range forwarded {
		if !e.Synthetic {
			t.Errorf("forwarded %v event not marked synthetic", e.Kind)
		}
	}
	a.Event(press(0, 100, 100))
	if len(forwarded) != n {
		t.Errorf("duplicate press forwarded %d extra events", len(forwarded)-n)
	}
	a.Event(release(10*time.Millisecond, 100, 100))
	drain(t, a)
}

func TestPanningStartedVeto(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)
	a.PanningStarted = func() bool { return true }

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 300))
	if a.Panning() {
		t.Error("panning despite veto")
	}
	a.Event(move(20*time.Millisecond, 400, 200))
	a.Event(release(30*time.Millisecond, 400, 100))
	drain(t, a)

	if v := a.VAdjustment().Value(); v != 0 {
		t.Errorf("value %g after vetoed pan, want 0", v)
	}
}

func TestPushModeScrollsByDelta(t *testing.T) {
	p := DefaultParams()
	p.Mode = ModePush
	p.InitialHint = false
	a := newTestArea(p)
	finished := 0
	a.PanningFinished = func() { finished++ }

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 360))
	a.Event(move(20*time.Millisecond, 400, 320))
	a.Event(release(30*time.Millisecond, 400, 310))
	drain(t, a)

	// The over-threshold delta is swallowed; the rest scrolls 1:1.
	if v := a.VAdjustment().Value(); v != 50 {
		t.Errorf("value %g after push drag, want 50", v)
	}
	if a.Moving() {
		t.Error("push mode coasting after release")
	}
	if finished != 1 {
		t.Errorf("PanningFinished fired %d times, want 1", finished)
	}
}

func TestAccelModeVelocityFromOrigin(t *testing.T) {
	p := DefaultParams()
	p.Mode = ModeAccel
	p.InitialHint = false
	a := newTestArea(p)

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 300))
	if !a.Moving() {
		t.Error("accel mode did not start ticking on classification")
	}
	// Velocity is a function of the distance from the press
	// origin: |d|/extent*(vmax-vmin)+vmin = 120/480*490+10.
	a.Event(move(20*time.Millisecond, 400, 280))
	if v := a.Velocity().Y; v != -132.5 {
		t.Errorf("velocity %g at 120px from origin, want -132.5", v)
	}
	a.Event(release(30*time.Millisecond, 400, 280))
	drain(t, a)
	if v := a.Velocity(); v != (f32.Point{}) {
		t.Errorf("velocity %v after settling", v)
	}
}

func TestWheelPagesAndStopsKinetic(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)

	a.Event(pointer.Event{Kind: pointer.Scroll, Time: 0, Scroll: f32.Pt(0, 1)})
	want := pow23(400)
	if v := a.VAdjustment().Value(); !approx(v, want, 0.001) {
		t.Errorf("value %g after wheel down, want %g", v, want)
	}
	a.Event(pointer.Event{Kind: pointer.Scroll, Time: 10 * time.Millisecond, Scroll: f32.Pt(0, -1)})
	if v := a.VAdjustment().Value(); v != 0 {
		t.Errorf("value %g after wheel up, want 0", v)
	}

	// A wheel event interrupts kinetic movement.
	a.Event(press(100*time.Millisecond, 400, 400))
	a.Event(move(110*time.Millisecond, 400, 360))
	a.Event(release(120*time.Millisecond, 400, 340))
	if !a.Moving() {
		t.Fatal("flick did not start")
	}
	a.Event(pointer.Event{Kind: pointer.Scroll, Time: 130 * time.Millisecond, Scroll: f32.Pt(0, 1)})
	if a.Moving() {
		t.Error("still coasting after a wheel event")
	}
	if v := a.Velocity(); v != (f32.Point{}) {
		t.Errorf("velocity %v after a wheel event", v)
	}
	drain(t, a)
}

func TestScrollToCentersTarget(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)

	a.ScrollTo(Skip, 500)
	if !a.Moving() {
		t.Fatal("ScrollTo did not start an animation")
	}
	drain(t, a)
	// 500 centered in a 400 page is value 300.
	if v := a.VAdjustment().Value(); v != 300 {
		t.Errorf("value %g after ScrollTo, want 300", v)
	}
	if v := a.HAdjustment().Value(); v != 0 {
		t.Errorf("horizontal value %g after vertical ScrollTo, want 0", v)
	}
	if a.Moving() {
		t.Error("still animating after settling")
	}
}

func TestScrollToWhileCoastingSnaps(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)
	finished := 0
	a.PanningFinished = func() { finished++ }

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 360))
	a.Event(release(20*time.Millisecond, 400, 340))
	if !a.Moving() {
		t.Fatal("flick did not start")
	}

	// Redirecting a coasting area keeps the deceleration loop
	// running and stops exactly on the target.
	a.ScrollTo(Skip, 300)
	drain(t, a)
	if v := a.VAdjustment().Value(); v != 100 {
		t.Errorf("value %g after redirected flick, want 100", v)
	}
	if finished == 0 {
		t.Error("PanningFinished never fired")
	}
	if v := a.Velocity(); v != (f32.Point{}) {
		t.Errorf("velocity %v after settling", v)
	}
}

func TestScrollToClampsToEnd(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)

	a.ScrollTo(Skip, 1000)
	drain(t, a)
	if v := a.VAdjustment().Value(); v != 600 {
		t.Errorf("value %g after ScrollTo past the end, want 600", v)
	}
}

func TestScrollToSkipBothIsNoop(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)

	a.ScrollTo(Skip, Skip)
	if _, ok := a.NextWake(); ok {
		t.Error("ScrollTo(Skip, Skip) scheduled work")
	}
	if v := a.VAdjustment().Value(); v != 0 {
		t.Errorf("value %g after no-op ScrollTo", v)
	}
}

func TestJumpToIsImmediate(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)

	a.JumpTo(Skip, 800)
	if v := a.VAdjustment().Value(); v != 600 {
		t.Errorf("value %g after JumpTo, want 600", v)
	}
	if a.Moving() {
		t.Error("JumpTo left an animation running")
	}
	drain(t, a)
}

func TestInitialHintShowsOnce(t *testing.T) {
	p := DefaultParams()
	a := New(metric, p)
	a.Resize(f32.Pt(800, 480))
	a.SetChild(NewChild(f32.Pt(800, 480), nil))
	var maxAlpha float32
	a.Invalidate = func() {
		if al := a.IndicatorAlpha(); al > maxAlpha {
			maxAlpha = al
		}
	}

	a.VAdjustment().Configure(0, 1000, 400)
	drain(t, a)
	if maxAlpha != 1 {
		t.Errorf("hint peaked at alpha %g, want 1", maxAlpha)
	}
	if got := a.IndicatorAlpha(); got != 0 {
		t.Errorf("alpha %g after the hint, want 0", got)
	}

	// Reconfiguring scrollable content does not replay the hint.
	a.VAdjustment().Configure(0, 2000, 400)
	if _, ok := a.NextWake(); ok {
		t.Error("reconfigure scheduled hint work")
	}
}

func TestDisableStopsKinetic(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 360))
	a.Event(release(20*time.Millisecond, 400, 340))
	if !a.Moving() {
		t.Fatal("flick did not start")
	}
	a.SetEnabled(false)
	if a.Moving() {
		t.Error("still moving while disabled")
	}
	a.Event(press(100*time.Millisecond, 400, 400))
	a.Event(move(110*time.Millisecond, 400, 300))
	if a.Panning() {
		t.Error("panning while disabled")
	}
	drain(t, a)
}

func TestCloseCancelsWork(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 360))
	a.Event(release(20*time.Millisecond, 400, 340))
	if _, ok := a.NextWake(); !ok {
		t.Fatal("no work scheduled after a flick")
	}
	a.Close()
	if _, ok := a.NextWake(); ok {
		t.Error("work still pending after Close")
	}
}

func TestDetachedChildIgnoresInput(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)
	c := NewChild(f32.Pt(800, 480), nil)
	a.SetChild(c)
	c.Detach()

	a.Event(press(0, 400, 400))
	a.Event(move(10*time.Millisecond, 400, 300))
	a.Event(release(20*time.Millisecond, 400, 200))
	drain(t, a)

	if v := a.VAdjustment().Value(); v != 0 {
		t.Errorf("value %g with a detached child, want 0", v)
	}
}

func TestIndicatorTracksValue(t *testing.T) {
	p := DefaultParams()
	p.InitialHint = false
	a := newTestArea(p)

	if !a.VScrollVisible() {
		t.Fatal("vertical indicator not visible for scrollable content")
	}
	r0 := a.VScrollRect()
	a.JumpTo(Skip, 800)
	r1 := a.VScrollRect()
	if r1.Min.Y <= r0.Min.Y {
		t.Errorf("indicator did not move down: %v -> %v", r0, r1)
	}
	if r1.Max.Y > a.size.Y {
		t.Errorf("indicator %v outside the widget", r1)
	}
	drain(t, a)
}
