// SPDX-License-Identifier: Unlicense OR MIT

package adjust

import "testing"

func TestClamping(t *testing.T) {
	a := New(0, 0, 1000, 400)
	if !a.SetValue(700) {
		t.Error("SetValue(700) reported no change")
	}
	if got := a.Value(); got != 600 {
		t.Errorf("value %g, want clamped to 600", got)
	}
	a.SetValue(-50)
	if got := a.Value(); got != 0 {
		t.Errorf("value %g, want clamped to 0", got)
	}
	if a.SetValue(0) {
		t.Error("setting the same value reported a change")
	}
}

func TestEndNeverBelowLower(t *testing.T) {
	// Page larger than the range: nothing to scroll.
	a := New(0, 0, 300, 400)
	if got := a.End(); got != 0 {
		t.Errorf("End() = %g, want 0", got)
	}
	if a.Scrollable() {
		t.Error("Scrollable() = true for a page covering the range")
	}
}

func TestCallbacks(t *testing.T) {
	a := New(0, 0, 1000, 400)
	var values, changes int
	a.ValueChanged = func() { values++ }
	a.Changed = func() { changes++ }

	a.SetValue(100)
	a.SetValue(100) // no-op
	if values != 1 {
		t.Errorf("ValueChanged fired %d times, want 1", values)
	}

	a.Configure(0, 500, 450)
	if changes != 1 {
		t.Errorf("Changed fired %d times, want 1", changes)
	}
	// The reconfigure shrank the range below the current value;
	// the re-clamp counts as a value change.
	if values != 2 {
		t.Errorf("ValueChanged fired %d times after reconfigure, want 2", values)
	}
	if got := a.Value(); got != 50 {
		t.Errorf("value %g after reconfigure, want 50", got)
	}
}
