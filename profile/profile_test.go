// SPDX-License-Identifier: Unlicense OR MIT

package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pannable.org/pan"
	"pannable.org/unit"
)

func TestParseOverridesDefaults(t *testing.T) {
	doc := `
mode: push
movement: both
velocity_max: 350
deceleration: 0.9
panning_threshold: 12
scroll_time_ms: 250
low_friction_mode: true
`
	p, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if p.Mode != pan.ModePush {
		t.Errorf("mode %v, want Push", p.Mode)
	}
	if p.Movement != pan.MovementBoth {
		t.Errorf("movement %v, want both", p.Movement)
	}
	if p.VelMax != 350 {
		t.Errorf("velocity_max %g, want 350", p.VelMax)
	}
	if p.Decel != 0.9 {
		t.Errorf("deceleration %g, want 0.9", p.Decel)
	}
	if p.PanningThreshold != unit.Dp(12) {
		t.Errorf("panning_threshold %v, want 12dp", p.PanningThreshold)
	}
	if p.ScrollTime != 250*time.Millisecond {
		t.Errorf("scroll_time %v, want 250ms", p.ScrollTime)
	}
	if !p.LowFriction {
		t.Error("low_friction_mode not applied")
	}
	// Untouched knobs keep their defaults.
	if def := pan.DefaultParams(); p.VelMin != def.VelMin || p.SPS != def.SPS {
		t.Errorf("untouched fields changed: VelMin %g, SPS %d", p.VelMin, p.SPS)
	}
}

func TestParseEmptyIsDefaults(t *testing.T) {
	p, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatal(err)
	}
	if p != pan.DefaultParams() {
		t.Errorf("empty profile %+v differs from defaults", p)
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	if _, err := Parse([]byte("velocty_max: 100\n")); err == nil {
		t.Error("misspelled field accepted")
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	docs := map[string]string{
		"mode":         "mode: turbo\n",
		"movement":     "movement: sideways\n",
		"deceleration": "deceleration: 1.5\n",
		"inertia":      "drag_inertia: -0.1\n",
		"sps":          "sps: 0\n",
		"velocities":   "velocity_min: 100\nvelocity_max: 50\n",
		"force":        "force: 0\n",
		"bounce":       "bounce_steps: -1\n",
		"overshoot":    "vovershoot_max: -10\n",
		"scroll time":  "scroll_time_ms: -5\n",
	}
	for name, doc := range docs {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: invalid profile accepted", name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panning.yaml")
	if err := os.WriteFile(path, []byte("velocity_max: 320\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.VelMax != 320 {
		t.Errorf("velocity_max %g, want 320", p.VelMax)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}
