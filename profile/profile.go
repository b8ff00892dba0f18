// SPDX-License-Identifier: Unlicense OR MIT

/*
Package profile loads pannable-area tuning profiles.

A profile is a YAML document naming the same knobs the engine exposes
as pan.Params, so device builders can retune panning behavior without
recompiling. Profiles can be watched for changes and re-applied live.
*/
package profile

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"pannable.org/pan"
	"pannable.org/unit"
)

// Profile mirrors pan.Params in a file-friendly shape. Durations are
// in milliseconds, thresholds in dp. Omitted fields keep their
// default value.
type Profile struct {
	Mode     string `yaml:"mode"`
	Movement string `yaml:"movement"`

	VelocityMin        *float32 `yaml:"velocity_min"`
	VelocityMax        *float32 `yaml:"velocity_max"`
	VelocityOvershoot  *float32 `yaml:"velocity_overshooting_max"`
	VelocityFastFactor *float32 `yaml:"velocity_fast_factor"`

	Deceleration *float32 `yaml:"deceleration"`
	DragInertia  *float32 `yaml:"drag_inertia"`
	Force        *float32 `yaml:"force"`
	SPS          *int     `yaml:"sps"`

	PanningThreshold     *float32 `yaml:"panning_threshold"`
	DirectionErrorMargin *float32 `yaml:"direction_error_margin"`

	VOvershootMax *float32 `yaml:"vovershoot_max"`
	HOvershootMax *float32 `yaml:"hovershoot_max"`
	BounceSteps   *int     `yaml:"bounce_steps"`

	ScrollTimeMS *int `yaml:"scroll_time_ms"`

	FadeDelay   *int  `yaml:"scrollbar_fade_delay"`
	InitialHint *bool `yaml:"initial_hint"`
	LowFriction *bool `yaml:"low_friction_mode"`
}

// Parse decodes a profile document and returns the resulting tuning.
// Unknown fields and out-of-range values are errors.
func Parse(data []byte) (pan.Params, error) {
	var prof Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&prof); err != nil {
		return pan.Params{}, fmt.Errorf("profile: %w", err)
	}
	return prof.Params()
}

// Load reads and parses the profile at path.
func Load(path string) (pan.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pan.Params{}, fmt.Errorf("profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return pan.Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Params resolves the profile against the defaults and validates it.
func (prof Profile) Params() (pan.Params, error) {
	p := pan.DefaultParams()

	switch prof.Mode {
	case "":
	case "push":
		p.Mode = pan.ModePush
	case "accel":
		p.Mode = pan.ModeAccel
	case "auto":
		p.Mode = pan.ModeAuto
	default:
		return p, fmt.Errorf("profile: unknown mode %q", prof.Mode)
	}

	switch prof.Movement {
	case "":
	case "vertical":
		p.Movement = pan.MovementVert
	case "horizontal":
		p.Movement = pan.MovementHoriz
	case "both":
		p.Movement = pan.MovementBoth
	default:
		return p, fmt.Errorf("profile: unknown movement %q", prof.Movement)
	}

	setf := func(dst *float32, v *float32) {
		if v != nil {
			*dst = *v
		}
	}
	setf(&p.VelMin, prof.VelocityMin)
	setf(&p.VelMax, prof.VelocityMax)
	setf(&p.VelOvershooting, prof.VelocityOvershoot)
	setf(&p.VelFastFactor, prof.VelocityFastFactor)
	setf(&p.Decel, prof.Deceleration)
	setf(&p.DragInertia, prof.DragInertia)
	setf(&p.Force, prof.Force)
	setf(&p.VOvershootMax, prof.VOvershootMax)
	setf(&p.HOvershootMax, prof.HOvershootMax)
	if prof.SPS != nil {
		p.SPS = *prof.SPS
	}
	if prof.PanningThreshold != nil {
		p.PanningThreshold = unit.Dp(*prof.PanningThreshold)
	}
	if prof.DirectionErrorMargin != nil {
		p.DirectionErrorMargin = unit.Dp(*prof.DirectionErrorMargin)
	}
	if prof.BounceSteps != nil {
		p.BounceSteps = *prof.BounceSteps
	}
	if prof.ScrollTimeMS != nil {
		p.ScrollTime = time.Duration(*prof.ScrollTimeMS) * time.Millisecond
	}
	if prof.FadeDelay != nil {
		p.FadeDelay = *prof.FadeDelay
	}
	if prof.InitialHint != nil {
		p.InitialHint = *prof.InitialHint
	}
	if prof.LowFriction != nil {
		p.LowFriction = *prof.LowFriction
	}

	if err := validate(p); err != nil {
		return p, err
	}
	return p, nil
}

func validate(p pan.Params) error {
	switch {
	case p.Decel <= 0 || p.Decel >= 1:
		return fmt.Errorf("profile: deceleration %g outside (0, 1)", p.Decel)
	case p.DragInertia < 0 || p.DragInertia > 1:
		return fmt.Errorf("profile: drag_inertia %g outside [0, 1]", p.DragInertia)
	case p.SPS <= 0:
		return fmt.Errorf("profile: sps must be positive, got %d", p.SPS)
	case p.VelMin < 0:
		return fmt.Errorf("profile: velocity_min must not be negative, got %g", p.VelMin)
	case p.VelMax < p.VelMin:
		return fmt.Errorf("profile: velocity_max %g below velocity_min %g", p.VelMax, p.VelMin)
	case p.Force <= 0:
		return fmt.Errorf("profile: force must be positive, got %g", p.Force)
	case p.BounceSteps < 0:
		return fmt.Errorf("profile: bounce_steps must not be negative, got %d", p.BounceSteps)
	case p.VOvershootMax < 0 || p.HOvershootMax < 0:
		return fmt.Errorf("profile: overshoot maximums must not be negative")
	case p.ScrollTime < 0:
		return fmt.Errorf("profile: scroll_time_ms must not be negative")
	}
	return nil
}
