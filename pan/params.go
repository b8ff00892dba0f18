// SPDX-License-Identifier: Unlicense OR MIT

package pan

import (
	"time"

	"pannable.org/unit"
)

// Mode selects how drag motion is turned into scrolling.
type Mode uint8

const (
	// ModePush scrolls by the raw pixel delta of each motion
	// event. No momentum is modelled; releasing the drag stops
	// the content.
	ModePush Mode = iota
	// ModeAccel derives the velocity from the distance between
	// the pointer and the initial press point, re-evaluated while
	// the button is held.
	ModeAccel
	// ModeAuto estimates the velocity from the drag speed,
	// smoothed with an inertia factor, and keeps the content
	// coasting after release.
	ModeAuto
)

// Movement is the set of axes a pannable area may pan.
type Movement uint8

const (
	MovementHoriz Movement = 1 << iota
	MovementVert

	MovementBoth = MovementHoriz | MovementVert
)

// Params are the tuning parameters of a pannable area. The zero
// value is not useful; start from DefaultParams.
type Params struct {
	Mode     Mode
	Movement Movement

	// VelMin is the velocity below which a release settles
	// immediately instead of coasting, in pixels per tick.
	VelMin float32
	// VelMax caps the modelled velocity.
	VelMax float32
	// VelOvershooting caps the velocity while pushing into the
	// overshoot region.
	VelOvershooting float32
	// VelFastFactor is the fraction of VelMax above which the
	// area is considered to be moving too fast for a press to
	// count as a click on the child.
	VelFastFactor float32

	// Decel is the geometric per-tick velocity decay factor,
	// in (0, 1).
	Decel float32
	// DragInertia is the blend factor for new velocity samples
	// in ModeAuto, in [0, 1].
	DragInertia float32
	// Force scales raw drag velocity samples in ModeAuto.
	Force float32

	// SPS is the tick rate of the deceleration loop, in samples
	// per second.
	SPS int

	// PanningThreshold is the drag distance that starts a pan.
	PanningThreshold unit.Value
	// DirectionErrorMargin is the diagonal error margin of the
	// gesture classifier.
	DirectionErrorMargin unit.Value

	// VOvershootMax and HOvershootMax bound the overshoot
	// distance per axis, in pixels. Zero disables overshoot on
	// that axis.
	VOvershootMax float32
	HOvershootMax float32
	// BounceSteps is the number of ticks the overshoot keeps
	// pushing outward before bouncing back.
	BounceSteps int

	// ScrollTime is the duration of a smooth ScrollTo animation.
	ScrollTime time.Duration

	// FadeDelay is the number of fade ticks the scroll
	// indicators stay fully opaque before fading out.
	FadeDelay int
	// InitialHint briefly shows the scroll indicators when
	// scrollable content first appears.
	InitialHint bool

	// LowFriction disables deceleration while the velocity on an
	// allowed axis is above 80% of VelMax, letting flicks travel
	// further.
	LowFriction bool
}

// DefaultParams returns the tuning the engine shipped with on Maemo
// Fremantle devices.
func DefaultParams() Params {
	return Params{
		Mode:                 ModeAuto,
		Movement:             MovementVert,
		VelMin:               10,
		VelMax:               500,
		VelOvershooting:      20,
		VelFastFactor:        0.02,
		Decel:                0.93,
		DragInertia:          0.85,
		Force:                120,
		SPS:                  20,
		PanningThreshold:     unit.Dp(25),
		DirectionErrorMargin: unit.Dp(10),
		VOvershootMax:        150,
		HOvershootMax:        150,
		BounceSteps:          3,
		ScrollTime:           time.Second,
		FadeDelay:            30,
		InitialHint:          true,
	}
}

const (
	// motionEventsPerSecond is the rate motion-driven scrolling
	// is batched at, to avoid event storms from the pointer
	// device.
	motionEventsPerSecond = 25
	// cursorStoppedTimeout is how long the pointer must rest
	// before a release is treated as a stop rather than a flick.
	cursorStoppedTimeout = 200 * time.Millisecond
	// fastClick is the press-to-release interval below which a
	// release can boost an ongoing movement.
	fastClick = 125 * time.Millisecond
	// minAccelThreshold is the minimum prior velocity for the
	// fast-click boost to apply.
	minAccelThreshold = 40
	// maxSpeedThreshold caps release velocities; anything above
	// it is replaced by the per-axis acceleration velocity.
	maxSpeedThreshold = 280
	// accelFactor scales the derived per-axis acceleration
	// velocity from the content-to-page ratio.
	accelFactor = 27

	scrollFadeInterval   = 100 * time.Millisecond
	scrollFadeInInterval = 50 * time.Millisecond
	initialHintDelay     = 300 * time.Millisecond
	initialHintShow      = 2 * time.Second

	// frameInterval is the tick rate of the smooth-scroll
	// animation.
	frameInterval = time.Second / 60

	// indicatorMinSize is the minimum scroll indicator length in
	// pixels.
	indicatorMinSize = 5
)

func (m Mode) String() string {
	switch m {
	case ModePush:
		return "Push"
	case ModeAccel:
		return "Accel"
	case ModeAuto:
		return "Auto"
	default:
		panic("invalid Mode")
	}
}
