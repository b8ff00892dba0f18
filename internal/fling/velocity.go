// SPDX-License-Identifier: Unlicense OR MIT

package fling

// Tolerance is the motion distance, in pixels, below which a sample
// is ignored. It keeps near-zero time deltas from blowing up the
// velocity estimate.
const Tolerance = 1e-6

// Blend folds one drag sample into the running velocity. dist is the
// distance moved since the previous sample and dt the elapsed time in
// milliseconds. The raw sample velocity dist/|dt|*force is mixed into
// vel with the inertia factor, smoothing jittery input, and the
// result is clamped to [-vmax, vmax].
func Blend(vel, dt, dist, vmax, inertia, force float32) float32 {
	if a := abs(dist); a < Tolerance {
		return vel
	}
	raw := dist / abs(dt) * force
	vel = vel*(1-inertia) + raw*inertia
	if vel > vmax {
		vel = vmax
	} else if vel < -vmax {
		vel = -vmax
	}
	return vel
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
