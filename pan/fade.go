// SPDX-License-Identifier: Unlicense OR MIT

package pan

import "pannable.org/f32"

// fadeState is the scroll-indicator opacity bookkeeping. The
// indicators appear while the content moves, stay opaque for the
// configured delay and fade back out in fixed alpha steps.
type fadeState struct {
	alpha  float32
	fadeIn bool
	// delay counts fade ticks before the fade-out may begin.
	delay int
	// interrupt holds the indicators visible while a press is
	// being tracked.
	interrupt bool
}

// IndicatorAlpha returns the scroll indicator opacity in [0, 1].
func (a *Area) IndicatorAlpha() float32 {
	return a.fade.alpha
}

// HScrollVisible reports whether the horizontal indicator is shown.
func (a *Area) HScrollVisible() bool {
	return a.hscrollVisible
}

// VScrollVisible reports whether the vertical indicator is shown.
func (a *Area) VScrollVisible() bool {
	return a.vscrollVisible
}

// HScrollRect returns the horizontal indicator geometry inside the
// widget extent.
func (a *Area) HScrollRect() f32.Rectangle {
	return a.hscrollRect
}

// VScrollRect returns the vertical indicator geometry inside the
// widget extent.
func (a *Area) VScrollRect() f32.Rectangle {
	return a.vscrollRect
}

// SetIndicatorWidth sets the indicator thickness in pixels.
func (a *Area) SetIndicatorWidth(w float32) {
	a.indicatorW = w
	a.updateIndicators()
}

// launchFade records the starting opacity and makes sure the fade
// timer is running. Only one fade timer ever exists.
func (a *Area) launchFade(alpha float32) {
	a.fade.alpha = alpha
	a.fade.fadeIn = false
	if a.fadeID == 0 {
		a.fadeID = a.timers.every(a.now, scrollFadeInterval, a.fadeTick)
	}
}

// fadeTick advances the indicator opacity by one step. It returns
// false, unregistering the timer, when the fade has nothing left to
// do.
func (a *Area) fadeTick() bool {
	// If moving do not fade out.
	if (abs(a.yAxis.Vel) > a.params.VelMin || abs(a.xAxis.Vel) > a.params.VelMin) &&
		!a.pressed {
		return true
	}

	if a.fade.interrupt || a.fade.fadeIn {
		if a.fade.alpha > 0.9 {
			a.fade.alpha = 1
			a.fadeID = 0
			if a.fade.fadeIn {
				// The hint finished fading in; hold and
				// then fade out at the normal rate.
				a.launchFade(1)
			}
			return false
		}
		a.fade.alpha += 0.2
		a.invalidate()
		return true
	}

	if a.fade.alpha > 0.9 && a.fade.delay > 0 {
		a.fade.delay--
		return true
	}

	if a.fade.alpha < 0.1 {
		a.fadeID = 0
		a.fade.alpha = 0
		a.invalidate()
		return false
	}
	a.fade.alpha -= 0.2
	a.invalidate()
	return true
}

// initialEffect shows the indicators briefly when scrollable content
// first appears, so the user learns there is more to see.
func (a *Area) initialEffect() {
	if !a.params.InitialHint || a.hintShown {
		return
	}
	a.hintShown = true
	a.fade.fadeIn = true
	a.fade.alpha = 0
	a.fade.interrupt = false
	a.fade.delay = int(initialHintShow / scrollFadeInterval)
	a.hintID = a.timers.after(a.now, initialHintDelay, func() bool {
		a.hintID = 0
		if a.fadeID == 0 {
			a.fadeID = a.timers.every(a.now, scrollFadeInInterval, a.fadeTick)
		}
		return false
	})
}

// updateIndicators recomputes the indicator rectangles from the
// adjustments and the widget extent. The bar length is proportional
// to the visible fraction, with a minimum so it never vanishes.
func (a *Area) updateIndicators() {
	if a.vscrollVisible && a.size.X > 0 {
		track := a.size.Y
		if a.hscrollVisible {
			track -= a.indicatorW
		}
		length, offset := indicatorSpan(track, a.vadj.Lower(), a.vadj.Upper(),
			a.vadj.PageSize(), a.vadj.Value())
		a.vscrollRect = f32.Rect(a.size.X-a.indicatorW, offset, a.size.X, offset+length)
	} else {
		a.vscrollRect = f32.Rectangle{}
	}
	if a.hscrollVisible && a.size.Y > 0 {
		track := a.size.X
		if a.vscrollVisible {
			track -= a.indicatorW
		}
		length, offset := indicatorSpan(track, a.hadj.Lower(), a.hadj.Upper(),
			a.hadj.PageSize(), a.hadj.Value())
		a.hscrollRect = f32.Rect(offset, a.size.Y-a.indicatorW, offset+length, a.size.Y)
	} else {
		a.hscrollRect = f32.Rectangle{}
	}
}

func indicatorSpan(track, lower, upper, page, value float32) (length, offset float32) {
	span := upper - lower
	if span <= 0 || track <= 0 {
		return 0, 0
	}
	length = track * page / span
	if length < indicatorMinSize {
		length = indicatorMinSize
	}
	if length > track {
		length = track
	}
	if scrollable := span - page; scrollable > 0 {
		offset = (track - length) * (value - lower) / scrollable
	}
	return length, offset
}
