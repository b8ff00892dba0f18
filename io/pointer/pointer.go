// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"strings"
	"time"

	"pannable.org/f32"
	"pannable.org/io/event"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release or Cancel.
	PointerID ID
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Position is the coordinates of the event in the local
	// coordinate system of the receiving widget.
	Position f32.Point
	// Root is the coordinates of the event in the coordinate
	// system of the root window.
	Root f32.Point
	// Scroll is the scroll amount, if any.
	Scroll f32.Point
	// Synthetic marks events generated and re-injected by a
	// widget rather than delivered by the windowing system.
	Synthetic bool
}

type ID uint16

// Kind of an Event.
type Kind uint8

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// Cancel is reported when the gesture is cancelled by the
	// windowing system, for example because of a grab elsewhere.
	Cancel Kind = iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Scroll of a pointer wheel.
	Scroll
	// Enter of a pointer into the widget area.
	Enter
	// Leave of a pointer out of the widget area.
	Leave
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonMiddle
)

func (e Event) ImplementsEvent() {}

var _ event.Event = Event{}

func (k Kind) String() string {
	switch k {
	case Cancel:
		return "Cancel"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Scroll:
		return "Scroll"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	default:
		panic("unknown Kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown Source")
	}
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonLeft) {
		strs = append(strs, "ButtonLeft")
	}
	if b.Contain(ButtonRight) {
		strs = append(strs, "ButtonRight")
	}
	if b.Contain(ButtonMiddle) {
		strs = append(strs, "ButtonMiddle")
	}
	return strings.Join(strs, "|")
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}
