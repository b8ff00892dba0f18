// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Tag is the stable identifier for an event handler.
// For a handler h, the tag is typically &h.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Sink receives events injected by an event source. A pannable
// area uses a Sink to forward synthetic pointer events to the
// child widget beneath it, preserving click and focus semantics
// for content that is dragged rather than tapped.
type Sink interface {
	Put(e Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(e Event)

func (f SinkFunc) Put(e Event) {
	f(e)
}
