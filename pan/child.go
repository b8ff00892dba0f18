// SPDX-License-Identifier: Unlicense OR MIT

package pan

import (
	"pannable.org/f32"
	"pannable.org/io/event"
	"pannable.org/io/pointer"
)

// Child is the scrollable content hosted by an Area. The area
// references it, never owns it: the host may detach the child at any
// time, including mid-gesture, and the area checks validity before
// every use.
type Child struct {
	size     f32.Point
	sink     event.Sink
	detached bool
}

// NewChild returns a child of the given size whose synthetic pointer
// events are delivered to sink. sink may be nil for content that does
// not care about clicks or crossing events.
func NewChild(size f32.Point, sink event.Sink) *Child {
	return &Child{size: size, sink: sink}
}

// Valid reports whether the child is still attached.
func (c *Child) Valid() bool {
	return c != nil && !c.detached
}

// Detach marks the child gone. Any gesture referencing it aborts
// gracefully.
func (c *Child) Detach() {
	c.detached = true
}

// Resize updates the child extent used for crossing detection.
func (c *Child) Resize(size f32.Point) {
	c.size = size
}

// Size returns the child extent.
func (c *Child) Size() f32.Point {
	return c.size
}

func (c *Child) put(e pointer.Event) {
	if !c.Valid() || c.sink == nil {
		return
	}
	e.Synthetic = true
	c.sink.Put(e)
}

func (c *Child) contains(p f32.Point) bool {
	return 0 <= p.X && p.X <= c.size.X && 0 <= p.Y && p.Y <= c.size.Y
}
