// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"

	"cogentcore.org/toggle/math32"
)

// Event is the interface for all toggle events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event happened.
	Time() time.Time

	// IsHandled returns whether this event has already been processed
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// which stops further listeners from receiving it.
	SetHandled()
}

// Base is the base type for events.
// It is designed to be embedded in concrete event types.
type Base struct {

	// Typ is the type of event.
	Typ Types

	// When is the time at which the event happened.
	When time.Time

	// handled is whether the event has been processed.
	handled bool
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.When
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.When.Format("04:05.000"))
}

// Pointer is a pointer event in the coordinate system of the toggle,
// in the same abstract distance units that the layout uses.
type Pointer struct {
	Base

	// ID identifies the pointer, so that a second finger
	// can be told apart from the one that owns a gesture.
	ID int

	// Pos is the position of the pointer.
	Pos math32.Vector2
}

// NewPointer returns a new [Pointer] event of the given phase.
func NewPointer(typ Types, id int, pos math32.Vector2, when time.Time) *Pointer {
	ev := &Pointer{}
	ev.Typ = typ
	ev.When = when
	ev.ID = id
	ev.Pos = pos
	return ev
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{ID: %d, Pos: %v, Time: %v}", ev.Typ, ev.ID, ev.Pos, ev.When.Format("04:05.000"))
}

// StateChange is a [Change] event, holding the new checked state.
type StateChange struct {
	Base

	// Checked is the checked state after the event.
	Checked bool
}

// NewStateChange returns a new [StateChange] event of the given type.
func NewStateChange(typ Types, checked bool, when time.Time) *StateChange {
	ev := &StateChange{Checked: checked}
	ev.Typ = typ
	ev.When = when
	return ev
}

func (ev *StateChange) String() string {
	return fmt.Sprintf("%v{Checked: %v, Time: %v}", ev.Typ, ev.Checked, ev.When.Format("04:05.000"))
}
