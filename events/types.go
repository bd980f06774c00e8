// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of event delivered to a toggle,
// and also the level at which one can select which events to listen to.
// Pointer events come from the host event source; the remaining
// types are emitted by the toggle itself to its listeners.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerDown happens when a pointer (finger, pen or mouse button)
	// is pressed. It starts a gesture session if it hits the thumb.
	PointerDown

	// PointerMove happens when a pressed pointer moves.
	PointerMove

	// PointerUp happens when a pressed pointer is released.
	// It ends the gesture and may commit a new state.
	PointerUp

	// PointerCancel happens when the host takes the gesture away
	// (for example an ancestor started scrolling, or the toggle was detached).
	// It ends the gesture without committing.
	PointerCancel

	// Change is sent to the change listeners of a toggle
	// when its checked state has changed.
	Change
)

var typesNames = [...]string{
	UnknownType:   "UnknownType",
	PointerDown:   "PointerDown",
	PointerMove:   "PointerMove",
	PointerUp:     "PointerUp",
	PointerCancel: "PointerCancel",
	Change:        "Change",
}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typesNames) {
		return "Types(?)"
	}
	return typesNames[tp]
}

// SetString sets the event type from its name, also accepting
// the lower-case phase names "down", "move", "up" and "cancel".
func (tp *Types) SetString(s string) bool {
	switch s {
	case "down":
		*tp = PointerDown
		return true
	case "move":
		*tp = PointerMove
		return true
	case "up":
		*tp = PointerUp
		return true
	case "cancel":
		*tp = PointerCancel
		return true
	}
	for i, nm := range typesNames {
		if nm == s {
			*tp = Types(i)
			return true
		}
	}
	return false
}

// IsPointer returns whether the type is one of the pointer phases.
func (tp Types) IsPointer() bool {
	return tp >= PointerDown && tp <= PointerCancel
}

// MarshalText implements [encoding.TextMarshaler].
func (tp Types) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tp *Types) UnmarshalText(text []byte) error {
	if !tp.SetString(string(text)) {
		return fmt.Errorf("events.Types: invalid value %q", string(text))
	}
	return nil
}
