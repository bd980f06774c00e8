// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toggle

import (
	"cogentcore.org/toggle/events"
	"cogentcore.org/toggle/math32"
	"cogentcore.org/toggle/velocity"
)

// session is the state of the gesture of the pointer that is down, if any.
type session struct {

	// active is whether a pointer is down on the switch.
	active bool

	// pointer is the ID of the pointer that owns the session.
	pointer int

	// mode is the touch mode.
	mode Modes

	// tap is whether a release ends a tap, for switches that recognize taps.
	tap bool

	// origin is where the pointer went down.
	origin math32.Vector2

	// last is the reference point of the drag.
	last math32.Vector2

	// velocity estimates the pointer velocity at release.
	velocity velocity.Tracker
}

func (ss *session) reset() {
	ss.active = false
	ss.mode = TouchIdle
	ss.tap = false
	ss.velocity.Clear()
}

// HandleEvent processes the given pointer event and returns whether the
// switch handled it. Events that are not pointer events, and events of a
// second pointer while a gesture is in progress, are ignored.
func (sw *Switch) HandleEvent(ev events.Event) bool {
	pe, ok := ev.(*events.Pointer)
	if !ok || !pe.Type().IsPointer() {
		return false
	}
	ss := &sw.session
	if ss.active && pe.ID != ss.pointer {
		return false
	}
	if pe.Type() == events.PointerDown {
		ss.velocity.Clear()
	}
	ss.velocity.Add(pe.Pos, pe.Time())

	var handled bool
	switch pe.Type() {
	case events.PointerDown:
		handled = sw.pointerDown(pe)
	case events.PointerMove:
		handled = sw.pointerMove(pe)
	case events.PointerUp, events.PointerCancel:
		handled = sw.pointerUp(pe)
	}
	if handled {
		pe.SetHandled()
	}
	return handled
}

func (sw *Switch) pointerDown(pe *events.Pointer) bool {
	ss := &sw.session
	ss.active = true
	ss.pointer = pe.ID
	ss.mode = TouchIdle
	ss.origin = pe.Pos
	ss.last = pe.Pos
	ss.tap = sw.enabled && !sw.Config.HostClicks && sw.layout.TapBounds(sw.Config.Axis).ContainsPoint(pe.Pos)
	if !sw.enabled || !sw.layout.HitThumb(pe.Pos, sw.state.Offset, sw.Config.Axis, sw.Config.TouchSlop) {
		if !ss.tap {
			ss.reset() // not our gesture
		}
		return false
	}
	// the new session owns the offset from here on
	sw.anim.Cancel()
	ss.mode = TouchPressed
	return true
}

func (sw *Switch) pointerMove(pe *events.Pointer) bool {
	ss := &sw.session
	switch ss.mode {
	case TouchPressed:
		d := pe.Pos.Sub(ss.origin).Abs()
		slop := sw.Config.TouchSlop
		if d.X <= slop && d.Y <= slop {
			return false
		}
		ss.mode = TouchDragging
		ss.tap = false
		if sw.Host != nil {
			sw.Host.RequestExclusive()
		}
		ss.last = pe.Pos
		return true
	case TouchDragging:
		axis := sw.Config.Axis
		delta := pe.Pos.Dim(axis) - ss.last.Dim(axis)
		off := sw.state.clampOffset(sw.state.Offset + delta)
		if off != sw.state.Offset {
			ss.last = pe.Pos
			sw.setOffset(off)
		}
		return true
	}
	return false
}

func (sw *Switch) pointerUp(pe *events.Pointer) bool {
	ss := &sw.session
	if ss.mode == TouchDragging {
		sw.stopDrag(pe.Type() == events.PointerUp)
		ss.reset()
		return true
	}
	tap := ss.tap && sw.enabled && pe.Type() == events.PointerUp &&
		sw.layout.TapBounds(sw.Config.Axis).ContainsPoint(pe.Pos)
	ss.reset()
	if tap {
		return sw.PerformTap()
	}
	return false
}
