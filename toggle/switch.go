// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package toggle provides the gesture and state engine of a draggable
// two-state switch: a thumb that slides between an off and an on
// position along a track, responding to taps, drags and flings and
// animating to its resting position. A fixed switch keeps its state
// against user gestures while still reporting the attempted change.
//
// A [Switch] never draws; it computes its [State] and asks its
// [Renderer] to render again whenever that state changes.
package toggle

import (
	"log/slog"
	"time"

	"cogentcore.org/toggle/animate"
	"cogentcore.org/toggle/events"
)

// Renderer draws a [Switch] from its [State].
type Renderer interface {

	// NeedsRender records that the switch must be drawn again.
	// It is level-triggered: several calls before the next paint
	// result in a single paint.
	NeedsRender()
}

// Host is the container that delivers pointer events to a [Switch].
type Host interface {

	// RequestExclusive asks the host to route the rest of the current
	// gesture only to the switch, so that ancestors such as scroll
	// views do not intercept it.
	RequestExclusive()

	// CancelDefault cancels the default handling of the current gesture,
	// so that a finished drag does not also produce a click.
	CancelDefault()
}

// Switch is a draggable two-state toggle.
// All of its methods must be called on the event goroutine
// that also runs the callbacks of its [animate.Scheduler].
type Switch struct {

	// Config is the configuration the switch was created with.
	// Fields that the switch copies into its [State] at creation
	// must be changed through methods such as [Switch.Fixate].
	Config Config

	// Renderer, if set, is told whenever the switch must be drawn again.
	Renderer Renderer

	// Host, if set, receives gesture ownership requests.
	Host Host

	state   State
	layout  Layout
	enabled bool
	session session
	anim    animate.Driver

	listeners events.Listeners
	onAttempt func(checked bool)
	logger    *slog.Logger
}

// New returns a new [Switch] with the given configuration, which may be nil
// for [DefaultConfig]. If the configuration is fixed with a FixedTarget,
// the switch starts in that state. The switch is detached: it snaps
// instead of animating until [Switch.Attach] gives it a scheduler.
func New(cfg *Config) *Switch {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sw := &Switch{
		Config:  *cfg,
		enabled: true,
	}
	sw.state = State{
		Checked:       cfg.Checked,
		Fixed:         cfg.Fixed,
		ClickDisabled: cfg.ClickDisabled,
		InvertedThumb: cfg.InvertedThumb,
	}
	if cfg.Fixed && cfg.FixedTarget != nil {
		sw.state.Checked = *cfg.FixedTarget
	}
	ease, ok := animate.EaseByName(cfg.Ease)
	if !ok {
		ease = animate.Decelerate
	}
	sw.anim = animate.Driver{
		Set:         sw.setOffset,
		Ease:        ease,
		Interval:    time.Duration(cfg.FrameInterval),
		MaxDuration: time.Duration(cfg.MaxAnimationDuration),
	}
	sw.logger = slog.Default()
	if cfg.Name != "" {
		sw.logger = sw.logger.With("switch", cfg.Name)
	}
	return sw
}

// State returns a copy of the current state.
func (sw *Switch) State() State {
	return sw.state
}

// Layout returns the current layout.
func (sw *Switch) Layout() Layout {
	return sw.layout
}

// SetLayout sets the geometry of the switch. It must be called before
// any gesture is processed and again whenever the geometry changes.
// Unless a drag is in progress, the thumb moves directly to its
// resting position for the new scroll range.
func (sw *Switch) SetLayout(l Layout) *Switch {
	if l.ScrollRange < 0 {
		l.ScrollRange = 0
	}
	sw.layout = l
	sw.state.ScrollRange = l.ScrollRange
	if sw.session.mode == TouchDragging {
		sw.setOffset(sw.state.clampOffset(sw.state.Offset))
		return sw
	}
	sw.anim.Cancel()
	sw.setOffset(sw.state.TargetOffset(sw.state.Checked))
	return sw
}

// Attach gives the switch a scheduler, so that it animates the thumb.
func (sw *Switch) Attach(s animate.Scheduler) *Switch {
	sw.anim.Finish()
	sw.anim.Scheduler = s
	return sw
}

// Detach removes the scheduler of the switch. A drag in progress is
// canceled and the thumb snaps to its resting position.
func (sw *Switch) Detach() *Switch {
	sw.anim.Scheduler = nil
	if sw.session.mode == TouchDragging {
		sw.stopDrag(false)
	}
	sw.session.reset()
	sw.anim.Finish()
	return sw
}

// IsAttached returns whether the switch has a scheduler.
func (sw *Switch) IsAttached() bool {
	return sw.anim.Scheduler != nil
}

// IsChecked returns whether the switch is checked.
func (sw *Switch) IsChecked() bool {
	return sw.state.Checked
}

// SetChecked sets whether the switch is checked and animates the thumb
// to the matching position. It is not blocked by [Switch.IsFixed]:
// fixing only applies to user gestures.
func (sw *Switch) SetChecked(checked bool) *Switch {
	sw.commit(checked)
	return sw
}

// Toggle inverts the checked state.
func (sw *Switch) Toggle() *Switch {
	return sw.SetChecked(!sw.state.Checked)
}

// IsFixed returns whether user gestures are prevented from
// changing the checked state.
func (sw *Switch) IsFixed() bool {
	return sw.state.Fixed
}

// Fixate sets whether user gestures are prevented from changing
// the checked state.
func (sw *Switch) Fixate(fixed bool) *Switch {
	sw.state.Fixed = fixed
	return sw
}

// FixateTo sets whether the switch is fixed and sets its checked state.
func (sw *Switch) FixateTo(fixed, checked bool) *Switch {
	sw.Fixate(fixed)
	return sw.SetChecked(checked)
}

// IsClickDisabled returns whether taps are ignored.
func (sw *Switch) IsClickDisabled() bool {
	return sw.state.ClickDisabled
}

// SetClickDisabled sets whether taps are ignored completely.
func (sw *Switch) SetClickDisabled(disabled bool) *Switch {
	sw.state.ClickDisabled = disabled
	return sw
}

// IsEnabled returns whether the switch responds to gestures.
func (sw *Switch) IsEnabled() bool {
	return sw.enabled
}

// SetEnabled sets whether the switch responds to gestures. A drag in
// progress when the switch is disabled does not commit on release.
func (sw *Switch) SetEnabled(enabled bool) *Switch {
	sw.enabled = enabled
	return sw
}

// Offset returns the current offset of the thumb.
func (sw *Switch) Offset() float32 {
	return sw.state.Offset
}

// Progress returns how far the thumb is toward the on position, in [0, 1].
func (sw *Switch) Progress() float32 {
	return sw.state.Progress()
}

// Mode returns the touch mode of the current gesture.
func (sw *Switch) Mode() Modes {
	return sw.session.mode
}

// IsAnimating returns whether the thumb is animating to rest.
func (sw *Switch) IsAnimating() bool {
	return sw.anim.Running()
}

// Text returns the label for the current checked state.
func (sw *Switch) Text() string {
	return sw.TextFor(sw.state.Checked)
}

// TextFor returns the label for the given checked state.
func (sw *Switch) TextFor(checked bool) string {
	if checked {
		return sw.Config.TextOn
	}
	return sw.Config.TextOff
}

// OnChange adds a listener that is called with an [events.StateChange]
// whenever the checked state changes, by gesture or programmatically.
// Listeners run in reverse order of addition until one marks the
// event as handled.
func (sw *Switch) OnChange(fun func(e events.Event)) *Switch {
	sw.listeners.Add(events.Change, fun)
	return sw
}

// OnChangeAttempt sets the observer that is called with the current
// checked state whenever a tap or drag is blocked because the switch
// is fixed. There is only one such observer; setting it again replaces it.
func (sw *Switch) OnChangeAttempt(fun func(checked bool)) *Switch {
	sw.onAttempt = fun
	return sw
}

// setOffset is where every change of the thumb offset goes through.
func (sw *Switch) setOffset(off float32) {
	if off == sw.state.Offset {
		return
	}
	sw.state.Offset = off
	sw.needsRender()
}

func (sw *Switch) needsRender() {
	if sw.Renderer != nil {
		sw.Renderer.NeedsRender()
	}
}

func (sw *Switch) now() time.Time {
	if sw.anim.Scheduler != nil {
		return sw.anim.Scheduler.Now()
	}
	return time.Now()
}
