// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/toggle/animate"
	"cogentcore.org/toggle/base/errors"
	"cogentcore.org/toggle/events"
	"cogentcore.org/toggle/toggle"
)

// SettleLimit bounds how long [Player.Play] waits for the
// thumb to come to rest after the last step.
const SettleLimit = 10 * time.Second

// Record is the state of the switch after one step of a script.
type Record struct {
	Step    int
	At      time.Duration
	Action  string
	Handled bool
	Checked bool
	Offset  float32
	Mode    toggle.Modes
}

func (r Record) String() string {
	return fmt.Sprintf("%3d %8v %-7s handled=%-5v checked=%-5v offset=%g mode=%v",
		r.Step, r.At, r.Action, r.Handled, r.Checked, r.Offset, r.Mode)
}

// Player replays scripts against a switch on a virtual clock.
type Player struct {

	// Switch is the switch the script acts on. It is attached to Clock.
	Switch *toggle.Switch

	// Clock is the virtual time of the replay.
	Clock *animate.VirtualClock

	// Frame, if set, is called each time the clock has advanced
	// by one animation frame interval, and after each step.
	Frame func(at time.Duration)

	// Trace holds one record per step played so far.
	Trace []Record

	start    time.Time
	attempts int
}

// NewPlayer returns a new [Player] for the given switch,
// which it attaches to a new virtual clock.
func NewPlayer(sw *toggle.Switch) *Player {
	p := &Player{
		Switch: sw,
		Clock:  animate.NewVirtualClock(time.Unix(0, 0)),
	}
	p.start = p.Clock.Now()
	sw.Attach(p.Clock)
	sw.OnChangeAttempt(func(checked bool) {
		p.attempts++
	})
	return p
}

// Attempts returns how many blocked changes the switch reported so far.
func (p *Player) Attempts() int {
	return p.attempts
}

// Elapsed returns the virtual time since the player was created.
func (p *Player) Elapsed() time.Duration {
	return p.Clock.Now().Sub(p.start)
}

// Play plays all steps of the script, then lets the thumb come to rest.
// It stops at the first step whose expectation is not met.
func (p *Player) Play(s *Script) error {
	for i := range s.Steps {
		if err := p.Step(i, &s.Steps[i]); err != nil {
			return errors.Errorf("script %q: %w", s.Name, err)
		}
	}
	p.advance(SettleLimit, true)
	return nil
}

// Step plays one step with the given index.
func (p *Player) Step(i int, st *Step) error {
	act, err := st.Action()
	if err != nil {
		return fmt.Errorf("step %d: %w", i, err)
	}
	p.advance(time.Duration(st.After), false)
	sw := p.Switch
	handled := Apply(sw, st, act, p.Clock.Now())
	rec := Record{
		Step:    i,
		At:      p.Elapsed(),
		Action:  act,
		Handled: handled,
		Checked: sw.IsChecked(),
		Offset:  sw.Offset(),
		Mode:    sw.Mode(),
	}
	p.Trace = append(p.Trace, rec)
	slog.Debug("script: step", "step", i, "action", act, "handled", handled, "checked", rec.Checked, "offset", rec.Offset)
	if p.Frame != nil {
		p.Frame(rec.At)
	}
	if st.Expect != nil {
		if err := p.check(st.Expect, rec); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, act, err)
		}
	}
	return nil
}

// PointerEvent returns the pointer event of the step at the given time,
// or nil if the action of the step is not a pointer action.
func (st *Step) PointerEvent(act string, now time.Time) *events.Pointer {
	var typ events.Types
	var pt Point
	switch act {
	case "down":
		typ, pt = events.PointerDown, st.Down
	case "move":
		typ, pt = events.PointerMove, st.Move
	case "up":
		typ, pt = events.PointerUp, st.Up
	case "cancel":
		typ, pt = events.PointerCancel, st.Cancel
	default:
		return nil
	}
	return events.NewPointer(typ, st.Pointer, pt.Vector(), now)
}

// Apply performs the given action of the step on the switch
// and returns whether the switch handled it.
func Apply(sw *toggle.Switch, st *Step, act string, now time.Time) bool {
	if pe := st.PointerEvent(act, now); pe != nil {
		return sw.HandleEvent(pe)
	}
	switch act {
	case "tap":
		return sw.PerformTap()
	case "set":
		sw.SetChecked(*st.Set)
	case "fixate":
		sw.Fixate(*st.Fixate)
	case "enable":
		sw.SetEnabled(*st.Enable)
	}
	return false
}

func (p *Player) check(ex *Expect, rec Record) error {
	var errs []error
	if ex.Checked != nil && *ex.Checked != rec.Checked {
		errs = append(errs, fmt.Errorf("expected checked %v, got %v", *ex.Checked, rec.Checked))
	}
	if ex.Offset != nil && *ex.Offset != rec.Offset {
		errs = append(errs, fmt.Errorf("expected offset %g, got %g", *ex.Offset, rec.Offset))
	}
	if ex.Handled != nil && *ex.Handled != rec.Handled {
		errs = append(errs, fmt.Errorf("expected handled %v, got %v", *ex.Handled, rec.Handled))
	}
	if ex.Attempts != nil && *ex.Attempts != p.attempts {
		errs = append(errs, fmt.Errorf("expected %d attempts, got %d", *ex.Attempts, p.attempts))
	}
	return errors.Join(errs...)
}

// advance moves the clock forward by d in frame sized slices, calling
// Frame after each one. If idle is set, it stops as soon as no frame
// is pending, within d.
func (p *Player) advance(d time.Duration, idle bool) {
	iv := time.Duration(p.Switch.Config.FrameInterval)
	if iv <= 0 {
		iv = animate.DefaultInterval
	}
	for d > 0 {
		if idle && p.Clock.Pending() == 0 {
			return
		}
		step := min(iv, d)
		p.Clock.Advance(step)
		d -= step
		if p.Frame != nil {
			p.Frame(p.Elapsed())
		}
	}
}
