// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toggle

import (
	"testing"
	"time"

	"cogentcore.org/toggle/animate"
	"cogentcore.org/toggle/events"
	"cogentcore.org/toggle/math32"
)

// testRenderer counts render requests.
type testRenderer struct {
	renders int
}

func (tr *testRenderer) NeedsRender() { tr.renders++ }

// testHost records gesture ownership requests.
type testHost struct {
	exclusive int
	canceled  int
}

func (th *testHost) RequestExclusive() { th.exclusive++ }
func (th *testHost) CancelDefault()    { th.canceled++ }

// harness drives a switch with a virtual clock: every event is sent
// step after the previous one, running animation frames in between.
type harness struct {
	t        *testing.T
	sw       *Switch
	vc       *animate.VirtualClock
	render   *testRenderer
	host     *testHost
	step     time.Duration
	changes  []bool
	attempts []bool
}

// testLayout is a horizontal switch with a 40x20 thumb
// that travels 100 units along a 140x20 track.
func testLayout() Layout {
	return Layout{
		ScrollRange: 100,
		Thumb:       math32.B2(0, 0, 40, 20),
		Bounds:      math32.B2(0, 0, 140, 20),
	}
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.TouchSlop = 16
	cfg.FlingThreshold = 500
	return cfg
}

func newHarness(t *testing.T, cfg *Config) *harness {
	if cfg == nil {
		cfg = testConfig()
	}
	h := &harness{
		t:      t,
		vc:     animate.NewVirtualClock(time.Unix(1000, 0)),
		render: &testRenderer{},
		host:   &testHost{},
		step:   10 * time.Millisecond,
	}
	h.sw = New(cfg)
	h.sw.Renderer = h.render
	h.sw.Host = h.host
	h.sw.Attach(h.vc)
	h.sw.SetLayout(testLayout())
	h.sw.OnChange(func(e events.Event) {
		h.changes = append(h.changes, e.(*events.StateChange).Checked)
	})
	h.sw.OnChangeAttempt(func(checked bool) {
		h.attempts = append(h.attempts, checked)
	})
	return h
}

func (h *harness) send(typ events.Types, id int, x, y float32) bool {
	h.vc.Advance(h.step)
	return h.sw.HandleEvent(events.NewPointer(typ, id, math32.Vec2(x, y), h.vc.Now()))
}

func (h *harness) down(x, y float32) bool   { return h.send(events.PointerDown, 0, x, y) }
func (h *harness) move(x, y float32) bool   { return h.send(events.PointerMove, 0, x, y) }
func (h *harness) up(x, y float32) bool     { return h.send(events.PointerUp, 0, x, y) }
func (h *harness) cancel(x, y float32) bool { return h.send(events.PointerCancel, 0, x, y) }

// tap presses and releases at the same point.
func (h *harness) tap(x, y float32) bool {
	h.down(x, y)
	return h.up(x, y)
}

// drag presses at x, moves past the drag slop and then
// moves so that the thumb ends up dx further along X.
func (h *harness) drag(x, dx float32) {
	h.down(x, 10)
	h.move(x+17, 10) // starts the drag; reference point only
	h.move(x+17+dx, 10)
}

// settle runs animation frames until the thumb is at rest.
func (h *harness) settle() {
	h.vc.AdvanceUntilIdle(10 * time.Second)
}
