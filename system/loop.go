// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the host event loop that a toggle runs on:
// a single goroutine that receives pointer events from any goroutine
// and runs animation frames, so that toggle state needs no locking.
package system

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/toggle/events"
)

// FuncRun is a simple helper type that contains a function to call and a channel
// to send a signal on when the function is finished running.
type FuncRun struct {
	F    func()
	Done chan struct{}
}

// Loop is a host event loop. Pointer events sent with [Loop.Send] and
// callbacks scheduled with [Loop.AfterFunc] or [Loop.RunOnMain] are all run
// on the goroutine that calls [Loop.Run]. Loop implements the
// animate.Scheduler interface using the wall clock.
type Loop struct {

	// Handler is called with each pointer event, on the loop goroutine.
	Handler func(ev events.Event)

	// events holds pointer events sent from host goroutines.
	events events.Mailbox

	// wake is signaled when new events have been queued.
	wake chan struct{}

	// MainQueue holds functions to run on the loop goroutine.
	MainQueue chan FuncRun

	// MainDone is closed when the loop stops.
	MainDone chan struct{}
}

// NewLoop returns a new [Loop] that delivers pointer events to the given handler.
func NewLoop(handler func(ev events.Event)) *Loop {
	lp := &Loop{
		Handler:   handler,
		wake:      make(chan struct{}, 1),
		MainQueue: make(chan FuncRun, 16),
		MainDone:  make(chan struct{}),
	}
	return lp
}

// Send queues the given event for delivery on the loop goroutine.
// It is safe to call from any goroutine.
func (lp *Loop) Send(ev events.Event) {
	lp.events.Post(ev)
	select {
	case lp.wake <- struct{}{}:
	default:
	}
}

// Now returns the wall-clock time.
func (lp *Loop) Now() time.Time {
	return time.Now()
}

// AfterFunc runs f on the loop goroutine after d has elapsed.
// The returned cancel function must be called on the loop goroutine;
// once it returns, f is guaranteed not to run, even if its timer
// already fired and f is waiting in [Loop.MainQueue].
func (lp *Loop) AfterFunc(d time.Duration, f func()) func() {
	canceled := false
	t := time.AfterFunc(d, func() {
		lp.post(FuncRun{F: func() {
			if !canceled {
				f()
			}
		}})
	})
	return func() {
		canceled = true
		t.Stop()
	}
}

// RunOnMain runs the given function on the loop goroutine
// and returns after it has finished running. If the loop
// has stopped, it returns without running f.
func (lp *Loop) RunOnMain(f func()) {
	done := make(chan struct{})
	if !lp.post(FuncRun{F: f, Done: done}) {
		return
	}
	select {
	case <-done:
	case <-lp.MainDone:
	}
}

// post adds a function to the main queue, returning false
// if the loop has stopped.
func (lp *Loop) post(fr FuncRun) bool {
	select {
	case <-lp.MainDone:
		return false
	default:
	}
	select {
	case lp.MainQueue <- fr:
		return true
	case <-lp.MainDone:
		return false
	}
}

// Run processes events and scheduled functions until ctx is done.
// It must only be called once.
func (lp *Loop) Run(ctx context.Context) error {
	defer close(lp.MainDone)
	for {
		lp.events.Drain(lp.handle)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fr := <-lp.MainQueue:
			lp.run(fr)
		case <-lp.wake:
		}
	}
}

func (lp *Loop) handle(ev events.Event) {
	defer handleRecover("event " + ev.Type().String())
	if lp.Handler != nil {
		lp.Handler(ev)
	}
}

func (lp *Loop) run(fr FuncRun) {
	defer func() {
		if fr.Done != nil {
			close(fr.Done)
		}
	}()
	defer handleRecover("function")
	fr.F()
}

// handleRecover logs a panic raised while handling something on the loop,
// so that one bad callback does not stop the host.
func handleRecover(what string) {
	if r := recover(); r != nil {
		slog.Error("system.Loop: panic while running "+what, "panic", r)
	}
}
