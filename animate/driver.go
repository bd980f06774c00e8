// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"time"

	"cogentcore.org/toggle/math32"
)

// DefaultInterval is the default time between animation frames.
const DefaultInterval = 20 * time.Millisecond

// Run is one animation from a start value to a target value.
// A Run is created by [Driver.Start] and discarded when it reaches
// its target or is superseded.
type Run struct {

	// From is the value at the start of the run.
	From float32

	// To is the target value.
	To float32

	// Start is the time at which the run started.
	Start time.Time

	// Duration is the total time the run takes.
	Duration time.Duration
}

// Progress returns the linear progress of the run at the given time, in [0, 1].
func (r *Run) Progress(now time.Time) float32 {
	if r.Duration <= 0 {
		return 1
	}
	return math32.Min(1, float32(now.Sub(r.Start))/float32(r.Duration))
}

// Driver animates a single value toward a target by publishing
// intermediate values through [Driver.Set] at a fixed interval.
// At most one [Run] is active at a time: starting a new run or
// calling [Driver.Cancel] drops the pending frame of the previous one.
type Driver struct {

	// Scheduler provides time and frame callbacks. If it is nil,
	// runs snap directly to their target with no intermediate frames.
	Scheduler Scheduler

	// Set is called with each new value, on the scheduler goroutine.
	Set func(v float32)

	// Ease maps linear progress onto eased progress. It defaults to [Decelerate].
	Ease Ease

	// Interval is the time between frames. It defaults to [DefaultInterval].
	Interval time.Duration

	// MaxDuration is the duration of a run that covers a whole span.
	// Shorter distances take proportionally less time.
	MaxDuration time.Duration

	// run is the active run, if any.
	run *Run

	// cancel drops the pending frame of the active run.
	cancel func()
}

// Running returns whether a run is active.
func (d *Driver) Running() bool {
	return d.run != nil
}

// Current returns the active run, or nil.
func (d *Driver) Current() *Run {
	return d.run
}

// Start cancels any active run and starts a new one from the value from
// to the value to. The run duration is [Driver.MaxDuration] scaled by the
// fraction of span that remains to be covered, so a value already close
// to its target settles faster. If there is nothing to animate, or no
// scheduler, the value snaps to its target.
func (d *Driver) Start(from, to, span float32) {
	d.Cancel()
	dur := d.duration(from, to, span)
	if d.Scheduler == nil || dur <= 0 {
		d.publish(to)
		return
	}
	d.run = &Run{From: from, To: to, Start: d.Scheduler.Now(), Duration: dur}
	d.schedule(d.run)
}

// Cancel stops the active run, if any, leaving the value where it is.
func (d *Driver) Cancel() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.run = nil
}

// Finish stops the active run, if any, and snaps the value to its target.
func (d *Driver) Finish() {
	r := d.run
	d.Cancel()
	if r != nil {
		d.publish(r.To)
	}
}

func (d *Driver) duration(from, to, span float32) time.Duration {
	if span <= 0 || d.MaxDuration <= 0 {
		return 0
	}
	frac := math32.Min(1, math32.Abs(to-from)/span)
	return time.Duration(float32(d.MaxDuration) * frac)
}

func (d *Driver) schedule(r *Run) {
	iv := d.Interval
	if iv <= 0 {
		iv = DefaultInterval
	}
	d.cancel = d.Scheduler.AfterFunc(iv, func() {
		d.tick(r)
	})
}

// tick publishes one frame of the given run.
func (d *Driver) tick(r *Run) {
	if d.run != r {
		return // superseded
	}
	d.cancel = nil
	progress := r.Progress(d.Scheduler.Now())
	if progress >= 1 {
		d.run = nil
		d.publish(r.To)
		return
	}
	ease := d.Ease
	if ease == nil {
		ease = Decelerate
	}
	d.publish(math32.Lerp(r.From, r.To, ease(progress)))
	if d.run == r {
		d.schedule(r)
	}
}

func (d *Driver) publish(v float32) {
	if d.Set != nil {
		d.Set(v)
	}
}
