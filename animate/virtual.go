// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"slices"
	"time"
)

// VirtualClock is a [Scheduler] whose time only moves when
// [VirtualClock.Advance] is called. Callbacks run synchronously
// inside Advance, in deadline order. It is used to replay gestures
// deterministically and in tests.
type VirtualClock struct {
	now    time.Time
	timers []*virtualTimer
	seq    int
}

type virtualTimer struct {
	when     time.Time
	seq      int
	f        func()
	canceled bool
}

// NewVirtualClock returns a new [VirtualClock] starting at the given time.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

func (vc *VirtualClock) Now() time.Time {
	return vc.now
}

func (vc *VirtualClock) AfterFunc(d time.Duration, f func()) func() {
	vc.seq++
	t := &virtualTimer{when: vc.now.Add(d), seq: vc.seq, f: f}
	vc.timers = append(vc.timers, t)
	return func() {
		t.canceled = true
	}
}

// Pending returns the number of callbacks that have not run or been canceled.
func (vc *VirtualClock) Pending() int {
	n := 0
	for _, t := range vc.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that
// becomes due, including callbacks scheduled by other callbacks.
// The clock reads the deadline of each callback while it runs.
func (vc *VirtualClock) Advance(d time.Duration) {
	end := vc.now.Add(d)
	for {
		t := vc.next()
		if t == nil || t.when.After(end) {
			break
		}
		t.canceled = true
		if t.when.After(vc.now) {
			vc.now = t.when
		}
		t.f()
	}
	vc.now = end
	vc.compact()
}

// AdvanceUntilIdle runs callbacks until none are pending or limit
// has elapsed, and returns the time that elapsed.
func (vc *VirtualClock) AdvanceUntilIdle(limit time.Duration) time.Duration {
	start := vc.now
	end := start.Add(limit)
	for {
		t := vc.next()
		if t == nil || t.when.After(end) {
			break
		}
		vc.Advance(t.when.Sub(vc.now))
	}
	return vc.now.Sub(start)
}

// next returns the earliest pending timer, or nil.
func (vc *VirtualClock) next() *virtualTimer {
	var nt *virtualTimer
	for _, t := range vc.timers {
		if t.canceled {
			continue
		}
		if nt == nil || t.when.Before(nt.when) || (t.when.Equal(nt.when) && t.seq < nt.seq) {
			nt = t
		}
	}
	return nt
}

func (vc *VirtualClock) compact() {
	vc.timers = slices.DeleteFunc(vc.timers, func(t *virtualTimer) bool {
		return t.canceled
	})
}
