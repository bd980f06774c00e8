// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package velocity estimates the velocity of a pointer from its
// recent positions, for deciding whether a drag ended in a fling.
package velocity

import (
	"time"

	"cogentcore.org/toggle/math32"
)

const (
	// historySize is the maximum number of samples kept.
	historySize = 20

	// Horizon is how far back from the newest sample
	// samples are used for the estimate.
	Horizon = 100 * time.Millisecond

	// StoppedTime is the gap between two samples after which the
	// pointer is assumed to have stopped, discarding older history.
	StoppedTime = 40 * time.Millisecond
)

type sample struct {
	pos  math32.Vector2
	when time.Time
}

// Tracker accumulates pointer samples and produces a velocity
// estimate by a least-squares linear fit over the samples within
// [Horizon] of the newest one. The zero value is ready to use.
type Tracker struct {
	samples [historySize]sample

	// index of the newest sample
	index int

	// number of valid samples
	count int
}

// Add adds a pointer position sample at the given time.
// Samples must be added in time order; a sample older than the
// newest one resets the history.
func (vt *Tracker) Add(pos math32.Vector2, when time.Time) {
	if vt.count > 0 {
		last := vt.samples[vt.index].when
		if when.Before(last) || when.Sub(last) > StoppedTime {
			vt.Clear()
		}
	}
	if vt.count > 0 {
		vt.index = (vt.index + 1) % historySize
	}
	vt.samples[vt.index] = sample{pos: pos, when: when}
	if vt.count < historySize {
		vt.count++
	}
}

// Clear removes all samples.
func (vt *Tracker) Clear() {
	vt.index = 0
	vt.count = 0
}

// Len returns the number of samples currently held.
func (vt *Tracker) Len() int {
	return vt.count
}

// VelocityDim returns the estimated velocity along the given dimension,
// in distance units per second.
func (vt *Tracker) VelocityDim(dim math32.Dims) float32 {
	if vt.count < 2 {
		return 0
	}
	newest := vt.samples[vt.index].when
	var ts, xs [historySize]float64
	n := 0
	for i := 0; i < vt.count; i++ {
		s := vt.samples[(vt.index-i+historySize)%historySize]
		age := newest.Sub(s.when)
		if age > Horizon {
			break
		}
		ts[n] = -age.Seconds()
		xs[n] = float64(s.pos.Dim(dim))
		n++
	}
	if n < 2 {
		return 0
	}
	var tm, xm float64
	for i := 0; i < n; i++ {
		tm += ts[i]
		xm += xs[i]
	}
	tm /= float64(n)
	xm /= float64(n)
	var num, den float64
	for i := 0; i < n; i++ {
		dt := ts[i] - tm
		num += dt * (xs[i] - xm)
		den += dt * dt
	}
	if den == 0 {
		return 0
	}
	return float32(num / den)
}
