// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate provides time-based animation of a single float32
// value on top of an injected [Scheduler], so that animations run on
// the event-processing goroutine and can be driven by a virtual clock.
package animate

import "time"

// Scheduler is the source of time and delayed callbacks for animations.
// Callbacks must run on the same goroutine that processes events,
// so that no locking is needed around the animated state.
type Scheduler interface {

	// Now returns the current time.
	Now() time.Time

	// AfterFunc arranges for f to be called once after at least d has elapsed.
	// The returned cancel function drops the callback if it has not run yet;
	// calling it more than once, or after f ran, has no effect.
	AfterFunc(d time.Duration, f func()) (cancel func())
}
