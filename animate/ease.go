// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

// Ease maps a linear progress in [0, 1] onto an eased progress in [0, 1].
// An Ease used by a [Driver] must be monotonic with Ease(0) = 0 and
// Ease(1) = 1 so that animations never overshoot.
type Ease func(t float32) float32

// Linear is the identity [Ease].
func Linear(t float32) float32 {
	return t
}

// Decelerate starts quickly and slows down toward the end:
// 1 - (1 - t)^2.
func Decelerate(t float32) float32 {
	u := 1 - t
	return 1 - u*u
}

// EaseOutCubic is a stronger deceleration: 1 - (1 - t)^3.
func EaseOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseByName returns the [Ease] with the given name
// ("linear", "decelerate" or "ease-out-cubic"), and
// whether it exists.
func EaseByName(name string) (Ease, bool) {
	switch name {
	case "linear":
		return Linear, true
	case "decelerate", "":
		return Decelerate, true
	case "ease-out-cubic":
		return EaseOutCubic, true
	}
	return nil, false
}
