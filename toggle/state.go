// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toggle

import "cogentcore.org/toggle/math32"

// State is the state of a [Switch] that renderers and tests read.
// The switch owns it: it is only mutated on the event goroutine.
type State struct {

	// Checked is the logical state.
	Checked bool

	// Offset is the position of the thumb along the axis,
	// in [0, ScrollRange].
	Offset float32

	// ScrollRange is the distance the thumb can travel. It is never negative.
	ScrollRange float32

	// Fixed is whether user gestures are prevented from changing Checked.
	Fixed bool

	// ClickDisabled is whether taps are ignored completely.
	ClickDisabled bool

	// InvertedThumb is whether offset zero is the on side.
	InvertedThumb bool
}

// TargetOffset returns the resting offset of the thumb for the given checked state.
func (st *State) TargetOffset(checked bool) float32 {
	if checked != st.InvertedThumb {
		return st.ScrollRange
	}
	return 0
}

// OffsetSide returns the side of the track the thumb is on,
// true meaning the far end at ScrollRange. A thumb exactly
// at the middle is on the far side.
func (st *State) OffsetSide() bool {
	return st.Offset >= st.ScrollRange/2
}

// ReleaseChecked returns the checked state that a drag released with
// the given velocity along the axis resolves to. A release faster than
// flingThreshold resolves by its direction alone; a slower one resolves
// by the side of the track the thumb is on.
func (st *State) ReleaseChecked(velocity, flingThreshold float32) bool {
	var side bool
	if math32.Abs(velocity) > flingThreshold {
		side = velocity > 0
	} else {
		side = st.OffsetSide()
	}
	return st.CheckedForSide(side)
}

// CheckedForSide returns the checked state that corresponds to
// the given side of the track.
func (st *State) CheckedForSide(side bool) bool {
	return side != st.InvertedThumb
}

// Progress returns how far the thumb is toward the on position, in [0, 1].
// With no scroll range it is 1 when checked and 0 otherwise.
func (st *State) Progress() float32 {
	if st.ScrollRange <= 0 {
		if st.Checked {
			return 1
		}
		return 0
	}
	p := math32.Clamp(st.Offset/st.ScrollRange, 0, 1)
	if st.InvertedThumb {
		return 1 - p
	}
	return p
}

// clampOffset clamps the given offset to the scroll range.
func (st *State) clampOffset(off float32) float32 {
	return math32.Clamp(off, 0, math32.Max(0, st.ScrollRange))
}
