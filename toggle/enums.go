// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toggle

import "fmt"

// Modes are the touch modes of a [Switch] gesture session.
type Modes int32

const (
	// TouchIdle is when no gesture targets the thumb.
	TouchIdle Modes = iota

	// TouchPressed is when a pointer went down on the thumb
	// but has not yet moved beyond the drag slop.
	TouchPressed

	// TouchDragging is when the thumb follows the pointer.
	TouchDragging
)

var modesNames = [...]string{TouchIdle: "idle", TouchPressed: "pressed", TouchDragging: "dragging"}

func (m Modes) String() string {
	if m < 0 || int(m) >= len(modesNames) {
		return fmt.Sprintf("Modes(%d)", m)
	}
	return modesNames[m]
}

// Styles are the rendering modes of a [Switch]. They only
// affect how a renderer draws it, never how gestures resolve.
type Styles int32

const (
	// StyleSlide draws the thumb sliding over the track.
	StyleSlide Styles = iota

	// StylePush draws the track being pushed along with the thumb,
	// so that only the label of the current side shows.
	StylePush
)

var stylesNames = [...]string{StyleSlide: "slide", StylePush: "push"}

func (st Styles) String() string {
	if st < 0 || int(st) >= len(stylesNames) {
		return fmt.Sprintf("Styles(%d)", st)
	}
	return stylesNames[st]
}

// MarshalText implements [encoding.TextMarshaler].
func (st Styles) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (st *Styles) UnmarshalText(text []byte) error {
	for i, nm := range stylesNames {
		if nm == string(text) {
			*st = Styles(i)
			return nil
		}
	}
	return fmt.Errorf("toggle.Styles: invalid value %q", string(text))
}
