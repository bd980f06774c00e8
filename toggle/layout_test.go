// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toggle

import (
	"testing"

	"cogentcore.org/toggle/math32"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func TestMeasure(t *testing.T) {
	cfg := DefaultConfig()
	l := Measure(basicfont.Face7x13, cfg)
	// "OFF" is 21 wide; 6 of padding on each side
	assert.Equal(t, float32(33), l.ScrollRange)
	assert.Equal(t, math32.B2(0, 0, 33, 25), l.Thumb)
	assert.Equal(t, math32.B2(0, 0, 66, 25), l.Bounds)

	cfg.Axis = math32.Y
	cfg.TrackPadding = 2
	cfg.MinTrackLength = 100
	l = Measure(basicfont.Face7x13, cfg)
	assert.Equal(t, float32(63), l.ScrollRange)
	assert.Equal(t, math32.B2(0, 2, 25, 35), l.Thumb)
	assert.Equal(t, math32.B2(0, 0, 25, 100), l.Bounds)

	cfg = DefaultConfig()
	cfg.TextOn = ""
	cfg.TextOff = ""
	cfg.ThumbTextPadding = 0
	cfg.MinThumbLength = 12
	l = Measure(basicfont.Face7x13, cfg)
	assert.Equal(t, float32(12), l.ScrollRange)
	assert.Equal(t, float32(12), l.Thumb.Size().X)
}

func TestLayoutHitThumb(t *testing.T) {
	l := testLayout()
	assert.True(t, l.HitThumb(math32.Vec2(20, 10), 0, math32.X, 16))
	assert.True(t, l.HitThumb(math32.Vec2(55, 35), 0, math32.X, 16))
	assert.False(t, l.HitThumb(math32.Vec2(56, 10), 0, math32.X, 16), "the expanded edge is outside")
	assert.False(t, l.HitThumb(math32.Vec2(20, 10), 100, math32.X, 16))
	assert.True(t, l.HitThumb(math32.Vec2(120, 10), 100, math32.X, 16))
	assert.Equal(t, math32.B2(0, 40, 40, 60), l.ThumbAt(40, math32.Y))
}

func TestLayoutTapBounds(t *testing.T) {
	l := testLayout()
	assert.Equal(t, l.Bounds, l.TapBounds(math32.X))
	l.Bounds = math32.Box2{}
	assert.Equal(t, math32.B2(0, 0, 140, 20), l.TapBounds(math32.X))
	assert.Equal(t, math32.B2(0, 0, 40, 120), l.TapBounds(math32.Y))
}
