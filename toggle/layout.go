// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toggle

import (
	"cogentcore.org/toggle/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Layout is the geometry of a [Switch], supplied by the layout engine
// in the same units as pointer positions.
type Layout struct {

	// ScrollRange is the distance the thumb can travel along the axis.
	// A negative value (thumb longer than the track) is treated as zero.
	ScrollRange float32

	// Thumb is the bounding box of the thumb at offset zero.
	Thumb math32.Box2

	// Bounds is the bounding box of the whole switch, where taps are
	// recognized. If it is empty, the area swept by the thumb is used.
	Bounds math32.Box2
}

// ThumbAt returns the bounding box of the thumb at the given offset along the axis.
func (l *Layout) ThumbAt(offset float32, axis math32.Dims) math32.Box2 {
	var d math32.Vector2
	d.SetDim(axis, offset)
	return l.Thumb.Translate(d)
}

// HitThumb returns whether the given point hits the thumb at the given offset,
// with the thumb bounds expanded by slop on all sides.
func (l *Layout) HitThumb(pt math32.Vector2, offset float32, axis math32.Dims, slop float32) bool {
	b := l.ThumbAt(offset, axis)
	b.ExpandByScalar(slop)
	return b.ContainsPointExclusive(pt)
}

// TapBounds returns the region in which a press and release is a tap.
func (l *Layout) TapBounds(axis math32.Dims) math32.Box2 {
	if sz := l.Bounds.Size(); sz.X > 0 && sz.Y > 0 {
		return l.Bounds
	}
	b := l.Thumb
	b.ExpandByPoint(l.ThumbAt(math32.Max(0, l.ScrollRange), axis).Max)
	return b
}

// Measure computes the [Layout] of a switch whose on and off labels,
// drawn with the given face, sit on the thumb. The thumb is as long as
// the widest label plus its padding (and at least MinThumbLength), the
// track holds two thumbs (and is at least MinTrackLength), and the
// thumb travels the track minus its own length and the end padding.
func Measure(face font.Face, cfg *Config) Layout {
	text := max(font.MeasureString(face, cfg.TextOn), font.MeasureString(face, cfg.TextOff))
	pad := math32.ToFixed(cfg.ThumbTextPadding)
	thumbLen := max(text+2*pad, math32.ToFixed(cfg.MinThumbLength))
	thick := face.Metrics().Height + 2*pad
	trackPad := math32.ToFixed(cfg.TrackPadding)
	trackLen := max(2*thumbLen+2*trackPad, math32.ToFixed(cfg.MinTrackLength))

	along := func(min, max, cmin, cmax fixed.Int26_6) fixed.Rectangle26_6 {
		if cfg.Axis == math32.X {
			return fixed.Rectangle26_6{Min: fixed.Point26_6{X: min, Y: cmin}, Max: fixed.Point26_6{X: max, Y: cmax}}
		}
		return fixed.Rectangle26_6{Min: fixed.Point26_6{X: cmin, Y: min}, Max: fixed.Point26_6{X: cmax, Y: max}}
	}
	return Layout{
		ScrollRange: math32.Max(0, math32.FromFixed(trackLen-thumbLen-2*trackPad)),
		Thumb:       math32.B2FromFixed(along(trackPad, trackPad+thumbLen, 0, thick)),
		Bounds:      math32.B2FromFixed(along(0, trackLen, 0, thick)),
	}
}
