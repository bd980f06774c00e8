// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termview draws a [toggle.Switch] as a line of text cells
// on a terminal, with colors from termenv.
package termview

import (
	"io"
	"strings"

	"cogentcore.org/toggle/math32"
	"cogentcore.org/toggle/toggle"
	"github.com/muesli/termenv"
)

// DefaultWidth is the default number of cells of the track.
const DefaultWidth = 24

// View is a terminal [toggle.Renderer]. Render requests only mark
// the view as dirty; [View.Paint] draws at most once per request batch.
type View struct {

	// Switch is the switch that is drawn.
	Switch *toggle.Switch

	// Width is the number of cells of the track along its axis.
	Width int

	// Output is the termenv output used for colors.
	Output *termenv.Output

	// Paints is the number of frames painted so far.
	Paints int

	dirty bool
}

// New returns a new [View] that draws the given switch to the given writer,
// and makes it the renderer of the switch. The view starts dirty.
func New(sw *toggle.Switch, w io.Writer, opts ...termenv.OutputOption) *View {
	v := &View{
		Switch: sw,
		Width:  DefaultWidth,
		Output: termenv.NewOutput(w, opts...),
		dirty:  true,
	}
	sw.Renderer = v
	return v
}

// NeedsRender implements [toggle.Renderer].
func (v *View) NeedsRender() {
	v.dirty = true
}

// IsDirty returns whether the view must be painted again.
func (v *View) IsDirty() bool {
	return v.dirty
}

// Paint writes the switch to the output if it changed since the
// last paint, and returns whether it did.
func (v *View) Paint() (bool, error) {
	if !v.dirty {
		return false, nil
	}
	v.dirty = false
	v.Paints++
	_, err := io.WriteString(v.Output, v.Render()+"\n")
	return true, err
}

// cell is one character of the track.
type cell struct {
	r     rune
	thumb bool
}

// Render returns the text of the current frame. A vertical switch
// is drawn one cell per line, from top to bottom.
func (v *View) Render() string {
	cells := v.cells()
	st := v.Switch.State()
	var b strings.Builder
	sep := ""
	if v.Switch.Config.Axis == math32.Y {
		sep = "\n"
	}
	b.WriteString(v.edge(true))
	b.WriteString(sep)
	for i, c := range cells {
		s := v.Output.String(string(c.r))
		if c.thumb {
			s = s.Reverse()
			if st.Checked {
				s = s.Foreground(v.Output.Color("2"))
			}
		} else {
			s = s.Faint()
		}
		b.WriteString(s.String())
		if i < len(cells)-1 {
			b.WriteString(sep)
		}
	}
	b.WriteString(sep)
	b.WriteString(v.edge(false))
	return b.String()
}

func (v *View) edge(start bool) string {
	switch {
	case v.Switch.Config.Axis == math32.Y && start:
		return "┬"
	case v.Switch.Config.Axis == math32.Y:
		return "┴"
	case start:
		return "["
	default:
		return "]"
	}
}

// span returns the first cell and the number of cells of the thumb.
func (v *View) span() (start, n int) {
	w := max(v.Width, 1)
	l := v.Switch.Layout()
	axis := v.Switch.Config.Axis
	track := l.TapBounds(axis)
	length := track.Size().Dim(axis)
	if length <= 0 {
		return 0, w
	}
	scale := float32(w) / length
	thumb := l.ThumbAt(v.Switch.Offset(), axis)
	n = min(max(int(math32.Round(thumb.Size().Dim(axis)*scale)), 1), w)
	start = int(math32.Round((thumb.Min.Dim(axis) - track.Min.Dim(axis)) * scale))
	start = min(max(start, 0), w-n)
	return start, n
}

func (v *View) cells() []cell {
	w := max(v.Width, 1)
	cells := make([]cell, w)
	for i := range cells {
		cells[i].r = '─'
	}
	start, n := v.span()
	for i := start; i < start+n; i++ {
		cells[i] = cell{r: ' ', thumb: true}
	}
	sw := v.Switch
	if sw.Config.Style == toggle.StylePush {
		// the labels travel with the thumb on either side of it
		st := sw.State()
		before := sw.TextFor(st.CheckedForSide(true))
		after := sw.TextFor(st.CheckedForSide(false))
		putEnd(cells[:start], before)
		putStart(cells[start+n:], after)
		for i := start; i < start+n; i++ {
			cells[i].r = '█'
		}
		return cells
	}
	putCenter(cells[start:start+n], sw.Text())
	return cells
}

// putStart writes s at the start of cells, clipping its end.
func putStart(cells []cell, s string) {
	rs := []rune(s)
	for i := 0; i < len(rs) && i < len(cells); i++ {
		cells[i].r = rs[i]
	}
}

// putEnd writes s at the end of cells, clipping its start.
func putEnd(cells []cell, s string) {
	rs := []rune(s)
	for i := 1; i <= len(rs) && i <= len(cells); i++ {
		cells[len(cells)-i].r = rs[len(rs)-i]
	}
}

// putCenter writes s centered in cells, clipping both ends.
func putCenter(cells []cell, s string) {
	rs := []rune(s)
	if len(rs) > len(cells) {
		cut := (len(rs) - len(cells)) / 2
		rs = rs[cut : cut+len(cells)]
	}
	putStart(cells[(len(cells)-len(rs))/2:], string(rs))
}
