// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/toggle/math32"
	"cogentcore.org/toggle/toggle"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, cfg *toggle.Config) (*View, *bytes.Buffer) {
	sw := toggle.New(cfg)
	b := &bytes.Buffer{}
	v := New(sw, b, termenv.WithProfile(termenv.Ascii))
	v.Width = 14
	sw.SetLayout(toggle.Layout{
		ScrollRange: 100,
		Thumb:       math32.B2(0, 0, 40, 20),
		Bounds:      math32.B2(0, 0, 140, 20),
	})
	return v, b
}

func TestViewSlide(t *testing.T) {
	v, _ := newView(t, nil)
	assert.Equal(t, "[OFF ──────────]", v.Render())
	v.Switch.SetChecked(true)
	assert.Equal(t, "[────────── ON ]", v.Render())
}

func TestViewPush(t *testing.T) {
	cfg := toggle.DefaultConfig()
	cfg.Style = toggle.StylePush
	v, _ := newView(t, cfg)
	assert.Equal(t, "[████OFF───────]", v.Render())
	v.Switch.SetChecked(true)
	assert.Equal(t, "[────────ON████]", v.Render())
}

func TestViewVertical(t *testing.T) {
	cfg := toggle.DefaultConfig()
	cfg.Axis = math32.Y
	v, _ := newView(t, cfg)
	v.Switch.SetLayout(toggle.Layout{
		ScrollRange: 100,
		Thumb:       math32.B2(0, 0, 20, 40),
		Bounds:      math32.B2(0, 0, 20, 140),
	})
	lines := strings.Split(v.Render(), "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "┬", lines[0])
	assert.Equal(t, "O", lines[1])
	assert.Equal(t, "─", lines[14])
	assert.Equal(t, "┴", lines[15])
}

func TestViewPaintOnce(t *testing.T) {
	v, b := newView(t, nil)
	painted, err := v.Paint()
	require.NoError(t, err)
	assert.True(t, painted)
	assert.False(t, v.IsDirty())

	painted, err = v.Paint()
	require.NoError(t, err)
	assert.False(t, painted)

	v.NeedsRender()
	v.NeedsRender()
	v.Switch.Toggle()
	painted, err = v.Paint()
	require.NoError(t, err)
	assert.True(t, painted)
	assert.Equal(t, 2, v.Paints)
	assert.Equal(t, "[OFF ──────────]\n[────────── ON ]\n", b.String())
}
