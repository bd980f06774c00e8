// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toggle

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/toggle/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, float32(500), cfg.FlingThreshold)
	assert.Equal(t, float32(16), cfg.TouchSlop)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.MaxAnimationDuration)
	assert.Equal(t, Duration(20*time.Millisecond), cfg.FrameInterval)
	assert.Equal(t, "decelerate", cfg.Ease)
	assert.Equal(t, "ON", cfg.TextOn)
	assert.Equal(t, "OFF", cfg.TextOff)
	assert.Equal(t, float32(6), cfg.ThumbTextPadding)
	assert.Equal(t, math32.X, cfg.Axis)
	assert.Equal(t, StyleSlide, cfg.Style)
	assert.Nil(t, cfg.FixedTarget)
	assert.NoError(t, cfg.Validate())
}

func TestReadConfig(t *testing.T) {
	src := `
name = "wifi"
fixed = true
fixed_target = true
fling_threshold = 800
max_animation_duration = "300ms"
axis = "vertical"
style = "push"
ease = "linear"
`
	cfg, err := ReadConfig(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "wifi", cfg.Name)
	assert.True(t, cfg.Fixed)
	require.NotNil(t, cfg.FixedTarget)
	assert.True(t, *cfg.FixedTarget)
	assert.Equal(t, float32(800), cfg.FlingThreshold)
	assert.Equal(t, Duration(300*time.Millisecond), cfg.MaxAnimationDuration)
	assert.Equal(t, math32.Y, cfg.Axis)
	assert.Equal(t, StylePush, cfg.Style)
	assert.Equal(t, float32(16), cfg.TouchSlop, "missing settings keep their defaults")

	sw := New(cfg)
	assert.True(t, sw.IsChecked())
	assert.True(t, sw.IsFixed())
}

func TestReadConfigErrors(t *testing.T) {
	_, err := ReadConfig(strings.NewReader(`flingthreshold = 3`))
	assert.Error(t, err)

	_, err = ReadConfig(strings.NewReader(`max_animation_duration = "soon"`))
	assert.Error(t, err)

	_, err = ReadConfig(strings.NewReader(`axis = "diagonal"`))
	assert.Error(t, err)

	_, err = ReadConfig(strings.NewReader("fling_threshold = -1\ntouch_slop = -2\nease = \"bounce\""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fling_threshold")
	assert.Contains(t, err.Error(), "touch_slop")
	assert.Contains(t, err.Error(), "bounce")

	_, err = OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestConfigSave(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvertedThumb = true
	cfg.TextOn = "I"
	cfg.TextOff = "O"
	cfg.FrameInterval = Duration(16 * time.Millisecond)
	cfg.Axis = math32.Y

	var b bytes.Buffer
	require.NoError(t, cfg.Write(&b))
	assert.Contains(t, b.String(), "16ms")
	assert.Contains(t, b.String(), "inverted_thumb = true")

	fn := filepath.Join(t.TempDir(), "switch.toml")
	require.NoError(t, cfg.Save(fn))
	got, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
