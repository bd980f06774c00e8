// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package toggle

import (
	"bytes"
	"io"
	"os"
	"time"

	"cogentcore.org/toggle/animate"
	"cogentcore.org/toggle/base/errors"
	"cogentcore.org/toggle/math32"
	"github.com/creasty/defaults"
	"github.com/pelletier/go-toml/v2"
)

// Config is the configuration of a [Switch]. It is normally
// set programmatically, starting from [DefaultConfig], or loaded
// from a TOML file with [OpenConfig].
type Config struct {

	// Name identifies the switch in log messages.
	Name string `toml:"name"`

	// Checked is the initial checked state.
	Checked bool `toml:"checked"`

	// Fixed is whether user gestures are prevented from
	// changing the checked state.
	Fixed bool `toml:"fixed"`

	// FixedTarget, if set, is the checked state that the
	// switch is forced to when it is created fixed.
	FixedTarget *bool `toml:"fixed_target,omitempty"`

	// ClickDisabled is whether taps are ignored completely.
	ClickDisabled bool `toml:"click_disabled"`

	// InvertedThumb is whether a thumb at offset zero means on
	// instead of off.
	InvertedThumb bool `toml:"inverted_thumb"`

	// HostClicks is whether the host recognizes taps and calls
	// [Switch.PerformTap] itself. When false, the switch turns
	// a press and release without drag into a tap on its own.
	HostClicks bool `toml:"host_clicks"`

	// Axis is the drag axis: X for a horizontal switch, Y for a vertical one.
	Axis math32.Dims `toml:"axis"`

	// Style is the rendering mode.
	Style Styles `toml:"style"`

	// FlingThreshold is the release speed, in distance units per second,
	// above which the direction of a drag decides the new state
	// regardless of the thumb position.
	FlingThreshold float32 `toml:"fling_threshold" default:"500"`

	// TouchSlop is the margin around the thumb that still hits it,
	// and the distance a pointer must exceed along either axis
	// before a press becomes a drag.
	TouchSlop float32 `toml:"touch_slop" default:"16"`

	// MaxAnimationDuration is the time the thumb takes to travel
	// the whole scroll range when it animates to rest.
	MaxAnimationDuration Duration `toml:"max_animation_duration" default:"250ms"`

	// FrameInterval is the time between animation frames.
	FrameInterval Duration `toml:"frame_interval" default:"20ms"`

	// Ease is the name of the animation easing curve:
	// decelerate, linear or ease-out-cubic.
	Ease string `toml:"ease" default:"decelerate"`

	// TextOn is the label shown for the on state.
	TextOn string `toml:"text_on" default:"ON"`

	// TextOff is the label shown for the off state.
	TextOff string `toml:"text_off" default:"OFF"`

	// ThumbTextPadding is the space on each side of a label on the thumb.
	ThumbTextPadding float32 `toml:"thumb_text_padding" default:"6"`

	// MinThumbLength is the minimum length of the thumb along the axis.
	MinThumbLength float32 `toml:"min_thumb_length" default:"10"`

	// MinTrackLength is the minimum length of the track along the axis.
	MinTrackLength float32 `toml:"min_track_length" default:"0"`

	// TrackPadding is the space at each end of the track
	// that the thumb does not travel into.
	TrackPadding float32 `toml:"track_padding" default:"0"`
}

// Duration is a [time.Duration] that reads and writes
// as a string like "250ms" in configuration files.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns a new [Config] with all default values set.
func DefaultConfig() *Config {
	cfg := &Config{}
	errors.Must(defaults.Set(cfg))
	return cfg
}

// OpenConfig reads a [Config] from the given TOML file. Settings missing
// from the file keep their default values.
func OpenConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Errorf("toggle.OpenConfig %q: %w", filename, err)
	}
	return cfg, nil
}

// ReadConfig reads a [Config] in TOML format from the given reader.
func ReadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to the given file in TOML format.
func (cfg *Config) Save(filename string) error {
	var b bytes.Buffer
	if err := cfg.Write(&b); err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(filename, b.Bytes(), 0666))
}

// Write writes the config to the given writer in TOML format.
func (cfg *Config) Write(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(cfg))
}

// Validate returns an error if any setting is out of range.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.FlingThreshold < 0 {
		errs = append(errs, errors.Errorf("fling_threshold must not be negative, got %g", cfg.FlingThreshold))
	}
	if cfg.TouchSlop < 0 {
		errs = append(errs, errors.Errorf("touch_slop must not be negative, got %g", cfg.TouchSlop))
	}
	if cfg.MaxAnimationDuration < 0 {
		errs = append(errs, errors.Errorf("max_animation_duration must not be negative, got %v", time.Duration(cfg.MaxAnimationDuration)))
	}
	if cfg.FrameInterval < 0 {
		errs = append(errs, errors.Errorf("frame_interval must not be negative, got %v", time.Duration(cfg.FrameInterval)))
	}
	if _, ok := animate.EaseByName(cfg.Ease); !ok {
		errs = append(errs, errors.Errorf("unknown ease %q", cfg.Ease))
	}
	if cfg.Axis != math32.X && cfg.Axis != math32.Y {
		errs = append(errs, errors.Errorf("invalid axis %v", cfg.Axis))
	}
	return errors.Join(errs...)
}
