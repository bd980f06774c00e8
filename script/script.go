// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script reads recorded pointer gestures from YAML files
// and replays them against a [toggle.Switch] in virtual time.
//
// A script is a list of steps. Each step waits for its After
// duration, running animation frames in the meantime, and then
// performs one action:
//
//	name: fling on
//	steps:
//	  - down: [20, 10]
//	  - after: 5ms
//	    move: [30, 10]
//	  - after: 5ms
//	    up: [45, 10]
//	    expect: {checked: true}
package script

import (
	"fmt"
	"io"
	"os"
	"time"

	"cogentcore.org/toggle/base/errors"
	"cogentcore.org/toggle/math32"
	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of steps.
type Script struct {

	// Name describes the script.
	Name string `yaml:"name"`

	// Steps are the steps, in order.
	Steps []Step `yaml:"steps"`
}

// Step is one action of a [Script]. Exactly one of the action
// fields must be set, except for a step that only waits or expects.
type Step struct {

	// After is the time to wait before the action.
	After Duration `yaml:"after,omitempty"`

	// Pointer is the ID of the pointer for pointer actions.
	Pointer int `yaml:"pointer,omitempty"`

	// Down presses the pointer at the given position.
	Down Point `yaml:"down,omitempty"`

	// Move moves the pointer to the given position.
	Move Point `yaml:"move,omitempty"`

	// Up releases the pointer at the given position.
	Up Point `yaml:"up,omitempty"`

	// Cancel cancels the gesture at the given position.
	Cancel Point `yaml:"cancel,omitempty"`

	// Tap calls [toggle.Switch.PerformTap], as a host does on a click.
	Tap bool `yaml:"tap,omitempty"`

	// Set sets the checked state programmatically.
	Set *bool `yaml:"set,omitempty"`

	// Fixate sets whether the switch is fixed.
	Fixate *bool `yaml:"fixate,omitempty"`

	// Enable sets whether the switch is enabled.
	Enable *bool `yaml:"enable,omitempty"`

	// Expect checks the state of the switch after the action.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect is the expected state of a switch after a step.
type Expect struct {
	Checked  *bool    `yaml:"checked,omitempty"`
	Offset   *float32 `yaml:"offset,omitempty"`
	Handled  *bool    `yaml:"handled,omitempty"`
	Attempts *int     `yaml:"attempts,omitempty"`
}

// Point is a pointer position written as [x, y].
// An empty point means the action is not set.
type Point []float32

// Vector returns the point as a vector.
func (pt Point) Vector() math32.Vector2 {
	return math32.Vec2(pt[0], pt[1])
}

// Duration is a [time.Duration] written like "15ms".
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	v, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(v)
	return nil
}

// Action returns the name of the action of the step, or an error
// if more than one is set or a point does not have two coordinates.
// A step without an action is a "wait".
func (st *Step) Action() (string, error) {
	var acts []string
	for _, pa := range []struct {
		name string
		pt   Point
	}{{"down", st.Down}, {"move", st.Move}, {"up", st.Up}, {"cancel", st.Cancel}} {
		if pa.pt == nil {
			continue
		}
		if len(pa.pt) != 2 {
			return "", fmt.Errorf("%s needs [x, y], got %v", pa.name, []float32(pa.pt))
		}
		acts = append(acts, pa.name)
	}
	if st.Tap {
		acts = append(acts, "tap")
	}
	if st.Set != nil {
		acts = append(acts, "set")
	}
	if st.Fixate != nil {
		acts = append(acts, "fixate")
	}
	if st.Enable != nil {
		acts = append(acts, "enable")
	}
	switch len(acts) {
	case 0:
		return "wait", nil
	case 1:
		return acts[0], nil
	}
	return "", fmt.Errorf("more than one action: %v", acts)
}

// Validate returns an error for any step with an invalid action.
func (s *Script) Validate() error {
	var errs []error
	for i := range s.Steps {
		if _, err := s.Steps[i].Action(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i, err))
		}
		if s.Steps[i].After < 0 {
			errs = append(errs, fmt.Errorf("step %d: negative after", i))
		}
	}
	return errors.Join(errs...)
}

// Open reads a [Script] from the given YAML file.
func Open(filename string) (*Script, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, errors.Errorf("script.Open %q: %w", filename, err)
	}
	return s, nil
}

// Read reads a [Script] in YAML format from the given reader.
func Read(r io.Reader) (*Script, error) {
	s := &Script{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, errors.Wrap(err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Write writes the script to the given writer in YAML format.
func (s *Script) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err)
	}
	return errors.Wrap(enc.Close())
}
