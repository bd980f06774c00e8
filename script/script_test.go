// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cogentcore.org/toggle/math32"
	"cogentcore.org/toggle/toggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gestures = `
name: gestures
steps:
  - down: [20, 10]
    expect: {handled: true}
  - after: 2ms
    move: [37, 10]
  - after: 2ms
    move: [47, 10]
    expect: {offset: 10}
  - after: 2ms
    up: [47, 10]
    expect: {checked: true}
  - after: 1s
    expect: {offset: 100}
  - fixate: true
  - tap: true
    expect: {checked: true, handled: false, attempts: 1}
  - set: false
  - after: 1s
    expect: {offset: 0, checked: false}
`

func newSwitch() *toggle.Switch {
	return toggle.New(nil).SetLayout(toggle.Layout{
		ScrollRange: 100,
		Thumb:       math32.B2(0, 0, 40, 20),
		Bounds:      math32.B2(0, 0, 140, 20),
	})
}

func TestPlay(t *testing.T) {
	s, err := Read(strings.NewReader(gestures))
	require.NoError(t, err)
	assert.Equal(t, "gestures", s.Name)
	require.Len(t, s.Steps, 9)
	assert.Equal(t, Duration(2*time.Millisecond), s.Steps[1].After)

	p := NewPlayer(newSwitch())
	frames := 0
	p.Frame = func(at time.Duration) { frames++ }
	require.NoError(t, p.Play(s))
	require.Len(t, p.Trace, 9)
	assert.Equal(t, "down", p.Trace[0].Action)
	assert.Equal(t, toggle.TouchPressed, p.Trace[0].Mode)
	assert.Equal(t, toggle.TouchDragging, p.Trace[1].Mode)
	assert.Equal(t, "wait", p.Trace[4].Action)
	assert.Equal(t, 6*time.Millisecond, p.Trace[3].At)
	assert.Equal(t, 1, p.Attempts())
	assert.Greater(t, frames, 9)
	assert.Equal(t, 0, p.Clock.Pending())
}

func TestPlayExpectFails(t *testing.T) {
	s, err := Read(strings.NewReader(`
name: wrong
steps:
  - down: [20, 10]
  - up: [20, 10]
    expect: {checked: false, offset: 3}
`))
	require.NoError(t, err)
	err = NewPlayer(newSwitch()).Play(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1 (up)")
	assert.Contains(t, err.Error(), "expected checked false")
	assert.Contains(t, err.Error(), "expected offset 3")
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("steps:\n  - down: [1, 2]\n    up: [1, 2]\n"))
	assert.ErrorContains(t, err, "more than one action")

	_, err = Read(strings.NewReader("steps:\n  - down: [1]\n"))
	assert.ErrorContains(t, err, "needs [x, y]")

	_, err = Read(strings.NewReader("steps:\n  - press: [1, 2]\n"))
	assert.Error(t, err)

	_, err = Read(strings.NewReader("steps:\n  - after: soon\n"))
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	on := true
	s := &Script{Name: "short", Steps: []Step{
		{Down: Point{1, 2}},
		{After: Duration(15 * time.Millisecond), Up: Point{1, 2}, Expect: &Expect{Checked: &on}},
	}}
	var b bytes.Buffer
	require.NoError(t, s.Write(&b))
	assert.Contains(t, b.String(), "after: 15ms")

	got, err := Read(&b)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
