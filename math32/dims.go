// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
)

var dimsNames = [...]string{X: "X", Y: "Y"}

// String returns the name of the dimension.
func (d Dims) String() string {
	if d < 0 || int(d) >= len(dimsNames) {
		return "Dims(?)"
	}
	return dimsNames[d]
}

// SetString sets the dimension from its name, which is
// "X" / "Y" or the layout aliases "horizontal" / "vertical".
func (d *Dims) SetString(s string) bool {
	switch s {
	case "X", "x", "horizontal":
		*d = X
	case "Y", "y", "vertical":
		*d = Y
	default:
		return false
	}
	return true
}

// MarshalText implements [encoding.TextMarshaler].
func (d Dims) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Dims) UnmarshalText(text []byte) error {
	if !d.SetString(string(text)) {
		return &DimsError{string(text)}
	}
	return nil
}

// DimsError is returned when a dimension name cannot be parsed.
type DimsError struct {
	Name string
}

func (e *DimsError) Error() string {
	return "math32: invalid dimension " + `"` + e.Name + `"`
}
