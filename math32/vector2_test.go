// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.5)
	assert.Equal(t, Vector2{8.5, 8.5}, v)

	v.SetDim(Y, 2)
	assert.Equal(t, float32(8.5), v.Dim(X))
	assert.Equal(t, float32(2), v.Dim(Y))

	assert.Equal(t, Vector2{3, 4}, Vec2(-3, 4).Abs())
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, Vector2{}, Vec2(3, 4).DivScalar(0))
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-3, 0, 10))
	assert.Equal(t, float32(10), Clamp(13, 0, 10))
	assert.Equal(t, float32(4), Clamp(4, 0, 10))
	// degenerate range resolves to the lower bound
	assert.Equal(t, float32(0), Clamp(4, 0, -2))

	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	assert.Equal(t, float32(10), Lerp(0, 10, 1))
	assert.Equal(t, float32(2.5), FromFixed(fixed.I(2)+32))
}

func TestDims(t *testing.T) {
	var d Dims
	assert.NoError(t, d.UnmarshalText([]byte("vertical")))
	assert.Equal(t, Y, d)
	assert.Error(t, d.UnmarshalText([]byte("diagonal")))
	b, err := X.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "X", string(b))
}
