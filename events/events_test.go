// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"testing"
	"time"

	"cogentcore.org/toggle/math32"
	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	var tp Types
	assert.True(t, tp.SetString("down"))
	assert.Equal(t, PointerDown, tp)
	assert.NoError(t, tp.UnmarshalText([]byte("PointerCancel")))
	assert.Equal(t, PointerCancel, tp)
	assert.Error(t, tp.UnmarshalText([]byte("hover")))

	assert.True(t, PointerUp.IsPointer())
	assert.False(t, Change.IsPointer())
	assert.Equal(t, "Change", Change.String())
}

func TestListeners(t *testing.T) {
	var ls Listeners
	var order []int
	ls.Add(Change, func(ev Event) { order = append(order, 1) })
	ls.Add(Change, func(ev Event) {
		order = append(order, 2)
		ev.SetHandled()
	})
	assert.True(t, ls.HasListeners(Change))
	assert.False(t, ls.HasListeners(PointerDown))

	ls.Call(NewStateChange(Change, true, time.Time{}))
	assert.Equal(t, []int{2}, order)

	// events of other types are not delivered
	ls.Call(NewStateChange(UnknownType, true, time.Time{}))
	assert.Equal(t, []int{2}, order)
}

func TestMailbox(t *testing.T) {
	mb := &Mailbox{}
	assert.Nil(t, mb.Take())

	now := time.Now()
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 25 {
				mb.Post(NewPointer(PointerMove, i, math32.Vec2(float32(j), 0), now))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, mb.Pending())

	last := map[int]float32{}
	n := mb.Drain(func(ev Event) {
		pe := ev.(*Pointer)
		if prev, ok := last[pe.ID]; ok {
			assert.Greater(t, pe.Pos.X, prev, "per-sender order is kept")
		}
		last[pe.ID] = pe.Pos.X
	})
	assert.Equal(t, 100, n)
	assert.Equal(t, 0, mb.Pending())
	assert.Nil(t, mb.Take())

	mb.Post(NewStateChange(Change, true, now))
	ev := mb.Take()
	if assert.NotNil(t, ev) {
		assert.Equal(t, Change, ev.Type())
	}
}
