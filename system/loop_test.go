// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/toggle/events"
	"cogentcore.org/toggle/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop(t *testing.T) {
	var handled atomic.Int32
	lp := NewLoop(func(ev events.Event) {
		handled.Add(1)
		if ev.(*events.Pointer).ID == 99 {
			panic("bad handler")
		}
	})
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- lp.Run(ctx) }()

	for i := range 5 {
		lp.Send(events.NewPointer(events.PointerMove, i, math32.Vec2(float32(i), 0), time.Now()))
	}
	lp.Send(events.NewPointer(events.PointerMove, 99, math32.Vector2{}, time.Now()))
	assert.Eventually(t, func() bool { return handled.Load() == 6 }, time.Second, time.Millisecond)

	fired := make(chan struct{})
	var canceledFired atomic.Bool
	lp.RunOnMain(func() {
		lp.AfterFunc(5*time.Millisecond, func() { close(fired) })
		stop := lp.AfterFunc(5*time.Millisecond, func() { canceledFired.Store(true) })
		stop()
	})
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("scheduled function did not run")
	}

	ran := false
	lp.RunOnMain(func() { ran = true })
	assert.True(t, ran)

	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)
	assert.False(t, canceledFired.Load())

	// after the loop stops, nothing blocks
	lp.RunOnMain(func() { t.Error("must not run") })
}
