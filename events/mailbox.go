// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Mailbox carries pointer events from host goroutines to the one
// goroutine that runs toggle logic. Any number of goroutines may
// [Mailbox.Post], but only the event goroutine may [Mailbox.Take] or
// [Mailbox.Drain]. Events posted by one goroutine are taken in the
// order they were posted. The zero value is ready to use.
type Mailbox struct {
	once sync.Once

	// sentinel is the first consumed slot; head starts out pointing at it.
	sentinel slot

	// head is the last slot taken, owned by the event goroutine.
	head *slot

	// tail is the most recently posted slot.
	tail atomic.Pointer[slot]

	pending atomic.Int64
}

// slot is one link in the mailbox chain.
type slot struct {
	next atomic.Pointer[slot]
	ev   Event
}

func (mb *Mailbox) init() {
	mb.once.Do(func() {
		mb.head = &mb.sentinel
		mb.tail.Store(&mb.sentinel)
	})
}

// Post appends the event to the mailbox. It never blocks.
func (mb *Mailbox) Post(ev Event) {
	mb.init()
	mb.pending.Add(1)
	s := &slot{ev: ev}
	prev := mb.tail.Swap(s)
	// A Take between the swap and this store sees the chain end at prev,
	// so s shows up on the next Take.
	prev.next.Store(s)
}

// Take removes and returns the oldest event, or nil if there is none
// ready yet.
func (mb *Mailbox) Take() Event {
	mb.init()
	next := mb.head.next.Load()
	if next == nil {
		return nil
	}
	ev := next.ev
	next.ev = nil
	mb.head = next
	mb.pending.Add(-1)
	return ev
}

// Pending returns the number of events posted but not yet taken.
func (mb *Mailbox) Pending() int {
	return int(mb.pending.Load())
}

// Drain takes every ready event in order, passing each one to fun.
// It returns the number of events delivered.
func (mb *Mailbox) Drain(fun func(ev Event)) int {
	n := 0
	for ev := mb.Take(); ev != nil; ev = mb.Take() {
		fun(ev)
		n++
	}
	return n
}
