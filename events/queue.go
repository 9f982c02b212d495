// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO of events waiting to be delivered to the
// listeners of a surface. Input sources on any goroutine may
// [Queue.Send], while the frame loop takes events in order with
// [Queue.Next] or [Queue.Drain]. The zero value is an empty queue.
//
// It is a Michael-Scott queue with a dummy head node, whose nodes
// are recycled through a pool.
type Queue struct {
	once sync.Once
	head atomic.Pointer[queued]
	tail atomic.Pointer[queued]
	len  atomic.Int64
}

// queued is a node of a [Queue].
type queued struct {
	next atomic.Pointer[queued]
	ev   Event
}

var queuedPool = sync.Pool{
	New: func() any { return &queued{} },
}

func (q *Queue) init() {
	q.once.Do(func() {
		dummy := &queued{}
		q.head.Store(dummy)
		q.tail.Store(dummy)
	})
}

// Send adds the given event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.init()
	n := queuedPool.Get().(*queued)
	n.next.Store(nil)
	n.ev = ev
	for {
		tail := q.tail.Load()
		next := tail.next.Load()
		if tail != q.tail.Load() {
			continue
		}
		if next != nil {
			// another sender is mid-append: help move the tail along
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		if tail.next.CompareAndSwap(nil, n) {
			q.tail.CompareAndSwap(tail, n)
			q.len.Add(1)
			return
		}
	}
}

// Next removes and returns the event at the front of the queue,
// or nil if the queue is empty.
func (q *Queue) Next() Event {
	q.init()
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()
		if head != q.head.Load() {
			continue
		}
		if next == nil {
			return nil
		}
		if head == tail {
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		ev := next.ev
		if q.head.CompareAndSwap(head, next) {
			q.len.Add(-1)
			head.ev = nil
			queuedPool.Put(head)
			return ev
		}
	}
}

// Drain removes the events in the queue in order, calling fun with
// each, and returns how many there were. Events sent by fun are
// also delivered before Drain returns.
func (q *Queue) Drain(fun func(ev Event)) int {
	n := 0
	for ev := q.Next(); ev != nil; ev = q.Next() {
		fun(ev)
		n++
	}
	return n
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	return int(q.len.Load())
}
