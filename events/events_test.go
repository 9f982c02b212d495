// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"testing"

	"cogentcore.org/scenegraph/events/key"
	"cogentcore.org/scenegraph/math32"
	"github.com/stretchr/testify/assert"
)

func TestListenersOrder(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.Add(PointerDown, func(ev Event) { calls = append(calls, "first") })
	ls.Add(PointerDown, func(ev Event) { calls = append(calls, "second") })
	ls.Call(NewPointer(PointerDown, Mouse, 1, Left, math32.Vec2(0, 0), 0))
	assert.Equal(t, []string{"second", "first"}, calls)

	calls = nil
	ls.Add(PointerDown, func(ev Event) {
		calls = append(calls, "handler")
		ev.SetHandled()
	})
	ls.Call(NewPointer(PointerDown, Mouse, 1, Left, math32.Vec2(0, 0), 0))
	assert.Equal(t, []string{"handler"}, calls)

	calls = nil
	ls.Call(NewPointer(PointerUp, Mouse, 1, Left, math32.Vec2(0, 0), 0))
	assert.Empty(t, calls)
}

func TestListenersRemove(t *testing.T) {
	var ls Listeners
	n := 0
	var id ListenerID
	id = ls.Add(KeyDown, func(ev Event) {
		n++
		ls.Remove(id)
	})
	other := ls.Add(KeyDown, func(ev Event) { n += 10 })
	assert.Equal(t, 2, ls.Len(KeyDown))

	ls.Call(NewKey(KeyDown, key.CodeSpacebar, 0))
	assert.Equal(t, 11, n)
	assert.Equal(t, 1, ls.Len(KeyDown))
	ls.Call(NewKey(KeyDown, key.CodeSpacebar, 0))
	assert.Equal(t, 21, n)

	assert.True(t, ls.Remove(other))
	assert.False(t, ls.Remove(other))
	assert.Equal(t, 0, ls.Len(KeyDown))

	ls.Add(KeyUp, func(ev Event) {})
	ls.RemoveAll()
	assert.Equal(t, 0, ls.Len(KeyUp))
}

func TestEventBase(t *testing.T) {
	var mods key.Modifiers
	mods.SetFlag(true, key.Control)
	ev := NewEvent(ContextMenu, mods)
	assert.Equal(t, ContextMenu, ev.Type())
	assert.True(t, ev.HasAnyModifier(key.Shift, key.Control))
	assert.False(t, ev.HasAnyModifier(key.Shift))
	assert.False(t, ev.IsDefaultPrevented())
	ev.PreventDefault()
	assert.True(t, ev.IsDefaultPrevented())
	assert.False(t, ev.Time().IsZero())
	assert.Contains(t, ev.String(), "ContextMenu")

	sc := NewScroll(math32.Vec2(1, 2), math32.Vec2(0, -100), 0)
	assert.Equal(t, Scroll, sc.Type())
	assert.Equal(t, DeltaPixel, sc.DeltaMode)
	assert.Contains(t, NewKey(KeyUp, key.CodeEscape, 0).String(), "Escape")
}

func TestQueue(t *testing.T) {
	var q Queue
	assert.Nil(t, q.Next())
	assert.Equal(t, 0, q.Len())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				q.Send(NewPointer(PointerMove, Touch, i, NoButton, math32.Vec2(0, 0), 0))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, q.Len())

	counts := map[int]int{}
	n := 0
	for ev := q.Next(); ev != nil; ev = q.Next() {
		counts[ev.(*Pointer).PointerID]++
		n++
	}
	assert.Equal(t, 100, n)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, map[int]int{0: 25, 1: 25, 2: 25, 3: 25}, counts)

	for i := 0; i < 3; i++ {
		q.Send(NewPointer(PointerMove, Mouse, MousePointerID, NoButton, math32.Vec2(float32(i), 0), 0))
	}
	var xs []float32
	assert.Equal(t, 3, q.Drain(func(ev Event) {
		xs = append(xs, ev.(*Pointer).Where.X)
	}))
	assert.Equal(t, []float32{0, 1, 2}, xs)

	// events sent while draining are delivered too
	q.Send(NewKey(KeyDown, key.CodeSpacebar, 0))
	assert.Equal(t, 2, q.Drain(func(ev Event) {
		if ev.Type() == KeyDown {
			q.Send(NewKey(KeyUp, key.CodeSpacebar, 0))
		}
	}))
	assert.Nil(t, q.Next())
}

func TestElement(t *testing.T) {
	el := NewElement(800, 600)
	assert.Equal(t, math32.Vec2(800, 600), el.Size())

	var got []Types
	var last math32.Vector2
	for _, typ := range []Types{PointerDown, PointerMove, PointerUp, Scroll, KeyDown, KeyUp} {
		el.AddListener(typ, func(ev Event) {
			got = append(got, ev.Type())
			if pe, ok := ev.(*Pointer); ok {
				last = pe.Where
			}
		})
	}

	el.MouseDrag(Left, math32.Vec2(0, 0), math32.Vec2(40, 20), 4, 0)
	assert.Equal(t, 6, el.Pending())
	assert.Empty(t, got)
	assert.Equal(t, 6, el.ProcessEvents())
	assert.Equal(t, []Types{PointerDown, PointerMove, PointerMove, PointerMove, PointerMove, PointerUp}, got)
	assert.Equal(t, math32.Vec2(40, 20), last)

	got = nil
	el.Wheel(10, 10, -100, 0)
	el.KeyPress(key.CodeUpArrow, 0)
	el.ProcessEvents()
	assert.Equal(t, []Types{Scroll, KeyDown, KeyUp}, got)

	el.SetPointerCapture(3)
	assert.True(t, el.HasPointerCapture(3))
	el.ReleasePointerCapture(3)
	assert.False(t, el.HasPointerCapture(3))
}
