// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// ListenerID identifies a listener added to [Listeners],
// for later removal.
type ListenerID uint64

type listener struct {
	id  ListenerID
	fun func(ev Event)
}

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured,
// registered on specific objects.
// The zero value is ready to use.
type Listeners struct {
	funcs  map[Types][]listener
	lastID ListenerID
}

// Add adds a function for the given type, returning an ID
// that can be passed to [Listeners.Remove].
func (ls *Listeners) Add(typ Types, fun func(ev Event)) ListenerID {
	if ls.funcs == nil {
		ls.funcs = make(map[Types][]listener)
	}
	ls.lastID++
	ls.funcs[typ] = append(ls.funcs[typ], listener{id: ls.lastID, fun: fun})
	return ls.lastID
}

// Remove removes the listener with the given ID,
// returning false if there was no such listener.
// It is safe to call from within a listener.
func (ls *Listeners) Remove(id ListenerID) bool {
	for typ, ets := range ls.funcs {
		for i, l := range ets {
			if l.id != id {
				continue
			}
			// copy so that a Call in progress keeps its own list
			nets := make([]listener, 0, len(ets)-1)
			nets = append(nets, ets[:i]...)
			nets = append(nets, ets[i+1:]...)
			if len(nets) == 0 {
				delete(ls.funcs, typ)
			} else {
				ls.funcs[typ] = nets
			}
			return true
		}
	}
	return false
}

// RemoveAll removes all listeners.
func (ls *Listeners) RemoveAll() {
	ls.funcs = nil
}

// Len returns the number of listeners for the given type.
func (ls *Listeners) Len(typ Types) int {
	return len(ls.funcs[typ])
}

// Call calls all functions for given event.
// It goes in _reverse_ order to the last functions added are the first called
// and it stops when the event is marked as Handled. This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := ls.funcs[ev.Type()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i].fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}
