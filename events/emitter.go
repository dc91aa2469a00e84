// Package events fans named native callbacks out to subscribed listeners.
package events

import (
	"encoding/json"
	"sync"

	"go.uber.org/atomic"
)

// Poster schedules listener delivery. runloop.Loop implements it.
type Poster interface {
	Post(fn func())
}

type Listener func(payload json.RawMessage)

type entry struct {
	id uint64
	fn Listener
}

type Emitter struct {
	mu        sync.RWMutex
	poster    Poster
	nextID    uint64
	listeners map[string][]entry
}

// New creates an Emitter that delivers through poster. A nil poster
// delivers synchronously inside Emit.
func New(poster Poster) *Emitter {
	return &Emitter{
		poster:    poster,
		listeners: make(map[string][]entry),
	}
}

// Subscription is the handle returned by AddListener.
type Subscription struct {
	emitter *Emitter
	event   string
	id      uint64
	removed atomic.Bool
}

// Remove unsubscribes the listener. Calling it more than once is a no-op.
func (s *Subscription) Remove() {
	if !s.removed.CompareAndSwap(false, true) {
		return
	}
	s.emitter.remove(s.event, s.id)
}

func (s *Subscription) Event() string {
	return s.event
}

// AddListener subscribes fn to event. Listeners of one event run in the
// order they were added.
func (e *Emitter) AddListener(event string, fn Listener) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	e.listeners[event] = append(e.listeners[event], entry{id: e.nextID, fn: fn})
	return &Subscription{emitter: e, event: event, id: e.nextID}
}

// RemoveAllListeners drops every listener of event.
func (e *Emitter) RemoveAllListeners(event string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners, event)
}

func (e *Emitter) ListenerCount(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[event])
}

// Emit delivers payload to the listeners subscribed to event at the time of
// the call and returns how many were scheduled.
func (e *Emitter) Emit(event string, payload json.RawMessage) int {
	e.mu.RLock()
	snapshot := make([]Listener, 0, len(e.listeners[event]))
	for _, l := range e.listeners[event] {
		snapshot = append(snapshot, l.fn)
	}
	e.mu.RUnlock()

	if len(snapshot) == 0 {
		return 0
	}

	deliver := func() {
		for _, fn := range snapshot {
			fn(payload)
		}
	}
	if e.poster == nil {
		deliver()
	} else {
		e.poster.Post(deliver)
	}
	return len(snapshot)
}

func (e *Emitter) remove(event string, id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entries := e.listeners[event]
	for i, l := range entries {
		if l.id == id {
			e.listeners[event] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(e.listeners[event]) == 0 {
		delete(e.listeners, event)
	}
}
