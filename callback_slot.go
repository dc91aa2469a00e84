//go:build (android || ios) && cgo

package main

import (
	"sync"
	"unsafe"
)

type listenerHandle struct {
	ptr     unsafe.Pointer
	inUse   int
	retired bool
}

// listenerSlot holds the host's event listener. A replaced listener is
// released through release_object only once no message is still being
// delivered to it.
type listenerSlot struct {
	mu      sync.Mutex
	current *listenerHandle
}

// Swap installs ptr (nil clears the slot) and retires the previous listener.
func (s *listenerSlot) Swap(ptr unsafe.Pointer) {
	var next *listenerHandle
	if ptr != nil {
		next = &listenerHandle{ptr: ptr}
	}

	s.mu.Lock()
	prev := s.current
	s.current = next
	release := s.retireLocked(prev)
	s.mu.Unlock()

	if release != nil {
		releaseObject(release)
	}
}

// Borrow pins the current listener for one delivery. Every non-nil result
// must be handed back with Return.
func (s *listenerSlot) Borrow() *listenerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.inUse++
	}
	return s.current
}

func (s *listenerSlot) Return(h *listenerHandle) {
	if h == nil {
		return
	}
	s.mu.Lock()
	h.inUse--
	var release unsafe.Pointer
	if h.retired && h.inUse == 0 {
		release = h.ptr
	}
	s.mu.Unlock()

	if release != nil {
		releaseObject(release)
	}
}

func (s *listenerSlot) retireLocked(h *listenerHandle) unsafe.Pointer {
	if h == nil {
		return nil
	}
	h.retired = true
	if h.inUse > 0 {
		return nil
	}
	return h.ptr
}
