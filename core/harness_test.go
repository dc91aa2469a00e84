package core_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"instabug_bridge/contract"
	"instabug_bridge/core"
	"instabug_bridge/fake"
	"instabug_bridge/runloop"
)

type hostRecorder struct {
	mu       sync.Mutex
	messages []contract.Message
}

func (h *hostRecorder) Emit(message contract.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, message)
}

func (h *hostRecorder) ofType(kind contract.MessageType) []contract.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []contract.Message
	for _, m := range h.messages {
		if m.Type == kind {
			out = append(out, m)
		}
	}
	return out
}

type harness struct {
	native *fake.Native
	clock  *fake.Clock
	loop   *runloop.Loop
	host   *hostRecorder
	svc    *core.Service
}

func newHarness(t *testing.T, platform contract.Platform, configure ...func(*core.Options)) *harness {
	t.Helper()
	h := &harness{
		native: fake.NewNative(),
		clock:  fake.NewClock(),
		host:   &hostRecorder{},
	}
	h.loop = runloop.New(h.clock)

	opts := core.Options{
		Native:         h.native,
		Loop:           h.loop,
		Emitter:        h.host,
		Platform:       platform,
		RequestTimeout: time.Second,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range configure {
		fn(&opts)
	}
	h.svc = core.New(opts)
	return h
}

// advance moves the fake clock and runs whatever became due on the loop.
func (h *harness) advance(d time.Duration) {
	h.loop.Drain()
	h.clock.Advance(d)
	h.loop.Drain()
}

// emit raises a native event and delivers it.
func (h *harness) emit(event, payload string) {
	h.svc.Events().Emit(event, []byte(payload))
	h.loop.Drain()
}

func stack(index int, names ...string) *contract.RouteState {
	state := &contract.RouteState{Index: index}
	for _, name := range names {
		state.Routes = append(state.Routes, contract.Route{Name: name})
	}
	return state
}
