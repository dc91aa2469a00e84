package events_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"instabug_bridge/events"
	"instabug_bridge/fake"
	"instabug_bridge/runloop"
)

func TestEmitDeliversInRegistrationOrder(t *testing.T) {
	e := events.New(nil)

	var got []string
	e.AddListener("crash", func(payload json.RawMessage) { got = append(got, "first:"+string(payload)) })
	e.AddListener("crash", func(payload json.RawMessage) { got = append(got, "second:"+string(payload)) })
	e.AddListener("other", func(json.RawMessage) { t.Fatal("wrong event delivered") })

	require.Equal(t, 2, e.Emit("crash", json.RawMessage(`1`)))
	require.Equal(t, []string{"first:1", "second:1"}, got)
}

func TestEmitWithoutListenersIsNoop(t *testing.T) {
	e := events.New(nil)
	require.Zero(t, e.Emit("nobody", nil))
}

func TestSubscriptionRemove(t *testing.T) {
	e := events.New(nil)

	calls := 0
	sub := e.AddListener("report", func(json.RawMessage) { calls++ })
	keep := e.AddListener("report", func(json.RawMessage) { calls += 10 })
	require.Equal(t, 2, e.ListenerCount("report"))
	require.Equal(t, "report", sub.Event())

	sub.Remove()
	sub.Remove()
	require.Equal(t, 1, e.ListenerCount("report"))

	e.Emit("report", nil)
	require.Equal(t, 10, calls)

	keep.Remove()
	require.Zero(t, e.ListenerCount("report"))
}

func TestRemoveAllListeners(t *testing.T) {
	e := events.New(nil)
	e.AddListener("invoke", func(json.RawMessage) {})
	e.AddListener("invoke", func(json.RawMessage) {})

	e.RemoveAllListeners("invoke")
	require.Zero(t, e.ListenerCount("invoke"))
	require.Zero(t, e.Emit("invoke", nil))
}

func TestEmitDeliversOnLoop(t *testing.T) {
	loop := runloop.New(fake.NewClock())
	e := events.New(loop)

	delivered := false
	e.AddListener("dismiss", func(json.RawMessage) { delivered = true })

	e.Emit("dismiss", nil)
	require.False(t, delivered)
	require.Equal(t, 1, loop.Drain())
	require.True(t, delivered)
}

func TestListenerAddedDuringEmitIsNotCalled(t *testing.T) {
	e := events.New(nil)

	late := false
	e.AddListener("x", func(json.RawMessage) {
		e.AddListener("x", func(json.RawMessage) { late = true })
	})

	e.Emit("x", nil)
	require.False(t, late)
	require.Equal(t, 2, e.ListenerCount("x"))
}
