package fake_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"instabug_bridge/fake"
)

func TestClockFiresInDeadlineOrder(t *testing.T) {
	clock := fake.NewClock()
	start := clock.Now()

	var fired []string
	var firedAt []time.Duration
	record := func(name string) func() {
		return func() {
			fired = append(fired, name)
			firedAt = append(firedAt, clock.Now().Sub(start))
		}
	}
	clock.AfterFunc(300*time.Millisecond, record("c"))
	clock.AfterFunc(100*time.Millisecond, record("a"))
	clock.AfterFunc(100*time.Millisecond, record("b"))

	next, ok := clock.Next()
	require.True(t, ok)
	require.Equal(t, start.Add(100*time.Millisecond), next)

	clock.Advance(200 * time.Millisecond)
	require.Equal(t, []string{"a", "b"}, fired)
	require.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond}, firedAt)
	require.Equal(t, 1, clock.Waiting())

	clock.Advance(time.Second)
	require.Equal(t, []string{"a", "b", "c"}, fired)
	require.Equal(t, start.Add(1200*time.Millisecond), clock.Now())

	_, ok = clock.Next()
	require.False(t, ok)
}

func TestClockStop(t *testing.T) {
	clock := fake.NewClock()
	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop())
	clock.Advance(2 * time.Second)
	require.False(t, fired)
}
