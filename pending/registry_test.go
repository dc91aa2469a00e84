package pending

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDoReturnsResolvedReply(t *testing.T) {
	r := New()

	data, err := r.Do(context.Background(), func(id string) {
		_, parseErr := uuid.Parse(id)
		require.NoError(t, parseErr)
		go func() {
			_ = r.Resolve(id, json.RawMessage(`["a","b"]`), nil)
		}()
	})
	require.NoError(t, err)
	require.JSONEq(t, `["a","b"]`, string(data))
	require.Zero(t, r.Len())
}

func TestDoReturnsHostError(t *testing.T) {
	r := New()
	hostErr := errors.New("native module missing")

	_, err := r.Do(context.Background(), func(id string) {
		require.NoError(t, r.Resolve(id, nil, hostErr))
	})
	require.ErrorIs(t, err, hostErr)
}

func TestDoTimesOutAndForgetsRequest(t *testing.T) {
	r := New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var issued string
	_, err := r.Do(ctx, func(id string) { issued = id })
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Zero(t, r.Len())

	err = r.Resolve(issued, nil, nil)
	require.ErrorIs(t, err, ErrUnknownRequest)
}

func TestCloseFailsOutstandingRequests(t *testing.T) {
	r := New()

	_, ch, err := r.Register()
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	r.Close()
	reply := <-ch
	require.ErrorIs(t, reply.Err, ErrClosed)

	_, _, err = r.Register()
	require.ErrorIs(t, err, ErrClosed)
}
