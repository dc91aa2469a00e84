// Package pending correlates asynchronous native requests with the replies
// the host delivers later on another thread.
package pending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrClosed         = errors.New("pending: registry closed")
	ErrUnknownRequest = errors.New("pending: unknown request")
)

// Reply is the host's answer to one request.
type Reply struct {
	Data json.RawMessage
	Err  error
}

type Registry struct {
	mu      sync.Mutex
	waiters map[string]chan Reply
	closed  bool
}

func New() *Registry {
	return &Registry{waiters: make(map[string]chan Reply)}
}

// Register allocates a request id and the channel its reply arrives on.
func (r *Registry) Register() (string, <-chan Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return "", nil, ErrClosed
	}
	id := uuid.NewString()
	ch := make(chan Reply, 1)
	r.waiters[id] = ch
	return id, ch, nil
}

// Resolve delivers the reply for id. Replies for ids that already timed out
// or were never issued return ErrUnknownRequest.
func (r *Registry) Resolve(id string, data json.RawMessage, err error) error {
	r.mu.Lock()
	ch, ok := r.waiters[id]
	delete(r.waiters, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRequest, id)
	}
	ch <- Reply{Data: data, Err: err}
	return nil
}

// Do registers a request, hands its id to send and waits for the reply or
// for ctx to end.
func (r *Registry) Do(ctx context.Context, send func(id string)) (json.RawMessage, error) {
	id, ch, err := r.Register()
	if err != nil {
		return nil, err
	}
	send(id)

	select {
	case reply := <-ch:
		return reply.Data, reply.Err
	case <-ctx.Done():
		r.forget(id)
		return nil, ctx.Err()
	}
}

// Len reports the number of requests still waiting for a reply.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.waiters)
}

// Close fails every outstanding request with ErrClosed and rejects new ones.
func (r *Registry) Close() {
	r.mu.Lock()
	waiters := r.waiters
	r.waiters = make(map[string]chan Reply)
	r.closed = true
	r.mu.Unlock()

	for _, ch := range waiters {
		ch <- Reply{Err: ErrClosed}
	}
}

func (r *Registry) forget(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.waiters, id)
}
