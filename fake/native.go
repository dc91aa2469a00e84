package fake

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"instabug_bridge/contract"
)

// ErrNoReply is returned by Native.Request when no reply was staged.
var ErrNoReply = errors.New("fake: no reply staged")

// Call is one recorded invocation of the native boundary.
type Call struct {
	Module contract.Module
	Method contract.Method
	Args   []any
}

type reply struct {
	data json.RawMessage
	err  error
}

// Native records every call made across the boundary and answers requests
// with staged replies.
type Native struct {
	mu      sync.Mutex
	calls   []Call
	replies map[contract.Method]reply
}

var _ contract.Native = (*Native)(nil)

func NewNative() *Native {
	return &Native{replies: make(map[contract.Method]reply)}
}

func (n *Native) Call(module contract.Module, method contract.Method, args ...any) {
	n.record(module, method, args)
}

func (n *Native) Request(ctx context.Context, module contract.Module, method contract.Method, args ...any) (json.RawMessage, error) {
	n.record(module, method, args)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n.mu.Lock()
	r, ok := n.replies[contract.Qualify(module, method)]
	n.mu.Unlock()
	if !ok {
		return nil, ErrNoReply
	}
	return r.data, r.err
}

// Reply stages v, JSON encoded, as the answer for method. Method may be
// module-qualified, see contract.Qualify.
func (n *Native) Reply(method contract.Method, v any) {
	data, err := json.Marshal(v)
	n.mu.Lock()
	defer n.mu.Unlock()
	n.replies[method] = reply{data: data, err: err}
}

// Fail stages err as the answer for method.
func (n *Native) Fail(method contract.Method, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.replies[method] = reply{err: err}
}

func (n *Native) Calls() []Call {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Call, len(n.calls))
	copy(out, n.calls)
	return out
}

// CallsTo returns the recorded calls to method, which may be module-qualified.
func (n *Native) CallsTo(method contract.Method) []Call {
	var out []Call
	for _, c := range n.Calls() {
		if contract.Qualify(c.Module, c.Method) == method {
			out = append(out, c)
		}
	}
	return out
}

// Screens returns the names reported through reportScreenChange, in order.
func (n *Native) Screens() []string {
	var out []string
	for _, c := range n.CallsTo(contract.ReportScreenChangeMethod) {
		if len(c.Args) > 0 {
			name, _ := c.Args[0].(string)
			out = append(out, name)
		}
	}
	return out
}

func (n *Native) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = nil
}

func (n *Native) record(module contract.Module, method contract.Method, args []any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, Call{Module: module, Method: method, Args: args})
}
