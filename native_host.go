//go:build (android || ios) && cgo

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"instabug_bridge/contract"
	"instabug_bridge/internal/logging"
	"instabug_bridge/pending"
)

// hostNative reaches the platform SDK through the callbacks registered in
// bridge.h. Arguments travel as a JSON array.
type hostNative struct {
	requests *pending.Registry
}

var _ contract.Native = (*hostNative)(nil)

func (n *hostNative) Call(module contract.Module, method contract.Method, args ...any) {
	payload, err := encodeArgs(args)
	if err != nil {
		logging.GetLogger().Error("encode native call", "method", string(contract.Qualify(module, method)), "error", err)
		return
	}
	nativeCall(string(module), string(method), payload)
}

func (n *hostNative) Request(ctx context.Context, module contract.Module, method contract.Method, args ...any) (json.RawMessage, error) {
	payload, err := encodeArgs(args)
	if err != nil {
		return nil, err
	}
	return n.requests.Do(ctx, func(id string) {
		nativeRequest(id, string(module), string(method), payload)
	})
}

func encodeArgs(args []any) (string, error) {
	if args == nil {
		args = []any{}
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("encode args: %w", err)
	}
	return string(data), nil
}
