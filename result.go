//go:build (android || ios) && cgo

package main

import (
	"encoding/json"
	"unsafe"

	"instabug_bridge/contract"
	"instabug_bridge/internal/logging"
)

// hostReply is the JSON envelope passed to host callbacks, both for action
// responses and for listener messages.
type hostReply struct {
	contract.Response
	callback unsafe.Pointer
}

// deliver encodes the reply and hands it to the callback. Action callbacks
// are single-use and released afterwards; the listener is not.
func (r *hostReply) deliver() {
	data, err := json.Marshal(r.Response)
	if err != nil {
		logging.GetLogger().Error("encode host reply", "method", string(r.Method), "error", err)
		// Keep the envelope shape even when Data cannot be encoded.
		data, err = json.Marshal(contract.Response{
			ID:     r.ID,
			Method: r.Method,
			Data:   err.Error(),
			Code:   -1,
		})
		if err != nil {
			data = []byte(`{"code":-1}`)
		}
	}

	invokeResult(r.callback, string(data))
	if r.Method != contract.MessageMethod {
		releaseObject(r.callback)
	}
}
