//go:build (android || ios) && cgo

package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unsafe"

	"instabug_bridge/contract"
	"instabug_bridge/internal/logging"
)

var eventListenerSlot listenerSlot

// invokeAction is the host entrypoint. It runs asynchronously and returns a JSON {id, method, data, code}.
// It uses recover to prevent panics from crashing the process.
//
//export invokeAction
func invokeAction(callback unsafe.Pointer, paramsChar *C.char) {
	params := takeCString(paramsChar)

	var action contract.Action
	if err := json.Unmarshal([]byte(params), &action); err != nil {
		(&hostReply{
			Response: contract.Response{Code: -1, Data: err.Error()},
			callback: callback,
		}).deliver()
		return
	}

	go func(action contract.Action, callback unsafe.Pointer) {
		sent := false
		defer func() {
			if r := recover(); r != nil {
				logging.GetLogger().Error("action panicked", "method", string(action.Method), "panic", fmt.Sprint(r))
				if !sent {
					(&hostReply{
						Response: contract.Response{
							ID:     action.ID,
							Method: action.Method,
							Code:   -1,
							Data:   fmt.Sprintf("panic recovered: %v", r),
						},
						callback: callback,
					}).deliver()
				}
			}
		}()

		resp := getDispatcher().Dispatch(context.Background(), action)
		(&hostReply{Response: resp, callback: callback}).deliver()
		sent = true
	}(action, callback)
}

// setEventListener sets the message listener callback (reports, screens,
// handler events). When replaced, the old callback is released after
// in-flight deliveries complete.
//
//export setEventListener
func setEventListener(listener unsafe.Pointer) {
	eventListenerSlot.Swap(listener)
}

// sendMessage sends a contract.Message to the current listener callback.
func sendMessage(message contract.Message) {
	handle := eventListenerSlot.Borrow()
	if handle == nil {
		return
	}
	defer eventListenerSlot.Return(handle)

	(&hostReply{
		Response: contract.Response{Method: contract.MessageMethod, Data: message},
		callback: handle.ptr,
	}).deliver()
}

// emitNativeEvent delivers a callback raised by the native SDK, such as
// IBGpreSendingHandler, to the bridge's listeners. payload is JSON.
//
//export emitNativeEvent
func emitNativeEvent(nameChar, payloadChar *C.char) {
	name := takeCString(nameChar)
	payload := takeCString(payloadChar)
	if payload == "" {
		payload = "null"
	}
	if n := getService().Events().Emit(name, json.RawMessage(payload)); n == 0 {
		logging.GetLogger().Debug("native event without listeners", "event", name)
	}
}

// resolveNativeRequest answers a request issued through native_request.
// A non-empty errChar fails the request with that message.
//
//export resolveNativeRequest
func resolveNativeRequest(idChar, dataChar, errChar *C.char) {
	id := takeCString(idChar)
	data := takeCString(dataChar)
	msg := takeCString(errChar)

	var err error
	if msg != "" {
		err = errors.New(msg)
	}
	if resolveErr := getRequests().Resolve(id, json.RawMessage(data), err); resolveErr != nil {
		logging.GetLogger().Warn("late native reply", "error", resolveErr)
	}
}

// shutdown stops the loop, fails outstanding native requests and closes the
// log file. The library cannot be used afterwards.
//
//export shutdown
func shutdown() {
	ensureRuntime()
	runtimeStop()
	runtimeRequests.Close()
	logging.CloseLogger()
}
