//go:build (android || ios) && cgo

package main

//#include "bridge.h"
import "C"
import "unsafe"

// releaseObject releases a host-owned handle (for example, a callback pointer).
func releaseObject(obj unsafe.Pointer) {
	C.release_object(obj)
}

// invokeResult sends a JSON result (or an error message) to the host callback.
// The host must not keep the C string pointer after the callback returns.
func invokeResult(callback unsafe.Pointer, data string) {
	s := C.CString(data)
	defer C.free(unsafe.Pointer(s))
	C.invoke_result(callback, s)
}

// nativeCall forwards a fire-and-forget SDK call; args is a JSON array.
func nativeCall(module, method, args string) {
	cModule, cMethod, cArgs := C.CString(module), C.CString(method), C.CString(args)
	defer C.free(unsafe.Pointer(cModule))
	defer C.free(unsafe.Pointer(cMethod))
	defer C.free(unsafe.Pointer(cArgs))
	C.native_call(cModule, cMethod, cArgs)
}

// nativeRequest asks the host for a value. The host answers later through
// resolveNativeRequest with the same id.
func nativeRequest(id, module, method, args string) {
	cID, cModule := C.CString(id), C.CString(module)
	cMethod, cArgs := C.CString(method), C.CString(args)
	defer C.free(unsafe.Pointer(cID))
	defer C.free(unsafe.Pointer(cModule))
	defer C.free(unsafe.Pointer(cMethod))
	defer C.free(unsafe.Pointer(cArgs))
	C.native_request(cID, cModule, cMethod, cArgs)
}

// takeCString converts a host C string to Go string and frees it via free_string.
func takeCString(s *C.char) string {
	if s == nil {
		return ""
	}
	defer C.free_string(s)
	return C.GoString(s)
}
