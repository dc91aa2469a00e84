package core

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"instabug_bridge/contract"
)

// LogVerbose appends message to the next report's logs. Falsy messages (nil,
// "", false, zero and NaN) are dropped and anything that is not a string is
// encoded as JSON first.
func (s *Service) LogVerbose(message any) {
	s.forwardLog(contract.LogVerboseMethod, message)
}

func (s *Service) LogInfo(message any) {
	s.forwardLog(contract.LogInfoMethod, message)
}

func (s *Service) LogDebug(message any) {
	s.forwardLog(contract.LogDebugMethod, message)
}

func (s *Service) LogError(message any) {
	s.forwardLog(contract.LogErrorMethod, message)
}

func (s *Service) LogWarn(message any) {
	s.forwardLog(contract.LogWarnMethod, message)
}

func (s *Service) ClearLogs() {
	s.call(contract.ClearLogsMethod)
}

func (s *Service) forwardLog(method contract.Method, message any) {
	text, ok := stringify(message)
	if !ok {
		return
	}
	s.call(method, text)
}

// stringify renders a log message. ok is false for falsy messages.
func stringify(message any) (text string, ok bool) {
	if falsy(message) {
		return "", false
	}
	switch m := message.(type) {
	case string:
		return m, true
	case json.RawMessage:
		var v any
		if err := json.Unmarshal(m, &v); err == nil {
			if falsy(v) {
				return "", false
			}
			if str, isStr := v.(string); isStr {
				return str, true
			}
		}
		return string(m), true
	case fmt.Stringer:
		return m.String(), true
	case error:
		return m.Error(), true
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Sprint(message), true
	}
	return string(data), true
}

// falsy reports whether message is nil, an empty string, false, a numeric
// zero or NaN.
func falsy(message any) bool {
	if message == nil {
		return true
	}
	if raw, isRaw := message.(json.RawMessage); isRaw {
		return len(raw) == 0
	}

	v := reflect.ValueOf(message)
	switch v.Kind() {
	case reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
