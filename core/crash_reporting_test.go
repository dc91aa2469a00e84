package core_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"instabug_bridge/contract"
)

type crashPayload struct {
	Message   string `json:"message"`
	EMessage  string `json:"e_message"`
	EName     string `json:"e_name"`
	OS        string `json:"os"`
	Platform  string `json:"platform"`
	Exception []struct {
		MethodName string `json:"methodName"`
	} `json:"exception"`
}

func decodeCrash(t *testing.T, args []any) crashPayload {
	t.Helper()
	require.Len(t, args, 1)
	raw, ok := args[0].(string)
	require.True(t, ok)
	var p crashPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

type checkoutError struct{}

func (checkoutError) Error() string { return "card declined" }
func (checkoutError) Name() string  { return "CheckoutError" }

func TestReportErrorSendsHandledCrash(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)

	h.svc.CrashReporting.ReportError(nil)
	h.svc.CrashReporting.ReportError(errors.New("boom"))
	h.svc.CrashReporting.ReportError(checkoutError{})

	calls := h.native.CallsTo(contract.Qualify(contract.CrashReportingModule, contract.SendHandledJSCrashMethod))
	require.Len(t, calls, 2)

	first := decodeCrash(t, calls[0].Args)
	require.Equal(t, "boom", first.EMessage)
	require.Equal(t, "*errors.errorString", first.EName)
	require.Equal(t, "android", first.OS)
	require.Equal(t, "go", first.Platform)
	require.NotEmpty(t, first.Exception)

	second := decodeCrash(t, calls[1].Args)
	require.Equal(t, "CheckoutError", second.EName)
	require.Equal(t, "CheckoutError - card declined", second.Message)
}

func TestRecoverSendsUnhandledCrashAndRepanics(t *testing.T) {
	h := newHarness(t, contract.PlatformIOS)

	require.PanicsWithValue(t, "kaboom", func() {
		defer h.svc.CrashReporting.Recover()
		panic("kaboom")
	})

	calls := h.native.CallsTo(contract.Qualify(contract.CrashReportingModule, contract.SendJSCrashMethod))
	require.Len(t, calls, 1)
	crash := decodeCrash(t, calls[0].Args)
	require.Equal(t, "kaboom", crash.EMessage)
	require.Equal(t, "ios", crash.OS)
}

func TestRecoverWithoutPanicIsNoop(t *testing.T) {
	h := newHarness(t, contract.PlatformIOS)

	require.NotPanics(t, func() {
		defer h.svc.CrashReporting.Recover()
	})
	require.Empty(t, h.native.Calls())
}
