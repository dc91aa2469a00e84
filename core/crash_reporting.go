package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"instabug_bridge/contract"
)

// CrashReporting drives the IBGCrashReporting native module.
type CrashReporting struct {
	svc *Service
}

type stackFrame struct {
	MethodName string `json:"methodName"`
	FileName   string `json:"fileName"`
	LineNumber int    `json:"lineNumber"`
}

type crashReport struct {
	Message   string       `json:"message"`
	EMessage  string       `json:"e_message"`
	EName     string       `json:"e_name"`
	OS        string       `json:"os"`
	Platform  string       `json:"platform"`
	Exception []stackFrame `json:"exception"`
}

func (c *CrashReporting) SetEnabled(enabled bool) {
	c.svc.callModule(contract.CrashReportingModule, contract.SetEnabledMethod, enabled)
}

// ReportError sends err as a handled crash.
func (c *CrashReporting) ReportError(err error) {
	if err == nil {
		return
	}
	c.send(contract.SendHandledJSCrashMethod, err, 3)
}

// Recover reports a panic as an unhandled crash and re-panics. Use it
// directly with defer:
//
//	defer svc.CrashReporting.Recover()
func (c *CrashReporting) Recover() {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	c.send(contract.SendJSCrashMethod, err, 4)
	panic(r)
}

func (c *CrashReporting) send(method contract.Method, err error, skip int) {
	data, mErr := json.Marshal(c.buildCrash(err, skip+1))
	if mErr != nil {
		c.svc.log.Error("encode crash", "error", mErr)
		return
	}
	c.svc.callModule(contract.CrashReportingModule, method, string(data))
}

func (c *CrashReporting) buildCrash(err error, skip int) crashReport {
	name := fmt.Sprintf("%T", err)
	var named interface{ Name() string }
	if errors.As(err, &named) {
		name = named.Name()
	}

	return crashReport{
		Message:   name + " - " + err.Error(),
		EMessage:  err.Error(),
		EName:     name,
		OS:        string(c.svc.platform),
		Platform:  "go",
		Exception: callers(skip + 1),
	}
}

func callers(skip int) []stackFrame {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])

	out := make([]stackFrame, 0, n)
	for {
		frame, more := frames.Next()
		out = append(out, stackFrame{
			MethodName: frame.Function,
			FileName:   frame.File,
			LineNumber: frame.Line,
		})
		if !more {
			break
		}
	}
	return out
}
