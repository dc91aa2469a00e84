package core

import (
	"context"
	"encoding/json"
	"fmt"

	"instabug_bridge/contract"
)

type InstabugLog struct {
	Log  string `json:"log"`
	Type string `json:"type"`
}

type FileAttachment struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// Report is the bug or crash report about to be sent. Mutators update the
// local copy and forward the change to the native report.
type Report struct {
	Tags            []string          `json:"tags"`
	ConsoleLogs     []string          `json:"consoleLogs"`
	InstabugLogs    []InstabugLog     `json:"instabugLogs"`
	UserAttributes  map[string]string `json:"userAttributes"`
	FileAttachments []FileAttachment  `json:"fileAttachments"`

	svc *Service
}

func (r *Report) AppendTag(tag string) {
	r.Tags = append(r.Tags, tag)
	r.svc.call(contract.AppendTagToReportMethod, tag)
}

func (r *Report) AppendConsoleLog(message string) {
	r.ConsoleLogs = append(r.ConsoleLogs, message)
	r.svc.call(contract.AppendConsoleLogToReportMethod, message)
}

func (r *Report) SetUserAttribute(key, value string) {
	if r.UserAttributes == nil {
		r.UserAttributes = make(map[string]string)
	}
	r.UserAttributes[key] = value
	r.svc.call(contract.SetUserAttributeToReportMethod, key, value)
}

func (r *Report) LogVerbose(message string) {
	r.appendLog("verbose", contract.LogVerboseToReportMethod, message)
}

func (r *Report) LogDebug(message string) {
	r.appendLog("debug", contract.LogDebugToReportMethod, message)
}

func (r *Report) LogInfo(message string) {
	r.appendLog("info", contract.LogInfoToReportMethod, message)
}

func (r *Report) LogWarn(message string) {
	r.appendLog("warn", contract.LogWarnToReportMethod, message)
}

func (r *Report) LogError(message string) {
	r.appendLog("error", contract.LogErrorToReportMethod, message)
}

func (r *Report) AddFileAttachmentWithURL(url, name string) {
	r.FileAttachments = append(r.FileAttachments, FileAttachment{URL: url, Name: name})
	r.svc.call(contract.AddFileAttachmentToReportMethod, url, name)
}

func (r *Report) appendLog(level string, method contract.Method, message string) {
	r.InstabugLogs = append(r.InstabugLogs, InstabugLog{Log: message, Type: level})
	r.svc.call(method, message)
}

func (s *Service) decodeReport(payload json.RawMessage) (*Report, error) {
	report := &Report{svc: s}
	if len(payload) == 0 {
		return report, nil
	}
	if err := json.Unmarshal(payload, report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}

// OnReportSubmitHandler runs handler on the loop right before a report is
// sent, letting it amend the report. On Android, JavaScript-level crashes
// raised through the native SDK are routed through handler as well before
// they are forwarded. A nil handler turns the hook off.
func (s *Service) OnReportSubmitHandler(handler func(report *Report)) {
	s.call(contract.SetOnReportHandlerMethod, handler != nil)

	if handler == nil {
		s.listen(contract.PreSendingHandlerEvent, nil)
		s.listen(contract.SendHandledCrashEvent, nil)
		s.listen(contract.SendUnhandledCrashEvent, nil)
		s.call(contract.SetPreSendingHandlerMethod, false)
		return
	}

	s.listen(contract.PreSendingHandlerEvent, func(payload json.RawMessage) {
		report, err := s.decodeReport(payload)
		if err != nil {
			s.log.Error("pre-sending handler", "error", err)
			return
		}
		s.emitMessage(contract.ReportMessage, report)
		handler(report)
	})

	if s.platform == contract.PlatformAndroid {
		s.listen(contract.SendHandledCrashEvent, func(payload json.RawMessage) {
			go s.forwardCrash(contract.SendHandledJSCrashMethod, payload, handler)
		})
		s.listen(contract.SendUnhandledCrashEvent, func(payload json.RawMessage) {
			go s.forwardCrash(contract.SendJSCrashMethod, payload, handler)
		})
	}

	s.call(contract.SetPreSendingHandlerMethod, true)
}

// forwardCrash fetches the pending report, hands it to handler on the loop
// and then sends the crash. The crash is dropped if the report cannot be
// fetched.
func (s *Service) forwardCrash(method contract.Method, crash json.RawMessage, handler func(*Report)) {
	var raw json.RawMessage
	if err := s.request(context.Background(), contract.InstabugModule, contract.GetReportMethod, &raw); err != nil {
		s.log.Error("fetch report for crash", "method", string(method), "error", err)
		return
	}
	report, err := s.decodeReport(raw)
	if err != nil {
		s.log.Error("fetch report for crash", "method", string(method), "error", err)
		return
	}

	s.loop.Post(func() {
		handler(report)
		s.call(method, string(crash))
	})
}
