package core

import (
	"encoding/json"

	"instabug_bridge/contract"
)

// BugReporting drives the IBGBugReporting native module.
type BugReporting struct {
	svc *Service
}

type dismissPayload struct {
	DismissType contract.DismissType `json:"dismissType"`
	ReportType  contract.ReportType  `json:"reportType"`
}

type promptOptionPayload struct {
	PromptOption string `json:"promptOption"`
}

func (b *BugReporting) call(method contract.Method, args ...any) {
	b.svc.callModule(contract.BugReportingModule, method, args...)
}

func (b *BugReporting) callOn(platform contract.Platform, method contract.Method, args ...any) {
	if b.svc.platform != platform {
		return
	}
	b.call(method, args...)
}

func (b *BugReporting) SetEnabled(enabled bool) {
	b.call(contract.SetEnabledMethod, enabled)
}

// Show opens the report composer for reportType with the given options.
func (b *BugReporting) Show(reportType contract.ReportType, options []contract.InvocationOption) {
	if options == nil {
		options = []contract.InvocationOption{}
	}
	b.call(contract.ShowMethod, reportType, options)
}

func (b *BugReporting) SetInvocationEvents(invocationEvents []contract.InvocationEvent) {
	b.call(contract.SetInvocationEventsMethod, invocationEvents)
}

func (b *BugReporting) SetOptions(options []contract.InvocationOption) {
	b.call(contract.SetOptionsMethod, options)
}

func (b *BugReporting) SetExtendedBugReportMode(mode contract.ExtendedBugReportMode) {
	b.call(contract.SetExtendedBugReportModeMethod, mode)
}

func (b *BugReporting) SetReportTypes(types []contract.ReportType) {
	b.call(contract.SetReportTypesMethod, types)
}

func (b *BugReporting) SetDisclaimerText(text string) {
	b.call(contract.SetDisclaimerTextMethod, text)
}

// SetCommentMinimumCharacterCount applies limit to the given report types,
// or to all of them when none are passed.
func (b *BugReporting) SetCommentMinimumCharacterCount(limit int, types ...contract.ReportType) {
	if types == nil {
		types = []contract.ReportType{}
	}
	b.call(contract.SetCommentMinimumCharacterCountMethod, limit, types)
}

func (b *BugReporting) SetFloatingButtonEdge(edge contract.FloatingButtonEdge, offset int) {
	b.call(contract.SetFloatingButtonEdgeMethod, edge, offset)
}

func (b *BugReporting) SetVideoRecordingFloatingButtonPosition(position contract.Position) {
	b.call(contract.SetVideoRecordingButtonPositionMethod, position)
}

func (b *BugReporting) SetEnabledAttachmentTypes(screenshot, extraScreenshot, galleryImage, screenRecording bool) {
	b.call(contract.SetEnabledAttachmentTypesMethod, screenshot, extraScreenshot, galleryImage, screenRecording)
}

func (b *BugReporting) SetAutoScreenRecordingEnabled(enabled bool) {
	b.call(contract.SetAutoScreenRecordingEnabledMethod, enabled)
}

// SetAutoScreenRecordingDuration caps automatic recordings, in seconds.
func (b *BugReporting) SetAutoScreenRecordingDuration(seconds int) {
	b.call(contract.SetAutoScreenRecordingDurationMethod, seconds)
}

func (b *BugReporting) SetViewHierarchyEnabled(enabled bool) {
	b.call(contract.SetViewHierarchyEnabledMethod, enabled)
}

// SetShakingThresholdForiPhone is iOS only.
func (b *BugReporting) SetShakingThresholdForiPhone(threshold float64) {
	b.callOn(contract.PlatformIOS, contract.SetShakingThresholdForiPhoneMethod, threshold)
}

// SetShakingThresholdForiPad is iOS only.
func (b *BugReporting) SetShakingThresholdForiPad(threshold float64) {
	b.callOn(contract.PlatformIOS, contract.SetShakingThresholdForiPadMethod, threshold)
}

// SetShakingThresholdForAndroid is Android only.
func (b *BugReporting) SetShakingThresholdForAndroid(threshold int) {
	b.callOn(contract.PlatformAndroid, contract.SetShakingThresholdForAndroidMethod, threshold)
}

// SetOnInvokeHandler runs fn on the loop whenever the SDK UI is about to
// open. A nil fn removes the handler.
func (b *BugReporting) SetOnInvokeHandler(fn func()) {
	if fn == nil {
		b.svc.listen(contract.OnInvokeHandlerEvent, nil)
		b.call(contract.SetOnInvokeHandlerMethod, false)
		return
	}
	b.svc.listen(contract.OnInvokeHandlerEvent, func(json.RawMessage) {
		b.svc.emitMessage(contract.InvokeMessage, nil)
		fn()
	})
	b.call(contract.SetOnInvokeHandlerMethod, true)
}

// SetOnSDKDismissedHandler runs fn on the loop after the SDK UI closes.
func (b *BugReporting) SetOnSDKDismissedHandler(fn func(dismissType contract.DismissType, reportType contract.ReportType)) {
	if fn == nil {
		b.svc.listen(contract.OnDismissHandlerEvent, nil)
		b.call(contract.SetOnSDKDismissedHandlerMethod, false)
		return
	}
	b.svc.listen(contract.OnDismissHandlerEvent, func(payload json.RawMessage) {
		var p dismissPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			b.svc.log.Error("dismiss handler", "error", err)
			return
		}
		b.svc.emitMessage(contract.DismissMessage, p)
		fn(p.DismissType, p.ReportType)
	})
	b.call(contract.SetOnSDKDismissedHandlerMethod, true)
}

// SetDidSelectPromptOptionHandler runs fn on the loop with the prompt option
// the user picked.
func (b *BugReporting) SetDidSelectPromptOptionHandler(fn func(option string)) {
	if fn == nil {
		b.svc.listen(contract.DidSelectPromptOptionEvent, nil)
		b.call(contract.SetDidSelectPromptOptionHandlerMethod, false)
		return
	}
	b.svc.listen(contract.DidSelectPromptOptionEvent, func(payload json.RawMessage) {
		option, err := decodePromptOption(payload)
		if err != nil {
			b.svc.log.Error("prompt option handler", "error", err)
			return
		}
		b.svc.emitMessage(contract.PromptOptionMessage, option)
		fn(option)
	})
	b.call(contract.SetDidSelectPromptOptionHandlerMethod, true)
}

// decodePromptOption accepts either {"promptOption": "..."} or a bare string.
func decodePromptOption(payload json.RawMessage) (string, error) {
	var p promptOptionPayload
	if err := json.Unmarshal(payload, &p); err == nil {
		return p.PromptOption, nil
	}
	var option string
	if err := json.Unmarshal(payload, &option); err != nil {
		return "", err
	}
	return option, nil
}
