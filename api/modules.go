package api

import (
	"encoding/json"

	"instabug_bridge/contract"
)

type respond func(data any) contract.Response

// dispatchModule routes a module-qualified action.
func (d *Dispatcher) dispatchModule(module contract.Module, method contract.Method, data json.RawMessage, success, fail respond, invalid func(error) contract.Response) contract.Response {
	switch module {
	case contract.BugReportingModule:
		return d.dispatchBugReporting(method, data, success, fail, invalid)
	case contract.SessionReplayModule:
		enabled, err := decodeBool(data)
		if err != nil {
			return invalid(err)
		}
		replay := d.Service.SessionReplay
		switch method {
		case contract.SetEnabledMethod:
			replay.SetEnabled(enabled)
		case contract.SetNetworkLogsEnabledMethod:
			replay.SetNetworkLogsEnabled(enabled)
		case contract.SetInstabugLogsEnabledMethod:
			replay.SetInstabugLogsEnabled(enabled)
		case contract.SetUserStepsEnabledMethod:
			replay.SetUserStepsEnabled(enabled)
		default:
			return fail("unknown method")
		}
		return success(true)
	case contract.CrashReportingModule:
		if method != contract.SetEnabledMethod {
			return fail("unknown method")
		}
		enabled, err := decodeBool(data)
		if err != nil {
			return invalid(err)
		}
		d.Service.CrashReporting.SetEnabled(enabled)
		return success(true)
	default:
		return fail("unknown module")
	}
}

func (d *Dispatcher) dispatchBugReporting(method contract.Method, data json.RawMessage, success, fail respond, invalid func(error) contract.Response) contract.Response {
	br := d.Service.BugReporting
	switch method {
	case contract.SetEnabledMethod:
		enabled, err := decodeBool(data)
		if err != nil {
			return invalid(err)
		}
		br.SetEnabled(enabled)
	case contract.ShowMethod:
		var params contract.ShowReportParams
		if err := decodeJSON(data, &params); err != nil {
			return invalid(err)
		}
		br.Show(params.Type, params.Options)
	case contract.SetInvocationEventsMethod:
		var events []contract.InvocationEvent
		if err := decodeJSON(data, &events); err != nil {
			return invalid(err)
		}
		br.SetInvocationEvents(events)
	case contract.SetOptionsMethod:
		var options []contract.InvocationOption
		if err := decodeJSON(data, &options); err != nil {
			return invalid(err)
		}
		br.SetOptions(options)
	case contract.SetExtendedBugReportModeMethod:
		mode, err := decodeString(data)
		if err != nil {
			return invalid(err)
		}
		br.SetExtendedBugReportMode(contract.ExtendedBugReportMode(mode))
	case contract.SetReportTypesMethod:
		var types []contract.ReportType
		if err := decodeJSON(data, &types); err != nil {
			return invalid(err)
		}
		br.SetReportTypes(types)
	case contract.SetDisclaimerTextMethod:
		text, err := decodeString(data)
		if err != nil {
			return invalid(err)
		}
		br.SetDisclaimerText(text)
	case contract.SetCommentMinimumCharacterCountMethod:
		var params contract.CommentMinimumParams
		if err := decodeJSON(data, &params); err != nil {
			return invalid(err)
		}
		br.SetCommentMinimumCharacterCount(params.Limit, params.ReportTypes...)
	case contract.SetFloatingButtonEdgeMethod:
		var params contract.FloatingButtonEdgeParams
		if err := decodeJSON(data, &params); err != nil {
			return invalid(err)
		}
		br.SetFloatingButtonEdge(params.Edge, params.Offset)
	case contract.SetVideoRecordingButtonPositionMethod:
		position, err := decodeString(data)
		if err != nil {
			return invalid(err)
		}
		br.SetVideoRecordingFloatingButtonPosition(contract.Position(position))
	case contract.SetEnabledAttachmentTypesMethod:
		var params contract.AttachmentTypesParams
		if err := decodeJSON(data, &params); err != nil {
			return invalid(err)
		}
		br.SetEnabledAttachmentTypes(params.Screenshot, params.ExtraScreenshot, params.GalleryImage, params.ScreenRecording)
	case contract.SetAutoScreenRecordingEnabledMethod:
		enabled, err := decodeBool(data)
		if err != nil {
			return invalid(err)
		}
		br.SetAutoScreenRecordingEnabled(enabled)
	case contract.SetAutoScreenRecordingDurationMethod:
		seconds, err := decodeInt(data)
		if err != nil {
			return invalid(err)
		}
		br.SetAutoScreenRecordingDuration(seconds)
	case contract.SetViewHierarchyEnabledMethod:
		enabled, err := decodeBool(data)
		if err != nil {
			return invalid(err)
		}
		br.SetViewHierarchyEnabled(enabled)
	case contract.SetShakingThresholdForiPhoneMethod:
		threshold, err := decodeFloat(data)
		if err != nil {
			return invalid(err)
		}
		br.SetShakingThresholdForiPhone(threshold)
	case contract.SetShakingThresholdForiPadMethod:
		threshold, err := decodeFloat(data)
		if err != nil {
			return invalid(err)
		}
		br.SetShakingThresholdForiPad(threshold)
	case contract.SetShakingThresholdForAndroidMethod:
		threshold, err := decodeInt(data)
		if err != nil {
			return invalid(err)
		}
		br.SetShakingThresholdForAndroid(threshold)
	// Handlers only need toggling: the host is notified through messages.
	case contract.SetOnInvokeHandlerMethod:
		enabled, err := decodeBool(data)
		if err != nil {
			return invalid(err)
		}
		if enabled {
			br.SetOnInvokeHandler(func() {})
		} else {
			br.SetOnInvokeHandler(nil)
		}
	case contract.SetDidSelectPromptOptionHandlerMethod:
		enabled, err := decodeBool(data)
		if err != nil {
			return invalid(err)
		}
		if enabled {
			br.SetDidSelectPromptOptionHandler(func(string) {})
		} else {
			br.SetDidSelectPromptOptionHandler(nil)
		}
	case contract.SetOnSDKDismissedHandlerMethod:
		enabled, err := decodeBool(data)
		if err != nil {
			return invalid(err)
		}
		if enabled {
			br.SetOnSDKDismissedHandler(func(contract.DismissType, contract.ReportType) {})
		} else {
			br.SetOnSDKDismissedHandler(nil)
		}
	default:
		return fail("unknown method")
	}
	return success(true)
}
