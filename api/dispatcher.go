package api

import (
	"context"
	"encoding/json"
	"strings"

	"instabug_bridge/contract"
	"instabug_bridge/core"
	"instabug_bridge/locales"
)

type Dispatcher struct {
	Service *core.Service
}

// New creates a Dispatcher that routes contract.Action to Service.
func New(service *core.Service) *Dispatcher {
	return &Dispatcher{Service: service}
}

// Dispatch routes an Action to Service and builds a response. Methods
// qualified with a module name, e.g. "IBGBugReporting.setEnabled", are
// routed to that module.
func (d *Dispatcher) Dispatch(ctx context.Context, action contract.Action) contract.Response {
	response := contract.Response{
		ID:     action.ID,
		Method: action.Method,
		Code:   0,
	}

	fail := func(data any) contract.Response {
		response.Code = -1
		response.Data = data
		return response
	}

	success := func(data any) contract.Response {
		response.Code = 0
		response.Data = data
		return response
	}

	invalid := func(err error) contract.Response {
		return fail(string(action.Method) + ": invalid params: " + err.Error())
	}

	if module, method, ok := strings.Cut(string(action.Method), "."); ok {
		return d.dispatchModule(contract.Module(module), contract.Method(method), action.Data, success, fail, invalid)
	}

	s := d.Service
	switch action.Method {
	case contract.StartMethod:
		var params contract.StartParams
		if err := decodeJSON(action.Data, &params); err != nil {
			return invalid(err)
		}
		s.Start(params.Token, params.InvocationEvents...)
		return success(true)
	case contract.SetUserDataMethod:
		data, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetUserData(data)
		return success(true)
	case contract.SetTrackUserStepsMethod:
		enabled, err := decodeBool(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetTrackUserSteps(enabled)
		return success(true)
	case contract.SetIBGLogPrintsToConsoleMethod:
		enabled, err := decodeBool(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetIBGLogPrintsToConsole(enabled)
		return success(true)
	case contract.SetSessionProfilerEnabledMethod:
		enabled, err := decodeBool(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetSessionProfilerEnabled(enabled)
		return success(true)
	case contract.SetSdkDebugLogsLevelMethod:
		level, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetSdkDebugLogsLevel(contract.SdkDebugLogsLevel(level))
		return success(true)
	case contract.SetLocaleMethod:
		raw, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetLocale(resolveLocale(raw))
		return success(true)
	case contract.SetColorThemeMethod:
		theme, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetColorTheme(contract.ColorTheme(theme))
		return success(true)
	case contract.SetPrimaryColorMethod:
		color, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		if err := s.SetPrimaryColor(color); err != nil {
			return fail(err.Error())
		}
		return success(true)
	case contract.AppendTagsMethod:
		tags, err := decodeStrings(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.AppendTags(tags)
		return success(true)
	case contract.ResetTagsMethod:
		s.ResetTags()
		return success(true)
	case contract.GetTagsMethod:
		tags, err := s.Tags(ctx)
		if err != nil {
			return fail(err.Error())
		}
		return success(tags)
	case contract.SetStringMethod:
		var params contract.SetStringParams
		if err := decodeJSON(action.Data, &params); err != nil {
			return invalid(err)
		}
		s.SetString(params.Key, params.Value)
		return success(true)
	case contract.IdentifyUserMethod:
		var params contract.IdentifyUserParams
		if err := decodeJSON(action.Data, &params); err != nil {
			return invalid(err)
		}
		s.IdentifyUser(params.Email, params.Name)
		return success(true)
	case contract.LogOutMethod:
		s.LogOut()
		return success(true)
	case contract.LogUserEventMethod:
		name, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.LogUserEvent(name)
		return success(true)
	case contract.LogVerboseMethod:
		s.LogVerbose(action.Data)
		return success(true)
	case contract.LogInfoMethod:
		s.LogInfo(action.Data)
		return success(true)
	case contract.LogDebugMethod:
		s.LogDebug(action.Data)
		return success(true)
	case contract.LogErrorMethod:
		s.LogError(action.Data)
		return success(true)
	case contract.LogWarnMethod:
		s.LogWarn(action.Data)
		return success(true)
	case contract.ClearLogsMethod:
		s.ClearLogs()
		return success(true)
	case contract.SetReproStepsModeMethod:
		mode, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetReproStepsMode(contract.ReproStepsMode(mode))
		return success(true)
	case contract.SetUserAttributeMethod:
		var params contract.UserAttributeParams
		if err := decodeJSON(action.Data, &params); err != nil {
			return invalid(err)
		}
		var value string
		if len(params.Value) > 0 {
			if err := json.Unmarshal(params.Value, &value); err != nil {
				return fail((&core.ParamError{Op: string(action.Method), Param: "value"}).Error())
			}
		}
		if err := s.SetUserAttribute(params.Key, value); err != nil {
			return fail(err.Error())
		}
		return success(true)
	case contract.GetUserAttributeMethod:
		key, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		value, err := s.UserAttribute(ctx, key)
		if err != nil {
			return fail(err.Error())
		}
		return success(value)
	case contract.RemoveUserAttributeMethod:
		key, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		if err := s.RemoveUserAttribute(key); err != nil {
			return fail(err.Error())
		}
		return success(true)
	case contract.GetAllUserAttributesMethod:
		attrs, err := s.UserAttributes(ctx)
		if err != nil {
			return fail(err.Error())
		}
		return success(attrs)
	case contract.ClearAllUserAttributesMethod:
		s.ClearAllUserAttributes()
		return success(true)
	case contract.SetDebugEnabledMethod:
		enabled, err := decodeBool(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetDebugEnabled(enabled)
		return success(true)
	case contract.EnableMethod:
		s.Enable()
		return success(true)
	case contract.DisableMethod:
		s.Disable()
		return success(true)
	case contract.IsRunningLiveMethod:
		live, err := s.RunningLive(ctx)
		if err != nil {
			return fail(err.Error())
		}
		return success(live)
	case contract.ShowWelcomeMessageMethod:
		mode, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.ShowWelcomeMessage(contract.WelcomeMessageMode(mode))
		return success(true)
	case contract.SetWelcomeMessageModeMethod:
		mode, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.SetWelcomeMessageMode(contract.WelcomeMessageMode(mode))
		return success(true)
	case contract.SetFileAttachmentMethod:
		var params contract.FileAttachmentParams
		if err := decodeJSON(action.Data, &params); err != nil {
			return invalid(err)
		}
		s.AddFileAttachment(params.Path, params.Name)
		return success(true)
	case contract.AddPrivateViewMethod, contract.SetPrivateViewMethod:
		tag, err := decodeInt(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.AddPrivateView(tag)
		return success(true)
	case contract.RemovePrivateViewMethod:
		tag, err := decodeInt(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.RemovePrivateView(tag)
		return success(true)
	case contract.ShowMethod:
		s.Show()
		return success(true)
	case contract.CallPrivateAPIMethod:
		var params contract.PrivateAPIParams
		if err := decodeJSON(action.Data, &params); err != nil {
			return invalid(err)
		}
		s.CallPrivateAPI(params.Name, params.Param)
		return success(true)
	case contract.SetOnReportHandlerMethod:
		enabled, err := decodeBool(action.Data)
		if err != nil {
			return invalid(err)
		}
		if enabled {
			// The host sees each report as a ReportMessage.
			s.OnReportSubmitHandler(func(*core.Report) {})
		} else {
			s.OnReportSubmitHandler(nil)
		}
		return success(true)
	case contract.OnNavigationStateChangeMethod:
		var params contract.NavigationParams
		if err := decodeJSON(action.Data, &params); err != nil {
			return invalid(err)
		}
		s.OnNavigationStateChange(params.Prev, params.Current)
		return success(true)
	case contract.OnStateChangeMethod:
		var state contract.RouteState
		if err := decodeJSON(action.Data, &state); err != nil {
			return invalid(err)
		}
		s.OnStateChange(&state)
		return success(true)
	case contract.ComponentDidAppearMethod:
		var event contract.ComponentEvent
		if err := decodeJSON(action.Data, &event); err != nil {
			return invalid(err)
		}
		s.ComponentDidAppear(event)
		return success(true)
	case contract.ReportScreenChangeMethod:
		name, err := decodeString(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.ReportScreenChange(name)
		return success(true)
	case contract.AddExperimentsMethod:
		experiments, err := decodeStrings(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.AddExperiments(experiments)
		return success(true)
	case contract.RemoveExperimentsMethod:
		experiments, err := decodeStrings(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.RemoveExperiments(experiments)
		return success(true)
	case contract.ClearAllExperimentsMethod:
		s.ClearAllExperiments()
		return success(true)
	case contract.SetNetworkLoggingEnabledMethod:
		enabled, err := decodeBool(action.Data)
		if err != nil {
			return invalid(err)
		}
		s.NetworkLogger.SetEnabled(enabled)
		return success(true)
	default:
		return fail("unknown method")
	}
}

// resolveLocale accepts either an SDK locale ("localeGerman") or a BCP 47
// tag ("de-DE").
func resolveLocale(raw string) contract.Locale {
	if strings.HasPrefix(raw, "locale") {
		return contract.Locale(raw)
	}
	locale, _ := locales.Match(raw)
	return locale
}
