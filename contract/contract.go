package contract

import (
	"context"
	"encoding/json"
)

// Method names a bridge operation. The same vocabulary is used for host actions
// routed by the dispatcher and for calls forwarded to the native SDK.
type Method string

const (
	MessageMethod Method = "message"

	StartMethod                     Method = "start"
	SetUserDataMethod               Method = "setUserData"
	SetTrackUserStepsMethod         Method = "setTrackUserSteps"
	SetIBGLogPrintsToConsoleMethod  Method = "setIBGLogPrintsToConsole"
	SetSessionProfilerEnabledMethod Method = "setSessionProfilerEnabled"
	SetSdkDebugLogsLevelMethod      Method = "setSdkDebugLogsLevel"
	SetLocaleMethod                 Method = "setLocale"
	SetColorThemeMethod             Method = "setColorTheme"
	SetPrimaryColorMethod           Method = "setPrimaryColor"
	AppendTagsMethod                Method = "appendTags"
	ResetTagsMethod                 Method = "resetTags"
	GetTagsMethod                   Method = "getTags"
	SetStringMethod                 Method = "setString"
	IdentifyUserMethod              Method = "identifyUser"
	LogOutMethod                    Method = "logOut"
	LogUserEventMethod              Method = "logUserEvent"
	LogVerboseMethod                Method = "logVerbose"
	LogInfoMethod                   Method = "logInfo"
	LogDebugMethod                  Method = "logDebug"
	LogErrorMethod                  Method = "logError"
	LogWarnMethod                   Method = "logWarn"
	ClearLogsMethod                 Method = "clearLogs"
	SetReproStepsModeMethod         Method = "setReproStepsMode"
	SetUserAttributeMethod          Method = "setUserAttribute"
	GetUserAttributeMethod          Method = "getUserAttribute"
	RemoveUserAttributeMethod       Method = "removeUserAttribute"
	GetAllUserAttributesMethod      Method = "getAllUserAttributes"
	ClearAllUserAttributesMethod    Method = "clearAllUserAttributes"
	SetDebugEnabledMethod           Method = "setDebugEnabled"
	EnableMethod                    Method = "enable"
	DisableMethod                   Method = "disable"
	IsRunningLiveMethod             Method = "isRunningLive"
	ShowWelcomeMessageMethod        Method = "showWelcomeMessageWithMode"
	SetWelcomeMessageModeMethod     Method = "setWelcomeMessageMode"
	SetFileAttachmentMethod         Method = "setFileAttachment"
	AddPrivateViewMethod            Method = "addPrivateView"
	RemovePrivateViewMethod         Method = "removePrivateView"
	SetPrivateViewMethod            Method = "setPrivateView"
	ShowMethod                      Method = "show"
	SetOnReportHandlerMethod        Method = "setOnReportHandler"
	SetPreSendingHandlerMethod      Method = "setPreSendingHandler"
	GetReportMethod                 Method = "getReport"
	SendHandledJSCrashMethod        Method = "sendHandledJSCrash"
	SendJSCrashMethod               Method = "sendJSCrash"
	CallPrivateAPIMethod            Method = "callPrivateApi"
	OnNavigationStateChangeMethod   Method = "onNavigationStateChange"
	OnStateChangeMethod             Method = "onStateChange"
	ComponentDidAppearMethod        Method = "componentDidAppear"
	ReportScreenChangeMethod        Method = "reportScreenChange"
	AddExperimentsMethod            Method = "addExperiments"
	RemoveExperimentsMethod         Method = "removeExperiments"
	ClearAllExperimentsMethod       Method = "clearAllExperiments"
	SetNetworkLoggingEnabledMethod  Method = "setNetworkLoggingEnabled"

	// Report mutators, forwarded while a pre-sending handler runs.
	AppendTagToReportMethod         Method = "appendTagToReport"
	AppendConsoleLogToReportMethod  Method = "appendConsoleLogToReport"
	SetUserAttributeToReportMethod  Method = "setUserAttributeToReport"
	LogVerboseToReportMethod        Method = "logVerboseToReport"
	LogDebugToReportMethod          Method = "logDebugToReport"
	LogInfoToReportMethod           Method = "logInfoToReport"
	LogWarnToReportMethod           Method = "logWarnToReport"
	LogErrorToReportMethod          Method = "logErrorToReport"
	AddFileAttachmentToReportMethod Method = "addFileAttachmentWithURLToReport"

	// Module-qualified methods, see Qualify.
	SetEnabledMethod                      Method = "setEnabled"
	SetInvocationEventsMethod             Method = "setInvocationEvents"
	SetOptionsMethod                      Method = "setOptions"
	SetExtendedBugReportModeMethod        Method = "setExtendedBugReportMode"
	SetReportTypesMethod                  Method = "setReportTypes"
	SetDisclaimerTextMethod               Method = "setDisclaimerText"
	SetCommentMinimumCharacterCountMethod Method = "setCommentMinimumCharacterCount"
	SetFloatingButtonEdgeMethod           Method = "setFloatingButtonEdge"
	SetVideoRecordingButtonPositionMethod Method = "setVideoRecordingFloatingButtonPosition"
	SetEnabledAttachmentTypesMethod       Method = "setEnabledAttachmentTypes"
	SetAutoScreenRecordingEnabledMethod   Method = "setAutoScreenRecordingEnabled"
	SetAutoScreenRecordingDurationMethod  Method = "setAutoScreenRecordingDuration"
	SetViewHierarchyEnabledMethod         Method = "setViewHierarchyEnabled"
	SetShakingThresholdForiPhoneMethod    Method = "setShakingThresholdForiPhone"
	SetShakingThresholdForiPadMethod      Method = "setShakingThresholdForiPad"
	SetShakingThresholdForAndroidMethod   Method = "setShakingThresholdForAndroid"
	SetOnInvokeHandlerMethod              Method = "setOnInvokeHandler"
	SetDidSelectPromptOptionHandlerMethod Method = "setDidSelectPromptOptionHandler"
	SetOnSDKDismissedHandlerMethod        Method = "setOnSDKDismissedHandler"
	SetNetworkLogsEnabledMethod           Method = "setNetworkLogsEnabled"
	SetInstabugLogsEnabledMethod          Method = "setInstabugLogsEnabled"
	SetUserStepsEnabledMethod             Method = "setUserStepsEnabled"
)

// Module names a native module behind the boundary.
type Module string

const (
	InstabugModule       Module = "Instabug"
	BugReportingModule   Module = "IBGBugReporting"
	CrashReportingModule Module = "IBGCrashReporting"
	SessionReplayModule  Module = "IBGSessionReplay"
	APMModule            Module = "IBGAPM"
)

// Qualify prefixes a method with its module for host actions that target a
// module other than Instabug, e.g. "IBGBugReporting.setEnabled".
func Qualify(module Module, method Method) Method {
	if module == InstabugModule {
		return method
	}
	return Method(string(module) + "." + string(method))
}

// Events emitted by the native SDK towards the bridge.
const (
	PreSendingHandlerEvent     = "IBGpreSendingHandler"
	SendHandledCrashEvent      = "IBGSendHandledJSCrash"
	SendUnhandledCrashEvent    = "IBGSendUnhandledJSCrash"
	OnInvokeHandlerEvent       = "IBGpreInvocationHandler"
	OnDismissHandlerEvent      = "IBGpostInvocationHandler"
	DidSelectPromptOptionEvent = "IBGDidSelectPromptOptionHandler"
)

type MessageType string

const (
	LogMessage          MessageType = "log"
	ReportMessage       MessageType = "report"
	InvokeMessage       MessageType = "invoke"
	DismissMessage      MessageType = "dismiss"
	PromptOptionMessage MessageType = "promptOption"
	ScreenMessage       MessageType = "screen"
)

type Action struct {
	ID     string          `json:"id"`
	Method Method          `json:"method"`
	Data   json.RawMessage `json:"data"`
}

type Response struct {
	ID     string `json:"id"`
	Method Method `json:"method"`
	Data   any    `json:"data"`
	Code   int    `json:"code"`
}

type Message struct {
	Type MessageType `json:"type"`
	Data any         `json:"data"`
}

type StartParams struct {
	Token            string            `json:"token"`
	InvocationEvents []InvocationEvent `json:"invocation-events"`
}

type UserAttributeParams struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type IdentifyUserParams struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type FileAttachmentParams struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

type SetStringParams struct {
	Key   StringKey `json:"key"`
	Value string    `json:"value"`
}

type PrivateAPIParams struct {
	Name  string `json:"name"`
	Param any    `json:"param"`
}

type NavigationParams struct {
	Prev    *RouteState `json:"prev"`
	Current *RouteState `json:"current"`
}

type ShowReportParams struct {
	Type    ReportType         `json:"type"`
	Options []InvocationOption `json:"options"`
}

type CommentMinimumParams struct {
	Limit       int          `json:"limit"`
	ReportTypes []ReportType `json:"reportTypes"`
}

type FloatingButtonEdgeParams struct {
	Edge   FloatingButtonEdge `json:"edge"`
	Offset int                `json:"offset"`
}

type AttachmentTypesParams struct {
	Screenshot      bool `json:"screenshot"`
	ExtraScreenshot bool `json:"extraScreenshot"`
	GalleryImage    bool `json:"galleryImage"`
	ScreenRecording bool `json:"screenRecording"`
}

// Route is one entry of a navigator's route list. State holds the nested
// navigator state when the route hosts one.
type Route struct {
	Key   string      `json:"key,omitempty"`
	Name  string      `json:"name"`
	State *RouteState `json:"state,omitempty"`
}

// RouteState is the host navigation state tree.
type RouteState struct {
	Index  int     `json:"index"`
	Routes []Route `json:"routes"`
}

// ComponentEvent describes an imperative screen-lifecycle appearance.
type ComponentEvent struct {
	ComponentID   string         `json:"componentId"`
	ComponentName string         `json:"componentName"`
	PassProps     map[string]any `json:"passProps,omitempty"`
}

// Emitter delivers bridge messages to the host listener.
type Emitter interface {
	Emit(message Message)
}

// Native is the opaque platform SDK boundary. Call is fire-and-forget;
// Request awaits a reply from the native side.
type Native interface {
	Call(module Module, method Method, args ...any)
	Request(ctx context.Context, module Module, method Method, args ...any) (json.RawMessage, error)
}

// Service is the unified API surface exposed to the host.
type Service interface {
	Start(token string, events ...InvocationEvent)
	SetUserData(data string)
	SetTrackUserSteps(enabled bool)
	SetIBGLogPrintsToConsole(enabled bool)
	SetSessionProfilerEnabled(enabled bool)
	SetSdkDebugLogsLevel(level SdkDebugLogsLevel)
	SetLocale(locale Locale)
	SetColorTheme(theme ColorTheme)
	SetPrimaryColor(hex string) error

	AppendTags(tags []string)
	ResetTags()
	Tags(ctx context.Context) ([]string, error)
	SetString(key StringKey, value string)

	IdentifyUser(email, name string)
	LogOut()
	LogUserEvent(name string)
	LogVerbose(message any)
	LogInfo(message any)
	LogDebug(message any)
	LogError(message any)
	LogWarn(message any)
	ClearLogs()
	SetReproStepsMode(mode ReproStepsMode)

	SetUserAttribute(key, value string) error
	UserAttribute(ctx context.Context, key string) (string, error)
	RemoveUserAttribute(key string) error
	UserAttributes(ctx context.Context) (map[string]string, error)
	ClearAllUserAttributes()

	SetDebugEnabled(enabled bool)
	Enable()
	Disable()
	RunningLive(ctx context.Context) (bool, error)

	ShowWelcomeMessage(mode WelcomeMessageMode)
	SetWelcomeMessageMode(mode WelcomeMessageMode)
	AddFileAttachment(path, name string)
	AddPrivateView(tag int)
	RemovePrivateView(tag int)
	Show()
	CallPrivateAPI(name string, param any)

	OnNavigationStateChange(prev, current *RouteState)
	OnStateChange(state *RouteState)
	ComponentDidAppear(event ComponentEvent)
	ReportScreenChange(name string)

	AddExperiments(experiments []string)
	RemoveExperiments(experiments []string)
	ClearAllExperiments()
}
