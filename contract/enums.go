package contract

// Platform selects which native SDK flavour sits behind the boundary.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// InvocationEvent is the gesture or control that opens the SDK's UI.
type InvocationEvent string

const (
	InvocationEventNone            InvocationEvent = "invocationEventNone"
	InvocationEventShake           InvocationEvent = "invocationEventShake"
	InvocationEventScreenshot      InvocationEvent = "invocationEventScreenshot"
	InvocationEventTwoFingersSwipe InvocationEvent = "invocationEventTwoFingersSwipeLeft"
	InvocationEventFloatingButton  InvocationEvent = "invocationEventFloatingButton"
)

type ReproStepsMode string

const (
	ReproStepsEnabled                  ReproStepsMode = "reproStepsEnabled"
	ReproStepsDisabled                 ReproStepsMode = "reproStepsDisabled"
	ReproStepsEnabledWithNoScreenshots ReproStepsMode = "reproStepsEnabledWithNoScreenshots"
)

type DismissType string

const (
	DismissTypeSubmit        DismissType = "dismissTypeSubmit"
	DismissTypeCancel        DismissType = "dismissTypeCancel"
	DismissTypeAddAttachment DismissType = "dismissTypeAddAttachment"
)

type SdkDebugLogsLevel string

const (
	SdkDebugLogsLevelVerbose SdkDebugLogsLevel = "sdkDebugLogsLevelVerbose"
	SdkDebugLogsLevelDebug   SdkDebugLogsLevel = "sdkDebugLogsLevelDebug"
	SdkDebugLogsLevelError   SdkDebugLogsLevel = "sdkDebugLogsLevelError"
	SdkDebugLogsLevelNone    SdkDebugLogsLevel = "sdkDebugLogsLevelNone"
)

type ExtendedBugReportMode string

const (
	ExtendedBugReportEnabledWithRequiredFields ExtendedBugReportMode = "enabledWithRequiredFields"
	ExtendedBugReportEnabledWithOptionalFields ExtendedBugReportMode = "enabledWithOptionalFields"
	ExtendedBugReportDisabled                  ExtendedBugReportMode = "disabled"
)

// Locale is the SDK's own locale identifier. Use locales.Match to derive one
// from a BCP 47 tag.
type Locale string

const (
	LocaleArabic             Locale = "localeArabic"
	LocaleAzerbaijani        Locale = "localeAzerbaijani"
	LocaleChineseSimplified  Locale = "localeChineseSimplified"
	LocaleChineseTraditional Locale = "localeChineseTraditional"
	LocaleCzech              Locale = "localeCzech"
	LocaleDanish             Locale = "localeDanish"
	LocaleDutch              Locale = "localeDutch"
	LocaleEnglish            Locale = "localeEnglish"
	LocaleFrench             Locale = "localeFrench"
	LocaleGerman             Locale = "localeGerman"
	LocaleItalian            Locale = "localeItalian"
	LocaleJapanese           Locale = "localeJapanese"
	LocaleKorean             Locale = "localeKorean"
	LocalePolish             Locale = "localePolish"
	LocalePortugueseBrazil   Locale = "localePortugueseBrazil"
	LocalePortuguesePortugal Locale = "localePortuguesePortugal"
	LocaleRussian            Locale = "localeRussian"
	LocaleSpanish            Locale = "localeSpanish"
	LocaleSwedish            Locale = "localeSwedish"
	LocaleTurkish            Locale = "localeTurkish"
)

type ColorTheme string

const (
	ColorThemeLight ColorTheme = "colorThemeLight"
	ColorThemeDark  ColorTheme = "colorThemeDark"
)

type FloatingButtonEdge string

const (
	FloatingButtonEdgeLeft  FloatingButtonEdge = "rectMinXEdge"
	FloatingButtonEdgeRight FloatingButtonEdge = "rectMaxXEdge"
)

type Position string

const (
	PositionTopLeft     Position = "topLeft"
	PositionTopRight    Position = "topRight"
	PositionBottomLeft  Position = "bottomLeft"
	PositionBottomRight Position = "bottomRight"
)

type WelcomeMessageMode string

const (
	WelcomeMessageModeLive     WelcomeMessageMode = "welcomeMessageModeLive"
	WelcomeMessageModeBeta     WelcomeMessageMode = "welcomeMessageModeBeta"
	WelcomeMessageModeDisabled WelcomeMessageMode = "welcomeMessageModeDisabled"
)

type ReportType string

const (
	ReportTypeBug      ReportType = "bugReportingReportTypeBug"
	ReportTypeFeedback ReportType = "bugReportingReportTypeFeedback"
	ReportTypeQuestion ReportType = "bugReportingReportTypeQuestion"
)

type InvocationOption string

const (
	OptionEmailFieldHidden         InvocationOption = "optionEmailFieldHidden"
	OptionEmailFieldOptional       InvocationOption = "optionEmailFieldOptional"
	OptionCommentFieldRequired     InvocationOption = "optionCommentFieldRequired"
	OptionDisablePostSendingDialog InvocationOption = "optionDisablePostSendingDialog"
)

type ActionType string

const (
	ActionTypeAllActions          ActionType = "allActions"
	ActionTypeReportBug           ActionType = "reportBug"
	ActionTypeRequestNewFeature   ActionType = "requestNewFeature"
	ActionTypeAddCommentToFeature ActionType = "addCommentToFeature"
)

// StringKey identifies an overridable SDK UI string.
type StringKey string

const (
	StringShakeHint                    StringKey = "shakeHint"
	StringSwipeHint                    StringKey = "swipeHint"
	StringEdgeSwipeStartHint           StringKey = "edgeSwipeStartHint"
	StringStartAlertText               StringKey = "startAlertText"
	StringInvalidEmailMessage          StringKey = "invalidEmailMessage"
	StringInvalidCommentMessage        StringKey = "invalidCommentMessage"
	StringInvocationHeader             StringKey = "invocationHeader"
	StringReportQuestion               StringKey = "reportQuestion"
	StringReportBug                    StringKey = "reportBug"
	StringReportFeedback               StringKey = "reportFeedback"
	StringEmailFieldHint               StringKey = "emailFieldHint"
	StringCommentFieldHintForBugReport StringKey = "commentFieldHintForBugReport"
	StringAddVoiceMessage              StringKey = "addVoiceMessage"
	StringAddImageFromGallery          StringKey = "addImageFromGallery"
	StringAddExtraScreenshot           StringKey = "addExtraScreenshot"
	StringThankYouText                 StringKey = "thankYouText"
	StringConversationsHeaderTitle     StringKey = "conversationsHeaderTitle"
	StringDiscardAlertTitle            StringKey = "discardAlertTitle"
	StringDiscardAlertMessage          StringKey = "discardAlertMessage"
)

// StringKeys lists every overridable string, in declaration order.
var StringKeys = []StringKey{
	StringShakeHint,
	StringSwipeHint,
	StringEdgeSwipeStartHint,
	StringStartAlertText,
	StringInvalidEmailMessage,
	StringInvalidCommentMessage,
	StringInvocationHeader,
	StringReportQuestion,
	StringReportBug,
	StringReportFeedback,
	StringEmailFieldHint,
	StringCommentFieldHintForBugReport,
	StringAddVoiceMessage,
	StringAddImageFromGallery,
	StringAddExtraScreenshot,
	StringThankYouText,
	StringConversationsHeaderTitle,
	StringDiscardAlertTitle,
	StringDiscardAlertMessage,
}
