package core_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"instabug_bridge/contract"
	"instabug_bridge/core"
	"instabug_bridge/locales"
	"instabug_bridge/screen"
)

func TestStartReportsInitialScreen(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)

	h.svc.Start("token", contract.InvocationEventShake)
	require.True(t, h.svc.Started())

	network := h.native.CallsTo(contract.SetNetworkLoggingEnabledMethod)
	require.Len(t, network, 1)
	require.Equal(t, []any{true}, network[0].Args)
	require.True(t, h.svc.NetworkLogger.Enabled())

	start := h.native.CallsTo(contract.StartMethod)
	require.Len(t, start, 1)
	require.Equal(t, []any{"token", []contract.InvocationEvent{contract.InvocationEventShake}}, start[0].Args)

	h.advance(screen.DebounceWindow - time.Millisecond)
	require.Empty(t, h.native.Screens())

	h.advance(time.Millisecond)
	require.Equal(t, []string{screen.InitialScreen}, h.native.Screens())

	msgs := h.host.ofType(contract.ScreenMessage)
	require.Len(t, msgs, 1)
	require.Equal(t, screen.InitialScreen, msgs[0].Data)
}

func TestStartWithoutNetworkLogging(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid, func(o *core.Options) {
		o.DisableNetworkLogging = true
	})

	h.svc.Start("token")

	require.Empty(t, h.native.CallsTo(contract.SetNetworkLoggingEnabledMethod))
	start := h.native.CallsTo(contract.StartMethod)
	require.Len(t, start, 1)
	require.Equal(t, []any{"token", []contract.InvocationEvent{}}, start[0].Args)
}

func TestStartAppliesLocaleOverrides(t *testing.T) {
	catalog := locales.NewCatalog()
	require.NoError(t, catalog.Add(language.German, map[contract.StringKey]string{
		contract.StringShakeHint: "Schütteln zum Melden",
	}))

	h := newHarness(t, contract.PlatformIOS, func(o *core.Options) {
		o.Locale = "de-DE"
		o.Catalog = catalog
	})
	h.svc.Start("token")

	locale := h.native.CallsTo(contract.SetLocaleMethod)
	require.Len(t, locale, 1)
	require.Equal(t, []any{contract.LocaleGerman}, locale[0].Args)
	require.Equal(t, contract.LocaleGerman, h.svc.Locale())

	strs := h.native.CallsTo(contract.SetStringMethod)
	require.Len(t, strs, 1)
	require.Equal(t, []any{"Schütteln zum Melden", contract.StringShakeHint}, strs[0].Args)
}

func TestNavigationBurstReportsSettledScreen(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)
	h.svc.Start("token")
	h.loop.Drain()

	h.svc.OnNavigationStateChange(stack(0, "Home"), stack(1, "Home", "Search"))
	h.advance(100 * time.Millisecond)
	h.svc.OnNavigationStateChange(stack(1, "Home", "Search"), stack(1, "Home", "Profile"))
	h.advance(100 * time.Millisecond)

	h.advance(screen.DebounceWindow)
	require.Equal(t, []string{"Profile"}, h.native.Screens())
}

func TestStateChangeReportsFullRoute(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)

	state := &contract.RouteState{Index: 0, Routes: []contract.Route{
		{Name: "Tabs", State: stack(1, "Feed", "Settings")},
	}}
	h.svc.OnStateChange(state)
	h.advance(screen.DebounceWindow)

	require.Equal(t, []string{"Tabs/Settings"}, h.native.Screens())
}

func TestComponentDidAppearSkipsFirstScreen(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)
	h.svc.Start("token")

	h.svc.ComponentDidAppear(contract.ComponentEvent{ComponentID: "c1", ComponentName: "Home"})
	h.svc.ComponentDidAppear(contract.ComponentEvent{ComponentID: "c2", ComponentName: "Home"})
	h.svc.ComponentDidAppear(contract.ComponentEvent{ComponentID: "c3", ComponentName: "Details"})
	h.loop.Drain()

	require.Equal(t, []string{"Details"}, h.native.Screens())
}

func TestReportScreenChangeIsImmediate(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)
	h.svc.Start("token")

	h.svc.ReportScreenChange("Checkout")
	h.loop.Drain()
	require.Equal(t, []string{"Checkout"}, h.native.Screens())

	h.advance(screen.DebounceWindow)
	require.Equal(t, []string{"Checkout", screen.InitialScreen}, h.native.Screens())
}

func TestPlatformGatedCalls(t *testing.T) {
	iosOnly := func(s *core.Service) {
		s.SetTrackUserSteps(true)
		s.SetIBGLogPrintsToConsole(true)
		s.SetSdkDebugLogsLevel(contract.SdkDebugLogsLevelVerbose)
	}
	androidOnly := func(s *core.Service) {
		s.SetDebugEnabled(true)
		s.Enable()
		s.Disable()
	}

	android := newHarness(t, contract.PlatformAndroid)
	iosOnly(android.svc)
	androidOnly(android.svc)
	require.Empty(t, android.native.CallsTo(contract.SetTrackUserStepsMethod))
	require.Empty(t, android.native.CallsTo(contract.SetIBGLogPrintsToConsoleMethod))
	require.Empty(t, android.native.CallsTo(contract.SetSdkDebugLogsLevelMethod))
	require.Len(t, android.native.CallsTo(contract.SetDebugEnabledMethod), 1)
	require.Len(t, android.native.CallsTo(contract.EnableMethod), 1)
	require.Len(t, android.native.CallsTo(contract.DisableMethod), 1)

	ios := newHarness(t, contract.PlatformIOS)
	iosOnly(ios.svc)
	androidOnly(ios.svc)
	require.Len(t, ios.native.CallsTo(contract.SetTrackUserStepsMethod), 1)
	require.Len(t, ios.native.CallsTo(contract.SetIBGLogPrintsToConsoleMethod), 1)
	require.Len(t, ios.native.CallsTo(contract.SetSdkDebugLogsLevelMethod), 1)
	require.Empty(t, ios.native.CallsTo(contract.SetDebugEnabledMethod))
	require.Empty(t, ios.native.CallsTo(contract.EnableMethod))
	require.Empty(t, ios.native.CallsTo(contract.DisableMethod))
}

func TestAddFileAttachment(t *testing.T) {
	android := newHarness(t, contract.PlatformAndroid)
	android.svc.AddFileAttachment("/tmp/log.txt", "log.txt")
	require.Equal(t, []any{"/tmp/log.txt", "log.txt"}, android.native.CallsTo(contract.SetFileAttachmentMethod)[0].Args)

	ios := newHarness(t, contract.PlatformIOS)
	ios.svc.AddFileAttachment("/tmp/log.txt", "log.txt")
	require.Equal(t, []any{"/tmp/log.txt"}, ios.native.CallsTo(contract.SetFileAttachmentMethod)[0].Args)
}

func TestLogsDropFalsyAndStringify(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)

	h.svc.LogInfo("")
	h.svc.LogInfo(nil)
	h.svc.LogInfo(0)
	h.svc.LogInfo(false)
	h.svc.LogInfo(json.RawMessage(`0`))
	h.svc.LogInfo("plain")
	h.svc.LogDebug(map[string]int{"count": 2})
	h.svc.LogError(errors.New("boom"))
	h.svc.LogWarn(3)
	h.svc.LogVerbose(json.RawMessage(`"quoted"`))

	require.Len(t, h.native.CallsTo(contract.LogInfoMethod), 1)
	require.Equal(t, []any{"plain"}, h.native.CallsTo(contract.LogInfoMethod)[0].Args)
	require.Equal(t, []any{`{"count":2}`}, h.native.CallsTo(contract.LogDebugMethod)[0].Args)
	require.Equal(t, []any{"boom"}, h.native.CallsTo(contract.LogErrorMethod)[0].Args)
	require.Equal(t, []any{"3"}, h.native.CallsTo(contract.LogWarnMethod)[0].Args)
	require.Equal(t, []any{"quoted"}, h.native.CallsTo(contract.LogVerboseMethod)[0].Args)
}

func TestSetUserAttributeValidation(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)

	err := h.svc.SetUserAttribute("", "value")
	require.ErrorIs(t, err, core.ErrInvalidParam)
	var paramErr *core.ParamError
	require.ErrorAs(t, err, &paramErr)
	require.Equal(t, "key", paramErr.Param)

	err = h.svc.SetUserAttribute("plan", "")
	require.True(t, core.IsInvalidParam(err))
	require.Empty(t, h.native.CallsTo(contract.SetUserAttributeMethod))

	require.NoError(t, h.svc.SetUserAttribute("plan", "pro"))
	require.Equal(t, []any{"plan", "pro"}, h.native.CallsTo(contract.SetUserAttributeMethod)[0].Args)
}

func TestRemoveUserAttributeValidation(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)

	require.ErrorIs(t, h.svc.RemoveUserAttribute(""), core.ErrInvalidParam)
	require.Empty(t, h.native.CallsTo(contract.RemoveUserAttributeMethod))

	require.NoError(t, h.svc.RemoveUserAttribute("plan"))
	require.Len(t, h.native.CallsTo(contract.RemoveUserAttributeMethod), 1)
}

func TestSetPrimaryColor(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)

	require.NoError(t, h.svc.SetPrimaryColor("#1D82DC"))
	require.NoError(t, h.svc.SetPrimaryColor("#1D82DC80"))
	require.ErrorIs(t, h.svc.SetPrimaryColor("blue"), core.ErrInvalidParam)
	require.ErrorIs(t, h.svc.SetPrimaryColor("#12345"), core.ErrInvalidParam)
	require.ErrorIs(t, h.svc.SetPrimaryColor("#GGGGGG"), core.ErrInvalidParam)

	calls := h.native.CallsTo(contract.SetPrimaryColorMethod)
	require.Len(t, calls, 2)
	require.Equal(t, []any{uint32(0xFF1D82DC)}, calls[0].Args)
	require.Equal(t, []any{uint32(0x801D82DC)}, calls[1].Args)
}

func TestSetStringForwardsValueFirst(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)
	h.svc.SetString(contract.StringReportBug, "File a bug")
	require.Equal(t, []any{"File a bug", contract.StringReportBug}, h.native.CallsTo(contract.SetStringMethod)[0].Args)
}

func TestGetters(t *testing.T) {
	h := newHarness(t, contract.PlatformIOS)
	ctx := context.Background()

	h.native.Reply(contract.GetTagsMethod, []string{"beta", "vip"})
	h.native.Reply(contract.GetUserAttributeMethod, "pro")
	h.native.Reply(contract.GetAllUserAttributesMethod, map[string]string{"plan": "pro"})
	h.native.Reply(contract.IsRunningLiveMethod, true)

	tags, err := h.svc.Tags(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"beta", "vip"}, tags)

	value, err := h.svc.UserAttribute(ctx, "plan")
	require.NoError(t, err)
	require.Equal(t, "pro", value)
	require.Equal(t, []any{"plan"}, h.native.CallsTo(contract.GetUserAttributeMethod)[0].Args)

	attrs, err := h.svc.UserAttributes(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"plan": "pro"}, attrs)

	live, err := h.svc.RunningLive(ctx)
	require.NoError(t, err)
	require.True(t, live)
}

func TestGetterPropagatesNativeError(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)
	boom := errors.New("boom")
	h.native.Fail(contract.GetTagsMethod, boom)

	_, err := h.svc.Tags(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestRunningLiveUnsupportedOnAndroid(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)

	_, err := h.svc.RunningLive(context.Background())
	require.ErrorIs(t, err, core.ErrUnsupported)
	require.Empty(t, h.native.CallsTo(contract.IsRunningLiveMethod))
}

func TestCallbackGettersDeliverOnLoop(t *testing.T) {
	h := newHarness(t, contract.PlatformIOS)
	h.native.Reply(contract.GetTagsMethod, []string{"beta"})
	h.native.Reply(contract.IsRunningLiveMethod, false)

	var tags []string
	var tagsErr error
	var liveCalled bool
	h.svc.GetTags(func(got []string, err error) {
		tags, tagsErr = got, err
	})
	h.svc.IsRunningLive(func(live bool, err error) {
		liveCalled = err == nil && !live
	})

	require.Eventually(t, func() bool {
		h.loop.Drain()
		return tags != nil && liveCalled
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, tagsErr)
	require.Equal(t, []string{"beta"}, tags)
}

func TestExperiments(t *testing.T) {
	h := newHarness(t, contract.PlatformAndroid)

	h.svc.AddExperiments([]string{"a", "b"})
	h.svc.RemoveExperiments([]string{"a"})
	h.svc.ClearAllExperiments()

	require.Equal(t, []any{[]string{"a", "b"}}, h.native.CallsTo(contract.AddExperimentsMethod)[0].Args)
	require.Equal(t, []any{[]string{"a"}}, h.native.CallsTo(contract.RemoveExperimentsMethod)[0].Args)
	require.Len(t, h.native.CallsTo(contract.ClearAllExperimentsMethod), 1)
}

func TestSetPrivateViewAddsPrivateView(t *testing.T) {
	h := newHarness(t, contract.PlatformIOS)

	h.svc.SetPrivateView(12)
	h.svc.AddPrivateView(13)

	require.Empty(t, h.native.CallsTo(contract.SetPrivateViewMethod))
	calls := h.native.CallsTo(contract.AddPrivateViewMethod)
	require.Len(t, calls, 2)
	require.Equal(t, []any{12}, calls[0].Args)
	require.Equal(t, []any{13}, calls[1].Args)
}
