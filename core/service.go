package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"

	"instabug_bridge/contract"
	"instabug_bridge/events"
	"instabug_bridge/internal/logging"
	"instabug_bridge/locales"
	"instabug_bridge/runloop"
	"instabug_bridge/screen"
)

// DefaultRequestTimeout bounds getters that wait for the native SDK when
// Options.RequestTimeout is not set.
const DefaultRequestTimeout = 5 * time.Second

type Options struct {
	Native contract.Native
	Loop   *runloop.Loop

	// Events carries callbacks raised by the native SDK.
	Events *events.Emitter
	// Emitter forwards bridge messages to the host listener. Optional.
	Emitter contract.Emitter

	Platform contract.Platform

	// Locale is a BCP 47 tag applied on Start. Empty keeps the device locale.
	Locale string
	// Catalog supplies string overrides applied whenever the locale changes.
	Catalog *locales.Catalog

	DisableNetworkLogging bool
	FlushSuperseded       bool
	RequestTimeout        time.Duration
	Logger                *slog.Logger
}

type Service struct {
	native   contract.Native
	loop     *runloop.Loop
	events   *events.Emitter
	emitter  contract.Emitter
	platform contract.Platform
	catalog  *locales.Catalog
	timeout  time.Duration
	log      *slog.Logger

	startLocale    string
	networkLogging bool

	tracker *screen.Tracker
	started atomic.Bool
	locale  atomic.String

	subsMu sync.Mutex
	subs   map[string]*events.Subscription

	BugReporting   *BugReporting
	SessionReplay  *SessionReplay
	NetworkLogger  *NetworkLogger
	CrashReporting *CrashReporting
}

var _ contract.Service = (*Service)(nil)

// New creates a Service. Screen tracking is confined to opts.Loop, which the
// caller must run.
func New(opts Options) *Service {
	if opts.Loop == nil {
		opts.Loop = runloop.New(nil)
	}
	if opts.Events == nil {
		opts.Events = events.New(opts.Loop)
	}
	if opts.Platform == "" {
		opts.Platform = contract.PlatformAndroid
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.GetLogger()
	}

	s := &Service{
		native:         opts.Native,
		loop:           opts.Loop,
		events:         opts.Events,
		emitter:        opts.Emitter,
		platform:       opts.Platform,
		catalog:        opts.Catalog,
		timeout:        opts.RequestTimeout,
		log:            opts.Logger.With("platform", string(opts.Platform)),
		startLocale:    opts.Locale,
		networkLogging: !opts.DisableNetworkLogging,
		subs:           make(map[string]*events.Subscription),
	}
	s.tracker = screen.NewTracker(s.loop, screen.ReporterFunc(s.reportScreen), screen.Options{
		FlushSuperseded: opts.FlushSuperseded,
	})
	s.BugReporting = &BugReporting{svc: s}
	s.SessionReplay = &SessionReplay{svc: s}
	s.NetworkLogger = &NetworkLogger{svc: s}
	s.CrashReporting = &CrashReporting{svc: s}
	return s
}

// Events returns the emitter native callbacks are delivered through.
func (s *Service) Events() *events.Emitter {
	return s.events
}

func (s *Service) Platform() contract.Platform {
	return s.platform
}

// Started reports whether Start has been called.
func (s *Service) Started() bool {
	return s.started.Load()
}

// Start enables network logging, starts the native SDK and begins screen
// tracking with the initial screen.
func (s *Service) Start(token string, invocationEvents ...contract.InvocationEvent) {
	if invocationEvents == nil {
		invocationEvents = []contract.InvocationEvent{}
	}
	if s.networkLogging {
		s.NetworkLogger.SetEnabled(true)
	}
	s.call(contract.StartMethod, token, invocationEvents)

	if s.startLocale != "" {
		locale, ok := locales.Match(s.startLocale)
		if !ok {
			s.log.Warn("unsupported locale, using english", "locale", s.startLocale)
		}
		s.SetLocale(locale)
	}

	s.loop.Post(s.tracker.Start)
	s.started.Store(true)
	s.log.Info("sdk started", "invocationEvents", invocationEvents)
}

func (s *Service) SetUserData(data string) {
	s.call(contract.SetUserDataMethod, data)
}

// SetTrackUserSteps is iOS only.
func (s *Service) SetTrackUserSteps(enabled bool) {
	s.callOn(contract.PlatformIOS, contract.SetTrackUserStepsMethod, enabled)
}

// SetIBGLogPrintsToConsole is iOS only.
func (s *Service) SetIBGLogPrintsToConsole(enabled bool) {
	s.callOn(contract.PlatformIOS, contract.SetIBGLogPrintsToConsoleMethod, enabled)
}

func (s *Service) SetSessionProfilerEnabled(enabled bool) {
	s.call(contract.SetSessionProfilerEnabledMethod, enabled)
}

// SetSdkDebugLogsLevel is iOS only.
func (s *Service) SetSdkDebugLogsLevel(level contract.SdkDebugLogsLevel) {
	s.callOn(contract.PlatformIOS, contract.SetSdkDebugLogsLevelMethod, level)
}

// SetLocale switches the SDK UI language and applies the catalog's string
// overrides for it.
func (s *Service) SetLocale(locale contract.Locale) {
	s.locale.Store(string(locale))
	s.call(contract.SetLocaleMethod, locale)

	if s.catalog == nil {
		return
	}
	overrides := s.catalog.Overrides(locales.Tag(locale))
	for _, key := range contract.StringKeys {
		if value, ok := overrides[key]; ok {
			s.SetString(key, value)
		}
	}
}

// Locale returns the locale last passed to SetLocale.
func (s *Service) Locale() contract.Locale {
	return contract.Locale(s.locale.Load())
}

func (s *Service) SetColorTheme(theme contract.ColorTheme) {
	s.call(contract.SetColorThemeMethod, theme)
}

// SetPrimaryColor accepts "#RRGGBB" or "#AARRGGBB" and forwards the color as
// an ARGB integer.
func (s *Service) SetPrimaryColor(hex string) error {
	argb, err := parseColor(hex)
	if err != nil {
		return fmt.Errorf("%s: %w", contract.SetPrimaryColorMethod, err)
	}
	s.call(contract.SetPrimaryColorMethod, argb)
	return nil
}

func (s *Service) AppendTags(tags []string) {
	s.call(contract.AppendTagsMethod, tags)
}

func (s *Service) ResetTags() {
	s.call(contract.ResetTagsMethod)
}

// SetString overrides one SDK UI string.
func (s *Service) SetString(key contract.StringKey, value string) {
	s.call(contract.SetStringMethod, value, key)
}

func (s *Service) IdentifyUser(email, name string) {
	s.call(contract.IdentifyUserMethod, email, name)
}

func (s *Service) LogOut() {
	s.call(contract.LogOutMethod)
}

func (s *Service) LogUserEvent(name string) {
	s.call(contract.LogUserEventMethod, name)
}

func (s *Service) SetReproStepsMode(mode contract.ReproStepsMode) {
	s.call(contract.SetReproStepsModeMethod, mode)
}

// SetDebugEnabled is Android only.
func (s *Service) SetDebugEnabled(enabled bool) {
	s.callOn(contract.PlatformAndroid, contract.SetDebugEnabledMethod, enabled)
}

// Enable is Android only.
func (s *Service) Enable() {
	s.callOn(contract.PlatformAndroid, contract.EnableMethod)
}

// Disable is Android only.
func (s *Service) Disable() {
	s.callOn(contract.PlatformAndroid, contract.DisableMethod)
}

func (s *Service) ShowWelcomeMessage(mode contract.WelcomeMessageMode) {
	s.call(contract.ShowWelcomeMessageMethod, mode)
}

func (s *Service) SetWelcomeMessageMode(mode contract.WelcomeMessageMode) {
	s.call(contract.SetWelcomeMessageModeMethod, mode)
}

// AddFileAttachment attaches a file to the next report. The iOS SDK names
// the attachment itself, so name is only forwarded on Android.
func (s *Service) AddFileAttachment(path, name string) {
	if s.platform == contract.PlatformAndroid {
		s.call(contract.SetFileAttachmentMethod, path, name)
		return
	}
	s.call(contract.SetFileAttachmentMethod, path)
}

// AddPrivateView hides the view with the given native tag from screenshots,
// recordings and the view hierarchy.
func (s *Service) AddPrivateView(tag int) {
	s.call(contract.AddPrivateViewMethod, tag)
}

// SetPrivateView hides the view with the given native tag.
//
// Deprecated: use AddPrivateView.
func (s *Service) SetPrivateView(tag int) {
	s.AddPrivateView(tag)
}

func (s *Service) RemovePrivateView(tag int) {
	s.call(contract.RemovePrivateViewMethod, tag)
}

func (s *Service) Show() {
	s.call(contract.ShowMethod)
}

func (s *Service) CallPrivateAPI(name string, param any) {
	s.call(contract.CallPrivateAPIMethod, name, param)
}

func (s *Service) AddExperiments(experiments []string) {
	s.call(contract.AddExperimentsMethod, experiments)
}

func (s *Service) RemoveExperiments(experiments []string) {
	s.call(contract.RemoveExperimentsMethod, experiments)
}

func (s *Service) ClearAllExperiments() {
	s.call(contract.ClearAllExperimentsMethod)
}

func (s *Service) call(method contract.Method, args ...any) {
	s.callModule(contract.InstabugModule, method, args...)
}

func (s *Service) callModule(module contract.Module, method contract.Method, args ...any) {
	s.log.Debug("native call", "method", string(contract.Qualify(module, method)))
	s.native.Call(module, method, args...)
}

// callOn forwards the call only when running on platform.
func (s *Service) callOn(platform contract.Platform, method contract.Method, args ...any) {
	if s.platform != platform {
		s.log.Debug("skipping call for other platform", "method", string(method), "only", string(platform))
		return
	}
	s.call(method, args...)
}

// request asks the native SDK for a value and decodes the reply into out.
func (s *Service) request(ctx context.Context, module contract.Module, method contract.Method, out any, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.native.Request(ctx, module, method, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode reply: %w", method, err)
	}
	return nil
}

// emitMessage forwards a message to the host if an Emitter is set.
func (s *Service) emitMessage(kind contract.MessageType, data any) {
	if s.emitter == nil {
		return
	}
	s.emitter.Emit(contract.Message{Type: kind, Data: data})
}

// listen subscribes fn to a native event, replacing the listener previously
// installed through listen for that event. A nil fn only unsubscribes.
func (s *Service) listen(event string, fn events.Listener) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	if sub, ok := s.subs[event]; ok {
		sub.Remove()
		delete(s.subs, event)
	}
	if fn == nil {
		return
	}
	s.subs[event] = s.events.AddListener(event, fn)
}
