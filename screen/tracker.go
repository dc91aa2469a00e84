// Package screen reports the settled screen of the host application to the
// native SDK. Navigation signals arrive faster than screens settle during
// transitions, so every observation restarts a fixed debounce window and only
// the screen still pending when the window closes is reported.
//
// A Tracker is confined to a single cooperative loop: every method must be
// called from the loop that runs its scheduled reports.
package screen

import (
	"time"

	"instabug_bridge/runloop"
)

const (
	// InitialScreen is reported when nothing navigates within the first
	// debounce window after Start.
	InitialScreen = "Initial Screen"

	// DebounceWindow is how long a screen must stay pending before it is
	// reported.
	DebounceWindow = 1000 * time.Millisecond
)

// Reporter receives settled screen names.
type Reporter interface {
	ReportScreen(name string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(name string)

func (f ReporterFunc) ReportScreen(name string) {
	f(name)
}

// Scheduler runs fn on the tracker's loop after d. runloop.Loop implements it.
type Scheduler interface {
	After(d time.Duration, fn func()) runloop.Timer
}

type Options struct {
	// FlushSuperseded reports a pending non-initial screen immediately when a
	// newer screen replaces it, instead of dropping it.
	FlushSuperseded bool
}

type Tracker struct {
	sched           Scheduler
	sink            Reporter
	flushSuperseded bool

	pending    string
	hasPending bool

	lastReported string
	hasReported  bool

	// awaitingFirstAppear is armed by Start; the next component appearance
	// is recorded without being reported.
	awaitingFirstAppear bool

	// generation tags scheduled reports; a report only fires if no newer
	// observation happened since it was scheduled.
	generation uint64
}

func NewTracker(sched Scheduler, sink Reporter, opts Options) *Tracker {
	return &Tracker{
		sched:           sched,
		sink:            sink,
		flushSuperseded: opts.FlushSuperseded,
	}
}

// Start seeds the tracker with InitialScreen and schedules its report.
func (t *Tracker) Start() {
	t.awaitingFirstAppear = true
	t.setPending(InitialScreen)
}

// Observe records name as the screen the host navigated to and reports it
// once it has been pending for a full DebounceWindow.
func (t *Tracker) Observe(name string) {
	if t.hasPending && name == t.pending {
		return
	}
	if !t.hasPending && t.hasReported && name == t.lastReported {
		return
	}

	if t.flushSuperseded && t.hasPending && t.pending != InitialScreen {
		t.report(t.pending)
	}
	t.setPending(name)
}

// ObserveNow reports name immediately, for hosts that signal screen
// appearance only once it has settled. Any pending screen is dropped since
// the host has already moved past it. The first appearance after Start is
// recorded as current without being reported.
func (t *Tracker) ObserveNow(name string) {
	if t.awaitingFirstAppear {
		t.awaitingFirstAppear = false
		t.lastReported = name
		t.hasReported = true
		return
	}
	if t.hasReported && name == t.lastReported {
		return
	}

	if t.hasPending {
		t.clearPending()
	}
	t.report(name)
}

// Report forwards name unconditionally and leaves the tracker state alone.
func (t *Tracker) Report(name string) {
	t.sink.ReportScreen(name)
}

// Pending returns the screen waiting for its debounce window to close.
func (t *Tracker) Pending() (string, bool) {
	return t.pending, t.hasPending
}

// LastReported returns the last screen the tracker reported or recorded.
func (t *Tracker) LastReported() (string, bool) {
	return t.lastReported, t.hasReported
}

// Generation returns the current observation generation.
func (t *Tracker) Generation() uint64 {
	return t.generation
}

func (t *Tracker) setPending(name string) {
	t.pending = name
	t.hasPending = true
	t.generation++
	gen := t.generation
	t.sched.After(DebounceWindow, func() {
		t.fire(gen)
	})
}

func (t *Tracker) clearPending() {
	t.pending = ""
	t.hasPending = false
	t.generation++
}

func (t *Tracker) fire(gen uint64) {
	if gen != t.generation || !t.hasPending {
		return
	}
	name := t.pending
	t.pending = ""
	t.hasPending = false
	t.report(name)
}

func (t *Tracker) report(name string) {
	t.lastReported = name
	t.hasReported = true
	t.sink.ReportScreen(name)
}
