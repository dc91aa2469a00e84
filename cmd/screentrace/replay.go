package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"instabug_bridge/contract"
	"instabug_bridge/core"
	"instabug_bridge/fake"
	"instabug_bridge/internal/logging"
	"instabug_bridge/runloop"
	"instabug_bridge/screen"
)

type replayOptions struct {
	Platform        contract.Platform
	FlushSuperseded bool
	ScreensOnly     bool
	Tail            time.Duration
	Logger          *slog.Logger
}

type offset time.Duration

func (o *offset) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("at: %w", err)
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("at: %w", err)
	}
	*o = offset(d)
	return nil
}

type step struct {
	At      offset               `json:"at"`
	Kind    string               `json:"kind"`
	Token   string               `json:"token"`
	Prev    *contract.RouteState `json:"prev"`
	Current *contract.RouteState `json:"current"`
	State   *contract.RouteState `json:"state"`
	Name    string               `json:"name"`
}

// printNative writes every native call as a JSON line stamped with the
// virtual time it happened at.
type printNative struct {
	w           io.Writer
	clock       *fake.Clock
	epoch       time.Time
	screensOnly bool
	err         error
}

type printedCall struct {
	At     string          `json:"at"`
	Module contract.Module `json:"module"`
	Method contract.Method `json:"method"`
	Args   []any           `json:"args"`
}

func (p *printNative) Call(module contract.Module, method contract.Method, args ...any) {
	if p.err != nil {
		return
	}
	at := p.clock.Now().Sub(p.epoch)
	if p.screensOnly {
		if method != contract.ReportScreenChangeMethod || len(args) == 0 {
			return
		}
		_, p.err = fmt.Fprintf(p.w, "%s\t%v\n", at, args[0])
		return
	}
	if args == nil {
		args = []any{}
	}
	line, err := json.Marshal(printedCall{At: at.String(), Module: module, Method: method, Args: args})
	if err != nil {
		p.err = err
		return
	}
	_, p.err = fmt.Fprintln(p.w, string(line))
}

func (p *printNative) Request(_ context.Context, module contract.Module, method contract.Method, args ...any) (json.RawMessage, error) {
	p.Call(module, method, args...)
	return json.RawMessage("null"), nil
}

type replayer struct {
	clock *fake.Clock
	loop  *runloop.Loop
	epoch time.Time
	svc   *core.Service
}

// advanceTo runs every timer due up to the virtual offset target, draining
// the loop after each so calls are stamped with the time they fired.
func (r *replayer) advanceTo(target time.Duration) {
	deadline := r.epoch.Add(target)
	r.loop.Drain()
	for {
		next, ok := r.clock.Next()
		if !ok || next.After(deadline) {
			break
		}
		r.clock.Advance(next.Sub(r.clock.Now()))
		r.loop.Drain()
	}
	if wait := deadline.Sub(r.clock.Now()); wait > 0 {
		r.clock.Advance(wait)
	}
	r.loop.Drain()
}

func (r *replayer) apply(s step) error {
	switch s.Kind {
	case "start":
		r.svc.Start(s.Token)
	case "navigate":
		r.svc.OnNavigationStateChange(s.Prev, s.Current)
	case "state":
		r.svc.OnStateChange(s.State)
	case "appear":
		r.svc.ComponentDidAppear(contract.ComponentEvent{ComponentName: s.Name})
	case "report":
		r.svc.ReportScreenChange(s.Name)
	default:
		return fmt.Errorf("unknown step kind %q", s.Kind)
	}
	r.loop.Drain()
	return nil
}

func replay(in io.Reader, out io.Writer, opts replayOptions) error {
	if opts.Tail <= 0 {
		opts.Tail = screen.DebounceWindow
	}
	if opts.Logger == nil {
		opts.Logger = logging.GetLogger()
	}

	clock := fake.NewClock()
	loop := runloop.New(clock)
	native := &printNative{w: out, clock: clock, epoch: clock.Now(), screensOnly: opts.ScreensOnly}
	r := &replayer{
		clock: clock,
		loop:  loop,
		epoch: clock.Now(),
		svc: core.New(core.Options{
			Native:          native,
			Loop:            loop,
			Platform:        opts.Platform,
			FlushSuperseded: opts.FlushSuperseded,
			Logger:          opts.Logger,
		}),
	}

	var last time.Duration
	scanner := bufio.NewScanner(in)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var s step
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		at := time.Duration(s.At)
		if at < last {
			return fmt.Errorf("line %d: step at %s is before %s", lineNo, at, last)
		}
		r.advanceTo(at)
		if err := r.apply(s); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		last = at
		if native.err != nil {
			return native.err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	r.advanceTo(last + opts.Tail)
	return native.err
}
