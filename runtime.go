//go:build (android || ios) && cgo

package main

import (
	"context"
	goruntime "runtime"
	"sync"

	"instabug_bridge/api"
	"instabug_bridge/config"
	"instabug_bridge/contract"
	"instabug_bridge/core"
	"instabug_bridge/internal/logging"
	"instabug_bridge/locales"
	"instabug_bridge/pending"
	"instabug_bridge/runloop"
)

var (
	runtimeOnce     sync.Once
	runtimeSvc      *core.Service
	runtimeRouter   *api.Dispatcher
	runtimeRequests *pending.Registry
	runtimeStop     context.CancelFunc
)

type runtimeEmitter struct{}

// Emit forwards bridge messages (reports, screens, handler events) to the
// host listener callback.
func (runtimeEmitter) Emit(message contract.Message) {
	sendMessage(message)
}

// ensureRuntime loads configuration and wires the singleton Service,
// Dispatcher and loop used by exported symbols.
func ensureRuntime() {
	runtimeOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			logging.GetLogger().Error("load config, using defaults", "error", err)
			cfg = config.Defaults()
		}
		logging.SetLogPath(cfg.Log.Path)
		logging.SetRawLogLevel(cfg.Log.Level)
		logger := logging.GetLogger()

		var catalog *locales.Catalog
		if cfg.Strings.Dir != "" {
			catalog = locales.NewCatalog()
			if err := catalog.LoadDir(cfg.Strings.Dir); err != nil {
				logger.Error("load string overrides", "dir", cfg.Strings.Dir, "error", err)
			}
		}

		loop := runloop.New(nil)
		ctx, cancel := context.WithCancel(context.Background())
		runtimeStop = cancel
		go func() {
			if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("runloop stopped", "error", err)
			}
		}()

		runtimeRequests = pending.New()
		runtimeSvc = core.New(core.Options{
			Native:                &hostNative{requests: runtimeRequests},
			Loop:                  loop,
			Emitter:               runtimeEmitter{},
			Platform:              contract.Platform(goruntime.GOOS),
			Locale:                cfg.SDK.Locale,
			Catalog:               catalog,
			DisableNetworkLogging: !cfg.Network.Enabled,
			FlushSuperseded:       cfg.Screens.FlushSuperseded,
			RequestTimeout:        cfg.Native.RequestTimeout,
			Logger:                logger,
		})
		runtimeRouter = api.New(runtimeSvc)

		if cfg.SDK.Token != "" {
			runtimeSvc.Start(cfg.SDK.Token, cfg.InvocationEvents()...)
		}
	})
}

// getService returns the singleton core.Service.
func getService() *core.Service {
	ensureRuntime()
	return runtimeSvc
}

// getDispatcher returns the singleton API dispatcher (method routing).
func getDispatcher() *api.Dispatcher {
	ensureRuntime()
	return runtimeRouter
}

func getRequests() *pending.Registry {
	ensureRuntime()
	return runtimeRequests
}
