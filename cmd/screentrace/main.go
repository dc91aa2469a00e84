// Command screentrace replays a recorded navigation script through the
// bridge in virtual time and prints every call that would reach the native
// SDK. It is meant for checking which screens a given sequence of host
// navigation events ends up reporting.
//
// Each script line is one JSON step:
//
//	{"at":"0s","kind":"start","token":"abc"}
//	{"at":"120ms","kind":"navigate","prev":{...},"current":{...}}
//	{"at":"1.5s","kind":"state","state":{...}}
//	{"at":"2s","kind":"appear","name":"Settings"}
//	{"at":"3s","kind":"report","name":"Manual"}
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"instabug_bridge/config"
	"instabug_bridge/contract"
	"instabug_bridge/internal/logging"
)

func main() {
	platform := pflag.StringP("platform", "p", "", "native platform to emulate: android|ios (default from config)")
	flush := pflag.Bool("flush-superseded", false, "report a pending screen immediately when a newer one replaces it")
	screensOnly := pflag.BoolP("screens", "s", false, "print reported screen names only")
	tail := pflag.Duration("tail", 0, "extra virtual time to run after the last step (default one debounce window)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logging.SetRawLogLevel(cfg.Log.Level)

	opts := replayOptions{
		Platform:        cfg.Platform(),
		FlushSuperseded: cfg.Screens.FlushSuperseded || *flush,
		ScreensOnly:     *screensOnly,
		Tail:            *tail,
	}
	if *platform != "" {
		opts.Platform = contract.Platform(*platform)
	}

	var in io.Reader = os.Stdin
	if path := pflag.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := replay(in, os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
