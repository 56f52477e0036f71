// oscplay plays a TOML oscillator patch through the system audio output.
package main

import (
	"flag"
	"os"
	"os/signal"
	"time"

	log "github.com/golang/glog"

	"github.com/alexdrymonitis/sigosc"
	"github.com/alexdrymonitis/sigosc/internal/patch"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a TOML patch; the built-in demo patch when empty")
		backendName = flag.String("backend", "oto", "output backend: oto|portaudio")
		seconds     = flag.Float64("seconds", 0, "playing time in seconds; overrides the patch duration when > 0")
	)
	flag.Parse()
	defer log.Flush()

	cfg := patch.Default()
	if *configPath != "" {
		var err error
		if cfg, err = patch.Load(*configPath); err != nil {
			log.Exitf("failed to load patch: %v", err)
		}
	}
	if *seconds > 0 {
		cfg.Duration = *seconds
	}

	backend, err := sigosc.ParseBackend(*backendName)
	if err != nil {
		log.Exit(err)
	}
	srv, err := patch.Build(cfg)
	if err != nil {
		log.Exitf("failed to build patch: %v", err)
	}
	pl, err := sigosc.NewPlayer(srv, backend)
	if err != nil {
		log.Exitf("failed to open %s output: %v", backend, err)
	}

	log.Infof("playing %d oscillator(s) at %d Hz via %s", len(cfg.Oscs), cfg.SampleRate, backend)
	if err := pl.Play(); err != nil {
		log.Exitf("failed to start playback: %v", err)
	}
	wait(srv, cfg.Duration)
	if err := pl.Stop(); err != nil {
		log.Errorf("failed to stop playback cleanly: %v", err)
	}
}

// wait blocks until every routed voice has finished (bounded patches) or
// until interrupted (unbounded ones).
func wait(srv *sigosc.Server, duration float64) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	if duration <= 0 {
		<-interrupt
		return
	}
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-interrupt:
			return
		case <-tick.C:
			if srv.Finished() {
				// Leave a little room for the backend to drain.
				time.Sleep(200 * time.Millisecond)
				return
			}
		}
	}
}
