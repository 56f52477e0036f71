// oscrender renders a TOML oscillator patch to a WAV file, optionally
// reporting the spectral peak of each output channel.
package main

import (
	"flag"
	"fmt"

	log "github.com/golang/glog"

	"github.com/alexdrymonitis/sigosc"
	"github.com/alexdrymonitis/sigosc/internal/patch"
	"github.com/alexdrymonitis/sigosc/internal/spectrum"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML patch; the built-in demo patch when empty")
		outPath    = flag.String("out", "out.wav", "output WAV path")
		seconds    = flag.Float64("seconds", 0, "render length in seconds; overrides the patch duration when > 0")
		normalize  = flag.Bool("normalize", false, "peak-normalize before writing")
		analyze    = flag.Bool("analyze", false, "print the spectral peak of each channel")
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
	if cfg.Normalize {
		*normalize = true
	}

	srv, err := patch.Build(cfg)
	if err != nil {
		log.Exitf("failed to build patch: %v", err)
	}

	dur := cfg.Duration
	if *seconds > 0 {
		dur = *seconds
	}
	if dur <= 0 {
		dur = 3
	}

	log.Infof("rendering %d oscillator(s), %.2fs at %d Hz, %d channel(s)",
		len(cfg.Oscs), dur, cfg.SampleRate, cfg.Channels)
	samples := sigosc.RenderSamples(srv, dur)
	if err := sigosc.WriteWAVFile(*outPath, samples, cfg.SampleRate, cfg.Channels, *normalize); err != nil {
		log.Exitf("failed to write WAV: %v", err)
	}
	log.Infof("wrote %d frames to %s", len(samples)/cfg.Channels, *outPath)

	if *analyze {
		for ch := 0; ch < cfg.Channels; ch++ {
			freq, mag, err := spectrum.Peak(spectrum.Channel(samples, cfg.Channels, ch), float64(cfg.SampleRate))
			if err != nil {
				log.Exitf("failed to analyze channel %d: %v", ch, err)
			}
			fmt.Printf("channel %d: peak %.1f Hz (magnitude %.2f)\n", ch, freq, mag)
		}
	}
}
