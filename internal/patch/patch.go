// Package patch loads TOML descriptions of oscillator setups and builds
// them into a ready-to-render server.
package patch

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/alexdrymonitis/sigosc"
	"github.com/alexdrymonitis/sigosc/sig"
)

const (
	TypeBreakpoint = "breakpoint"
	TypeTriangle   = "triangle"
)

// Config describes a complete patch: output format plus a list of
// oscillators.
type Config struct {
	SampleRate int     `toml:"sample_rate"`
	Channels   int     `toml:"channels"`
	Duration   float64 `toml:"duration"` // seconds; 0 = unbounded
	Normalize  bool    `toml:"normalize"`
	MasterGain float64 `toml:"master_gain"`

	Oscs []OscConfig `toml:"osc"`
}

// OscConfig describes one oscillator. Zero values fall back to the library
// defaults (freq 100, breakpoint 0.5, mul 1).
type OscConfig struct {
	Type       string    `toml:"type"` // breakpoint | triangle
	Freq       []float64 `toml:"freq"` // one stream per entry
	Phase      float64   `toml:"phase"`
	Breakpoint float64   `toml:"breakpoint"`
	Mul        float64   `toml:"mul"`
	Add        float64   `toml:"add"`
	Channel    int       `toml:"channel"` // first output channel
	Spread     int       `toml:"spread"`  // channel increment between streams
	Delay      float64   `toml:"delay"`   // seconds before the voice starts

	// BreakpointLFO, when present, modulates the breakpoint with a sine:
	// sin(2*pi*freq*t)*mul + add.
	BreakpointLFO *LFOConfig `toml:"breakpoint_lfo"`
}

type LFOConfig struct {
	Freq float64 `toml:"freq"`
	Mul  float64 `toml:"mul"`
	Add  float64 `toml:"add"`
}

// Default returns the built-in demo patch: a slowly morphing breakpoint
// oscillator pair plus a quiet triangle drone.
func Default() *Config {
	return &Config{
		SampleRate: 44100,
		Channels:   2,
		MasterGain: 1,
		Oscs: []OscConfig{
			{
				Type:          TypeBreakpoint,
				Freq:          []float64{200, 202},
				Mul:           0.2,
				Channel:       0,
				Spread:        1,
				BreakpointLFO: &LFOConfig{Freq: 0.2, Mul: 0.4, Add: 0.5},
			},
			{
				Type:    TypeTriangle,
				Freq:    []float64{100},
				Mul:     0.1,
				Channel: 0,
			},
		},
	}
}

// Load reads and validates a patch file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse patch file %q: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid patch file %q: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SampleRate <= 0 {
		c.SampleRate = 44100
	}
	if c.Channels < 1 {
		c.Channels = 2
	}
	if c.MasterGain <= 0 {
		c.MasterGain = 1
	}
	for i := range c.Oscs {
		o := &c.Oscs[i]
		if len(o.Freq) == 0 {
			o.Freq = []float64{100}
		}
		if o.Breakpoint == 0 {
			o.Breakpoint = 0.5
		}
		if o.Mul == 0 {
			o.Mul = 1
		}
		if o.Spread == 0 {
			o.Spread = 1
		}
	}
}

func (c *Config) Validate() error {
	if len(c.Oscs) == 0 {
		return fmt.Errorf("patch has no oscillators")
	}
	for i, o := range c.Oscs {
		switch o.Type {
		case TypeBreakpoint, TypeTriangle:
		default:
			return fmt.Errorf("osc %d: invalid type %q (expected %s|%s)", i, o.Type, TypeBreakpoint, TypeTriangle)
		}
		if o.Delay < 0 {
			return fmt.Errorf("osc %d: negative delay %f", i, o.Delay)
		}
	}
	if c.Duration < 0 {
		return fmt.Errorf("negative duration %f", c.Duration)
	}
	return nil
}

// Build constructs the server and routes every configured oscillator,
// bounded by the patch duration when one is set.
func Build(c *Config) (*sigosc.Server, error) {
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	srv := sigosc.NewServer(c.SampleRate, c.Channels)
	srv.SetMasterGain(c.MasterGain)
	clk := srv.Clock()

	for _, o := range c.Oscs {
		var osc sigosc.Source
		switch o.Type {
		case TypeBreakpoint:
			brk := sig.Input(sig.Const(o.Breakpoint))
			if l := o.BreakpointLFO; l != nil {
				brk = sig.NewSine(clk, sig.Const(l.Freq), sig.Const(0), sig.Const(l.Mul), sig.Const(l.Add))
			}
			osc = sigosc.NewBreakpointOsc(clk, sigosc.BreakpointParams{
				Freq:       sig.Consts(o.Freq...),
				Phase:      sig.Const(o.Phase),
				Breakpoint: brk,
				Mul:        sig.Const(o.Mul),
				Add:        sig.Const(o.Add),
			})
		case TypeTriangle:
			osc = sigosc.NewTriangleOsc(clk, sigosc.TriangleParams{
				Freq:  sig.Consts(o.Freq...),
				Phase: sig.Const(o.Phase),
				Mul:   sig.Const(o.Mul),
				Add:   sig.Const(o.Add),
			})
		}
		osc.Out(srv, o.Channel, o.Spread, c.Duration, o.Delay)
	}
	return srv, nil
}
