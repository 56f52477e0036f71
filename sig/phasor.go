package sig

import (
	"math"
	"sync/atomic"
)

// Phasor ramps linearly and repeatedly from 0 to 1 at freq cycles per second,
// offset by phase (a fraction of a cycle). Negative frequencies ramp
// downward; the output always wraps into [0,1).
type Phasor struct {
	node
	freq  atomic.Pointer[Input]
	phase atomic.Pointer[Input]
	cur   float64
}

func NewPhasor(clk *Clock, freq, phase Input) *Phasor {
	p := &Phasor{node: newNode(clk)}
	p.freq.Store(&freq)
	p.phase.Store(&phase)
	return p
}

// SetFreq swaps in a new frequency source atomically. The phase accumulator
// is untouched, so the ramp continues from its current position.
func (p *Phasor) SetFreq(freq Input) { p.freq.Store(&freq) }

// SetPhase swaps in a new phase offset source.
func (p *Phasor) SetPhase(phase Input) { p.phase.Store(&phase) }

func (p *Phasor) Freq() Input  { return *p.freq.Load() }
func (p *Phasor) Phase() Input { return *p.phase.Load() }

func (p *Phasor) Tick() float64 {
	if v, done := p.begin(); done {
		return v
	}
	v := wrap(p.cur + (*p.phase.Load()).Tick())
	p.cur = wrap(p.cur + (*p.freq.Load()).Tick()/p.clk.SampleRate())
	return p.commit(v)
}

// wrap folds x into [0,1), for any real x.
func wrap(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 { // guards -1e-18 style rounding
		x = 0
	}
	return x
}
