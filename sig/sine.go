package sig

import (
	"math"
	"sync/atomic"
)

const twoPi = math.Pi * 2

// Sine is a sine oscillator with mul/add scaling, typically used as a
// low-frequency modulation source for other parameters (for example a
// breakpoint swept between 0.1 and 0.9 with mul=0.4, add=0.5).
type Sine struct {
	node
	freq  atomic.Pointer[Input]
	phase atomic.Pointer[Input]
	mul   Input
	add   Input
	cur   float64
}

func NewSine(clk *Clock, freq, phase, mul, add Input) *Sine {
	s := &Sine{node: newNode(clk), mul: mul, add: add}
	s.freq.Store(&freq)
	s.phase.Store(&phase)
	return s
}

func (s *Sine) SetFreq(freq Input)   { s.freq.Store(&freq) }
func (s *Sine) SetPhase(phase Input) { s.phase.Store(&phase) }

func (s *Sine) Tick() float64 {
	if v, done := s.begin(); done {
		return v
	}
	v := math.Sin(twoPi * wrap(s.cur+(*s.phase.Load()).Tick()))
	s.cur = wrap(s.cur + (*s.freq.Load()).Tick()/s.clk.SampleRate())
	return s.commit(v*s.mul.Tick() + s.add.Tick())
}
