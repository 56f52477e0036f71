package sigosc

import "github.com/alexdrymonitis/sigosc/sig"

// BreakpointParams configures a BreakpointOsc. Each Freq entry builds an
// independent output stream; Phase, Breakpoint, Mul and Add are shared by
// every stream.
type BreakpointParams struct {
	Freq       []sig.Input
	Phase      sig.Input
	Breakpoint sig.Input
	Mul        sig.Input
	Add        sig.Input
}

func DefaultBreakpointParams() BreakpointParams {
	return BreakpointParams{
		Freq:       sig.Consts(defaultFreq),
		Phase:      sig.Const(0),
		Breakpoint: sig.Const(0.5),
		Mul:        sig.Const(1),
		Add:        sig.Const(0),
	}
}

// BreakpointOsc is an oscillator with a settable breakpoint: the phasor
// position where the waveform's rising segment hands over to the falling one.
// Breakpoint near 0 gives a backward sawtooth, 0.5 a triangle, near 1 a
// forward sawtooth. The raw shape rises 0→1 over [0,b), falls 1→0 over [b,1),
// and is rescaled to [-1,1] before the user mul/add.
type BreakpointOsc struct {
	clk     *sig.Clock
	freq    []sig.Input
	phase   sig.Input
	brk     *sig.Sig
	phasors []*sig.Phasor
	outs    []*sig.Sig
	subs    []sig.Node
}

func NewBreakpointOsc(clk *sig.Clock, p BreakpointParams) *BreakpointOsc {
	if len(p.Freq) == 0 {
		p.Freq = sig.Consts(defaultFreq)
	}
	if p.Phase == nil {
		p.Phase = sig.Const(0)
	}
	if p.Breakpoint == nil {
		p.Breakpoint = sig.Const(0.5)
	}
	if p.Mul == nil {
		p.Mul = sig.Const(1)
	}
	if p.Add == nil {
		p.Add = sig.Const(0)
	}

	o := &BreakpointOsc{clk: clk, freq: p.Freq, phase: p.Phase}
	o.brk = sig.NewSig(clk, p.Breakpoint, sig.Const(1), sig.Const(0))
	brk := sig.Clamp(clk, o.brk, breakpointEps, 1-breakpointEps)
	invbrk := sig.Sub(clk, sig.Const(1), brk)
	o.own(o.brk, brk, invbrk)

	for _, f := range p.Freq {
		ph := sig.NewPhasor(clk, f, p.Phase)
		below := sig.Lt(clk, ph, brk)
		above := sig.Ge(clk, ph, brk)
		rising := sig.Mul(clk, sig.Div(clk, ph, brk), below)
		ramp := sig.Div(clk, sig.Sub(clk, ph, brk), invbrk)
		falling := sig.Mul(clk, sig.Sub(clk, sig.Const(1), ramp), above)
		raw := sig.Add(clk, rising, falling)
		osc := sig.NewSig(clk, raw, sig.Const(2), sig.Const(-1))
		out := sig.NewSig(clk, osc, p.Mul, p.Add)
		o.phasors = append(o.phasors, ph)
		o.outs = append(o.outs, out)
		o.own(ph, below, above, rising, ramp, falling, raw, osc, out)
	}
	return o
}

func (o *BreakpointOsc) own(nodes ...sig.Node) {
	o.subs = append(o.subs, nodes...)
}

// SetFreq replaces the frequency sources. One input is broadcast to every
// stream; with several, stream i takes input i modulo the count.
func (o *BreakpointOsc) SetFreq(freq ...sig.Input) {
	if len(freq) == 0 {
		return
	}
	o.freq = freq
	for i, ph := range o.phasors {
		ph.SetFreq(freq[i%len(freq)])
	}
}

// SetPhase replaces the phase offset on every stream's phasor.
func (o *BreakpointOsc) SetPhase(phase sig.Input) {
	o.phase = phase
	for _, ph := range o.phasors {
		ph.SetPhase(phase)
	}
}

// SetBreakpoint updates the breakpoint in place on the internal held signal:
// the graph keeps referring to the same node, only its value or modulation
// source changes. Values are clamped into (0,1) per sample downstream.
func (o *BreakpointOsc) SetBreakpoint(in sig.Input) {
	o.brk.SetSource(in)
}

func (o *BreakpointOsc) Freq() []sig.Input { return o.freq }
func (o *BreakpointOsc) Phase() sig.Input  { return o.phase }

// Breakpoint returns the held breakpoint signal.
func (o *BreakpointOsc) Breakpoint() *sig.Sig { return o.brk }

// Tick returns the sum of all output streams for the current frame.
func (o *BreakpointOsc) Tick() float64 {
	var v float64
	for _, out := range o.outs {
		v += out.Tick()
	}
	return v
}

// Streams returns the per-frequency output signals.
func (o *BreakpointOsc) Streams() []sig.Node {
	ns := make([]sig.Node, len(o.outs))
	for i, out := range o.outs {
		ns[i] = out
	}
	return ns
}

// Nodes returns every signal object owned by the oscillator, outputs
// included.
func (o *BreakpointOsc) Nodes() []sig.Node {
	return append([]sig.Node(nil), o.subs...)
}

// Play activates the whole owned graph, not only the output signals; a
// dormant phasor would otherwise keep feeding zeros into an active output.
func (o *BreakpointOsc) Play(dur, delay float64) {
	for _, n := range o.subs {
		n.Play(dur, delay)
	}
}

// Stop deactivates the whole owned graph.
func (o *BreakpointOsc) Stop() {
	for _, n := range o.subs {
		n.Stop()
	}
}

// Out activates the graph and routes stream i to server channel
// chnl + i*inc.
func (o *BreakpointOsc) Out(srv *Server, chnl, inc int, dur, delay float64) {
	o.Play(dur, delay)
	for i, out := range o.outs {
		srv.Route(out, chnl+i*inc)
	}
}
