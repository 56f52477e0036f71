package sigosc

import "github.com/alexdrymonitis/sigosc/sig"

// TriangleParams configures a TriangleOsc. Each Freq entry builds an
// independent output stream; Phase, Mul and Add are shared.
type TriangleParams struct {
	Freq  []sig.Input
	Phase sig.Input
	Mul   sig.Input
	Add   sig.Input
}

func DefaultTriangleParams() TriangleParams {
	return TriangleParams{
		Freq:  sig.Consts(defaultFreq),
		Phase: sig.Const(0),
		Mul:   sig.Const(1),
		Add:   sig.Const(0),
	}
}

// TriangleOsc is a symmetric triangle oscillator: the minimum of the phasor
// ramp and its inverse gives a tent in [0,0.5], rescaled to [-1,1] before the
// user mul/add.
type TriangleOsc struct {
	clk     *sig.Clock
	freq    []sig.Input
	phase   sig.Input
	phasors []*sig.Phasor
	outs    []*sig.Sig
	subs    []sig.Node
}

func NewTriangleOsc(clk *sig.Clock, p TriangleParams) *TriangleOsc {
	if len(p.Freq) == 0 {
		p.Freq = sig.Consts(defaultFreq)
	}
	if p.Phase == nil {
		p.Phase = sig.Const(0)
	}
	if p.Mul == nil {
		p.Mul = sig.Const(1)
	}
	if p.Add == nil {
		p.Add = sig.Const(0)
	}

	o := &TriangleOsc{clk: clk, freq: p.Freq, phase: p.Phase}
	for _, f := range p.Freq {
		ph := sig.NewPhasor(clk, f, p.Phase)
		inv := sig.Sub(clk, sig.Const(1), ph)
		lower := sig.Min(clk, ph, inv)
		tri := sig.NewSig(clk, lower, sig.Const(4), sig.Const(-1))
		out := sig.NewSig(clk, tri, p.Mul, p.Add)
		o.phasors = append(o.phasors, ph)
		o.outs = append(o.outs, out)
		o.subs = append(o.subs, ph, inv, lower, tri, out)
	}
	return o
}

// SetFreq replaces the frequency sources. One input is broadcast to every
// stream; with several, stream i takes input i modulo the count.
func (o *TriangleOsc) SetFreq(freq ...sig.Input) {
	if len(freq) == 0 {
		return
	}
	o.freq = freq
	for i, ph := range o.phasors {
		ph.SetFreq(freq[i%len(freq)])
	}
}

// SetPhase replaces the phase offset on every stream's phasor.
func (o *TriangleOsc) SetPhase(phase sig.Input) {
	o.phase = phase
	for _, ph := range o.phasors {
		ph.SetPhase(phase)
	}
}

func (o *TriangleOsc) Freq() []sig.Input { return o.freq }
func (o *TriangleOsc) Phase() sig.Input  { return o.phase }

// Tick returns the sum of all output streams for the current frame.
func (o *TriangleOsc) Tick() float64 {
	var v float64
	for _, out := range o.outs {
		v += out.Tick()
	}
	return v
}

// Streams returns the per-frequency output signals.
func (o *TriangleOsc) Streams() []sig.Node {
	ns := make([]sig.Node, len(o.outs))
	for i, out := range o.outs {
		ns[i] = out
	}
	return ns
}

// Nodes returns every signal object owned by the oscillator, outputs
// included.
func (o *TriangleOsc) Nodes() []sig.Node {
	return append([]sig.Node(nil), o.subs...)
}

// Play activates the whole owned graph, not only the output signals; a
// dormant phasor would otherwise keep feeding zeros into an active output.
func (o *TriangleOsc) Play(dur, delay float64) {
	for _, n := range o.subs {
		n.Play(dur, delay)
	}
}

// Stop deactivates the whole owned graph.
func (o *TriangleOsc) Stop() {
	for _, n := range o.subs {
		n.Stop()
	}
}

// Out activates the graph and routes stream i to server channel
// chnl + i*inc.
func (o *TriangleOsc) Out(srv *Server, chnl, inc int, dur, delay float64) {
	o.Play(dur, delay)
	for i, out := range o.outs {
		srv.Route(out, chnl+i*inc)
	}
}
