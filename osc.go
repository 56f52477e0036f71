// Package sigosc provides two signal-graph oscillators — a breakpoint
// oscillator morphing between backward and forward sawtooth, and a symmetric
// triangle oscillator — built by composing sig package primitives, plus a
// routing server and offline/realtime rendering of the result.
package sigosc

import "github.com/alexdrymonitis/sigosc/sig"

// Source is a playable signal source with one output stream per configured
// frequency.
type Source interface {
	Play(dur, delay float64)
	Stop()
	Out(srv *Server, chnl, inc int, dur, delay float64)
	Streams() []sig.Node
}

// Breakpoint values are kept this far from 0 and 1 so the rising and falling
// segment divisions stay finite.
const breakpointEps = 1e-4

const defaultFreq = 100
