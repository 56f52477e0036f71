// Package sig is a small pull-based signal graph: phasors, held values,
// arithmetic combinators and modulators that evaluate one sample at a time
// under a shared Clock. Oscillators are built by composing these nodes.
//
// Nodes are ticked by a single rendering goroutine. Setters and lifecycle
// methods (Play, Stop, Set*) replace their state atomically, so a control
// goroutine may call them while rendering runs.
package sig

import "sync/atomic"

// Input is any per-sample value source: a plain constant or a signal node.
// Parameters (frequency, phase, breakpoint, mul, add) accept either.
type Input interface {
	Tick() float64
}

// Const is a fixed-value Input.
type Const float64

func (c Const) Tick() float64 { return float64(c) }

// Consts wraps plain numbers as Inputs, one per value.
func Consts(vals ...float64) []Input {
	ins := make([]Input, len(vals))
	for i, v := range vals {
		ins[i] = Const(v)
	}
	return ins
}

// Node is a signal object with lifecycle state. Play schedules activation
// after delay seconds, optionally bounded to dur seconds (dur <= 0 means
// unbounded). An inactive node yields 0 and does not advance internal state.
type Node interface {
	Input
	Play(dur, delay float64)
	Stop()
	Active() bool
}

// node is the shared base of all signal objects: activation flag, play
// scheduling counters and the per-frame value cache. Nodes start active and
// unbounded, matching object-creation-starts-computation semantics.
//
// last and value belong to the rendering goroutine. active and the
// scheduling counters are shared with control goroutines (Play, Stop,
// Server.Finished) and accessed atomically.
type node struct {
	clk       *Clock
	active    uint32 // atomic; 1 while running
	last      uint64
	value     float64
	delayLeft int64 // atomic
	durLeft   int64 // atomic; -1 = unbounded
}

func newNode(clk *Clock) node {
	return node{clk: clk, active: 1, durLeft: -1, last: ^uint64(0)}
}

// begin is called at the top of every Tick. It returns (value, true) when the
// node must not compute this frame: already evaluated, still delayed, stopped
// or expired. Otherwise it consumes one frame of the duration budget and the
// caller computes and commits the value.
func (n *node) begin() (float64, bool) {
	if n.last == n.clk.frame {
		return n.value, true
	}
	n.last = n.clk.frame
	if atomic.LoadUint32(&n.active) == 0 {
		n.value = 0
		return 0, true
	}
	if atomic.LoadInt64(&n.delayLeft) > 0 {
		atomic.AddInt64(&n.delayLeft, -1)
		n.value = 0
		return 0, true
	}
	switch d := atomic.LoadInt64(&n.durLeft); {
	case d == 0:
		atomic.StoreUint32(&n.active, 0)
		n.value = 0
		return 0, true
	case d > 0:
		atomic.AddInt64(&n.durLeft, -1)
	}
	return 0, false
}

func (n *node) commit(v float64) float64 {
	n.value = v
	return v
}

func (n *node) Play(dur, delay float64) {
	sr := n.clk.SampleRate()
	var delaySamples, durSamples int64 = 0, -1
	if delay > 0 {
		delaySamples = int64(delay*sr + 0.5)
	}
	if dur > 0 {
		durSamples = int64(dur*sr + 0.5)
	}
	atomic.StoreInt64(&n.delayLeft, delaySamples)
	atomic.StoreInt64(&n.durLeft, durSamples)
	atomic.StoreUint32(&n.active, 1)
}

func (n *node) Stop() { atomic.StoreUint32(&n.active, 0) }

func (n *node) Active() bool { return atomic.LoadUint32(&n.active) == 1 }
