package sigosc

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/alexdrymonitis/sigosc/sig"
)

// Server owns the graph clock and mixes routed output signals into an
// interleaved multi-channel buffer. It is the rendering surface both offline
// rendering and the realtime backends pull from.
type Server struct {
	clk        *sig.Clock
	sampleRate int
	channels   int
	masterGain uint64

	mu     sync.Mutex
	routes []route
}

type route struct {
	src     sig.Node
	channel int
}

func NewServer(sampleRate, channels int) *Server {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	if channels < 1 {
		channels = 2
	}
	return &Server{
		clk:        sig.NewClock(float64(sampleRate)),
		sampleRate: sampleRate,
		channels:   channels,
		masterGain: math.Float64bits(1),
	}
}

func (s *Server) Clock() *sig.Clock { return s.clk }
func (s *Server) SampleRate() int   { return s.sampleRate }
func (s *Server) Channels() int     { return s.channels }

// SetMasterGain scales every mixed channel; negative values clamp to 0.
func (s *Server) SetMasterGain(gain float64) {
	if gain < 0 {
		gain = 0
	}
	atomic.StoreUint64(&s.masterGain, math.Float64bits(gain))
}

func (s *Server) MasterGain() float64 {
	return math.Float64frombits(atomic.LoadUint64(&s.masterGain))
}

// Route adds an output signal on the given channel (wrapped into the
// server's channel count).
func (s *Server) Route(src sig.Node, channel int) {
	channel %= s.channels
	if channel < 0 {
		channel += s.channels
	}
	s.mu.Lock()
	s.routes = append(s.routes, route{src: src, channel: channel})
	s.mu.Unlock()
}

// ClearRoutes detaches every routed signal. The signals themselves keep
// their activation state.
func (s *Server) ClearRoutes() {
	s.mu.Lock()
	s.routes = nil
	s.mu.Unlock()
}

// Process renders interleaved frames into dst, advancing the clock once per
// frame. Channels are summed per route, scaled by master gain and clamped to
// [-1, 1]. A dst length that is not a multiple of the channel count leaves
// the tail untouched.
func (s *Server) Process(dst []float32) {
	s.mu.Lock()
	routes := append([]route(nil), s.routes...)
	s.mu.Unlock()

	gain := float32(s.MasterGain())
	frames := len(dst) / s.channels
	for f := 0; f < frames; f++ {
		s.clk.Advance()
		base := f * s.channels
		for c := 0; c < s.channels; c++ {
			dst[base+c] = 0
		}
		for _, r := range routes {
			dst[base+r.channel] += float32(r.src.Tick())
		}
		for c := 0; c < s.channels; c++ {
			dst[base+c] = clamp32(dst[base+c]*gain, -1, 1)
		}
	}
}

// Finished reports whether every routed signal has gone inactive, which is
// how bounded Play(dur, ...) runs signal their end to the realtime backends.
func (s *Server) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.routes {
		if r.src.Active() {
			return false
		}
	}
	return true
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
