package sig

import (
	"math"
	"sync/atomic"
)

// Default glide time for held values. Long enough to kill zipper noise from
// stepwise parameter changes, short enough to feel immediate.
const defaultSmoothSec = 0.005

// Sig holds a parameter value as a signal and applies mul/add scaling.
//
// With a scalar value it glides toward the most recent SetValue target with a
// one-pole smoother, so abrupt external changes never produce discontinuities
// in the output. With a dynamic source installed it passes the source through
// unsmoothed. The target and the source slot are both stored atomically, so
// SetValue and SetSource may be called from a control goroutine while the
// audio goroutine ticks.
type Sig struct {
	node
	src    atomic.Pointer[Input] // nil while holding a scalar
	target uint64                // atomic float bits
	cur    float64
	coef   uint64 // atomic float bits
	mul    Input
	add    Input
}

func NewSig(clk *Clock, in, mul, add Input) *Sig {
	s := &Sig{node: newNode(clk), mul: mul, add: add}
	s.setSmooth(defaultSmoothSec)
	if c, ok := in.(Const); ok {
		v := float64(c)
		atomic.StoreUint64(&s.target, math.Float64bits(v))
		s.cur = v
	} else {
		s.src.Store(&in)
	}
	return s
}

// SetValue replaces the held value in place; the node keeps its position in
// the graph. Any dynamic source is detached and the output glides from its
// current level to v.
func (s *Sig) SetValue(v float64) {
	atomic.StoreUint64(&s.target, math.Float64bits(v))
	s.src.Store(nil)
}

// SetSource installs a dynamic modulation source. A Const is equivalent to
// SetValue.
func (s *Sig) SetSource(in Input) {
	if c, ok := in.(Const); ok {
		s.SetValue(float64(c))
		return
	}
	s.src.Store(&in)
}

// Value returns the current scalar target. Meaningless while a dynamic
// source is installed.
func (s *Sig) Value() float64 {
	return math.Float64frombits(atomic.LoadUint64(&s.target))
}

// SetSmoothTime sets the glide time constant in seconds; zero or negative
// disables smoothing.
func (s *Sig) SetSmoothTime(sec float64) { s.setSmooth(sec) }

func (s *Sig) setSmooth(sec float64) {
	coef := 0.0
	if sec > 0 {
		coef = math.Exp(-1.0 / (sec * s.clk.SampleRate()))
	}
	atomic.StoreUint64(&s.coef, math.Float64bits(coef))
}

func (s *Sig) Tick() float64 {
	if v, done := s.begin(); done {
		return v
	}
	var base float64
	if sp := s.src.Load(); sp != nil {
		base = (*sp).Tick()
		s.cur = base // detaching the source glides from here
	} else {
		target := math.Float64frombits(atomic.LoadUint64(&s.target))
		coef := math.Float64frombits(atomic.LoadUint64(&s.coef))
		if coef == 0 {
			s.cur = target
		} else {
			s.cur = target + (s.cur-target)*coef
			if math.Abs(s.cur-target) < 1e-6 {
				s.cur = target
			}
		}
		base = s.cur
	}
	return s.commit(base*s.mul.Tick() + s.add.Tick())
}
