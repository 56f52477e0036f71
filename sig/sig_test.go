package sig

import (
	"math"
	"testing"
)

func tick(clk *Clock, in Input) float64 {
	clk.Advance()
	return in.Tick()
}

func TestSigHoldsInitialValueExactly(t *testing.T) {
	clk := NewClock(1000)
	s := NewSig(clk, Const(0.5), Const(1), Const(0))

	if got := tick(clk, s); got != 0.5 {
		t.Errorf("initial value: got %f, want 0.5", got)
	}
	if got := s.Value(); got != 0.5 {
		t.Errorf("Value(): got %f, want 0.5", got)
	}
}

func TestSigMulAdd(t *testing.T) {
	clk := NewClock(1000)
	s := NewSig(clk, Const(0.5), Const(2), Const(-1))

	if got := tick(clk, s); got != 0 {
		t.Errorf("0.5*2-1: got %f, want 0", got)
	}
}

func TestSigGlidesWithoutJumps(t *testing.T) {
	clk := NewClock(1000)
	s := NewSig(clk, Const(0), Const(1), Const(0))
	tick(clk, s)

	s.SetValue(1)
	prev := 0.0
	for i := 0; i < 200; i++ {
		v := tick(clk, s)
		if v < prev {
			t.Fatalf("sample %d: glide not monotonic (%f after %f)", i, v, prev)
		}
		if i == 0 && v > 0.5 {
			t.Fatalf("first glide sample jumped to %f", v)
		}
		prev = v
	}
	if prev != 1 {
		t.Errorf("glide did not settle: got %f, want exactly 1", prev)
	}
}

func TestSigZeroSmoothTimeSnaps(t *testing.T) {
	clk := NewClock(1000)
	s := NewSig(clk, Const(0), Const(1), Const(0))
	s.SetSmoothTime(0)
	tick(clk, s)

	s.SetValue(0.8)
	if got := tick(clk, s); got != 0.8 {
		t.Errorf("unsmoothed set: got %f, want 0.8", got)
	}
}

func TestSigDynamicSourcePassthrough(t *testing.T) {
	clk := NewClock(100)
	ph := NewPhasor(clk, Const(1), Const(0))
	s := NewSig(clk, ph, Const(2), Const(-1))

	for i := 0; i < 50; i++ {
		got := tick(clk, s)
		want := 2*float64(i)/100 - 1
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("sample %d: got %f, want %f", i, got, want)
		}
	}
}

func TestSigSetValueDetachesSource(t *testing.T) {
	clk := NewClock(1000)
	ph := NewPhasor(clk, Const(10), Const(0.3))
	s := NewSig(clk, ph, Const(1), Const(0))

	if got := tick(clk, s); math.Abs(got-0.3) > 1e-9 {
		t.Fatalf("source passthrough: got %f, want 0.3", got)
	}

	s.SetValue(0.9)
	for i := 0; i < 500; i++ {
		tick(clk, s)
	}
	if got := tick(clk, s); got != 0.9 {
		t.Errorf("after SetValue: got %f, want exactly 0.9", got)
	}
}

func TestSigSetSourceInstallsModulation(t *testing.T) {
	clk := NewClock(100)
	s := NewSig(clk, Const(0.5), Const(1), Const(0))
	tick(clk, s)

	s.SetSource(NewPhasor(clk, Const(1), Const(0.25)))
	if got := tick(clk, s); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("after SetSource: got %f, want 0.25", got)
	}
}
