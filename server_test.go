package sigosc

import (
	"math"
	"testing"

	"github.com/alexdrymonitis/sigosc/sig"
)

func heldValue(clk *sig.Clock, v float64) *sig.Sig {
	return sig.NewSig(clk, sig.Const(v), sig.Const(1), sig.Const(0))
}

func TestServerInterleavesChannels(t *testing.T) {
	srv := NewServer(1000, 2)
	srv.Route(heldValue(srv.Clock(), 0.5), 0)
	srv.Route(heldValue(srv.Clock(), -0.25), 1)

	buf := make([]float32, 8)
	srv.Process(buf)
	for f := 0; f < 4; f++ {
		if buf[f*2] != 0.5 {
			t.Fatalf("frame %d channel 0: got %f, want 0.5", f, buf[f*2])
		}
		if buf[f*2+1] != -0.25 {
			t.Fatalf("frame %d channel 1: got %f, want -0.25", f, buf[f*2+1])
		}
	}
}

func TestServerSumsAndClamps(t *testing.T) {
	srv := NewServer(1000, 1)
	srv.Route(heldValue(srv.Clock(), 0.8), 0)
	srv.Route(heldValue(srv.Clock(), 0.8), 0)

	buf := make([]float32, 4)
	srv.Process(buf)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("sample %d: got %f, want 1 (clamped from 1.6)", i, v)
		}
	}
}

func TestServerMasterGain(t *testing.T) {
	srv := NewServer(1000, 1)
	srv.Route(heldValue(srv.Clock(), 0.5), 0)
	srv.SetMasterGain(0.5)

	buf := make([]float32, 4)
	srv.Process(buf)
	if buf[0] != 0.25 {
		t.Errorf("gained sample: got %f, want 0.25", buf[0])
	}

	srv.SetMasterGain(-3)
	if got := srv.MasterGain(); got != 0 {
		t.Errorf("master gain should clamp to 0, got %f", got)
	}
}

func TestServerChannelWrapping(t *testing.T) {
	srv := NewServer(1000, 2)
	// Both land on channel 1: 5 mod 2 and -1 mod 2.
	srv.Route(heldValue(srv.Clock(), 0.5), 5)
	srv.Route(heldValue(srv.Clock(), 0.25), -1)

	buf := make([]float32, 2)
	srv.Process(buf)
	if buf[0] != 0 {
		t.Errorf("channel 0: got %f, want 0", buf[0])
	}
	if math.Abs(float64(buf[1])-0.75) > 1e-6 {
		t.Errorf("channel 1: got %f, want 0.75", buf[1])
	}
}

func TestServerFinished(t *testing.T) {
	srv := NewServer(1000, 2)
	if !srv.Finished() {
		t.Error("server with no routes should report finished")
	}

	v := heldValue(srv.Clock(), 0.1)
	srv.Route(v, 0)
	if srv.Finished() {
		t.Error("server with an active route should not be finished")
	}
	v.Stop()
	if !srv.Finished() {
		t.Error("server should be finished once every route stopped")
	}
}

func TestServerMultiStreamOutWithIncrement(t *testing.T) {
	srv := NewServer(1000, 2)
	p := DefaultBreakpointParams()
	p.Freq = sig.Consts(200, 303)
	osc := NewBreakpointOsc(srv.Clock(), p)
	osc.Out(srv, 0, 1, 0, 0)

	buf := make([]float32, 256*2)
	srv.Process(buf)
	var left, right float64
	var differ bool
	for i := 0; i < len(buf); i += 2 {
		left += math.Abs(float64(buf[i]))
		right += math.Abs(float64(buf[i+1]))
		if buf[i] != buf[i+1] {
			differ = true
		}
	}
	if left == 0 || right == 0 {
		t.Fatalf("both channels should carry a stream (left %f, right %f)", left, right)
	}
	if !differ {
		t.Error("channels carry different frequencies and should diverge")
	}
}
