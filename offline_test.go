package sigosc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/alexdrymonitis/sigosc/sig"
)

func renderTestServer(t *testing.T, seconds float64) (*Server, []float32) {
	t.Helper()
	srv := NewServer(8000, 2)
	p := DefaultTriangleParams()
	p.Freq = sig.Consts(220)
	p.Mul = sig.Const(0.2)
	osc := NewTriangleOsc(srv.Clock(), p)
	osc.Out(srv, 0, 1, 0, 0)
	return srv, RenderSamples(srv, seconds)
}

func TestRenderSamplesLengthAndRange(t *testing.T) {
	_, samples := renderTestServer(t, 0.5)
	if got, want := len(samples), 8000/2*2; got != want {
		t.Fatalf("sample count: got %d, want %d", got, want)
	}
	for i, v := range samples {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
	}
}

func TestRenderSamplesNonPositiveSeconds(t *testing.T) {
	srv := NewServer(8000, 2)
	if got := len(RenderSamples(srv, -1)); got != 0 {
		t.Errorf("negative seconds: got %d samples, want 0", got)
	}
}

func TestWriteWAVFileRoundTrip(t *testing.T) {
	_, samples := renderTestServer(t, 0.25)
	path := filepath.Join(t.TempDir(), "out.wav")
	if err := WriteWAVFile(path, samples, 8000, 2, false); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if buf.Format.NumChannels != 2 {
		t.Errorf("channels: got %d, want 2", buf.Format.NumChannels)
	}
	if buf.Format.SampleRate != 8000 {
		t.Errorf("sample rate: got %d, want 8000", buf.Format.SampleRate)
	}
	if got, want := len(buf.Data)/2, len(samples)/2; got != want {
		t.Errorf("frames: got %d, want %d", got, want)
	}
}

func TestWriteWAVFileNormalizeRaisesPeak(t *testing.T) {
	_, samples := renderTestServer(t, 0.25)
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.wav")
	loud := filepath.Join(dir, "loud.wav")
	if err := WriteWAVFile(plain, samples, 8000, 2, false); err != nil {
		t.Fatalf("write plain: %v", err)
	}
	if err := WriteWAVFile(loud, samples, 8000, 2, true); err != nil {
		t.Fatalf("write normalized: %v", err)
	}

	if pp, lp := wavPeak(t, plain), wavPeak(t, loud); lp <= pp {
		t.Errorf("normalized peak %d should exceed plain peak %d", lp, pp)
	}
}

func wavPeak(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	peak := 0
	for _, v := range buf.Data {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
