package spectrum

import (
	"math"
	"testing"
)

func TestPeakFindsSineFundamental(t *testing.T) {
	const (
		sr   = 8192.0
		freq = 440.0
		n    = 8192
	)
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / sr))
	}

	got, mag, err := Peak(samples, sr)
	if err != nil {
		t.Fatalf("peak: %v", err)
	}
	binWidth := sr / n
	if math.Abs(got-freq) > binWidth {
		t.Errorf("peak frequency: got %f, want %f +- %f", got, freq, binWidth)
	}
	if mag <= 0 {
		t.Errorf("peak magnitude should be positive, got %f", mag)
	}
}

func TestMagnitudesRejectsTinyInput(t *testing.T) {
	if _, err := Magnitudes(make([]float32, 3)); err == nil {
		t.Error("expected an error for a 3-sample input")
	}
}

func TestChannelDeinterleaves(t *testing.T) {
	in := []float32{0, 10, 1, 11, 2, 12}
	left := Channel(in, 2, 0)
	right := Channel(in, 2, 1)
	for i, v := range left {
		if v != float32(i) {
			t.Fatalf("left[%d] = %f, want %d", i, v, i)
		}
	}
	for i, v := range right {
		if v != float32(10+i) {
			t.Fatalf("right[%d] = %f, want %d", i, v, 10+i)
		}
	}
	if Channel(in, 2, 2) != nil {
		t.Error("out-of-range channel should return nil")
	}
}
