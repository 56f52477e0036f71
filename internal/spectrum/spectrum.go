// Package spectrum provides small FFT helpers for inspecting rendered audio.
package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

// Magnitudes returns the Hann-windowed magnitude spectrum of samples,
// bins 0..n/2, where n is the largest power of two that fits the input.
func Magnitudes(samples []float32) ([]float64, error) {
	n := 1
	for n*2 <= len(samples) {
		n *= 2
	}
	if n < 4 {
		return nil, fmt.Errorf("need at least 4 samples, got %d", len(samples))
	}
	f, err := fft.New(n)
	if err != nil {
		return nil, fmt.Errorf("failed to plan FFT of size %d: %w", n, err)
	}
	buf := make([]complex128, n)
	for i := 0; i < n; i++ {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
		buf[i] = complex(float64(samples[i])*w, 0)
	}
	buf = f.Transform(buf)
	mags := make([]float64, n/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(buf[i])
	}
	return mags, nil
}

// Peak returns the strongest non-DC bin as a frequency in Hz along with its
// magnitude.
func Peak(samples []float32, sampleRate float64) (freq, mag float64, err error) {
	mags, err := Magnitudes(samples)
	if err != nil {
		return 0, 0, err
	}
	n := (len(mags) - 1) * 2
	best := 1
	for i := 2; i < len(mags); i++ {
		if mags[i] > mags[best] {
			best = i
		}
	}
	return float64(best) * sampleRate / float64(n), mags[best], nil
}

// Channel extracts one channel from interleaved frames.
func Channel(samples []float32, channels, ch int) []float32 {
	if channels < 1 || ch < 0 || ch >= channels {
		return nil
	}
	out := make([]float32, 0, len(samples)/channels)
	for i := ch; i < len(samples); i += channels {
		out = append(out, samples[i])
	}
	return out
}
