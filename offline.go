package sigosc

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/transforms"
	"github.com/go-audio/wav"
)

// RenderSamples renders seconds worth of interleaved frames from the server.
func RenderSamples(srv *Server, seconds float64) []float32 {
	frames := int(float64(srv.SampleRate()) * seconds)
	if frames < 0 {
		frames = 0
	}
	out := make([]float32, frames*srv.Channels())
	srv.Process(out)
	return out
}

// WriteWAVFile writes interleaved samples as a 16-bit PCM WAV file. With
// normalize set, the peak is scaled up to full range first.
func WriteWAVFile(path string, samples []float32, sampleRate, channels int, normalize bool) (err error) {
	buf := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   make([]float64, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = float64(s)
	}
	if normalize {
		transforms.NormalizeMax(buf)
	}
	if err := transforms.PCMScale(buf, 16); err != nil {
		return fmt.Errorf("failed to scale samples to PCM range: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file at %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	ib := buf.AsIntBuffer()
	ib.SourceBitDepth = 16
	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}
