// Package audio streams rendered samples to the system output, either
// through the shared oto context or through portaudio.
package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleSource produces interleaved float32 frames on demand.
type SampleSource interface {
	Process(dst []float32)
}

// FinishingSource is a SampleSource that can signal the end of playback.
// Once Finished reports true, the stream returns io.EOF after the current
// block.
type FinishingSource interface {
	SampleSource
	Finished() bool
}

// StreamReader adapts a SampleSource to the io.Reader the oto player
// consumes: interleaved float32 little-endian frames. Reads are truncated to
// whole frames for the configured channel count.
type StreamReader struct {
	mu       sync.Mutex
	source   SampleSource
	channels int
	buf      []float32
}

func NewStreamReader(source SampleSource, channels int) *StreamReader {
	if channels < 1 {
		channels = 2
	}
	return &StreamReader{source: source, channels: channels}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frameBytes := r.channels * 4
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, nil
	}
	need := frames * r.channels
	if cap(r.buf) < need {
		r.buf = make([]float32, need)
	}
	r.buf = r.buf[:need]
	r.source.Process(r.buf)
	for i, s := range r.buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	if fs, ok := r.source.(FinishingSource); ok && fs.Finished() {
		return frames * frameBytes, io.EOF
	}
	return frames * frameBytes, nil
}

func (r *StreamReader) Close() error { return nil }

// Player plays a stereo SampleSource through the process-wide oto context.
type Player struct {
	player *ebitaudio.Player
	reader io.ReadCloser
}

var (
	otoOnce    sync.Once
	otoContext *ebitaudio.Context
	otoRate    int
)

// sharedContext returns the singleton audio context. The context's sample
// rate is fixed on first use; later players must match it.
func sharedContext(sampleRate int) (*ebitaudio.Context, error) {
	otoOnce.Do(func() {
		otoRate = sampleRate
		otoContext = ebitaudio.NewContext(sampleRate)
	})
	if otoRate != sampleRate {
		return nil, fmt.Errorf("audio context already running at %d Hz (requested %d Hz)", otoRate, sampleRate)
	}
	return otoContext, nil
}

func NewPlayer(sampleRate int, source SampleSource) (*Player, error) {
	ctx, err := sharedContext(sampleRate)
	if err != nil {
		return nil, err
	}
	// The oto context plays stereo; callers validate the channel count.
	reader := NewStreamReader(source, 2)
	pl, err := ctx.NewPlayerF32(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open output player: %w", err)
	}
	return &Player{player: pl, reader: reader}, nil
}

func (p *Player) Play()  { p.player.Play() }
func (p *Player) Pause() { p.player.Pause() }

func (p *Player) IsPlaying() bool { return p.player.IsPlaying() }

func (p *Player) Stop() error {
	p.player.Pause()
	p.player.Close()
	return p.reader.Close()
}
