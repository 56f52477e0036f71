package audio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const paFramesPerBuffer = 512

var (
	paOnce    sync.Once
	paInitErr error
)

func initPortAudio() error {
	paOnce.Do(func() { paInitErr = portaudio.Initialize() })
	return paInitErr
}

// PAPlayer streams a SampleSource to the default output device through
// portaudio. Unlike the oto path it supports arbitrary channel counts.
type PAPlayer struct {
	stream *portaudio.Stream
	source SampleSource
}

func NewPortAudioPlayer(sampleRate, channels int, source SampleSource) (*PAPlayer, error) {
	if err := initPortAudio(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	p := &PAPlayer{source: source}
	stream, err := portaudio.OpenDefaultStream(0, channels, float64(sampleRate), paFramesPerBuffer, p.callback)
	if err != nil {
		return nil, fmt.Errorf("failed to open portaudio stream: %w", err)
	}
	p.stream = stream
	return p, nil
}

func (p *PAPlayer) callback(out []float32) {
	p.source.Process(out)
}

func (p *PAPlayer) Play() error { return p.stream.Start() }

func (p *PAPlayer) Stop() error {
	if err := p.stream.Stop(); err != nil {
		p.stream.Close()
		return err
	}
	return p.stream.Close()
}
