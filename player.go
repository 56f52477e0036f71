package sigosc

import (
	"fmt"
	"strings"

	intaudio "github.com/alexdrymonitis/sigosc/internal/audio"
)

// Backend selects the realtime output path.
type Backend string

const (
	// BackendOto plays through the shared oto audio context (stereo only).
	BackendOto Backend = "oto"
	// BackendPortAudio plays through the default portaudio device and
	// follows the server's channel count.
	BackendPortAudio Backend = "portaudio"
)

// ParseBackend maps a user-facing name to a Backend; the empty string means
// the default oto path.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "oto":
		return BackendOto, nil
	case "portaudio", "pa":
		return BackendPortAudio, nil
	default:
		return "", fmt.Errorf("invalid backend %q (expected oto|portaudio)", name)
	}
}

// Player streams a Server's output to the system audio device.
type Player struct {
	oto *intaudio.Player
	pa  *intaudio.PAPlayer
}

func NewPlayer(srv *Server, backend Backend) (*Player, error) {
	switch backend {
	case "", BackendOto:
		if srv.Channels() != 2 {
			return nil, fmt.Errorf("oto backend requires 2 channels, server has %d", srv.Channels())
		}
		p, err := intaudio.NewPlayer(srv.SampleRate(), srv)
		if err != nil {
			return nil, err
		}
		return &Player{oto: p}, nil
	case BackendPortAudio:
		p, err := intaudio.NewPortAudioPlayer(srv.SampleRate(), srv.Channels(), srv)
		if err != nil {
			return nil, err
		}
		return &Player{pa: p}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func (p *Player) Play() error {
	if p.pa != nil {
		return p.pa.Play()
	}
	p.oto.Play()
	return nil
}

func (p *Player) Stop() error {
	if p.pa != nil {
		return p.pa.Stop()
	}
	return p.oto.Stop()
}
