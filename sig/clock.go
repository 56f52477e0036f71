package sig

// Clock drives sample-synchronous evaluation of a signal graph. The renderer
// advances it exactly once per output frame; nodes use the frame counter to
// cache their value so shared nodes are evaluated once per frame no matter
// how many consumers pull from them.
type Clock struct {
	sampleRate float64
	frame      uint64
}

// NewClock returns a clock at the given sample rate (falls back to 44100 for
// non-positive rates).
func NewClock(sampleRate float64) *Clock {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	return &Clock{sampleRate: sampleRate}
}

func (c *Clock) SampleRate() float64 { return c.sampleRate }

// Frame returns the index of the frame currently being rendered.
func (c *Clock) Frame() uint64 { return c.frame }

// Advance moves the clock to the next frame.
func (c *Clock) Advance() { c.frame++ }
