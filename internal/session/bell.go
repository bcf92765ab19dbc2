package session

import "time"

// Tone describes a short synthesized cue: a sine wave that ramps up to Gain
// over Attack, then decays exponentially until Decay and is cut at Length.
type Tone struct {
	Name      string
	Frequency float64
	Gain      float64
	Attack    time.Duration
	Decay     time.Duration
	Length    time.Duration
}

const (
	StartFrequency = 660
	EndFrequency   = 520
)

// NewTone returns a cue with the standard envelope at the given pitch.
func NewTone(name string, frequency float64) Tone {
	return Tone{
		Name:      name,
		Frequency: frequency,
		Gain:      0.6,
		Attack:    30 * time.Millisecond,
		Decay:     1200 * time.Millisecond,
		Length:    1300 * time.Millisecond,
	}
}

// Bell plays audio cues. Implementations must not block for the length of the
// tone.
type Bell interface {
	Play(tone Tone) error
}

type silentBell struct{}

func (silentBell) Play(Tone) error {
	return nil
}

// SilentBell is a Bell that plays nothing.
var SilentBell Bell = silentBell{}
