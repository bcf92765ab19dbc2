// Package sound synthesizes the session bell and plays it through the system
// speaker
package sound

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ayoisaiah/meditate/internal/session"
)

const (
	sampleRate beep.SampleRate = 44100

	// silenceFloor is the gain the decay ramp ends on.
	silenceFloor = 0.001
)

// Bell plays session tones on the default audio device. The speaker is opened
// on a background goroutine so a slow device never holds up the caller. Once
// opening it fails every later call returns that error without touching the
// device again.
type Bell struct {
	failed  atomic.Pointer[error]
	init    func(beep.SampleRate, int) error
	play    func(...beep.Streamer)
	pending sync.WaitGroup
	initMu  sync.Mutex
	ready   bool
	enabled bool
}

// NewBell returns a Bell. A disabled Bell accepts tones and plays nothing.
func NewBell(enabled bool) *Bell {
	return &Bell{
		enabled: enabled,
		init:    speaker.Init,
		play:    speaker.Play,
	}
}

// Warm opens the speaker in the background so the first tone is not delayed.
func (b *Bell) Warm() {
	if !b.enabled {
		return
	}

	b.pending.Add(1)

	go func() {
		defer b.pending.Done()

		b.open()
	}()
}

// Play queues the tone on the speaker and returns immediately.
func (b *Bell) Play(tone session.Tone) error {
	if !b.enabled {
		return nil
	}

	if err := b.failed.Load(); err != nil {
		return errSpeakerUnavailable.Wrap(*err)
	}

	b.pending.Add(1)

	go b.ring(tone)

	return nil
}

// open initialises the speaker once and reports whether it is usable.
func (b *Bell) open() bool {
	b.initMu.Lock()
	defer b.initMu.Unlock()

	if !b.ready {
		b.ready = true

		if err := b.init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			b.failed.Store(&err)

			slog.Debug("unable to open speaker", slog.Any("error", err))
		}
	}

	return b.failed.Load() == nil
}

func (b *Bell) ring(tone session.Tone) {
	defer b.pending.Done()

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("audio cue panicked",
				slog.String("tone", tone.Name),
				slog.Any("recovered", r),
			)
		}
	}()

	if !b.open() {
		return
	}

	b.play(Synth(sampleRate, tone))
}

// Wait blocks until every queued tone has been handed to the speaker.
func (b *Bell) Wait() {
	b.pending.Wait()
}

// Envelope returns the gain of the tone at the given offset: a linear attack
// up to tone.Gain followed by an exponential decay that reaches the silence
// floor at tone.Decay and stays there.
func Envelope(tone session.Tone, at time.Duration) float64 {
	if at <= 0 {
		return 0
	}

	if at < tone.Attack {
		return tone.Gain * float64(at) / float64(tone.Attack)
	}

	if tone.Decay <= tone.Attack || tone.Gain <= silenceFloor {
		return tone.Gain
	}

	if at >= tone.Decay {
		return silenceFloor
	}

	progress := float64(at-tone.Attack) / float64(tone.Decay-tone.Attack)

	return tone.Gain * math.Pow(silenceFloor/tone.Gain, progress)
}

// Synth returns a mono sine streamer for the tone, duplicated on both
// channels. It ends after tone.Length.
func Synth(sr beep.SampleRate, tone session.Tone) beep.Streamer {
	total := sr.N(tone.Length)
	step := 2 * math.Pi * tone.Frequency / float64(sr)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}

		for i := range samples {
			if pos >= total {
				break
			}

			at := sr.D(pos)
			v := math.Sin(step*float64(pos)) * Envelope(tone, at)

			samples[i][0] = v
			samples[i][1] = v

			pos++
			n++
		}

		return n, true
	})
}
