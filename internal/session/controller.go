package session

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Controller owns a Session and drives it through the Idle, Running and
// Complete states. All methods are safe for concurrent use. Calls that are not
// valid in the current state are ignored.
type Controller struct {
	now       func() time.Time
	scheduler Scheduler
	bell      Bell
	ticker    Ticker
	report    *Report
	startTone Tone
	endTone   Tone
	presets   []int
	subs      []chan Event
	sess      Session
	interval  time.Duration
	gen       uint64
	mu        sync.Mutex
	closed    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithPresets sets the allowed session durations in seconds and the one that
// is active initially. Non-positive values are dropped. If active is not one of
// the presets, the first preset is used.
func WithPresets(presets []int, active int) Option {
	return func(c *Controller) {
		c.presets = c.presets[:0]

		for _, p := range presets {
			if p > 0 && !slices.Contains(c.presets, p) {
				c.presets = append(c.presets, p)
			}
		}

		c.sess.TotalSeconds = active
	}
}

// WithIntent sets the initial intent text.
func WithIntent(intent string) Option {
	return func(c *Controller) {
		c.sess.Intent = intent
	}
}

// WithClock replaces the wall clock used for start times and check-ins.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithScheduler replaces the scheduler that drives the countdown.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.scheduler = s
	}
}

// WithBell sets the audio cue player.
func WithBell(b Bell) Option {
	return func(c *Controller) {
		c.bell = b
	}
}

// WithTones overrides the start and end cues.
func WithTones(start, end Tone) Option {
	return func(c *Controller) {
		c.startTone = start
		c.endTone = end
	}
}

// New creates a controller with an Idle session at the active preset.
func New(opts ...Option) *Controller {
	c := &Controller{
		now:       time.Now,
		scheduler: ClockScheduler,
		bell:      SilentBell,
		startTone: NewTone("start", StartFrequency),
		endTone:   NewTone("end", EndFrequency),
		presets:   []int{DefaultDuration},
		interval:  time.Second,
		sess: Session{
			TotalSeconds: DefaultDuration,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.presets) == 0 {
		c.presets = []int{DefaultDuration}
	}

	if !slices.Contains(c.presets, c.sess.TotalSeconds) {
		c.sess.TotalSeconds = c.presets[0]
	}

	c.sess.reset()

	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sess.snapshot(c.presets, c.report)
}

// Subscribe registers an observer. Events are dropped for observers whose
// buffer is full.
func (c *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}

	ch := make(chan Event, buffer)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		close(ch)
		return ch
	}

	c.subs = append(c.subs, ch)

	return ch
}

// SelectPreset makes seconds the active duration. It is ignored while a
// session is running or if seconds is not a configured preset.
func (c *Controller) SelectPreset(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.sess.Status == Running {
		return
	}

	if !slices.Contains(c.presets, seconds) {
		return
	}

	c.sess.TotalSeconds = seconds
	c.sess.RemainingSeconds = seconds

	c.emitLocked(EventPreset)
}

// SetIntent records the intent for the next report. It is ignored while a
// session is running.
func (c *Controller) SetIntent(intent string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.sess.Status == Running || c.sess.Intent == intent {
		return
	}

	c.sess.Intent = intent

	c.emitLocked(EventIntent)
}

// Start begins a new session at the active preset. It is a no-op while a
// session is already running.
func (c *Controller) Start() {
	c.mu.Lock()

	if c.closed || c.sess.Status == Running {
		c.mu.Unlock()
		return
	}

	c.stopTickerLocked()

	c.sess.StartTime = c.now()
	c.sess.Checkins = nil
	c.sess.RemainingSeconds = c.sess.TotalSeconds
	c.sess.Status = Running
	c.report = nil

	c.emitLocked(EventStateChange)

	gen := c.gen
	c.ticker = c.scheduler.Every(c.interval, func() {
		c.tick(gen)
	})

	c.mu.Unlock()

	c.cue(c.startTone)
}

// Checkin logs the elapsed time of the running session. It is a no-op if no
// session is running.
func (c *Controller) Checkin() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.sess.Status != Running || c.sess.StartTime.IsZero() {
		return
	}

	elapsed := int(c.now().Sub(c.sess.StartTime) / time.Second)
	elapsed = max(0, min(elapsed, c.sess.TotalSeconds))

	c.sess.Checkins = append(c.sess.Checkins, FormatClock(elapsed))

	c.emitLocked(EventCheckin)
}

// Restart cancels any running session and returns to Idle at the active
// preset. A running session is reported to observers as abandoned first.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.sess.Status == Running {
		c.emitLocked(EventAbandoned)
	}

	c.stopTickerLocked()

	c.sess.reset()
	c.report = nil

	c.emitLocked(EventReset)
}

// Close stops the countdown and closes all subscriptions. It returns the
// final state, which may still be Running if a session was interrupted.
func (c *Controller) Close() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.sess.snapshot(c.presets, c.report)

	if c.closed {
		return snap
	}

	c.stopTickerLocked()
	c.closed = true

	for _, ch := range c.subs {
		close(ch)
	}

	c.subs = nil

	return snap
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()

	if c.closed || gen != c.gen || c.sess.Status != Running {
		c.mu.Unlock()
		return
	}

	c.sess.RemainingSeconds--

	if c.sess.RemainingSeconds > 0 {
		c.emitLocked(EventTick)
		c.mu.Unlock()

		return
	}

	c.sess.RemainingSeconds = 0
	c.endLocked()
	c.mu.Unlock()

	c.cue(c.endTone)
}

func (c *Controller) endLocked() {
	c.stopTickerLocked()

	c.sess.Status = Complete
	c.report = newReport(&c.sess, c.now())

	c.emitLocked(EventComplete)
}

// stopTickerLocked cancels the live ticker, if any, and invalidates ticks that
// were already dispatched by it.
func (c *Controller) stopTickerLocked() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}

	c.gen++
}

func (c *Controller) emitLocked(t EventType) {
	if len(c.subs) == 0 {
		return
	}

	ev := Event{
		At:       c.now(),
		Type:     t,
		Snapshot: c.sess.snapshot(c.presets, c.report),
	}

	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// cue plays a tone without letting audio failures reach the caller.
func (c *Controller) cue(t Tone) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("audio cue panicked",
				slog.String("tone", t.Name),
				slog.Any("recovered", r),
			)
		}
	}()

	err := c.bell.Play(t)
	if err != nil {
		slog.Debug("unable to play audio cue",
			slog.String("tone", t.Name),
			slog.Any("error", err),
		)
	}
}
