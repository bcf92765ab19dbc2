// Package timer runs the interactive meditation session view and records each
// session once it completes or is abandoned
package timer

import (
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/meditate/internal/config"
	"github.com/ayoisaiah/meditate/internal/models"
	"github.com/ayoisaiah/meditate/internal/session"
	"github.com/ayoisaiah/meditate/internal/ui"
	"github.com/ayoisaiah/meditate/store"
)

const (
	padding  = 2
	maxWidth = 60

	// eventBuffer leaves room for bursts of key presses between renders.
	eventBuffer = 64
)

// Timer is the bubbletea model for a meditation session.
type Timer struct {
	recorded   time.Time
	db         store.DB
	ctrl       *session.Controller
	events     <-chan session.Event
	opts       *config.Config
	style      *ui.Styles
	now        func() time.Time
	notify     func(title, message string) error
	runCmd     func(cmdline string) error
	statusPath string
	notices    []string
	snap       session.Snapshot
	intent     textinput.Model
	help       help.Model
	progress   progress.Model
	editing    bool
}

type (
	eventMsg    session.Event
	eventsEnded struct{}

	// hookMsg reports the outcome of a post-session side effect.
	hookMsg struct {
		err  error
		name string
	}
)

// Files locates the files used by the session view.
type Files struct {
	// Status describes the running session for the status command
	Status string
	// Icon is shown in desktop notifications. It may be empty.
	Icon string
}

// New returns a Timer driving ctrl. Finished and abandoned sessions are saved
// to db.
func New(
	db store.DB,
	cfg *config.Config,
	ctrl *session.Controller,
	files Files,
) *Timer {
	input := textinput.New()
	input.Placeholder = session.IntentPlaceholder
	input.CharLimit = 120
	input.Prompt = ""

	t := &Timer{
		db:         db,
		ctrl:       ctrl,
		events:     ctrl.Subscribe(eventBuffer),
		opts:       cfg,
		style:      ui.NewStyles(cfg.Display.DarkTheme),
		now:        time.Now,
		notify:     desktopNotifier(files.Icon),
		runCmd:     runSessionCmd,
		statusPath: files.Status,
		snap:       ctrl.Snapshot(),
		intent:     input,
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient()),
	}

	t.progress.ShowPercentage = false

	return t
}

// Final returns the last observed session state.
func (t *Timer) Final() session.Snapshot {
	return t.snap
}

func (t *Timer) Init() tea.Cmd {
	return waitForEvent(t.events)
}

func waitForEvent(ch <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return eventsEnded{}
		}

		return eventMsg(ev)
	}
}

// record saves snap as a finished or abandoned session. A session is recorded
// at most once.
func (t *Timer) record(snap session.Snapshot, endTime time.Time) *models.Session {
	if snap.StartTime.IsZero() || snap.StartTime.Equal(t.recorded) {
		return nil
	}

	var rec *models.Session
	if snap.Report != nil {
		rec = models.FromReport(snap.Report, t.opts.CLI.Tags)
	} else {
		rec = models.FromSnapshot(snap, t.opts.CLI.Tags, endTime)
	}

	t.recorded = snap.StartTime

	if err := t.db.SaveSession(rec); err != nil {
		t.warn("unable to save session", err)
		return rec
	}

	return rec
}

// afterSession notifies the user and runs the configured session command.
func (t *Timer) afterSession(r *session.Report) tea.Cmd {
	var cmds []tea.Cmd

	if t.opts.Notifications.Enabled {
		title := "Session complete"
		msg := r.Intent + " · " + r.Duration

		cmds = append(cmds, func() tea.Msg {
			return hookMsg{name: "notification", err: t.notify(title, msg)}
		})
	}

	if cmdline := t.opts.Settings.Cmd; cmdline != "" {
		cmds = append(cmds, func() tea.Msg {
			return hookMsg{name: "session command", err: t.runCmd(cmdline)}
		})
	}

	return tea.Batch(cmds...)
}

func desktopNotifier(icon string) func(title, message string) error {
	return func(title, message string) error {
		return beeep.Notify(title, message, icon)
	}
}

// runSessionCmd executes the specified command.
func runSessionCmd(cmdline string) error {
	cmdSlice, err := shellquote.Split(cmdline)
	if err != nil {
		return errParseSessionCmd.Fmt(cmdline).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		return errRunSessionCmd.Fmt(cmdline).Wrap(err)
	}

	return nil
}
