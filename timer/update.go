package timer

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/meditate/internal/session"
)

const maxNotices = 3

// warn logs a failure that must not interrupt the session and shows it in the
// view.
func (t *Timer) warn(msg string, err error) {
	slog.Warn(msg, slog.Any("error", err))

	t.notices = append(t.notices, msg+": "+err.Error())
	if len(t.notices) > maxNotices {
		t.notices = t.notices[len(t.notices)-maxNotices:]
	}
}

// handleEvent reacts to a change reported by the controller.
func (t *Timer) handleEvent(ev session.Event) tea.Cmd {
	t.snap = t.ctrl.Snapshot()

	switch ev.Type {
	case session.EventStateChange, session.EventCheckin:
		if ev.Snapshot.Status == session.Running {
			err := writeStatusFile(t.statusPath, newStatus(ev.Snapshot, t.opts.CLI.Tags))
			if err != nil {
				t.warn("unable to update status", err)
			}
		}

	case session.EventAbandoned:
		removeStatusFile(t.statusPath)

		t.record(ev.Snapshot, ev.At)

	case session.EventComplete:
		return t.finish(ev.Snapshot)
	}

	// checked on every event since a full buffer may have dropped the
	// completion event itself
	return t.finish(t.snap)
}

// finish records a completed session once and returns the after-session
// hooks. It does nothing for a snapshot that is not Complete.
func (t *Timer) finish(snap session.Snapshot) tea.Cmd {
	if snap.Status != session.Complete || snap.Report == nil {
		return nil
	}

	removeStatusFile(t.statusPath)

	if t.record(snap, snap.Report.EndTime) == nil {
		return nil
	}

	return t.afterSession(snap.Report)
}

// quit records an interrupted session and stops the controller.
func (t *Timer) quit() tea.Cmd {
	snap := t.ctrl.Close()

	// a completion event may still be queued, so Complete is recorded here too
	if snap.Status != session.Idle {
		t.record(snap, t.now())
	}

	removeStatusFile(t.statusPath)

	t.snap = snap

	return tea.Quit
}

// stepPreset moves the active preset by delta positions.
func (t *Timer) stepPreset(delta int) {
	presets := t.snap.Presets

	for i, p := range presets {
		if p != t.snap.ActivePreset {
			continue
		}

		j := i + delta
		if j >= 0 && j < len(presets) {
			t.ctrl.SelectPreset(presets[j])
		}

		return
	}
}

func (t *Timer) handleIntentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.forceQuit) {
		return t, t.quit()
	}

	if key.Matches(msg, defaultKeymap.done) {
		t.editing = false
		t.intent.Blur()
		t.ctrl.SetIntent(t.intent.Value())
		t.snap = t.ctrl.Snapshot()

		return t, nil
	}

	var cmd tea.Cmd
	t.intent, cmd = t.intent.Update(msg)

	return t, cmd
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t.editing {
		return t.handleIntentKey(msg)
	}

	var cmd tea.Cmd

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return t, tea.Batch(tea.ClearScreen, t.quit())

	case key.Matches(msg, defaultKeymap.start):
		if t.snap.Status != session.Running {
			t.notices = nil
			t.ctrl.Start()
		}

	case key.Matches(msg, defaultKeymap.checkin):
		t.ctrl.Checkin()

	case key.Matches(msg, defaultKeymap.restart):
		// the completion event may still be queued behind the reset
		cmd = t.finish(t.ctrl.Snapshot())
		t.ctrl.Restart()

	case key.Matches(msg, defaultKeymap.prev):
		t.stepPreset(-1)

	case key.Matches(msg, defaultKeymap.next):
		t.stepPreset(1)

	case key.Matches(msg, defaultKeymap.preset):
		n, err := strconv.Atoi(msg.String())
		if err == nil && n >= 1 && n <= len(t.snap.Presets) {
			t.ctrl.SelectPreset(t.snap.Presets[n-1])
		}

	case key.Matches(msg, defaultKeymap.intent):
		if t.snap.Status == session.Running {
			break
		}

		t.editing = true
		t.intent.SetValue(t.snap.Intent)
		t.intent.CursorEnd()

		return t, t.intent.Focus()
	}

	t.snap = t.ctrl.Snapshot()

	return t, cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("received message", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case eventMsg:
		cmd := t.handleEvent(session.Event(msg))

		return t, tea.Batch(cmd, waitForEvent(t.events))

	case eventsEnded:
		return t, nil

	case hookMsg:
		if msg.err != nil {
			t.warn("unable to run "+msg.name, msg.err)
		}

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		t.help.Width = msg.Width

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
