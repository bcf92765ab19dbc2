package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/meditate/internal/session"
)

const noCheckinsChip = "None yet"

// subtitle returns the line shown under the title for the given status.
func subtitle(status session.Status) string {
	switch status {
	case session.Running:
		return "Breathe in and out"
	case session.Complete:
		return "Session complete"
	default:
		return "Ready to begin"
	}
}

// presetLabel renders a preset such as 300 as "5m" and 90 as "1m30s".
func presetLabel(seconds int) string {
	m, s := seconds/60, seconds%60

	switch {
	case m == 0:
		return fmt.Sprintf("%ds", s)
	case s == 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%dm%02ds", m, s)
	}
}

func (t *Timer) presetsView() string {
	labels := make([]string, len(t.snap.Presets))

	for i, p := range t.snap.Presets {
		label := presetLabel(p)

		if p == t.snap.ActivePreset {
			labels[i] = t.style.Title.Render("[" + label + "]")
			continue
		}

		labels[i] = t.style.Hint.Render(" " + label + " ")
	}

	return strings.Join(labels, " ")
}

func (t *Timer) intentView() string {
	if t.editing {
		return "Intent: " + t.intent.View()
	}

	if strings.TrimSpace(t.snap.Intent) == "" {
		return "Intent: " + t.style.Muted.Render(session.IntentPlaceholder)
	}

	return "Intent: " + t.style.Subtitle.Render(t.snap.Intent)
}

func (t *Timer) checkinsView() string {
	if len(t.snap.Checkins) == 0 {
		return t.style.Muted.Render(noCheckinsChip)
	}

	chips := make([]string, len(t.snap.Checkins))
	for i, c := range t.snap.Checkins {
		chips[i] = t.style.Chip.Render(c)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (t *Timer) clockView() string {
	var s strings.Builder

	s.WriteString(t.style.Clock.Render(t.snap.Remaining))

	if t.snap.Status == session.Running {
		end := t.snap.StartTime.Add(time.Duration(t.snap.TotalSeconds) * time.Second)

		s.WriteString(t.style.Hint.Render("  until " + end.Format(t.opts.ClockFormat())))
	}

	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.snap.Progress()))

	return s.String()
}

func (t *Timer) reportView() string {
	r := t.snap.Report
	if r == nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(t.style.Title.Render("Report"))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%s · %s\n", r.Intent, r.Duration))

	for _, line := range r.CheckinLines {
		s.WriteString(t.style.Hint.Render(line) + "\n")
	}

	return s.String()
}

func (t *Timer) helpView() string {
	if t.editing {
		return t.help.ShortHelpView([]key.Binding{
			defaultKeymap.done,
			defaultKeymap.forceQuit,
		})
	}

	switch t.snap.Status {
	case session.Running:
		return t.help.ShortHelpView([]key.Binding{
			defaultKeymap.checkin,
			defaultKeymap.restart,
			defaultKeymap.quit,
		})
	default:
		return t.help.ShortHelpView([]key.Binding{
			defaultKeymap.start,
			defaultKeymap.prev,
			defaultKeymap.next,
			defaultKeymap.preset,
			defaultKeymap.intent,
			defaultKeymap.restart,
			defaultKeymap.quit,
		})
	}
}

func (t *Timer) View() string {
	var s strings.Builder

	s.WriteString(t.style.Title.Render("Meditate"))
	s.WriteString("\n")
	s.WriteString(t.style.Subtitle.Render(subtitle(t.snap.Status)))
	s.WriteString("\n\n")
	s.WriteString(t.intentView())
	s.WriteString("\n")
	s.WriteString(t.presetsView())
	s.WriteString("\n\n")
	s.WriteString(t.clockView())
	s.WriteString("\n\n")
	s.WriteString("Check-ins\n")
	s.WriteString(t.checkinsView())
	s.WriteString("\n\n")

	if report := t.reportView(); report != "" {
		s.WriteString(report)
		s.WriteString("\n")
	}

	for _, n := range t.notices {
		s.WriteString(t.style.Warning.Render(n))
		s.WriteString("\n")
	}

	s.WriteString(t.helpView())

	return t.style.Base.Render(s.String())
}
