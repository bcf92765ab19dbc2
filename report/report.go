// Package report prints session summaries and command errors to the console
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/meditate/internal/models"
	"github.com/ayoisaiah/meditate/internal/session"
	"github.com/ayoisaiah/meditate/internal/ui"
)

const labelWidth = 11

// Warn reports a failure that does not stop the program.
func Warn(msg string, err error) {
	slog.Warn(msg, slog.Any("error", err))
	pterm.Warning.Printfln("%s: %v", msg, err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}

// Summary renders a completed session as plain text.
func Summary(r *session.Report, clockFormat string) string {
	var b strings.Builder

	line := func(label, value string) {
		fmt.Fprintf(&b, "%-*s%s\n", labelWidth, label+":", value)
	}

	line("Intent", r.Intent)
	line("Started", r.StartTime.Format(clockFormat))
	line("Ended", r.EndTime.Format(clockFormat))
	line("Duration", r.Duration)
	line("Check-ins", fmt.Sprintf("%d", r.CheckinCount))

	for _, l := range r.CheckinLines {
		b.WriteString("  " + l + "\n")
	}

	return b.String()
}

// Print writes the session summary under a heading.
func Print(w io.Writer, r *session.Report, clockFormat string) {
	fmt.Fprintln(w, ui.Green("Session complete"))
	fmt.Fprint(w, Summary(r, clockFormat))
}

// IntentTally groups recorded sessions by intent and returns table rows with a
// header, ordered naturally by intent.
func IntentTally(records []*models.Session) [][]string {
	type tally struct {
		count     int
		completed int
		elapsed   time.Duration
	}

	byIntent := make(map[string]*tally)

	for _, r := range records {
		intent := session.DisplayIntent(r.Intent)

		t, ok := byIntent[intent]
		if !ok {
			t = &tally{}
			byIntent[intent] = t
		}

		t.count++
		t.elapsed += r.Elapsed

		if r.Completed {
			t.completed++
		}
	}

	intents := make([]string, 0, len(byIntent))
	for k := range byIntent {
		intents = append(intents, k)
	}

	sort.Slice(intents, func(i, j int) bool {
		return natural.Less(intents[i], intents[j])
	})

	rows := [][]string{{"INTENT", "SESSIONS", "COMPLETED", "TIME"}}

	for _, intent := range intents {
		t := byIntent[intent]

		rows = append(rows, []string{
			intent,
			fmt.Sprintf("%d", t.count),
			fmt.Sprintf("%d", t.completed),
			session.FormatClock(int(t.elapsed / time.Second)),
		})
	}

	return rows
}
