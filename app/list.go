package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/meditate/internal/models"
	"github.com/ayoisaiah/meditate/internal/session"
	"github.com/ayoisaiah/meditate/internal/ui"
	"github.com/ayoisaiah/meditate/report"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
	dateFormat    = "Jan 02, 2006 03:04 PM"
)

func sessionRows(sessions []*models.Session) [][]string {
	rows := make([][]string, 0, len(sessions)+1)

	rows = append(rows, []string{
		"#", "START DATE", "LENGTH", "ELAPSED", "INTENT", "CHECK-INS", "TAGS", "STATUS",
	})

	for i, sess := range sessions {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Local().Format(dateFormat),
			session.FormatClock(int(sess.Duration / time.Second)),
			session.FormatClock(int(sess.Elapsed / time.Second)),
			session.DisplayIntent(sess.Intent),
			fmt.Sprintf("%d", len(sess.Checkins)),
			strings.Join(sess.Tags, " · "),
			ui.Outcome(sess.Completed),
		})
	}

	return rows
}

// printSessionsTable prints a session table to w.
func printSessionsTable(w io.Writer, sessions []*models.Session) error {
	return ui.PrintTable(w, sessionRows(sessions))
}

// listSessions prints out a table of sessions followed by a summary per
// intent.
func listSessions(w io.Writer, sessions []*models.Session) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	err := printSessionsTable(w, sessions)
	if err != nil {
		return err
	}

	return ui.PrintTable(w, report.IntentTally(sessions))
}
