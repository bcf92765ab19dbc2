package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/ayoisaiah/meditate/internal/osutil"
	"github.com/ayoisaiah/meditate/internal/session"
	"github.com/ayoisaiah/meditate/internal/ui"
	"github.com/ayoisaiah/meditate/store"
)

// Status is written to the status file while a session is running so that
// other processes can report on it.
type Status struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Intent    string    `json:"intent"`
	Tags      []string  `json:"tags"`
	Checkins  int       `json:"checkins"`
}

func newStatus(snap session.Snapshot, tags []string) Status {
	return Status{
		StartTime: snap.StartTime,
		EndTime:   snap.StartTime.Add(time.Duration(snap.TotalSeconds) * time.Second),
		Intent:    session.DisplayIntent(snap.Intent),
		Tags:      tags,
		Checkins:  len(snap.Checkins),
	}
}

func writeStatusFile(path string, s Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	err = os.WriteFile(path, b, osutil.FilePermission)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	return nil
}

func removeStatusFile(path string) {
	_ = os.Remove(path)
}

// ReportStatus prints the intent and remaining time of the session running in
// another process. Nothing is printed when no session is running.
func ReportStatus(w io.Writer, dbPath, statusPath string, now time.Time) error {
	running, err := store.InUse(dbPath)
	if err != nil {
		return err
	}

	if !running {
		return nil
	}

	b, err := os.ReadFile(statusPath)
	if err != nil {
		// no session has started yet
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return errReadStatus.Wrap(err)
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return errReadStatus.Wrap(err)
	}

	remaining := s.EndTime.Sub(now)
	if remaining < 0 {
		return nil
	}

	_, err = fmt.Fprintf(
		w,
		"%s %s: %s\n",
		ui.Cyan("[Meditating]"),
		s.Intent,
		session.FormatClock(int(remaining.Round(time.Second)/time.Second)),
	)

	return err
}
