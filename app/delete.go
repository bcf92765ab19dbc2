package app

import (
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/meditate/internal/models"
	"github.com/ayoisaiah/meditate/store"
)

// confirmDelete asks whether the listed sessions should be removed.
var confirmDelete = func(count int) (bool, error) {
	var ok bool

	err := huh.NewConfirm().
		Title(pterm.Sprintf("Delete %d session(s) permanently?", count)).
		Affirmative("Delete").
		Negative("Keep").
		Value(&ok).
		Run()

	return ok, err
}

// delSessions deletes all the specified sessions. It requests for confirmation
// before proceeding unless skipConfirm is set.
func delSessions(
	db store.DB,
	sessions []*models.Session,
	skipConfirm bool,
) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	err := printSessionsTable(os.Stdout, sessions)
	if err != nil {
		return err
	}

	if !skipConfirm {
		ok, err := confirmDelete(len(sessions))
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}
	}

	t := make([]time.Time, len(sessions))

	for i := range sessions {
		t[i] = sessions[i].StartTime
	}

	err = db.DeleteSessions(t)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("%d session(s) deleted", len(sessions))

	return nil
}
