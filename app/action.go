package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/meditate/internal/config"
	"github.com/ayoisaiah/meditate/internal/models"
	"github.com/ayoisaiah/meditate/internal/osutil"
	"github.com/ayoisaiah/meditate/internal/pathutil"
	"github.com/ayoisaiah/meditate/internal/session"
	"github.com/ayoisaiah/meditate/internal/sound"
	"github.com/ayoisaiah/meditate/internal/static"
	"github.com/ayoisaiah/meditate/internal/timeutil"
	"github.com/ayoisaiah/meditate/internal/ui"
	"github.com/ayoisaiah/meditate/report"
	"github.com/ayoisaiah/meditate/store"
	"github.com/ayoisaiah/meditate/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envMeditateNoColor = "MEDITATE_NO_COLOR"
)

var errExportFormat = errors.New("--json and --yaml cannot be used together")

// logFile is closed by afterAction.
var logFile io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file, prompting for the initial values on the
// first run, and applies the command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	logLevel.Set(cfg.LogLevel())
	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// newController builds a session controller from the config.
func newController(cfg *config.Config) *session.Controller {
	bell := sound.NewBell(cfg.Sound.Enabled)
	bell.Warm()

	return session.New(
		session.WithPresets(cfg.PresetSeconds(), cfg.DefaultSeconds()),
		session.WithIntent(cfg.Session.Intent),
		session.WithBell(bell),
		session.WithTones(
			session.NewTone("start", cfg.Sound.StartFrequency),
			session.NewTone("end", cfg.Sound.EndFrequency),
		),
	)
}

// defaultAction opens the session view and prints the report of a completed
// session once it is closed.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	files := timer.Files{
		Status: pathutil.StatusFilePath(),
	}

	err = static.Install(pathutil.DataDir())
	if err != nil {
		report.Warn("unable to install the notification icon", err)
	} else {
		files.Icon = static.IconPath(pathutil.DataDir())
	}

	t := timer.New(db, cfg, newController(cfg), files)

	slog.InfoContext(ctx.Context, "opening session view",
		slog.Any("presets", cfg.PresetSeconds()),
		slog.Int("active", cfg.DefaultSeconds()),
	)

	_, err = tea.NewProgram(t).Run()
	if err != nil {
		return err
	}

	final := t.Final()
	if final.Report != nil {
		report.Print(os.Stdout, final.Report, cfg.ClockFormat())
	}

	return nil
}

// sessionFilter returns the period and tags requested with --today, --since
// and --tag. --since wins over --today.
func sessionFilter(ctx *cli.Context) (since, until time.Time, tags []string, err error) {
	until = time.Now()

	if ctx.Bool("today") {
		since = timeutil.RoundToStart(until)
	}

	if s := ctx.String("since"); s != "" {
		since, err = timeutil.FromStr(s, until)
		if err != nil {
			return since, until, nil, err
		}
	}

	for _, tag := range strings.Split(ctx.String("tag"), ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	return since, until, tags, nil
}

func sessionHelper(ctx *cli.Context) ([]*models.Session, store.DB, error) {
	since, until, tags, err := sessionFilter(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	sessions, err := db.GetSessions(since, until, tags)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return sessions, db, nil
}

// historyAction prints recorded sessions as tables or exports them.
func historyAction(ctx *cli.Context) error {
	if ctx.Bool("json") && ctx.Bool("yaml") {
		return errExportFormat
	}

	sessions, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	switch {
	case ctx.Bool("json"):
		if sessions == nil {
			sessions = []*models.Session{}
		}

		b, err := json.MarshalIndent(sessions, "", "  ")
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil

	case ctx.Bool("yaml"):
		b, err := yaml.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Print(string(b))

		return nil
	}

	return listSessions(os.Stdout, sessions)
}

// deleteAction deletes the matching sessions after confirmation.
func deleteAction(ctx *cli.Context) error {
	sessions, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	return delSessions(db, sessions, ctx.Bool("yes"))
}

// statusAction prints the status of the session running in another process.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(
		os.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
		time.Now(),
	)
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	configPath := pathutil.ConfigFilePath()

	// create the file with default values before opening it
	_, err := config.New(config.WithViperConfig(configPath))
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, configPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if MEDITATE_NO_COLOR is set
	if _, exists := os.LookupEnv(envMeditateNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return fmt.Errorf("initialising paths: %w", err)
	}

	logFile = setupLogging(pathutil.LogFilePath())

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting meditate")

	if logFile != nil {
		return logFile.Close()
	}

	return nil
}
