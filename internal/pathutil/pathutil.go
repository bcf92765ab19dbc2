// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/meditate/internal/osutil"
)

const envName = "MEDITATE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	dataDir        string
	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "meditate",
			configFileName: "config.yml",
			dbFileName:     "meditate.db",
			statusFileName: "status.json",
			logFileName:    "meditate.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

// DataDir is the directory holding the history, status file, logs and
// installed static files.
func DataDir() string {
	return Must().dataDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("meditate_%s.db", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("meditate_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	err = os.MkdirAll(dataDir, osutil.DirPermission)
	if err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	p.dataDir = dataDir

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
