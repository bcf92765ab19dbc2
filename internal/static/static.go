// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/meditate/internal/osutil"
)

const (
	filesDir = "files"
	iconName = "icon.svg"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into dir. Files that already exist are
// left untouched so that users can replace them.
func Install(dir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			rel := strings.TrimPrefix(p, filesDir+"/")
			destPath := filepath.Join(dir, filepath.FromSlash(rel))

			_, err = os.Stat(destPath)
			if err == nil || !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			err = os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission)
			if err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}

// IconPath returns where Install places the notification icon.
func IconPath(dir string) string {
	return filepath.Join(dir, iconName)
}
