// Package testutil holds helpers shared by package tests
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/meditate/internal/osutil"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// line endings differ in the checked-in golden files
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	snap, golden := tc.Output()

	if snap != nil {
		g.Assert(t, golden, snap)
		return
	}

	f := filepath.Join("testdata", golden+".golden")
	if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
		t.Fatalf("expected no output, but golden file exists: %s", f)
	}
}

// Date returns a fixed local time on 2025-03-14 for use in fixtures.
func Date(hour, minute, second int) time.Time {
	return time.Date(2025, time.March, 14, hour, minute, second, 0, time.Local)
}
