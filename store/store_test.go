package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/meditate/internal/models"
	"github.com/ayoisaiah/meditate/internal/timeutil"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "meditate.db")

	c, err := NewClient(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c, dbPath
}

func record(start time.Time, minutes int, intent string, tags ...string) *models.Session {
	d := time.Duration(minutes) * time.Minute

	return &models.Session{
		ID:        intent + start.Format(time.Kitchen),
		StartTime: start,
		EndTime:   start.Add(d),
		Intent:    intent,
		Tags:      tags,
		Duration:  d,
		Elapsed:   d,
		Completed: true,
	}
}

var base = time.Date(2025, time.March, 14, 7, 0, 0, 0, time.UTC)

func TestSaveAndGetSessions(t *testing.T) {
	c, _ := newTestClient(t)

	first := record(base, 10, "Breath")
	second := record(base.Add(2*time.Hour), 5, "Body scan", "evening")
	third := record(base.Add(26*time.Hour), 20, "Metta", "morning")

	for _, s := range []*models.Session{third, first, second} {
		require.NoError(t, c.SaveSession(s))
	}

	got, err := c.GetSessions(base.Add(-time.Hour), base.Add(48*time.Hour), nil)
	require.NoError(t, err)

	want := []*models.Session{first, second, third}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetSessions() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSessionsPeriod(t *testing.T) {
	c, _ := newTestClient(t)

	early := record(base, 30, "Breath")
	overlapping := record(base.Add(time.Hour), 30, "Body scan")
	inside := record(base.Add(2*time.Hour), 10, "Metta")
	late := record(base.Add(5*time.Hour), 10, "Noting")

	for _, s := range []*models.Session{early, overlapping, inside, late} {
		require.NoError(t, c.SaveSession(s))
	}

	got, err := c.GetSessions(
		base.Add(75*time.Minute),
		base.Add(3*time.Hour),
		nil,
	)
	require.NoError(t, err)

	want := []*models.Session{overlapping, inside}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetSessions() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSessionsTags(t *testing.T) {
	c, _ := newTestClient(t)

	a := record(base, 10, "Breath", "morning", "sitting")
	b := record(base.Add(time.Hour), 10, "Walking", "walking")
	d := record(base.Add(2*time.Hour), 10, "Breath", "sitting")

	for _, s := range []*models.Session{a, b, d} {
		require.NoError(t, c.SaveSession(s))
	}

	got, err := c.GetSessions(base, base.Add(3*time.Hour), []string{"sitting"})
	require.NoError(t, err)

	want := []*models.Session{a, d}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetSessions() mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveSessionOverwrites(t *testing.T) {
	c, _ := newTestClient(t)

	s := record(base, 10, "Breath")
	require.NoError(t, c.SaveSession(s))

	s.Tags = []string{"edited"}
	require.NoError(t, c.SaveSession(s))

	got, err := c.GetSessions(base, base.Add(time.Hour), nil)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"edited"}, got[0].Tags)
}

func TestDeleteSessions(t *testing.T) {
	c, _ := newTestClient(t)

	a := record(base, 10, "Breath")
	b := record(base.Add(time.Hour), 10, "Metta")

	require.NoError(t, c.SaveSession(a))
	require.NoError(t, c.SaveSession(b))

	require.NoError(t, c.DeleteSessions([]time.Time{a.StartTime}))

	got, err := c.GetSessions(base.Add(-time.Hour), base.Add(2*time.Hour), nil)
	require.NoError(t, err)

	want := []*models.Session{b}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetSessions() mismatch (-want +got):\n%s", diff)
	}
}

func TestSecondClientIsRejected(t *testing.T) {
	_, dbPath := newTestClient(t)

	inUse, err := InUse(dbPath)
	require.NoError(t, err)
	assert.True(t, inUse)

	_, err = openDB(dbPath, 50*time.Millisecond)
	assert.ErrorIs(t, err, errAlreadyRunning)
}

func TestInUseWhenClosed(t *testing.T) {
	c, dbPath := newTestClient(t)
	require.NoError(t, c.Close())

	inUse, err := InUse(dbPath)
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestMigrateRekeysSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "meditate.db")

	s := record(base, 10, "Breath")
	value, err := json.Marshal(s)
	require.NoError(t, err)

	legacyKey := []byte(s.StartTime.Format(time.RFC3339))

	db, err := bolt.Open(dbPath, 0o600, nil)
	require.NoError(t, err)

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		return b.Put(legacyKey, value)
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c, err := NewClient(dbPath)
	require.NoError(t, err)

	defer c.Close()

	err = c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		assert.Nil(t, b.Get(legacyKey))
		assert.NotNil(t, b.Get(timeutil.ToKey(s.StartTime)))
		assert.Equal(t, schemaVersion, currentVersion(tx))

		return nil
	})
	require.NoError(t, err)
}
