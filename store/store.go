// Package store keeps the history of meditation sessions in a bbolt database
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/meditate/internal/models"
	"github.com/ayoisaiah/meditate/internal/osutil"
	"github.com/ayoisaiah/meditate/internal/timeutil"
)

const (
	sessionBucket = "sessions"
	metaBucket    = "meta"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) SaveSession(sess *models.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).
			Put(timeutil.ToKey(sess.StartTime), value)
	})
}

func (c *Client) DeleteSessions(startTimes []time.Time) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		for _, t := range startTimes {
			err := b.Delete(timeutil.ToKey(t))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) GetSessions(
	since, until time.Time,
	tags []string,
) ([]*models.Session, error) {
	var sessions []*models.Session

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(sessionBucket)).Cursor()
		minKey := timeutil.ToKey(since)
		maxKey := timeutil.ToKey(until)

		k, v := cur.Seek(minKey)

		// a session that started before the period but ended inside it
		// still belongs to the results
		pk, pv := cur.Prev()
		if pk != nil {
			sess, err := decode(pk, pv)
			if err != nil {
				return err
			}

			if sess.EndTime.After(since) {
				k, v = pk, pv
			} else {
				k, v = cur.Next()
			}
		} else {
			k, v = cur.Seek(minKey)
		}

		for ; k != nil && bytes.Compare(k, maxKey) <= 0; k, v = cur.Next() {
			sess, err := decode(k, v)
			if err != nil {
				return err
			}

			if !hasAnyTag(sess, tags) {
				continue
			}

			sessions = append(sessions, sess)
		}

		return nil
	})

	return sessions, err
}

func decode(k, v []byte) (*models.Session, error) {
	var sess models.Session

	err := json.Unmarshal(v, &sess)
	if err != nil {
		return nil, errCorruptRecord.Fmt(string(k)).Wrap(err)
	}

	return &sess, nil
}

func hasAnyTag(sess *models.Session, tags []string) bool {
	if len(tags) == 0 {
		return true
	}

	for _, t := range sess.Tags {
		if slices.Contains(tags, t) {
			return true
		}
	}

	return false
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, timeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, errOpenDB.Fmt(pathToDB).Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. The session bucket is
// created and older records are migrated on first use.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath, 1*time.Second)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(metaBucket))
		if err != nil {
			return err
		}

		return migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

// InUse reports whether another process holds the database open.
func InUse(dbPath string) (bool, error) {
	db, err := openDB(dbPath, 100*time.Millisecond)
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, errAlreadyRunning) {
		return true, nil
	}

	return false, err
}
