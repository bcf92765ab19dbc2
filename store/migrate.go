package store

import (
	"bytes"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/meditate/internal/timeutil"
)

const schemaVersion = 1

var versionKey = []byte("schema_version")

func currentVersion(tx *bolt.Tx) int {
	v := tx.Bucket([]byte(metaBucket)).Get(versionKey)

	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0
	}

	return n
}

// rekeySessions moves every record to the key derived from its start time.
func rekeySessions(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(sessionBucket))

	type move struct {
		oldKey, newKey, value []byte
	}

	var moves []move

	err := bucket.ForEach(func(k, v []byte) error {
		sess, err := decode(k, v)
		if err != nil {
			return err
		}

		if kt, err := timeutil.FromKey(k); err == nil && kt.Equal(sess.StartTime) {
			return nil
		}

		newKey := timeutil.ToKey(sess.StartTime)

		moves = append(moves, move{
			oldKey: bytes.Clone(k),
			newKey: newKey,
			value:  bytes.Clone(v),
		})

		return nil
	})
	if err != nil {
		return err
	}

	for _, m := range moves {
		if err := bucket.Delete(m.oldKey); err != nil {
			return err
		}

		if err := bucket.Put(m.newKey, m.value); err != nil {
			return err
		}
	}

	return nil
}

func migrate(tx *bolt.Tx) error {
	if currentVersion(tx) >= schemaVersion {
		return nil
	}

	err := rekeySessions(tx)
	if err != nil {
		return err
	}

	return tx.Bucket([]byte(metaBucket)).
		Put(versionKey, []byte(strconv.Itoa(schemaVersion)))
}
