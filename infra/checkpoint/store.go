// Package checkpoint persists per-segment read offsets so a restart resumes
// tailing where it left off instead of replaying every segment from byte
// zero. Losing a checkpoint is safe: the order store is idempotent for
// replayed terminal events, so the cost is bounded re-reading, not
// corruption.
package checkpoint

import (
	"encoding/binary"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

const offsetPrefix = "offset/"

// Store is a pebble-backed offset map keyed by segment path.
type Store struct {
	db *pebble.DB
}

// Open opens (or creates) the checkpoint database at dir.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open checkpoint db")
	}
	return &Store{db: db}, nil
}

// Offset returns the stored offset for a segment path, if any.
func (s *Store) Offset(path string) (uint64, bool, error) {
	val, closer, err := s.db.Get([]byte(offsetPrefix + path))
	if err == pebble.ErrNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrapf(err, "get offset %s", path)
	}
	defer closer.Close()
	if len(val) != 8 {
		return 0, false, errors.Errorf("corrupt offset value for %s (%d bytes)", path, len(val))
	}
	return binary.LittleEndian.Uint64(val), true, nil
}

// SetOffset records the offset for a segment path. Writes are unsynced;
// call Flush to make a batch of them durable.
func (s *Store) SetOffset(path string, off uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], off)
	if err := s.db.Set([]byte(offsetPrefix+path), buf[:], pebble.NoSync); err != nil {
		return errors.Wrapf(err, "set offset %s", path)
	}
	return nil
}

// Offsets returns every stored segment offset.
func (s *Store) Offsets() (map[string]uint64, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(offsetPrefix),
		UpperBound: []byte(offsetPrefix + "\xff"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "iterate offsets")
	}
	defer iter.Close()

	out := make(map[string]uint64)
	for iter.First(); iter.Valid(); iter.Next() {
		if len(iter.Value()) != 8 {
			continue
		}
		path := string(iter.Key()[len(offsetPrefix):])
		out[path] = binary.LittleEndian.Uint64(iter.Value())
	}
	return out, iter.Error()
}

// Flush forces pending writes to stable storage.
func (s *Store) Flush() error {
	return errors.Wrap(s.db.Flush(), "flush checkpoint db")
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	if err := s.db.Flush(); err != nil {
		_ = s.db.Close()
		return errors.Wrap(err, "flush on close")
	}
	return errors.Wrap(s.db.Close(), "close checkpoint db")
}
