// Package file implements the default snapshot backend: a single JSON file
// on local disk, written atomically.
package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/pkg/errors"
)

// Store persists the snapshot at <dir>/<name>.json. Saves write to a
// temporary file in the same directory and rename it over the target, so a
// crash mid-write never leaves a truncated snapshot behind.
type Store struct {
	path string
	log  logging.Logger
}

var _ planning.SnapshotStore = (*Store)(nil)

// New creates the snapshot directory if needed and returns a Store.
func New(dir, name string, log logging.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to create snapshot directory")
	}
	return &Store{
		path: filepath.Join(dir, name+".json"),
		log:  log.Named("storage.file"),
	}, nil
}

// Path returns the absolute snapshot location for logging and diagnostics.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, planning.ErrSnapshotNotFound
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to read snapshot file")
	}
	return payload, nil
}

func (s *Store) Save(_ context.Context, payload []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*.tmp")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageWriteFailed, "failed to create temp snapshot file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrCodeStorageWriteFailed, "failed to write temp snapshot file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrCodeStorageWriteFailed, "failed to close temp snapshot file")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrCodeStorageWriteFailed, "failed to replace snapshot file")
	}

	s.log.Debug("snapshot written", logging.String("path", s.path), logging.Int("bytes", len(payload)))
	return nil
}
