// Package file persists the talker collection as a single JSON document.
// Saves go through a temp file in the same directory followed by a rename,
// so a failed write never leaves the previous collection unreadable.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/exp/slog"

	"talkerbase/internal/domain/talker"
)

type Store struct {
	path string
	log  *slog.Logger
}

func New(path string, log *slog.Logger) *Store {
	return &Store{
		path: path,
		log:  log.With("component", "file_store", "path", path),
	}
}

// Load reads the whole collection. A missing or empty file is an empty
// collection, not an error, so a fresh deployment can take its first write.
func (s *Store) Load(_ context.Context) ([]talker.Talker, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []talker.Talker{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []talker.Talker{}, nil
	}

	var talkers []talker.Talker
	if err := json.Unmarshal(data, &talkers); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return talkers, nil
}

// Save replaces the persisted collection in full.
func (s *Store) Save(_ context.Context, talkers []talker.Talker) error {
	if talkers == nil {
		talkers = []talker.Talker{}
	}
	data, err := json.MarshalIndent(talkers, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	tmpPath := s.path + ".tmp"
	tmpF, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmpPath, err)
	}

	if _, err := tmpF.Write(data); err != nil {
		_ = tmpF.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmpF.Sync(); err != nil {
		_ = tmpF.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync %s: %w", tmpPath, err)
	}
	if err := tmpF.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("swap %s for %s: %w", s.path, tmpPath, err)
	}

	s.log.Debug("collection persisted", "count", len(talkers))
	return nil
}
