// Package file implements storage.SaveStore over plain game files in a
// directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/world"
	"github.com/cory-johannsen/colony/internal/storage"
)

// Extension is appended to slot names that carry none.
const Extension = ".dat"

// Store keeps one game file per slot under a directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore returns a Store rooted at dir, creating the directory if needed.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a usable Store or the directory creation error.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating save directory %q: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Path returns the file a slot is stored in.
func (s *Store) Path(slot string) string {
	name := slot
	if filepath.Ext(name) == "" {
		name += Extension
	}
	return filepath.Join(s.dir, name)
}

// Save writes def to the slot's file through a temporary file and rename.
func (s *Store) Save(ctx context.Context, slot string, def *world.Definition) error {
	if err := storage.ValidateSlot(slot); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := storage.EncodeBytes(def)
	if err != nil {
		return fmt.Errorf("encoding slot %q: %w", slot, err)
	}

	path := s.Path(slot)
	tmp, err := os.CreateTemp(s.dir, ".save-*")
	if err != nil {
		return fmt.Errorf("saving slot %q: %w", slot, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("saving slot %q: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving slot %q: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("saving slot %q: %w", slot, err)
	}
	s.logger.Info("game saved", zap.String("slot", slot), zap.String("path", path))
	return nil
}

// Load reads the slot's file.
func (s *Store) Load(ctx context.Context, slot string) (*world.Definition, error) {
	if err := storage.ValidateSlot(slot); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(s.Path(slot))
}

// LoadFile decodes the game file at path.
//
// Postcondition: a missing file yields an error wrapping storage.ErrSlotNotFound.
func LoadFile(path string) (*world.Definition, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", storage.ErrSlotNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	def, err := storage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return def, nil
}
