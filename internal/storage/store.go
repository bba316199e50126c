// Package storage persists game worlds. It defines the SaveStore contract
// every backend implements and the line-oriented game-file codec they share.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/colony/internal/game/world"
)

//go:generate mockgen -destination=mock/mock_store.go -package=mock github.com/cory-johannsen/colony/internal/storage SaveStore

var (
	// ErrSlotNotFound is returned when loading a slot that was never saved.
	ErrSlotNotFound = errors.New("storage: save slot not found")
	// ErrInvalidSlot is returned for an empty or malformed slot name.
	ErrInvalidSlot = errors.New("storage: invalid slot name")
)

// SaveStore saves and restores whole worlds under a slot name.
type SaveStore interface {
	// Save writes def under slot, replacing any previous save.
	Save(ctx context.Context, slot string, def *world.Definition) error
	// Load reads the world saved under slot. It returns ErrSlotNotFound
	// when nothing was saved there.
	Load(ctx context.Context, slot string) (*world.Definition, error)
}

// MaxSlotLen bounds slot names so they fit every backend's key column.
const MaxSlotLen = 128

// ValidateSlot checks that slot is usable as a key or file name.
//
// Postcondition: Returns nil, or an error wrapping ErrInvalidSlot.
func ValidateSlot(slot string) error {
	switch {
	case strings.TrimSpace(slot) == "":
		return fmt.Errorf("%w: empty", ErrInvalidSlot)
	case strings.ContainsAny(slot, "/\\\x00\n"):
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	case slot == "." || slot == "..":
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	case len(slot) > MaxSlotLen:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidSlot, MaxSlotLen)
	}
	return nil
}
