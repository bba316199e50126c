package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/game/world"
	"github.com/cory-johannsen/colony/internal/storage"
)

// SlotInfo describes one saved game without its world.
type SlotInfo struct {
	ID        uuid.UUID
	Slot      string
	Turn      int
	UpdatedAt time.Time
}

// SaveRepository keeps encoded worlds in the save_slots table. It
// implements storage.SaveStore.
type SaveRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

var _ storage.SaveStore = (*SaveRepository)(nil)

// NewSaveRepository creates a SaveRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool with the
// save_slots migration applied; logger must be non-nil.
func NewSaveRepository(db *pgxpool.Pool, logger *zap.Logger) *SaveRepository {
	return &SaveRepository{db: db, logger: logger}
}

// Save upserts def under slot. A new slot gets a fresh row id; an existing
// one keeps its id and created_at.
//
// Postcondition: Load(slot) returns an equivalent world on nil error.
func (r *SaveRepository) Save(ctx context.Context, slot string, def *world.Definition) error {
	if err := storage.ValidateSlot(slot); err != nil {
		return err
	}
	data, err := storage.EncodeBytes(def)
	if err != nil {
		return fmt.Errorf("encoding slot %q: %w", slot, err)
	}
	var id uuid.UUID
	err = r.db.QueryRow(ctx, `
		INSERT INTO save_slots (id, slot, turn, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slot) DO UPDATE
			SET turn = EXCLUDED.turn, data = EXCLUDED.data, updated_at = NOW()
		RETURNING id`,
		uuid.New(), slot, def.Turn, string(data),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("saving slot %q: %w", slot, err)
	}
	r.logger.Info("game saved",
		zap.String("backend", "postgres"),
		zap.String("slot", slot),
		zap.Stringer("id", id),
	)
	return nil
}

// Load reads and decodes the world saved under slot.
//
// Postcondition: Returns storage.ErrSlotNotFound when the slot has no row.
func (r *SaveRepository) Load(ctx context.Context, slot string) (*world.Definition, error) {
	if err := storage.ValidateSlot(slot); err != nil {
		return nil, err
	}
	var data string
	err := r.db.QueryRow(ctx, `SELECT data FROM save_slots WHERE slot = $1`, slot).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("slot %q: %w", slot, storage.ErrSlotNotFound)
		}
		return nil, fmt.Errorf("loading slot %q: %w", slot, err)
	}
	def, err := storage.DecodeBytes([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("decoding slot %q: %w", slot, err)
	}
	return def, nil
}

// List returns every saved slot, most recently updated first.
func (r *SaveRepository) List(ctx context.Context) ([]SlotInfo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, slot, turn, updated_at
		FROM save_slots ORDER BY updated_at DESC, slot ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing save slots: %w", err)
	}
	defer rows.Close()

	var out []SlotInfo
	for rows.Next() {
		var s SlotInfo
		if err := rows.Scan(&s.ID, &s.Slot, &s.Turn, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning save slot: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating save slots: %w", err)
	}
	return out, nil
}

// Delete removes slot.
//
// Postcondition: Returns storage.ErrSlotNotFound when no row was removed.
func (r *SaveRepository) Delete(ctx context.Context, slot string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM save_slots WHERE slot = $1`, slot)
	if err != nil {
		return fmt.Errorf("deleting slot %q: %w", slot, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("slot %q: %w", slot, storage.ErrSlotNotFound)
	}
	return nil
}
