package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/colony/internal/game/entity"
)

// DefaultMax is the capacity of a freshly created Inventory.
const DefaultMax = 25

// ErrFull is returned when adding to an Inventory already at its capacity.
var ErrFull = errors.New("inventory: full")

// Inventory is the capacity-bounded set of object ids a player carries.
//
// Invariant: Len() <= Max() at all times.
type Inventory struct {
	objects *entity.Set
	max     int
}

// New returns an empty Inventory with capacity DefaultMax.
func New() *Inventory {
	return &Inventory{objects: entity.NewSet(), max: DefaultMax}
}

// SetMax changes the capacity.
//
// Precondition: 0 < n <= entity.MaxIDs and n >= Len().
// Postcondition: Max() == n on nil error; unchanged on error.
func (inv *Inventory) SetMax(n int) error {
	if inv == nil {
		return entity.ErrNilSet
	}
	if n <= 0 || n > entity.MaxIDs {
		return fmt.Errorf("inventory: max must be 1-%d, got %d", entity.MaxIDs, n)
	}
	if n < inv.objects.Len() {
		return fmt.Errorf("inventory: max %d below current count %d", n, inv.objects.Len())
	}
	inv.max = n
	return nil
}

// Max returns the capacity.
func (inv *Inventory) Max() int {
	if inv == nil {
		return 0
	}
	return inv.max
}

// Add stores id.
//
// Precondition: id != NoID.
// Postcondition: on error the inventory is unchanged.
func (inv *Inventory) Add(id entity.ID) error {
	if inv == nil {
		return entity.ErrNilSet
	}
	if id == entity.NoID {
		return entity.ErrInvalidID
	}
	if inv.objects.Len() >= inv.max {
		return ErrFull
	}
	return inv.objects.Add(id)
}

// Delete removes id and returns it, or NoID when absent.
func (inv *Inventory) Delete(id entity.ID) entity.ID {
	if inv == nil {
		return entity.NoID
	}
	return inv.objects.Delete(id)
}

// Has reports whether id is carried.
func (inv *Inventory) Has(id entity.ID) bool {
	return inv != nil && inv.objects.Has(id)
}

// Len returns the number of carried objects.
func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return inv.objects.Len()
}

// At returns the id at position i or NoID.
func (inv *Inventory) At(i int) entity.ID {
	if inv == nil {
		return entity.NoID
	}
	return inv.objects.At(i)
}

// IDs returns a copy of the carried ids.
func (inv *Inventory) IDs() []entity.ID {
	if inv == nil {
		return nil
	}
	return inv.objects.IDs()
}
