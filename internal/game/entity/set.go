package entity

import "errors"

// MaxIDs is the fixed capacity of every Set.
const MaxIDs = 50

var (
	// ErrSetFull is returned when adding to a Set already holding MaxIDs ids.
	ErrSetFull = errors.New("entity: set is full")
	// ErrInvalidID is returned when NoID is passed where a real id is required.
	ErrInvalidID = errors.New("entity: invalid id")
	// ErrNilSet is returned by operations invoked on a nil Set.
	ErrNilSet = errors.New("entity: nil set")
)

// Set is a bounded collection of unique ids kept in insertion order.
//
// Invariant: no duplicates; Len() <= MaxIDs. Deleting swaps the removed slot
// with the last occupied slot, so order is only stable between deletions.
type Set struct {
	ids []ID
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{ids: make([]ID, 0, MaxIDs)}
}

// Add inserts id. Adding an id already present succeeds without change.
//
// Precondition: id != NoID.
// Postcondition: Has(id) is true on nil error; the set is unchanged on error.
func (s *Set) Add(id ID) error {
	if s == nil {
		return ErrNilSet
	}
	if id == NoID {
		return ErrInvalidID
	}
	if s.Has(id) {
		return nil
	}
	if len(s.ids) >= MaxIDs {
		return ErrSetFull
	}
	s.ids = append(s.ids, id)
	return nil
}

// Delete removes id, moving the last element into its slot.
//
// Postcondition: Returns the removed id, or NoID if id was absent.
func (s *Set) Delete(id ID) ID {
	if s == nil || id == NoID {
		return NoID
	}
	for i, v := range s.ids {
		if v != id {
			continue
		}
		last := len(s.ids) - 1
		s.ids[i] = s.ids[last]
		s.ids = s.ids[:last]
		return id
	}
	return NoID
}

// Has reports whether id is in the set.
func (s *Set) Has(id ID) bool {
	if s == nil || id == NoID {
		return false
	}
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Len returns the number of ids held. A nil set has length 0.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// At returns the id stored at position i, or NoID when i is out of range.
func (s *Set) At(i int) ID {
	if s == nil || i < 0 || i >= len(s.ids) {
		return NoID
	}
	return s.ids[i]
}

// IDs returns a copy of the held ids in current order.
func (s *Set) IDs() []ID {
	if s == nil {
		return nil
	}
	out := make([]ID, len(s.ids))
	copy(out, s.ids)
	return out
}
