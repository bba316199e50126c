// Package entity provides the identifier type shared by every game record
// and the bounded id set used as the storage primitive for containment.
package entity

import "strconv"

// ID identifies a record within its kind (space, object, character, player, link).
type ID int64

// NoID is the reserved "no identifier" sentinel.
const NoID ID = -1

// IsSet reports whether id is a real identifier.
func (id ID) IsSet() bool {
	return id != NoID
}

// String returns the decimal form of id.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a decimal identifier. Empty input yields NoID.
//
// Postcondition: Returns the parsed ID, or NoID and a non-nil error.
func ParseID(s string) (ID, error) {
	if s == "" {
		return NoID, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NoID, err
	}
	return ID(v), nil
}
