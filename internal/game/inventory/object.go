// Package inventory provides objects and the bounded inventory players carry.
package inventory

import "github.com/cory-johannsen/colony/internal/game/entity"

// Object is an item that can lie in a space or be carried by a player.
type Object struct {
	ID          entity.ID
	Name        string
	Description string
	// Health is the delta applied to whoever consumes the object with USE.
	Health  int
	Movable bool
	// Dependency is another object that must already be held before this
	// one can be taken. NoID means none.
	Dependency entity.ID
	// Open is the link this object unlocks. NoID means none.
	Open entity.ID
}

// NewObject returns an Object with the given id and no relations.
//
// Postcondition: Dependency and Open are NoID; Movable is false.
func NewObject(id entity.ID) *Object {
	return &Object{
		ID:         id,
		Dependency: entity.NoID,
		Open:       entity.NoID,
	}
}

// DependsOn reports whether o requires id to be held before it can be taken.
func (o *Object) DependsOn(id entity.ID) bool {
	return o != nil && id != entity.NoID && o.Dependency == id
}

// Unlocks reports whether o can open the link identified by linkID.
func (o *Object) Unlocks(linkID entity.ID) bool {
	return o != nil && linkID != entity.NoID && o.Open == linkID
}
