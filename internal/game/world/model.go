// Package world provides the world graph model: spaces, the directed links
// between them, and directions.
package world

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cory-johannsen/colony/internal/game/entity"
)

// Direction is the compass or vertical heading of a link.
type Direction int

// Directions in persisted order. The integer values appear in game files.
const (
	North Direction = iota
	South
	East
	West
	Up
	Down
	NoDirection Direction = -1
)

// StandardDirections lists every valid direction in persisted order.
var StandardDirections = []Direction{North, South, East, West, Up, Down}

var directionNames = map[Direction][2]string{
	North: {"north", "n"},
	South: {"south", "s"},
	East:  {"east", "e"},
	West:  {"west", "w"},
	Up:    {"up", "u"},
	Down:  {"down", "d"},
}

// ParseDirection maps a long or short direction token to a Direction,
// ignoring case.
//
// Postcondition: Returns (dir, true) on a match, or (NoDirection, false).
func ParseDirection(s string) (Direction, bool) {
	s = strings.TrimSpace(s)
	for _, d := range StandardDirections {
		names := directionNames[d]
		if strings.EqualFold(s, names[0]) || strings.EqualFold(s, names[1]) {
			return d, true
		}
	}
	return NoDirection, false
}

// IsValid reports whether d is one of the six standard directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= Down
}

// String returns the long lowercase name, or "none".
func (d Direction) String() string {
	if names, ok := directionNames[d]; ok {
		return names[0]
	}
	return "none"
}

// Opposite returns the reverse heading, or NoDirection for an invalid d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return NoDirection
	}
}

// Link is one directed, possibly locked edge between two spaces.
// A two-way corridor needs two Link records.
type Link struct {
	ID          entity.ID
	Name        string
	Origin      entity.ID
	Destination entity.ID
	Direction   Direction
	Open        bool
}

// NewLink returns a closed Link with no endpoints.
func NewLink(id entity.ID) *Link {
	return &Link{
		ID:          id,
		Origin:      entity.NoID,
		Destination: entity.NoID,
		Direction:   NoDirection,
	}
}

// Leaves reports whether l starts at spaceID heading dir.
func (l *Link) Leaves(spaceID entity.ID, dir Direction) bool {
	return l != nil && l.Origin == spaceID && l.Direction == dir
}

// GDescLines is the number of rows in a space's graphical description.
const GDescLines = 8

// GDescLineLength is the maximum rune count of a single row.
const GDescLineLength = 30

// Space is a room in the world graph.
type Space struct {
	ID   entity.ID
	Name string
	// Discovered gates whether the space's contents are shown.
	Discovered bool

	objects    *entity.Set
	characters *entity.Set
	gdesc      [GDescLines]string
}

// NewSpace returns an undiscovered, empty Space.
func NewSpace(id entity.ID) *Space {
	return &Space{
		ID:         id,
		objects:    entity.NewSet(),
		characters: entity.NewSet(),
	}
}

// Objects returns the set of object ids lying here.
func (s *Space) Objects() *entity.Set { return s.objects }

// Characters returns the set of character ids present here.
func (s *Space) Characters() *entity.Set { return s.characters }

// GDesc returns row i of the graphical description, or "" when out of range.
func (s *Space) GDesc(i int) string {
	if s == nil || i < 0 || i >= GDescLines {
		return ""
	}
	return s.gdesc[i]
}

// GDescRows returns a copy of all rows.
func (s *Space) GDescRows() [GDescLines]string {
	return s.gdesc
}

// SetGDesc assigns the graphical description rows. Missing rows are blank.
//
// Precondition: len(rows) <= GDescLines; every row <= GDescLineLength runes.
// Postcondition: unchanged on error.
func (s *Space) SetGDesc(rows []string) error {
	if len(rows) > GDescLines {
		return fmt.Errorf("space %d: %d gdesc rows, max %d", s.ID, len(rows), GDescLines)
	}
	var next [GDescLines]string
	for i, r := range rows {
		if n := utf8.RuneCountInString(r); n > GDescLineLength {
			return fmt.Errorf("space %d: gdesc row %d is %d runes, max %d", s.ID, i, n, GDescLineLength)
		}
		next[i] = r
	}
	s.gdesc = next
	return nil
}
