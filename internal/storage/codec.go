package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/inventory"
	"github.com/cory-johannsen/colony/internal/game/npc"
	"github.com/cory-johannsen/colony/internal/game/player"
	"github.com/cory-johannsen/colony/internal/game/world"
)

// Record prefixes of the game file.
const (
	PrefixSpace     = "#s:"
	PrefixObject    = "#o:"
	PrefixCharacter = "#c:"
	PrefixLink      = "#l:"
	PrefixPlayer    = "#p:"
	PrefixTurn      = "#t:"
)

// ErrUnencodable is returned when a text field holds a field or record
// delimiter.
var ErrUnencodable = errors.New("storage: field contains a delimiter")

// Encode writes def in the game-file format: spaces, objects, characters,
// links, players, then the turn.
//
// Postcondition: Decode(Encode(def)) reproduces every record of def.
func Encode(w io.Writer, def *world.Definition) error {
	bw := bufio.NewWriter(w)
	rec := func(prefix string, fields ...string) error {
		for _, f := range fields {
			if strings.ContainsAny(f, "|\r\n") {
				return fmt.Errorf("%w: %s%q", ErrUnencodable, prefix, f)
			}
		}
		_, err := bw.WriteString(prefix + strings.Join(fields, "|") + "|\n")
		return err
	}

	for _, s := range def.Spaces {
		fields := []string{id(s.ID), s.Name, boolField(s.Discovered)}
		for _, row := range s.GDescRows() {
			fields = append(fields, row)
		}
		if err := rec(PrefixSpace, fields...); err != nil {
			return err
		}
	}
	for _, po := range def.Objects {
		o := po.Object
		if err := rec(PrefixObject, id(o.ID), o.Name, id(po.Location), o.Description,
			strconv.Itoa(o.Health), boolField(o.Movable), id(o.Dependency), id(o.Open)); err != nil {
			return err
		}
	}
	for _, pc := range def.Characters {
		c := pc.Character
		if err := rec(PrefixCharacter, id(c.ID), c.Name, id(pc.Location), boolField(c.Friendly),
			strconv.Itoa(c.Health), c.GDesc, c.Message, id(c.Following)); err != nil {
			return err
		}
	}
	for _, l := range def.Links {
		if err := rec(PrefixLink, id(l.ID), l.Name, id(l.Origin), id(l.Destination),
			strconv.Itoa(int(l.Direction)), boolField(l.Open)); err != nil {
			return err
		}
	}
	for _, p := range def.Players {
		carried := make([]string, 0, p.Inventory().Len())
		for _, oid := range p.Inventory().IDs() {
			carried = append(carried, id(oid))
		}
		if err := rec(PrefixPlayer, id(p.ID), p.Name, p.GDesc, id(p.Location), strconv.Itoa(p.Health()),
			strconv.Itoa(p.Inventory().Max()), strconv.Itoa(p.Damage()), strings.Join(carried, ",")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%s%d\n", PrefixTurn, def.Turn); err != nil {
		return err
	}
	return bw.Flush()
}

// EncodeBytes is Encode into a byte slice.
func EncodeBytes(def *world.Definition) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, def); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a game file. Blank lines and lines without a known prefix
// are skipped; a trailing "|" on a record is optional.
//
// Postcondition: Returns a validated Definition or an error naming the
// offending line.
func Decode(r io.Reader) (*world.Definition, error) {
	def := &world.Definition{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if len(line) < 3 {
			continue
		}
		var err error
		switch prefix, body := line[:3], line[3:]; prefix {
		case PrefixSpace:
			err = decodeSpace(def, splitRecord(body))
		case PrefixObject:
			err = decodeObject(def, splitRecord(body))
		case PrefixCharacter:
			err = decodeCharacter(def, splitRecord(body))
		case PrefixLink:
			err = decodeLink(def, splitRecord(body))
		case PrefixPlayer:
			err = decodePlayer(def, splitRecord(body))
		case PrefixTurn:
			def.Turn, err = strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(body, "|")))
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading game file: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game file: %w", err)
	}
	return def, nil
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(data []byte) (*world.Definition, error) {
	return Decode(bytes.NewReader(data))
}

func splitRecord(body string) []string {
	return strings.Split(strings.TrimSuffix(body, "|"), "|")
}

func need(fields []string, n int, kind string) error {
	if len(fields) < n {
		return fmt.Errorf("%s record has %d fields, want at least %d", kind, len(fields), n)
	}
	return nil
}

func decodeSpace(def *world.Definition, f []string) error {
	if err := need(f, 3, "space"); err != nil {
		return err
	}
	sid, err := parseID(f[0])
	if err != nil {
		return err
	}
	s := world.NewSpace(sid)
	s.Name = strings.TrimSpace(f[1])
	if s.Discovered, err = parseBool(f[2]); err != nil {
		return err
	}
	rows := f[3:]
	if len(rows) > world.GDescLines {
		rows = rows[:world.GDescLines]
	}
	if err := s.SetGDesc(rows); err != nil {
		return err
	}
	def.Spaces = append(def.Spaces, s)
	return nil
}

func decodeObject(def *world.Definition, f []string) error {
	if err := need(f, 8, "object"); err != nil {
		return err
	}
	oid, err := parseID(f[0])
	if err != nil {
		return err
	}
	o := inventory.NewObject(oid)
	o.Name = strings.TrimSpace(f[1])
	loc, err := parseID(f[2])
	if err != nil {
		return err
	}
	o.Description = strings.TrimSpace(f[3])
	if o.Health, err = parseInt(f[4]); err != nil {
		return err
	}
	if o.Movable, err = parseBool(f[5]); err != nil {
		return err
	}
	if o.Dependency, err = parseID(f[6]); err != nil {
		return err
	}
	if o.Open, err = parseID(f[7]); err != nil {
		return err
	}
	def.Objects = append(def.Objects, world.PlacedObject{Object: o, Location: loc})
	return nil
}

func decodeCharacter(def *world.Definition, f []string) error {
	if err := need(f, 8, "character"); err != nil {
		return err
	}
	cid, err := parseID(f[0])
	if err != nil {
		return err
	}
	c := npc.NewCharacter(cid)
	c.Name = strings.TrimSpace(f[1])
	loc, err := parseID(f[2])
	if err != nil {
		return err
	}
	if c.Friendly, err = parseBool(f[3]); err != nil {
		return err
	}
	if c.Health, err = parseInt(f[4]); err != nil {
		return err
	}
	c.GDesc = f[5]
	c.Message = strings.TrimSpace(f[6])
	if c.Following, err = parseID(f[7]); err != nil {
		return err
	}
	def.Characters = append(def.Characters, world.PlacedCharacter{Character: c, Location: loc})
	return nil
}

func decodeLink(def *world.Definition, f []string) error {
	if err := need(f, 6, "link"); err != nil {
		return err
	}
	lid, err := parseID(f[0])
	if err != nil {
		return err
	}
	l := world.NewLink(lid)
	l.Name = strings.TrimSpace(f[1])
	if l.Origin, err = parseID(f[2]); err != nil {
		return err
	}
	if l.Destination, err = parseID(f[3]); err != nil {
		return err
	}
	dir, err := parseInt(f[4])
	if err != nil {
		return err
	}
	l.Direction = world.Direction(dir)
	if l.Open, err = parseBool(f[5]); err != nil {
		return err
	}
	def.Links = append(def.Links, l)
	return nil
}

func decodePlayer(def *world.Definition, f []string) error {
	if err := need(f, 6, "player"); err != nil {
		return err
	}
	pid, err := parseID(f[0])
	if err != nil {
		return err
	}
	p := player.New(pid)
	p.Name = strings.TrimSpace(f[1])
	if err := p.SetGDesc(f[2]); err != nil {
		return err
	}
	if p.Location, err = parseID(f[3]); err != nil {
		return err
	}
	health, err := parseInt(f[4])
	if err != nil {
		return err
	}
	if err := p.SetHealth(health); err != nil {
		return err
	}
	backpack, err := parseInt(f[5])
	if err != nil {
		return err
	}
	if err := p.Inventory().SetMax(backpack); err != nil {
		return err
	}
	if len(f) > 6 && strings.TrimSpace(f[6]) != "" {
		damage, err := parseInt(f[6])
		if err != nil {
			return err
		}
		if err := p.SetDamage(damage); err != nil {
			return err
		}
	}
	if len(f) > 7 {
		for _, s := range strings.Split(f[7], ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}
			oid, err := parseID(s)
			if err != nil {
				return err
			}
			if err := p.Inventory().Add(oid); err != nil {
				return fmt.Errorf("player %d carrying %d: %w", pid, oid, err)
			}
		}
	}
	def.Players = append(def.Players, p)
	return nil
}

func id(v entity.ID) string { return strconv.FormatInt(int64(v), 10) }

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseID(s string) (entity.ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return entity.NoID, fmt.Errorf("parsing id %q: %w", s, err)
	}
	return entity.ID(v), nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing int %q: %w", s, err)
	}
	return v, nil
}

func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("parsing bool %q: want 0 or 1", s)
}
