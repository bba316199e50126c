package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/inventory"
	"github.com/cory-johannsen/colony/internal/game/npc"
	"github.com/cory-johannsen/colony/internal/game/player"
)

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

type yamlWorld struct {
	Turn       int             `yaml:"turn"`
	Spaces     []yamlSpace     `yaml:"spaces"`
	Links      []yamlLink      `yaml:"links"`
	Objects    []yamlObject    `yaml:"objects"`
	Characters []yamlCharacter `yaml:"characters"`
	Players    []yamlPlayer    `yaml:"players"`
}

type yamlSpace struct {
	ID         int64    `yaml:"id"`
	Name       string   `yaml:"name"`
	Discovered bool     `yaml:"discovered"`
	GDesc      []string `yaml:"gdesc"`
}

type yamlLink struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Origin      int64  `yaml:"origin"`
	Destination int64  `yaml:"destination"`
	Direction   string `yaml:"direction"`
	Open        bool   `yaml:"open"`
}

// Optional relations use pointers so an omitted key maps to NoID.
type yamlObject struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Location    *int64 `yaml:"location,omitempty"`
	Health      int    `yaml:"health"`
	Movable     bool   `yaml:"movable"`
	Dependency  *int64 `yaml:"dependency,omitempty"`
	Open        *int64 `yaml:"open,omitempty"`
}

type yamlCharacter struct {
	ID        int64  `yaml:"id"`
	Name      string `yaml:"name"`
	Location  *int64 `yaml:"location,omitempty"`
	Friendly  bool   `yaml:"friendly"`
	Health    int    `yaml:"health"`
	GDesc     string `yaml:"gdesc"`
	Message   string `yaml:"message"`
	Following *int64 `yaml:"following,omitempty"`
}

type yamlPlayer struct {
	ID        int64   `yaml:"id"`
	Name      string  `yaml:"name"`
	GDesc     string  `yaml:"gdesc"`
	Location  int64   `yaml:"location"`
	Health    int     `yaml:"health"`
	Backpack  int     `yaml:"backpack"`
	Damage    *int    `yaml:"damage"`
	Inventory []int64 `yaml:"inventory,omitempty"`
}

// LoadDefinitionFromFile reads and validates a YAML world file.
//
// Precondition: path must point to a YAML world file.
// Postcondition: Returns a validated Definition or a non-nil error.
func LoadDefinitionFromFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadDefinitionFromBytes(data)
}

// LoadDefinitionFromBytes parses and validates a world from YAML bytes.
//
// Postcondition: Returns a validated Definition or a non-nil error.
func LoadDefinitionFromBytes(data []byte) (*Definition, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	def, err := convertYAMLWorld(file.World)
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return def, nil
}

func optionalID(v *int64) entity.ID {
	if v == nil {
		return entity.NoID
	}
	return entity.ID(*v)
}

// convertYAMLWorld converts the parsed YAML structures into domain types.
func convertYAMLWorld(yw yamlWorld) (*Definition, error) {
	def := &Definition{Turn: yw.Turn}

	for _, ys := range yw.Spaces {
		s := NewSpace(entity.ID(ys.ID))
		s.Name = ys.Name
		s.Discovered = ys.Discovered
		if err := s.SetGDesc(ys.GDesc); err != nil {
			return nil, err
		}
		def.Spaces = append(def.Spaces, s)
	}

	for _, yl := range yw.Links {
		dir, ok := ParseDirection(yl.Direction)
		if !ok {
			return nil, fmt.Errorf("link %d: unknown direction %q", yl.ID, yl.Direction)
		}
		l := NewLink(entity.ID(yl.ID))
		l.Name = yl.Name
		l.Origin = entity.ID(yl.Origin)
		l.Destination = entity.ID(yl.Destination)
		l.Direction = dir
		l.Open = yl.Open
		def.Links = append(def.Links, l)
	}

	for _, yo := range yw.Objects {
		o := inventory.NewObject(entity.ID(yo.ID))
		o.Name = yo.Name
		o.Description = strings.TrimSpace(yo.Description)
		o.Health = yo.Health
		o.Movable = yo.Movable
		o.Dependency = optionalID(yo.Dependency)
		o.Open = optionalID(yo.Open)
		def.Objects = append(def.Objects, PlacedObject{Object: o, Location: optionalID(yo.Location)})
	}

	for _, yc := range yw.Characters {
		c := npc.NewCharacter(entity.ID(yc.ID))
		c.Name = yc.Name
		c.Friendly = yc.Friendly
		c.Health = yc.Health
		c.GDesc = yc.GDesc
		c.Message = strings.TrimSpace(yc.Message)
		c.Following = optionalID(yc.Following)
		def.Characters = append(def.Characters, PlacedCharacter{Character: c, Location: optionalID(yc.Location)})
	}

	for _, yp := range yw.Players {
		p := player.New(entity.ID(yp.ID))
		p.Name = yp.Name
		p.Location = entity.ID(yp.Location)
		if err := p.SetGDesc(yp.GDesc); err != nil {
			return nil, err
		}
		if err := p.SetHealth(yp.Health); err != nil {
			return nil, fmt.Errorf("player %d: %w", yp.ID, err)
		}
		if yp.Damage != nil {
			if err := p.SetDamage(*yp.Damage); err != nil {
				return nil, fmt.Errorf("player %d: %w", yp.ID, err)
			}
		}
		if yp.Backpack > 0 {
			if err := p.Inventory().SetMax(yp.Backpack); err != nil {
				return nil, fmt.Errorf("player %d: %w", yp.ID, err)
			}
		}
		for _, oid := range yp.Inventory {
			if err := p.Inventory().Add(entity.ID(oid)); err != nil {
				return nil, fmt.Errorf("player %d: carrying %d: %w", yp.ID, oid, err)
			}
		}
		def.Players = append(def.Players, p)
	}

	return def, nil
}

// MarshalYAML renders def in the world-file schema accepted by
// LoadDefinitionFromBytes.
func MarshalYAML(def *Definition) ([]byte, error) {
	var yw yamlWorld
	yw.Turn = def.Turn
	for _, s := range def.Spaces {
		rows := s.GDescRows()
		last := len(rows)
		for last > 0 && rows[last-1] == "" {
			last--
		}
		yw.Spaces = append(yw.Spaces, yamlSpace{
			ID: int64(s.ID), Name: s.Name, Discovered: s.Discovered, GDesc: append([]string(nil), rows[:last]...),
		})
	}
	for _, l := range def.Links {
		yw.Links = append(yw.Links, yamlLink{
			ID: int64(l.ID), Name: l.Name, Origin: int64(l.Origin), Destination: int64(l.Destination),
			Direction: l.Direction.String(), Open: l.Open,
		})
	}
	for _, po := range def.Objects {
		o := po.Object
		yw.Objects = append(yw.Objects, yamlObject{
			ID: int64(o.ID), Name: o.Name, Description: o.Description,
			Location: idPtr(po.Location), Health: o.Health, Movable: o.Movable,
			Dependency: idPtr(o.Dependency), Open: idPtr(o.Open),
		})
	}
	for _, pc := range def.Characters {
		c := pc.Character
		yw.Characters = append(yw.Characters, yamlCharacter{
			ID: int64(c.ID), Name: c.Name, Location: idPtr(pc.Location), Friendly: c.Friendly,
			Health: c.Health, GDesc: c.GDesc, Message: c.Message, Following: idPtr(c.Following),
		})
	}
	for _, p := range def.Players {
		dmg := p.Damage()
		yp := yamlPlayer{
			ID: int64(p.ID), Name: p.Name, GDesc: p.GDesc, Location: int64(p.Location),
			Health: p.Health(), Backpack: p.Inventory().Max(), Damage: &dmg,
		}
		for _, oid := range p.Inventory().IDs() {
			yp.Inventory = append(yp.Inventory, int64(oid))
		}
		yw.Players = append(yw.Players, yp)
	}
	return yaml.Marshal(yamlWorldFile{World: yw})
}

func idPtr(id entity.ID) *int64 {
	if id == entity.NoID {
		return nil
	}
	v := int64(id)
	return &v
}
