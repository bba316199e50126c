// Package render paints a plain-text frame of the game: the acting
// player's space and its four level neighbours, the info panel, the verb
// help and feedback for the last command.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cory-johannsen/colony/internal/game/command"
	"github.com/cory-johannsen/colony/internal/game/entity"
	"github.com/cory-johannsen/colony/internal/game/state"
	"github.com/cory-johannsen/colony/internal/game/world"
)

// Banner is printed between the map and the help text.
const Banner = "The anthill game"

// Prompt is written after a frame while the game accepts input.
const Prompt = "prompt:> "

const innerWidth = world.GDescLineLength + 2

// asciiBorder draws boxes the way the flat-file gdesc rows expect.
var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

var (
	styleSpace = lipgloss.NewStyle().
			Border(asciiBorder).
			Width(innerWidth).
			Padding(0, 1)

	styleInfo = lipgloss.NewStyle().
			Border(asciiBorder).
			Padding(0, 1)
)

// Renderer writes frames to an output stream.
type Renderer struct {
	out io.Writer
	reg *command.Registry
}

// New returns a Renderer writing to out and describing the verbs in reg.
//
// Precondition: out and reg must be non-nil.
func New(out io.Writer, reg *command.Registry) *Renderer {
	return &Renderer{out: out, reg: reg}
}

// Paint writes one frame, followed by Prompt unless the game is over.
func (r *Renderer) Paint(g *state.Game) error {
	frame := r.Frame(g)
	if !g.Finished() && g.LastCommand().Code != command.Exit {
		frame += "\n" + Prompt
	} else {
		frame += "\n"
	}
	_, err := io.WriteString(r.out, frame)
	return err
}

// Frame returns the full text of one frame without the prompt.
func (r *Renderer) Frame(g *state.Game) string {
	top := lipgloss.JoinHorizontal(lipgloss.Top, r.Map(g), " ", styleInfo.Render(strings.Join(g.Info(), "\n")))
	width := lipgloss.Width(top)
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, Banner),
		r.Help(),
		r.Feedback(g.LastCommand()),
	)
}

// Map draws the acting player's space surrounded by its north, south,
// east and west neighbours. Open exits are marked with arrows.
func (r *Renderer) Map(g *state.Game) string {
	p := g.CurrentPlayer()
	if p == nil {
		return "No player is left standing."
	}
	here := p.Location
	center := spaceBox(g, here, g.CurrentPlayerGDesc())
	blank := lipgloss.Place(lipgloss.Width(center), lipgloss.Height(center), lipgloss.Left, lipgloss.Top, "")

	neighbour := func(dir world.Direction) string {
		id := g.Connection(here, dir)
		if id == entity.NoID {
			return blank
		}
		return spaceBox(g, id, "")
	}
	arrow := func(dir world.Direction, mark string) string {
		if g.ConnectionOpen(here, dir) {
			return mark
		}
		return " "
	}

	middle := lipgloss.JoinHorizontal(lipgloss.Center,
		neighbour(world.West), " "+arrow(world.West, "<")+" ",
		center,
		" "+arrow(world.East, ">")+" ", neighbour(world.East),
	)
	var rows []string
	if g.Connection(here, world.North) != entity.NoID {
		rows = append(rows, neighbour(world.North), arrow(world.North, "^"))
	}
	rows = append(rows, middle)
	if g.Connection(here, world.South) != entity.NoID {
		rows = append(rows, arrow(world.South, "v"), neighbour(world.South))
	}
	if vertical := verticalExits(g, here); vertical != "" {
		rows = append(rows, vertical)
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// verticalExits names the up and down neighbours, which have no place on
// the flat map.
func verticalExits(g *state.Game, here entity.ID) string {
	var parts []string
	for _, dir := range []world.Direction{world.Up, world.Down} {
		id := g.Connection(here, dir)
		if id == entity.NoID {
			continue
		}
		door := "closed"
		if g.ConnectionOpen(here, dir) {
			door = "open"
		}
		parts = append(parts, fmt.Sprintf("%s: %d (%s)", dir, id, door))
	}
	return strings.Join(parts, "   ")
}

// spaceBox draws one space. lead is prepended to the player tags and is
// only set for the acting player's own space.
func spaceBox(g *state.Game, id entity.ID, lead string) string {
	s := g.Space(id)
	if s == nil {
		return ""
	}

	header := fmt.Sprintf("%d", id)
	var tags []string
	if lead != "" {
		tags = append(tags, lead)
	}
	for _, p := range g.OtherPlayersAt(id) {
		tags = append(tags, p.GDesc)
	}
	if s.Discovered {
		header = fmt.Sprintf("%s %d", s.Name, id)
		if enemy := g.EnemyAt(id); enemy != nil {
			tags = append(tags, enemy.GDesc)
		}
	}

	lines := []string{fit(header), fit(strings.Join(tags, " "))}
	for i := 0; i < world.GDescLines; i++ {
		row := ""
		if s.Discovered {
			row = s.GDesc(i)
		}
		lines = append(lines, fit(row))
	}
	lines = append(lines, fit(strings.Join(g.ObjectNamesAt(id), ", ")))
	return styleSpace.Render(strings.Join(lines, "\n"))
}

// fit truncates line to the box's inner width.
func fit(line string) string {
	runes := []rune(line)
	if len(runes) <= world.GDescLineLength {
		return line
	}
	return string(runes[:world.GDescLineLength])
}

// Help lists every verb with its short form, sorted by name.
func (r *Renderer) Help() string {
	verbs := r.reg.Verbs()
	sort.Slice(verbs, func(i, j int) bool { return verbs[i].Name < verbs[j].Name })
	parts := make([]string, 0, len(verbs))
	for _, v := range verbs {
		if len(v.Aliases) > 0 {
			parts = append(parts, v.Name+" or "+v.Aliases[0])
		} else {
			parts = append(parts, v.Name)
		}
	}
	return " The commands you can use are:\n " + strings.Join(parts, ", ") + "."
}

// Feedback describes the last command as " long (short): OK|ERROR".
func (r *Renderer) Feedback(cmd *command.Command) string {
	if cmd == nil {
		return ""
	}
	long, short := cmd.Code.String(), ""
	for _, v := range r.reg.Verbs() {
		if v.Code == cmd.Code {
			long = v.Name
			if len(v.Aliases) > 0 {
				short = v.Aliases[0]
			}
			break
		}
	}
	return fmt.Sprintf(" %s (%s): %s", long, short, cmd.Status)
}
