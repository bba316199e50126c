// Package command provides the command codes, the verb registry, the line
// tokenizer and the argument sub-grammar used by the action dispatcher.
package command

// Code identifies the action a command requests.
type Code int

// Command codes. NoCmd marks a command that was never read.
const (
	NoCmd Code = iota - 1
	Unknown
	Exit
	Take
	Drop
	Chat
	Attack
	Move
	Inspect
	Use
	Recruit
	Abandon
	Open
	Save
	Load
)

var codeNames = map[Code]string{
	NoCmd:   "no_cmd",
	Unknown: "unknown",
	Exit:    "exit",
	Take:    "take",
	Drop:    "drop",
	Chat:    "chat",
	Attack:  "attack",
	Move:    "move",
	Inspect: "inspect",
	Use:     "use",
	Recruit: "recruit",
	Abandon: "abandon",
	Open:    "open",
	Save:    "save",
	Load:    "load",
}

// String returns the lowercase string code written to the action log.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return ""
}

// Categories for organizing verbs in help output.
const (
	CategoryMovement = "movement"
	CategoryItems    = "items"
	CategoryCombat   = "combat"
	CategorySocial   = "social"
	CategorySystem   = "system"
)

// Verb defines a player-typed command word.
type Verb struct {
	// Name is the canonical long form.
	Name string
	// Aliases are alternate (short) forms.
	Aliases []string
	// Help is the short help text shown under the map.
	Help string
	// Category groups the verb for help output.
	Category string
	// Code is the action the verb maps to.
	Code Code
}

// BuiltinVerbs returns every verb the game understands.
func BuiltinVerbs() []Verb {
	return []Verb{
		{Name: "move", Aliases: []string{"m"}, Help: "move <n|s|e|w|u|d>", Category: CategoryMovement, Code: Move},

		{Name: "take", Aliases: []string{"t"}, Help: "take <object>", Category: CategoryItems, Code: Take},
		{Name: "drop", Aliases: []string{"d"}, Help: "drop <object>", Category: CategoryItems, Code: Drop},
		{Name: "inspect", Aliases: []string{"i"}, Help: "inspect <object>", Category: CategoryItems, Code: Inspect},
		{Name: "use", Aliases: []string{"u"}, Help: "use <object> [over <character>]", Category: CategoryItems, Code: Use},
		{Name: "open", Aliases: []string{"o"}, Help: "open <link> with <object>", Category: CategoryItems, Code: Open},

		{Name: "attack", Aliases: []string{"a"}, Help: "attack <character>", Category: CategoryCombat, Code: Attack},

		{Name: "chat", Aliases: []string{"c"}, Help: "chat <character>", Category: CategorySocial, Code: Chat},
		{Name: "recruit", Aliases: []string{"r"}, Help: "recruit <character>", Category: CategorySocial, Code: Recruit},
		{Name: "abandon", Aliases: []string{"ab"}, Help: "abandon <character>", Category: CategorySocial, Code: Abandon},

		{Name: "save", Aliases: []string{"s"}, Help: "save <slot>", Category: CategorySystem, Code: Save},
		{Name: "load", Aliases: []string{"l"}, Help: "load <slot>", Category: CategorySystem, Code: Load},
		{Name: "exit", Aliases: []string{"e"}, Help: "exit", Category: CategorySystem, Code: Exit},
	}
}
