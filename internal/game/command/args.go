package command

import (
	"errors"
	"fmt"
	"strings"
)

// Separators of the two-operand argument forms.
const (
	SepOver = "over" // use <object> over <character>
	SepWith = "with" // open <link> with <object>
)

var (
	// ErrNoSeparator is returned when the argument holds no separator word.
	ErrNoSeparator = errors.New("command: separator not found")
	// ErrMalformed is returned when an operand around the separator is missing.
	ErrMalformed = errors.New("command: malformed argument")
)

// Pair is an argument of the form "<Left> <sep> <Right>".
type Pair struct {
	Left  string
	Right string
}

// SplitPair splits arg around the first standalone occurrence of sep,
// ignoring case. Operands may span several words.
//
// Postcondition: On nil error both Left and Right are non-empty.
func SplitPair(arg, sep string) (Pair, error) {
	fields := strings.Fields(arg)
	for i, f := range fields {
		if !strings.EqualFold(f, sep) {
			continue
		}
		p := Pair{
			Left:  strings.Join(fields[:i], " "),
			Right: strings.Join(fields[i+1:], " "),
		}
		if p.Left == "" || p.Right == "" {
			return Pair{}, fmt.Errorf("%w: %q", ErrMalformed, arg)
		}
		return p, nil
	}
	return Pair{}, fmt.Errorf("%w: %q in %q", ErrNoSeparator, sep, arg)
}
