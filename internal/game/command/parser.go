package command

import (
	"bufio"
	"io"
	"strings"
)

// ParseResult holds the verb and argument split from a text line.
type ParseResult struct {
	// Verb is the first word of the input, lowercased.
	Verb string
	// RawArgs is the text after the verb with internal spacing preserved.
	RawArgs string
}

// Parse splits a text line into a verb and its raw argument.
//
// Postcondition: Returns a ParseResult. If line is blank, Verb is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return ParseResult{Verb: strings.ToLower(line)}
	}

	return ParseResult{
		Verb:    strings.ToLower(line[:idx]),
		RawArgs: strings.TrimSpace(line[idx+1:]),
	}
}

// Interpret turns a raw input line into a Command. A blank line or an
// unrecognised verb yields Unknown.
//
// Postcondition: Returns a non-nil Command with StatusOK.
func (r *Registry) Interpret(line string) *Command {
	res := Parse(line)
	if res.Verb == "" {
		return New(Unknown, "")
	}
	v, ok := r.Resolve(res.Verb)
	if !ok {
		return New(Unknown, res.RawArgs)
	}
	return New(v.Code, res.RawArgs)
}

// Reader reads commands line by line.
type Reader struct {
	reg     *Registry
	scanner *bufio.Scanner
}

// NewReader returns a Reader that interprets lines from in with reg.
//
// Precondition: reg and in must be non-nil.
func NewReader(reg *Registry, in io.Reader) *Reader {
	return &Reader{reg: reg, scanner: bufio.NewScanner(in)}
}

// Next reads the next line. End of input and read errors map to Exit.
//
// Postcondition: Returns a non-nil Command.
func (rd *Reader) Next() *Command {
	if !rd.scanner.Scan() {
		return New(Exit, "")
	}
	return rd.reg.Interpret(rd.scanner.Text())
}
