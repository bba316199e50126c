package command

// Status is the outcome flag an action handler sets on a command.
type Status int

const (
	// StatusError marks a command whose preconditions failed.
	StatusError Status = iota
	// StatusOK marks a command that was carried out.
	StatusOK
)

// String returns "OK" or "ERROR".
func (s Status) String() string {
	if s == StatusOK {
		return "OK"
	}
	return "ERROR"
}

// Command is one parsed player instruction and its outcome.
type Command struct {
	Code Code
	// Arg is the raw text after the verb, internal spacing preserved.
	Arg    string
	Status Status
}

// New returns a Command for code and arg with StatusOK.
func New(code Code, arg string) *Command {
	return &Command{Code: code, Arg: arg, Status: StatusOK}
}

// SetStatus records the handler outcome. It is a no-op on a nil command.
func (c *Command) SetStatus(s Status) {
	if c != nil {
		c.Status = s
	}
}

// Succeeded reports whether the command was carried out.
func (c *Command) Succeeded() bool {
	return c != nil && c.Status == StatusOK
}
