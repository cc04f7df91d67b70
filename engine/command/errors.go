package command

import (
	"errors"
	"github.com/tarcisiozf/tkv/engine/command/types/verb"
)

// Error texts double as the protocol's user-visible messages.
var ErrInvalidCommand = errors.New("INVALID COMMAND")

type ArityError struct {
	Verb verb.Verb
}

func (e ArityError) Error() string {
	return "Incorrect number of arguments for " + e.Verb.String() + " command"
}

type ValueError struct {
	Verb verb.Verb
}

func (e ValueError) Error() string {
	return "Invalid value supplied to " + e.Verb.String()
}
