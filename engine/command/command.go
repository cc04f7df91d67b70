package command

import (
	"fmt"
	"github.com/tarcisiozf/tkv/engine/command/types/verb"
	"strconv"
	"strings"
)

type Command struct {
	Verb  verb.Verb
	Key   string
	Value int32
}

// Parse turns one input line into a Command. A line with no verb, an
// unknown verb, a wrong argument count, or a value outside 32-bit signed
// range yields the matching protocol error.
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, ErrInvalidCommand
	}

	v, err := verb.Parse(tokens[0])
	if err != nil {
		return Command{}, ErrInvalidCommand
	}

	args := tokens[1:]
	if len(args) != v.Args() {
		return Command{}, ArityError{Verb: v}
	}

	cmd := Command{Verb: v}
	switch v {
	case verb.Set:
		value, err := parseValue(args[1])
		if err != nil {
			return Command{}, ValueError{Verb: v}
		}
		cmd.Key = args[0]
		cmd.Value = value
	case verb.Get, verb.Unset:
		cmd.Key = args[0]
	case verb.NumEqualTo:
		value, err := parseValue(args[0])
		if err != nil {
			return Command{}, ValueError{Verb: v}
		}
		cmd.Value = value
	}
	return cmd, nil
}

func parseValue(token string) (int32, error) {
	value, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse value %q: %w", token, err)
	}
	return int32(value), nil
}

func Set(key string, value int32) Command {
	return Command{Verb: verb.Set, Key: key, Value: value}
}

func Get(key string) Command {
	return Command{Verb: verb.Get, Key: key}
}

func Unset(key string) Command {
	return Command{Verb: verb.Unset, Key: key}
}

func NumEqualTo(value int32) Command {
	return Command{Verb: verb.NumEqualTo, Value: value}
}

func Begin() Command {
	return Command{Verb: verb.Begin}
}

func Rollback() Command {
	return Command{Verb: verb.Rollback}
}

func Commit() Command {
	return Command{Verb: verb.Commit}
}

func End() Command {
	return Command{Verb: verb.End}
}

func (c Command) String() string {
	switch c.Verb {
	case verb.Set:
		return fmt.Sprintf("%s %s %d", c.Verb, c.Key, c.Value)
	case verb.Get, verb.Unset:
		return fmt.Sprintf("%s %s", c.Verb, c.Key)
	case verb.NumEqualTo:
		return fmt.Sprintf("%s %d", c.Verb, c.Value)
	}
	return c.Verb.String()
}
