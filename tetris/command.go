package tetris

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Command -trimprefix=Command

// Command is a discrete player input delivered to Session.Tick.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
	CommandRestart
	CommandQuit
)

// Valid reports whether c is one of the defined commands.
func (c Command) Valid() bool {
	return c >= CommandNone && c <= CommandQuit
}

// Commands returns every defined command in declaration order.
func Commands() []Command {
	return []Command{
		CommandNone,
		CommandMoveLeft,
		CommandMoveRight,
		CommandSoftDrop,
		CommandRotate,
		CommandHardDrop,
		CommandRestart,
		CommandQuit,
	}
}

// ParseCommand resolves a command name. Matching ignores case, dashes and underscores,
// so "move-left", "move_left" and "MoveLeft" are equivalent.
func ParseCommand(name string) (Command, error) {
	key := normalizeCommandName(name)
	for _, c := range Commands() {
		if normalizeCommandName(c.String()) == key {
			return c, nil
		}
	}
	return CommandNone, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

func normalizeCommandName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}
