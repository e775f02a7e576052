package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/termtris/tetris"
)

// KeyMap translates terminal keys into commands.
type KeyMap struct {
	Keys  map[tcell.Key]tetris.Command
	Runes map[rune]tetris.Command
}

// DefaultKeyMap binds the arrow keys, space for hard drop, r to restart and Esc, q or
// Ctrl-C to quit. Vim-style h/j/k/l are accepted as well.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Keys: map[tcell.Key]tetris.Command{
			tcell.KeyLeft:   tetris.CommandMoveLeft,
			tcell.KeyRight:  tetris.CommandMoveRight,
			tcell.KeyDown:   tetris.CommandSoftDrop,
			tcell.KeyUp:     tetris.CommandRotate,
			tcell.KeyEscape: tetris.CommandQuit,
			tcell.KeyCtrlC:  tetris.CommandQuit,
		},
		Runes: map[rune]tetris.Command{
			' ': tetris.CommandHardDrop,
			'h': tetris.CommandMoveLeft,
			'l': tetris.CommandMoveRight,
			'j': tetris.CommandSoftDrop,
			'k': tetris.CommandRotate,
			'r': tetris.CommandRestart,
			'q': tetris.CommandQuit,
		},
	}
}

// Lookup returns the command bound to a key event's key and rune. Runes match
// case-insensitively.
func (m KeyMap) Lookup(key tcell.Key, r rune) (tetris.Command, bool) {
	if key == tcell.KeyRune {
		cmd, ok := m.Runes[unicode.ToLower(r)]
		return cmd, ok
	}
	cmd, ok := m.Keys[key]
	return cmd, ok
}

// Bind maps a rune to the named command, e.g. from a -bind flag.
func (m KeyMap) Bind(r rune, name string) error {
	cmd, err := tetris.ParseCommand(name)
	if err != nil {
		return err
	}
	m.Runes[unicode.ToLower(r)] = cmd
	return nil
}
