package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/termtris/debugui"
	"github.com/plus3/termtris/tetris"
)

// KeyBinding maps one key to a command.
type KeyBinding struct {
	Key     ebiten.Key
	Command tetris.Command
}

// DefaultBindings mirrors the terminal key map.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{ebiten.KeyArrowLeft, tetris.CommandMoveLeft},
		{ebiten.KeyArrowRight, tetris.CommandMoveRight},
		{ebiten.KeyArrowDown, tetris.CommandSoftDrop},
		{ebiten.KeyArrowUp, tetris.CommandRotate},
		{ebiten.KeySpace, tetris.CommandHardDrop},
		{ebiten.KeyR, tetris.CommandRestart},
		{ebiten.KeyEscape, tetris.CommandQuit},
		{ebiten.KeyQ, tetris.CommandQuit},
	}
}

// Keyboard collects just-pressed keys once per Ebiten update and yields them as
// commands. It implements loop.InputSource. Keys are ignored while ImGui has keyboard
// focus.
type Keyboard struct {
	Bindings []KeyBinding
	Capture  *debugui.ImguiInputState

	pending []tetris.Command
}

func NewKeyboard(capture *debugui.ImguiInputState) *Keyboard {
	return &Keyboard{
		Bindings: DefaultBindings(),
		Capture:  capture,
	}
}

// Update reads the keys pressed since the previous tick.
func (k *Keyboard) Update() {
	if k.Capture != nil && k.Capture.WantCaptureKeyboard {
		return
	}
	for _, b := range k.Bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			k.pending = append(k.pending, b.Command)
		}
	}
}

// Press queues the command bound to key, if any.
func (k *Keyboard) Press(key ebiten.Key) bool {
	for _, b := range k.Bindings {
		if b.Key == key {
			k.pending = append(k.pending, b.Command)
			return true
		}
	}
	return false
}

func (k *Keyboard) Poll() (tetris.Command, bool) {
	if len(k.pending) == 0 {
		return tetris.CommandNone, false
	}
	cmd := k.pending[0]
	k.pending = k.pending[1:]
	return cmd, true
}
