package ebiten_test

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	debugui_ebiten "github.com/plus3/termtris/debugui/ebiten"
	"github.com/plus3/termtris/tetris"
	"github.com/stretchr/testify/assert"
)

func TestBoardViewGeometry(t *testing.T) {
	v := debugui_ebiten.BoardView{X: 40, Y: 20, CellSize: 24}

	x, y := v.CellRect(0, 0)
	assert.Equal(t, float32(40), x)
	assert.Equal(t, float32(20), y)

	x, y = v.CellRect(3, 5)
	assert.Equal(t, float32(40+3*24), x)
	assert.Equal(t, float32(20+5*24), y)

	w, h := v.Size(tetris.NewBoard(10, 20))
	assert.Equal(t, float32(240), w)
	assert.Equal(t, float32(480), h)
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 165, 0, 255}, debugui_ebiten.RGBA(tetris.Orange))
	assert.Equal(t, color.RGBA{0, 255, 255, 255}, debugui_ebiten.RGBA(tetris.Cyan))
}

func TestKeyboardPress(t *testing.T) {
	k := debugui_ebiten.NewKeyboard(nil)

	_, ok := k.Poll()
	assert.False(t, ok)

	assert.True(t, k.Press(ebiten.KeyArrowLeft))
	assert.True(t, k.Press(ebiten.KeySpace))
	assert.False(t, k.Press(ebiten.KeyF12))

	cmd, ok := k.Poll()
	assert.True(t, ok)
	assert.Equal(t, tetris.CommandMoveLeft, cmd)

	cmd, ok = k.Poll()
	assert.True(t, ok)
	assert.Equal(t, tetris.CommandHardDrop, cmd)

	_, ok = k.Poll()
	assert.False(t, ok)
}

func TestDefaultBindingsCoverCommands(t *testing.T) {
	bound := map[tetris.Command]bool{}
	for _, b := range debugui_ebiten.DefaultBindings() {
		bound[b.Command] = true
	}
	for _, cmd := range tetris.Commands() {
		if cmd == tetris.CommandNone {
			continue
		}
		assert.True(t, bound[cmd], "%s has no key", cmd)
	}
}
