package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/termtris/loop"
)

// TPS is the Ebiten update rate the game assumes.
const TPS = 60

var background = color.RGBA{12, 12, 16, 255}

// Game implements ebiten.Game: each update feeds the keyboard into the scheduler inside
// an ImGui frame, and each draw paints the board under the ImGui overlay.
type Game struct {
	Backend   *ImguiBackend
	Scheduler *loop.Scheduler
	Keyboard  *Keyboard
	Board     BoardView
}

func (g *Game) Update() error {
	g.Keyboard.Update()

	g.Backend.BeginFrame()
	err := g.Scheduler.Once(1.0 / TPS)
	g.Backend.EndFrame()

	if errors.Is(err, loop.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.Board.Draw(screen, g.Scheduler.Session())
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
