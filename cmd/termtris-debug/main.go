package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/termtris/debugui"
	debugui_ebiten "github.com/plus3/termtris/debugui/ebiten"
	"github.com/plus3/termtris/loop"
	"github.com/plus3/termtris/tetris"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	CellSize     = 28
)

func main() {
	defaults := tetris.DefaultConfig()

	width := flag.Int("width", defaults.Width, "Board width in cells.")
	height := flag.Int("height", defaults.Height, "Board height in cells.")
	speed := flag.Int("speed", defaults.InitialSpeed, "Initial gravity interval in ticks per row.")
	minSpeed := flag.Int("min-speed", defaults.MinSpeed, "Fastest gravity interval reachable by clearing lines.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece generator.")
	flag.Parse()

	session, err := tetris.New(tetris.Config{
		Width:        *width,
		Height:       *height,
		InitialSpeed: *speed,
		MinSpeed:     *minSpeed,
		Seed:         *seed,
	})
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	backend := debugui_ebiten.NewImguiBackend("termtris debug", ScreenWidth, ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(debugui_ebiten.TPS)

	inputState := &debugui.ImguiInputState{}
	keyboard := debugui_ebiten.NewKeyboard(inputState)
	scheduler := loop.Standard(loop.NewScheduler(session), keyboard, nil)

	inspector := debugui.NewSessionInspector(session)
	perf := debugui.NewPerformanceStats(120)
	timer := debugui.NewFrameTimer()

	ui := &debugui.ImguiSystem{InputState: inputState}
	ui.Add(inspector.Render)
	ui.Add(func() {
		perf.Render(scheduler.GetStats(), timer.GetDeltaTime())
	})
	scheduler.Register(ui)

	boardW := float32(session.Board().Width() * CellSize)
	game := &debugui_ebiten.Game{
		Backend:   backend,
		Scheduler: scheduler,
		Keyboard:  keyboard,
		Board: debugui_ebiten.BoardView{
			X:         (ScreenWidth-boardW)/2 + 120,
			Y:         40,
			CellSize:  CellSize,
			ShowGhost: true,
		},
	}

	log.Printf("Starting debug window, seed %d", *seed)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
	log.Printf("Final score %d after %d ticks", session.Score(), scheduler.GetStats().Ticks)
}
