package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/termtris/loop"
	"github.com/plus3/termtris/term"
	"github.com/plus3/termtris/tetris"
)

// bindings collects repeated -bind key=command flags.
type bindings []string

func (b *bindings) String() string { return strings.Join(*b, ",") }

func (b *bindings) Set(v string) error {
	*b = append(*b, v)
	return nil
}

func main() {
	os.Exit(start())
}

// start runs the game and returns the process exit code, so deferred cleanup such as
// closing the log file happens before the process exits.
func start() int {
	defaults := tetris.DefaultConfig()

	width := flag.Int("width", defaults.Width, "Board width in cells.")
	height := flag.Int("height", defaults.Height, "Board height in cells.")
	speed := flag.Int("speed", defaults.InitialSpeed, "Initial gravity interval in ticks per row.")
	minSpeed := flag.Int("min-speed", defaults.MinSpeed, "Fastest gravity interval reachable by clearing lines.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece generator.")
	fps := flag.Int("fps", 60, "Ticks per second.")
	noGhost := flag.Bool("no-ghost", false, "Hide the landing preview.")
	logFile := flag.String("log", "", "Write log output to this file.")
	var binds bindings
	flag.Var(&binds, "bind", "Extra key binding as rune=command, e.g. w=rotate. Repeatable.")
	flag.Parse()

	interval, err := tickInterval(*fps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termtris: %v\n", err)
		return 2
	}

	keys := term.DefaultKeyMap()
	for _, b := range binds {
		r, name, ok := parseBinding(b)
		if !ok {
			fmt.Fprintf(os.Stderr, "termtris: bad -bind %q, want rune=command\n", b)
			return 2
		}
		if err := keys.Bind(r, name); err != nil {
			fmt.Fprintf(os.Stderr, "termtris: %v\n", err)
			return 2
		}
	}

	if *logFile == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "termtris: open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := tetris.Config{
		Width:        *width,
		Height:       *height,
		InitialSpeed: *speed,
		MinSpeed:     *minSpeed,
		Seed:         *seed,
	}
	if err := run(cfg, keys, interval, !*noGhost); err != nil {
		log.Printf("Game failed: %v", err)
		fmt.Fprintf(os.Stderr, "termtris: %v\n", err)
		return 1
	}
	return 0
}

// tickInterval converts a ticks-per-second rate into a positive ticker period.
func tickInterval(fps int) (time.Duration, error) {
	if fps < 1 {
		return 0, fmt.Errorf("-fps must be at least 1, got %d", fps)
	}
	interval := time.Second / time.Duration(fps)
	if interval <= 0 {
		return 0, fmt.Errorf("-fps %d is too high, the tick interval rounds to zero", fps)
	}
	return interval, nil
}

func parseBinding(s string) (rune, string, bool) {
	key, name, ok := strings.Cut(s, "=")
	runes := []rune(key)
	if !ok || len(runes) != 1 || name == "" {
		return 0, "", false
	}
	return runes[0], name, true
}

func run(cfg tetris.Config, keys term.KeyMap, interval time.Duration, ghost bool) error {
	session, err := tetris.New(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	input := term.NewInput(screen, keys)
	input.Start(ctx)

	renderer := term.NewRenderer(screen)
	renderer.ShowGhost = ghost

	scheduler := loop.Standard(loop.NewScheduler(session), input, renderer)

	log.Printf("Starting %dx%d game, seed %d, tick %s", cfg.Width, cfg.Height, cfg.Seed, interval)
	err = scheduler.Run(ctx, interval)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	stats := scheduler.GetStats()
	log.Printf("Stopped after %d ticks, score %d, %d lines", stats.Ticks, session.Score(), session.Stats().Lines())
	for _, sys := range stats.Systems {
		log.Printf("  %s: avg %s max %s", sys.Name, sys.AvgDuration, sys.MaxDuration)
	}
	return err
}
