// Package tetris implements the board and piece simulation of a falling-block game:
// placement validation, movement, rotation, gravity, locking, line clearing, scoring
// and game-over detection. It has no rendering or input code; frontends read the
// session state and feed it one Command per tick.
package tetris

import (
	"fmt"
	"math/rand/v2"
)

// Random draws piece kinds. *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

// Option configures a Session at construction.
type Option func(*Session)

// WithRandom replaces the seeded PCG source with r.
func WithRandom(r Random) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// Session is one game: the board, the falling piece, the lookahead piece and the
// counters that drive gravity and scoring. A Session is owned by a single driver
// goroutine and is not safe for concurrent use.
type Session struct {
	cfg     Config
	rng     Random
	board   *Board
	current Piece
	next    Piece
	speed   int
	frame   int
	score   int
	state   State
	stats   *Stats
}

// New validates cfg and starts a session with two freshly drawn pieces.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1)),
		board: NewBoard(cfg.Width, cfg.Height),
		stats: newStats(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.reset()
	return s, nil
}

// Config returns the configuration the session was created with.
func (s *Session) Config() Config { return s.cfg }

// Board returns the settled terrain. Callers must treat it as read-only.
func (s *Session) Board() *Board { return s.board }

// Current returns the falling piece.
func (s *Session) Current() Piece { return s.current }

// Next returns the lookahead piece.
func (s *Session) Next() Piece { return s.next }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Speed returns the current gravity interval in ticks per row.
func (s *Session) Speed() int { return s.speed }

// Frame returns the number of active ticks since the session (re)started.
func (s *Session) Frame() int { return s.frame }

// State returns the session phase.
func (s *Session) State() State { return s.state }

// GameOver reports whether the session has reached its terminal state.
func (s *Session) GameOver() bool { return s.state == StateGameOver }

// Stats returns the session counters.
func (s *Session) Stats() *Stats { return s.stats }

func (s *Session) reset() {
	s.board.reset()
	s.stats.reset()
	s.current = s.spawn()
	s.next = s.spawn()
	s.speed = s.cfg.InitialSpeed
	s.frame = 0
	s.score = 0
	s.state = StateActive
}

// spawn draws a piece at the spawn position: centered column, top row, rotation 0.
func (s *Session) spawn() Piece {
	k := s.rng.IntN(KindCount)
	kind := Kind(((k % KindCount) + KindCount) % KindCount)
	s.stats.recordSpawn(kind)
	return NewPiece(kind, s.cfg.Width/2, 0)
}

// IsValidPosition reports whether p fits: every cell inside the side walls and above
// the floor, and every cell on the visible board unoccupied. Cells above the board
// are allowed.
func (s *Session) IsValidPosition(p Piece) bool {
	for _, b := range p.Blocks() {
		if b.X < 0 || b.X >= s.board.width || b.Y >= s.board.height {
			return false
		}
		if b.Y >= 0 && s.board.Occupied(b.X, b.Y) {
			return false
		}
	}
	return true
}

// TryMove translates the current piece by (dx, dy) if the result is valid.
func (s *Session) TryMove(dx, dy int) bool {
	if s.state != StateActive {
		return false
	}
	return s.commit(s.current.Moved(dx, dy))
}

// TryRotate turns the current piece by delta quarter turns if the result is valid.
// There are no wall kicks: a blocked rotation simply fails.
func (s *Session) TryRotate(delta int) bool {
	if s.state != StateActive {
		return false
	}
	return s.commit(s.current.Rotated(delta))
}

func (s *Session) commit(candidate Piece) bool {
	if !s.IsValidPosition(candidate) {
		return false
	}
	s.current = candidate
	return true
}

// HardDrop moves the current piece down until it rests and locks it.
func (s *Session) HardDrop() {
	if s.state != StateActive {
		return
	}
	for s.TryMove(0, 1) {
	}
	s.LockPiece()
}

// Ghost returns the current piece at the row a hard drop would settle it on.
func (s *Session) Ghost() Piece {
	ghost := s.current
	for {
		candidate := ghost.Moved(0, 1)
		if !s.IsValidPosition(candidate) {
			return ghost
		}
		ghost = candidate
	}
}

// GhostY returns the anchor row of Ghost.
func (s *Session) GhostY() int {
	return s.Ghost().Y
}

// LockPiece writes the current piece into the board, clears full rows and promotes the
// lookahead piece. A piece resting above the visible board ends the game without
// touching the board, as does a promoted piece that does not fit.
func (s *Session) LockPiece() {
	if s.state != StateActive {
		return
	}

	blocks := s.current.Blocks()
	for _, b := range blocks {
		if b.Y < 0 {
			s.state = StateGameOver
			return
		}
	}
	for _, b := range blocks {
		s.board.set(b.X, b.Y, s.current.Color)
	}

	cleared := s.ClearLines()
	s.stats.recordLock(cleared)

	s.current = s.next
	s.next = s.spawn()
	if !s.IsValidPosition(s.current) {
		s.state = StateGameOver
	}
}

// ClearLines removes every full row, awards the line bonus and shortens the gravity
// interval. It returns the number of rows removed.
func (s *Session) ClearLines() int {
	cleared := s.board.clearFullRows()
	if cleared == 0 {
		return 0
	}

	s.score += LineScore(cleared)
	if s.speed > s.cfg.MinSpeed {
		s.speed--
	}
	return cleared
}

// LineScore returns the bonus for clearing rows rows in one lock.
func LineScore(rows int) int {
	switch {
	case rows <= 0:
		return 0
	case rows == 1:
		return 100
	case rows == 2:
		return 300
	case rows == 3:
		return 500
	default:
		return 800
	}
}

// Restart rebuilds the session from scratch. It is honoured only after game over.
func (s *Session) Restart() bool {
	if s.state != StateGameOver {
		return false
	}
	s.reset()
	return true
}

// Apply runs the effect of a single command without advancing gravity.
func (s *Session) Apply(cmd Command) error {
	switch cmd {
	case CommandNone, CommandQuit:
	case CommandMoveLeft:
		s.TryMove(-1, 0)
	case CommandMoveRight:
		s.TryMove(1, 0)
	case CommandSoftDrop:
		s.TryMove(0, 1)
	case CommandRotate:
		s.TryRotate(1)
	case CommandHardDrop:
		s.HardDrop()
	case CommandRestart:
		s.Restart()
	default:
		return fmt.Errorf("apply %d: %w", int(cmd), ErrUnknownCommand)
	}
	return nil
}

// Tick advances the session by one frame: it applies cmd, then, while active, bumps the
// frame counter and on every speed-th frame moves the piece down one row, locking it
// when it cannot descend. A tick that starts after game over only applies cmd, so a
// restart leaves the frame counter at zero.
func (s *Session) Tick(cmd Command) error {
	finished := s.state == StateGameOver
	if err := s.Apply(cmd); err != nil {
		return fmt.Errorf("tick: %w", err)
	}

	if finished || s.state != StateActive {
		return nil
	}

	s.frame++
	if s.frame%s.speed == 0 {
		if !s.TryMove(0, 1) {
			s.LockPiece()
		}
	}
	return nil
}
