package tetris

//go:generate go tool stringer -type=State -trimprefix=State

// State is the phase of a session.
type State int

const (
	StateActive State = iota
	StateGameOver
)
