package tetris

import "github.com/kamstrup/intmap"

// Stats accumulates per-session counters. It is reset on restart.
type Stats struct {
	locks  int
	lines  int
	spawns *intmap.Map[Kind, int]
	clears *intmap.Map[int, int]
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[Kind, int](KindCount),
		clears: intmap.New[int, int](4),
	}
}

func (s *Stats) recordSpawn(kind Kind) {
	n, _ := s.spawns.Get(kind)
	s.spawns.Put(kind, n+1)
}

func (s *Stats) recordLock(cleared int) {
	s.locks++
	if cleared == 0 {
		return
	}
	s.lines += cleared
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

func (s *Stats) reset() {
	s.locks = 0
	s.lines = 0
	s.spawns.Clear()
	s.clears.Clear()
}

// Locks returns the number of pieces written into the board.
func (s *Stats) Locks() int { return s.locks }

// Lines returns the total number of rows cleared.
func (s *Stats) Lines() int { return s.lines }

// Spawned returns how many pieces of the given kind have been drawn, lookahead included.
func (s *Stats) Spawned(kind Kind) int {
	n, _ := s.spawns.Get(kind)
	return n
}

// TotalSpawned returns the number of pieces drawn across all kinds.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, k := range Kinds() {
		total += s.Spawned(k)
	}
	return total
}

// Clears returns how many locks removed exactly rows rows at once.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}
