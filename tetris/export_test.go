package tetris

// Fill occupies (x, y) with c, bypassing the lock path so tests can stage terrain.
func (b *Board) Fill(x, y int, c Color) {
	b.set(x, y, c)
}

// SetCurrent replaces the falling piece.
func (s *Session) SetCurrent(p Piece) {
	s.current = p
}
