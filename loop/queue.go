package loop

import "github.com/plus3/termtris/tetris"

// DefaultQueueSize bounds the number of commands buffered between ticks.
const DefaultQueueSize = 8

// Queue buffers player commands until the simulation consumes them, one per tick.
// Commands pushed while the queue is full are dropped.
type Queue struct {
	cmds  []tetris.Command
	limit int
}

// NewQueue creates a queue holding at most limit commands.
func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultQueueSize
	}
	return &Queue{
		cmds:  make([]tetris.Command, 0, limit),
		limit: limit,
	}
}

// Push appends cmd. It reports false when cmd is invalid, CommandNone, or the queue is full.
func (q *Queue) Push(cmd tetris.Command) bool {
	if !cmd.Valid() || cmd == tetris.CommandNone || len(q.cmds) >= q.limit {
		return false
	}
	q.cmds = append(q.cmds, cmd)
	return true
}

// Pop removes and returns the oldest command.
func (q *Queue) Pop() (tetris.Command, bool) {
	if len(q.cmds) == 0 {
		return tetris.CommandNone, false
	}
	cmd := q.cmds[0]
	copy(q.cmds, q.cmds[1:])
	q.cmds = q.cmds[:len(q.cmds)-1]
	return cmd, true
}

// Len returns the number of buffered commands.
func (q *Queue) Len() int {
	return len(q.cmds)
}

// Reset drops every buffered command.
func (q *Queue) Reset() {
	q.cmds = q.cmds[:0]
}
