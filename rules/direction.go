package rules

import (
	"github.com/battlesnakeio/solo/board"
	"github.com/pkg/errors"
)

var (
	// ErrRejected is returned for a direction that reverses a snake longer
	// than one cell.
	ErrRejected = errors.New("rules: illegal reversal")
	// ErrQueueFull is returned when more directions arrive between two ticks
	// than the queue holds. The direction is dropped.
	ErrQueueFull = errors.New("rules: direction queue full")
)

// DirectionController holds the committed heading and a bounded FIFO of
// headings proposed since the last tick. Every proposal is validated
// against the one accepted before it, so two quick turns can not add up to
// a reversal within a single tick.
type DirectionController struct {
	current board.Direction
	pending []board.Direction
	size    int
}

// NewDirectionController starts with heading d and room for size pending
// moves.
func NewDirectionController(d board.Direction, size int) *DirectionController {
	if size < 1 {
		size = 1
	}
	return &DirectionController{
		current: d,
		pending: make([]board.Direction, 0, size),
		size:    size,
	}
}

// Propose queues d for a later tick. snakeLen is the current body length;
// a single cell snake may reverse freely.
func (dc *DirectionController) Propose(d board.Direction, snakeLen int) error {
	last := dc.lastAccepted()
	if d == last {
		return nil
	}
	if snakeLen > 1 && d.IsOpposite(last) {
		return errors.Wrapf(ErrRejected, "%s after %s", d, last)
	}
	if len(dc.pending) >= dc.size {
		return errors.Wrapf(ErrQueueFull, "dropping %s", d)
	}
	dc.pending = append(dc.pending, d)
	return nil
}

// Next commits and returns the oldest pending heading, or the committed
// heading when nothing is queued.
func (dc *DirectionController) Next() board.Direction {
	if len(dc.pending) > 0 {
		dc.current = dc.pending[0]
		dc.pending = append(dc.pending[:0], dc.pending[1:]...)
	}
	return dc.current
}

// Current is the committed heading.
func (dc *DirectionController) Current() board.Direction { return dc.current }

// Pending returns a copy of the queued headings, oldest first.
func (dc *DirectionController) Pending() []board.Direction {
	out := make([]board.Direction, len(dc.pending))
	copy(out, dc.pending)
	return out
}

// Reset drops every pending heading and commits d.
func (dc *DirectionController) Reset(d board.Direction) {
	dc.current = d
	dc.pending = dc.pending[:0]
}

func (dc *DirectionController) lastAccepted() board.Direction {
	if n := len(dc.pending); n > 0 {
		return dc.pending[n-1]
	}
	return dc.current
}
