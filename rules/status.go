package rules

// GameStatus is the lifecycle status of a game session as seen by the clock
// and the frame store.
type GameStatus string

const (
	// GameStatusStopped represents a game that has been created but not started
	GameStatusStopped GameStatus = "stopped"
	// GameStatusRunning represents a running game
	GameStatusRunning GameStatus = "running"
	// GameStatusPaused represents a game whose clock is halted
	GameStatusPaused GameStatus = "paused"
	// GameStatusError represents a game that ended because of an error
	GameStatusError GameStatus = "error"
	// GameStatusComplete represents a game that is done
	GameStatusComplete GameStatus = "complete"
)

// Result is the outcome of the simulation so far. Once it leaves
// ResultInProgress it never changes again.
type Result int

const (
	// ResultInProgress is a game that is still being played.
	ResultInProgress Result = iota
	// ResultLost is a game ended by an illegal move.
	ResultLost
	// ResultWon is a game ended by filling the board.
	ResultWon
)

func (r Result) String() string {
	switch r {
	case ResultInProgress:
		return "in-progress"
	case ResultLost:
		return "lost"
	case ResultWon:
		return "won"
	}
	return "unknown"
}

// Over reports whether the result is terminal.
func (r Result) Over() bool { return r != ResultInProgress }
