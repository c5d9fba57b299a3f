package rules

import (
	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/config"
)

// checkForWin checks if the game has been won. Only the fillBoard condition
// has a winning state.
func checkForWin(win config.WinCondition, width, height int, snake *board.Snake) bool {
	if win != config.WinFillBoard {
		return false
	}
	return snake.Len() >= width*height
}
