package rules

import "github.com/battlesnakeio/solo/board"

func deathByOutOfBounds(head board.Cell, width, height int) bool {
	return !board.InBounds(head, width, height)
}

// deathBySelfCollision expects the tentative body with the new head pushed
// and the old tail still held, so moving into the tail cell counts.
func deathBySelfCollision(tentative *board.Snake) bool {
	return tentative.SelfCollides()
}
