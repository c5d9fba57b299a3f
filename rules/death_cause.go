package rules

const (
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the head lands on the snake's own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseIllegalReversal is when a direction change reverses the snake onto itself
	DeathCauseIllegalReversal = "illegal-reversal"
)

// Death records when and why a game was lost.
type Death struct {
	Turn  int64
	Cause string
}
