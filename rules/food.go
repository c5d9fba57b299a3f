package rules

import (
	"math/rand"

	"github.com/battlesnakeio/solo/board"
)

// FoodSpawner places food on free cells. It is seeded so games can be
// replayed deterministically.
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner returns a spawner drawing from a rand source seeded with
// seed.
func NewFoodSpawner(seed int64) *FoodSpawner {
	return &FoodSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn picks a uniformly random in-bounds cell the snake does not occupy.
// It returns false when the board has no free cell left.
func (f *FoodSpawner) Spawn(snake *board.Snake, width, height int) (board.Cell, bool) {
	openCells := getUnoccupiedCells(width, height, snake)
	if len(openCells) == 0 {
		return board.Cell{}, false
	}
	return openCells[f.rng.Intn(len(openCells))], true
}

func getUnoccupiedCells(width, height int, snake *board.Snake) []board.Cell {
	occupied := make(map[board.Cell]struct{}, snake.Len())
	for _, b := range snake.Body {
		if board.InBounds(b, width, height) {
			occupied[b] = struct{}{}
		}
	}

	candidates := make([]board.Cell, 0, width*height-len(occupied))
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			p := board.Cell{Row: r, Col: c}
			if _, ok := occupied[p]; !ok {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}
