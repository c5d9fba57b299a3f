package board

// Snake is the ordered body of the snake. Index 0 is the tail, the last
// element is the head.
type Snake struct {
	Body []Cell
}

// NewSnake builds a snake from tail to head.
func NewSnake(cells ...Cell) *Snake {
	body := make([]Cell, len(cells))
	copy(body, cells)
	return &Snake{Body: body}
}

// Len is the number of cells in the body.
func (s *Snake) Len() int { return len(s.Body) }

// Head returns the last point in the body
func (s *Snake) Head() Cell {
	return s.Body[len(s.Body)-1]
}

// Tail returns the first point in the body
func (s *Snake) Tail() Cell {
	return s.Body[0]
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// Advance moves the snake without growing: the tail cell is released and
// newHead becomes the head.
func (s *Snake) Advance(newHead Cell) {
	body := make([]Cell, 0, len(s.Body))
	if len(s.Body) > 1 {
		body = append(body, s.Body[1:]...)
	}
	s.Body = append(body, newHead)
}

// Grow moves the snake like Advance and then inserts newTail before the
// remaining body, so the length grows by exactly one.
func (s *Snake) Grow(newHead, newTail Cell) {
	body := make([]Cell, 0, len(s.Body)+1)
	body = append(body, newTail)
	if len(s.Body) > 1 {
		body = append(body, s.Body[1:]...)
	}
	s.Body = append(body, newHead)
}

// SelfCollides reports whether any two body cells are equal.
func (s *Snake) SelfCollides() bool {
	seen := make(map[Cell]struct{}, len(s.Body))
	for _, b := range s.Body {
		if _, ok := seen[b]; ok {
			return true
		}
		seen[b] = struct{}{}
	}
	return false
}

// Clone returns a deep copy of the snake.
func (s *Snake) Clone() *Snake {
	return NewSnake(s.Body...)
}

// Cells returns a copy of the body, tail first.
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.Body))
	copy(out, s.Body)
	return out
}

// Contiguous reports whether every consecutive pair of cells is adjacent.
func (s *Snake) Contiguous() bool {
	for i := 1; i < len(s.Body); i++ {
		if !Adjacent(s.Body[i-1], s.Body[i]) {
			return false
		}
	}
	return true
}
