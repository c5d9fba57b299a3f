package commands

import (
	"errors"
	"fmt"
	"sync"

	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow
	deadColor    = termbox.ColorRed
	cellWidth    = 2
)

// screenLock serialises drawing between the clock goroutine and the input
// loop.
var screenLock sync.Mutex

func render(frame *rules.Snapshot, status string) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	screenLock.Lock()
	defer screenLock.Unlock()

	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	var (
		left   = 4
		top    = 2
		bottom = top + frame.Height + 1
	)

	renderTitle(left, top, frame)
	renderBoard(frame.Width, top, bottom, left)
	renderSnake(left, top, frame)
	if frame.Food != nil {
		renderFood(left, top, *frame.Food)
	}
	renderStatus(left, bottom+1, frame, status)

	return termbox.Flush()
}

func renderSnake(left, top int, frame *rules.Snapshot) {
	color := snakeColor
	if frame.Result == rules.ResultLost {
		color = deadColor
	}
	for i, b := range frame.Snake {
		c := color
		if i == len(frame.Snake)-1 && frame.Result != rules.ResultLost {
			c = headColor
		}
		setCell(left, top, b, ' ', c)
	}
}

func renderFood(left, top int, food board.Cell) {
	x, y := left+food.Col*cellWidth, top+food.Row+1
	r := foodRune(food)
	termbox.SetCell(x, y, r, termbox.ColorRed, bgColor)
	if runewidth.RuneWidth(r) < cellWidth {
		termbox.SetCell(x+1, y, ' ', defaultColor, bgColor)
	}
}

func setCell(left, top int, c board.Cell, ch rune, color termbox.Attribute) {
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(left+c.Col*cellWidth+i, top+c.Row+1, ch, color, color)
	}
}

var foods = []rune{'●', '◆', '♥', '★', '♣'}

// foodRune keeps the same glyph for a cell for the whole game.
func foodRune(c board.Cell) rune {
	return foods[(c.Row*31+c.Col)%len(foods)]
}

func renderBoard(width, top, bottom, left int) {
	right := left + width*cellWidth
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, top, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width*cellWidth, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width*cellWidth, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, frame *rules.Snapshot) {
	tbprint(left-1, top-1, defaultColor, defaultColor,
		fmt.Sprintf("Snake! - Turn %d - Score %d - %dms", frame.Turn, frame.FoodEaten, frame.Interval.Nanoseconds()/1e6))
}

func renderStatus(left, y int, frame *rules.Snapshot, status string) {
	tbprint(left-1, y, defaultColor, defaultColor, resultText(frame))
	if status != "" {
		tbprint(left-1, y+1, defaultColor, defaultColor, status)
	}
}

func resultText(frame *rules.Snapshot) string {
	switch frame.Result {
	case rules.ResultLost:
		if frame.Death != nil {
			return fmt.Sprintf("You lose (%s)", frame.Death.Cause)
		}
		return "You lose"
	case rules.ResultWon:
		return "You win"
	}
	return ""
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
