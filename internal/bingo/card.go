// internal/bingo/card.go
//
// Card model and card-block parsing.
// Responsibilities:
//   - Card: a square grid of cells plus a one-way Solved latch.
//   - MarkValue: mark the first matching cell and run the win check.
//   - ParseCard: turn one blank-line-delimited text block into a Card.

package bingo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrCardShape is returned when a card block does not yield a full square
// grid of well-formed rows.
var ErrCardShape = errors.New("bingo: malformed card block")

// rowPattern matches one card row: two-character numeric fields separated
// by single spaces, anchored to the whole line. The field count fixes the
// card's side length.
var rowPattern = regexp.MustCompile(`^[ \d]{2}( [ \d]{2})*$`)

// Card is a square grid of cells in row-major order. Cards own their cells
// outright; nothing is shared between cards.
type Card struct {
	cells  [][]Cell
	status Status
}

// Size returns the side length of the card.
func (c *Card) Size() int { return len(c.cells) }

// Status returns the card's current solve state.
func (c *Card) Status() Status { return c.status }

// UnmarkedSum sums the values of all cells that are still unmarked. It has
// no side effects and is valid before, during, and after the simulation.
func (c *Card) UnmarkedSum() int {
	sum := 0
	for _, row := range c.cells {
		for i := range row {
			if row[i].Status() == Unmarked {
				sum += row[i].Value()
			}
		}
	}
	return sum
}

// MarkValue scans the card in row-major order, marks the first cell whose
// value equals v, and stops scanning. A card holds each value at most once,
// so stopping at the first hit is an implementation stance, not a
// tie-break. If the marked cell completes its row or its column the card
// transitions to Solved with the call and the sum of the cells left
// unmarked after the mark. Solved is a one-way latch: a card that already
// solved keeps marking cells but never overwrites its recorded call/sum.
// The card's current status is returned either way.
func (c *Card) MarkValue(v int) Status {
	row, col, marked := -1, -1, false

	for y := range c.cells {
		for x := range c.cells[y] {
			if c.cells[y][x].Value() == v {
				c.cells[y][x].Mark()
				row, col = y, x
				marked = true
				break
			}
		}
		if marked {
			break
		}
	}

	if marked && !c.status.Solved && (c.rowMarked(row) || c.colMarked(col)) {
		c.status = Status{Solved: true, Call: v, Sum: c.UnmarkedSum()}
	}
	return c.status
}

// rowMarked reports whether every cell in row y is marked.
func (c *Card) rowMarked(y int) bool {
	for x := range c.cells[y] {
		if c.cells[y][x].Status() != Marked {
			return false
		}
	}
	return true
}

// colMarked reports whether every cell in column x is marked.
func (c *Card) colMarked(x int) bool {
	for y := range c.cells {
		if c.cells[y][x].Status() != Marked {
			return false
		}
	}
	return true
}

// ParseCard parses one text block into a Card. The first line matching
// rowPattern fixes the side length N; lines that do not match the pattern,
// or that carry a different field count, are skipped without error.
// Parsing stops once N well-formed rows have been collected. A block that
// cannot produce N rows of N fields fails with ErrCardShape; a field that
// is not a valid integer fails with the wrapped strconv error.
func ParseCard(block string) (*Card, error) {
	var cells [][]Cell
	size := 0

	for _, line := range strings.Split(block, "\n") {
		if size > 0 && len(cells) == size {
			break
		}
		if !rowPattern.MatchString(line) {
			continue
		}
		fields := (len(line) + 1) / 3
		if size == 0 {
			size = fields
		}
		if fields != size {
			continue
		}

		row := make([]Cell, 0, size)
		for i := 0; i < size; i++ {
			tok := strings.TrimSpace(line[i*3 : i*3+2])
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("bingo: invalid cell value %q: %w", tok, err)
			}
			row = append(row, Cell{value: n})
		}
		cells = append(cells, row)
	}

	if size == 0 || len(cells) != size {
		return nil, fmt.Errorf("%w: %d row(s) of width %d", ErrCardShape, len(cells), size)
	}
	return &Card{cells: cells}, nil
}
