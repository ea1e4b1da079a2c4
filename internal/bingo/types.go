// internal/bingo/types.go
//
// Core type definitions for the bingo simulation (day 4).
// Defines:
//   - CellStatus: marked/unmarked state of a single cell.
//   - Cell: one numeric value plus its mark state.
//   - Status: a card's solve state (one-way latch with call/sum payload).

package bingo

// CellStatus is the mark state of a single cell.
type CellStatus uint8

const (
	Unmarked CellStatus = iota
	Marked
)

// Cell is one numeric value on a card plus whether a call has matched it.
// The value is fixed at creation; the status only ever moves to Marked.
type Cell struct {
	value  int
	status CellStatus
}

// Value returns the cell's number.
func (c *Cell) Value() int { return c.value }

// Status returns Marked or Unmarked.
func (c *Cell) Status() CellStatus { return c.status }

// Mark sets the cell's status to Marked. Marking an already-marked cell is
// a no-op.
func (c *Cell) Mark() { c.status = Marked }

// Status is a card's solve state. The zero value means unsolved. Once a
// full row or column is marked it carries the triggering call and the sum
// of the values still unmarked at that moment, and never changes again.
type Status struct {
	Solved bool `json:"solved"`
	Call   int  `json:"call"`
	Sum    int  `json:"sum"`
}
