// internal/puzzle/puzzle.go
//
// Puzzle catalog for the server.
// Responsibilities:
//   - Map (day, part) to the solver function of the matching internal package.
//   - Expose the listing the API serves and the set of valid days.
//
// Every solver takes the raw input blob and returns the answer as decimal
// text; all failures come back as errors, never panics.

package puzzle

import (
	"github.com/robalobadob/advent-server/internal/bingo"
	"github.com/robalobadob/advent-server/internal/diagnostic"
	"github.com/robalobadob/advent-server/internal/dive"
	"github.com/robalobadob/advent-server/internal/lanternfish"
	"github.com/robalobadob/advent-server/internal/sonar"
	"github.com/robalobadob/advent-server/internal/vents"
)

// Solver computes a puzzle answer from the raw input text.
type Solver func(input string) (string, error)

// Puzzle is one solvable (day, part) pair.
type Puzzle struct {
	Day  int    `json:"day"`
	Part int    `json:"part"`
	Name string `json:"name"`
	// Solve is omitted from JSON listings.
	Solve Solver `json:"-"`
}

// puzzles is the static catalog, in day/part order.
var puzzles = []Puzzle{
	{Day: 1, Part: 1, Name: "sonar sweep", Solve: sonar.PartOne},
	{Day: 1, Part: 2, Name: "sonar sweep", Solve: sonar.PartTwo},
	{Day: 2, Part: 1, Name: "dive", Solve: dive.PartOne},
	{Day: 2, Part: 2, Name: "dive", Solve: dive.PartTwo},
	{Day: 3, Part: 1, Name: "binary diagnostic", Solve: diagnostic.PartOne},
	{Day: 3, Part: 2, Name: "binary diagnostic", Solve: diagnostic.PartTwo},
	{Day: 4, Part: 1, Name: "giant squid bingo", Solve: bingo.PartOne},
	{Day: 4, Part: 2, Name: "giant squid bingo", Solve: bingo.PartTwo},
	{Day: 5, Part: 1, Name: "hydrothermal vents", Solve: vents.PartOne},
	{Day: 5, Part: 2, Name: "hydrothermal vents", Solve: vents.PartTwo},
	{Day: 6, Part: 1, Name: "lanternfish", Solve: lanternfish.PartOne},
	{Day: 6, Part: 2, Name: "lanternfish", Solve: lanternfish.PartTwo},
}

// All returns the catalog, in day/part order.
func All() []Puzzle {
	out := make([]Puzzle, len(puzzles))
	copy(out, puzzles)
	return out
}

// Lookup returns the puzzle for a day/part pair.
func Lookup(day, part int) (Puzzle, bool) {
	for _, p := range puzzles {
		if p.Day == day && p.Part == part {
			return p, true
		}
	}
	return Puzzle{}, false
}

// Days returns the distinct days in the catalog, ascending.
func Days() []int {
	var out []int
	for _, p := range puzzles {
		if len(out) == 0 || out[len(out)-1] != p.Day {
			out = append(out, p.Day)
		}
	}
	return out
}
