// inputs/embed.go
//
// Embedded example inputs, one file per puzzle day. These are the published
// sample inputs, served by GET /puzzles/{day}/example so clients can try a
// solver without supplying their own blob.

package inputs

import (
	"embed"
	"fmt"
)

//go:embed day01.txt day02.txt day03.txt day04.txt day05.txt day06.txt
var files embed.FS

// Example returns the example input for a day.
func Example(day int) (string, error) {
	b, err := files.ReadFile(fmt.Sprintf("day%02d.txt", day))
	if err != nil {
		return "", fmt.Errorf("inputs: no example for day %d: %w", day, err)
	}
	return string(b), nil
}
