// internal/bingo/solve.go
//
// Puzzle answers for day 4: first and last winning card. Each answer is
// triggering call × unmarked-cell sum, as decimal text.

package bingo

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoWinner is returned when the calls run out before the requested win
// condition is met.
var ErrNoWinner = errors.New("bingo: no winning call")

// PartOne returns call×sum for the first card to win.
func PartOne(input string) (string, error) {
	game, err := ParseGame(strings.TrimSpace(input))
	if err != nil {
		return "", err
	}
	st := game.FindWinningCall()
	if !st.Solved {
		return "", ErrNoWinner
	}
	return strconv.Itoa(st.Call * st.Sum), nil
}

// PartTwo returns call×sum for the last card to win.
func PartTwo(input string) (string, error) {
	game, err := ParseGame(strings.TrimSpace(input))
	if err != nil {
		return "", err
	}
	st, ok := game.FindLastWinner()
	if !ok {
		return "", ErrNoWinner
	}
	return strconv.Itoa(st.Call * st.Sum), nil
}
