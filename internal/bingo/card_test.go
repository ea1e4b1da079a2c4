package bingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCard = `14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7`

func mustParseCard(t *testing.T, block string) *Card {
	t.Helper()
	card, err := ParseCard(block)
	require.NoError(t, err)
	return card
}

func TestParseCard(t *testing.T) {
	card := mustParseCard(t, testCard)

	assert.Equal(t, 5, card.Size())
	assert.Equal(t, Status{}, card.Status())

	// Before any call, the unmarked sum is the sum of every cell.
	assert.Equal(t, 325, card.UnmarkedSum())
}

func TestParseCardSkipsMalformedLines(t *testing.T) {
	// A non-matching line between rows does not count toward the grid.
	block := " 1  2  3\nnot a row\n 4  5  6\n 7  8  9"
	card := mustParseCard(t, block)
	assert.Equal(t, 3, card.Size())
	assert.Equal(t, 45, card.UnmarkedSum())
}

func TestParseCardErrors(t *testing.T) {
	cases := []struct {
		name  string
		block string
	}{
		{"Empty", ""},
		{"NoRows", "calls,are,not,rows"},
		{"ShortCard", " 1  2  3\n 4  5  6"},
		{"BlankField", " 1     3\n 4  5  6\n 7  8  9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCard(tc.block)
			assert.Error(t, err)
		})
	}
}

func TestMarkValueRowWin(t *testing.T) {
	card := mustParseCard(t, testCard)

	// The full mark sequence from the reference game; the card must stay
	// unsolved until the top row completes on 24.
	for _, call := range []int{7, 4, 9, 5, 11, 17, 23, 2, 0, 14, 21} {
		assert.Equal(t, Status{}, card.MarkValue(call), "call %d", call)
	}
	assert.Equal(t, Status{Solved: true, Call: 24, Sum: 188}, card.MarkValue(24))
}

func TestMarkValueColumnWin(t *testing.T) {
	card := mustParseCard(t, " 1  2  3\n 4  5  6\n 7  8  9")

	assert.Equal(t, Status{}, card.MarkValue(1))
	assert.Equal(t, Status{}, card.MarkValue(4))
	assert.Equal(t, Status{Solved: true, Call: 7, Sum: 33}, card.MarkValue(7))
}

func TestMarkValueMissing(t *testing.T) {
	card := mustParseCard(t, " 1  2  3\n 4  5  6\n 7  8  9")

	// A value not on the card leaves the status untouched and returns it.
	assert.Equal(t, Status{}, card.MarkValue(42))
	assert.Equal(t, 45, card.UnmarkedSum())

	card.MarkValue(1)
	card.MarkValue(2)
	st := card.MarkValue(3)
	require.True(t, st.Solved)
	assert.Equal(t, st, card.MarkValue(42))
}

func TestSolvedIsOneWayLatch(t *testing.T) {
	card := mustParseCard(t, " 1  2  3\n 4  5  6\n 7  8  9")

	card.MarkValue(1)
	card.MarkValue(2)
	won := card.MarkValue(3)
	assert.Equal(t, Status{Solved: true, Call: 3, Sum: 39}, won)

	// Later calls keep marking cells but never overwrite the recorded win,
	// even when they complete further rows or columns.
	for _, call := range []int{4, 5, 6, 7, 8, 9} {
		assert.Equal(t, won, card.MarkValue(call), "call %d", call)
	}
	assert.Equal(t, 0, card.UnmarkedSum())
	assert.Equal(t, won, card.Status())
}
