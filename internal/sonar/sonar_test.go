package sonar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testReport = []int{199, 200, 208, 210, 200, 207, 240, 269, 260, 263}

func TestDeltas(t *testing.T) {
	deltas := Deltas(testReport)
	require.Len(t, deltas, 9)

	positive, negative, zero := 0, 0, 0
	for _, d := range deltas {
		switch {
		case d > 0:
			positive++
		case d < 0:
			negative++
		default:
			zero++
		}
	}
	assert.Equal(t, 7, positive)
	assert.Equal(t, 2, negative)
	assert.Equal(t, 0, zero)
}

func TestSlidingDeltas(t *testing.T) {
	deltas := SlidingDeltas(testReport)
	require.Len(t, deltas, 7)
	assert.Equal(t, 5, countPositive(deltas))
}

func TestParts(t *testing.T) {
	input := "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"

	one, err := PartOne(input)
	require.NoError(t, err)
	assert.Equal(t, "7", one)

	two, err := PartTwo(input)
	require.NoError(t, err)
	assert.Equal(t, "5", two)
}

func TestParseReportError(t *testing.T) {
	_, err := ParseReport("199\nnope\n208")
	assert.Error(t, err)
}
