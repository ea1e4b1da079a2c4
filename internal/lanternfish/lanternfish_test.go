package lanternfish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulation(t *testing.T) {
	timers := []int{3, 4, 3, 1, 2}

	assert.Equal(t, uint64(26), Population(timers, 18))
	assert.Equal(t, uint64(5934), Population(timers, 80))
	assert.Equal(t, uint64(26984457539), Population(timers, 256))
}

func TestParseTimers(t *testing.T) {
	timers, err := ParseTimers("3,4,3,1,2\n")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 3, 1, 2}, timers)

	for _, bad := range []string{"3,nope,2", "3,9,2", "3,-1,2"} {
		_, err := ParseTimers(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParts(t *testing.T) {
	one, err := PartOne("3,4,3,1,2")
	require.NoError(t, err)
	assert.Equal(t, "5934", one)

	two, err := PartTwo("3,4,3,1,2")
	require.NoError(t, err)
	assert.Equal(t, "26984457539", two)
}
