package dive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCourse = `forward 5
down 5
forward 8
up 3
down 8
forward 2`

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand("forward 5")
	require.NoError(t, err)
	assert.Equal(t, Command{Direction: Forward, N: 5}, cmd)

	for _, bad := range []string{"", "forward", "sideways 3", "up five"} {
		_, err := ParseCommand(bad)
		assert.Error(t, err, "line %q", bad)
	}
}

func TestPlot(t *testing.T) {
	commands, err := ParseCourse(testCourse)
	require.NoError(t, err)

	assert.Equal(t, 150, Plot(commands))
	assert.Equal(t, 900, PlotWithAim(commands))
}

func TestParts(t *testing.T) {
	one, err := PartOne(testCourse)
	require.NoError(t, err)
	assert.Equal(t, "150", one)

	two, err := PartTwo(testCourse)
	require.NoError(t, err)
	assert.Equal(t, "900", two)
}
