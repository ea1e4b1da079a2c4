package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReport = `00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010`

func TestParseReport(t *testing.T) {
	report, err := ParseReport(testReport)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Bits)
	require.Len(t, report.Values, 12)
	assert.Equal(t, uint64(0b00100), report.Values[0])

	_, err = ParseReport("00100\n111")
	assert.Error(t, err)

	_, err = ParseReport("00100\n0012x")
	assert.Error(t, err)
}

func TestMostCommonBits(t *testing.T) {
	report, err := ParseReport(testReport)
	require.NoError(t, err)

	gamma := MostCommonBits(report.Values, report.Bits)
	assert.Equal(t, uint64(22), gamma)
	assert.Equal(t, uint64(9), sizedInverse(report.Bits, ^gamma))
}

func TestFindRating(t *testing.T) {
	report, err := ParseReport(testReport)
	require.NoError(t, err)

	oxygen, err := FindRating(report.Values, report.Bits, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(23), oxygen)

	co2, err := FindRating(report.Values, report.Bits, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), co2)
}

func TestParts(t *testing.T) {
	one, err := PartOne(testReport)
	require.NoError(t, err)
	assert.Equal(t, "198", one)

	two, err := PartTwo(testReport)
	require.NoError(t, err)
	assert.Equal(t, "230", two)
}
