// internal/diagnostic/diagnostic.go
//
// Day 3: binary diagnostic. Column-wise bit frequencies over fixed-width
// binary numbers: power consumption (gamma × epsilon) and life support
// (oxygen × CO2 rating filtering).

package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Report holds the parsed diagnostic numbers and their common bit width.
type Report struct {
	Values []uint64
	Bits   int
}

// ParseReport parses one binary number per line. The first line fixes the
// bit width; every line must match it.
func ParseReport(input string) (Report, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	report := Report{Values: make([]uint64, 0, len(lines))}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if report.Bits == 0 {
			report.Bits = len(line)
		}
		if len(line) != report.Bits {
			return Report{}, fmt.Errorf("diagnostic: line %q is not %d bits wide", line, report.Bits)
		}
		n, err := strconv.ParseUint(line, 2, 64)
		if err != nil {
			return Report{}, fmt.Errorf("diagnostic: invalid binary number %q: %w", line, err)
		}
		report.Values = append(report.Values, n)
	}
	return report, nil
}

// bit returns the shift for column idx, counting columns from the most
// significant end.
func bit(bits, idx int) uint {
	return uint(bits - idx - 1)
}

// sizedInverse masks n down to the low `bits` bits.
func sizedInverse(bits int, n uint64) uint64 {
	return n << (64 - uint(bits)) >> (64 - uint(bits))
}

// MostCommonBits returns, column by column, the most common bit across all
// values. Ties favor 1.
func MostCommonBits(values []uint64, bits int) uint64 {
	counts := make([]int, bits)
	for _, v := range values {
		for idx := range counts {
			if v&(1<<bit(bits, idx)) != 0 {
				counts[idx]++
			}
		}
	}

	half := len(values)/2 + len(values)%2
	var result uint64
	for idx, count := range counts {
		if count >= half {
			result |= 1 << bit(bits, idx)
		}
	}
	return result
}

// FindRating filters values column by column, keeping those whose bit
// matches the most (or least) common bit of the remaining set, until a
// single value is left.
func FindRating(values []uint64, bits int, useMost bool) (uint64, error) {
	remaining := append([]uint64(nil), values...)

	for idx := 0; idx < bits; idx++ {
		needle := MostCommonBits(remaining, bits)
		if !useMost {
			needle = sizedInverse(bits, ^needle)
		}

		mask := uint64(1) << bit(bits, idx)
		filtered := remaining[:0]
		for _, v := range remaining {
			if v&mask == needle&mask {
				filtered = append(filtered, v)
			}
		}
		remaining = filtered

		if len(remaining) == 1 {
			return remaining[0], nil
		}
	}
	return 0, errors.New("diagnostic: rating did not converge to a single value")
}

// PartOne multiplies gamma (most common bits) by epsilon (its width-limited
// inverse).
func PartOne(input string) (string, error) {
	report, err := ParseReport(input)
	if err != nil {
		return "", err
	}
	gamma := MostCommonBits(report.Values, report.Bits)
	epsilon := sizedInverse(report.Bits, ^gamma)
	return strconv.FormatUint(gamma*epsilon, 10), nil
}

// PartTwo multiplies the oxygen generator rating by the CO2 scrubber rating.
func PartTwo(input string) (string, error) {
	report, err := ParseReport(input)
	if err != nil {
		return "", err
	}
	oxygen, err := FindRating(report.Values, report.Bits, true)
	if err != nil {
		return "", err
	}
	co2, err := FindRating(report.Values, report.Bits, false)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(oxygen*co2, 10), nil
}
