// internal/sonar/sonar.go
//
// Day 1: sonar sweep. Count depth measurements that increase, raw and over
// a three-measurement sliding window.

package sonar

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseReport reads one integer measurement per line.
func ParseReport(input string) ([]int, error) {
	var out []int
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("sonar: invalid measurement %q: %w", line, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Deltas returns the pairwise differences between consecutive measurements.
func Deltas(measurements []int) []int {
	if len(measurements) < 2 {
		return nil
	}
	out := make([]int, 0, len(measurements)-1)
	for i := 1; i < len(measurements); i++ {
		out = append(out, measurements[i]-measurements[i-1])
	}
	return out
}

// SlidingDeltas returns the differences between consecutive sums of
// three-measurement windows.
func SlidingDeltas(measurements []int) []int {
	if len(measurements) < 3 {
		return nil
	}
	sums := make([]int, 0, len(measurements)-2)
	for i := 2; i < len(measurements); i++ {
		sums = append(sums, measurements[i-2]+measurements[i-1]+measurements[i])
	}
	return Deltas(sums)
}

// countPositive counts strictly positive deltas.
func countPositive(deltas []int) int {
	n := 0
	for _, d := range deltas {
		if d > 0 {
			n++
		}
	}
	return n
}

// PartOne counts measurements larger than the previous one.
func PartOne(input string) (string, error) {
	measurements, err := ParseReport(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(countPositive(Deltas(measurements))), nil
}

// PartTwo counts three-measurement window sums larger than the previous one.
func PartTwo(input string) (string, error) {
	measurements, err := ParseReport(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(countPositive(SlidingDeltas(measurements))), nil
}
