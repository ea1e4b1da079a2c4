// internal/lanternfish/lanternfish.go
//
// Day 6: lanternfish. Exponential population growth simulated as a
// nine-slot timer histogram, one slot per days-to-spawn.

package lanternfish

import (
	"fmt"
	"strconv"
	"strings"
)

// timerMax is the highest timer value: a newborn starts at 8, a fish that
// just spawned resets to 6.
const timerMax = 8

// ParseTimers reads the comma-separated initial timers.
func ParseTimers(input string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(input), ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > timerMax {
			return nil, fmt.Errorf("lanternfish: invalid timer %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

// Population returns the school size after the given number of days. Counts
// are bucketed per timer value, so the cost is days×9 regardless of how
// large the school grows.
func Population(timers []int, days int) uint64 {
	var counts [timerMax + 1]uint64
	for _, t := range timers {
		counts[t]++
	}

	for day := 0; day < days; day++ {
		spawning := counts[0]
		copy(counts[:], counts[1:])
		counts[6] += spawning
		counts[8] = spawning
	}

	var total uint64
	for _, c := range counts {
		total += c
	}
	return total
}

// PartOne counts the school after 80 days.
func PartOne(input string) (string, error) {
	timers, err := ParseTimers(input)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(Population(timers, 80), 10), nil
}

// PartTwo counts the school after 256 days.
func PartTwo(input string) (string, error) {
	timers, err := ParseTimers(input)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(Population(timers, 256), 10), nil
}
