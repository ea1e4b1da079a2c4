// internal/dive/dive.go
//
// Day 2: dive. Fold "forward/up/down N" commands into a submarine position,
// with and without aim.

package dive

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is the verb of one course command.
type Direction string

const (
	Forward Direction = "forward"
	Up      Direction = "up"
	Down    Direction = "down"
)

// Command is one parsed course line.
type Command struct {
	Direction Direction
	N         int
}

// ParseCommand parses a single "direction N" line.
func ParseCommand(line string) (Command, error) {
	verb, arg, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok {
		return Command{}, fmt.Errorf("dive: unrecognized line %q", line)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return Command{}, fmt.Errorf("dive: invalid distance in %q: %w", line, err)
	}
	switch Direction(verb) {
	case Forward, Up, Down:
		return Command{Direction: Direction(verb), N: n}, nil
	default:
		return Command{}, fmt.Errorf("dive: unrecognized line %q", line)
	}
}

// ParseCourse parses one command per line.
func ParseCourse(input string) ([]Command, error) {
	var out []Command
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}

// Plot folds the course into horizontal position × depth. Up and down move
// the depth directly.
func Plot(commands []Command) int {
	x, y := 0, 0
	for _, cmd := range commands {
		switch cmd.Direction {
		case Forward:
			x += cmd.N
		case Up:
			y -= cmd.N
		case Down:
			y += cmd.N
		}
	}
	return x * y
}

// PlotWithAim folds the course with up/down adjusting aim instead of depth;
// forward moves by aim as well.
func PlotWithAim(commands []Command) int {
	aim, x, y := 0, 0, 0
	for _, cmd := range commands {
		switch cmd.Direction {
		case Forward:
			x += cmd.N
			y += aim * cmd.N
		case Up:
			aim -= cmd.N
		case Down:
			aim += cmd.N
		}
	}
	return x * y
}

// PartOne plots the course without aim.
func PartOne(input string) (string, error) {
	commands, err := ParseCourse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(Plot(commands)), nil
}

// PartTwo plots the course with aim.
func PartTwo(input string) (string, error) {
	commands, err := ParseCourse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(PlotWithAim(commands)), nil
}
