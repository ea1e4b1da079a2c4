// internal/vents/vents.go
//
// Day 5: hydrothermal vents. Rasterize line segments onto an integer grid
// and count the points covered by two or more segments.

package vents

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Point is a coordinate on the vent grid.
type Point struct {
	X, Y int
}

// Segment is a straight vent line between two points. Inputs only contain
// horizontal, vertical, and 45° diagonal segments.
type Segment struct {
	Start, End Point
}

var segmentPattern = regexp.MustCompile(`^(\d+),(\d+) -> (\d+),(\d+)$`)

// ParseSegment parses one "x1,y1 -> x2,y2" line.
func ParseSegment(line string) (Segment, error) {
	m := segmentPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Segment{}, fmt.Errorf("vents: invalid line segment %q", line)
	}
	coords := make([]int, 4)
	for i, s := range m[1:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Segment{}, fmt.Errorf("vents: invalid coordinate %q: %w", s, err)
		}
		coords[i] = n
	}
	return Segment{
		Start: Point{X: coords[0], Y: coords[1]},
		End:   Point{X: coords[2], Y: coords[3]},
	}, nil
}

// ParseSegments parses one segment per line.
func ParseSegments(input string) ([]Segment, error) {
	var out []Segment
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		seg, err := ParseSegment(line)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}
	return out, nil
}

// step returns -1, 0, or 1 toward b from a.
func step(a, b int) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// span is the number of unit steps the walk takes. Straight segments walk
// their full length; diagonals walk until the shorter axis is exhausted, so
// a segment with a non-unit slope truncates instead of overrunning its
// endpoint.
func (s Segment) span() int {
	nx := abs(s.End.X - s.Start.X)
	ny := abs(s.End.Y - s.Start.Y)
	switch {
	case nx == 0:
		return ny
	case ny == 0 || nx < ny:
		return nx
	default:
		return ny
	}
}

// Points returns the grid points the segment covers, starting at Start.
// Diagonal segments yield nothing unless includeDiagonal is set.
func (s Segment) Points(includeDiagonal bool) []Point {
	dx := step(s.Start.X, s.End.X)
	dy := step(s.Start.Y, s.End.Y)
	if dx != 0 && dy != 0 && !includeDiagonal {
		return nil
	}

	n := s.span()
	out := make([]Point, 0, n+1)
	p := s.Start
	for i := 0; i <= n; i++ {
		out = append(out, p)
		p.X += dx
		p.Y += dy
	}
	return out
}

// CountIntersections counts the points covered by at least two segments.
func CountIntersections(segments []Segment, includeDiagonal bool) int {
	covered := make(map[Point]int)
	for _, seg := range segments {
		for _, p := range seg.Points(includeDiagonal) {
			covered[p]++
		}
	}
	n := 0
	for _, count := range covered {
		if count > 1 {
			n++
		}
	}
	return n
}

// PartOne counts overlaps considering only horizontal and vertical segments.
func PartOne(input string) (string, error) {
	segments, err := ParseSegments(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(CountIntersections(segments, false)), nil
}

// PartTwo counts overlaps including the diagonal segments.
func PartTwo(input string) (string, error) {
	segments, err := ParseSegments(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(CountIntersections(segments, true)), nil
}
