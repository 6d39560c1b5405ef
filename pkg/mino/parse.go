package mino

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCells builds a board from a comma separated list of x,y pairs. Every
// listed cell is filled with ColorGarbage.
func ParseCells(s string) (Board, error) {
	var b Board

	s = strings.TrimSpace(s)
	if s == "" {
		return b, nil
	}

	tokens := strings.Split(s, ",")
	if len(tokens)%2 != 0 {
		return b, fmt.Errorf("failed to parse cells: odd number of coordinates (%d)", len(tokens))
	}

	for i := 0; i < len(tokens); i += 2 {
		x, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
		if err != nil {
			return b, fmt.Errorf("failed to parse cells: token #%d: %w", i, err)
		}

		y, err := strconv.Atoi(strings.TrimSpace(tokens[i+1]))
		if err != nil {
			return b, fmt.Errorf("failed to parse cells: token #%d: %w", i+1, err)
		}

		if !b.Set(x, y, Filled(ColorGarbage)) {
			return b, fmt.Errorf("failed to parse cells: point %s out of bounds", Point{x, y})
		}
	}

	return b, nil
}
