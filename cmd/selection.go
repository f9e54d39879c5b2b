package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"wcoget/internal/media"
)

// applySelection marks the episodes named by expr: "all", "none", or a
// comma-separated list of 1-based indices and ranges such as "1,3,5-8".
func applySelection(c *media.Catalog, expr string) error {
	switch strings.ToLower(strings.TrimSpace(expr)) {
	case "", "all":
		c.SelectAll()
		return nil
	case "none":
		c.SelectNone()
		return nil
	}

	indices, err := parseSelection(expr, c.Len())
	if err != nil {
		return err
	}

	c.SelectNone()
	for _, i := range indices {
		if err := c.Toggle(i); err != nil {
			return err
		}
	}
	return nil
}

// parseSelection converts a 1-based list expression into sorted, unique 0-based indices.
func parseSelection(expr string, n int) ([]int, error) {
	var indices []int

	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty entry in selection %q", expr)
		}

		first, last, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		if first < 1 || last > n {
			return nil, fmt.Errorf("expected a value between 1 and %d, got %q", n, part)
		}
		for i := first; i <= last; i++ {
			indices = append(indices, i-1)
		}
	}

	indices = lo.Uniq(indices)
	slices.Sort(indices)
	return indices, nil
}

// parseRange parses "N" or "N-M".
func parseRange(part string) (int, int, error) {
	first, last, isRange := strings.Cut(part, "-")

	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid selection %q: not a number", part)
	}
	if !isRange {
		return start, start, nil
	}

	end, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid selection %q: not a number", part)
	}
	if end < start {
		return 0, 0, fmt.Errorf("invalid selection %q: range is reversed", part)
	}
	return start, end, nil
}
