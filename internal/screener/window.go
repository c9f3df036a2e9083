package screener

import (
	"fmt"
	"strconv"
	"strings"
)

// Approximate trading-day counts per calendar unit.
const (
	tradingDaysPerWeek  = 5
	tradingDaysPerMonth = 21
	tradingDaysPerYear  = 252
)

// ParseWindow converts a window descriptor such as "6mo", "1y", "2w" or
// "90d" into a trading-day count suitable for daily bar requests.
func ParseWindow(window string) (int, error) {
	w := strings.ToLower(strings.TrimSpace(window))
	if w == "" {
		return 0, fmt.Errorf("empty window descriptor")
	}

	var suffix string
	var perUnit int
	switch {
	case strings.HasSuffix(w, "mo"):
		suffix, perUnit = "mo", tradingDaysPerMonth
	case strings.HasSuffix(w, "d"):
		suffix, perUnit = "d", 1
	case strings.HasSuffix(w, "w"):
		suffix, perUnit = "w", tradingDaysPerWeek
	case strings.HasSuffix(w, "y"):
		suffix, perUnit = "y", tradingDaysPerYear
	default:
		return 0, fmt.Errorf("window %q: unknown unit (want d, w, mo or y)", window)
	}

	n, err := strconv.Atoi(strings.TrimSuffix(w, suffix))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("window %q: count must be a positive integer", window)
	}
	return n * perUnit, nil
}
