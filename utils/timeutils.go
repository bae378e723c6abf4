package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockToMinutes parses a 24h clock string ("10:30", "9:05") into minutes
// since midnight.
func ClockToMinutes(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("not an HH:MM clock value: %q", s)
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("bad hour in clock value %q", s)
	}
	if len(m) != 2 {
		return 0, fmt.Errorf("bad minutes in clock value %q", s)
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("bad minutes in clock value %q", s)
	}
	return hh*60 + mm, nil
}
