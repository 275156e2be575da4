package sysinfo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// /proc/uptime holds two values: seconds since boot, and the sum of the time
// every core has spent idle.
const uptimePath = "proc/uptime"

// ParseUptime returns the whole seconds since boot from the contents of
// /proc/uptime.
func ParseUptime(content string) (uint64, error) {
	first, _, _ := strings.Cut(strings.TrimSpace(content), " ")
	secs, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return 0, fmt.Errorf("uptime %q: %w", first, ErrMalformed)
	}
	if secs < 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, fmt.Errorf("uptime %q out of range: %w", first, ErrMalformed)
	}
	return uint64(secs), nil
}

// Uptime returns the seconds elapsed since boot.
func (r *Reader) Uptime() (uint64, error) {
	content, err := r.readFile(uptimePath)
	if err != nil {
		if r.fallback {
			return siFallbackUptime()
		}
		return 0, err
	}
	return ParseUptime(content)
}
