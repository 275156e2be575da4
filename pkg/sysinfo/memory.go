package sysinfo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const memInfoPath = "proc/meminfo"

// MemUnit is the unit memory figures are displayed in.
type MemUnit int

const (
	KiB MemUnit = iota
	MiB
	GiB
)

var memUnitNames = [...]string{
	KiB: "KiB",
	MiB: "MiB",
	GiB: "GiB",
}

// String returns the unit suffix, e.g. "GiB".
func (u MemUnit) String() string {
	if int(u) >= 0 && int(u) < len(memUnitNames) {
		return memUnitNames[u]
	}
	return fmt.Sprintf("MemUnit(%d)", int(u))
}

// MarshalText implements encoding.TextMarshaler.
func (u MemUnit) MarshalText() ([]byte, error) {
	if int(u) < 0 || int(u) >= len(memUnitNames) {
		return nil, fmt.Errorf("invalid memory unit %d", int(u))
	}
	return []byte(memUnitNames[u]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is
// case-insensitive.
func (u *MemUnit) UnmarshalText(text []byte) error {
	for i, name := range memUnitNames {
		if strings.EqualFold(name, string(text)) {
			*u = MemUnit(i)
			return nil
		}
	}
	return fmt.Errorf("invalid memory unit %q (want KiB, MiB or GiB)", string(text))
}

// MemorySample is a snapshot of physical memory, in KiB as /proc/meminfo
// reports it.
type MemorySample struct {
	TotalKiB     uint64
	AvailableKiB uint64
}

// UsedKiB returns total minus available. It is negative only when the kernel
// reported more available than total memory; that is surfaced, not clamped.
func (m MemorySample) UsedKiB() int64 {
	return int64(m.TotalKiB) - int64(m.AvailableKiB)
}

// UsedPercent returns used / total * 100, or 0 when total is zero.
func (m MemorySample) UsedPercent() float64 {
	if m.TotalKiB == 0 {
		return 0
	}
	return float64(m.UsedKiB()) / float64(m.TotalKiB) * 100
}

// ParseMemInfo parses /proc/meminfo into a map of KiB values. Lines are
// "Key:    value kB"; a value that does not parse becomes 0 without
// affecting the other keys.
func ParseMemInfo(content string) map[string]uint64 {
	kv, _ := ParseKeyValues(content, ParseOptions{Delimiter: ':'})
	values := make(map[string]uint64, len(kv))
	for k, v := range kv {
		values[k] = siParseMemValue(v)
	}
	return values
}

// siParseMemValue strips whitespace and the unit characters 'k' and 'B'
// from both ends of v and parses the remainder, returning 0 on failure.
func siParseMemValue(v string) uint64 {
	v = strings.Trim(v, "kB \t")
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// MemorySampleFrom picks MemTotal and MemAvailable out of a parsed
// /proc/meminfo.
func MemorySampleFrom(values map[string]uint64) (MemorySample, error) {
	total, ok := values["MemTotal"]
	if !ok {
		return MemorySample{}, fmt.Errorf("MemTotal: %w", ErrMissingKey)
	}
	available, ok := values["MemAvailable"]
	if !ok {
		return MemorySample{}, fmt.Errorf("MemAvailable: %w", ErrMissingKey)
	}
	if total == 0 {
		return MemorySample{}, fmt.Errorf("MemTotal is zero: %w", ErrMalformed)
	}
	return MemorySample{TotalKiB: total, AvailableKiB: available}, nil
}

// FormatMemory renders a sample as "<used><unit> / <total><unit>", followed
// by " (N%)" when percent is set.
func FormatMemory(m MemorySample, unit MemUnit, percent bool) string {
	s := siFormatKiB(m.UsedKiB(), unit) + " / " + siFormatKiB(int64(m.TotalKiB), unit)
	if percent {
		s += fmt.Sprintf(" (%d%%)", int64(math.Round(m.UsedPercent())))
	}
	return s
}

// siFormatKiB converts kib to unit. MiB is whole (truncated), GiB carries
// two decimals.
func siFormatKiB(kib int64, unit MemUnit) string {
	switch unit {
	case MiB:
		return fmt.Sprintf("%dMiB", kib/1024)
	case GiB:
		return fmt.Sprintf("%.2fGiB", float64(kib)/(1024*1024))
	default:
		return fmt.Sprintf("%dKiB", kib)
	}
}

// Memory reads /proc/meminfo and returns the current sample.
func (r *Reader) Memory() (MemorySample, error) {
	content, err := r.readFile(memInfoPath)
	if err != nil {
		if r.fallback {
			return siFallbackMemory()
		}
		return MemorySample{}, err
	}
	return MemorySampleFrom(ParseMemInfo(content))
}
