package sysinfo

import (
	"strconv"
	"strings"
)

// Duration is an uptime split into calendar-ish components.
type Duration struct {
	Days    uint64
	Hours   uint64 // 0-23
	Minutes uint64 // 0-59
	Seconds uint64 // the original total, shown only when everything else is zero
}

// siShortForms rewrites long-form units to their one-letter forms. Applied in
// order, so plural forms must precede their singular prefixes.
var siShortForms = strings.NewReplacer(
	" days,", "d",
	" day,", "d",
	" hours,", "h",
	" hour,", "h",
	" mins", "m",
	" min", "m",
	" secs", "s",
)

// DurationFromSeconds decomposes secs into days, hours and minutes.
func DurationFromSeconds(secs uint64) Duration {
	return Duration{
		Days:    secs / 86400,
		Hours:   secs / 3600 % 24,
		Minutes: secs / 60 % 60,
		Seconds: secs,
	}
}

// Long renders the duration as e.g. "10 days, 6 hours, 54 mins". Zero
// components are omitted; when all of them are zero it falls back to
// "<total> secs".
func (d Duration) Long() string {
	return siTrimSeparators(d.siRender())
}

// Short renders the duration as e.g. "10d 6h 54m".
func (d Duration) Short() string {
	return siTrimSeparators(siShortForms.Replace(d.siRender()))
}

// Format returns Short when short is set, Long otherwise.
func (d Duration) Format(short bool) string {
	if short {
		return d.Short()
	}
	return d.Long()
}

// siRender builds the untrimmed long form: every component is followed by
// ", " so the short-form replacements see the same separators regardless of
// position.
func (d Duration) siRender() string {
	var b strings.Builder
	siWriteUnit(&b, d.Days, "day", "days")
	siWriteUnit(&b, d.Hours, "hour", "hours")
	siWriteUnit(&b, d.Minutes, "min", "mins")
	if b.Len() == 0 {
		b.WriteString(strconv.FormatUint(d.Seconds, 10))
		b.WriteString(" secs")
	}
	return b.String()
}

func siWriteUnit(b *strings.Builder, n uint64, singular, plural string) {
	switch n {
	case 0:
		return
	case 1:
		b.WriteString("1 " + singular)
	default:
		b.WriteString(strconv.FormatUint(n, 10) + " " + plural)
	}
	b.WriteString(", ")
}

// siTrimSeparators drops trailing commas and whitespace.
func siTrimSeparators(s string) string {
	return strings.TrimRight(s, ", \t\n")
}
