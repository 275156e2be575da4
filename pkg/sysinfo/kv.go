package sysinfo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLine is returned by strict parses when a line carries no
// delimiter.
var ErrMalformedLine = errors.New("line has no delimiter")

// ErrMissingKey is returned when a required key is absent from parsed content.
var ErrMissingKey = errors.New("required key missing")

// ErrMalformed is returned when content was read but cannot be interpreted.
var ErrMalformed = errors.New("malformed content")

// ParseMode selects how lines without a delimiter are treated.
type ParseMode int

const (
	// Lenient skips lines that carry no delimiter. This is the default.
	Lenient ParseMode = iota
	// Strict fails the whole parse on the first line without a delimiter.
	// Only use it where the caller guarantees well-formed input.
	Strict
)

// ParseOptions configures ParseKeyValues.
type ParseOptions struct {
	Delimiter byte
	Mode      ParseMode
	// Unquote strips one layer of surrounding double quotes from values.
	Unquote bool
	// Comments skips lines whose first non-blank character is '#'.
	Comments bool
}

// KeyValues maps a key to its (trimmed) value. Order is not preserved.
type KeyValues map[string]string

// ParseKeyValues splits each line of content at the first occurrence of
// opts.Delimiter. Keys and values are trimmed of surrounding whitespace; a
// later duplicate key replaces an earlier one. Blank lines are always ignored.
func ParseKeyValues(content string, opts ParseOptions) (KeyValues, error) {
	kv := make(KeyValues)
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if opts.Comments && strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(line, string(opts.Delimiter))
		if !found {
			if opts.Mode == Strict {
				return nil, fmt.Errorf("line %d: %w", i+1, ErrMalformedLine)
			}
			continue
		}

		value = strings.TrimSpace(value)
		if opts.Unquote {
			value = siUnquote(value)
		}
		kv[strings.TrimSpace(key)] = value
	}
	return kv, nil
}

// siUnquote removes one layer of surrounding double quotes. A value with an
// unbalanced quote is returned unchanged.
func siUnquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
