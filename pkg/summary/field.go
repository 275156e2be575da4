package summary

import (
	"fmt"
	"strings"
)

// Field identifies one line of the summary. The set is closed.
type Field int

const (
	FieldTitle Field = iota
	FieldOS
	FieldArch
	FieldKernel
	FieldUptime
	FieldPackages
	FieldShell
	FieldMemory
	FieldCPU

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldTitle:    "title",
	FieldOS:       "os",
	FieldArch:     "arch",
	FieldKernel:   "kernel",
	FieldUptime:   "uptime",
	FieldPackages: "packages",
	FieldShell:    "shell",
	FieldMemory:   "memory",
	FieldCPU:      "cpu",
}

// DefaultOrder returns every field in the order they are printed by default.
func DefaultOrder() []Field {
	order := make([]Field, 0, fieldCount)
	for f := FieldTitle; f < fieldCount; f++ {
		order = append(order, f)
	}
	return order
}

// Valid reports whether f is one of the defined fields.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField returns the field named s, ignoring case and surrounding space.
func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown module %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid field %d", int(f))
	}
	return []byte(fieldNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
