package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Colors thTOMLColors `toml:"colors"`
}

type thTOMLColors struct {
	Header    string `toml:"header"`
	Value     string `toml:"value"`
	Title     string `toml:"title"`
	Separator string `toml:"separator"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
//
//	name = "mine"
//	[colors]
//	header = "#ff8800"
//	value = "#dddddd"
//	title = "#88ff00"
//	separator = "#666666"
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:      tt.Name,
		Header:    tt.Colors.Header,
		Value:     tt.Colors.Value,
		Title:     tt.Colors.Title,
		Separator: tt.Colors.Separator,
	}
	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a TOML theme file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Colors: thTOMLColors{
			Header:    t.Header,
			Value:     t.Value,
			Title:     t.Title,
			Separator: t.Separator,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme checks that the name and every color are present and
// every color is #RRGGBB.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	for _, f := range []struct{ field, value string }{
		{"header", t.Header},
		{"value", t.Value},
		{"title", t.Title},
		{"separator", t.Separator},
	} {
		if f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.field)
		}
		if !thHexColorRegex.MatchString(f.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", f.value, f.field)
		}
	}
	return nil
}
