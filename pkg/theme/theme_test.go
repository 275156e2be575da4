package theme

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"
)

var thTestHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const sampleThemeTOML = `
name = "custom"

[colors]
header = "#ff0000"
value = "#eeeeee"
title = "#00ff00"
separator = "#666666"
`

// --- Get / Lookup / Names ---

func TestGetDefault(t *testing.T) {
	th := Get("default")
	if th.Name != "default" {
		t.Errorf("Get(\"default\").Name = %q, want %q", th.Name, "default")
	}
	if th.Header != "#7C3AED" {
		t.Errorf("Get(\"default\").Header = %q, want %q", th.Header, "#7C3AED")
	}
}

func TestGetGruvbox(t *testing.T) {
	th := Get("GruvBox")
	if th.Name != "gruvbox" {
		t.Errorf("Get(\"GruvBox\").Name = %q, want %q", th.Name, "gruvbox")
	}
	if th.Header != "#fe8019" {
		t.Errorf("Get(\"GruvBox\").Header = %q, want %q", th.Header, "#fe8019")
	}
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	th := Get("unknown-theme-xyz")
	def := Get("default")
	if th != def {
		t.Errorf("Get(\"unknown\") = %+v, want default %+v", th, def)
	}
	if _, ok := Lookup("unknown-theme-xyz"); ok {
		t.Error("Lookup(\"unknown\") reported a theme")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	expected := []string{"catppuccin", "default", "dracula", "gruvbox", "nord", "tokyo-night"}
	sort.Strings(expected)
	for _, name := range expected {
		i := sort.SearchStrings(names, name)
		if i >= len(names) || names[i] != name {
			t.Errorf("Names() missing %q: %v", name, names)
		}
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
}

// --- Built-in theme completeness ---

func TestAllThemesHaveValidHexColors(t *testing.T) {
	for _, name := range Names() {
		th := Get(name)
		t.Run(name, func(t *testing.T) {
			colors := map[string]string{
				"Header":    th.Header,
				"Value":     th.Value,
				"Title":     th.Title,
				"Separator": th.Separator,
			}
			for field, value := range colors {
				if !thTestHexPattern.MatchString(value) {
					t.Errorf("%s = %q is not valid #RRGGBB", field, value)
				}
			}
		})
	}
}

// --- TOML loading/saving ---

func TestLoadFromTOMLValid(t *testing.T) {
	th, err := LoadFromTOML([]byte(sampleThemeTOML))
	if err != nil {
		t.Fatalf("LoadFromTOML() error: %v", err)
	}
	want := Theme{Name: "custom", Header: "#ff0000", Value: "#eeeeee", Title: "#00ff00", Separator: "#666666"}
	if th != want {
		t.Errorf("LoadFromTOML() = %+v, want %+v", th, want)
	}
}

func TestLoadFromTOMLMissingFieldsError(t *testing.T) {
	data := []byte(`
name = "incomplete"

[colors]
header = "#ff0000"
`)
	_, err := LoadFromTOML(data)
	if err == nil || !strings.Contains(err.Error(), "missing required field") {
		t.Errorf("LoadFromTOML() error = %v, want missing field", err)
	}
}

func TestLoadFromTOMLMissingName(t *testing.T) {
	data := strings.Replace(sampleThemeTOML, `name = "custom"`, "", 1)
	if _, err := LoadFromTOML([]byte(data)); err == nil {
		t.Error("LoadFromTOML() should require a name")
	}
}

func TestLoadFromTOMLInvalidHexColor(t *testing.T) {
	data := strings.Replace(sampleThemeTOML, `value = "#eeeeee"`, `value = "not-a-color"`, 1)
	_, err := LoadFromTOML([]byte(data))
	if err == nil {
		t.Fatal("LoadFromTOML() should return error for invalid hex color")
	}
	if !strings.Contains(err.Error(), "invalid hex color") {
		t.Errorf("error should mention invalid hex color, got: %v", err)
	}
}

func TestLoadFromTOMLSyntaxError(t *testing.T) {
	if _, err := LoadFromTOML([]byte("name = ")); err == nil {
		t.Error("LoadFromTOML() should fail on malformed TOML")
	}
}

func TestSaveToTOMLRoundtrip(t *testing.T) {
	for _, name := range Names() {
		original := Get(name)
		data, err := SaveToTOML(original)
		if err != nil {
			t.Fatalf("SaveToTOML(%s) error: %v", name, err)
		}
		loaded, err := LoadFromTOML(data)
		if err != nil {
			t.Fatalf("LoadFromTOML(roundtrip %s) error: %v", name, err)
		}
		if loaded != original {
			t.Errorf("roundtrip %s: %+v -> %+v", name, original, loaded)
		}
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(p, []byte(sampleThemeTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadFile(p)
	if err != nil || th.Name != "custom" {
		t.Errorf("LoadFile() = %+v, %v", th, err)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFile() should fail for a missing file")
	}
}
