// Package theme holds the named color palettes minifetch renders with.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme is a palette of hex colors, e.g. "#1a1b26".
type Theme struct {
	Name string

	Header    string // field headers ("OS", "CPU", ...)
	Value     string // field values
	Title     string // user@host heading
	Separator string // rule under the title
}

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	t, _ := Lookup(DefaultName)
	return t
}

// Lookup returns the named theme and whether it exists. Names are matched
// case-insensitively.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
