package shell

import (
	"errors"
	"testing"
)

func envWith(shellPath string) func(string) string {
	return func(key string) string {
		if key == "SHELL" {
			return shellPath
		}
		return ""
	}
}

func TestDetect(t *testing.T) {
	got, err := Detect(envWith("/bin/bash"))
	if err != nil || got != "/bin/bash" {
		t.Errorf("Detect = %q, %v; want /bin/bash", got, err)
	}
}

func TestDetectUnset(t *testing.T) {
	for _, v := range []string{"", "   "} {
		if _, err := Detect(envWith(v)); !errors.Is(err, ErrNotSet) {
			t.Errorf("Detect(SHELL=%q) error = %v, want ErrNotSet", v, err)
		}
	}
}

func TestName(t *testing.T) {
	tests := map[string]string{
		"/usr/bin/zsh":                       "zsh",
		"/bin/bash":                          "bash",
		"fish":                               "fish",
		"/nix/store/abc-nushell-0.95/bin/nu": "nu",
		"/usr/local/bin//fish":               "fish",
	}
	for in, want := range tests {
		got, err := Name(in)
		if err != nil {
			t.Errorf("Name(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Name(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNameMalformed(t *testing.T) {
	for _, in := range []string{"", "/", "/usr/bin/", ".", ".."} {
		if got, err := Name(in); !errors.Is(err, ErrNoName) {
			t.Errorf("Name(%q) = %q, %v; want ErrNoName", in, got, err)
		}
	}
}

func TestDisplay(t *testing.T) {
	got, err := Display("/usr/bin/zsh", true)
	if err != nil || got != "/usr/bin/zsh" {
		t.Errorf("Display(full) = %q, %v", got, err)
	}
	got, err = Display("/usr/bin/zsh", false)
	if err != nil || got != "zsh" {
		t.Errorf("Display(short) = %q, %v", got, err)
	}
	if _, err := Display("/usr/bin/", false); !errors.Is(err, ErrNoName) {
		t.Errorf("Display(malformed, short) error = %v, want ErrNoName", err)
	}
}
