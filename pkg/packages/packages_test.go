package packages

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// fakeRunner serves canned listings. Managers absent from installed fail
// LookPath; managers in failing fail Output.
type fakeRunner struct {
	installed map[string]string
	failing   map[string]bool
	calls     []string
	deadline  bool
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if _, ok := f.installed[name]; !ok {
		return "", exec.ErrNotFound
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if _, ok := ctx.Deadline(); ok {
		f.deadline = true
	}
	if f.failing[name] {
		return nil, errors.New("exit status 1")
	}
	return []byte(f.installed[name]), nil
}

func newTestCounter(r Runner, logs *bytes.Buffer, opts ...Option) *Counter {
	logger := slog.New(slog.NewTextHandler(logs, nil))
	return NewCounter(logger, append([]Option{WithRunner(r)}, opts...)...)
}

// --- Counting ---

func TestCountInstalledOnly(t *testing.T) {
	r := &fakeRunner{installed: map[string]string{
		"pacman":  "a\nb\nc\n",
		"flatpak": "x\ny\n",
	}}
	var logs bytes.Buffer
	got := newTestCounter(r, &logs).Count(context.Background())

	want := []Count{{"pacman", 3}, {"flatpak", 2}}
	if len(got) != len(want) {
		t.Fatalf("Count = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Count[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if logs.Len() != 0 {
		t.Errorf("absent managers should be silent, got logs: %s", logs.String())
	}
}

func TestCountRunsExpectedCommands(t *testing.T) {
	r := &fakeRunner{installed: map[string]string{"dpkg": "", "xbps-query": ""}}
	newTestCounter(r, &bytes.Buffer{}).Count(context.Background())

	want := []string{"dpkg --get-selections", "xbps-query --list-pkgs"}
	if strings.Join(r.calls, "|") != strings.Join(want, "|") {
		t.Errorf("calls = %q, want %q", r.calls, want)
	}
}

func TestCountFailureLoggedAndExcluded(t *testing.T) {
	r := &fakeRunner{
		installed: map[string]string{"rpm": "", "apk": "musl\nbusybox\n"},
		failing:   map[string]bool{"rpm": true},
	}
	var logs bytes.Buffer
	got := newTestCounter(r, &logs).Count(context.Background())

	if len(got) != 1 || got[0] != (Count{"apk", 2}) {
		t.Errorf("Count = %+v, want only apk", got)
	}
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "manager=rpm") {
		t.Errorf("expected a warning naming rpm, got: %s", logs.String())
	}
}

func TestCountNoManagers(t *testing.T) {
	r := &fakeRunner{installed: map[string]string{}}
	if got := newTestCounter(r, &bytes.Buffer{}).Count(context.Background()); len(got) != 0 {
		t.Errorf("Count = %+v, want none", got)
	}
}

func TestCountCustomManagers(t *testing.T) {
	r := &fakeRunner{installed: map[string]string{"nix-env": "a\nb\n"}}
	c := newTestCounter(r, &bytes.Buffer{},
		WithManagers([]Manager{{Name: "nix-env", Args: []string{"-q"}}}))
	got := c.Count(context.Background())
	if len(got) != 1 || got[0] != (Count{"nix-env", 2}) {
		t.Errorf("Count = %+v", got)
	}
}

func TestCountTimeout(t *testing.T) {
	r := &fakeRunner{installed: map[string]string{"pacman": "a\n"}}
	newTestCounter(r, &bytes.Buffer{}).Count(context.Background())
	if r.deadline {
		t.Error("no timeout configured, but the context carried a deadline")
	}

	r = &fakeRunner{installed: map[string]string{"pacman": "a\n"}}
	newTestCounter(r, &bytes.Buffer{}, WithTimeout(time.Second)).Count(context.Background())
	if !r.deadline {
		t.Error("timeout configured, but the context carried no deadline")
	}
}

func TestDefaultManagers(t *testing.T) {
	ms := DefaultManagers()
	seen := map[string]bool{}
	for _, m := range ms {
		if m.Name == "" || len(m.Args) == 0 {
			t.Errorf("manager %+v has no name or args", m)
		}
		if seen[m.Name] {
			t.Errorf("manager %q listed twice", m.Name)
		}
		seen[m.Name] = true
	}
	if ms[0].Name != "pacman" {
		t.Errorf("first manager = %q, want pacman", ms[0].Name)
	}
}

// --- Line counting ---

func TestCountLines(t *testing.T) {
	tests := map[string]int{
		"":          0,
		"\n":        1,
		"a":         1,
		"a\n":       1,
		"a\nb":      2,
		"a\nb\n":    2,
		"a\n\nb\n":  3,
		"a\nb\nc\n": 3,
	}
	for in, want := range tests {
		if got := CountLines([]byte(in)); got != want {
			t.Errorf("CountLines(%q) = %d, want %d", in, got, want)
		}
	}
}

// --- Formatting ---

func TestFormat(t *testing.T) {
	counts := []Count{{"pacman", 1234}, {"flatpak", 12}}
	if got := Format(counts, true); got != "1234 (pacman), 12 (flatpak)" {
		t.Errorf("Format(managers) = %q", got)
	}
	if got := Format(counts, false); got != "1246" {
		t.Errorf("Format(total) = %q", got)
	}
	if got := Format(nil, true); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format([]Count{{"dpkg", 0}}, false); got != "0" {
		t.Errorf("Format(zero) = %q, want 0", got)
	}
}
