// Package packages counts installed packages across the package managers
// present on the host. Each manager is probed first; those that are not
// installed are skipped without noise.
package packages

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Manager is a package manager and the arguments that make it list every
// installed package, one per line.
type Manager struct {
	Name string
	Args []string
}

// Count is the number of packages a single manager reports.
type Count struct {
	Manager  string
	Packages int
}

// DefaultManagers returns the managers probed by default, in display order.
func DefaultManagers() []Manager {
	return []Manager{
		{Name: "pacman", Args: []string{"--query", "--quiet"}},
		{Name: "dpkg", Args: []string{"--get-selections"}},
		{Name: "rpm", Args: []string{"--query", "--all"}},
		{Name: "apk", Args: []string{"info"}},
		{Name: "xbps-query", Args: []string{"--list-pkgs"}},
		{Name: "flatpak", Args: []string{"list"}},
		{Name: "brew", Args: []string{"list", "--formula"}},
	}
}

// Runner abstracts process execution so counting can be tested without
// spawning package managers.
type Runner interface {
	// LookPath reports whether name can be invoked.
	LookPath(name string) (string, error)
	// Output runs name with args and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// LookPath implements Runner.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Output implements Runner. Standard error is discarded.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Counter queries a fixed set of managers.
type Counter struct {
	managers []Manager
	runner   Runner
	timeout  time.Duration
	logger   *slog.Logger
}

// Option configures a Counter.
type Option func(*Counter)

// WithManagers replaces the default manager list.
func WithManagers(m []Manager) Option {
	return func(c *Counter) { c.managers = m }
}

// WithRunner replaces the os/exec runner.
func WithRunner(r Runner) Option {
	return func(c *Counter) { c.runner = r }
}

// WithTimeout bounds each listing command. Zero (the default) means no
// bound: a hung package manager hangs the count.
func WithTimeout(d time.Duration) Option {
	return func(c *Counter) { c.timeout = d }
}

// NewCounter returns a Counter over DefaultManagers using os/exec.
func NewCounter(logger *slog.Logger, opts ...Option) *Counter {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Counter{
		managers: DefaultManagers(),
		runner:   ExecRunner{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Count runs every installed manager's listing command once and returns
// their package counts in manager order. Managers that are not installed are
// skipped silently; a listing that fails is logged and left out.
func (c *Counter) Count(ctx context.Context) []Count {
	var counts []Count
	for _, m := range c.managers {
		if _, err := c.runner.LookPath(m.Name); err != nil {
			continue
		}
		n, err := c.countOne(ctx, m)
		if err != nil {
			c.logger.Warn("failed to get package count", "manager", m.Name, "err", err)
			continue
		}
		counts = append(counts, Count{Manager: m.Name, Packages: n})
	}
	return counts
}

func (c *Counter) countOne(ctx context.Context, m Manager) (int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	out, err := c.runner.Output(ctx, m.Name, m.Args...)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", m.Name, strings.Join(m.Args, " "), err)
	}
	return CountLines(out), nil
}

// CountLines returns the number of lines in out. A final line without a
// trailing newline counts; the empty string has no lines.
func CountLines(out []byte) int {
	if len(out) == 0 {
		return 0
	}
	n := bytes.Count(out, []byte{'\n'})
	if out[len(out)-1] != '\n' {
		n++
	}
	return n
}

// Format renders counts as "N (manager), M (manager)" when showManagers is
// set, or as the total otherwise. It returns "" for no counts.
func Format(counts []Count, showManagers bool) string {
	if len(counts) == 0 {
		return ""
	}
	if !showManagers {
		total := 0
		for _, c := range counts {
			total += c.Packages
		}
		return strconv.Itoa(total)
	}
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d (%s)", c.Packages, c.Manager))
	}
	return strings.Join(parts, ", ")
}
