// Package sysinfo extracts host facts from the semi-structured text files the
// kernel and distribution expose (/proc/cpuinfo, /proc/meminfo,
// /etc/os-release, /proc/uptime, ...).
//
// Every parser is a pure function over file contents so it can be tested
// without touching the host. Reader wraps them with file access; each of its
// methods either returns a value or an error, and never panics on malformed
// input. On hosts without a Linux /proc, Reader falls back to gopsutil.
package sysinfo

import (
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
)

// Reader reads host facts from a filesystem rooted at "/".
type Reader struct {
	fsys   fs.FS
	getenv func(string) string

	// fallback enables gopsutil/sysctl lookups when a pseudo-file is missing.
	fallback bool
}

// NewReader returns a Reader over the live host. Non-Linux hosts get
// platform fallbacks for facts that have no pseudo-file there.
func NewReader() *Reader {
	return &Reader{
		fsys:     os.DirFS("/"),
		getenv:   os.Getenv,
		fallback: runtime.GOOS != "linux",
	}
}

// NewReaderFS returns a Reader over fsys, which stands in for "/". Paths are
// looked up without their leading slash (e.g. "proc/meminfo"). Fallbacks are
// disabled so results depend only on fsys and getenv.
func NewReaderFS(fsys fs.FS, getenv func(string) string) *Reader {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &Reader{fsys: fsys, getenv: getenv}
}

// Getenv returns the environment lookup the Reader was built with.
func (r *Reader) Getenv(key string) string {
	return r.getenv(key)
}

// readFile returns the contents of name from the Reader's filesystem.
func (r *Reader) readFile(name string) (string, error) {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return "", fmt.Errorf("read /%s: %w", name, err)
	}
	return string(data), nil
}

// readFirst returns the contents of the first readable file in names.
func (r *Reader) readFirst(names ...string) (string, error) {
	var firstErr error
	for _, name := range names {
		content, err := r.readFile(name)
		if err == nil {
			return content, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", firstErr
}

// Arch returns the architecture the program was built for. It never fails.
func Arch() string {
	return runtime.GOARCH
}

// User returns the login name from $USER.
func (r *Reader) User() (string, error) {
	user := strings.TrimSpace(r.getenv("USER"))
	if user == "" {
		return "", fmt.Errorf("$USER: %w", ErrMissingKey)
	}
	return user, nil
}

// Hostname returns the contents of /etc/hostname, trimmed.
func (r *Reader) Hostname() (string, error) {
	content, err := r.readFile("etc/hostname")
	if err != nil {
		if r.fallback {
			if h, herr := os.Hostname(); herr == nil && h != "" {
				return h, nil
			}
		}
		return "", err
	}
	host := strings.TrimSpace(content)
	if host == "" {
		return "", fmt.Errorf("/etc/hostname is empty: %w", ErrMalformed)
	}
	return host, nil
}
