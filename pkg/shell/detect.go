// Package shell reports the user's login shell.
package shell

import (
	"errors"
	"path"
	"strings"
)

var (
	// ErrNotSet is returned when $SHELL is unset or empty.
	ErrNotSet = errors.New("$SHELL is not set")
	// ErrNoName is returned when a shell path has no final segment.
	ErrNoName = errors.New("shell path has no file name")
)

// Detect returns the absolute path of the user's shell from the SHELL
// environment variable, looked up through getenv.
func Detect(getenv func(string) string) (string, error) {
	shellPath := strings.TrimSpace(getenv("SHELL"))
	if shellPath == "" {
		return "", ErrNotSet
	}
	return shellPath, nil
}

// Display returns shellPath unchanged when fullPath is set, otherwise the
// executable name (its final path segment).
func Display(shellPath string, fullPath bool) (string, error) {
	if fullPath {
		return shellPath, nil
	}
	return Name(shellPath)
}

// Name returns the final segment of shellPath, e.g. "zsh" for
// "/usr/bin/zsh". A path ending in a separator, or one that is only
// separators or dots, has no name.
func Name(shellPath string) (string, error) {
	if shellPath == "" || strings.HasSuffix(shellPath, "/") {
		return "", ErrNoName
	}
	name := path.Base(shellPath)
	if name == "." || name == ".." || name == "/" {
		return "", ErrNoName
	}
	return name, nil
}
