package sysinfo

import (
	"fmt"
	"strings"
)

const kernelReleasePath = "proc/sys/kernel/osrelease"

// ParseKernelRelease trims the raw kernel release string. An empty release
// is malformed.
func ParseKernelRelease(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty kernel release: %w", ErrMalformed)
	}
	return s, nil
}

// Kernel returns the running kernel's release, e.g. "6.8.0-45-generic".
func (r *Reader) Kernel() (string, error) {
	content, err := r.readFile(kernelReleasePath)
	if err != nil {
		if r.fallback {
			if raw, perr := siKernelReleasePlatform(); perr == nil {
				return ParseKernelRelease(raw)
			}
		}
		return "", err
	}
	return ParseKernelRelease(content)
}
