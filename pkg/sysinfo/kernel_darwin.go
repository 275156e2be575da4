//go:build darwin

package sysinfo

import (
	"golang.org/x/sys/unix"
)

// siKernelReleasePlatform returns the kernel release on macOS via sysctl.
func siKernelReleasePlatform() (string, error) {
	return unix.Sysctl("kern.osrelease")
}
