//go:build !darwin

package sysinfo

import "github.com/shirou/gopsutil/v4/host"

// siKernelReleasePlatform asks gopsutil for the kernel version on hosts
// where /proc/sys/kernel/osrelease is unavailable.
func siKernelReleasePlatform() (string, error) {
	return host.KernelVersion()
}
