package sysinfo

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// The siFallback* functions serve hosts without a Linux /proc (macOS, the
// BSDs). They only run when Reader.fallback is set.

func siFallbackCPU() (CPUInfo, error) {
	infos, err := cpu.Info()
	if err != nil {
		return CPUInfo{}, fmt.Errorf("cpu info: %w", err)
	}
	if len(infos) == 0 || strings.TrimSpace(infos[0].ModelName) == "" {
		return CPUInfo{}, fmt.Errorf("model name: %w", ErrMissingKey)
	}
	info := CPUInfo{ModelName: strings.TrimSpace(infos[0].ModelName)}
	if cores, err := cpu.Counts(false); err == nil && cores > 0 {
		info.Cores = cores
	}
	return info, nil
}

func siFallbackMemory() (MemorySample, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemorySample{}, fmt.Errorf("virtual memory: %w", err)
	}
	if vm.Total == 0 {
		return MemorySample{}, fmt.Errorf("total memory is zero: %w", ErrMalformed)
	}
	return MemorySample{
		TotalKiB:     vm.Total / 1024,
		AvailableKiB: vm.Available / 1024,
	}, nil
}

func siFallbackUptime() (uint64, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, fmt.Errorf("host uptime: %w", err)
	}
	return secs, nil
}

func siFallbackOSRelease() (OSRelease, error) {
	platform, _, version, err := host.PlatformInformation()
	if err != nil {
		return OSRelease{}, fmt.Errorf("platform information: %w", err)
	}
	if platform == "" {
		return OSRelease{}, fmt.Errorf("platform name: %w", ErrMissingKey)
	}
	return OSRelease{Name: siPlatformName(platform), Version: version}, nil
}

// siPlatformName maps gopsutil platform identifiers to display names.
func siPlatformName(platform string) string {
	switch platform {
	case "darwin":
		return "macOS"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	default:
		return platform
	}
}
