package sysinfo

import (
	"fmt"
	"strconv"
	"strings"
)

const cpuInfoPath = "proc/cpuinfo"

// CPUInfo describes the processor as reported by /proc/cpuinfo.
type CPUInfo struct {
	ModelName string
	Cores     int // 0 if unknown
}

// siCPUMarketing lists the substrings removed by ShortenModel. Order matters
// and must not change: output compatibility depends on it.
var siCPUMarketing = []string{
	"(TM)",
	"(tm)",
	"(R)",
	"(r)",
	" Core",
	" CPU",
	" Processor",
	" Dual-Core",
	" Quad-Core",
	" Six-Core",
	" Eight-Core",
}

// ParseCPUInfo extracts the model name and per-package core count from the
// contents of /proc/cpuinfo. The file repeats its block for every logical
// CPU; the last block wins, which is identical on every sane system.
func ParseCPUInfo(content string) (CPUInfo, error) {
	kv, err := ParseKeyValues(content, ParseOptions{Delimiter: ':'})
	if err != nil {
		return CPUInfo{}, err
	}

	model, ok := kv["model name"]
	if !ok {
		return CPUInfo{}, fmt.Errorf("model name: %w", ErrMissingKey)
	}

	info := CPUInfo{ModelName: model}
	if raw, ok := kv["cpu cores"]; ok {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
			info.Cores = int(n)
		}
	}
	return info, nil
}

// ShortenModel strips trademark marks and marketing words from a CPU model
// name, e.g. "Intel(R) Core(TM) i7-9700K CPU @ 3.60GHz" becomes
// "Intel i7-9700K @ 3.60GHz".
func ShortenModel(name string) string {
	for _, s := range siCPUMarketing {
		name = strings.ReplaceAll(name, s, "")
	}
	return name
}

// Display renders the model name, optionally shortened and followed by the
// core count in parentheses.
func (c CPUInfo) Display(shorten, showCores bool) string {
	name := c.ModelName
	if shorten {
		name = ShortenModel(name)
	}
	if showCores && c.Cores > 0 {
		name = fmt.Sprintf("%s (%d)", name, c.Cores)
	}
	return name
}

// CPU reads and parses /proc/cpuinfo.
func (r *Reader) CPU() (CPUInfo, error) {
	content, err := r.readFile(cpuInfoPath)
	if err != nil {
		if r.fallback {
			return siFallbackCPU()
		}
		return CPUInfo{}, err
	}
	return ParseCPUInfo(content)
}
