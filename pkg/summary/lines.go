package summary

import (
	"gitlab.com/tinyland/lab/minifetch/pkg/packages"
	"gitlab.com/tinyland/lab/minifetch/pkg/shell"
	"gitlab.com/tinyland/lab/minifetch/pkg/sysinfo"
)

// UptimeOptions controls the uptime rendering.
type UptimeOptions struct {
	Short bool
}

// PackageOptions controls the package count rendering.
type PackageOptions struct {
	ShowManagers bool
}

// ShellOptions controls the shell rendering.
type ShellOptions struct {
	FullPath bool
}

// MemoryOptions controls the memory rendering.
type MemoryOptions struct {
	Unit       sysinfo.MemUnit
	Percentage bool
}

// CPUOptions controls the CPU rendering.
type CPUOptions struct {
	Shorten   bool
	ShowCores bool
}

// Options holds the per-field rendering options and the header printed in
// front of each field's value.
type Options struct {
	Headers  map[Field]string
	Uptime   UptimeOptions
	Packages PackageOptions
	Shell    ShellOptions
	Memory   MemoryOptions
	CPU      CPUOptions
}

// DefaultHeaders returns the stock header for every field. The title has
// no header.
func DefaultHeaders() map[Field]string {
	return map[Field]string{
		FieldTitle:    "",
		FieldOS:       "OS",
		FieldArch:     "Arch",
		FieldKernel:   "Kernel",
		FieldUptime:   "Uptime",
		FieldPackages: "Packages",
		FieldShell:    "Shell",
		FieldMemory:   "Memory",
		FieldCPU:      "CPU",
	}
}

// DefaultOptions returns the options used when no preferences are set.
func DefaultOptions() Options {
	return Options{
		Headers:  DefaultHeaders(),
		Packages: PackageOptions{ShowManagers: true},
		Memory:   MemoryOptions{Unit: sysinfo.GiB, Percentage: true},
	}
}

// Line is one rendered field.
type Line struct {
	Field  Field
	Header string
	Value  string
}

// Lines renders the fields of snap in order. Absent fields are skipped, and
// a field listed more than once is rendered once.
func Lines(snap Snapshot, order []Field, opts Options) []Line {
	lines := make([]Line, 0, len(order))
	seen := make(map[Field]bool, len(order))
	for _, f := range order {
		if seen[f] {
			continue
		}
		seen[f] = true
		v, ok := renderValue(&snap, f, &opts)
		if !ok {
			continue
		}
		lines = append(lines, Line{Field: f, Header: opts.header(f), Value: v})
	}
	return lines
}

func (o *Options) header(f Field) string {
	if h, ok := o.Headers[f]; ok {
		return h
	}
	return DefaultHeaders()[f]
}

func renderValue(snap *Snapshot, f Field, opts *Options) (string, bool) {
	if !snap.Has(f) {
		return "", false
	}
	switch f {
	case FieldTitle:
		return snap.Title.String(), true
	case FieldOS:
		return snap.OS.String(), true
	case FieldArch:
		return *snap.Arch, true
	case FieldKernel:
		return *snap.Kernel, true
	case FieldUptime:
		return renderUptime(*snap.Uptime, opts.Uptime), true
	case FieldPackages:
		return renderPackages(snap.Packages, opts.Packages), true
	case FieldShell:
		return renderShell(*snap.Shell, opts.Shell)
	case FieldMemory:
		return renderMemory(*snap.Memory, opts.Memory), true
	case FieldCPU:
		return renderCPU(*snap.CPU, opts.CPU), true
	}
	return "", false
}

func renderUptime(d sysinfo.Duration, o UptimeOptions) string {
	return d.Format(o.Short)
}

func renderPackages(c []packages.Count, o PackageOptions) string {
	return packages.Format(c, o.ShowManagers)
}

func renderShell(p string, o ShellOptions) (string, bool) {
	v, err := shell.Display(p, o.FullPath)
	return v, err == nil
}

func renderMemory(m sysinfo.MemorySample, o MemoryOptions) string {
	return sysinfo.FormatMemory(m, o.Unit, o.Percentage)
}

func renderCPU(c sysinfo.CPUInfo, o CPUOptions) string {
	return c.Display(o.Shorten, o.ShowCores)
}
