// Package config provides the TOML (or YAML) preference file for minifetch.
package config

import (
	"errors"
	"fmt"

	"gitlab.com/tinyland/lab/minifetch/pkg/summary"
	"gitlab.com/tinyland/lab/minifetch/pkg/sysinfo"
)

// ColorMode selects when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the complete preference file.
type Config struct {
	Color     ColorMode       `toml:"color" yaml:"color"`
	Theme     string          `toml:"theme" yaml:"theme"`
	ThemeFile string          `toml:"theme_file,omitempty" yaml:"theme_file,omitempty"`
	Align     bool            `toml:"align" yaml:"align"`
	Modules   []summary.Field `toml:"modules" yaml:"modules"`

	Title    TitleConfig    `toml:"title" yaml:"title"`
	OS       HeaderConfig   `toml:"os" yaml:"os"`
	Arch     HeaderConfig   `toml:"arch" yaml:"arch"`
	Kernel   HeaderConfig   `toml:"kernel" yaml:"kernel"`
	Uptime   UptimeConfig   `toml:"uptime" yaml:"uptime"`
	Packages PackagesConfig `toml:"packages" yaml:"packages"`
	Shell    ShellConfig    `toml:"shell" yaml:"shell"`
	Memory   MemoryConfig   `toml:"memory" yaml:"memory"`
	CPU      CPUConfig      `toml:"cpu" yaml:"cpu"`
}

// TitleConfig controls the user@host heading.
type TitleConfig struct {
	// Separator prints a dashed rule under the title.
	Separator bool `toml:"separator" yaml:"separator"`
}

// HeaderConfig is a section whose only option is its header.
type HeaderConfig struct {
	Header string `toml:"header" yaml:"header"`
}

type UptimeConfig struct {
	Header string `toml:"header" yaml:"header"`
	Short  bool   `toml:"short" yaml:"short"`
}

type PackagesConfig struct {
	Header       string `toml:"header" yaml:"header"`
	ShowManagers bool   `toml:"show_managers" yaml:"show_managers"`
	// Timeout bounds each package manager invocation. Zero means no bound.
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

type ShellConfig struct {
	Header   string `toml:"header" yaml:"header"`
	FullPath bool   `toml:"full_path" yaml:"full_path"`
}

type MemoryConfig struct {
	Header     string          `toml:"header" yaml:"header"`
	Unit       sysinfo.MemUnit `toml:"unit" yaml:"unit"`
	Percentage bool            `toml:"percentage" yaml:"percentage"`
}

type CPUConfig struct {
	Header    string `toml:"header" yaml:"header"`
	Shorten   bool   `toml:"shorten" yaml:"shorten"`
	ShowCores bool   `toml:"show_cores" yaml:"show_cores"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	h := summary.DefaultHeaders()
	return &Config{
		Color:   ColorAuto,
		Theme:   "default",
		Modules: summary.DefaultOrder(),
		Title:   TitleConfig{Separator: true},
		OS:      HeaderConfig{Header: h[summary.FieldOS]},
		Arch:    HeaderConfig{Header: h[summary.FieldArch]},
		Kernel:  HeaderConfig{Header: h[summary.FieldKernel]},
		Uptime:  UptimeConfig{Header: h[summary.FieldUptime]},
		Packages: PackagesConfig{
			Header:       h[summary.FieldPackages],
			ShowManagers: true,
		},
		Shell: ShellConfig{Header: h[summary.FieldShell]},
		Memory: MemoryConfig{
			Header:     h[summary.FieldMemory],
			Unit:       sysinfo.GiB,
			Percentage: true,
		},
		CPU: CPUConfig{Header: h[summary.FieldCPU]},
	}
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("color: invalid mode %q (want auto, always or never)", c.Color))
	}
	for i, f := range c.Modules {
		if !f.Valid() {
			errs = append(errs, fmt.Errorf("modules[%d]: unknown module %d", i, int(f)))
		}
	}
	if c.Packages.Timeout.Duration < 0 {
		errs = append(errs, fmt.Errorf("packages.timeout: negative duration %s", c.Packages.Timeout))
	}
	if _, err := c.Memory.Unit.MarshalText(); err != nil {
		errs = append(errs, fmt.Errorf("memory.unit: %w", err))
	}
	return errors.Join(errs...)
}

// Order returns the fields to print, in order.
func (c *Config) Order() []summary.Field {
	if len(c.Modules) == 0 {
		return summary.DefaultOrder()
	}
	return c.Modules
}

// SummaryOptions converts the per-section settings into rendering options.
func (c *Config) SummaryOptions() summary.Options {
	return summary.Options{
		Headers: map[summary.Field]string{
			summary.FieldTitle:    "",
			summary.FieldOS:       c.OS.Header,
			summary.FieldArch:     c.Arch.Header,
			summary.FieldKernel:   c.Kernel.Header,
			summary.FieldUptime:   c.Uptime.Header,
			summary.FieldPackages: c.Packages.Header,
			summary.FieldShell:    c.Shell.Header,
			summary.FieldMemory:   c.Memory.Header,
			summary.FieldCPU:      c.CPU.Header,
		},
		Uptime:   summary.UptimeOptions{Short: c.Uptime.Short},
		Packages: summary.PackageOptions{ShowManagers: c.Packages.ShowManagers},
		Shell:    summary.ShellOptions{FullPath: c.Shell.FullPath},
		Memory: summary.MemoryOptions{
			Unit:       c.Memory.Unit,
			Percentage: c.Memory.Percentage,
		},
		CPU: summary.CPUOptions{
			Shorten:   c.CPU.Shorten,
			ShowCores: c.CPU.ShowCores,
		},
	}
}
