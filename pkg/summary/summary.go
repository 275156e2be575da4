// Package summary collects host facts into a typed snapshot and turns it into
// ordered header/value lines.
//
// Collection and rendering are separate: Collect touches the host once per
// requested field, Lines is a pure function of the snapshot and options.
// A field whose reader fails is logged and left out; it never affects the
// other fields.
package summary

import (
	"context"
	"log/slog"

	"gitlab.com/tinyland/lab/minifetch/pkg/packages"
	"gitlab.com/tinyland/lab/minifetch/pkg/shell"
	"gitlab.com/tinyland/lab/minifetch/pkg/sysinfo"
)

// PackageCounter reports installed package counts per manager.
type PackageCounter interface {
	Count(ctx context.Context) []packages.Count
}

// Sources are the readers Collect draws from.
type Sources struct {
	System   *sysinfo.Reader
	Packages PackageCounter
	Logger   *slog.Logger
}

// Title is the user@host heading.
type Title struct {
	User string
	Host string
}

func (t Title) String() string {
	return t.User + "@" + t.Host
}

// Snapshot holds one result per field. A nil field was either not requested
// or could not be read.
type Snapshot struct {
	Title    *Title
	OS       *sysinfo.OSRelease
	Arch     *string
	Kernel   *string
	Uptime   *sysinfo.Duration
	Packages []packages.Count
	Shell    *string
	Memory   *sysinfo.MemorySample
	CPU      *sysinfo.CPUInfo
}

// Has reports whether the snapshot carries a value for f.
func (s *Snapshot) Has(f Field) bool {
	switch f {
	case FieldTitle:
		return s.Title != nil
	case FieldOS:
		return s.OS != nil
	case FieldArch:
		return s.Arch != nil
	case FieldKernel:
		return s.Kernel != nil
	case FieldUptime:
		return s.Uptime != nil
	case FieldPackages:
		return len(s.Packages) > 0
	case FieldShell:
		return s.Shell != nil
	case FieldMemory:
		return s.Memory != nil
	case FieldCPU:
		return s.CPU != nil
	}
	return false
}

// Collect reads each field in order once. Duplicate fields are read once.
// Failures are logged at warn level with the field name.
func Collect(ctx context.Context, src Sources, order []Field) Snapshot {
	logger := src.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sys := src.System
	if sys == nil {
		sys = sysinfo.NewReader()
	}

	var snap Snapshot
	seen := make(map[Field]bool, len(order))
	for _, f := range order {
		if seen[f] {
			continue
		}
		seen[f] = true
		if err := collectField(ctx, &snap, f, sys, src.Packages, logger); err != nil {
			logger.Warn("field unavailable", "field", f.String(), "err", err)
		}
	}
	return snap
}

func collectField(ctx context.Context, snap *Snapshot, f Field, sys *sysinfo.Reader, pc PackageCounter, logger *slog.Logger) error {
	switch f {
	case FieldTitle:
		user, err := sys.User()
		if err != nil {
			return err
		}
		host, err := sys.Hostname()
		if err != nil {
			return err
		}
		snap.Title = &Title{User: user, Host: host}

	case FieldOS:
		rel, err := sys.OSRelease()
		if err != nil {
			return err
		}
		snap.OS = &rel

	case FieldArch:
		arch := sysinfo.Arch()
		snap.Arch = &arch

	case FieldKernel:
		k, err := sys.Kernel()
		if err != nil {
			return err
		}
		snap.Kernel = &k

	case FieldUptime:
		secs, err := sys.Uptime()
		if err != nil {
			return err
		}
		d := sysinfo.DurationFromSeconds(secs)
		snap.Uptime = &d

	case FieldPackages:
		if pc == nil {
			pc = packages.NewCounter(logger)
		}
		snap.Packages = pc.Count(ctx)
		if len(snap.Packages) == 0 {
			logger.Debug("no package managers found")
		}

	case FieldShell:
		p, err := shell.Detect(sys.Getenv)
		if err != nil {
			return err
		}
		if _, err := shell.Name(p); err != nil {
			// The full path is still displayable.
			logger.Warn("shell name unavailable", "path", p, "err", err)
		}
		snap.Shell = &p

	case FieldMemory:
		m, err := sys.Memory()
		if err != nil {
			return err
		}
		snap.Memory = &m

	case FieldCPU:
		c, err := sys.CPU()
		if err != nil {
			return err
		}
		snap.CPU = &c
	}
	return nil
}
