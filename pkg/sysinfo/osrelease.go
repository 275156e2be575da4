package sysinfo

import "fmt"

// os-release(5) search path, in order.
var osReleasePaths = []string{"etc/os-release", "usr/lib/os-release"}

// OSRelease is the distribution identity from os-release(5).
type OSRelease struct {
	Name    string
	Version string // empty if the file has no VERSION
}

// String returns "NAME VERSION", or just NAME when there is no version.
func (o OSRelease) String() string {
	if o.Version == "" {
		return o.Name
	}
	return o.Name + " " + o.Version
}

// ParseOSRelease parses KEY=VALUE lines, unquoting values. Comment lines and
// lines without '=' are skipped.
func ParseOSRelease(content string) (OSRelease, error) {
	kv, err := ParseKeyValues(content, ParseOptions{
		Delimiter: '=',
		Unquote:   true,
		Comments:  true,
	})
	if err != nil {
		return OSRelease{}, err
	}

	name, ok := kv["NAME"]
	if !ok {
		return OSRelease{}, fmt.Errorf("NAME: %w", ErrMissingKey)
	}
	return OSRelease{Name: name, Version: kv["VERSION"]}, nil
}

// OSRelease reads the distribution identity.
func (r *Reader) OSRelease() (OSRelease, error) {
	content, err := r.readFirst(osReleasePaths...)
	if err != nil {
		if r.fallback {
			return siFallbackOSRelease()
		}
		return OSRelease{}, err
	}
	return ParseOSRelease(content)
}
