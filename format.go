// File: configinit/format.go
package configinit

import (
	"fmt"
	"sort"
)

// Format identifies a serialization format for the configuration artifact.
type Format string

const (
	// FormatJSON writes standard JSON via encoding/json.
	FormatJSON Format = "json"
	// FormatHJSON writes relaxed, human-friendly JSON via hjson-go.
	FormatHJSON Format = "hjson"
	// FormatTOML writes TOML via BurntSushi/toml.
	FormatTOML Format = "toml"
	// FormatYAML writes YAML via yaml.v3.
	FormatYAML Format = "yaml"
)

// Backend encodes and decodes one serialization format. Marshal must produce
// the format's canonical text encoding of v; Unmarshal is the read-side used
// only by verification helpers and tests.
type Backend interface {
	Format() Format
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Registry maps format tags to their backends. A Registry is populated at
// construction and immutable afterward, so only the backends an application
// actually wants are reachable; requesting any other format fails with
// ErrUnsupportedFormat.
type Registry struct {
	backends map[Format]Backend
}

// NewRegistry creates a Registry holding exactly the given backends.
// A later backend with the same format tag silently replaces an earlier one;
// use Builder to reject duplicates instead.
func NewRegistry(backends ...Backend) *Registry {
	r := &Registry{backends: make(map[Format]Backend, len(backends))}
	for _, b := range backends {
		if b != nil {
			r.backends[b.Format()] = b
		}
	}
	return r
}

// DefaultRegistry returns a Registry with every built-in backend enabled.
func DefaultRegistry() *Registry {
	return NewRegistry(JSONBackend(), HJSONBackend(), TOMLBackend(), YAMLBackend())
}

// Backend resolves a format tag to its registered backend.
func (r *Registry) Backend(format Format) (Backend, error) {
	b, ok := r.backends[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return b, nil
}

// Formats returns the registered format tags in lexical order.
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.backends))
	for f := range r.backends {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
