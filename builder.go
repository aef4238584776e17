// File: configinit/builder.go
package configinit

import "fmt"

// Builder provides a fluent interface for assembling a Registry with only
// the desired backends enabled.
type Builder struct {
	backends []Backend
	err      error
}

// NewBuilder creates a new registry builder with no backends enabled.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithBackend enables a backend. Passing a custom Backend implementation
// extends the registry beyond the built-in formats.
func (b *Builder) WithBackend(backend Backend) *Builder {
	if backend == nil {
		if b.err == nil {
			b.err = fmt.Errorf("builder: backend cannot be nil")
		}
		return b
	}
	b.backends = append(b.backends, backend)
	return b
}

// WithJSON enables the standard JSON backend.
func (b *Builder) WithJSON() *Builder {
	return b.WithBackend(JSONBackend())
}

// WithHJSON enables the relaxed-JSON backend.
func (b *Builder) WithHJSON() *Builder {
	return b.WithBackend(HJSONBackend())
}

// WithTOML enables the TOML backend.
func (b *Builder) WithTOML() *Builder {
	return b.WithBackend(TOMLBackend())
}

// WithYAML enables the YAML backend.
func (b *Builder) WithYAML() *Builder {
	return b.WithBackend(YAMLBackend())
}

// Build creates the Registry with all enabled backends.
// It fails if a format tag was enabled more than once.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	seen := make(map[Format]bool, len(b.backends))
	for _, backend := range b.backends {
		if seen[backend.Format()] {
			return nil, fmt.Errorf("builder: duplicate backend for format %q", backend.Format())
		}
		seen[backend.Format()] = true
	}

	return NewRegistry(b.backends...), nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("registry build failed: %v", err))
	}
	return r
}
