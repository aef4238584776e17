// File: configinit/format_test.go
package configinit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry tests backend registration and lookup
func TestRegistry(t *testing.T) {
	t.Run("DefaultRegistryHasAllBackends", func(t *testing.T) {
		registry := DefaultRegistry()

		assert.Equal(t, []Format{FormatHJSON, FormatJSON, FormatTOML, FormatYAML}, registry.Formats())

		for _, format := range registry.Formats() {
			backend, err := registry.Backend(format)
			require.NoError(t, err)
			assert.Equal(t, format, backend.Format())
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := DefaultRegistry().Backend(Format("ron"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Contains(t, err.Error(), "ron")
	})

	t.Run("SubsetRegistry", func(t *testing.T) {
		registry := NewRegistry(JSONBackend(), YAMLBackend())

		assert.Equal(t, []Format{FormatJSON, FormatYAML}, registry.Formats())

		_, err := registry.Backend(FormatTOML)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("EmptyRegistry", func(t *testing.T) {
		registry := NewRegistry()

		assert.Empty(t, registry.Formats())

		_, err := registry.Backend(FormatJSON)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

// TestBuilder tests the fluent registry builder
func TestBuilder(t *testing.T) {
	t.Run("AllBackends", func(t *testing.T) {
		registry, err := NewBuilder().
			WithJSON().
			WithHJSON().
			WithTOML().
			WithYAML().
			Build()
		require.NoError(t, err)

		assert.Equal(t, []Format{FormatHJSON, FormatJSON, FormatTOML, FormatYAML}, registry.Formats())
	})

	t.Run("SubsetBuild", func(t *testing.T) {
		registry, err := NewBuilder().WithTOML().Build()
		require.NoError(t, err)

		assert.Equal(t, []Format{FormatTOML}, registry.Formats())
	})

	t.Run("DuplicateFormat", func(t *testing.T) {
		_, err := NewBuilder().WithTOML().WithTOML().Build()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate backend")
	})

	t.Run("NilBackend", func(t *testing.T) {
		_, err := NewBuilder().WithBackend(nil).WithJSON().Build()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "nil")
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().WithJSON().WithJSON().MustBuild()
		})
	})

	t.Run("CustomBackend", func(t *testing.T) {
		custom := stubBackend{format: Format("ini")}

		registry, err := NewBuilder().WithBackend(custom).Build()
		require.NoError(t, err)

		backend, err := registry.Backend(Format("ini"))
		require.NoError(t, err)
		assert.Equal(t, Format("ini"), backend.Format())
	})
}

// stubBackend is a minimal custom Backend for builder tests.
type stubBackend struct {
	format Format
}

func (s stubBackend) Format() Format              { return s.format }
func (s stubBackend) Marshal(any) ([]byte, error) { return []byte("stub"), nil }
func (s stubBackend) Unmarshal([]byte, any) error { return nil }
