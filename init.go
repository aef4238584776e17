// File: configinit/init.go
package configinit

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultConfig is the capability a configuration type must satisfy to be
// written by Initialize: it produces the canonical default instance of
// itself. Serializability is not part of the contract; each backend reports
// ErrSerializationFailed for values it cannot encode.
type DefaultConfig[T any] interface {
	DefaultConfig() T
}

// CreateConfigDir creates the configuration directory at path.
// The parent directory must already exist; creation is non-recursive.
// If any filesystem entry already occupies path, it returns
// ErrConfigDirExists and leaves the entry untouched. Any other creation
// failure is returned as ErrConfigDirCreate wrapping the underlying cause.
func CreateConfigDir(path string) error {
	// Single mkdir syscall. The kernel reports pre-existence, which also
	// closes the check-then-create race between competing initializers.
	if err := os.Mkdir(path, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %w", ErrConfigDirExists, err)
		}
		return fmt.Errorf("%w: %w", ErrConfigDirCreate, err)
	}
	return nil
}

// InitializeConfigFile serializes cfg with the requested format's backend
// from the default registry and writes it to path exactly once.
func InitializeConfigFile[T DefaultConfig[T]](cfg T, path string, format Format) error {
	return DefaultRegistry().InitializeConfigFile(cfg, path, format)
}

// Initialize writes the canonical default of T to path in the requested
// format. T must carry its DefaultConfig method on the value receiver.
func Initialize[T DefaultConfig[T]](path string, format Format) error {
	var seed T
	return DefaultRegistry().InitializeConfigFile(seed.DefaultConfig(), path, format)
}

// InitializeConfigFile serializes cfg with the requested format's backend and
// writes it to path exactly once.
//
// The operation fails with ErrConfigFileExists if path already names a
// filesystem entry, with ErrUnsupportedFormat if no backend is registered for
// format, and with ErrSerializationFailed if the backend rejects cfg; in all
// three cases no file is created. The file itself is created exclusively, so
// a concurrent initializer losing the race also observes ErrConfigFileExists.
// Creation, write, and flush failures are returned as ErrWriteFailed; a
// partially written file is not cleaned up.
//
// The untyped cfg parameter exists because Go methods cannot be generic; the
// package-level InitializeConfigFile and Initialize enforce the DefaultConfig
// capability at compile time and delegate here.
func (r *Registry) InitializeConfigFile(cfg any, path string, format Format) error {
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigFileExists, path)
	}

	backend, err := r.Backend(format)
	if err != nil {
		return err
	}

	data, err := backend.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %w", ErrConfigFileExists, err)
		}
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	w := bufio.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}
