// File: configinit/errors.go
package configinit

import "errors"

// Exported error kinds returned by this package. Failures are wrapped around
// these sentinels so callers can classify them with errors.Is/As; only the
// kind is significant to callers, the attached cause is diagnostic payload.
//   - ErrConfigDirExists: a filesystem entry already occupies the directory path.
//   - ErrConfigDirCreate: the filesystem rejected directory creation.
//   - ErrConfigFileExists: a filesystem entry already occupies the file path.
//   - ErrUnsupportedFormat: no backend is registered for the requested format.
//   - ErrSerializationFailed: the backend could not encode the value.
//   - ErrWriteFailed: creating, writing, or flushing the file failed.
var (
	ErrConfigDirExists     = errors.New("config directory already exists")
	ErrConfigDirCreate     = errors.New("config directory creation failed")
	ErrConfigFileExists    = errors.New("config file already exists")
	ErrUnsupportedFormat   = errors.New("unsupported serialization format")
	ErrSerializationFailed = errors.New("config serialization failed")
	ErrWriteFailed         = errors.New("config file write failed")
)
