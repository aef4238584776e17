// File: configinit/util.go
package configinit

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ReadConfiguration reads the configuration artifact at path and returns its
// contents as text. It is a verification helper for callers that want to
// inspect what an initializer wrote; this package has no config-reading layer.
func ReadConfiguration(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return string(data), nil
}

// DecodeFile parses the configuration artifact at path with the requested
// format's backend and decodes the result into target, which must be a
// non-nil pointer. Decoding is weakly typed, so numeric widths produced by
// the individual backends (e.g. JSON's float64) still land in the target's
// field types. Like ReadConfiguration, this is verification tooling.
func (r *Registry) DecodeFile(path string, format Format, target any) error {
	backend, err := r.Backend(format)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	raw := make(map[string]any)
	if err := backend.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s config file '%s': %w", format, path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config file '%s' into %T: %w", path, target, err)
	}

	return nil
}
