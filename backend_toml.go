// File: configinit/backend_toml.go
package configinit

import "github.com/BurntSushi/toml"

// TOMLBackend returns the TOML backend.
func TOMLBackend() Backend { return tomlBackend{} }

type tomlBackend struct{}

func (tomlBackend) Format() Format { return FormatTOML }

func (tomlBackend) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (tomlBackend) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
