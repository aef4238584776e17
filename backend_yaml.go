// File: configinit/backend_yaml.go
package configinit

import "gopkg.in/yaml.v3"

// YAMLBackend returns the YAML backend.
func YAMLBackend() Backend { return yamlBackend{} }

type yamlBackend struct{}

func (yamlBackend) Format() Format { return FormatYAML }

func (yamlBackend) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlBackend) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
