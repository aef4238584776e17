// File: configinit/backend_hjson.go
package configinit

import "github.com/hjson/hjson-go/v4"

// HJSONBackend returns the relaxed-JSON backend. HJSON accepts and emits
// unquoted keys, trailing commas, and comments; it reads plain JSON as well.
func HJSONBackend() Backend { return hjsonBackend{} }

type hjsonBackend struct{}

func (hjsonBackend) Format() Format { return FormatHJSON }

func (hjsonBackend) Marshal(v any) ([]byte, error) {
	return hjson.Marshal(v)
}

func (hjsonBackend) Unmarshal(data []byte, v any) error {
	return hjson.Unmarshal(data, v)
}
