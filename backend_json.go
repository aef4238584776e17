// File: configinit/backend_json.go
package configinit

import "encoding/json"

// JSONBackend returns the standard JSON backend.
func JSONBackend() Backend { return jsonBackend{} }

type jsonBackend struct{}

func (jsonBackend) Format() Format { return FormatJSON }

func (jsonBackend) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonBackend) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
