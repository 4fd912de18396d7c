// Package wire converts server wire-format JSON into the client's internal
// naming convention.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CamelizeKeys recursively converts every map key in a decoded JSON value
// from snake_case to camelCase. Arrays map element-wise; scalars pass
// through unchanged. The function is pure and total: it never fails, and
// applying it to data that is already camelCase is a no-op.
func CamelizeKeys(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		converted := make(map[string]interface{}, len(typed))
		for key, val := range typed {
			converted[CamelKey(key)] = CamelizeKeys(val)
		}

		return converted
	case []interface{}:
		converted := make([]interface{}, len(typed))
		for i, val := range typed {
			converted[i] = CamelizeKeys(val)
		}

		return converted
	default:
		return value
	}
}

// CamelKey converts a single snake_case key to camelCase. Only an
// underscore followed by a lowercase letter converts; any other underscore
// is kept as-is, so keys without snake_case patterns survive unchanged.
func CamelKey(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}

	var builder strings.Builder

	builder.Grow(len(key))

	for i := 0; i < len(key); i++ {
		if key[i] == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			builder.WriteByte(key[i+1] - 'a' + 'A')
			i++

			continue
		}

		builder.WriteByte(key[i])
	}

	return builder.String()
}

// CamelizeJSON decodes a JSON document, converts all keys to camelCase,
// and re-encodes it. Numbers are preserved verbatim via json.Number, so a
// round trip never changes numeric precision.
func CamelizeJSON(data []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value interface{}

	err := decoder.Decode(&value)
	if err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}

	converted, err := json.Marshal(CamelizeKeys(value))
	if err != nil {
		return nil, fmt.Errorf("encoding converted body: %w", err)
	}

	return converted, nil
}
