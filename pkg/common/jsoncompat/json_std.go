//go:build stdjson

package jsoncompat

import "encoding/json"

// Marshal proxies to the standard library json.Marshal when the stdjson build tag is set.
func Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal proxies to the standard library json.Unmarshal when the stdjson build tag is set.
func Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}
