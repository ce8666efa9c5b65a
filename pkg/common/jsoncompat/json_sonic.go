//go:build !stdjson

package jsoncompat

import "github.com/bytedance/sonic"

var api = sonic.ConfigStd

// Marshal encodes with sonic using the encoding/json compatible config.
func Marshal(v any) ([]byte, error) { return api.Marshal(v) }

// Unmarshal decodes with sonic using the encoding/json compatible config.
func Unmarshal(data []byte, v any) error { return api.Unmarshal(data, v) }

// MarshalIndent is used for human facing output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}
