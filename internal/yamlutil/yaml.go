// Package yamlutil is the single entry point for YAML decoding. Config files,
// bibliography files and citation styles all go through it, so input limits
// and error prefixes stay uniform.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize is the default input ceiling in bytes.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalLimit decodes data into v, ignoring unknown fields. CSL-JSON
// bibliographies are routinely larger than MaxInputSize, hence the explicit
// limit.
func UnmarshalLimit(data []byte, v any, limit int) error {
	return decode(data, v, limit)
}

// UnmarshalStrict decodes data into v and fails on unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, MaxInputSize, yaml.Strict())
}

func decode(data []byte, v any, limit int, opts ...yaml.DecodeOption) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > limit:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), limit)
	case v == nil:
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
