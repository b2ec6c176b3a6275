package toc

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses a table of contents file from fs.
func LoadFile(fs afero.Fs, path string) (any, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table of contents %s: %w", path, err)
	}

	raw, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return raw, nil
}

// Parse decodes YAML (or JSON) into an untyped value for Validate.
// Mapping keys are converted to strings.
func Parse(data []byte) (any, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse table of contents YAML: %w", err)
	}

	return stringKeys(raw), nil
}

// stringKeys rewrites every map[any]any into map[string]any.
func stringKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = stringKeys(item)
		}

		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = stringKeys(item)
		}

		return out
	case []any:
		for i, item := range val {
			val[i] = stringKeys(item)
		}

		return val
	default:
		return v
	}
}
