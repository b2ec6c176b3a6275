package upgrade

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"tocnorm/internal/toc"
)

// Format is the encoding of an upgraded table of contents.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// mystVersion is the version of the MyST project configuration emitted.
const mystVersion = 1

type mystConfig struct {
	Version int         `json:"version" yaml:"version"`
	Project mystProject `json:"project" yaml:"project"`
}

type mystProject struct {
	TOC []toc.NavEntry `json:"toc" yaml:"toc"`
}

// FileName returns the name of the file an upgrade is written to.
func (f Format) FileName() string {
	if f == FormatJSON {
		return "myst.toc.json"
	}

	return "myst.toc.yml"
}

// Render encodes entries as a MyST project configuration.
func Render(entries []toc.NavEntry, format Format) ([]byte, error) {
	cfg := mystConfig{Version: mystVersion, Project: mystProject{TOC: entries}}

	switch format {
	case FormatYAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}

		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}

		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", string(format))
	}
}
