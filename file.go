// FILE: lixenwraith/cliconf/file.go
package cliconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Supported configuration file formats.
const (
	FormatAuto = ""
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ReadConfigFile reads a configuration file and decodes it into a FileLayer.
// The format is taken from the file extension unless given explicitly, and
// detected from the content as a last resort. JSON files may contain
// comments and trailing commas. A missing file yields an error wrapping
// ErrConfigNotFound.
func ReadConfigFile(path string, format ...string) (FileLayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileLayer{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return FileLayer{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	f := FormatAuto
	if len(format) > 0 {
		f = format[0]
	}

	values, err := DecodeConfig(data, f, path)
	if err != nil {
		return FileLayer{}, err
	}
	return FileLayer{Location: path, Values: values}, nil
}

// DecodeConfig decodes configuration content into a flat key/value mapping.
// An empty format selects detection by the extension of path, then by content.
// Nested tables are kept as they are and are ignored by Load unless their
// key names a flag.
func DecodeConfig(data []byte, format, path string) (map[string]any, error) {
	if format == FormatAuto {
		format = detectFileFormat(path)
		if format == FormatAuto {
			format = detectFormatFromContent(data)
		}
	}

	values := make(map[string]any)
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&values); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case FormatYAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
		raw, err := yamlValue(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
		if raw == nil {
			break
		}
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("YAML config file '%s': root must be a mapping", path)
		}
		values = m
	default:
		return nil, fmt.Errorf("%w: cannot determine format of '%s'", ErrUnsupportedFormat, path)
	}

	return values, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// detectFormatFromContent attempts to detect format by parsing.
// YAML accepts almost any text as a scalar, so it only counts when the
// document is a mapping and is tried last.
func detectFormatFromContent(data []byte) string {
	var jsonTest map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &jsonTest); err == nil {
		return FormatJSON
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil && yamlTest != nil {
		return FormatYAML
	}

	return FormatAuto
}

// LoadFiles reads every registered configuration file in order, skipping
// files that do not exist, and then calls Load with the decoded layers.
func (r *Registry) LoadFiles(env map[string]string, args []string) error {
	var layers []FileLayer
	for _, path := range r.ConfigFiles() {
		layer, err := ReadConfigFile(path)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				r.logger.Debug("Config file not found, skipping", "path", path)
				continue
			}
			return err
		}
		layers = append(layers, layer)
	}

	return r.Load(layers, env, args)
}
