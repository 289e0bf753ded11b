// File: lixenwraith/cliconf/helper.go
package cliconf

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlValue converts a decoded YAML node into plain Go values with string
// map keys. Integer scalars outside the int64 range are returned as
// json.Number so that Int128 flags receive the literal digits.
func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlValue(node.Content[0])
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			value, err := yamlValue(val)
			if err != nil {
				return nil, err
			}
			if key.ShortTag() == "!!merge" {
				mergeYAML(out, value)
				continue
			}
			out[key.Value] = value
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!int" {
			var n int64
			if err := node.Decode(&n); err == nil {
				return n, nil
			}
			if _, ok := new(big.Int).SetString(node.Value, 10); ok {
				return json.Number(node.Value), nil
			}
		}
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

// mergeYAML applies a "<<" merge source; keys already present win.
func mergeYAML(dst map[string]any, src any) {
	switch typed := src.(type) {
	case map[string]any:
		for key, value := range typed {
			if _, exists := dst[key]; !exists {
				dst[key] = value
			}
		}
	case []any:
		for _, item := range typed {
			mergeYAML(dst, item)
		}
	}
}

// EnvMap converts an os.Environ style "KEY=value" list into a mapping.
// Entries without '=' are ignored; later duplicates win.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// normalizeFieldName folds a flag name or struct field name for matching:
// separators are dropped and case is ignored.
func normalizeFieldName(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))
}
