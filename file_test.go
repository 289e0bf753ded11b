// FILE: lixenwraith/cliconf/file_test.go
package cliconf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestReadConfigFile tests decoding each supported format
func TestReadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("JSONWithComments", func(t *testing.T) {
		path := writeFile(t, tmpDir, "greet.json", `{
			// who to greet
			"name": "aria",
			"repeat": 2,
			"big": 170141183460469231731687303715884105727,
			"extra-names": ["scott", "ben",],
		}`)

		layer, err := ReadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, layer.Location)
		assert.Equal(t, "aria", layer.Values["name"])
		assert.Equal(t, json.Number("2"), layer.Values["repeat"])
		assert.Equal(t, json.Number("170141183460469231731687303715884105727"), layer.Values["big"])
	})

	t.Run("TOML", func(t *testing.T) {
		path := writeFile(t, tmpDir, "greet.toml", `
name = "aria"
repeat = 2
extra-names = ["scott"]

[server]
name = "nested"
`)
		layer, err := ReadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "aria", layer.Values["name"])
		assert.Equal(t, int64(2), layer.Values["repeat"])
		assert.Contains(t, layer.Values, "server")
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeFile(t, tmpDir, "greet.yml", "name: aria\nrepeat: 2\nextra-names:\n  - scott\n")
		layer, err := ReadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "aria", layer.Values["name"])
		assert.Equal(t, int64(2), layer.Values["repeat"])
		assert.Equal(t, []any{"scott"}, layer.Values["extra-names"])
	})

	t.Run("EmptyYAML", func(t *testing.T) {
		path := writeFile(t, tmpDir, "empty.yaml", "")
		layer, err := ReadConfigFile(path)
		require.NoError(t, err)
		assert.Empty(t, layer.Values)
	})

	t.Run("YAMLScalarRoot", func(t *testing.T) {
		path := writeFile(t, tmpDir, "scalar.yaml", "just text\n")
		_, err := ReadConfigFile(path)
		assert.Error(t, err)
	})

	t.Run("ExplicitFormat", func(t *testing.T) {
		path := writeFile(t, tmpDir, "greet.conf", `name = "aria"`)
		layer, err := ReadConfigFile(path, FormatTOML)
		require.NoError(t, err)
		assert.Equal(t, "aria", layer.Values["name"])
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ReadConfigFile(filepath.Join(tmpDir, "missing.json"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := writeFile(t, tmpDir, "bad.json", `{"name": `)
		_, err := ReadConfigFile(path)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := DecodeConfig([]byte("\x00\x01"), "ini", "x.ini")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

// TestFormatDetection tests extension and content based detection
func TestFormatDetection(t *testing.T) {
	t.Run("Extension", func(t *testing.T) {
		assert.Equal(t, FormatJSON, detectFileFormat("a/b.JSON"))
		assert.Equal(t, FormatJSON, detectFileFormat("b.jsonc"))
		assert.Equal(t, FormatTOML, detectFileFormat("b.tml"))
		assert.Equal(t, FormatYAML, detectFileFormat("b.yaml"))
		assert.Equal(t, FormatAuto, detectFileFormat("b.conf"))
		assert.Equal(t, FormatAuto, detectFileFormat("greetrc"))
	})

	t.Run("Content", func(t *testing.T) {
		assert.Equal(t, FormatJSON, detectFormatFromContent([]byte(`{"name": "aria"}`)))
		assert.Equal(t, FormatTOML, detectFormatFromContent([]byte("name = \"aria\"\nrepeat = 2\n")))
		assert.Equal(t, FormatYAML, detectFormatFromContent([]byte("name: aria\nrepeat: 2\n")))
		assert.Equal(t, FormatAuto, detectFormatFromContent([]byte("just some words")))
	})

	t.Run("DetectedFile", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), ".greetrc", "name: aria\n")
		layer, err := ReadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, "aria", layer.Values["name"])
	})
}

// TestLoadFiles tests loading registered config files
func TestLoadFiles(t *testing.T) {
	tmpDir := t.TempDir()
	first := writeFile(t, tmpDir, "first.toml", "name = \"first\"\nrepeat = 5\n")
	second := writeFile(t, tmpDir, "second.json", `{"name": "second", "extra-names": ["aria"]}`)

	t.Run("OrderedAndMissingSkipped", func(t *testing.T) {
		reg := greetRegistry(t)
		reg.AddConfigFile(first)
		reg.AddConfigFile(filepath.Join(tmpDir, "missing.yaml"))
		reg.AddConfigFile(second)

		require.NoError(t, reg.LoadFiles(map[string]string{"REPEAT": "6"}, []string{"-N", "scott"}))
		assert.Equal(t, "second", reg.String("name"))
		assert.Equal(t, int64(6), reg.Int64("repeat"))
		assert.Equal(t, []string{"scott"}, reg.StringArray("extra-names"))

		src, _ := reg.Source("name")
		assert.Equal(t, SourceFile, src)
	})

	t.Run("MalformedFails", func(t *testing.T) {
		bad := writeFile(t, tmpDir, "bad.toml", "name = \n")
		reg := greetRegistry(t)
		reg.AddConfigFile(bad)

		assert.Error(t, reg.LoadFiles(nil, nil))
		assert.False(t, reg.Loaded())
	})
}

// TestLargeIntegersInFiles tests that integers beyond float precision stay exact or fail
func TestLargeIntegersInFiles(t *testing.T) {
	newReg := func() *Registry {
		return New().MustAdd(
			MustFlag("total", Int128Value(Int128{})),
			MustFlag("count", Int64(0)),
		)
	}

	t.Run("ExactAcrossFormats", func(t *testing.T) {
		for _, tt := range []struct {
			format, content string
		}{
			{FormatYAML, "total: 123456789012345678901234567\ncount: 9007199254740993\n"},
			{FormatJSON, `{"total": 123456789012345678901234567, "count": 9007199254740993}`},
			{FormatTOML, "total = \"123456789012345678901234567\"\ncount = 9007199254740993\n"},
		} {
			values, err := DecodeConfig([]byte(tt.content), tt.format, "large."+tt.format)
			require.NoError(t, err, tt.format)

			reg := newReg()
			require.NoError(t, reg.Load([]FileLayer{{Location: "large", Values: values}}, nil, nil), tt.format)
			assert.Equal(t, "123456789012345678901234567", reg.Int128("total").String(), tt.format)
			assert.Equal(t, int64(9007199254740993), reg.Int64("count"), tt.format)
		}
	})

	t.Run("InexactFloatsRejected", func(t *testing.T) {
		for _, content := range []string{
			"count: 9007199254740993.0\n",
			"total: 1.0e26\n",
		} {
			values, err := DecodeConfig([]byte(content), FormatYAML, "large.yaml")
			require.NoError(t, err)

			err = newReg().Load([]FileLayer{{Location: "large.yaml", Values: values}}, nil, nil)
			assert.ErrorIs(t, err, ErrParse, content)
		}
	})

	t.Run("EmptyKeysAreAbsent", func(t *testing.T) {
		values, err := DecodeConfig([]byte("name:\nextra-names:\nrepeat: 3\n"), FormatYAML, "empty.yaml")
		require.NoError(t, err)

		reg := greetRegistry(t)
		require.NoError(t, reg.Load([]FileLayer{{Location: "empty.yaml", Values: values}}, nil, nil))
		assert.Equal(t, "world", reg.String("name"))
		assert.Equal(t, []string{}, reg.StringArray("extra-names"))
		assert.Equal(t, int64(3), reg.Int64("repeat"))

		src, _ := reg.Source("extra-names")
		assert.Equal(t, SourceDefault, src)
	})
}
