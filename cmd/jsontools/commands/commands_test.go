package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// captureStdout runs fn with stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestLoadDocument(t *testing.T) {
	t.Run("json file", func(t *testing.T) {
		path := writeTempDoc(t, "doc.json", `{"a":1}`)
		doc, err := loadDocument(path, false)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, doc)
	})

	t.Run("yaml file converts", func(t *testing.T) {
		path := writeTempDoc(t, "doc.yaml", "a: 1\n")
		doc, err := loadDocument(path, false)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, doc)
	})

	t.Run("forced yaml", func(t *testing.T) {
		path := writeTempDoc(t, "doc.txt", "a: 1\n")
		doc, err := loadDocument(path, true)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, doc)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadDocument(filepath.Join(t.TempDir(), "nope.json"), false)
		assert.Error(t, err)
	})
}

func TestHandleGet(t *testing.T) {
	path := writeTempDoc(t, "doc.json", `{"user":{"name":"Tom"},"ids":[1,2,3]}`)

	t.Run("prints raw value", func(t *testing.T) {
		out := captureStdout(t, func() {
			require.NoError(t, HandleGet([]string{path, "user.name"}))
		})
		assert.Equal(t, "\"Tom\"\n", out)
	})

	t.Run("raw flag decodes strings", func(t *testing.T) {
		out := captureStdout(t, func() {
			require.NoError(t, HandleGet([]string{"--raw", path, "user.name"}))
		})
		assert.Equal(t, "Tom\n", out)
	})

	t.Run("ugly flag compacts", func(t *testing.T) {
		out := captureStdout(t, func() {
			require.NoError(t, HandleGet([]string{"-u", path, "ids"}))
		})
		assert.Equal(t, "[1,2,3]\n", out)
	})

	t.Run("wrong arg count", func(t *testing.T) {
		assert.Error(t, HandleGet([]string{path}))
	})
}

func TestHandleSet(t *testing.T) {
	path := writeTempDoc(t, "doc.json", `{"a":1}`)
	out := captureStdout(t, func() {
		require.NoError(t, HandleSet([]string{path, "b", "2"}))
	})
	assert.Equal(t, "{\"a\":1,\"b\":2}\n", out)
}

func TestHandleDelete(t *testing.T) {
	path := writeTempDoc(t, "doc.json", `{"a":1,"b":2}`)
	out := captureStdout(t, func() {
		require.NoError(t, HandleDelete([]string{path, "a"}))
	})
	assert.Equal(t, "{\"b\":2}\n", out)
}

func TestHandleFormat(t *testing.T) {
	path := writeTempDoc(t, "doc.json", "{\n    \"a\": 1\n}")
	out := captureStdout(t, func() {
		require.NoError(t, HandleFormat([]string{"--ugly", path}))
	})
	assert.Equal(t, "{\"a\":1}\n", out)
}

func TestHandleValidate(t *testing.T) {
	path := writeTempDoc(t, "doc.json", `{"a":1}`)
	out := captureStdout(t, func() {
		require.NoError(t, HandleValidate([]string{path}))
	})
	assert.Equal(t, "valid\n", out)
}

func TestSetupFlagsUsage(t *testing.T) {
	// Usage functions must not panic when invoked directly.
	for name, setup := range map[string]func() (usage func()){
		"get": func() func() {
			fs, _ := SetupGetFlags()
			fs.SetOutput(io.Discard)
			return fs.Usage
		},
		"set": func() func() {
			fs, _ := SetupSetFlags()
			fs.SetOutput(io.Discard)
			return fs.Usage
		},
		"delete": func() func() {
			fs, _ := SetupDeleteFlags()
			fs.SetOutput(io.Discard)
			return fs.Usage
		},
		"validate": func() func() {
			fs, _ := SetupValidateFlags()
			fs.SetOutput(io.Discard)
			return fs.Usage
		},
		"format": func() func() {
			fs, _ := SetupFormatFlags()
			fs.SetOutput(io.Discard)
			return fs.Usage
		},
		"serve": func() func() {
			fs, _ := SetupServeFlags()
			fs.SetOutput(io.Discard)
			return fs.Usage
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, setup())
		})
	}
}
