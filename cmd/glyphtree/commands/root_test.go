package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "guide.md"), []byte("# guide"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.log"), []byte("log"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0644))

	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, kv := range os.Environ() {
		if key, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(key, "GLYPHTREE_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	dir := createTestTree(t)
	base := filepath.Base(dir)

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name: "default",
			args: []string{"--no-icons", dir},
			expected: []string{
				base,
				"├── app.log",
				"└── docs",
				"    └── guide.md",
				"1 directories and 2 files",
			},
		},
		{
			name: "all and directories only",
			args: []string{"--no-icons", "-a", "-d", dir},
			expected: []string{
				base,
				"└── docs",
				"1 directories and 0 files",
			},
		},
		{
			name: "ignore pattern",
			args: []string{"--no-icons", "-I", "*.log", dir},
			expected: []string{
				base,
				"└── docs",
				"    └── guide.md",
				"1 directories and 1 files",
			},
		},
		{
			name: "level zero",
			args: []string{"--no-icons", "--level", "0", dir},
			expected: []string{
				base,
				"├── app.log",
				"└── docs",
				"1 directories and 1 files",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, strings.Join(tt.expected, "\n")+"\n", out)
		})
	}
}

func TestRootCommandErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		out, err := execute(t, filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
		assert.Empty(t, out)
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := execute(t, "a", "b")
		require.Error(t, err)
	})

	t.Run("invalid output format", func(t *testing.T) {
		out, err := execute(t, "-o", "xml", createTestTree(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
		assert.Empty(t, out)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Glyphtree dev (unknown, unknown)\n", out)

	out, err = execute(t, "version", "-f")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Version:")
}
