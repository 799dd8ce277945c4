package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/sonemaro/glyphtree/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTree(t *testing.T) afero.Fs {
	t.Helper()
	memFs := afero.NewMemMapFs()

	require.NoError(t, memFs.MkdirAll("/proj/src", 0755))
	require.NoError(t, afero.WriteFile(memFs, "/proj/src/main.go", []byte("package main"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "/proj/README.md", []byte("# proj"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "/proj/.env", []byte("A=1"), 0644))

	return memFs
}

func defaultConfig() config.Config {
	return config.Config{
		Level:  config.DefaultLevel,
		Output: string(config.OutputFormatTree),
	}
}

func newTestApp(cfg config.Config, memFs afero.Fs) (*App, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	a := New(cfg, Options{Stdout: &stdout, Stderr: &stderr, Fs: memFs})
	return a, &stdout, &stderr
}

func TestRun(t *testing.T) {
	t.Run("tree output", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.NoIcons = true
		a, stdout, _ := newTestApp(cfg, createTestTree(t))

		require.NoError(t, a.Run(context.Background(), "/proj"))

		expected := strings.Join([]string{
			"proj",
			"├── README.md",
			"└── src",
			"    └── main.go",
			"1 directories and 2 files",
			"",
		}, "\n")
		assert.Equal(t, expected, stdout.String())
	})

	t.Run("icons and hidden entries", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.All = true
		a, stdout, _ := newTestApp(cfg, createTestTree(t))

		require.NoError(t, a.Run(context.Background(), "/proj"))

		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		require.Len(t, lines, 6)
		assert.Equal(t, "\uf115 proj", lines[0])
		assert.Contains(t, lines[1], ".env")
		assert.Equal(t, "├── \ue609 README.md", lines[2])
		assert.Equal(t, "    └── \ue627 main.go", lines[4])
		assert.Equal(t, "1 directories and 3 files", lines[5])
	})

	t.Run("no colors without a terminal", func(t *testing.T) {
		a, stdout, _ := newTestApp(defaultConfig(), createTestTree(t))

		require.NoError(t, a.Run(context.Background(), "/proj"))
		assert.NotContains(t, stdout.String(), "\x1b[")
	})

	t.Run("json output", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Output = string(config.OutputFormatJSON)
		cfg.Directory = true
		a, stdout, _ := newTestApp(cfg, createTestTree(t))

		require.NoError(t, a.Run(context.Background(), "/proj"))

		var doc struct {
			Root struct {
				Name     string `json:"name"`
				Children []struct {
					Name string `json:"name"`
					Type string `json:"type"`
				} `json:"children"`
			} `json:"root"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
		assert.Equal(t, "proj", doc.Root.Name)
		require.Len(t, doc.Root.Children, 1)
		assert.Equal(t, "src", doc.Root.Children[0].Name)
		assert.Equal(t, "directory", doc.Root.Children[0].Type)
	})

	t.Run("level limits depth", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.NoIcons = true
		cfg.Level = 1

		memFs := createTestTree(t)
		require.NoError(t, memFs.MkdirAll("/proj/src/deep/deeper", 0755))
		a, stdout, _ := newTestApp(cfg, memFs)

		require.NoError(t, a.Run(context.Background(), "/proj"))
		assert.Contains(t, stdout.String(), "    ├── deep\n")
		assert.NotContains(t, stdout.String(), "deeper")
	})
}

func TestRunErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		a, stdout, _ := newTestApp(defaultConfig(), createTestTree(t))

		err := a.Run(context.Background(), "/missing")

		var pathErr *PathInvalidError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "/missing", pathErr.Path)
		assert.Equal(t, "invalid path /missing: does not exist", err.Error())
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Empty(t, stdout.String())
	})

	t.Run("path is a file", func(t *testing.T) {
		a, stdout, _ := newTestApp(defaultConfig(), createTestTree(t))

		err := a.Run(context.Background(), "/proj/README.md")

		var pathErr *PathInvalidError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "is not a directory", pathErr.Reason)
		assert.Empty(t, stdout.String())
	})

	t.Run("unsupported output format", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Output = "xml"
		a, stdout, _ := newTestApp(cfg, createTestTree(t))

		err := a.Run(context.Background(), "/proj")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format: xml")
		assert.Empty(t, stdout.String())
	})

	t.Run("cancelled context", func(t *testing.T) {
		a, stdout, _ := newTestApp(defaultConfig(), createTestTree(t))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := a.Run(ctx, "/proj")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "render interrupted")
		assert.Empty(t, stdout.String())
	})
}

// fakeCopier records what would have gone to the clipboard.
type fakeCopier struct {
	text string
	err  error
}

func (f *fakeCopier) Copy(text string) error {
	f.text = text
	return f.err
}

func TestRunClipboard(t *testing.T) {
	t.Run("copies plain output", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.NoIcons = true
		cfg.Clipboard = true

		copier := &fakeCopier{}
		var stdout bytes.Buffer
		a := New(cfg, Options{Stdout: &stdout, Stderr: &bytes.Buffer{}, Fs: createTestTree(t), Clipboard: copier})

		require.NoError(t, a.Run(context.Background(), "/proj"))
		assert.Equal(t, stdout.String(), copier.text)
		assert.Contains(t, copier.text, "└── src\n")
	})

	t.Run("disabled", func(t *testing.T) {
		copier := &fakeCopier{}
		a := New(defaultConfig(), Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Fs: createTestTree(t), Clipboard: copier})

		require.NoError(t, a.Run(context.Background(), "/proj"))
		assert.Empty(t, copier.text)
	})

	t.Run("copy failure", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Clipboard = true

		copier := &fakeCopier{err: errors.New("no display")}
		a := New(cfg, Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Fs: createTestTree(t), Clipboard: copier})

		err := a.Run(context.Background(), "/proj")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to copy output to clipboard: no display")
	})
}

func TestRunOsFs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	cfg := defaultConfig()
	cfg.NoIcons = true
	a, stdout, _ := newTestApp(cfg, afero.NewOsFs())

	require.NoError(t, a.Run(context.Background(), dir))
	assert.Contains(t, stdout.String(), "└── notes.txt\n")
	assert.Contains(t, stdout.String(), "0 directories and 1 files\n")
}

func TestHandleSignals(t *testing.T) {
	a, _, _ := newTestApp(defaultConfig(), afero.NewMemMapFs())

	exited := make(chan int, 1)
	a.exit = func(code int) { exited <- code }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 2)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		a.handleSignals(sigChan, done, cancel)
		close(finished)
	}()

	sigChan <- syscall.SIGINT
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled on first signal")
	}

	select {
	case <-exited:
		t.Fatal("exit called on first signal")
	default:
	}

	sigChan <- syscall.SIGTERM
	select {
	case code := <-exited:
		assert.Equal(t, exitInterrupted, code)
	case <-time.After(time.Second):
		t.Fatal("exit was not called on second signal")
	}

	<-finished
}

func TestWithSignals(t *testing.T) {
	a, _, _ := newTestApp(defaultConfig(), afero.NewMemMapFs())

	ctx, stop := a.WithSignals(context.Background())
	assert.NoError(t, ctx.Err())

	stop()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
