package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sonemaro/glyphtree/pkg/classify"
	"github.com/sonemaro/glyphtree/pkg/logger"
	"github.com/sonemaro/glyphtree/pkg/render"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

var fixedTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func createTestTree(t *testing.T) afero.Fs {
	t.Helper()

	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/proj/dir1", 0o755))
	require.NoError(t, memFs.MkdirAll("/proj/dir2", 0o755))
	require.NoError(t, afero.WriteFile(memFs, "/proj/dir1/file1.txt", []byte("one"), 0o644))
	require.NoError(t, afero.WriteFile(memFs, "/proj/dir1/file2.json", []byte("{}"), 0o644))
	require.NoError(t, afero.WriteFile(memFs, "/proj/dir2/run.sh", []byte("#!/bin/sh"), 0o755))
	require.NoError(t, memFs.Chmod("/proj/dir2/run.sh", 0o755))
	require.NoError(t, afero.WriteFile(memFs, "/proj/file3.txt", []byte("three"), 0o644))

	return memFs
}

// renderTo renders root with the emitter built from config and returns what
// was written.
func renderTo(t *testing.T, config Config, memFs afero.Fs, renderConfig render.Config, log *mockLogger) string {
	t.Helper()

	var buf bytes.Buffer
	emitter, err := NewEmitter(config, &buf, log)
	require.NoError(t, err)
	if b, ok := emitter.(*treeBuilder); ok {
		b.now = func() time.Time { return fixedTime }
	}

	r, err := render.NewRenderer(renderConfig, memFs, log)
	require.NoError(t, err)

	_, err = r.Render(context.Background(), emitter)
	require.NoError(t, err)

	return buf.String()
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		name       string
		format     Format
		withColors bool
		withIcons  bool
		verify     func(*testing.T, string, *mockLogger)
	}{
		{
			name:   "tree format basic",
			format: FormatTree,
			verify: func(t *testing.T, output string, log *mockLogger) {
				assert.Equal(t, strings.Join([]string{
					"proj",
					"├── dir1",
					"│   ├── file1.txt",
					"│   └── file2.json",
					"├── dir2",
					"│   └── run.sh",
					"└── file3.txt",
					"2 directories and 4 files",
				}, "\n")+"\n", output)
				assert.Contains(t, log.logs, "DEBUG: Creating emitter")
			},
		},
		{
			name:       "tree format with colors",
			format:     FormatTree,
			withColors: true,
			verify: func(t *testing.T, output string, log *mockLogger) {
				assert.Contains(t, output, "\x1b[38;2;254;74;73m")  // first level
				assert.Contains(t, output, "\x1b[38;2;42;183;202m") // second level
				assert.True(t, strings.HasPrefix(output, "proj\n"))
			},
		},
		{
			name:   "json format",
			format: FormatJSON,
			verify: func(t *testing.T, output string, log *mockLogger) {
				assert.Contains(t, output, `"name": "proj"`)
				assert.Contains(t, output, `"type": "directory"`)
				assert.Contains(t, output, `"children"`)
				assert.Contains(t, output, `"executable": true`)
				assert.Contains(t, output, `"totalFiles": 4`)
				assert.Contains(t, output, `"generated": "2024-01-01T12:00:00Z"`)
				assert.NotContains(t, output, `"icon"`)
				assert.Contains(t, log.logs, "DEBUG: Writing document")
			},
		},
		{
			name:      "json format with icons",
			format:    FormatJSON,
			withIcons: true,
			verify: func(t *testing.T, output string, log *mockLogger) {
				var doc jsonOutput
				require.NoError(t, json.Unmarshal([]byte(output), &doc))
				assert.Equal(t, "\uf115", doc.Root.Icon)
				assert.Equal(t, "\uf15c", doc.Root.Children[2].Icon)
			},
		},
		{
			name:   "yaml format",
			format: FormatYAML,
			verify: func(t *testing.T, output string, log *mockLogger) {
				assert.Contains(t, output, "name: proj")
				assert.Contains(t, output, "type: directory")
				assert.Contains(t, output, "children:")
				assert.Contains(t, output, "totalDirectories: 2")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &mockLogger{}
			config := Config{
				Format:     tt.format,
				WithColors: tt.withColors,
				WithIcons:  tt.withIcons,
			}

			output := renderTo(t, config, createTestTree(t), render.Config{Root: "/proj", MaxDepth: 5, NoIcons: true}, log)
			require.NotEmpty(t, output)

			tt.verify(t, output, log)
		})
	}
}

func TestDocumentStructure(t *testing.T) {
	decoders := map[Format]func([]byte, interface{}) error{
		FormatJSON: json.Unmarshal,
		FormatYAML: yaml.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			output := renderTo(t, Config{Format: format}, createTestTree(t), render.Config{Root: "/proj", MaxDepth: 5}, &mockLogger{})

			var doc jsonOutput
			require.NoError(t, decode([]byte(output), &doc))

			require.NotNil(t, doc.Root)
			assert.Equal(t, "proj", doc.Root.Name)
			assert.Equal(t, "/proj", doc.Root.Path)
			require.Len(t, doc.Root.Children, 3)

			dir1 := doc.Root.Children[0]
			assert.Equal(t, "dir1", dir1.Name)
			assert.Equal(t, "directory", dir1.Type)
			require.Len(t, dir1.Children, 2)
			assert.Equal(t, "/proj/dir1/file2.json", dir1.Children[1].Path)

			run := doc.Root.Children[1].Children[0]
			assert.Equal(t, "run.sh", run.Name)
			assert.Equal(t, "file", run.Type)
			assert.True(t, run.Executable)

			assert.Equal(t, "file3.txt", doc.Root.Children[2].Name)
			assert.Empty(t, doc.Root.Children[2].Children)

			assert.Equal(t, &stats{Dirs: 2, Files: 4}, doc.Statistics)
			assert.True(t, fixedTime.Equal(doc.Generated))
		})
	}
}

func TestDocumentOverview(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/wide", 0o755))
	for _, name := range []string{"f0", "f1", "f2", "f3", "f4", "f5", "f6"} {
		require.NoError(t, afero.WriteFile(memFs, "/wide/"+name, nil, 0o644))
	}

	output := renderTo(t, Config{Format: FormatJSON}, memFs, render.Config{Root: "/wide", MaxDepth: 5, Overview: true}, &mockLogger{})

	var doc jsonOutput
	require.NoError(t, json.Unmarshal([]byte(output), &doc))
	assert.Len(t, doc.Root.Children, 5)
	assert.Equal(t, 2, doc.Root.Truncated)
	assert.Equal(t, 5, doc.Statistics.Files)
}

func TestFormatterEdgeCases(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		log := &mockLogger{}
		_, err := NewEmitter(Config{Format: "invalid"}, &bytes.Buffer{}, log)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")

		hasError := false
		for _, logMsg := range log.logs {
			if strings.HasPrefix(logMsg, "ERROR: ") {
				hasError = true
				break
			}
		}
		assert.True(t, hasError, "Expected error log message not found")
	})

	t.Run("entry before root", func(t *testing.T) {
		b := newTreeBuilder(Config{Format: FormatJSON}, &bytes.Buffer{}, &mockLogger{}, encodeJSON)

		err := b.Entry(render.Line{Depth: 1, Entry: classify.Entry{Name: "x", Class: classify.RegularFile{}}})
		assert.ErrorIs(t, err, errNoRoot)
		assert.ErrorIs(t, b.Summary(render.Summary{}), errNoRoot)
	})

	t.Run("entry without parent", func(t *testing.T) {
		b := newTreeBuilder(Config{Format: FormatJSON}, &bytes.Buffer{}, &mockLogger{}, encodeJSON)
		require.NoError(t, b.Root(render.Line{Entry: classify.Entry{Name: "r", Class: classify.Directory{}}}))

		err := b.Entry(render.Line{Depth: 3, Entry: classify.Entry{Name: "x", Class: classify.RegularFile{}}})
		assert.Error(t, err)
	})

	t.Run("empty directory", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		require.NoError(t, memFs.MkdirAll("/empty", 0o755))

		output := renderTo(t, Config{Format: FormatJSON}, memFs, render.Config{Root: "/empty", MaxDepth: 5}, &mockLogger{})
		assert.Contains(t, output, `"name": "empty"`)
		assert.NotContains(t, output, `"children"`)
	})
}
