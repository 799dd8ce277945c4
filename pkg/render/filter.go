package render

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	ignorefile "github.com/monochromegane/go-gitignore"
	"github.com/sonemaro/glyphtree/pkg/classify"
	"github.com/sonemaro/glyphtree/pkg/logger"
	"github.com/spf13/afero"
)

const gitignoreName = ".gitignore"

// filter decides which children of a directory are shown.
type filter struct {
	root     string
	all      bool
	dirsOnly bool
	patterns gitignore.Matcher
	ignore   ignorefile.IgnoreMatcher
	log      logger.Logger
}

func newFilter(config Config, fsys afero.Fs, log logger.Logger) *filter {
	f := &filter{
		root:     config.Root,
		all:      config.All,
		dirsOnly: config.DirectoriesOnly,
		log:      log,
	}

	if len(config.IgnorePatterns) > 0 {
		patterns := make([]gitignore.Pattern, 0, len(config.IgnorePatterns))
		for _, p := range config.IgnorePatterns {
			p = strings.TrimSpace(p)
			if p == "" || strings.HasPrefix(p, "#") {
				continue
			}
			patterns = append(patterns, gitignore.ParsePattern(p, nil))
		}
		f.patterns = gitignore.NewMatcher(patterns)
	}

	if config.GitIgnore {
		f.ignore = loadGitIgnore(config.Root, fsys, log)
	}

	return f
}

// loadGitIgnore reads the .gitignore at the root. A missing or unreadable
// file disables matching.
func loadGitIgnore(root string, fsys afero.Fs, log logger.Logger) ignorefile.IgnoreMatcher {
	path := filepath.Join(root, gitignoreName)

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithFields(logger.Fields{
				"path": path,
			}).Debug("No .gitignore at root")
		} else {
			log.WithFields(logger.Fields{
				"error": err,
				"path":  path,
			}).Warn("Failed to read .gitignore")
		}
		return nil
	}

	log.WithFields(logger.Fields{
		"path": path,
	}).Debug("Loaded .gitignore")

	return ignorefile.NewGitIgnoreFromReader(root, bytes.NewReader(data))
}

// hidden reports whether name is a dot entry that should be dropped.
func (f *filter) hidden(name string) bool {
	return !f.all && strings.HasPrefix(name, ".")
}

// keep applies the type and ignore rules to a classified entry.
func (f *filter) keep(entry classify.Entry) bool {
	if f.dirsOnly && !entry.IsDir() {
		return false
	}

	if f.patterns != nil {
		if rel, err := filepath.Rel(f.root, entry.Path); err == nil {
			if f.patterns.Match(strings.Split(filepath.ToSlash(rel), "/"), entry.IsDir()) {
				f.log.WithFields(logger.Fields{
					"path":   entry.Path,
					"reason": "ignore pattern",
				}).Debug("Path ignored")
				return false
			}
		}
	}

	if f.ignore != nil && f.ignore.Match(entry.Path, entry.IsDir()) {
		f.log.WithFields(logger.Fields{
			"path":   entry.Path,
			"reason": gitignoreName,
		}).Debug("Path ignored")
		return false
	}

	return true
}
