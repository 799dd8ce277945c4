/*
Package render walks a directory depth-first and draws it as a box-drawing
tree, one line per entry, followed by a directory and file count.

Basic usage:

	r, err := render.NewRenderer(render.Config{
		Root:     "test",
		MaxDepth: 5,
	}, afero.NewOsFs(), log)
	if err != nil {
		return err
	}

	summary, err := r.Render(ctx, render.NewTextEmitter(os.Stdout, false))

prints

	test
	├── a
	│   └── b
	├── c.txt
	└── d.txt
	2 directories and 2 files

with the icon glyph of each entry before its name.

Siblings are sorted bytewise by name, so the output is reproducible for the
same tree and configuration. Failures at the root abort the render; below the
root, unreadable entries and directories are logged, counted in
Summary.Skipped and left out.
*/
package render

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sonemaro/glyphtree/pkg/classify"
	"github.com/sonemaro/glyphtree/pkg/logger"
	"github.com/spf13/afero"
	"golang.org/x/time/rate"
)

// Renderer draws one configured tree. It is not safe for concurrent use.
type Renderer struct {
	config     Config
	fs         afero.Fs
	log        logger.Logger
	classifier *classify.Classifier
	limiter    *rate.Limiter
}

// frame is the state of one directory level of the walk.
type frame struct {
	dir    string
	depth  int
	prefix string
}

// NewRenderer validates config and prepares a renderer over fsys.
func NewRenderer(config Config, fsys afero.Fs, log logger.Logger) (*Renderer, error) {
	if config.Root == "" {
		return nil, &ConfigError{Field: "root", Reason: "must not be empty"}
	}
	if config.MaxDepth < 0 {
		return nil, &ConfigError{Field: "max depth", Reason: "must not be negative"}
	}
	if config.RateLimit < 0 {
		return nil, &ConfigError{Field: "rate limit", Reason: "must not be negative"}
	}

	r := &Renderer{
		config:     config,
		fs:         fsys,
		log:        log,
		classifier: classify.NewClassifier(fsys, log),
	}

	if config.RateLimit > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	return r, nil
}

// Render walks the tree and feeds emitter. On error the emitter has received
// everything rendered up to that point but no summary.
func (r *Renderer) Render(ctx context.Context, emitter Emitter) (Summary, error) {
	var summary Summary

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	r.log.WithFields(logger.Fields{
		"path":     r.config.Root,
		"maxDepth": r.config.MaxDepth,
		"all":      r.config.All,
		"dirsOnly": r.config.DirectoriesOnly,
		"overview": r.config.Overview,
		"patterns": r.config.IgnorePatterns,
	}).Info("Starting render")

	root, err := r.classifier.Classify(r.config.Root)
	if err != nil {
		r.log.WithFields(logger.Fields{
			"error": err,
			"path":  r.config.Root,
		}).Error("Failed to classify root")
		return summary, fmt.Errorf("failed to classify root: %w", err)
	}

	if err := emitter.Root(Line{
		Depth:   0,
		Entry:   root,
		Label:   root.Name,
		Display: root.Display(root.Name, !r.config.NoIcons),
		Last:    true,
	}); err != nil {
		return summary, fmt.Errorf("failed to write root: %w", err)
	}

	f := newFilter(r.config, r.fs, r.log)

	start := frame{dir: r.config.Root}
	if err := r.walk(ctx, emitter, f, start, &summary); err != nil {
		r.log.WithFields(logger.Fields{
			"error": err,
			"path":  r.config.Root,
		}).Error("Render aborted")
		return summary, err
	}

	if err := emitter.Summary(summary); err != nil {
		return summary, fmt.Errorf("failed to write summary: %w", err)
	}

	r.log.WithFields(logger.Fields{
		"directories": summary.Directories,
		"files":       summary.Files,
		"skipped":     summary.Skipped,
	}).Info("Render completed")

	return summary, nil
}

func (r *Renderer) walk(ctx context.Context, emitter Emitter, f *filter, fr frame, summary *Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if fr.depth > r.config.MaxDepth {
		r.log.WithFields(logger.Fields{
			"path":  fr.dir,
			"depth": fr.depth,
		}).Trace("Max depth reached")
		return nil
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	r.log.WithFields(logger.Fields{
		"path":  fr.dir,
		"depth": fr.depth,
	}).Debug("Listing directory")

	children, err := r.children(fr.dir, f, summary)
	if err != nil {
		if fr.depth == 0 {
			return err
		}
		r.log.WithFields(logger.Fields{
			"error": err,
			"path":  fr.dir,
		}).Warn("Skipping unreadable directory")
		summary.Skipped++
		return nil
	}

	shown, hidden := children, 0
	if r.config.Overview && len(children) > OverviewLimit {
		shown, hidden = children[:OverviewLimit], len(children)-OverviewLimit
	}

	for i, child := range shown {
		if err := ctx.Err(); err != nil {
			return err
		}

		last := hidden == 0 && i == len(shown)-1
		line := r.line(child, fr, last)
		if err := emitter.Entry(line); err != nil {
			return fmt.Errorf("failed to write %s: %w", child.Path, err)
		}

		if !child.IsDir() {
			summary.Files++
			continue
		}

		summary.Directories++
		next := frame{
			dir:    child.Path,
			depth:  fr.depth + 1,
			prefix: fr.prefix + indent,
		}
		if last {
			next.prefix = fr.prefix + indentLast
		}
		if err := r.walk(ctx, emitter, f, next, summary); err != nil {
			return err
		}
	}

	if hidden > 0 {
		r.log.WithFields(logger.Fields{
			"path":   fr.dir,
			"hidden": hidden,
		}).Debug("Truncated listing")
		if err := emitter.Truncated(fr.prefix, fr.depth+1, hidden); err != nil {
			return fmt.Errorf("failed to write truncation marker: %w", err)
		}
	}

	return nil
}

// children lists, classifies, filters and sorts the entries of dir.
func (r *Renderer) children(dir string, f *filter, summary *Summary) ([]classify.Entry, error) {
	infos, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		return nil, &WalkError{Path: dir, Err: err}
	}

	entries := make([]classify.Entry, 0, len(infos))
	for _, info := range infos {
		if f.hidden(info.Name()) {
			continue
		}

		path := filepath.Join(dir, info.Name())
		entry, err := r.classifier.Classify(path)
		if err != nil {
			r.log.WithFields(logger.Fields{
				"error": err,
				"path":  path,
			}).Warn("Skipping unreadable entry")
			summary.Skipped++
			continue
		}

		if f.keep(entry) {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

func (r *Renderer) line(entry classify.Entry, parent frame, last bool) Line {
	label := entry.Name
	if r.config.FullPath {
		label = entry.Path
	}

	conn := connector
	if last {
		conn = connectorLast
	}

	return Line{
		Prefix:    parent.prefix,
		Connector: conn,
		Depth:     parent.depth + 1,
		Entry:     entry,
		Label:     label,
		Display:   entry.Display(label, !r.config.NoIcons),
		Last:      last,
	}
}

// Lines renders config without colour and returns the output lines, summary
// line included.
func Lines(ctx context.Context, config Config, fsys afero.Fs, log logger.Logger) ([]string, Summary, error) {
	r, err := NewRenderer(config, fsys, log)
	if err != nil {
		return nil, Summary{}, err
	}

	var buf bytes.Buffer
	summary, err := r.Render(ctx, NewTextEmitter(&buf, false))
	if err != nil {
		return nil, summary, err
	}

	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), summary, nil
}
