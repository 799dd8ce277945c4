/*
Package output provides the emitters a render can write to: the classic text
tree, and JSON or YAML documents describing the same tree.

Basic usage:

	emitter, err := output.NewEmitter(output.Config{
		Format:     output.FormatJSON,
		WithColors: false,
		WithIcons:  true,
	}, os.Stdout, log)
	if err != nil {
		return err
	}

	summary, err := renderer.Render(ctx, emitter)
*/
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/sonemaro/glyphtree/pkg/logger"
	"github.com/sonemaro/glyphtree/pkg/render"
)

// Format represents the output format type
type Format string

const (
	FormatTree Format = "tree"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config holds formatter configuration
type Config struct {
	Format Format

	// WithColors colours tree lines by depth. Ignored by JSON and YAML.
	WithColors bool

	// WithIcons adds the icon glyph of every entry to JSON and YAML nodes.
	WithIcons bool
}

// NewEmitter returns the emitter for config.Format writing to w.
func NewEmitter(config Config, w io.Writer, log logger.Logger) (render.Emitter, error) {
	log.WithFields(logger.Fields{
		"format":     config.Format,
		"withColors": config.WithColors,
		"withIcons":  config.WithIcons,
	}).Debug("Creating emitter")

	switch config.Format {
	case FormatTree:
		return render.NewTextEmitter(w, config.WithColors), nil
	case FormatJSON:
		return newTreeBuilder(config, w, log, encodeJSON), nil
	case FormatYAML:
		return newTreeBuilder(config, w, log, encodeYAML), nil
	default:
		msg := fmt.Sprintf("unsupported format: %s", config.Format)
		log.Error(msg)
		return nil, errors.New(msg)
	}
}
