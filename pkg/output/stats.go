package output

import (
	"github.com/sonemaro/glyphtree/pkg/logger"
	"github.com/sonemaro/glyphtree/pkg/render"
)

// stats holds statistics about the rendered tree
type stats struct {
	Dirs    int `json:"totalDirectories" yaml:"totalDirectories"`
	Files   int `json:"totalFiles" yaml:"totalFiles"`
	Skipped int `json:"skipped" yaml:"skipped"`
}

func (b *treeBuilder) calculateStats(summary render.Summary) *stats {
	s := &stats{
		Dirs:    summary.Directories,
		Files:   summary.Files,
		Skipped: summary.Skipped,
	}

	b.log.WithFields(logger.Fields{
		"files":   s.Files,
		"dirs":    s.Dirs,
		"skipped": s.Skipped,
	}).Debug("Statistics calculated")

	return s
}
