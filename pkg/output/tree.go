package output

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sonemaro/glyphtree/pkg/classify"
	"github.com/sonemaro/glyphtree/pkg/logger"
	"github.com/sonemaro/glyphtree/pkg/render"
)

var errNoRoot = errors.New("entry emitted before root")

// treeBuilder rebuilds the nested tree from render events and writes it as a
// single document once the summary arrives.
type treeBuilder struct {
	config Config
	w      io.Writer
	log    logger.Logger
	encode func(*jsonOutput) ([]byte, error)
	now    func() time.Time

	root *jsonNode

	// stack[d] is the most recent node at depth d.
	stack []*jsonNode
}

func newTreeBuilder(config Config, w io.Writer, log logger.Logger, encode func(*jsonOutput) ([]byte, error)) *treeBuilder {
	return &treeBuilder{
		config: config,
		w:      w,
		log:    log,
		encode: encode,
		now:    time.Now,
	}
}

func (b *treeBuilder) Root(line render.Line) error {
	b.root = b.convertToNode(line.Entry)
	b.stack = []*jsonNode{b.root}
	return nil
}

func (b *treeBuilder) Entry(line render.Line) error {
	parent, err := b.parent(line.Depth)
	if err != nil {
		return err
	}

	node := b.convertToNode(line.Entry)
	parent.Children = append(parent.Children, node)
	b.stack = append(b.stack[:line.Depth], node)
	return nil
}

func (b *treeBuilder) Truncated(_ string, depth int, hidden int) error {
	parent, err := b.parent(depth)
	if err != nil {
		return err
	}
	parent.Truncated = hidden
	return nil
}

func (b *treeBuilder) Summary(summary render.Summary) error {
	if b.root == nil {
		return errNoRoot
	}

	b.log.WithFields(logger.Fields{
		"format": b.config.Format,
	}).Debug("Writing document")

	doc := &jsonOutput{
		Root:       b.root,
		Statistics: b.calculateStats(summary),
		Generated:  b.now(),
	}

	bytes, err := b.encode(doc)
	if err != nil {
		b.log.WithFields(logger.Fields{
			"error":  err,
			"format": b.config.Format,
		}).Error("Failed to encode document")
		return fmt.Errorf("failed to encode %s: %w", b.config.Format, err)
	}

	_, err = b.w.Write(bytes)
	return err
}

// parent returns the node that children at depth attach to.
func (b *treeBuilder) parent(depth int) (*jsonNode, error) {
	if b.root == nil {
		return nil, errNoRoot
	}
	if depth < 1 || depth > len(b.stack) {
		return nil, fmt.Errorf("entry at depth %d has no parent", depth)
	}
	return b.stack[depth-1], nil
}

func (b *treeBuilder) convertToNode(entry classify.Entry) *jsonNode {
	b.log.WithFields(logger.Fields{
		"path": entry.Path,
		"kind": entry.Class.Kind().String(),
	}).Trace("Converting entry to node")

	node := &jsonNode{
		Name: entry.Name,
		Path: entry.Path,
		Type: entry.Class.Kind().String(),
	}

	if b.config.WithIcons {
		node.Icon = entry.Icon()
	}

	switch class := entry.Class.(type) {
	case classify.RegularFile:
		node.Executable = class.Executable
	case classify.Symlink:
		node.Target = class.Target
	}

	return node
}
