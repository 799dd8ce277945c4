package render

import (
	"fmt"

	"github.com/sonemaro/glyphtree/pkg/classify"
)

// OverviewLimit is the number of siblings shown per directory in overview mode.
const OverviewLimit = 5

// Tree drawing pieces.
const (
	connector     = "├──"
	connectorLast = "└──"
	indent        = "│   "
	indentLast    = "    "
	ellipsis      = "    ..."
)

// Config describes a single render. It is not modified once rendering starts.
type Config struct {
	// Root is the directory to render. It must exist and be a directory.
	Root string

	// MaxDepth stops the walk: a frame deeper than MaxDepth does not list its
	// directory. The root frame has depth 0.
	MaxDepth int

	// All includes entries whose names start with a dot.
	All bool

	// DirectoriesOnly drops everything that is not a directory, symlinks to
	// directories included.
	DirectoriesOnly bool

	// FullPath labels children with their joined path instead of the base name.
	FullPath bool

	// Overview truncates sibling lists longer than OverviewLimit.
	Overview bool

	// NoIcons drops the glyph from every line.
	NoIcons bool

	// IgnorePatterns are gitignore-style patterns matched relative to Root.
	IgnorePatterns []string

	// GitIgnore applies the .gitignore file found in Root, if any.
	GitIgnore bool

	// RateLimit caps directory reads per second. 0 means unlimited.
	RateLimit int
}

// Summary counts what a render emitted. Entries dropped by errors are counted
// in Skipped and nowhere else.
type Summary struct {
	Directories int
	Files       int
	Skipped     int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d directories and %d files", s.Directories, s.Files)
}

// Line is one emitted entry with everything needed to draw it.
type Line struct {
	// Prefix is the accumulated indentation of the parent frames.
	Prefix string

	// Connector is "├──" or "└──", empty for the root line.
	Connector string

	// Depth is 0 for the root and parent depth + 1 for every child.
	Depth int

	Entry classify.Entry

	// Label is the name shown for the entry: base name or full path.
	Label string

	// Display is the label decorated with icon and symlink target.
	Display string

	Last bool
}

// Text renders the line without colour.
func (l Line) Text() string {
	if l.Connector == "" {
		return l.Prefix + l.Display
	}
	return l.Prefix + l.Connector + " " + l.Display
}

// Emitter receives render events in pre-order. Any error it returns aborts
// the render.
type Emitter interface {
	// Root is called once, before anything else.
	Root(Line) error

	// Entry is called for every child that survives filtering.
	Entry(Line) error

	// Truncated is called after the visible children of a directory when
	// overview mode hid some of them. depth is the depth of the hidden
	// children and hidden their number.
	Truncated(prefix string, depth int, hidden int) error

	// Summary is called once after a complete walk.
	Summary(Summary) error
}
