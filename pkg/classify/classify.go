/*
Package classify turns filesystem paths into display entries: a closed
classification (file, directory, symlink, device, pipe, socket), an icon glyph
and a label.

Basic usage:

	c := classify.NewClassifier(afero.NewOsFs(), log)

	entry, err := c.Classify("/etc/hosts")
	if err != nil {
		return err
	}
	fmt.Println(entry) // hosts glyph, then "hosts"

Metadata is always read without following symlinks, so a link is reported as a
Symlink and its target is probed separately.
*/
package classify

import (
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sonemaro/glyphtree/pkg/logger"
	"github.com/spf13/afero"
)

const execBits = 0o111

// Classifier reads entry metadata from an afero filesystem.
type Classifier struct {
	fs  afero.Fs
	log logger.Logger
}

// NewClassifier creates a classifier over fs. Symlink support depends on fs
// implementing afero.Lstater and afero.LinkReader, which afero.OsFs does.
func NewClassifier(fs afero.Fs, log logger.Logger) *Classifier {
	return &Classifier{
		fs:  fs,
		log: log,
	}
}

// Classify reads the metadata of path and returns its Entry. It fails with
// *IOError when the metadata cannot be read and with *EncodingError when the
// label or symlink target is not valid UTF-8.
func (c *Classifier) Classify(path string) (Entry, error) {
	name := label(path)
	if !utf8.ValidString(name) {
		return Entry{}, &EncodingError{Path: path, Field: "name"}
	}

	info, err := c.lstat(path)
	if err != nil {
		c.log.WithFields(logger.Fields{
			"error": err,
			"path":  path,
		}).Debug("Failed to read entry metadata")
		return Entry{}, &IOError{Path: path, Err: err}
	}

	class := FromMode(info.Mode())
	if _, ok := class.(Symlink); ok {
		link, err := c.resolveSymlink(path)
		if err != nil {
			return Entry{}, err
		}
		class = link
	}

	c.log.WithFields(logger.Fields{
		"path": path,
		"kind": class.Kind().String(),
	}).Trace("Classified entry")

	return Entry{
		Path:  path,
		Name:  name,
		Class: class,
	}, nil
}

// FromMode maps file mode bits to a classification. Symlink targets are left
// empty; Classify fills them in. First match wins: regular file, directory,
// symlink, block device, char device, named pipe, socket.
func FromMode(mode fs.FileMode) Classification {
	switch {
	case mode.IsRegular():
		return RegularFile{Executable: mode.Perm()&execBits != 0}
	case mode.IsDir():
		return Directory{}
	case mode&fs.ModeSymlink != 0:
		return Symlink{}
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice == 0:
		return BlockDevice{}
	case mode&fs.ModeCharDevice != 0:
		return CharDevice{}
	case mode&fs.ModeNamedPipe != 0:
		return NamedPipe{}
	case mode&fs.ModeSocket != 0:
		return Socket{}
	default:
		return Unclassified{}
	}
}

func (c *Classifier) lstat(path string) (fs.FileInfo, error) {
	if lst, ok := c.fs.(afero.Lstater); ok {
		info, _, err := lst.LstatIfPossible(path)
		return info, err
	}
	return c.fs.Stat(path)
}

// resolveSymlink reads the link text and probes the target. Neither a broken
// link nor an unreadable target is an error.
func (c *Classifier) resolveSymlink(path string) (Symlink, error) {
	var link Symlink

	if reader, ok := c.fs.(afero.LinkReader); ok {
		target, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			c.log.WithFields(logger.Fields{
				"error": err,
				"path":  path,
			}).Debug("Failed to read symlink")
		} else {
			link.Target = target
		}
	}

	if !utf8.ValidString(link.Target) {
		return Symlink{}, &EncodingError{Path: path, Field: "symlink target"}
	}

	// Stat follows the link, so it answers for the target.
	info, err := c.fs.Stat(path)
	if err != nil {
		c.log.WithFields(logger.Fields{
			"error":  err,
			"path":   path,
			"target": link.Target,
		}).Debug("Symlink target is not reachable")
		return link, nil
	}

	link.TargetExists = true
	link.TargetIsDir = info.IsDir()
	return link, nil
}

// label returns the last path element, or the whole path when it has none.
func label(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return path
	}
	return base
}

// Icon resolves the glyph: exact name, then extension, then the default for
// the classification.
func (e Entry) Icon() string {
	if icon, ok := iconsByName[e.Name]; ok {
		return icon
	}
	if icon, ok := iconsByExtension[extension(e.Name)]; ok {
		return icon
	}
	return e.Class.defaultIcon()
}

// Display renders "<icon> <label>" (or just the label when icons is false),
// followed by " ⇒ <target>" for symlinks whether or not the target exists.
func (e Entry) Display(label string, icons bool) string {
	var b strings.Builder
	if icons {
		b.WriteString(e.Icon())
		b.WriteByte(' ')
	}
	b.WriteString(label)
	if link, ok := e.Class.(Symlink); ok {
		b.WriteString(" ⇒ ")
		b.WriteString(link.Target)
	}
	return b.String()
}

// String renders the entry with its base-name label and icon.
func (e Entry) String() string {
	return e.Display(e.Name, true)
}

// extension returns the lowercase extension without its dot. A leading dot
// marks a hidden file, not an extension.
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
