package classify

// Kind names a Classification variant.
type Kind int

const (
	KindUnclassified Kind = iota
	KindRegularFile
	KindDirectory
	KindSymlink
	KindBlockDevice
	KindCharDevice
	KindNamedPipe
	KindSocket
)

var kindNames = map[Kind]string{
	KindUnclassified: "unclassified",
	KindRegularFile:  "file",
	KindDirectory:    "directory",
	KindSymlink:      "symlink",
	KindBlockDevice:  "block_device",
	KindCharDevice:   "char_device",
	KindNamedPipe:    "pipe",
	KindSocket:       "socket",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Classification is the closed set of entry types. Only the variants in this
// package implement it.
type Classification interface {
	Kind() Kind

	// defaultIcon is the glyph used when neither the name nor the extension
	// has an entry in the icon tables.
	defaultIcon() string
}

// RegularFile is a plain file. Executable is set when any of the owner, group
// or other execute bits is present.
type RegularFile struct {
	Executable bool
}

// Directory is a directory.
type Directory struct{}

// Symlink is a symbolic link described by its own metadata. Target is the raw
// link text; TargetIsDir and TargetExists come from following the link.
type Symlink struct {
	Target       string
	TargetIsDir  bool
	TargetExists bool
}

type BlockDevice struct{}

type CharDevice struct{}

type NamedPipe struct{}

type Socket struct{}

// Unclassified covers anything the OS reports that fits no other variant.
type Unclassified struct{}

func (RegularFile) Kind() Kind  { return KindRegularFile }
func (Directory) Kind() Kind    { return KindDirectory }
func (Symlink) Kind() Kind      { return KindSymlink }
func (BlockDevice) Kind() Kind  { return KindBlockDevice }
func (CharDevice) Kind() Kind   { return KindCharDevice }
func (NamedPipe) Kind() Kind    { return KindNamedPipe }
func (Socket) Kind() Kind       { return KindSocket }
func (Unclassified) Kind() Kind { return KindUnclassified }

func (f RegularFile) defaultIcon() string {
	if f.Executable {
		return "\uf489"
	}
	return "\uf016"
}

func (Directory) defaultIcon() string { return "\uf115" }

func (s Symlink) defaultIcon() string {
	if s.TargetIsDir {
		return "\uf482"
	}
	return "\uf481"
}

func (BlockDevice) defaultIcon() string  { return "\ufc29" }
func (CharDevice) defaultIcon() string   { return "\ue601" }
func (NamedPipe) defaultIcon() string    { return "\uf731" }
func (Socket) defaultIcon() string       { return "\uf6a7" }
func (Unclassified) defaultIcon() string { return "\uf2dc" }

// Entry is a classified filesystem object ready for display.
type Entry struct {
	// Path is the path the entry was classified from.
	Path string

	// Name is the display label: the base name, or Path when there is none.
	Name string

	Class Classification
}

// IsDir reports whether the entry itself is a directory. Symlinks to
// directories are not.
func (e Entry) IsDir() bool {
	return e.Class.Kind() == KindDirectory
}
