package config

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	// OutputFormatTree represents the tree-style output format
	OutputFormatTree OutputFormat = "tree"

	// OutputFormatJSON represents the JSON output format
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML represents the YAML output format
	OutputFormatYAML OutputFormat = "yaml"
)

// Constants for configuration limits and defaults
const (
	// EnvPrefix is prepended to every environment variable
	EnvPrefix = "GLYPHTREE"

	// DefaultLevel is the default maximum depth
	DefaultLevel = 5

	// DefaultPath is rendered when no path argument is given
	DefaultPath = "."
)

// Flag names, shared by the command line and viper keys.
const (
	flagLevel     = "level"
	flagAll       = "all"
	flagDirectory = "directory"
	flagFull      = "full"
	flagOverview  = "overview"
	flagNoColor   = "no-color"
	flagNoIcons   = "no-icons"
	flagOutput    = "output"
	flagIgnore    = "ignore"
	flagGitIgnore = "gitignore"
	flagClipboard = "clipboard"
	flagRateLimit = "rate-limit"
	flagVerbose   = "verbose"
)
