package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Level is the maximum depth of the walk
	Level int

	// All includes entries whose names start with a dot
	All bool

	// Directory lists directories only
	Directory bool

	// Full labels entries with their full path
	Full bool

	// Overview truncates long sibling lists
	Overview bool

	// NoColor disables colored output
	NoColor bool

	// NoIcons disables icon glyphs
	NoIcons bool

	// Output specifies the output format (tree, json, or yaml)
	Output string

	// IgnorePatterns is a list of gitignore-style patterns to leave out
	IgnorePatterns []string

	// GitIgnore applies the .gitignore found in the rendered directory
	GitIgnore bool

	// Clipboard also copies the output to the system clipboard
	Clipboard bool

	// RateLimit is the maximum number of directory reads per second (0 for unlimited)
	RateLimit int

	// Verbose sets the verbosity level
	Verbose int
}

// validOutputFormats contains the list of supported output formats
var validOutputFormats = map[string]bool{
	string(OutputFormatTree): true,
	string(OutputFormatJSON): true,
	string(OutputFormatYAML): true,
}

// RegisterFlags defines every configuration flag on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.IntP(flagLevel, "l", DefaultLevel, "Maximum depth to descend")
	flags.BoolP(flagAll, "a", false, "Show entries whose names start with a dot")
	flags.BoolP(flagDirectory, "d", false, "List directories only")
	flags.BoolP(flagFull, "f", false, "Show the full path of each entry")
	flags.Bool(flagOverview, false, "Show at most 5 entries per directory")
	flags.Bool(flagNoColor, false, "Disable colored output")
	flags.Bool(flagNoIcons, false, "Disable icon glyphs")
	flags.StringP(flagOutput, "o", string(OutputFormatTree), "Output format (tree, json, yaml)")
	flags.StringSliceP(flagIgnore, "I", nil, "Patterns to ignore (gitignore syntax)")
	flags.Bool(flagGitIgnore, false, "Respect the .gitignore of the listed directory")
	flags.BoolP(flagClipboard, "c", false, "Also copy the output to the clipboard")
	flags.IntP(flagRateLimit, "r", 0, "Maximum directory reads per second (0 for unlimited)")
	flags.CountP(flagVerbose, "v", "Increase verbosity (-v, -vv, -vvv)")
}

// Load reads configuration from environment variables and, when flags is not
// nil, from command line flags, which take precedence. The result is validated.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("level", DefaultLevel)
	v.SetDefault("all", false)
	v.SetDefault("directory", false)
	v.SetDefault("full", false)
	v.SetDefault("overview", false)
	v.SetDefault("no_color", false)
	v.SetDefault("no_icons", false)
	v.SetDefault("output", string(OutputFormatTree))
	v.SetDefault("gitignore", false)
	v.SetDefault("clipboard", false)
	v.SetDefault("rate_limit", 0)

	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// Map environment variables to config fields
	for _, key := range []string{
		"level", "all", "directory", "full", "overview", "no_color",
		"no_icons", "output", "ignore", "gitignore", "clipboard", "rate_limit", "verbose",
	} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("failed to bind env %s: %w", key, err)
		}
	}

	if flags != nil {
		bindings := map[string]string{
			"level":      flagLevel,
			"all":        flagAll,
			"directory":  flagDirectory,
			"full":       flagFull,
			"overview":   flagOverview,
			"no_color":   flagNoColor,
			"no_icons":   flagNoIcons,
			"output":     flagOutput,
			"gitignore":  flagGitIgnore,
			"clipboard":  flagClipboard,
			"rate_limit": flagRateLimit,
		}
		for key, name := range bindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	// Create config instance
	cfg := Config{
		Level:     v.GetInt("level"),
		All:       v.GetBool("all"),
		Directory: v.GetBool("directory"),
		Full:      v.GetBool("full"),
		Overview:  v.GetBool("overview"),
		NoColor:   v.GetBool("no_color"),
		NoIcons:   v.GetBool("no_icons"),
		Output:    v.GetString("output"),
		GitIgnore: v.GetBool("gitignore"),
		Clipboard: v.GetBool("clipboard"),
		RateLimit: v.GetInt("rate_limit"),
	}

	verbose, err := loadVerbose(v, flags)
	if err != nil {
		return Config{}, err
	}
	cfg.Verbose = verbose

	cfg.IgnorePatterns, err = loadIgnore(v, flags)
	if err != nil {
		return Config{}, err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadVerbose takes the -v count when given, else the environment value as
// either a number or a string of 'v's.
func loadVerbose(v *viper.Viper, flags *pflag.FlagSet) (int, error) {
	if flags != nil && flags.Changed(flagVerbose) {
		return flags.GetCount(flagVerbose)
	}

	verboseStr := strings.TrimSpace(v.GetString("verbose"))
	if verboseStr == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(verboseStr); err == nil {
		return n, nil
	}
	return strings.Count(verboseStr, "v"), nil
}

// loadIgnore takes the -I values when given, else the comma separated
// environment value.
func loadIgnore(v *viper.Viper, flags *pflag.FlagSet) ([]string, error) {
	var raw []string
	if flags != nil && flags.Changed(flagIgnore) {
		values, err := flags.GetStringSlice(flagIgnore)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore patterns: %w", err)
		}
		raw = values
	} else if ignoreStr := v.GetString("ignore"); ignoreStr != "" {
		raw = strings.Split(ignoreStr, ",")
	}

	var patterns []string
	for _, p := range raw {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	return patterns, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Level < 0 {
		return fmt.Errorf("level must be zero or positive, got %d", c.Level)
	}

	if !validOutputFormats[c.Output] {
		return fmt.Errorf("invalid output format %q: must be one of [tree json yaml]", c.Output)
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}

	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Level: %d, All: %v, Directory: %v, Full: %v, Overview: %v, "+
			"NoColor: %v, NoIcons: %v, Output: %s, IgnorePatterns: %v, "+
			"GitIgnore: %v, Clipboard: %v, RateLimit: %d, Verbose: %d}",
		c.Level, c.All, c.Directory, c.Full, c.Overview,
		c.NoColor, c.NoIcons, c.Output, c.IgnorePatterns,
		c.GitIgnore, c.Clipboard, c.RateLimit, c.Verbose,
	)
}
