// Package config provides configuration management for glyphtree. Values come
// from GLYPHTREE_* environment variables and command line flags; a flag given on
// the command line wins over the environment.
//
// # Configuration Loading
//
//	flags := pflag.NewFlagSet("glyphtree", pflag.ContinueOnError)
//	config.RegisterFlags(flags)
//	_ = flags.Parse(os.Args[1:])
//
//	cfg, err := config.Load(flags)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Passing a nil flag set reads the environment only.
//
// # Environment Variables
//
//	GLYPHTREE_LEVEL       Maximum depth (default: 5)
//	GLYPHTREE_ALL         Include dot entries (true/false)
//	GLYPHTREE_DIRECTORY   List directories only (true/false)
//	GLYPHTREE_FULL        Show full paths (true/false)
//	GLYPHTREE_OVERVIEW    Show at most 5 entries per directory (true/false)
//	GLYPHTREE_NO_COLOR    Disable colored output (true/false)
//	GLYPHTREE_NO_ICONS    Disable icon glyphs (true/false)
//	GLYPHTREE_OUTPUT      Output format: tree|json|yaml
//	GLYPHTREE_IGNORE      Comma-separated gitignore-style patterns
//	GLYPHTREE_GITIGNORE   Respect the root .gitignore (true/false)
//	GLYPHTREE_CLIPBOARD   Also copy the output to the clipboard (true/false)
//	GLYPHTREE_RATE_LIMIT  Directory reads per second (0 for unlimited)
//	GLYPHTREE_VERBOSE     Verbosity, as a number or a string of 'v's
//
// # Ignore Patterns
//
// Patterns follow .gitignore syntax and are matched against paths relative to
// the rendered directory:
//   - "node_modules"  - any entry with that name
//   - "build/"        - directories named build
//   - "*.log"         - by extension
//   - "docs/*.md"     - inside a specific directory
//
// # Configuration Validation
//
// Load returns descriptive errors for a negative level, rate limit or
// verbosity, and for an unknown output format.
package config
