/*
Package commands implements the CLI command structure for glyphtree.
It provides the root command, which renders a directory tree, and the
version subcommand.
*/
package commands

import (
	"fmt"

	"github.com/sonemaro/glyphtree/cmd/glyphtree/app"
	"github.com/sonemaro/glyphtree/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const longDescription = `glyphtree lists the contents of a directory as an indented tree,
prefixing every entry with an icon glyph chosen by its type, name and extension.

Ignore Patterns:
  The --ignore (-I) flag uses gitignore syntax and may be repeated:

    -I "node_modules"        Ignore a name at any depth
    -I "*.log"               Ignore by extension
    -I "src/test/fixtures"   Ignore a path relative to the listed directory

  --gitignore additionally honours the .gitignore file of the listed directory.

Environment Variables:
  GLYPHTREE_LEVEL           Maximum depth
  GLYPHTREE_ALL             Show dot entries
  GLYPHTREE_DIRECTORY       List directories only
  GLYPHTREE_FULL            Show full paths
  GLYPHTREE_OVERVIEW        Show at most 5 entries per directory
  GLYPHTREE_NO_COLOR        Disable colored output
  GLYPHTREE_NO_ICONS        Disable icon glyphs
  GLYPHTREE_OUTPUT          Output format (tree|json|yaml)
  GLYPHTREE_IGNORE          Comma-separated ignore patterns
  GLYPHTREE_GITIGNORE       Honour the root .gitignore
  GLYPHTREE_CLIPBOARD       Also copy the output to the clipboard
  GLYPHTREE_RATE_LIMIT      Directory reads per second
  GLYPHTREE_VERBOSE         Verbosity level (number or 'v's)

Flags take precedence over environment variables.`

const examples = `  # Current directory, five levels deep
  glyphtree

  # Two levels of a project, hidden entries included
  glyphtree -a -l 2 ~/src/project

  # Directories only, as JSON
  glyphtree -d -o json /srv

  # Large directories summarised
  glyphtree --overview --gitignore .`

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "glyphtree [flags] [path]",
		Short:         "Directory tree listing with icon glyphs",
		Long:          longDescription,
		Example:       examples,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	config.RegisterFlags(cmd.Flags())

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	path := config.DefaultPath
	if len(args) == 1 {
		path = args[0]
	}

	application := app.New(cfg, app.Options{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Fs:     afero.NewOsFs(),
	})

	ctx, stop := application.WithSignals(cmd.Context())
	defer stop()

	return application.Run(ctx, path)
}
