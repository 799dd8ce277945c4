/*
Package app provides the application container for glyphtree. It validates the
requested path, wires the renderer to the chosen output format and handles
interrupts.

Usage:

	application := app.New(cfg, app.Options{})

	ctx, stop := application.WithSignals(context.Background())
	defer stop()

	if err := application.Run(ctx, path); err != nil {
	    log.Fatal(err)
	}
*/
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime/debug"

	"github.com/sonemaro/glyphtree/internal/config"
	"github.com/sonemaro/glyphtree/pkg/clipboard"
	"github.com/sonemaro/glyphtree/pkg/logger"
	"github.com/sonemaro/glyphtree/pkg/output"
	"github.com/sonemaro/glyphtree/pkg/render"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Options holds the collaborators of an App. Zero values select the process
// defaults.
type Options struct {
	// Stdout receives the rendered tree
	Stdout io.Writer

	// Stderr receives logs
	Stderr io.Writer

	// Fs is the filesystem to render
	Fs afero.Fs

	// Clipboard receives a copy of the output when enabled in the config
	Clipboard clipboard.Copier
}

// App represents the main application container
type App struct {
	config config.Config
	log    logger.Logger
	fs     afero.Fs
	stdout io.Writer
	copier clipboard.Copier

	// exit terminates the process on a second interrupt
	exit func(code int)
}

// New creates a new application instance
func New(cfg config.Config, opts Options) *App {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewService()
	}

	app := &App{
		config: cfg,
		fs:     opts.Fs,
		stdout: opts.Stdout,
		copier: opts.Clipboard,
		exit:   os.Exit,
		log: logger.NewLogger(logger.Config{
			Verbosity: cfg.Verbose,
			Output:    opts.Stderr,
		}),
	}

	app.log.WithFields(logger.Fields{
		"config": cfg.String(),
	}).Debug("Application initialized")

	return app
}

// Run renders the directory at path. Nothing is written when the path is
// invalid.
func (a *App) Run(ctx context.Context, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := a.validatePath(path); err != nil {
		return err
	}

	colored := !a.config.NoColor && !a.config.Clipboard && a.isTerminal()

	out := a.stdout
	var copied *bytes.Buffer
	if a.config.Clipboard {
		copied = &bytes.Buffer{}
		out = io.MultiWriter(a.stdout, copied)
	}

	emitter, err := output.NewEmitter(output.Config{
		Format:     output.Format(a.config.Output),
		WithColors: colored,
		WithIcons:  !a.config.NoIcons,
	}, out, a.log)
	if err != nil {
		return fmt.Errorf("output setup failed: %w", err)
	}

	renderer, err := render.NewRenderer(a.renderConfig(path), a.fs, a.log)
	if err != nil {
		return err
	}

	summary, err := renderer.Render(ctx, emitter)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("render interrupted: %w", err)
		}
		return fmt.Errorf("render failed: %w", err)
	}

	if copied != nil {
		if err := a.copier.Copy(copied.String()); err != nil {
			a.log.WithFields(logger.Fields{
				"error": err,
			}).Error("Failed to copy output to clipboard")
			return fmt.Errorf("failed to copy output to clipboard: %w", err)
		}
		a.log.Info("Output copied to clipboard")
	}

	a.log.WithFields(logger.Fields{
		"path":        path,
		"directories": summary.Directories,
		"files":       summary.Files,
		"skipped":     summary.Skipped,
		"colored":     colored,
	}).Info("Render finished")

	return nil
}

func (a *App) renderConfig(path string) render.Config {
	return render.Config{
		Root:            path,
		MaxDepth:        a.config.Level,
		All:             a.config.All,
		DirectoriesOnly: a.config.Directory,
		FullPath:        a.config.Full,
		Overview:        a.config.Overview,
		NoIcons:         a.config.NoIcons,
		IgnorePatterns:  a.config.IgnorePatterns,
		GitIgnore:       a.config.GitIgnore,
		RateLimit:       a.config.RateLimit,
	}
}

// validatePath checks that path exists and is a directory
func (a *App) validatePath(path string) error {
	a.log.WithFields(logger.Fields{
		"path": path,
	}).Debug("Validating path")

	info, err := a.fs.Stat(path)
	if err != nil {
		reason := "cannot be accessed"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "does not exist"
		}
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  path,
		}).Debug("Path is invalid")
		return &PathInvalidError{Path: path, Reason: reason, Err: err}
	}

	if !info.IsDir() {
		return &PathInvalidError{Path: path, Reason: "is not a directory"}
	}

	return nil
}

// isTerminal checks if the output is going to a terminal
func (a *App) isTerminal() bool {
	f, ok := a.stdout.(*os.File)
	if !ok {
		return false
	}
	tty := term.IsTerminal(int(f.Fd()))
	a.log.WithFields(logger.Fields{
		"terminal": tty,
	}).Debug("Checked output terminal")
	return tty
}
