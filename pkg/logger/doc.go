/*
Package logger provides structured logging for glyphtree. It wraps uber-go/zap
behind a small interface with verbosity levels and field-based context.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Warn and Error only
	})

	log.Warn("Skipping unreadable entry")
	log.Info("Render finished")        // Only shown with verbosity >= 1
	log.Debug("Listing directory")     // Only shown with verbosity >= 2
	log.Trace("Resolved icon")         // Only shown with verbosity >= 3

Verbosity Levels:

	0: Warn, Error (default)
	1: Info + Level 0
	2: Debug + Level 1
	3: Trace + Level 2

Structured Logging:

	log.WithFields(logger.Fields{
	    "path":  "/some/path",
	    "depth": 2,
	}).Debug("Listing directory")

Output Example (JSON, one object per line on stderr):

	{"level":"debug","ts":"2024-01-20T15:04:05.000Z","message":"Listing directory","path":"/some/path","depth":2}

The logger is safe for concurrent use.
*/
package logger
