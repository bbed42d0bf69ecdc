// Package logging provides structured logging for the speclint CLI using slog.
//
// Loggers write human-oriented text (colorized on a terminal) or JSON to a
// primary writer, and can additionally mirror every record as JSON to a log
// file. Levels follow the -v count of the CLI, with [LevelTrace] below debug
// for per-node engine output.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//		File:   logFile,
//	})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("loaded config", "file", path)
//
// # Testing
//
// [ForTest] routes log output through the testing framework so that it only
// shows up for failing tests or with -v.
package logging
