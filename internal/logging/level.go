package logging

import "log/slog"

// LevelTrace is more verbose than slog.LevelDebug. It is used for per-node
// engine output.
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps the count of -v flags to a level:
// 0 warn, 1 info, 2 debug, 3 or more trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// LevelString renders a level, naming LevelTrace "TRACE" instead of "DEBUG-4".
func LevelString(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}
