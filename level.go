package logger

import "strings"

// Level tags a log entry inside the rendered prefix. Levels carry no ordering
// or filtering semantics; they are labels only.
type Level int8

const (
	// DebugLevel defines the debug log level.
	DebugLevel Level = iota
	// InfoLevel defines the info log level.
	InfoLevel
	// WarnLevel defines the warn log level.
	WarnLevel
	// ErrorLevel defines the error log level.
	ErrorLevel
)

// String implements the fmt.Stringer interface.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	}
	return "info"
}

// ParseLevel converts a textual level into a Level value. It accepts "debug",
// "info", "warn", "warning", and "error" (case insensitive).
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return InfoLevel, false
	}
}

// classifyLineLevel picks a level for a free-form line fed through the stdlib
// bridge. Lines shaped like "[warn] msg" or "warn: msg" adopt the named
// level; everything else falls back to info.
func classifyLineLevel(line string) (Level, string) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.IndexRune(trimmed, ']'); end > 1 {
			if lvl, ok := ParseLevel(trimmed[1:end]); ok {
				return lvl, strings.TrimSpace(trimmed[end+1:])
			}
		}
	}
	lowered := strings.ToLower(trimmed)
	trimTail := func(prefixLen int) string {
		tail := strings.TrimSpace(trimmed[prefixLen:])
		tail = strings.TrimLeft(tail, ":- ")
		return strings.TrimSpace(tail)
	}
	switch {
	case strings.HasPrefix(lowered, "debug"):
		return DebugLevel, trimTail(len("debug"))
	case strings.HasPrefix(lowered, "info"):
		return InfoLevel, trimTail(len("info"))
	case strings.HasPrefix(lowered, "warning"):
		return WarnLevel, trimTail(len("warning"))
	case strings.HasPrefix(lowered, "warn"):
		return WarnLevel, trimTail(len("warn"))
	case strings.HasPrefix(lowered, "error"):
		return ErrorLevel, trimTail(len("error"))
	default:
		return InfoLevel, trimmed
	}
}
