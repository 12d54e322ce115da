package logger

import (
	"io"
	"os"
	"strings"
)

// Logger writes prefixed log lines to a single output writer. Each Logger
// exclusively owns its prefix chain; derive scoped loggers with Clone or
// CloneAndAppendPrefix rather than sharing one instance across components.
//
// The zero value writes to os.Stderr with no prefixes and no alert hook.
type Logger struct {
	w        io.Writer
	alert    func(string)
	prefixes []string
}

// Config carries the construction-time settings for NewWithConfig.
type Config struct {
	// Output receives every log line. Defaults to os.Stderr.
	Output io.Writer

	// Alert handles alert requests (the AlertMsg call option). When nil, the
	// platform default is used: the browser alert function under js/wasm,
	// nothing elsewhere — alert requests are then skipped. Injecting a
	// callback here is also the test seam for asserting alert bodies.
	Alert func(string)

	// Prefixes seeds the prefix chain. The slice is copied.
	Prefixes []string
}

// New returns a Logger writing to w with the given initial prefixes. A nil w
// falls back to os.Stderr.
func New(w io.Writer, prefixes ...string) *Logger {
	return NewWithConfig(Config{Output: w, Prefixes: prefixes})
}

// NewWithConfig builds a Logger with explicit settings.
func NewWithConfig(cfg Config) *Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	alert := cfg.Alert
	if alert == nil {
		alert = platformAlert()
	}
	return &Logger{w: w, alert: alert, prefixes: clonePrefixes(cfg.Prefixes)}
}

// Noop returns a Logger that discards all output.
func Noop() *Logger {
	return &Logger{w: io.Discard}
}

// AppendPrefix appends prefixes to the receiver's chain and returns the
// receiver for chaining. Prefixes render joined with " > " after the level.
func (l *Logger) AppendPrefix(prefixes ...string) *Logger {
	l.prefixes = append(l.prefixes, prefixes...)
	return l
}

// Clone returns an independent copy of the receiver. The prefix chain is
// copied by value: appending to the clone never alters the original.
func (l *Logger) Clone() *Logger {
	return &Logger{w: l.w, alert: l.alert, prefixes: clonePrefixes(l.prefixes)}
}

// CloneAndAppendPrefix is shorthand for Clone followed by AppendPrefix.
func (l *Logger) CloneAndAppendPrefix(prefixes ...string) *Logger {
	return l.Clone().AppendPrefix(prefixes...)
}

// Prefixes returns a copy of the receiver's current prefix chain.
func (l *Logger) Prefixes() []string {
	return clonePrefixes(l.prefixes)
}

// Debug logs msg at DebugLevel. See Log for the trailing-argument rules.
func (l *Logger) Debug(msg any, args ...any) error {
	return l.Log(DebugLevel, msg, args...)
}

// Info logs msg at InfoLevel. See Log for the trailing-argument rules.
func (l *Logger) Info(msg any, args ...any) error {
	return l.Log(InfoLevel, msg, args...)
}

// Warn logs msg at WarnLevel. See Log for the trailing-argument rules.
func (l *Logger) Warn(msg any, args ...any) error {
	return l.Log(WarnLevel, msg, args...)
}

// Error logs msg at ErrorLevel. See Log for the trailing-argument rules.
func (l *Logger) Error(msg any, args ...any) error {
	return l.Log(ErrorLevel, msg, args...)
}

// Log writes msg prefixed with level and the prefix chain, then applies the
// resolved call options: additional-data emission, alerting, and the error
// result. It accepts up to two trailing arguments:
//
//	Log(level, msg)
//	Log(level, msg, optionsBag)
//	Log(level, msg, additional, optionsBagWithoutAdditional)
//
// The third argument is disambiguated by shape. A typed Options (or *Options)
// value is always the options bag. A map[string]any is the options bag only
// when it is non-empty and every key is one of the five recognized option
// keys ("additional", "alwaysLogAdditional", "stringifyAdditional",
// "throwErr", "alertMsg"); an empty map, or one carrying any foreign key, is
// treated as the additional-data payload instead. Anything else is the
// additional-data payload, and the fourth argument, when present, is an
// options bag whose "additional" entry is ignored.
//
// A consequence worth knowing: a payload map that happens to use only
// recognized key names (say map[string]any{"additional": 123}) classifies as
// an options bag. That is by shape, not intent; pass such payloads through
// the Additional field of a typed Options value instead.
//
// Log never fails while resolving arguments. A non-nil return is either the
// requested ThrowErr result or a JSON serialization failure from
// StringifyAdditional, returned unmodified.
func (l *Logger) Log(level Level, msg any, args ...any) error {
	return l.dispatch(level, msg, resolveCall(args))
}

func (l *Logger) renderPrefix(level Level) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(level.String())
	if len(l.prefixes) > 0 {
		b.WriteString(" | ")
		b.WriteString(strings.Join(l.prefixes, " > "))
	}
	b.WriteString("] ")
	return b.String()
}

func clonePrefixes(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
