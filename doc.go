// Package logger provides a small client-side logging convenience layer: a
// Logger prefixes each message with a level tag and an optional chain of
// hierarchical prefixes, optionally emits a secondary "additional data"
// payload (raw or JSON-serialized), optionally raises a user-visible alert,
// and optionally surfaces an error after logging.
//
// # Design overview
//
//   - Shape-dispatched calls: Log accepts up to two trailing arguments after
//     the message. The third argument is either the additional-data payload
//     or an options bag; the resolver decides from runtime shape alone, so a
//     single call site serves both forms (see Log for the exact rules).
//   - Label-only levels: levels carry no ordering or filtering semantics.
//     They exist purely as a tag inside the rendered prefix.
//   - Exclusive prefix ownership: every Logger owns its prefix chain.
//     Cloning copies the chain by value, so mutating a clone's prefixes never
//     leaks into the original (or vice versa).
//   - Error channel instead of throw: where a dynamic host would throw, Log
//     returns an error. ThrowErr selects between a generic error carrying the
//     prefixed message, a prefixed custom string, or re-surfacing a caller
//     supplied error with its message prefixed.
//
// # Usage
//
//	log := logger.New(os.Stderr, "app")
//	log.Info("ready")                             // [info | app] ready
//	sub := log.CloneAndAppendPrefix("db")
//	sub.Warn("slow query", map[string]any{
//		"additional":          query,
//		"stringifyAdditional": true,
//	})
//
// The typed Options form sidesteps shape dispatch entirely:
//
//	log.Error("boom", logger.Options{ThrowErr: err})
//
// # Integration notes
//
//   - LogLogger and LogLoggerDetect bridge to the standard library by
//     returning a *log.Logger that feeds through a Logger.
//   - ContextWithLogger and FromContext carry a Logger through a
//     context.Context; absence yields a discard-backed no-op.
//   - Alerts default to the browser alert under js/wasm and are skipped
//     elsewhere; TerminalAlert opts in to a terminal-backed fallback.
package logger
