package logger

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// dispatch runs the per-call pipeline: primary line, additional-data block,
// alert, error result. Each call is a stateless linear pass over one
// resolvedCall.
func (l *Logger) dispatch(level Level, msg any, rc resolvedCall) error {
	w := l.w
	if w == nil {
		w = os.Stderr
	}
	prefix := l.renderPrefix(level)
	prefixed := prefix + fmt.Sprint(msg)

	// throwErr == true is the one shape that suppresses the primary line:
	// the message travels on the error instead of the console.
	if rc.throwErr != true {
		fmt.Fprintln(w, prefixed)
	}

	logAdditional := rc.alwaysLogAdditional || rc.additional != nil
	if logAdditional {
		value := rc.additional
		if rc.stringify != nil {
			text, err := stringifyValue(value, rc.stringify)
			if err != nil {
				// Serialization failures propagate unmodified.
				return err
			}
			value = text
		}
		fmt.Fprintf(w, "%sadditional data:\n%v\n", prefix, value)
	}

	if rc.alertMsg && l.alert != nil {
		l.alert(alertBody(prefixed, logAdditional, rc.throwErr != nil))
	}

	switch t := rc.throwErr.(type) {
	case bool:
		return errors.New(prefixed)
	case string:
		return errors.New(prefix + t)
	case error:
		return &prefixedError{prefix: prefix, err: t}
	}
	return nil
}

// alertBody composes the alert text: the primary line, then, after a blank
// line, one note per extra artifact the console received.
func alertBody(primary string, hasAdditional, hasErr bool) string {
	notes := make([]string, 0, 2)
	if hasAdditional {
		notes = append(notes, "(see additional data in the console)")
	}
	if hasErr {
		notes = append(notes, "(see an error message in the console)")
	}
	if len(notes) == 0 {
		return primary
	}
	return primary + "\n\n" + strings.Join(notes, "\n")
}

// prefixedError re-surfaces a caller-supplied error with the log prefix
// prepended to its message. errors.Is and errors.As still reach the original.
type prefixedError struct {
	prefix string
	err    error
}

func (e *prefixedError) Error() string { return e.prefix + e.err.Error() }

func (e *prefixedError) Unwrap() error { return e.err }
