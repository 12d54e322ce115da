package logger

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalAlert returns an alert hook that rings the terminal bell and writes
// the alert body to w, for hosts without a modal primitive. It returns nil
// when w is not an interactive terminal, so wiring it into Config.Alert keeps
// the skip-when-unavailable behavior:
//
//	log := logger.NewWithConfig(logger.Config{
//		Output: os.Stderr,
//		Alert:  logger.TerminalAlert(os.Stderr),
//	})
func TerminalAlert(w io.Writer) func(string) {
	if w == nil || !isTerminal(w) {
		return nil
	}
	return func(msg string) {
		fmt.Fprintf(w, "\a%s\n", msg)
	}
}
