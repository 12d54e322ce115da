//go:build !(js && wasm)

package logger

// platformAlert reports no default alert hook outside browser-like hosts.
// Alert requests are skipped unless Config.Alert or TerminalAlert provides
// one.
func platformAlert() func(string) {
	return nil
}
