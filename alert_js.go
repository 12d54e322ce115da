//go:build js && wasm

package logger

import "syscall/js"

// platformAlert returns the browser's blocking alert when the host exposes
// one. Non-browser wasm hosts may omit it; alerts are then skipped.
func platformAlert() func(string) {
	global := js.Global()
	if alert := global.Get("alert"); alert.Type() != js.TypeFunction {
		return nil
	}
	return func(msg string) {
		global.Call("alert", msg)
	}
}
