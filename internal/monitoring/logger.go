// Package monitoring holds the module's diagnostic logging hook.
package monitoring

import "log"

// Logf is the package-level diagnostic logger, defaulting to log.Printf.
// The writer hot path never logs; capture-side components report connection
// and sink failures through it. Replace it with SetLogger to redirect or
// mute output.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
