// Package logger provides verbose diagnostics for the statuta CLI.
// Debug output goes to stderr and is silent unless enabled with the
// --verbose flag, keeping stdout clean for results.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput redirects verbose output. Defaults to os.Stderr; useful in
// tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debugf prints a formatted message when verbose mode is enabled.
func Debugf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[debug] "+format+"\n", args...)
	}
}
