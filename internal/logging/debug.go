package logging

import (
	"fmt"
	"io"
	"os"
)

// DebugEnv is the environment variable that switches on debug output
const DebugEnv = "TM_DEBUG"

// debugOut is where Debugf and Debugln write; swapped in tests
var debugOut io.Writer = os.Stderr

// DebugEnabled returns true if debug mode is enabled via TM_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(debugOut, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(debugOut, args...)
	}
}
