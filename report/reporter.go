package report

import "sync"

// The log level setting controls how much the reporter prints.
const (
	// LogLevelSilent indicates that no output should be printed.
	LogLevelSilent = iota

	// LogLevelError indicates that only errors should be printed.
	LogLevelError

	// LogLevelWarning indicates that errors and warnings should be
	// printed.  This is the default.
	LogLevelWarning

	// LogLevelVerbose indicates that all output should be printed.
	LogLevelVerbose
)

// reporter is the global state manager for diagnostic output.  All
// reporting goes through the exported functions in this package so that
// display and counting stay consistent no matter which phase reports.
type reporter struct {
	m sync.Mutex

	logLevel int

	errorCount   int
	warningCount int
}

var rep = reporter{logLevel: LogLevelWarning}

// InitReporter initializes the global reporter with a given log level.
func InitReporter(logLevel int) {
	rep.logLevel = logLevel
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount
}

// ShouldProceed indicates whether or not the toolchain should continue on
// to the next phase based on whether any errors have been reported.
func ShouldProceed() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount == 0
}
