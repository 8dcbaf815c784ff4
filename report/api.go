package report

import "os"

// ReportDiagnostic reports a source diagnostic as an error: it is counted
// and, if the log level allows, rendered and displayed.  The input must be
// the source text the diagnostic's span indexes into.
func ReportDiagnostic(input string, d Diagnostic) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel >= LogLevelError {
		displayDiagnostic(Render(input, d))
	}
}

// ReportWarning reports a warning that is not tied to a source span, such
// as a manifest version mismatch.
func ReportWarning(msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++

	if rep.logLevel >= LogLevelWarning {
		displayWarning(msg)
	}
}

// ReportStdError reports a plain Go error such as a failure to read a
// source file.
func ReportStdError(err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel >= LogLevelError {
		displayStdError(err)
	}
}

// ReportFatal reports an unrecoverable toolchain error and exits.
func ReportFatal(msg string) {
	displayFatal(msg)
	os.Exit(1)
}

// DisplayInfoMessage displays a tagged informational message if the log
// level is verbose.
func DisplayInfoMessage(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelVerbose {
		displayInfoMessage(tag, msg)
	}
}
