package errors

import (
	"os"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// PrintError formats err with the default formatter and writes it to stderr.
func PrintError(err error) {
	if err == nil {
		return
	}
	_, _ = os.Stderr.WriteString(Format(err, DefaultFormatterConfig()) + newline)
}

// CheckErrorPrintAndExit prints the error and exits with the error's exit code.
func CheckErrorPrintAndExit(err error) {
	if err == nil {
		return
	}

	CaptureError(err)
	PrintError(err)

	// revive:disable-next-line:deep-exit
	Exit(GetExitCode(err))
}

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
