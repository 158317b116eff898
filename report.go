package e57

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Verbosity selects how much detail Report writes.
type Verbosity int32

const (
	// Quiet writes only the banner line with the code description.
	Quiet Verbosity = iota
	// Verbose additionally writes the context, the originating function,
	// and editor-linkable source location lines.
	Verbose
)

var reportingVerbosity atomic.Int32

// SetVerbosity sets the process-wide reporting verbosity. The default is
// Quiet. It is expected to be set once during initialization; the setting
// is stored atomically so a late change is still safe.
func SetVerbosity(v Verbosity) {
	reportingVerbosity.Store(int32(v))
}

// ReportingVerbosity returns the current reporting verbosity.
func ReportingVerbosity() Verbosity {
	return Verbosity(reportingVerbosity.Load())
}

// Report writes a human-readable summary of the exception to w. The
// reporting arguments identify where the exception was finally handled;
// pass "" and 0 if unknown. Report never fails: a nil writer is a no-op
// and write errors are discarded.
//
// In Verbose mode the output includes two location lines formatted so a
// smart editor can interpret them as links to the source code: the first
// marks where the error occurred, the second where it was reported.
func (e *Exception) Report(reportingFile string, reportingLine int, reportingFunction string, w io.Writer) {
	if w == nil {
		return
	}

	fmt.Fprintf(w, "**** Got an e57 exception: %s\n", Describe(e.code))

	if ReportingVerbosity() != Verbose {
		return
	}

	fmt.Fprintln(w, "  Debug info: ")
	fmt.Fprintf(w, "    context: %s\n", e.context)
	fmt.Fprintf(w, "    sourceFunctionName: %s\n", e.sourceFunctionName)
	if reportingFunction != "" {
		fmt.Fprintf(w, "    reportingFunctionName: %s\n", reportingFunction)
	}

	fmt.Fprintf(w, "%s(%d) : error C%d:  <--- occurred on\n", e.sourceFileName, e.sourceLineNumber, int(e.code))
	if reportingFile != "" {
		fmt.Fprintf(w, "%s(%d) : error C0:  <--- reported on\n", reportingFile, reportingLine)
	}
}
