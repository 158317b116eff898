// Package e57 is the error-reporting core of an E57 file-format library.
//
// Every fallible operation in the surrounding library signals failure by
// returning a single *Exception carrying the most specific applicable
// ErrorCode plus optional diagnostic context and the source location where
// the failure was detected. Two codes are reserved for every operation,
// whether documented or not: ErrImageFileNotOpen and ErrInternal. Unless an
// operation documents a narrower guarantee, the post-condition on failure
// is that all objects are left unchanged.
package e57

import (
	"fmt"
	"runtime"
	"strings"
)

const categoryLabel = "E57 exception"

// Exception transports an ErrorCode plus diagnostic context across a
// failure boundary. It is constructed once at the failure site and is
// immutable afterward; concurrent reads are safe.
type Exception struct {
	code               ErrorCode
	context            string
	sourceFileName     string
	sourceFunctionName string
	sourceLineNumber   int
}

// New returns an Exception with no source location. The context string is
// free form; by convention it is a sequence of "NAME=VALUE" fragments.
func New(code ErrorCode, context string) *Exception {
	return &Exception{
		code:    code,
		context: context,
	}
}

// NewAt returns an Exception with an explicit source location. sourceFile
// is normalized to its final path component so diagnostics do not leak
// build-machine paths; both forward and backslash separators are accepted.
func NewAt(code ErrorCode, context, sourceFile string, sourceLine int, sourceFunction string) *Exception {
	return &Exception{
		code:               code,
		context:            context,
		sourceFileName:     baseName(sourceFile),
		sourceFunctionName: sourceFunction,
		sourceLineNumber:   sourceLine,
	}
}

// Here returns an Exception whose source location is the caller of Here.
func Here(code ErrorCode, context string) *Exception {
	return atCaller(code, context)
}

// Internal constructs the Exception reserved for unrecoverable internal
// inconsistencies, located at the caller. Every operation in the library
// may return it, whether or not its documentation says so.
func Internal(context string) *Exception {
	return atCaller(ErrInternal, context)
}

// NotOpen constructs the Exception reserved for operations invoked after
// the owning ImageFile was closed, located at the caller. Like Internal,
// it may be returned by any operation in the library.
func NotOpen(context string) *Exception {
	return atCaller(ErrImageFileNotOpen, context)
}

func atCaller(code ErrorCode, context string) *Exception {
	ex := &Exception{
		code:    code,
		context: context,
	}

	// Skip atCaller and its exported wrapper.
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return ex
	}

	ex.sourceFileName = baseName(file)
	ex.sourceLineNumber = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		ex.sourceFunctionName = shortFuncName(fn.Name())
	}

	return ex
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}

	return path
}

// shortFuncName reduces "codeberg.org/pointwerk/e57/journal.(*service).Record"
// to "(*service).Record".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}

	return name
}

func (e *Exception) Error() string {
	if e.context != "" {
		return fmt.Sprintf("%s: %s: %s", categoryLabel, Describe(e.code), e.context)
	}

	return fmt.Sprintf("%s: %s", categoryLabel, Describe(e.code))
}

// Is reports whether target is an Exception carrying the same ErrorCode,
// so errors.Is can match against a sentinel constructed with New.
func (e *Exception) Is(target error) bool {
	other, ok := target.(*Exception)

	return ok && other.code == e.code
}

// Code returns the ErrorCode associated with the exception.
func (e *Exception) Code() ErrorCode {
	return e.code
}

// Context returns the free-form diagnostic string captured at the failure
// site. Its format is not standardized, but most sites write a sequence of
// "NAME=VALUE" fragments.
func (e *Exception) Context() string {
	return e.context
}

// SourceFileName returns the final path component of the file where the
// exception was constructed, or "" if unknown.
func (e *Exception) SourceFileName() string {
	return e.sourceFileName
}

// SourceFunctionName returns the function where the exception was
// constructed, or "" if unknown.
func (e *Exception) SourceFunctionName() string {
	return e.sourceFunctionName
}

// SourceLineNumber returns the line where the exception was constructed,
// or 0 if unknown.
func (e *Exception) SourceLineNumber() int {
	return e.sourceLineNumber
}

// Category returns "E57 exception" regardless of the ErrorCode, letting a
// generic handler distinguish this library's failures from unrelated ones
// without inspecting the code.
func (e *Exception) Category() string {
	return categoryLabel
}
