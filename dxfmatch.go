/*
Package dxfmatch is an incremental grammar-matching engine for streams of
typed (group code, value) tokens, as found in DXF-style tagged record files.

Consists of subpackages:
  - cmd/dxfgram: console utility checking grammar files and matching tag streams against them;
  - grammar: defines the immutable grammar tree (terminals, sequences, alternations, quantifiers) and its builder;
  - gramdef: converts grammar descriptions (written in a compact text notation) to grammar definitions;
  - matcher: defines the matching engine consuming one token at a time;
  - token: defines the typed token model and the group-code value-kind table;
  - tree: the committed parse tree produced by a successful match.

Typical usage is:

1. Describe the legal shape of a record, either as a grammar.NodeDef tree built
in Go or in the gramdef text notation.

2. Build the grammar once with grammar.Build (or gramdef.ParseString). The
built grammar is immutable and may be shared by any number of engines.

3. For each record, create a matcher.Engine, Feed it the record's tokens in
stream order, and call Finish to obtain the single committed parse tree or a
typed failure.
*/
package dxfmatch

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // used by grammar
	MatchErrors   = 101 // used by matcher
	TokenErrors   = 201 // used by token
	DefErrors     = 301 // used by gramdef
)

// Error is the error type used by dxfmatch subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including stream name and token position if provided.
	Message string

	// Stream contains the name of the token stream that caused this error or empty string.
	Stream string

	// Offset contains the zero-based ordinal of the offending token, -1 if not applicable.
	Offset int
}

// StreamPos is used to retrieve stream name and token position when constructing an error.
type StreamPos interface {
	// StreamName returns the token stream name or empty string.
	StreamName() string
	// Offset returns the zero-based token ordinal or -1.
	Offset() int
}

// NewError creates new Error structure.
// stream and offset will be added to error message if provided (non-empty name, offset >= 0).
func NewError(code int, msg, stream string, offset int) *Error {
	if stream != "" && offset >= 0 {
		msg += fmt.Sprintf(" in %s at token %d", stream, offset)
	}
	return &Error{code, msg, stream, offset}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no stream position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", -1)
}

// FormatErrorPos creates Error structure with stream position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos StreamPos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.StreamName(), pos.Offset())
}

// DiagSink receives non-fatal diagnostics (e.g. an unrecognized group code).
// Subpackages never log on their own; a caller wanting diagnostics attaches a
// sink where one is accepted.
type DiagSink interface {
	Report(e *Error)
}

// DiagFunc adapts a plain function to the DiagSink interface.
type DiagFunc func(e *Error)

func (f DiagFunc) Report(e *Error) {
	f(e)
}
