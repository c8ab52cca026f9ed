// Package errors provides the structured error type used across clippy.
//
// Every fatal condition carries a 32-bit status code in the HRESULT layout so
// that callers scripting the tool see the same code family regardless of which
// stage failed.
package errors

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the stage that failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindClipboard
	KindToolkit
	KindEncode
	KindScale
	KindIO
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindClipboard:
		return "clipboard error"
	case KindToolkit:
		return "imaging toolkit error"
	case KindEncode:
		return "encode error"
	case KindScale:
		return "scaler error"
	case KindIO:
		return "I/O error"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown error"
	}
}

// Code is a 32-bit status code in HRESULT layout.
type Code uint32

// Status codes reported by clippy.
const (
	EFail                   Code = 0x80004005
	EInvalidArg             Code = 0x80070057
	EAccessDenied           Code = 0x80070005
	EPathNotFound           Code = 0x80070003
	StreamWriteFault        Code = 0x8003001D
	CodecBadImage           Code = 0x88982F60
	CodecComponentNotFound  Code = 0x88982F50
	CodecSourceRectMismatch Code = 0x88982F80
)

// String formats the code as 0x followed by eight uppercase hex digits.
func (c Code) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// Error is the structured error type for clippy.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Stage that failed
	Code    Code   // Status code, zero if the wrapped error carries one
	Err     error  // Underlying error
	Context string // Human-readable message
}

// Error returns the message chain without the status code.
func (e *Error) Error() string {
	switch {
	case e.Context != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s", e.Context, e.Err)
	case e.Context != "":
		return e.Context
	case e.Err != nil:
		return e.Err.Error()
	}
	return e.Kind.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - Code: the status code
// - string: the human-readable message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case Code:
			e.Code = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil && e.Context == "" {
		e.Context = e.Kind.String()
	}
	return e
}

// Is reports whether any Error in err's chain is of the given Kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// GetKind returns the Kind of the outermost Error in the chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf returns the innermost non-zero status code in err's chain, or EFail
// when none is set.
func CodeOf(err error) Code {
	code := EFail
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			break
		}
		if e.Code != 0 {
			code = e.Code
		}
		err = e.Err
	}
	return code
}

// FromOS maps a filesystem error to a status code.
func FromOS(err error) Code {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return EAccessDenied
	case errors.Is(err, fs.ErrNotExist):
		return EPathNotFound
	default:
		return EFail
	}
}

// Line renders err as "<message>: HRESULT = 0x<code>".
func Line(err error) string {
	return fmt.Sprintf("%s: HRESULT = %s", err.Error(), CodeOf(err))
}

// Report writes the error line for err to w.
func Report(w io.Writer, err error) {
	fmt.Fprintln(w, Line(err))
}

// New and As re-export the standard helpers so callers need one import.
var (
	New = errors.New
	As  = errors.As
)
