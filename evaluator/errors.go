package evaluator

import (
	"errors"
	"fmt"

	"github.com/t14raptor/fastscript/token"
)

// ErrorKind classifies a RuntimeError.
type ErrorKind int

const (
	_ ErrorKind = iota
	UnresolvedIdentifier
	TypeError
	ReferenceError
	RangeError
	// ScriptThrow is an explicit `throw`, or a failed native call.
	ScriptThrow
	// Interrupted is raised when the interrupt hook returns an error. Scripts
	// cannot catch it.
	Interrupted
)

var (
	ErrUnresolvedIdentifier = errors.New("unresolved identifier")
	ErrTypeError            = errors.New("type error")
	ErrReferenceError       = errors.New("reference error")
	ErrRangeError           = errors.New("range error")
	ErrScriptThrow          = errors.New("uncaught exception")
	ErrInterrupted          = errors.New("interrupted")
)

var kindSentinels = map[ErrorKind]error{
	UnresolvedIdentifier: ErrUnresolvedIdentifier,
	TypeError:            ErrTypeError,
	ReferenceError:       ErrReferenceError,
	RangeError:           ErrRangeError,
	ScriptThrow:          ErrScriptThrow,
	Interrupted:          ErrInterrupted,
}

func (k ErrorKind) String() string {
	switch k {
	case UnresolvedIdentifier:
		return "UnresolvedIdentifier"
	case TypeError:
		return "TypeError"
	case ReferenceError:
		return "ReferenceError"
	case RangeError:
		return "RangeError"
	case ScriptThrow:
		return "ScriptThrow"
	case Interrupted:
		return "Interrupted"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// constructorName is the script-visible error constructor for the kind.
func (k ErrorKind) constructorName() string {
	switch k {
	case TypeError:
		return "TypeError"
	case ReferenceError, UnresolvedIdentifier:
		return "ReferenceError"
	case RangeError:
		return "RangeError"
	}
	return "Error"
}

// RuntimeError is an error raised while evaluating a program.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
	// Position is where the error was raised; it is invalid for errors
	// raised by host code outside any script position.
	Position token.Position
	// Value is the thrown script value: the payload of a `throw`, or the
	// Error object that scripts see for runtime-raised errors.
	Value Value

	cause error
}

func (e *RuntimeError) Error() string {
	var msg string
	switch e.Kind {
	case ScriptThrow:
		msg = "Uncaught " + e.Message
	case Interrupted:
		msg = "Interrupted: " + e.Message
	default:
		msg = e.Kind.constructorName() + ": " + e.Message
	}
	if e.Position.IsValid() {
		return fmt.Sprintf("%s: %s", e.Position, msg)
	}
	return msg
}

func (e *RuntimeError) Unwrap() error {
	return e.cause
}

// Is matches the sentinel of the error's kind.
func (e *RuntimeError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// NewError returns a RuntimeError of the given kind for a native function
// to return. Scripts see it as an instance of the matching Error
// constructor.
func NewError(kind ErrorKind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Throw returns an error that, returned from a native function, throws v in
// the calling script.
func Throw(v Value) error {
	return &RuntimeError{Kind: ScriptThrow, Message: describe(v), Value: v}
}

// describe renders a thrown value for an error message.
func describe(v Value) string {
	if o := v.Object(); o != nil && o.class == classError {
		return o.display(0)
	}
	if v.IsString() {
		return v.string()
	}
	return Inspect(v)
}
