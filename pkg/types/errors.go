package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindLength      ErrKind = iota + 1 // requested size exceeds the representable/allocatable maximum
	ErrKindRange                          // checked index or position out of bounds
	ErrKindMemory                         // provider could not satisfy an allocation
	ErrKindConstruct                      // element construction failed mid-operation
	ErrKindState                          // invalid operation for current state (e.g., front of empty)
	ErrKindUnsupported                    // valid request the provider or platform cannot serve
	ErrKindProvider                       // two providers cannot exchange storage
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindLength:
		return "length"
	case ErrKindRange:
		return "range"
	case ErrKindMemory:
		return "memory"
	case ErrKindConstruct:
		return "construct"
	case ErrKindState:
		return "state"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindProvider:
		return "provider"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
//
// Two *Error values match under errors.Is when their kinds are equal, so a
// detailed error such as "seq.Reserve: 1<<62 exceeds max size" still satisfies
// errors.Is(err, ErrLength).
type Error struct {
	Kind ErrKind
	Op   string // operation that failed, e.g. "seq.Insert"
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrLength indicates a size request above MaxSize. Never silently clamped.
	ErrLength = &Error{Kind: ErrKindLength, Msg: "length exceeds maximum size"}
	// ErrOutOfRange indicates a checked index or position outside the live range.
	ErrOutOfRange = &Error{Kind: ErrKindRange, Msg: "index out of range"}
	// ErrOutOfMemory indicates the provider could not supply a block.
	ErrOutOfMemory = &Error{Kind: ErrKindMemory, Msg: "out of memory"}
	// ErrConstruct indicates an element construction failed and was rolled back.
	ErrConstruct = &Error{Kind: ErrKindConstruct, Msg: "element construction failed"}
	// ErrEmpty indicates front/back/pop on an empty sequence.
	ErrEmpty = &Error{Kind: ErrKindState, Msg: "sequence is empty"}
	// ErrProviderMismatch indicates two sequences whose providers cannot exchange storage.
	ErrProviderMismatch = &Error{Kind: ErrKindProvider, Msg: "providers are not interchangeable"}
	// ErrUnsupported indicates a provider or platform limitation.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported"}
)

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrKind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches kind and op to err. A nil err yields nil.
// If err already carries a kind, that kind wins so the original
// classification survives re-wrapping at outer layers.
func Wrap(kind ErrKind, op string, err error) error {
	if err == nil {
		return nil
	}
	if k, ok := KindOf(err); ok {
		kind = k
	}
	return &Error{Kind: kind, Op: op, Msg: kind.String() + " failure", Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
