package types

import "fmt"

type ErrorKind int

const (
	ErrorKindAlreadyExists ErrorKind = iota + 1
	ErrorKindNotFound
	ErrorKindFormat
	ErrorKindInvalidType
	ErrorKindType
	ErrorKindArity
	ErrorKindMissingPredicate
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindAlreadyExists:
		return "already exists"
	case ErrorKindNotFound:
		return "not found"
	case ErrorKindFormat:
		return "format"
	case ErrorKindInvalidType:
		return "invalid type"
	case ErrorKindType:
		return "type"
	case ErrorKindArity:
		return "arity"
	case ErrorKindMissingPredicate:
		return "missing predicate"
	}
	return "unknown"
}

type TdbError struct {
	msg  string
	kind ErrorKind
}

func NewError(kind ErrorKind, format string, args ...any) *TdbError {
	return &TdbError{msg: fmt.Sprintf(format, args...), kind: kind}
}

func (e *TdbError) Error() string   { return e.msg }
func (e *TdbError) Kind() ErrorKind { return e.kind }

// Is matches any TdbError of the same kind, so errors.Is(err, ErrNotFound) works.
func (e *TdbError) Is(target error) bool {
	t, ok := target.(*TdbError)
	return ok && t.kind == e.kind
}

var (
	ErrAlreadyExists    = &TdbError{msg: "already exists", kind: ErrorKindAlreadyExists}
	ErrNotFound         = &TdbError{msg: "not found", kind: ErrorKindNotFound}
	ErrFormat           = &TdbError{msg: "invalid format", kind: ErrorKindFormat}
	ErrInvalidType      = &TdbError{msg: "invalid type", kind: ErrorKindInvalidType}
	ErrType             = &TdbError{msg: "type mismatch", kind: ErrorKindType}
	ErrArity            = &TdbError{msg: "wrong number of values", kind: ErrorKindArity}
	ErrMissingPredicate = &TdbError{msg: "where clause required", kind: ErrorKindMissingPredicate}
)
