// Package cipherr holds the error kinds returned by the cipher engines.
package cipherr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Format Kind = iota + 1
	Domain
	Algebraic
	Structural
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case Format:
		return "format"
	case Domain:
		return "domain"
	case Algebraic:
		return "algebraic"
	case Structural:
		return "structural"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is a caller-visible precondition failure. Message is meant to be shown as-is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches the kind sentinels below, so errors.Is(err, ErrFormat) works for any format error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

var (
	ErrFormat      = &Error{Kind: Format}
	ErrDomain      = &Error{Kind: Domain}
	ErrAlgebraic   = &Error{Kind: Algebraic}
	ErrStructural  = &Error{Kind: Structural}
	ErrUnsupported = &Error{Kind: Unsupported}
)

func newf(k Kind, format string, args ...any) error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

func Formatf(format string, args ...any) error      { return newf(Format, format, args...) }
func Domainf(format string, args ...any) error      { return newf(Domain, format, args...) }
func Algebraicf(format string, args ...any) error   { return newf(Algebraic, format, args...) }
func Structuralf(format string, args ...any) error  { return newf(Structural, format, args...) }
func Unsupportedf(format string, args ...any) error { return newf(Unsupported, format, args...) }

// KindOf reports the kind of err, or 0 when err is not a cipher error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}
