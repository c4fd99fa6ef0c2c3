package urn

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/urn/internal/errorutil"
)

// Error is a string type that implements the error interface.
// All sentinel errors returned by this package are of this type and can be
// matched with [errors.Is].
type Error string

func (e Error) Error() string { return string(e) }

// Parse and construction errors. Exactly one sentinel exists per detectable
// malformation; the first violated rule aborts construction.
const (
	// ErrInsufficientComponents is returned when the input contains fewer
	// than two ":" separators.
	ErrInsufficientComponents Error = "insufficient number of URN components"
	// ErrUnsupportedScheme is returned when the scheme component is not
	// case-insensitively equal to "urn".
	ErrUnsupportedScheme Error = "unsupported URN scheme"
	// ErrMissingNID is returned when the namespace identifier is empty.
	ErrMissingNID Error = "missing namespace identifier"
	// ErrNIDTooShort is returned when the namespace identifier is shorter
	// than 2 code points.
	ErrNIDTooShort Error = "invalid namespace identifier minimum length"
	// ErrNIDTooLong is returned when the namespace identifier is longer
	// than 30 code points.
	ErrNIDTooLong Error = "invalid namespace identifier maximum length"
	// ErrInvalidNIDChars is returned when the namespace identifier contains
	// a character outside alphanum / "-".
	ErrInvalidNIDChars Error = "invalid characters in namespace identifier"
	// ErrMissingNSS is returned when the namespace specific string is empty.
	ErrMissingNSS Error = "missing namespace specific string"
	// ErrInvalidNSSChars is returned when the namespace specific string
	// contains a character outside the permitted set.
	ErrInvalidNSSChars Error = "invalid characters in namespace specific string"
)

func newInsufficientComponentsErr(s string) error {
	return errorutil.NewWrapperError(ErrInsufficientComponents, "%q", s) //errtrace:skip
}

func newUnsupportedSchemeErr(s string) error {
	return errorutil.NewWrapperError(ErrUnsupportedScheme, "%q", s) //errtrace:skip
}

func newNIDLenErr(sentinel Error, s string, n int) error {
	return errorutil.NewWrapperError(sentinel, "%q is %d code points long", s, n) //errtrace:skip
}

func newInvalidNIDCharsErr(s string, c byte) error {
	return errorutil.NewWrapperError(ErrInvalidNIDChars, "%q in %q", c, s) //errtrace:skip
}

func newInvalidNSSCharsErr(s string, c byte) error {
	return errorutil.NewWrapperError(ErrInvalidNSSChars, "%q in %q", c, s) //errtrace:skip
}
