package errors

import (
	// Go Internal Packages
	"errors"
	"fmt"
)

// Kind classifies an error so the transport boundary can map it to a
// status code without inspecting message strings.
type Kind uint8

const (
	Other        Kind = iota // unclassified, maps to a generic failure
	Invalid                  // malformed request or failed validation
	Unauthorized             // merchant or security-code rejection
	Declined                 // insufficient funds or credit
	NotFound                 // account or resource does not exist
	Unavailable              // downstream bank unavailable
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Unauthorized:
		return "unauthorized"
	case Declined:
		return "declined"
	case NotFound:
		return "not found"
	case Unavailable:
		return "unavailable"
	}
	return "other"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error from its arguments. Arguments may appear in any order,
// each recognized by type: Kind, string (message), error (cause).
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Kind:
			e.Kind = a
		case string:
			e.Message = a
		case error:
			e.Err = a
		}
	}
	return e
}

// New returns an *Error carrying only a message, for use as the innermost
// cause of an E chain.
func New(text string) error {
	return &Error{Message: text}
}

// KindOf reports the Kind of err, unwrapping as needed. Errors that did not
// come from this package report Other.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind != Other {
				return e.Kind
			}
			err = e.Err
			continue
		}
		err = errors.Unwrap(err)
	}
	return Other
}

// Is reports whether err carries the given Kind.
func Is(kind Kind, err error) bool {
	return KindOf(err) == kind
}

// Message returns the outermost message of err, used as the "error" field
// of error response bodies.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "An error occurred"
}

// Details returns the innermost cause message, used as the "details" field
// of error response bodies.
func Details(err error) string {
	var e *Error
	for errors.As(err, &e) && e.Err != nil {
		err = e.Err
	}
	return err.Error()
}
