/**
 * Copyright (c) 2024, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"

	"github.com/lunarch/selene/graphql/source"

	jsoniter "github.com/json-iterator/go"
)

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther      ErrKind = iota // Unclassified error
	ErrKindSyntax                    // The grammar rejected the input.
	ErrKindIncomplete                // The grammar matched a prefix of the input but bytes remained.
	ErrKindCoercion                  // Failed to coerce input or result values for the desired GraphQL type.
	ErrKindInternal                  // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindSyntax:
		return "syntax error"
	case ErrKindIncomplete:
		return "incomplete parsing error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// ErrorLocation contains a line number and a column number to point out the beginning of an
// associated syntax element.
type ErrorLocation struct {
	// Both line and column are positive numbers starting from 1
	Line   uint `json:"line"`
	Column uint `json:"column"`
}

// Error is the error type reported by this library. It carries a message, a kind, optional source
// locations, and an optional underlying error.
type Error struct {
	// Message describes the error for human consumption.
	Message string

	// Kind classifies the error.
	Kind ErrKind

	// Locations points at the syntax elements the error is associated with; nil when the error has no
	// source association.
	Locations []ErrorLocation

	// Remainder holds the unconsumed input for an ErrKindIncomplete error; empty otherwise.
	Remainder string

	// The underlying error that triggered this one, if any.
	Err error
}

var _ error = (*Error)(nil)

// Error implements Go's error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON serializes the error into the GraphQL response error format.
//
// Reference: https://spec.graphql.org/October2021/#sec-Errors.Error-result-format
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message   string          `json:"message"`
		Locations []ErrorLocation `json:"locations,omitempty"`
	}{
		Message:   e.Message,
		Locations: e.Locations,
	})
}

// NewError creates an Error from a message and a list of optional arguments. Each argument is
// examined by type: an ErrKind classifies the error, an []ErrorLocation attaches locations, and an
// error is recorded as the underlying cause (inheriting its kind and locations when the message
// doesn't override them).
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrKind:
			e.Kind = arg
		case []ErrorLocation:
			e.Locations = arg
		case ErrorLocation:
			e.Locations = append(e.Locations, arg)
		case *Error:
			e.Err = arg
			if e.Kind == ErrKindOther {
				e.Kind = arg.Kind
			}
			if e.Locations == nil {
				e.Locations = arg.Locations
			}
		case error:
			e.Err = arg
		default:
			panic(fmt.Sprintf("unexpected argument type %T given to NewError", arg))
		}
	}

	return e
}

// NewSyntaxError produces an error representing a parse failure, pointing at the position of the
// offending syntax in the source.
func NewSyntaxError(src *source.Source, offset int, description string) error {
	locationInfo := src.LocationInfoOf(offset)
	return &Error{
		Message: "Parse failure: " + description,
		Kind:    ErrKindSyntax,
		Locations: []ErrorLocation{
			{
				Line:   locationInfo.Line,
				Column: locationInfo.Column,
			},
		},
	}
}

// NewIncompleteParseError produces an error indicating that the grammar matched only a prefix of
// the source; remainder holds the trailing input that was not consumed.
func NewIncompleteParseError(src *source.Source, offset int) error {
	remainder := string(src.Body()[offset:])
	locationInfo := src.LocationInfoOf(offset)
	return &Error{
		Message:   fmt.Sprintf("Incomplete parsing error: %q remained", remainder),
		Kind:      ErrKindIncomplete,
		Remainder: remainder,
		Locations: []ErrorLocation{
			{
				Line:   locationInfo.Line,
				Column: locationInfo.Column,
			},
		},
	}
}

// NewCoercionError produces an error raised when a value cannot be represented in the desired
// GraphQL type.
func NewCoercionError(format string, a ...interface{}) error {
	return &Error{
		Message: fmt.Sprintf(format, a...),
		Kind:    ErrKindCoercion,
	}
}
