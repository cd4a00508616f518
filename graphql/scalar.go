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
	"github.com/lunarch/selene/graphql/ast"
)

//===----------------------------------------------------------------------------------------====//
// Scalar resolution contract
//===----------------------------------------------------------------------------------------====//
// A scalar type is described by a pair of coercers: one serializing host values for the execution
// result, one parsing values supplied as query variables or as argument literals.
//
// Reference: https://spec.graphql.org/October2021/#sec-Scalars

// ScalarResultCoercer serializes a host value for return in the execution result.
type ScalarResultCoercer interface {
	CoerceResultValue(value interface{}) (interface{}, error)
}

// ScalarResultCoercerFunc is an adapter to allow the use of ordinary functions as
// ScalarResultCoercer.
type ScalarResultCoercerFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f ScalarResultCoercerFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// ScalarResultCoercerFunc implements ScalarResultCoercer.
var _ ScalarResultCoercer = ScalarResultCoercerFunc(nil)

// ScalarInputCoercer parses values given to a scalar input: either a variable value decoded from
// the request, or an input-value literal from the document.
type ScalarInputCoercer interface {
	// CoerceVariableValue coerces a value read from a query variable.
	CoerceVariableValue(value interface{}) (interface{}, error)

	// CoerceArgumentValue coerces a value from an input-value literal in the document.
	CoerceArgumentValue(value ast.Value) (interface{}, error)
}

// defaultScalarInputCoercer is used for a scalar that doesn't provide an input coercer: variable
// values pass through untouched, literals are rejected.
type defaultScalarInputCoercer struct {
	scalar *Scalar
}

var _ ScalarInputCoercer = defaultScalarInputCoercer{}

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer defaultScalarInputCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return value, nil
}

// CoerceArgumentValue implements ScalarInputCoercer.
func (coercer defaultScalarInputCoercer) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return nil, NewError("coercer for the input type " + coercer.scalar.Name() + " was not provided")
}

// ScalarConfig provides the specification to define a scalar type.
type ScalarConfig struct {
	// Name of the scalar type
	Name string

	// Description of the scalar type
	Description string

	// ResultCoercer serializes values for return in the execution result (required).
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input values given to the scalar (optional).
	InputCoercer ScalarInputCoercer
}

// Scalar is a finalized scalar type. It is immutable once built and safe for concurrent read-only
// use.
type Scalar struct {
	config ScalarConfig
}

// NewScalar defines a scalar type from a ScalarConfig.
func NewScalar(config ScalarConfig) (*Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}
	if config.ResultCoercer == nil {
		return nil, NewError(`Must provide result coercer for Scalar "` + config.Name + `".`)
	}

	scalar := &Scalar{config: config}
	if config.InputCoercer == nil {
		scalar.config.InputCoercer = defaultScalarInputCoercer{scalar}
	}
	return scalar, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead
// of returning an error.
func MustNewScalar(config ScalarConfig) *Scalar {
	scalar, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return scalar
}

// Name of the scalar type.
func (s *Scalar) Name() string {
	return s.config.Name
}

// Description of the scalar type.
func (s *Scalar) Description() string {
	return s.config.Description
}

// CoerceResultValue serializes a host value through the scalar's result coercer.
func (s *Scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.config.ResultCoercer.CoerceResultValue(value)
}

// CoerceVariableValue parses a value read from a query variable.
func (s *Scalar) CoerceVariableValue(value interface{}) (interface{}, error) {
	return s.config.InputCoercer.CoerceVariableValue(value)
}

// CoerceArgumentValue parses a value from an input-value literal in the document.
func (s *Scalar) CoerceArgumentValue(value ast.Value) (interface{}, error) {
	return s.config.InputCoercer.CoerceArgumentValue(value)
}
