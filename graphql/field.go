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

// ArgumentValues carries the coerced argument values handed to a field resolver, keyed by
// argument name.
type ArgumentValues map[string]interface{}

// Get looks up the value for an argument.
func (values ArgumentValues) Get(name string) (interface{}, bool) {
	value, ok := values[name]
	return value, ok
}

// FieldResolver resolves the value of a field during execution. A resolver is a pure mapping from
// the parent value, the coerced argument values and the selection set nested in the field to a
// result value (or an error); it must not retain or mutate its inputs.
type FieldResolver interface {
	Resolve(source interface{}, args ArgumentValues, selectionSet ast.SelectionSet) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(source interface{}, args ArgumentValues, selectionSet ast.SelectionSet) (interface{}, error)

// Resolve calls f(source, args, selectionSet).
func (f FieldResolverFunc) Resolve(
	source interface{},
	args ArgumentValues,
	selectionSet ast.SelectionSet) (interface{}, error) {
	return f(source, args, selectionSet)
}

// FieldResolverFunc implements FieldResolver.
var _ FieldResolver = FieldResolverFunc(nil)

// FieldConfig provides the definition of a field when defining an object.
type FieldConfig struct {
	// Name of the defining field
	Name string

	// Description of the defining field
	Description string

	// Type of value yielded by the field
	Type TypeRef

	// Args lists the definitions of arguments the field takes.
	Args []ArgumentConfig

	// Resolver for resolving the field value during execution
	Resolver FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// Field is the finalized definition of a field in an object type. It yields a value of a specific
// type.
//
// Reference: https://spec.graphql.org/October2021/#sec-Objects
type Field struct {
	config FieldConfig
	args   []*Argument
}

// Name of the field.
func (f *Field) Name() string {
	return f.config.Name
}

// Description of the field.
func (f *Field) Description() string {
	return f.config.Description
}

// Type of value yielded by the field.
func (f *Field) Type() TypeRef {
	return f.config.Type
}

// Args specifies the definitions of arguments taken when querying this field.
func (f *Field) Args() []*Argument {
	return f.args
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *Field) Deprecation() *Deprecation {
	return f.config.Deprecation
}

// IsDeprecated returns true if this field is deprecated.
func (f *Field) IsDeprecated() bool {
	return f.config.Deprecation.Defined()
}
