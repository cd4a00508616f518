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
	"errors"
	"reflect"

	"github.com/lunarch/selene/graphql/ast"
)

//===----------------------------------------------------------------------------------------====//
// Enum type builder
//===----------------------------------------------------------------------------------------====//
// Some leaf values of requests and input values are enums. GraphQL serializes an enum value as
// the name of its case; internally a service may represent it with any host type, so a finalized
// enum carries an encoder that maps a host runtime value to one of its declared cases.
//
// Reference: https://spec.graphql.org/October2021/#sec-Enums

// EnumValueConfig provides the definition of a single case when defining an enum.
type EnumValueConfig struct {
	// Name of the case
	Name string

	// Description of the case
	Description string

	// Deprecation is non-nil when the case is tagged as deprecated.
	Deprecation *Deprecation
}

// EnumValue is a finalized case of an enum type.
type EnumValue struct {
	config EnumValueConfig
}

// Name of the enum value.
func (value *EnumValue) Name() string {
	return value.config.Name
}

// Description of the enum value.
func (value *EnumValue) Description() string {
	return value.config.Description
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (value *EnumValue) Deprecation() *Deprecation {
	return value.config.Deprecation
}

// IsDeprecated returns true if this value is deprecated.
func (value *EnumValue) IsDeprecated() bool {
	return value.config.Deprecation.Defined()
}

// EnumResultCoercer encodes a host runtime value into one of the declared cases of an enum.
type EnumResultCoercer interface {
	Coerce(value interface{}) (*EnumValue, error)
}

// EnumResultCoercerFunc is an adapter to allow the use of ordinary functions as
// EnumResultCoercer.
type EnumResultCoercerFunc func(value interface{}) (*EnumValue, error)

// Coerce calls f(value).
func (f EnumResultCoercerFunc) Coerce(value interface{}) (*EnumValue, error) {
	return f(value)
}

// EnumResultCoercerFunc implements EnumResultCoercer.
var _ EnumResultCoercer = EnumResultCoercerFunc(nil)

// EnumBuilder accumulates the definition of an enum type. Methods return the receiver so
// definitions chain; errors are collected and reported by Build.
type EnumBuilder struct {
	name        string
	description string
	values      []EnumValueConfig
}

// NewEnum starts the definition of an enum type with the given name.
func NewEnum(name string) *EnumBuilder {
	return &EnumBuilder{
		name: name,
	}
}

// Describe sets the description of the enum type.
func (b *EnumBuilder) Describe(description string) *EnumBuilder {
	b.description = description
	return b
}

// Value declares a case with the given name.
func (b *EnumBuilder) Value(name string) *EnumBuilder {
	return b.ValueWith(EnumValueConfig{
		Name: name,
	})
}

// ValueWith declares a case from a full EnumValueConfig, for cases that carry a description or a
// deprecation.
func (b *EnumBuilder) ValueWith(config EnumValueConfig) *EnumBuilder {
	b.values = append(b.values, config)
	return b
}

// Build finalizes the definition into an Enum, closing it with an encoder from the host value
// domain to the declared cases. A nil coercer selects the default one, which looks the case up by
// name from a string-like value. Case names must be unique within the enum.
func (b *EnumBuilder) Build(coercer EnumResultCoercer) (*Enum, error) {
	if len(b.name) == 0 {
		return nil, NewError("Must provide name for Enum.")
	}

	enum := &Enum{
		name:        b.name,
		description: b.description,
		values:      make([]*EnumValue, 0, len(b.values)),
		nameMap:     make(map[string]*EnumValue, len(b.values)),
	}

	for _, config := range b.values {
		if len(config.Name) == 0 {
			return nil, NewError(`Must provide name for value of Enum "` + b.name + `".`)
		}
		if _, exists := enum.nameMap[config.Name]; exists {
			return nil, NewError(`Duplicate value "` + config.Name + `" on Enum "` + b.name + `".`)
		}

		value := &EnumValue{config: config}
		enum.values = append(enum.values, value)
		enum.nameMap[config.Name] = value
	}

	if coercer == nil {
		coercer = lookupByNameCoercer{enum}
	}
	enum.resultCoercer = coercer

	return enum, nil
}

// MustBuild is a convenience method equivalent to Build but panics on failure instead of
// returning an error.
func (b *EnumBuilder) MustBuild(coercer EnumResultCoercer) *Enum {
	enum, err := b.Build(coercer)
	if err != nil {
		panic(err)
	}
	return enum
}

// Enum is a finalized enum type. It is immutable once built and safe for concurrent read-only
// use.
type Enum struct {
	name          string
	description   string
	values        []*EnumValue
	nameMap       map[string]*EnumValue
	resultCoercer EnumResultCoercer
}

// Name of the enum type.
func (e *Enum) Name() string {
	return e.name
}

// Description of the enum type.
func (e *Enum) Description() string {
	return e.description
}

// Values returns all cases defined in this enum type in declaration order.
func (e *Enum) Values() []*EnumValue {
	return e.values
}

// Value finds the case with the given name, or nil if there's no such one.
func (e *Enum) Value(name string) *EnumValue {
	return e.nameMap[name]
}

// CoerceResultValue encodes a host runtime value through the enum's coercer and returns the name
// of the matched case, which is the wire representation of an enum.
func (e *Enum) CoerceResultValue(value interface{}) (interface{}, error) {
	enumValue, err := e.resultCoercer.Coerce(value)
	if err != nil {
		return nil, err
	}
	return enumValue.Name(), nil
}

// These are ordinary errors instead of coercion errors to let the caller present a default
// message to the user instead of these internal details.
var (
	errInvalidEnumValue  = errors.New("invalid enum value")
	errEnumValueNotFound = errors.New("not a value for the type")
)

// CoerceArgumentValue coerces an input-value literal naming one of the enum's cases into that
// case.
func (e *Enum) CoerceArgumentValue(value ast.Value) (*EnumValue, error) {
	if value, ok := value.(ast.EnumValue); ok {
		if enumValue := e.Value(value.Name); enumValue != nil {
			return enumValue, nil
		}
		return nil, errEnumValueNotFound
	}
	return nil, errInvalidEnumValue
}

// lookupByNameCoercer is the default EnumResultCoercer: it expects a string-like result value and
// returns the case whose name matches it.
type lookupByNameCoercer struct {
	enum *Enum
}

var errNoSuchEnumForName = errors.New("no enum value matches the name")

// Coerce implements EnumResultCoercer.
func (coercer lookupByNameCoercer) Coerce(value interface{}) (*EnumValue, error) {
	enum := coercer.enum

	// Quick path for a string.
	name, ok := value.(string)
	if !ok {
		// Maybe value is some type that aliases a string.
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.String {
			// We have no idea.
			return nil, NewCoercionError(
				"Enum %s cannot represent result value of type %T", enum.Name(), value)
		}
		name = v.String()
	}

	if enumValue := enum.Value(name); enumValue != nil {
		return enumValue, nil
	}

	return nil, NewError(
		`Enum `+enum.Name()+` cannot represent result value "`+name+`"`,
		ErrKindCoercion, errNoSuchEnumForName)
}
