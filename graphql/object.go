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

//===----------------------------------------------------------------------------------------====//
// Object type builder
//===----------------------------------------------------------------------------------------====//
// An object type is described once at program start by chaining field definitions onto a builder.
// The finalized Object keeps two parallel structures: plain field metadata for introspection, and
// a resolver table keyed by field name for execution.
//
// Reference: https://spec.graphql.org/October2021/#sec-Objects

// ObjectBuilder accumulates the definition of an object type. Methods return the receiver so
// definitions chain; errors are collected and reported by Build.
type ObjectBuilder struct {
	name        string
	description string
	fields      []FieldConfig
}

// NewObject starts the definition of an object type with the given name.
func NewObject(name string) *ObjectBuilder {
	return &ObjectBuilder{
		name: name,
	}
}

// Describe sets the description of the object type.
func (b *ObjectBuilder) Describe(description string) *ObjectBuilder {
	b.description = description
	return b
}

// Field appends a field with the given name, result type and resolver.
func (b *ObjectBuilder) Field(name string, t TypeRef, resolver FieldResolver) *ObjectBuilder {
	return b.FieldWith(FieldConfig{
		Name:     name,
		Type:     t,
		Resolver: resolver,
	})
}

// FieldWith appends a field from a full FieldConfig, for fields that carry a description,
// arguments or a deprecation.
func (b *ObjectBuilder) FieldWith(config FieldConfig) *ObjectBuilder {
	b.fields = append(b.fields, config)
	return b
}

// Build finalizes the definition into an Object. Within one object type field names must be
// unique; a duplicate is a programming error and is refused here rather than silently merged.
func (b *ObjectBuilder) Build() (*Object, error) {
	if len(b.name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}

	object := &Object{
		name:        b.name,
		description: b.description,
		fields:      make([]*Field, 0, len(b.fields)),
		fieldMap:    make(map[string]*Field, len(b.fields)),
		resolvers:   make(map[string]FieldResolver, len(b.fields)),
	}

	for _, config := range b.fields {
		if len(config.Name) == 0 {
			return nil, NewError(`Must provide name for field of Object "` + b.name + `".`)
		}
		if config.Type == nil {
			return nil, NewError(`Must provide type for field "` + config.Name + `" of Object "` + b.name + `".`)
		}
		if _, exists := object.fieldMap[config.Name]; exists {
			return nil, NewError(`Duplicate field "` + config.Name + `" on Object "` + b.name + `".`)
		}

		args, err := buildArguments(`field "`+config.Name+`" of Object "`+b.name+`"`, config.Args)
		if err != nil {
			return nil, err
		}

		field := &Field{
			config: config,
			args:   args,
		}
		object.fields = append(object.fields, field)
		object.fieldMap[config.Name] = field
		if config.Resolver != nil {
			object.resolvers[config.Name] = config.Resolver
		}
	}

	return object, nil
}

// MustBuild is a convenience method equivalent to Build but panics on failure instead of
// returning an error.
func (b *ObjectBuilder) MustBuild() *Object {
	object, err := b.Build()
	if err != nil {
		panic(err)
	}
	return object
}

// Object is a finalized object type. It is immutable once built and safe for concurrent read-only
// use.
type Object struct {
	name        string
	description string
	fields      []*Field
	fieldMap    map[string]*Field
	resolvers   map[string]FieldResolver
}

// Name of the object type.
func (o *Object) Name() string {
	return o.name
}

// Description of the object type.
func (o *Object) Description() string {
	return o.description
}

// Fields returns the fields of the object in declaration order.
func (o *Object) Fields() []*Field {
	return o.fields
}

// Field finds the field with the given name, or nil if there's no such one.
func (o *Object) Field(name string) *Field {
	return o.fieldMap[name]
}

// Resolver returns the resolver registered for the named field, or nil when the field doesn't
// exist or carries no resolver.
func (o *Object) Resolver(name string) FieldResolver {
	return o.resolvers[name]
}
