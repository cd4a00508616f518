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
// Type references
//===----------------------------------------------------------------------------------------====//
// Schema metadata refers to types by reference: a name, a list wrapping, or a non-null wrapping.
// A reference without the non-null wrapper is nullable. References are descriptive values only;
// binding them to actual type instances is the concern of whoever assembles a schema.

// TypeRef is a reference to a GraphQL type composed of named, list and non-null wrappings.
type TypeRef interface {
	// String renders the reference in GraphQL notation, e.g. "[User!]!".
	String() string

	// typeRef is a special mark to make sure only type references can be assigned to TypeRef.
	typeRef()
}

var (
	_ TypeRef = namedTypeRef{}
	_ TypeRef = listTypeRef{}
	_ TypeRef = nonNullTypeRef{}
)

type namedTypeRef struct {
	name string
}

func (ref namedTypeRef) String() string { return ref.name }
func (namedTypeRef) typeRef()           {}

type listTypeRef struct {
	itemType TypeRef
}

func (ref listTypeRef) String() string { return "[" + ref.itemType.String() + "]" }
func (listTypeRef) typeRef()           {}

type nonNullTypeRef struct {
	innerType TypeRef
}

func (ref nonNullTypeRef) String() string { return ref.innerType.String() + "!" }
func (nonNullTypeRef) typeRef()           {}

// NamedTypeOf creates a reference to the type with the given name.
func NamedTypeOf(name string) TypeRef {
	return namedTypeRef{name: name}
}

// ListOf wraps a type reference into a list.
func ListOf(itemType TypeRef) TypeRef {
	return listTypeRef{itemType: itemType}
}

// NonNullOf strips nullability from a named or list type reference. Wrapping a reference that is
// already non-null is a programming error.
func NonNullOf(innerType TypeRef) TypeRef {
	if _, ok := innerType.(nonNullTypeRef); ok {
		panic("cannot wrap a non-null type reference in another non-null")
	}
	return nonNullTypeRef{innerType: innerType}
}

//===----------------------------------------------------------------------------------------====//
// Deprecation
//===----------------------------------------------------------------------------------------====//

// Deprecation tags a field or an enum value as no longer supported.
type Deprecation struct {
	// Reason provides a description of why the subject is deprecated.
	Reason string
}

// Defined returns true if the deprecation is active.
func (d *Deprecation) Defined() bool {
	return d != nil
}
