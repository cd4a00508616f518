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

package ast

//===----------------------------------------------------------------------------------------====//
// 2.11 Type References
//===----------------------------------------------------------------------------------------====//
// GraphQL describes the types of data expected by query variables with a named type, a list type
// or a non-null wrapping of either. A type without the non-null wrapper is nullable.
//
// Reference: https://spec.graphql.org/October2021/#sec-Type-References

// Type represents a reference to a GraphQL type. Nesting is unbounded: a list's element is any
// Type, while a non-null wrapper only ever wraps a named or a list type.
type Type interface {
	Node

	// typeNode is a special mark to indicate a Type node. It makes sure that only type nodes can be
	// assigned to Type.
	typeNode()
}

var (
	_ Type = NamedType{}
	_ Type = ListType{}
	_ Type = NonNullType{}
)

// NamedType refers to a type by name.
type NamedType struct {
	Name string
}

func (NamedType) astNode()  {}
func (NamedType) typeNode() {}

// ListType wraps an element type into a list.
type ListType struct {
	ItemType Type
}

func (ListType) astNode()  {}
func (ListType) typeNode() {}

// NonNullType strips nullability from the wrapped type. The wrapped type is a NamedType or a
// ListType, never another NonNullType.
type NonNullType struct {
	Type Type
}

func (NonNullType) astNode()  {}
func (NonNullType) typeNode() {}
