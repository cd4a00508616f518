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

// Package ast defines the abstract syntax tree produced by parsing a GraphQL executable document.
//
// The tree is a plain value: nodes own their children, there are no cycles and no references back
// into the source text. The order of definitions, selections, arguments and object fields is
// preserved exactly as written; downstream consumers treat it as the evaluation order hint.
package ast

// Node is implemented by every node in the tree.
type Node interface {
	// astNode is a special mark to make sure only AST nodes can be assigned to Node.
	astNode()
}

//===----------------------------------------------------------------------------------------====//
// 2.2 Document
//===----------------------------------------------------------------------------------------====//
// A GraphQL Document describes a complete file or request string operated on by a GraphQL service
// or client. This package covers the executable subset: operations and fragments.
//
// Reference: https://spec.graphql.org/October2021/#sec-Document

// Document represents a GraphQL Document.
type Document struct {
	// Definitions defined in the document, in source order
	Definitions []Definition
}

var _ Node = Document{}

func (Document) astNode() {}

// Definition represents a GraphQL executable definition: an operation or a fragment.
//
// Reference: https://spec.graphql.org/October2021/#ExecutableDefinition
type Definition interface {
	Node

	// GetDirectives returns directives applied to the definition.
	GetDirectives() Directives

	// GetSelectionSet returns the set of fields the definition requests.
	GetSelectionSet() SelectionSet

	// definitionNode is a special mark to indicate a Definition node. It makes sure that only
	// definition nodes can be assigned to Definition.
	definitionNode()
}

var (
	_ Definition = (*OperationDefinition)(nil)
	_ Definition = (*FragmentDefinition)(nil)
)

//===----------------------------------------------------------------------------------------====//
// 2.3 Operations
//===----------------------------------------------------------------------------------------====//
// There are three types of operations that GraphQL models:
//
//	* query – a read-only fetch.
//	* mutation – a write followed by a fetch.
//	* subscription – a long-lived request that fetches data in response to source events.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Operations

// OperationType specifies the type of operation model.
type OperationType string

// Enumeration of OperationType
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// OperationDefinition represents a GraphQL operation.
//
// Reference: https://spec.graphql.org/October2021/#OperationDefinition
type OperationDefinition struct {
	// Type of the operation; OperationTypeQuery for the "{ ... }" shorthand
	Type OperationType

	// Name of the operation; empty for anonymous operations
	Name string

	// VariableDefinitions contains variables given to the operation
	VariableDefinitions []*VariableDefinition

	// Directives applied to the operation
	Directives Directives

	// SelectionSet specifies the set of fields to fetch.
	SelectionSet SelectionSet
}

func (*OperationDefinition) astNode()        {}
func (*OperationDefinition) definitionNode() {}

// GetDirectives implements Definition.
func (definition *OperationDefinition) GetDirectives() Directives {
	return definition.Directives
}

// GetSelectionSet implements Definition.
func (definition *OperationDefinition) GetSelectionSet() SelectionSet {
	return definition.SelectionSet
}

// IsQueryShorthand returns true if this is the short form of a query operation such as "{ field }".
// Query shorthand doesn't specify an operation type or a name; it is implicitly a query.
func (definition *OperationDefinition) IsQueryShorthand() bool {
	return definition.Type == OperationTypeQuery &&
		len(definition.Name) == 0 &&
		len(definition.VariableDefinitions) == 0 &&
		len(definition.Directives) == 0
}

// VariableDefinition declares a variable taken by an operation.
//
// Reference: https://spec.graphql.org/October2021/#VariableDefinition
type VariableDefinition struct {
	// Variable name, without the "$" sigil
	Variable string

	// Type of values the variable accepts
	Type Type

	// DefaultValue is used when no value is supplied for the variable; nil when absent. It is a
	// constant: nested variables are rejected by the grammar.
	DefaultValue Value

	// Directives applied to the variable definition
	Directives Directives
}

var _ Node = (*VariableDefinition)(nil)

func (*VariableDefinition) astNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.4 Selection Sets
//===----------------------------------------------------------------------------------------====//
// An operation selects the set of information it needs, and will receive exactly that information
// and nothing more, avoiding over-fetching and under-fetching data.
//
// Reference: https://spec.graphql.org/October2021/#sec-Selection-Sets

// SelectionSet specifies the information to be fetched. Wherever the grammar requires a selection
// set it has at least one element; "{}" is a parse error.
type SelectionSet []Selection

var _ Node = SelectionSet{}

func (SelectionSet) astNode() {}

// Selection represents a field, a fragment spread or an inline fragment.
//
// Reference: https://spec.graphql.org/October2021/#Selection
type Selection interface {
	Node

	// selectionNode is a special mark to indicate a Selection node. It makes sure that only selection
	// nodes can be assigned to Selection.
	selectionNode()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

//===----------------------------------------------------------------------------------------====//
// 2.5 Fields
//===----------------------------------------------------------------------------------------====//
// A selection set is primarily composed of fields. A field describes one discrete piece of
// information available to request within a selection set.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Fields

// Field describes a field selection.
type Field struct {
	// Alias specifies a different name of the key to be used in the response object for returning the
	// field value; empty when the field is not aliased.
	//
	// Reference: https://spec.graphql.org/October2021/#sec-Field-Alias
	Alias string

	// Name of the field
	Name string

	// Arguments taken by the field
	Arguments Arguments

	// Directives applied to the field
	Directives Directives

	// SelectionSet nested in the field; nil for leaf fields
	SelectionSet SelectionSet
}

func (*Field) astNode()       {}
func (*Field) selectionNode() {}

// ResponseKey returns the key under which the field's value appears in the response object: the
// alias when present, otherwise the field name.
func (field *Field) ResponseKey() string {
	if len(field.Alias) > 0 {
		return field.Alias
	}
	return field.Name
}

//===----------------------------------------------------------------------------------------====//
// 2.6 Arguments
//===----------------------------------------------------------------------------------------====//
// Fields are conceptually functions which return values, and occasionally accept arguments which
// alter their behavior.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Arguments

// Arguments specifies a list of Arguments. Duplicate names are preserved in source order;
// rejecting them is validation's concern, not the parser's.
type Arguments []*Argument

func (Arguments) astNode() {}

// An Argument is an argument taken by a field or a directive.
type Argument struct {
	// Name of the argument
	Name string

	// Value given to the argument
	Value Value
}

var _ Node = (*Argument)(nil)

func (*Argument) astNode() {}

//===----------------------------------------------------------------------------------------====//
// 2.8 Fragments
//===----------------------------------------------------------------------------------------====//
// Fragments allow for the reuse of common repeated selections of fields, reducing duplicated text
// in the document.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Fragments

// FragmentDefinition represents a reusable selection of fields bound to a type condition.
type FragmentDefinition struct {
	// Name of the fragment; never "on"
	Name string

	// TypeCondition specifies the type this fragment applies to.
	TypeCondition string

	// Directives applied to the fragment
	Directives Directives

	// SelectionSet describes the set of fields requested by the fragment.
	SelectionSet SelectionSet
}

func (*FragmentDefinition) astNode()        {}
func (*FragmentDefinition) definitionNode() {}

// GetDirectives implements Definition.
func (definition *FragmentDefinition) GetDirectives() Directives {
	return definition.Directives
}

// GetSelectionSet implements Definition.
func (definition *FragmentDefinition) GetSelectionSet() SelectionSet {
	return definition.SelectionSet
}

// FragmentSpread uses the spread operator (...) to add the set of fields defined by a named
// fragment to the enclosing selection set.
type FragmentSpread struct {
	// Name of the fragment to spread; never "on"
	Name string

	// Directives applied to the spread
	Directives Directives
}

func (*FragmentSpread) astNode()       {}
func (*FragmentSpread) selectionNode() {}

// InlineFragment defines a fragment inline within a selection set.
//
// Reference: https://spec.graphql.org/October2021/#sec-Inline-Fragments
type InlineFragment struct {
	// TypeCondition specifies the type this inline fragment applies to; empty when the fragment
	// applies unconditionally.
	TypeCondition string

	// Directives applied to the inline fragment
	Directives Directives

	// SelectionSet describes the set of fields to be added to the enclosing selection set.
	SelectionSet SelectionSet
}

func (*InlineFragment) astNode()       {}
func (*InlineFragment) selectionNode() {}

// HasTypeCondition returns true if the inline fragment specifies a type condition.
func (fragment *InlineFragment) HasTypeCondition() bool {
	return len(fragment.TypeCondition) > 0
}

//===----------------------------------------------------------------------------------------====//
// 2.12 Directives
//===----------------------------------------------------------------------------------------====//
// Directives provide a way to describe alternate runtime execution and type validation behavior.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Directives

// Directives specifies a list of Directives.
type Directives []*Directive

func (Directives) astNode() {}

// Directive is an @name(args) annotation attached to an operation, a variable definition, a field
// or a fragment.
type Directive struct {
	// Name of the directive, without the "@" sigil
	Name string

	// Arguments given to the directive
	Arguments Arguments
}

var _ Node = (*Directive)(nil)

func (*Directive) astNode() {}
