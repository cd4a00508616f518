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
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//
// Field and directive arguments accept input values of various literal primitives; input values
// can be scalars, enumeration values, lists, or input objects.
//
// Reference: https://spec.graphql.org/October2021/#sec-Input-Values

// Value represents a node containing an input value.
type Value interface {
	Node

	// Interface returns the value as an interface{}. Variables yield their name; lists and objects
	// yield []interface{} and map[string]interface{} with their elements converted recursively.
	Interface() interface{}

	// valueNode is a special mark to indicate a Value node. It makes sure that only value nodes can
	// be assigned to Value.
	valueNode()
}

// The following implement the Value interface.
var (
	_ Value = Variable{}
	_ Value = IntValue{}
	_ Value = StringValue{}
	_ Value = BooleanValue{}
	_ Value = NullValue{}
	_ Value = EnumValue{}
	_ Value = ListValue{}
	_ Value = ObjectValue{}
)

// Variable references a value supplied at execution time.
//
// Reference: https://spec.graphql.org/October2021/#Variable
type Variable struct {
	// Name of the variable, without the "$" sigil
	Name string
}

func (Variable) astNode()   {}
func (Variable) valueNode() {}

// Interface implements Value.
func (value Variable) Interface() interface{} {
	return value.Name
}

// IntValue represents a signed 32-bit integer value. Literals outside the 32-bit range are
// rejected by the parser.
//
// Reference: https://spec.graphql.org/October2021/#sec-Int-Value
type IntValue struct {
	Value int32
}

func (IntValue) astNode()   {}
func (IntValue) valueNode() {}

// Interface implements Value.
func (value IntValue) Interface() interface{} {
	return value.Value
}

// StringValue represents a string value. The text is the UTF-8 payload after escape processing.
//
// Reference: https://spec.graphql.org/October2021/#sec-String-Value
type StringValue struct {
	Value string
}

func (StringValue) astNode()   {}
func (StringValue) valueNode() {}

// Interface implements Value.
func (value StringValue) Interface() interface{} {
	return value.Value
}

// BooleanValue represents one of the keywords "true" and "false".
//
// Reference: https://spec.graphql.org/October2021/#sec-Boolean-Value
type BooleanValue struct {
	Value bool
}

func (BooleanValue) astNode()   {}
func (BooleanValue) valueNode() {}

// Interface implements Value.
func (value BooleanValue) Interface() interface{} {
	return value.Value
}

// NullValue represents the keyword "null".
//
// Reference: https://spec.graphql.org/October2021/#sec-Null-Value
type NullValue struct{}

func (NullValue) astNode()   {}
func (NullValue) valueNode() {}

// Interface implements Value.
func (NullValue) Interface() interface{} {
	return nil
}

// EnumValue represents an enum case by name. The parser tries boolean and null alternatives first,
// so Name is never "true", "false" or "null".
//
// Reference: https://spec.graphql.org/October2021/#sec-Enum-Value
type EnumValue struct {
	Name string
}

func (EnumValue) astNode()   {}
func (EnumValue) valueNode() {}

// Interface implements Value.
func (value EnumValue) Interface() interface{} {
	return value.Name
}

// Value returns the name of the enum case.
func (value EnumValue) Value() string {
	return value.Name
}

// ListValue represents a possibly-empty ordered list of values.
//
// Reference: https://spec.graphql.org/October2021/#sec-List-Value
type ListValue struct {
	Values []Value
}

func (ListValue) astNode()   {}
func (ListValue) valueNode() {}

// Interface implements Value.
func (value ListValue) Interface() interface{} {
	values := make([]interface{}, len(value.Values))
	for i, v := range value.Values {
		values[i] = v.Interface()
	}
	return values
}

// ObjectField is a single name-value entry of an ObjectValue.
type ObjectField struct {
	// Name of the field
	Name string

	// Value given to the field
	Value Value
}

var _ Node = (*ObjectField)(nil)

func (*ObjectField) astNode() {}

// ObjectValue represents a possibly-empty input object literal. Field order is preserved and
// duplicate names are syntactically allowed.
//
// Reference: https://spec.graphql.org/October2021/#sec-Input-Object-Values
type ObjectValue struct {
	Fields []*ObjectField
}

func (ObjectValue) astNode()   {}
func (ObjectValue) valueNode() {}

// Interface implements Value. Note that with duplicate field names the last entry wins in the
// returned map; the Fields slice itself preserves every entry.
func (value ObjectValue) Interface() interface{} {
	fields := make(map[string]interface{}, len(value.Fields))
	for _, field := range value.Fields {
		fields[field.Name] = field.Value.Interface()
	}
	return fields
}
