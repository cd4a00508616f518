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

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lunarch/selene/jsonwriter"
)

// Print uses a set of formatting rules (compatible with graphql-js) to convert an AST into a
// string. Parsing the printed form of a document yields the document again, except when a string
// value holds a control character other than \b, \f, \n, \r and \t: such a character is printed as
// a \u00XX escape, which the parser does not accept.
func Print(node Node) string {
	var buf strings.Builder
	p := printer{out: &buf}
	p.printNode(node)
	return buf.String()
}

// FPrint pretty-prints an AST node to out.
func FPrint(out io.Writer, node Node) error {
	_, err := io.WriteString(out, Print(node))
	return err
}

type printer struct {
	out         *strings.Builder
	indentLevel int
}

func (p *printer) print(s string) {
	p.out.WriteString(s)
}

func (p *printer) beginBlock() {
	p.print("{\n")
	p.indentLevel++
}

func (p *printer) endBlock() {
	p.indentLevel--
	p.print("\n")
	p.printIndent()
	p.print("}")
}

func (p *printer) printIndent() {
	p.print(strings.Repeat(" ", 2*p.indentLevel))
}

func (p *printer) printNode(node Node) {
	switch node := node.(type) {
	case Document:
		p.printDocument(node)
	case *OperationDefinition:
		p.printOperationDefinition(node)
	case *FragmentDefinition:
		p.printFragmentDefinition(node)
	case *VariableDefinition:
		p.printVariableDefinition(node)
	case SelectionSet:
		p.printSelectionSet(node)
	case *Field:
		p.printField(node)
	case *FragmentSpread:
		p.printFragmentSpread(node)
	case *InlineFragment:
		p.printInlineFragment(node)
	case *Argument:
		p.printArgument(node)
	case Arguments:
		p.printArguments(node)
	case *Directive:
		p.printDirective(node)
	case Directives:
		p.printDirectives(node)
	case *ObjectField:
		p.printObjectField(node)
	case Type:
		p.printType(node)
	case Value:
		p.printValue(node)
	case Definition:
		p.printDefinition(node)
	case Selection:
		p.printSelection(node)
	default:
		panic(fmt.Sprintf("unsupported node type %T to print", node))
	}
}

//===----------------------------------------------------------------------------------------====//
// Document
//===----------------------------------------------------------------------------------------====//

func (p *printer) printDocument(node Document) {
	for i, definition := range node.Definitions {
		if i > 0 {
			p.print("\n\n")
		}
		p.printDefinition(definition)
	}
}

func (p *printer) printDefinition(node Definition) {
	switch node := node.(type) {
	case *OperationDefinition:
		p.printOperationDefinition(node)
	case *FragmentDefinition:
		p.printFragmentDefinition(node)
	default:
		panic(fmt.Sprintf("unsupported definition node type %T to print", node))
	}
}

func (p *printer) printOperationDefinition(node *OperationDefinition) {
	if node.IsQueryShorthand() {
		p.printSelectionSet(node.SelectionSet)
		return
	}

	p.print(string(node.Type))
	if len(node.Name) > 0 {
		p.print(" ")
		p.print(node.Name)
	}
	if len(node.VariableDefinitions) > 0 {
		if len(node.Name) == 0 {
			p.print(" ")
		}
		p.print("(")
		for i, variableDefinition := range node.VariableDefinitions {
			if i > 0 {
				p.print(", ")
			}
			p.printVariableDefinition(variableDefinition)
		}
		p.print(")")
	}
	p.printDirectives(node.Directives)
	p.print(" ")
	p.printSelectionSet(node.SelectionSet)
}

func (p *printer) printVariableDefinition(node *VariableDefinition) {
	p.print("$")
	p.print(node.Variable)
	p.print(": ")
	p.printType(node.Type)
	if node.DefaultValue != nil {
		p.print(" = ")
		p.printValue(node.DefaultValue)
	}
	p.printDirectives(node.Directives)
}

func (p *printer) printFragmentDefinition(node *FragmentDefinition) {
	p.print("fragment ")
	p.print(node.Name)
	p.print(" on ")
	p.print(node.TypeCondition)
	p.printDirectives(node.Directives)
	p.print(" ")
	p.printSelectionSet(node.SelectionSet)
}

//===----------------------------------------------------------------------------------------====//
// Selections
//===----------------------------------------------------------------------------------------====//

func (p *printer) printSelectionSet(node SelectionSet) {
	if len(node) == 0 {
		return
	}

	p.beginBlock()
	for i, selection := range node {
		if i > 0 {
			p.print("\n")
		}
		p.printIndent()
		p.printSelection(selection)
	}
	p.endBlock()
}

func (p *printer) printSelection(node Selection) {
	switch node := node.(type) {
	case *Field:
		p.printField(node)
	case *FragmentSpread:
		p.printFragmentSpread(node)
	case *InlineFragment:
		p.printInlineFragment(node)
	default:
		panic(fmt.Sprintf("unsupported selection node type %T to print", node))
	}
}

func (p *printer) printField(node *Field) {
	if len(node.Alias) > 0 {
		p.print(node.Alias)
		p.print(": ")
	}
	p.print(node.Name)
	p.printArguments(node.Arguments)
	p.printDirectives(node.Directives)
	if len(node.SelectionSet) > 0 {
		p.print(" ")
		p.printSelectionSet(node.SelectionSet)
	}
}

func (p *printer) printFragmentSpread(node *FragmentSpread) {
	p.print("...")
	p.print(node.Name)
	p.printDirectives(node.Directives)
}

func (p *printer) printInlineFragment(node *InlineFragment) {
	p.print("...")
	if node.HasTypeCondition() {
		p.print(" on ")
		p.print(node.TypeCondition)
	}
	p.printDirectives(node.Directives)
	p.print(" ")
	p.printSelectionSet(node.SelectionSet)
}

//===----------------------------------------------------------------------------------------====//
// Arguments & Directives
//===----------------------------------------------------------------------------------------====//

func (p *printer) printArguments(nodes Arguments) {
	if len(nodes) == 0 {
		return
	}

	p.print("(")
	for i, argument := range nodes {
		if i > 0 {
			p.print(", ")
		}
		p.printArgument(argument)
	}
	p.print(")")
}

func (p *printer) printArgument(node *Argument) {
	p.print(node.Name)
	p.print(": ")
	p.printValue(node.Value)
}

func (p *printer) printDirectives(nodes Directives) {
	for _, directive := range nodes {
		p.print(" ")
		p.printDirective(directive)
	}
}

func (p *printer) printDirective(node *Directive) {
	p.print("@")
	p.print(node.Name)
	p.printArguments(node.Arguments)
}

//===----------------------------------------------------------------------------------------====//
// Values & Types
//===----------------------------------------------------------------------------------------====//

func (p *printer) printValue(node Value) {
	switch node := node.(type) {
	case Variable:
		p.print("$")
		p.print(node.Name)

	case IntValue:
		p.print(strconv.FormatInt(int64(node.Value), 10))

	case StringValue:
		// GraphQL string literals escape the same way JSON strings do.
		stream := jsonwriter.NewStream(p.out)
		stream.WriteString(node.Value)
		if err := stream.Flush(); err != nil {
			panic(fmt.Sprintf("error occurred when printing string value %q: %s", node.Value, err))
		}

	case BooleanValue:
		p.print(strconv.FormatBool(node.Value))

	case NullValue:
		p.print("null")

	case EnumValue:
		p.print(node.Name)

	case ListValue:
		p.print("[")
		for i, value := range node.Values {
			if i > 0 {
				p.print(", ")
			}
			p.printValue(value)
		}
		p.print("]")

	case ObjectValue:
		p.print("{")
		for i, field := range node.Fields {
			if i > 0 {
				p.print(", ")
			}
			p.printObjectField(field)
		}
		p.print("}")

	default:
		panic(fmt.Sprintf("unsupported value node type %T to print", node))
	}
}

func (p *printer) printObjectField(node *ObjectField) {
	p.print(node.Name)
	p.print(": ")
	p.printValue(node.Value)
}

func (p *printer) printType(node Type) {
	switch node := node.(type) {
	case NamedType:
		p.print(node.Name)

	case ListType:
		p.print("[")
		p.printType(node.ItemType)
		p.print("]")

	case NonNullType:
		p.printType(node.Type)
		p.print("!")

	default:
		panic(fmt.Sprintf("unsupported type node type %T to print", node))
	}
}
