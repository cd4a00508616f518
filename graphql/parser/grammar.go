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

package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/lunarch/selene/graphql/ast"
	"github.com/lunarch/selene/graphql/combinator"
	"github.com/lunarch/selene/internal/util"
)

// The grammar below follows the lexeme convention: every token parser consumes the run of ignored
// tokens that follows it, never the run that precedes it. Alternation points therefore always sit
// at the start of a token, which keeps OneOf's consumption rule (fall through only on failure
// without consumption) working across whitespace.

//===----------------------------------------------------------------------------------------====//
// Ignored tokens
//===----------------------------------------------------------------------------------------====//
//
//	Ignored ::
//		WhiteSpace | LineTerminator | Comma | Comment
//
// Per spec, commas are insignificant and may be used freely as visual separators.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Source-Text.Ignored-Tokens

func isIgnoredByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', ',':
		return true
	}
	return false
}

// commentParser matches "#" up to but not including the next line terminator.
var commentParser = combinator.SkipThen(
	combinator.Byte('#'),
	combinator.Many(combinator.Satisfy("a comment character", func(b byte) bool {
		return b != '\n' && b != '\r'
	})),
)

var ignored = combinator.Many(combinator.OneOf(
	combinator.Map(combinator.Satisfy("an ignored character", isIgnoredByte), func(byte) []byte { return nil }),
	commentParser,
))

// lexeme wraps a token parser so it consumes trailing ignored tokens.
func lexeme[T any](p combinator.Parser[T]) combinator.Parser[T] {
	return combinator.ThenSkip(p, ignored)
}

func punctuator(b byte) combinator.Parser[byte] {
	return lexeme(combinator.Byte(b))
}

//===----------------------------------------------------------------------------------------====//
// Names & keywords
//===----------------------------------------------------------------------------------------====//
//
//	Name ::
//		NameStart NameContinue* [lookahead != NameContinue]
//
// Reference: https://spec.graphql.org/October2021/#sec-Names

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isNameContinue(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9')
}

var rawName = combinator.Bind(
	combinator.Satisfy("a name", isNameStart),
	func(first byte) combinator.Parser[string] {
		return combinator.Map(
			combinator.Many(combinator.Satisfy("a name character", isNameContinue)),
			func(rest []byte) string {
				return string(first) + string(rest)
			})
	})

var name = lexeme(rawName)

// keyword matches a name equal to kw. The match is rejected at the token start when some other
// name is found, so an enclosing alternation may try something else.
func keyword(kw string) combinator.Parser[string] {
	return combinator.Where(name, fmt.Sprintf("expected %q", kw), func(v string) bool {
		return v == kw
	})
}

// fragmentName excludes "on" so that "... on Type" never reads as a spread of a fragment named
// "on"; the rejection happens at the token start which lets the selection grammar fall through to
// the inline-fragment alternative.
//
//	FragmentName ::
//		Name but not "on"
var fragmentName = combinator.Where(name, `a fragment name must not be "on"`, func(v string) bool {
	return v != "on"
})

//===----------------------------------------------------------------------------------------====//
// 2.9 Input Values
//===----------------------------------------------------------------------------------------====//
//
//	Value[Const] ::
//		[if not Const] Variable
//		IntValue
//		StringValue
//		BooleanValue
//		NullValue
//		EnumValue
//		ListValue[?Const]
//		ObjectValue[?Const]
//
// The declared order matters twice: the variable alternative must run before the integer one (the
// "$" sigil would otherwise be reported as a stray byte in a number), and boolean/null must run
// before enum so "true", "false" and "null" are never read as enum values.
//
// Reference: https://spec.graphql.org/October2021/#sec-Input-Values

var variableName = combinator.SkipThen(lexeme(combinator.Byte('$')), name)

var variableValue = combinator.Map(variableName, func(n string) ast.Value {
	return ast.Variable{Name: n}
})

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

var intLiteral = combinator.Bind(
	combinator.Maybe(combinator.Byte('-')),
	func(sign combinator.Opt[byte]) combinator.Parser[string] {
		return combinator.Map(
			combinator.Many1(combinator.Satisfy("a digit", isDigit)),
			func(digits []byte) string {
				if sign.Set {
					return "-" + string(digits)
				}
				return string(digits)
			})
	})

var intValue = lexeme(combinator.Bind(intLiteral, func(literal string) combinator.Parser[ast.Value] {
	v, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		return combinator.Fail[ast.Value](
			fmt.Sprintf("integer literal %q is outside the 32-bit signed range", literal))
	}
	return combinator.Pure[ast.Value](ast.IntValue{Value: int32(v)})
}))

// escapedCharacter follows a backslash inside a string literal. \uXXXX escapes and block strings
// are not implemented.
var escapedCharacter = combinator.Label(
	combinator.OneOf(
		combinator.Byte('"'),
		combinator.Byte('\\'),
		combinator.Byte('/'),
		combinator.Map(combinator.Byte('b'), func(byte) byte { return 0x08 }),
		combinator.Map(combinator.Byte('f'), func(byte) byte { return 0x0c }),
		combinator.Map(combinator.Byte('n'), func(byte) byte { return 0x0a }),
		combinator.Map(combinator.Byte('r'), func(byte) byte { return 0x0d }),
		combinator.Map(combinator.Byte('t'), func(byte) byte { return 0x09 }),
	),
	`expected an escape character (", \, /, b, f, n, r or t)`)

var stringCharacter = combinator.OneOf(
	combinator.Satisfy("a string character", func(b byte) bool {
		return b != '"' && b != '\\' && b != '\n' && b != '\r'
	}),
	combinator.SkipThen(combinator.Byte('\\'), escapedCharacter),
)

var stringValue = lexeme(combinator.Bind(
	combinator.SkipThen(
		combinator.Byte('"'),
		combinator.ThenSkip(combinator.Many(stringCharacter), combinator.Byte('"'))),
	func(chars []byte) combinator.Parser[ast.Value] {
		if !utf8.Valid(chars) {
			return combinator.Fail[ast.Value]("string literal is not valid UTF-8")
		}
		return combinator.Pure[ast.Value](ast.StringValue{Value: string(chars)})
	}))

var booleanValue = combinator.OneOf(
	combinator.Map(keyword("true"), func(string) ast.Value { return ast.BooleanValue{Value: true} }),
	combinator.Map(keyword("false"), func(string) ast.Value { return ast.BooleanValue{Value: false} }),
)

var nullValue = combinator.Map(keyword("null"), func(string) ast.Value {
	return ast.NullValue{}
})

var enumValue = combinator.Map(name, func(n string) ast.Value {
	return ast.EnumValue{Name: n}
})

var valueAlternativeNames = []string{
	"a variable", "an integer", "a string", "a boolean", "null", "an enum value", "a list",
	"an input object",
}

func valueExpectation(constOnly bool) string {
	names := valueAlternativeNames
	if constOnly {
		// No variables inside constant values.
		names = names[1:]
	}
	return "expected " + util.OrList(names, 0, false)
}

// makeValueParser builds the (recursive) input-value grammar. With constOnly set the variable
// alternative is left out, which is what default values of variable definitions require.
func makeValueParser(constOnly bool) combinator.Parser[ast.Value] {
	var self combinator.Parser[ast.Value]
	self = combinator.Lazy(func() combinator.Parser[ast.Value] {
		listValue := combinator.Map(
			combinator.SkipThen(
				punctuator('['),
				combinator.ThenSkip(combinator.Many(self), punctuator(']'))),
			func(values []ast.Value) ast.Value {
				return ast.ListValue{Values: values}
			})

		objectField := combinator.Bind(name, func(fieldName string) combinator.Parser[*ast.ObjectField] {
			return combinator.Map(
				combinator.SkipThen(punctuator(':'), self),
				func(v ast.Value) *ast.ObjectField {
					return &ast.ObjectField{Name: fieldName, Value: v}
				})
		})
		objectValue := combinator.Map(
			combinator.SkipThen(
				punctuator('{'),
				combinator.ThenSkip(combinator.Many(objectField), punctuator('}'))),
			func(fields []*ast.ObjectField) ast.Value {
				return ast.ObjectValue{Fields: fields}
			})

		alternatives := make([]combinator.Parser[ast.Value], 0, 8)
		if !constOnly {
			alternatives = append(alternatives, variableValue)
		}
		alternatives = append(alternatives,
			intValue, stringValue, booleanValue, nullValue, enumValue, listValue, objectValue)

		return combinator.Label(combinator.OneOf(alternatives...), valueExpectation(constOnly))
	})
	return self
}

var (
	valueParser      = makeValueParser(false)
	constValueParser = makeValueParser(true)
)

//===----------------------------------------------------------------------------------------====//
// 2.11 Type References
//===----------------------------------------------------------------------------------------====//
//
//	Type ::
//		NamedType
//		ListType
//		NonNullType
//
// Parsed as an inner named or list type followed by an optional "!".
//
// Reference: https://spec.graphql.org/October2021/#sec-Type-References

// makeTypeParser builds the (recursive) type-reference grammar. Recursion goes through a local
// handle filled in by Lazy so construction isn't eagerly cyclic.
func makeTypeParser() combinator.Parser[ast.Type] {
	var self combinator.Parser[ast.Type]
	self = combinator.Lazy(func() combinator.Parser[ast.Type] {
		namedType := combinator.Map(name, func(n string) ast.Type {
			return ast.NamedType{Name: n}
		})
		listType := combinator.Map(
			combinator.SkipThen(
				punctuator('['),
				combinator.ThenSkip(self, punctuator(']'))),
			func(t ast.Type) ast.Type {
				return ast.ListType{ItemType: t}
			})

		inner := combinator.Label(combinator.OneOf(listType, namedType), "expected a type")

		return combinator.Bind(inner, func(t ast.Type) combinator.Parser[ast.Type] {
			return combinator.Map(combinator.Maybe(punctuator('!')), func(bang combinator.Opt[byte]) ast.Type {
				if bang.Set {
					return ast.NonNullType{Type: t}
				}
				return t
			})
		})
	})
	return self
}

var typeParser = makeTypeParser()

//===----------------------------------------------------------------------------------------====//
// 2.6 Arguments & 2.12 Directives
//===----------------------------------------------------------------------------------------====//
//
//	Arguments[Const] ::
//		( Argument[?Const]+ )
//
//	Directives[Const] ::
//		Directive[?Const]+
//
// References: https://spec.graphql.org/October2021/#sec-Language.Arguments
//             https://spec.graphql.org/October2021/#sec-Language.Directives

func makeArgumentsParser(valueP combinator.Parser[ast.Value]) combinator.Parser[ast.Arguments] {
	argument := combinator.Bind(name, func(argName string) combinator.Parser[*ast.Argument] {
		return combinator.Map(
			combinator.SkipThen(punctuator(':'), valueP),
			func(v ast.Value) *ast.Argument {
				return &ast.Argument{Name: argName, Value: v}
			})
	})

	return combinator.Map(
		combinator.SkipThen(
			punctuator('('),
			combinator.ThenSkip(
				combinator.Label(combinator.Many1(argument), "expected at least one argument"),
				punctuator(')'))),
		func(args []*ast.Argument) ast.Arguments {
			return ast.Arguments(args)
		})
}

func makeDirectivesParser(argumentsP combinator.Parser[ast.Arguments]) combinator.Parser[ast.Directives] {
	directive := combinator.Bind(
		combinator.SkipThen(lexeme(combinator.Byte('@')), name),
		func(directiveName string) combinator.Parser[*ast.Directive] {
			return combinator.Map(
				combinator.Maybe(argumentsP),
				func(args combinator.Opt[ast.Arguments]) *ast.Directive {
					return &ast.Directive{Name: directiveName, Arguments: args.Or(nil)}
				})
		})

	return combinator.Map(combinator.Many(directive), func(directives []*ast.Directive) ast.Directives {
		return ast.Directives(directives)
	})
}

var (
	argumentsParser      = makeArgumentsParser(valueParser)
	constArgumentsParser = makeArgumentsParser(constValueParser)

	directivesParser      = makeDirectivesParser(argumentsParser)
	constDirectivesParser = makeDirectivesParser(constArgumentsParser)
)

//===----------------------------------------------------------------------------------------====//
// 2.4 Selection Sets
//===----------------------------------------------------------------------------------------====//
//
//	SelectionSet ::
//		{ Selection+ }
//
//	Selection ::
//		Field
//		FragmentSpread
//		InlineFragment
//
// FragmentSpread and InlineFragment share the "..." prefix, so it is factored out and the two are
// disambiguated by ordered alternation after it: the spread alternative runs first and its
// fragment-name rule rejects "on" (and any non-name byte such as "{" or "@") without consuming,
// which lets the inline-fragment alternative run.
//
// Reference: https://spec.graphql.org/October2021/#sec-Selection-Sets

// makeSelectionSetParser builds the (recursive) selection grammar: selection sets nest inside
// fields and inline fragments, so recursion goes through a local handle filled in by Lazy.
func makeSelectionSetParser() combinator.Parser[ast.SelectionSet] {
	var self combinator.Parser[ast.SelectionSet]
	self = combinator.Lazy(func() combinator.Parser[ast.SelectionSet] {
		return buildSelectionSetParser(self)
	})
	return self
}

func buildSelectionSetParser(self combinator.Parser[ast.SelectionSet]) combinator.Parser[ast.SelectionSet] {
	//	Field ::
	//		Alias? Name Arguments? Directives? SelectionSet?
	//
	//	Alias ::
	//		Name :
	//
	// The first name is the alias when a second one follows a colon.
	field := combinator.Bind(name, func(first string) combinator.Parser[ast.Selection] {
		return combinator.Bind(
			combinator.Maybe(combinator.SkipThen(punctuator(':'), name)),
			func(second combinator.Opt[string]) combinator.Parser[ast.Selection] {
				alias, fieldName := "", first
				if second.Set {
					alias, fieldName = first, second.Value
				}
				return combinator.Bind(
					combinator.Maybe(argumentsParser),
					func(args combinator.Opt[ast.Arguments]) combinator.Parser[ast.Selection] {
						return combinator.Bind(directivesParser, func(directives ast.Directives) combinator.Parser[ast.Selection] {
							return combinator.Map(
								combinator.Maybe(self),
								func(set combinator.Opt[ast.SelectionSet]) ast.Selection {
									return &ast.Field{
										Alias:        alias,
										Name:         fieldName,
										Arguments:    args.Or(nil),
										Directives:   directives,
										SelectionSet: set.Or(nil),
									}
								})
						})
					})
			})
	})

	//	FragmentSpread ::
	//		... FragmentName Directives?
	fragmentSpread := combinator.Bind(fragmentName, func(fragName string) combinator.Parser[ast.Selection] {
		return combinator.Map(directivesParser, func(directives ast.Directives) ast.Selection {
			return &ast.FragmentSpread{Name: fragName, Directives: directives}
		})
	})

	//	InlineFragment ::
	//		... TypeCondition? Directives? SelectionSet
	//
	//	TypeCondition ::
	//		on NamedType
	typeCondition := combinator.SkipThen(keyword("on"), name)
	inlineFragment := combinator.Bind(
		combinator.Maybe(typeCondition),
		func(tc combinator.Opt[string]) combinator.Parser[ast.Selection] {
			return combinator.Bind(directivesParser, func(directives ast.Directives) combinator.Parser[ast.Selection] {
				return combinator.Map(self, func(set ast.SelectionSet) ast.Selection {
					return &ast.InlineFragment{
						TypeCondition: tc.Or(""),
						Directives:    directives,
						SelectionSet:  set,
					}
				})
			})
		})

	fragment := combinator.SkipThen(
		lexeme(combinator.Literal("...")),
		combinator.OneOf(fragmentSpread, inlineFragment))

	selection := combinator.Label(
		combinator.OneOf(fragment, field),
		"expected a field, a fragment spread or an inline fragment")

	return combinator.Map(
		combinator.SkipThen(
			punctuator('{'),
			combinator.ThenSkip(
				combinator.Label(combinator.Many1(selection), "expected at least one selection"),
				punctuator('}'))),
		func(selections []ast.Selection) ast.SelectionSet {
			return ast.SelectionSet(selections)
		})
}

var selectionSetParser = makeSelectionSetParser()

//===----------------------------------------------------------------------------------------====//
// 2.3 Operations & 2.10 Variables
//===----------------------------------------------------------------------------------------====//
//
//	OperationDefinition ::
//		OperationType Name? VariableDefinitions? Directives? SelectionSet
//		SelectionSet
//
//	VariableDefinitions ::
//		( VariableDefinition+ )
//
//	VariableDefinition ::
//		Variable : Type DefaultValue? Directives[Const]?
//
// The shorthand form carries neither an operation-type keyword nor a name and is implicitly a
// query; a named operation always spells its keyword, so an operation with a name (or variables)
// but no keyword is rejected.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Operations

var operationTypeParser = combinator.OneOf(
	combinator.Map(keyword("query"), func(string) ast.OperationType { return ast.OperationTypeQuery }),
	combinator.Map(keyword("mutation"), func(string) ast.OperationType { return ast.OperationTypeMutation }),
	combinator.Map(keyword("subscription"), func(string) ast.OperationType { return ast.OperationTypeSubscription }),
)

var variableDefinitionParser = combinator.Bind(variableName, func(varName string) combinator.Parser[*ast.VariableDefinition] {
	return combinator.Bind(
		combinator.SkipThen(punctuator(':'), typeParser),
		func(t ast.Type) combinator.Parser[*ast.VariableDefinition] {
			return combinator.Bind(
				combinator.Maybe(combinator.SkipThen(punctuator('='), constValueParser)),
				func(def combinator.Opt[ast.Value]) combinator.Parser[*ast.VariableDefinition] {
					return combinator.Map(constDirectivesParser, func(directives ast.Directives) *ast.VariableDefinition {
						variableDefinition := &ast.VariableDefinition{
							Variable:   varName,
							Type:       t,
							Directives: directives,
						}
						if def.Set {
							variableDefinition.DefaultValue = def.Value
						}
						return variableDefinition
					})
				})
		})
})

var variableDefinitionsParser = combinator.SkipThen(
	punctuator('('),
	combinator.ThenSkip(
		combinator.Label(combinator.Many1(variableDefinitionParser), "expected at least one variable definition"),
		punctuator(')')))

var operationDefinitionParser combinator.Parser[ast.Definition] = combinator.OneOf(
	combinator.Bind(operationTypeParser, func(operationType ast.OperationType) combinator.Parser[ast.Definition] {
		return combinator.Bind(combinator.Maybe(name), func(operationName combinator.Opt[string]) combinator.Parser[ast.Definition] {
			return combinator.Bind(
				combinator.Maybe(variableDefinitionsParser),
				func(variableDefinitions combinator.Opt[[]*ast.VariableDefinition]) combinator.Parser[ast.Definition] {
					return combinator.Bind(directivesParser, func(directives ast.Directives) combinator.Parser[ast.Definition] {
						return combinator.Map(selectionSetParser, func(set ast.SelectionSet) ast.Definition {
							return &ast.OperationDefinition{
								Type:                operationType,
								Name:                operationName.Or(""),
								VariableDefinitions: variableDefinitions.Or(nil),
								Directives:          directives,
								SelectionSet:        set,
							}
						})
					})
				})
		})
	}),
	combinator.Map(selectionSetParser, func(set ast.SelectionSet) ast.Definition {
		return &ast.OperationDefinition{
			Type:         ast.OperationTypeQuery,
			SelectionSet: set,
		}
	}),
)

//===----------------------------------------------------------------------------------------====//
// 2.8 Fragments
//===----------------------------------------------------------------------------------------====//
//
//	FragmentDefinition ::
//		fragment FragmentName TypeCondition Directives? SelectionSet
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Fragments

var fragmentDefinitionParser combinator.Parser[ast.Definition] = combinator.SkipThen(
	keyword("fragment"),
	combinator.Bind(fragmentName, func(fragName string) combinator.Parser[ast.Definition] {
		return combinator.Bind(
			combinator.SkipThen(keyword("on"), name),
			func(typeCondition string) combinator.Parser[ast.Definition] {
				return combinator.Bind(directivesParser, func(directives ast.Directives) combinator.Parser[ast.Definition] {
					return combinator.Map(selectionSetParser, func(set ast.SelectionSet) ast.Definition {
						return &ast.FragmentDefinition{
							Name:          fragName,
							TypeCondition: typeCondition,
							Directives:    directives,
							SelectionSet:  set,
						}
					})
				})
			})
	}))

//===----------------------------------------------------------------------------------------====//
// 2.2 Document
//===----------------------------------------------------------------------------------------====//
//
//	Document ::
//		Definition+
//
// An optional UTF-8 byte order mark and any leading ignored tokens are skipped first; each
// definition's trailing ignored tokens are consumed by its final lexeme.
//
// Reference: https://spec.graphql.org/October2021/#sec-Document

var definitionParser = combinator.Label(
	combinator.OneOf(operationDefinitionParser, fragmentDefinitionParser),
	"expected an operation definition or a fragment definition")

var byteOrderMark = combinator.Maybe(combinator.Literal("\ufeff"))

var documentParser = combinator.SkipThen(
	byteOrderMark,
	combinator.SkipThen(
		ignored,
		combinator.Map(combinator.Many1(definitionParser), func(definitions []ast.Definition) ast.Document {
			return ast.Document{Definitions: definitions}
		})))

// Standalone entry points for parsing a lone value or type reference.
var (
	standaloneValueParser = combinator.SkipThen(ignored, valueParser)
	standaloneTypeParser  = combinator.SkipThen(ignored, typeParser)
)
