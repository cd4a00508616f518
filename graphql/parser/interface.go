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

// Package parser turns GraphQL executable-document source text into an ast.Document.
//
// The grammar targets the October 2021 GraphQL specification, executable subset: operations and
// fragments, not the schema definition language. It is built directly on the combinator kernel;
// there is no separate lexer. Parsing is synchronous, deterministic, and allocates only the tree
// it returns, so concurrent callers may parse different sources without coordination.
//
// Known limitations: block strings ("""), float literals, and \uXXXX string escapes are not
// implemented.
package parser

import (
	"github.com/lunarch/selene/graphql"
	"github.com/lunarch/selene/graphql/ast"
	"github.com/lunarch/selene/graphql/combinator"
	"github.com/lunarch/selene/graphql/source"
)

// ParseOptions contains configuration options to control parser behavior. There are currently
// none; the type is kept so call sites don't churn when one appears.
type ParseOptions struct{}

// Parse parses the given GraphQL source into a Document.
//
// The error is either a parse failure (the grammar rejected the input; rendered with the "Parse
// failure: " prefix and a source location) or an incomplete parse (the grammar matched a prefix
// but trailing input remained; rendered with the "Incomplete parsing error: " prefix and carrying
// the remainder).
func Parse(src *source.Source, options ...ParseOptions) (ast.Document, error) {
	if src == nil {
		return ast.Document{}, graphql.NewError("Must provide Source. Received: nil")
	}
	document, err := runToCompletion(src, documentParser)
	if err != nil {
		return ast.Document{}, err
	}
	return document, nil
}

// ParseValue parses the AST for a string containing a GraphQL input value (e.g., `[42]`).
func ParseValue(src *source.Source) (ast.Value, error) {
	if src == nil {
		return nil, graphql.NewError("Must provide Source. Received: nil")
	}
	return runToCompletion(src, standaloneValueParser)
}

// ParseType parses the AST for a string containing a GraphQL type reference (e.g., `[Int!]`).
func ParseType(src *source.Source) (ast.Type, error) {
	if src == nil {
		return nil, graphql.NewError("Must provide Source. Received: nil")
	}
	return runToCompletion(src, standaloneTypeParser)
}

// runToCompletion applies p to the full source body and maps the kernel's failure modes onto the
// library error type: a *combinator.Failure becomes a syntax error at the failure offset, and a
// successful parse that leaves trailing input becomes an incomplete-parse error.
func runToCompletion[T any](src *source.Source, p combinator.Parser[T]) (T, error) {
	result, state, err := p(combinator.NewState(src.Body()))
	if err != nil {
		var zero T
		if failure, ok := err.(*combinator.Failure); ok {
			return zero, graphql.NewSyntaxError(src, failure.Offset, failure.Message)
		}
		return zero, err
	}

	if !state.AtEnd() {
		var zero T
		return zero, graphql.NewIncompleteParseError(src, state.Offset())
	}

	return result, nil
}
