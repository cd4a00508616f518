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

// Package graphql provides the schema description model for a GraphQL service: builders for
// object and enum types, the scalar coercion contract, and the error type shared across the
// library.
//
// Types are described once at program start with the fluent builders (NewObject, NewEnum) or the
// config structs (ScalarConfig) and are immutable afterwards; the resulting values are freely
// shareable across goroutines for read-only access. The metadata side of every type (names,
// descriptions, deprecations, arguments, type references) is plain data that an introspection
// layer can walk, while behavior (field resolvers, enum and scalar coercers) lives in parallel
// tables keyed by name.
//
// Parsing of executable documents lives in the parser subpackage; the AST it produces is the
// published interface between this package, validators and executors.
package graphql
