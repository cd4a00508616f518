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

// Package source wraps the text of a GraphQL request so errors raised while processing it can be
// reported with line and column numbers.
package source

// Body contains the contents of a GraphQL document in a byte sequence.
type Body []byte

// At returns the byte in the source at given offset. Return 0 if the given offset is out of body's
// range.
func (body Body) At(offset int) byte {
	if offset >= len(body) {
		return 0
	}
	return body[offset]
}

// Size returns the body size in bytes.
func (body Body) Size() int {
	return len(body)
}

// LocationInfo describes a location in a Source with its name, line and column number.
type LocationInfo struct {
	Name   string
	Line   uint
	Column uint
}

// Config specifies configuration of a Source.
type Config struct {
	Body Body

	// Name, LineOffset and ColumnOffset are optional. They are useful for clients who store GraphQL
	// documents in source files. For example, if the GraphQL input starts at line 40 in a file named
	// Foo.graphql, it might be useful for Name to be "Foo.graphql" with LineOffset: 39 and
	// ColumnOffset: 0. LineOffset and ColumnOffset are both 0-indexed and are both 0 if they're not
	// provided (which also means no offset).
	Name         string
	LineOffset   uint
	ColumnOffset uint
}

// Source represents a GraphQL source text.
type Source struct {
	config Config
}

// New initializes a Source instance from given config.
func New(config *Config) *Source {
	source := &Source{
		config: *config,
	}
	if len(config.Name) == 0 {
		source.config.Name = "GraphQL request"
	}
	return source
}

// FromString initializes a Source from a query string with the default name.
func FromString(body string) *Source {
	return New(&Config{
		Body: Body(body),
	})
}

// Body returns source.config.Body.
func (source *Source) Body() Body {
	return source.config.Body
}

// Name returns source.config.Name.
func (source *Source) Name() string {
	return source.config.Name
}

// LocationInfoOf computes and returns a LocationInfo for a given byte offset in the body.
func (source *Source) LocationInfoOf(offset int) LocationInfo {
	var (
		line   uint = 1
		column uint = 1
	)

	body := source.Body()
	bodySize := body.Size()
	if offset > bodySize {
		offset = bodySize
	}

	i := 0
	for i < offset {
		switch body[i] {
		case '\r':
			if (i+1) < bodySize && body[i+1] == '\n' {
				// An "\r\n" was encountered and we're at "\r". Both graphql-js and graphql-go consider the
				// position of "\r" at the same line. So don't advance line (and column).
				i++

				// Now consume "\n". Here is the special case: if offset of "\n" is requested, it is in the
				// next line with column number as 0. Otherwise (i.e., the requesting offset is not "\n"),
				// we process the "\n" as normal case.
				if i == offset {
					line++
					column = 0
				}
			} else {
				line++
				column = 1
				i++
			}

		case '\n':
			line++
			column = 1
			i++

		default:
			column++
			i++
		}
	}

	return LocationInfo{
		Name:   source.Name(),
		Line:   source.config.LineOffset + line,
		Column: source.config.ColumnOffset + column,
	}
}
