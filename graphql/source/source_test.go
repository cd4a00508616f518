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

package source_test

import (
	"github.com/lunarch/selene/graphql/source"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Source", func() {
	It("uses a default name", func() {
		src := source.FromString("{ a }")
		Expect(src.Name()).Should(Equal("GraphQL request"))
		Expect(src.Body()).Should(Equal(source.Body("{ a }")))
	})

	It("keeps a provided name", func() {
		src := source.New(&source.Config{
			Body: source.Body("{ a }"),
			Name: "Foo.graphql",
		})
		Expect(src.Name()).Should(Equal("Foo.graphql"))
	})

	It("indexes the body by byte offset", func() {
		body := source.Body("ab")
		Expect(body.Size()).Should(Equal(2))
		Expect(body.At(0)).Should(Equal(byte('a')))
		Expect(body.At(1)).Should(Equal(byte('b')))
		Expect(body.At(2)).Should(Equal(byte(0)))
	})

	Describe("LocationInfoOf", func() {
		It("computes line and column for offsets on the first line", func() {
			src := source.FromString("query { a }")
			info := src.LocationInfoOf(0)
			Expect(info.Line).Should(Equal(uint(1)))
			Expect(info.Column).Should(Equal(uint(1)))

			info = src.LocationInfoOf(6)
			Expect(info.Line).Should(Equal(uint(1)))
			Expect(info.Column).Should(Equal(uint(7)))
		})

		It("advances lines on newline characters", func() {
			src := source.FromString("{\n  a\n}")

			info := src.LocationInfoOf(2)
			Expect(info.Line).Should(Equal(uint(2)))
			Expect(info.Column).Should(Equal(uint(1)))

			info = src.LocationInfoOf(6)
			Expect(info.Line).Should(Equal(uint(3)))
			Expect(info.Column).Should(Equal(uint(1)))
		})

		It("treats \r\n as a single line break", func() {
			src := source.FromString("{\r\na")
			info := src.LocationInfoOf(3)
			Expect(info.Line).Should(Equal(uint(2)))
			Expect(info.Column).Should(Equal(uint(1)))
		})

		It("clamps offsets past the end of the body", func() {
			src := source.FromString("ab")
			info := src.LocationInfoOf(99)
			Expect(info.Line).Should(Equal(uint(1)))
			Expect(info.Column).Should(Equal(uint(3)))
		})

		It("applies line and column offsets", func() {
			src := source.New(&source.Config{
				Body:         source.Body("a"),
				LineOffset:   40,
				ColumnOffset: 2,
			})
			info := src.LocationInfoOf(0)
			Expect(info.Line).Should(Equal(uint(41)))
			Expect(info.Column).Should(Equal(uint(3)))
		})
	})
})
