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

package graphql_test

import (
	"github.com/lunarch/selene/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TypeRef", func() {
	It("renders GraphQL type notation", func() {
		user := graphql.NamedTypeOf("User")
		Expect(user.String()).Should(Equal("User"))
		Expect(graphql.NonNullOf(user).String()).Should(Equal("User!"))
		Expect(graphql.ListOf(user).String()).Should(Equal("[User]"))
		Expect(graphql.NonNullOf(graphql.ListOf(graphql.NonNullOf(user))).String()).Should(Equal("[User!]!"))
		Expect(graphql.ListOf(graphql.ListOf(user)).String()).Should(Equal("[[User]]"))
	})

	It("refuses to stack non-null wrappers", func() {
		Expect(func() {
			graphql.NonNullOf(graphql.NonNullOf(graphql.NamedTypeOf("User")))
		}).Should(Panic())
	})
})

var _ = Describe("Deprecation", func() {
	It("is active only when present", func() {
		var d *graphql.Deprecation
		Expect(d.Defined()).Should(BeFalse())
		Expect((&graphql.Deprecation{Reason: "old"}).Defined()).Should(BeTrue())
	})
})
