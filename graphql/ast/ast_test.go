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

package ast_test

import (
	"github.com/lunarch/selene/graphql/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Field", func() {
	It("uses the alias as the response key when present", func() {
		Expect((&ast.Field{Name: "profilePic"}).ResponseKey()).Should(Equal("profilePic"))
		Expect((&ast.Field{Alias: "pic", Name: "profilePic"}).ResponseKey()).Should(Equal("pic"))
	})
})

var _ = Describe("OperationDefinition", func() {
	It("detects the query shorthand", func() {
		Expect((&ast.OperationDefinition{
			Type:         ast.OperationTypeQuery,
			SelectionSet: ast.SelectionSet{&ast.Field{Name: "a"}},
		}).IsQueryShorthand()).Should(BeTrue())

		Expect((&ast.OperationDefinition{
			Type: ast.OperationTypeQuery,
			Name: "Named",
		}).IsQueryShorthand()).Should(BeFalse())

		Expect((&ast.OperationDefinition{
			Type: ast.OperationTypeMutation,
		}).IsQueryShorthand()).Should(BeFalse())
	})
})

var _ = Describe("Value", func() {
	It("converts scalars through Interface", func() {
		Expect(ast.IntValue{Value: 42}.Interface()).Should(Equal(int32(42)))
		Expect(ast.StringValue{Value: "x"}.Interface()).Should(Equal("x"))
		Expect(ast.BooleanValue{Value: true}.Interface()).Should(Equal(true))
		Expect(ast.NullValue{}.Interface()).Should(BeNil())
		Expect(ast.EnumValue{Name: "ACTIVE"}.Interface()).Should(Equal("ACTIVE"))
		Expect(ast.Variable{Name: "x"}.Interface()).Should(Equal("x"))
	})

	It("converts lists and objects recursively", func() {
		value := ast.ListValue{
			Values: []ast.Value{
				ast.IntValue{Value: 1},
				ast.ObjectValue{
					Fields: []*ast.ObjectField{
						{Name: "k", Value: ast.StringValue{Value: "v"}},
					},
				},
			},
		}
		Expect(value.Interface()).Should(Equal([]interface{}{
			int32(1),
			map[string]interface{}{"k": "v"},
		}))
	})
})

var _ = Describe("InlineFragment", func() {
	It("reports the presence of a type condition", func() {
		Expect((&ast.InlineFragment{}).HasTypeCondition()).Should(BeFalse())
		Expect((&ast.InlineFragment{TypeCondition: "Post"}).HasTypeCondition()).Should(BeTrue())
	})
})
