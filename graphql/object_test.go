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
	"github.com/lunarch/selene/graphql/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ObjectBuilder", func() {
	resolveName := graphql.FieldResolverFunc(func(
		source interface{},
		args graphql.ArgumentValues,
		selectionSet ast.SelectionSet) (interface{}, error) {
		return source.(map[string]interface{})["name"], nil
	})

	It("builds an object with chained fields", func() {
		object, err := graphql.NewObject("User").
			Describe("A member of the service.").
			Field("id", graphql.NonNullOf(graphql.NamedTypeOf("ID")), nil).
			Field("name", graphql.NamedTypeOf("String"), resolveName).
			Build()
		Expect(err).ShouldNot(HaveOccurred())

		Expect(object.Name()).Should(Equal("User"))
		Expect(object.Description()).Should(Equal("A member of the service."))

		fields := object.Fields()
		Expect(fields).Should(HaveLen(2))
		Expect(fields[0].Name()).Should(Equal("id"))
		Expect(fields[0].Type().String()).Should(Equal("ID!"))
		Expect(fields[1].Name()).Should(Equal("name"))

		Expect(object.Field("name")).Should(Equal(fields[1]))
		Expect(object.Field("missing")).Should(BeNil())
	})

	It("registers resolvers in a table parallel to the metadata", func() {
		object := graphql.NewObject("User").
			Field("name", graphql.NamedTypeOf("String"), resolveName).
			MustBuild()

		resolver := object.Resolver("name")
		Expect(resolver).ShouldNot(BeNil())

		value, err := resolver.Resolve(map[string]interface{}{"name": "alice"}, nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("alice"))

		Expect(object.Resolver("missing")).Should(BeNil())
	})

	It("passes argument values and the selection set to resolvers", func() {
		echo := graphql.FieldResolverFunc(func(
			source interface{},
			args graphql.ArgumentValues,
			selectionSet ast.SelectionSet) (interface{}, error) {
			size, _ := args.Get("size")
			return []interface{}{size, len(selectionSet)}, nil
		})

		object := graphql.NewObject("Query").
			FieldWith(graphql.FieldConfig{
				Name: "profilePic",
				Type: graphql.NamedTypeOf("String"),
				Args: []graphql.ArgumentConfig{
					{
						Name:         "size",
						Type:         graphql.NamedTypeOf("Int"),
						DefaultValue: ast.IntValue{Value: 64},
					},
				},
				Resolver: echo,
			}).
			MustBuild()

		selectionSet := ast.SelectionSet{&ast.Field{Name: "url"}}
		value, err := object.Resolver("profilePic").Resolve(
			nil, graphql.ArgumentValues{"size": 128}, selectionSet)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal([]interface{}{128, 1}))

		field := object.Field("profilePic")
		Expect(field.Args()).Should(HaveLen(1))
		Expect(field.Args()[0].Name()).Should(Equal("size"))
		Expect(field.Args()[0].HasDefaultValue()).Should(BeTrue())
		Expect(field.Args()[0].DefaultValue()).Should(Equal(ast.IntValue{Value: 64}))
	})

	It("keeps earlier field metadata when the description is set afterwards", func() {
		builder := graphql.NewObject("User").
			Field("id", graphql.NamedTypeOf("ID"), nil)

		object := builder.Describe("updated description").MustBuild()
		Expect(object.Description()).Should(Equal("updated description"))
		Expect(object.Fields()).Should(HaveLen(1))
		Expect(object.Field("id").Type().String()).Should(Equal("ID"))
	})

	It("records field deprecations", func() {
		object := graphql.NewObject("User").
			FieldWith(graphql.FieldConfig{
				Name:        "handle",
				Description: "Historical user handle.",
				Type:        graphql.NamedTypeOf("String"),
				Deprecation: &graphql.Deprecation{Reason: "Use name instead."},
			}).
			MustBuild()

		field := object.Field("handle")
		Expect(field.Description()).Should(Equal("Historical user handle."))
		Expect(field.IsDeprecated()).Should(BeTrue())
		Expect(field.Deprecation().Reason).Should(Equal("Use name instead."))
	})

	It("refuses duplicate field names", func() {
		_, err := graphql.NewObject("User").
			Field("id", graphql.NamedTypeOf("ID"), nil).
			Field("id", graphql.NamedTypeOf("ID"), nil).
			Build()
		Expect(err).Should(MatchError(`Duplicate field "id" on Object "User".`))
	})

	It("refuses duplicate argument names", func() {
		_, err := graphql.NewObject("Query").
			FieldWith(graphql.FieldConfig{
				Name: "f",
				Type: graphql.NamedTypeOf("Int"),
				Args: []graphql.ArgumentConfig{
					{Name: "x", Type: graphql.NamedTypeOf("Int")},
					{Name: "x", Type: graphql.NamedTypeOf("Int")},
				},
			}).
			Build()
		Expect(err).Should(MatchError(`Duplicate argument "x" on field "f" of Object "Query".`))
	})

	It("requires names and types", func() {
		_, err := graphql.NewObject("").Build()
		Expect(err).Should(MatchError("Must provide name for Object."))

		_, err = graphql.NewObject("User").Field("", graphql.NamedTypeOf("ID"), nil).Build()
		Expect(err).Should(MatchError(`Must provide name for field of Object "User".`))

		_, err = graphql.NewObject("User").Field("id", nil, nil).Build()
		Expect(err).Should(MatchError(`Must provide type for field "id" of Object "User".`))
	})
})
