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

package combinator_test

import (
	"github.com/lunarch/selene/graphql/combinator"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// run applies p to input and returns the parsed value, the unconsumed suffix and the error.
func run[T any](p combinator.Parser[T], input string) (T, string, error) {
	v, state, err := p(combinator.NewState([]byte(input)))
	return v, string(state.Rest()), err
}

func failureAt(err error) int {
	failure, ok := err.(*combinator.Failure)
	Expect(ok).Should(BeTrue(), "expected a *combinator.Failure, got %T", err)
	return failure.Offset
}

var _ = Describe("Primitives", func() {
	It("matches a single byte", func() {
		v, rest, err := run(combinator.Byte('a'), "abc")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(byte('a')))
		Expect(rest).Should(Equal("bc"))

		_, _, err = run(combinator.Byte('a'), "xyz")
		Expect(err).Should(HaveOccurred())
		Expect(failureAt(err)).Should(Equal(0))

		_, _, err = run(combinator.Byte('a'), "")
		Expect(err).Should(HaveOccurred())
	})

	It("matches a byte class", func() {
		digit := combinator.Satisfy("a digit", func(b byte) bool { return b >= '0' && b <= '9' })

		v, rest, err := run(digit, "42")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(byte('4')))
		Expect(rest).Should(Equal("2"))

		_, _, err = run(digit, "x")
		Expect(err).Should(MatchError("expected a digit"))
	})

	It("matches a literal string atomically", func() {
		v, rest, err := run(combinator.Literal("query"), "query {")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal("query"))
		Expect(rest).Should(Equal(" {"))

		// A partial match consumes nothing.
		_, rest, err = run(combinator.Literal("query"), "quiz")
		Expect(err).Should(HaveOccurred())
		Expect(failureAt(err)).Should(Equal(0))
		Expect(rest).Should(Equal("quiz"))
	})

	It("succeeds without consuming via Pure", func() {
		v, rest, err := run(combinator.Pure(42), "abc")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(42))
		Expect(rest).Should(Equal("abc"))
	})

	It("fails without consuming via Fail", func() {
		_, rest, err := run(combinator.Fail[int]("boom"), "abc")
		Expect(err).Should(MatchError("boom"))
		Expect(failureAt(err)).Should(Equal(0))
		Expect(rest).Should(Equal("abc"))
	})
})

var _ = Describe("Sequencing", func() {
	var ab combinator.Parser[byte]

	BeforeEach(func() {
		ab = combinator.SkipThen(combinator.Byte('a'), combinator.Byte('b'))
	})

	It("maps results", func() {
		upper := combinator.Map(combinator.Byte('a'), func(b byte) string { return string(b - 32) })
		v, _, err := run(upper, "a")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal("A"))
	})

	It("binds a parser on the previous result", func() {
		// Parse a byte, then require its duplicate.
		doubled := combinator.Bind(combinator.Byte('x'), func(b byte) combinator.Parser[byte] {
			return combinator.Byte(b)
		})
		v, rest, err := run(doubled, "xxy")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(byte('x')))
		Expect(rest).Should(Equal("y"))

		_, _, err = run(doubled, "xy")
		Expect(err).Should(HaveOccurred())
		Expect(failureAt(err)).Should(Equal(1))
	})

	It("keeps the selected side in SkipThen and ThenSkip", func() {
		v, rest, err := run(ab, "ab!")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(byte('b')))
		Expect(rest).Should(Equal("!"))

		first := combinator.ThenSkip(combinator.Byte('a'), combinator.Byte('b'))
		v, rest, err = run(first, "ab!")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(byte('a')))
		Expect(rest).Should(Equal("!"))
	})
})

var _ = Describe("OneOf", func() {
	It("tries alternatives in declared order", func() {
		p := combinator.OneOf(combinator.Literal("aa"), combinator.Literal("ab"))
		v, _, err := run(p, "ab")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal("ab"))
	})

	It("fails the whole alternation when an alternative fails after consuming", func() {
		consuming := combinator.SkipThen(combinator.Byte('a'), combinator.Byte('b'))
		fallback := combinator.SkipThen(combinator.Byte('a'), combinator.Byte('c'))
		p := combinator.OneOf(
			combinator.Map(consuming, func(byte) string { return "ab" }),
			combinator.Map(fallback, func(byte) string { return "ac" }),
		)

		// "ac" would match the fallback, but the first alternative consumed "a" before failing.
		_, _, err := run(p, "ac")
		Expect(err).Should(HaveOccurred())
		Expect(failureAt(err)).Should(Equal(1))
	})

	It("reports the deepest failure when every alternative rejects", func() {
		p := combinator.OneOf(combinator.Literal("x"), combinator.Literal("y"))
		_, _, err := run(p, "z")
		Expect(err).Should(HaveOccurred())
		Expect(failureAt(err)).Should(Equal(0))
	})
})

var _ = Describe("Maybe", func() {
	It("converts failure without consumption into an empty Opt", func() {
		p := combinator.Maybe(combinator.Byte('a'))

		v, rest, err := run(p, "ab")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v.Set).Should(BeTrue())
		Expect(v.Value).Should(Equal(byte('a')))
		Expect(rest).Should(Equal("b"))

		v, rest, err = run(p, "xy")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v.Set).Should(BeFalse())
		Expect(rest).Should(Equal("xy"))
	})

	It("propagates failure after consumption", func() {
		p := combinator.Maybe(combinator.SkipThen(combinator.Byte('a'), combinator.Byte('b')))
		_, _, err := run(p, "ax")
		Expect(err).Should(HaveOccurred())
		Expect(failureAt(err)).Should(Equal(1))
	})

	It("returns the wrapped value or a default through Or", func() {
		Expect(combinator.Some("x").Or("default")).Should(Equal("x"))
		Expect(combinator.Opt[string]{}.Or("default")).Should(Equal("default"))
	})
})

var _ = Describe("Repetition", func() {
	digit := combinator.Satisfy("a digit", func(b byte) bool { return b >= '0' && b <= '9' })

	It("collects zero or more with Many", func() {
		v, rest, err := run(combinator.Many(digit), "123ab")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal([]byte("123")))
		Expect(rest).Should(Equal("ab"))

		v, rest, err = run(combinator.Many(digit), "ab")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(BeEmpty())
		Expect(rest).Should(Equal("ab"))
	})

	It("requires at least one with Many1", func() {
		v, _, err := run(combinator.Many1(digit), "7")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal([]byte("7")))

		_, _, err = run(combinator.Many1(digit), "x")
		Expect(err).Should(MatchError("expected a digit"))
	})

	It("stops Many at a failure after consumption", func() {
		item := combinator.SkipThen(combinator.Byte('('), combinator.ThenSkip(digit, combinator.Byte(')')))
		_, _, err := run(combinator.Many(item), "(1)(2")
		Expect(err).Should(HaveOccurred())
		Expect(failureAt(err)).Should(Equal(5))
	})

	It("separates items with SepBy1 and SepBy", func() {
		comma := combinator.Byte(',')

		v, rest, err := run(combinator.SepBy1(digit, comma), "1,2,3]")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal([]byte("123")))
		Expect(rest).Should(Equal("]"))

		_, _, err = run(combinator.SepBy1(digit, comma), "]")
		Expect(err).Should(HaveOccurred())

		v, rest, err = run(combinator.SepBy(digit, comma), "]")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(BeEmpty())
		Expect(rest).Should(Equal("]"))
	})
})

var _ = Describe("Where", func() {
	letters := combinator.Map(
		combinator.Many1(combinator.Satisfy("a letter", func(b byte) bool { return b >= 'a' && b <= 'z' })),
		func(bs []byte) string { return string(bs) })

	It("rejects at the entry offset so an enclosing OneOf can fall through", func() {
		notOn := combinator.Where(letters, `unexpected "on"`, func(v string) bool { return v != "on" })
		p := combinator.OneOf(
			notOn,
			combinator.Map(combinator.Literal("on"), func(string) string { return "keyword" }),
		)

		v, _, err := run(p, "once")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal("once"))

		v, _, err = run(p, "on")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal("keyword"))
	})

	It("passes values accepted by the guard", func() {
		even := combinator.Where(
			combinator.Map(combinator.Satisfy("a digit", func(b byte) bool { return b >= '0' && b <= '9' }),
				func(b byte) int { return int(b - '0') }),
			"expected an even digit",
			func(v int) bool { return v%2 == 0 })

		v, _, err := run(even, "4")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(4))

		_, _, err = run(even, "3")
		Expect(err).Should(MatchError("expected an even digit"))
		Expect(failureAt(err)).Should(Equal(0))
	})
})

var _ = Describe("Label", func() {
	It("renames failures without consumption", func() {
		p := combinator.Label(combinator.Byte('a'), "expected the letter a")
		_, _, err := run(p, "x")
		Expect(err).Should(MatchError("expected the letter a"))
	})

	It("leaves failures after consumption alone", func() {
		p := combinator.Label(
			combinator.SkipThen(combinator.Byte('a'), combinator.Byte('b')),
			"expected ab")
		_, _, err := run(p, "ax")
		Expect(err).Should(MatchError(`expected 'b'`))
	})
})

var _ = Describe("Lazy", func() {
	It("supports recursive grammars", func() {
		// nested :: '(' nested ')' | 'x'
		var nested combinator.Parser[int]
		nested = combinator.Lazy(func() combinator.Parser[int] {
			return combinator.OneOf(
				combinator.SkipThen(combinator.Byte('('),
					combinator.Bind(nested, func(depth int) combinator.Parser[int] {
						return combinator.Map(combinator.Byte(')'), func(byte) int { return depth + 1 })
					})),
				combinator.Map(combinator.Byte('x'), func(byte) int { return 0 }),
			)
		})

		v, _, err := run(nested, "(((x)))")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(3))

		_, _, err = run(nested, "((x)")
		Expect(err).Should(HaveOccurred())
	})
})
