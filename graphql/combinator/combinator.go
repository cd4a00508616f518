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

// Package combinator provides a minimal parser combinator kernel over a byte-indexed input.
//
// A Parser[T] consumes a prefix of the input held in a State and either succeeds with a value of
// type T and the advanced State, or fails with a *Failure carrying a byte offset and a message.
//
// Alternation (OneOf) tries its alternatives in declared order. An alternative that fails without
// consuming input lets the next one run; an alternative that fails after consuming input fails the
// whole alternation. This gives predictable LL(1)-style behavior: a grammar marks the few places
// where semantic lookahead is needed with Where (whose rejection is reported at the parser's entry
// offset and therefore never counts as consumption) and Maybe.
package combinator

import (
	"fmt"
	"sync"
)

// State is an immutable cursor over the input: the full byte sequence plus the offset of the next
// unconsumed byte. Advancing a parser produces a new State; the input bytes are never copied.
type State struct {
	input  []byte
	offset int
}

// NewState returns a State positioned at the beginning of input.
func NewState(input []byte) State {
	return State{input: input}
}

// Offset returns the number of bytes consumed so far.
func (s State) Offset() int {
	return s.offset
}

// Rest returns the unconsumed suffix of the input.
func (s State) Rest() []byte {
	return s.input[s.offset:]
}

// AtEnd reports whether the whole input has been consumed.
func (s State) AtEnd() bool {
	return s.offset >= len(s.input)
}

// advance returns a State that is n bytes further into the input.
func (s State) advance(n int) State {
	return State{input: s.input, offset: s.offset + n}
}

// peek returns the byte under the cursor. The second return value is false at end of input.
func (s State) peek() (byte, bool) {
	if s.AtEnd() {
		return 0, false
	}
	return s.input[s.offset], true
}

// Failure describes a parse failure. Offset is the byte offset the failing parser started at for a
// rejection that consumed nothing, or some later offset when input was consumed before the failure
// was discovered; OneOf uses the distinction to decide whether the next alternative may run.
type Failure struct {
	Offset  int
	Message string
}

var _ error = (*Failure)(nil)

// Error implements Go's error interface.
func (f *Failure) Error() string {
	return f.Message
}

// NewFailure creates a Failure at the given offset.
func NewFailure(offset int, format string, a ...interface{}) *Failure {
	if len(a) > 0 {
		return &Failure{Offset: offset, Message: fmt.Sprintf(format, a...)}
	}
	return &Failure{Offset: offset, Message: format}
}

// consumedBy reports whether the failure occurred past the given entry state, i.e., whether the
// failing parser consumed input before failing.
func (f *Failure) consumedBy(entry State) bool {
	return f.Offset > entry.offset
}

// Parser consumes a prefix of the State's input and produces a T.
type Parser[T any] func(State) (T, State, error)

// Opt carries the result of Maybe: either a present value or nothing.
type Opt[T any] struct {
	Value T
	Set   bool
}

// Some wraps a present value in an Opt.
func Some[T any](value T) Opt[T] {
	return Opt[T]{Value: value, Set: true}
}

// Or returns the wrapped value, or def when nothing is present.
func (o Opt[T]) Or(def T) T {
	if o.Set {
		return o.Value
	}
	return def
}

//===----------------------------------------------------------------------------------------====//
// Primitives
//===----------------------------------------------------------------------------------------====//

// Pure succeeds with value without consuming input.
func Pure[T any](value T) Parser[T] {
	return func(s State) (T, State, error) {
		return value, s, nil
	}
}

// Fail fails at the current offset with the given message, consuming nothing.
func Fail[T any](message string) Parser[T] {
	return func(s State) (T, State, error) {
		var zero T
		return zero, s, NewFailure(s.offset, message)
	}
}

// Byte matches exactly the byte b.
func Byte(b byte) Parser[byte] {
	return func(s State) (byte, State, error) {
		if c, ok := s.peek(); ok && c == b {
			return c, s.advance(1), nil
		}
		return 0, s, NewFailure(s.offset, fmt.Sprintf("expected %q", b))
	}
}

// Satisfy matches any single byte accepted by pred. desc names the byte class in failure messages.
func Satisfy(desc string, pred func(byte) bool) Parser[byte] {
	return func(s State) (byte, State, error) {
		if c, ok := s.peek(); ok && pred(c) {
			return c, s.advance(1), nil
		}
		return 0, s, NewFailure(s.offset, "expected "+desc)
	}
}

// Literal matches the literal string lit. The match is atomic: a partial match consumes nothing, so
// an enclosing OneOf may still try its next alternative.
func Literal(lit string) Parser[string] {
	return func(s State) (string, State, error) {
		rest := s.Rest()
		if len(rest) >= len(lit) && string(rest[:len(lit)]) == lit {
			return lit, s.advance(len(lit)), nil
		}
		return "", s, NewFailure(s.offset, fmt.Sprintf("expected %q", lit))
	}
}

//===----------------------------------------------------------------------------------------====//
// Composition
//===----------------------------------------------------------------------------------------====//

// Map transforms the result of p with f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(s State) (U, State, error) {
		v, next, err := p(s)
		if err != nil {
			var zero U
			return zero, s, err
		}
		return f(v), next, nil
	}
}

// Bind sequences p with a parser derived from its result.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(s State) (U, State, error) {
		v, next, err := p(s)
		if err != nil {
			var zero U
			return zero, s, err
		}
		return f(v)(next)
	}
}

// SkipThen runs a and b in sequence, keeping b's result.
func SkipThen[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return func(s State) (B, State, error) {
		_, next, err := a(s)
		if err != nil {
			var zero B
			return zero, s, err
		}
		return b(next)
	}
}

// ThenSkip runs a and b in sequence, keeping a's result.
func ThenSkip[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return func(s State) (A, State, error) {
		v, next, err := a(s)
		if err != nil {
			var zero A
			return zero, s, err
		}
		_, next, err = b(next)
		if err != nil {
			var zero A
			return zero, s, err
		}
		return v, next, nil
	}
}

// OneOf tries each alternative in declared order from the same entry state. An alternative that
// fails without consuming input lets the next one run; one that fails after consuming input fails
// the whole alternation. When every alternative rejects, the failure that reached deepest into the
// input is reported.
func OneOf[T any](alternatives ...Parser[T]) Parser[T] {
	return func(s State) (T, State, error) {
		var best *Failure
		for _, p := range alternatives {
			v, next, err := p(s)
			if err == nil {
				return v, next, nil
			}

			failure, ok := err.(*Failure)
			if !ok || failure.consumedBy(s) {
				var zero T
				return zero, s, err
			}
			if best == nil || failure.Offset > best.Offset {
				best = failure
			}
		}

		var zero T
		if best == nil {
			return zero, s, NewFailure(s.offset, "no alternative matched")
		}
		return zero, s, best
	}
}

// Maybe converts a failure without consumption into a success carrying an empty Opt. A failure
// after consumption still propagates.
func Maybe[T any](p Parser[T]) Parser[Opt[T]] {
	return func(s State) (Opt[T], State, error) {
		v, next, err := p(s)
		if err == nil {
			return Some(v), next, nil
		}
		if failure, ok := err.(*Failure); ok && !failure.consumedBy(s) {
			return Opt[T]{}, s, nil
		}
		return Opt[T]{}, s, err
	}
}

// Many collects zero or more results of p, stopping at the first failure without consumption. To
// guarantee termination it also stops when p succeeds without consuming input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(s State) ([]T, State, error) {
		var results []T
		for {
			v, next, err := p(s)
			if err != nil {
				if failure, ok := err.(*Failure); ok && !failure.consumedBy(s) {
					return results, s, nil
				}
				return nil, s, err
			}
			if next.offset == s.offset {
				return results, s, nil
			}
			results = append(results, v)
			s = next
		}
	}
}

// Many1 collects one or more results of p.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(s State) ([]T, State, error) {
		first, next, err := p(s)
		if err != nil {
			return nil, s, err
		}
		rest, next, err := Many(p)(next)
		if err != nil {
			return nil, s, err
		}
		return append([]T{first}, rest...), next, nil
	}
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(s State) ([]T, State, error) {
		first, next, err := p(s)
		if err != nil {
			return nil, s, err
		}
		rest, next, err := Many(SkipThen(sep, p))(next)
		if err != nil {
			return nil, s, err
		}
		return append([]T{first}, rest...), next, nil
	}
}

// SepBy parses zero or more p separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(s State) ([]T, State, error) {
		results, next, err := SepBy1(p, sep)(s)
		if err != nil {
			if failure, ok := err.(*Failure); ok && !failure.consumedBy(s) {
				return nil, s, nil
			}
			return nil, s, err
		}
		return results, next, nil
	}
}

// Where applies a semantic guard to the result of p. A rejection is reported at p's entry offset,
// so from the point of view of an enclosing OneOf the guarded parser consumed nothing and the next
// alternative may run.
func Where[T any](p Parser[T], message string, pred func(T) bool) Parser[T] {
	return func(s State) (T, State, error) {
		v, next, err := p(s)
		if err != nil {
			var zero T
			return zero, s, err
		}
		if !pred(v) {
			var zero T
			return zero, s, NewFailure(s.offset, message)
		}
		return v, next, nil
	}
}

// Label replaces the message of a failure without consumption with message. Failures after
// consumption are left alone since they already point at the interesting position.
func Label[T any](p Parser[T], message string) Parser[T] {
	return func(s State) (T, State, error) {
		v, next, err := p(s)
		if err != nil {
			if failure, ok := err.(*Failure); ok && !failure.consumedBy(s) {
				var zero T
				return zero, s, NewFailure(s.offset, message)
			}
			var zero T
			return zero, s, err
		}
		return v, next, nil
	}
}

// Lazy defers construction of p until its first use so grammar rules can refer back to themselves
// without eager cyclic construction. The built parser is cached after the first call; the wrapper
// is safe for concurrent first use.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return func(s State) (T, State, error) {
		once.Do(func() {
			p = build()
		})
		return p(s)
	}
}
