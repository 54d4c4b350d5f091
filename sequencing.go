package yargon

import (
	"fmt"
	"strings"
)

// Then is the monadic bind: run p, and if it succeeds with value v at
// remainder r, run f(v) against r. Messages and expectations are merged in
// order (p's precede the continuation's); if p fails, its failure is
// returned, re-typed to U.
func Then[V, U, T any](p Parser[V, T], f func(V) Parser[U, T]) Parser[U, T] {
	requireParser(p, "Then")
	if f == nil {
		violate("yargon: nil continuation passed to Then")
	}
	return func(input TokenStream[T]) ParseOutcome[U, T] {
		requireStream(input)
		first := p(input)
		return onSuccess(first, func(v V, remainder TokenStream[T]) ParseOutcome[U, T] {
			cont := f(v)
			requireParser(cont, "Then continuation")
			second := cont(remainder)
			return and(first, second)
		})
	}
}

// ThenDiscard is then(p, _ => q): run p, discard its value, then run q and
// keep q's — p runs purely for its effect on the remainder, messages, and
// expectations, which precede q's in the merge exactly as Then produces.
// Except follows the same retention (Except(p, e) behaves like
// ThenDiscard(Not(e), p) and keeps p's value, since p is the second
// argument), though it is implemented directly; see choice.go.
// Until needs the opposite retention — keep the many(...) stage's collected
// value rather than the terminator's — so it is composed directly rather
// than through ThenDiscard; see repetition.go.
func ThenDiscard[V, U, T any](p Parser[V, T], q Parser[U, T]) Parser[U, T] {
	requireParser(p, "ThenDiscard")
	requireParser(q, "ThenDiscard")
	return Then(p, func(V) Parser[U, T] {
		return q
	})
}

// Select is a pure map over a parser's value: Then(p, v => Succeed(f(v))).
func Select[V, U, T any](p Parser[V, T], f func(V) U) Parser[U, T] {
	requireParser(p, "Select")
	if f == nil {
		violate("yargon: nil selector passed to Select")
	}
	return Then(p, func(v V) Parser[U, T] {
		return Succeed[U, T](f(v))
	})
}

// SelectMany binds p to f(v), then projects the pair (v, u) through g. It
// is the building block for query-style composition in host languages that
// offer it; here it is an ordinary generic function.
func SelectMany[V, U, R, T any](p Parser[V, T], f func(V) Parser[U, T], g func(V, U) R) Parser[R, T] {
	requireParser(p, "SelectMany")
	if f == nil {
		violate("yargon: nil binder passed to SelectMany")
	}
	if g == nil {
		violate("yargon: nil projector passed to SelectMany")
	}
	return Then(p, func(v V) Parser[R, T] {
		return Select(f(v), func(u U) R { return g(v, u) })
	})
}

// Where runs p; if it succeeds but pred rejects the value, Where fails at
// the *original* input (the consumption is logically cancelled), with a
// message built from p's expectations. A failure of p simply propagates.
func Where[V, T any](p Parser[V, T], pred func(V) bool) Parser[V, T] {
	requireParser(p, "Where")
	if pred == nil {
		violate("yargon: nil predicate passed to Where")
	}
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		res := p(input)
		if !res.successful {
			return res
		}
		if pred(res.value) {
			return res
		}
		failure := Failure[V, T](input)
		failure.messages = res.messages
		failure.expectations = res.expectations
		text := "Unexpected"
		if len(res.expectations) > 0 {
			text = fmt.Sprintf("Unexpected %s", strings.Join(res.expectations, ", "))
		}
		msg := NewMessage(Error, text)
		return failure.WithMessage(&msg)
	}
}

// Named runs p and attaches name to the resulting expectations, whether p
// succeeded or failed.
func Named[V, T any](p Parser[V, T], name string) Parser[V, T] {
	requireParser(p, "Named")
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		return p(input).WithExpectation(name)
	}
}

// WithMessage runs p and appends m to the resulting messages, regardless
// of whether p succeeded or failed.
func WithMessage[V, T any](p Parser[V, T], m Diagnostic) Parser[V, T] {
	requireParser(p, "WithMessage")
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		return p(input).WithMessage(&m)
	}
}

// WithMessages runs p and appends every diagnostic in ms to the resulting
// messages, in order, regardless of whether p succeeded or failed.
func WithMessages[V, T any](p Parser[V, T], ms []Diagnostic) Parser[V, T] {
	requireParser(p, "WithMessages")
	ptrs := make([]*Diagnostic, len(ms))
	for i := range ms {
		ptrs[i] = &ms[i]
	}
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		return p(input).WithMessages(ptrs)
	}
}

// WithExpectations runs p and unions every name in es into the resulting
// expectation set, regardless of whether p succeeded or failed.
func WithExpectations[V, T any](p Parser[V, T], es []string) Parser[V, T] {
	requireParser(p, "WithExpectations")
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		return p(input).WithExpectations(es)
	}
}
