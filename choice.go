package yargon

import (
	"fmt"
	"strings"
)

// Otherwise tries first; if it fails, tries second against the same
// original input and combines the two failures via the tie-break rule:
// whichever consumed further wins outright, and an exact tie merges both.
func Otherwise[V, T any](first, second Parser[V, T]) Parser[V, T] {
	requireParser(first, "Otherwise")
	requireParser(second, "Otherwise")
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		r1 := first(input)
		if r1.successful {
			return r1
		}
		r2 := second(input)
		return or(r1, r2)
	}
}

// Not succeeds with a unit value, consuming nothing, iff p fails. If p
// succeeds, Not fails with a message built from p's expectations (or a
// generic fallback when it recorded none), also consuming nothing.
func Not[V, T any](p Parser[V, T]) Parser[struct{}, T] {
	requireParser(p, "Not")
	return func(input TokenStream[T]) ParseOutcome[struct{}, T] {
		requireStream(input)
		res := p(input)
		if !res.successful {
			return Success[struct{}, T](struct{}{}, input)
		}
		text := "Unexpected token."
		if len(res.expectations) > 0 {
			text = fmt.Sprintf("Unexpected %s.", strings.Join(res.expectations, ", "))
		}
		msg := NewMessage(Error, text)
		return Failure[struct{}, T](input).WithMessage(&msg)
	}
}

// Except runs p only if e fails at the current input; if e succeeds,
// Except fails outright, without running p, and without consuming
// anything. Structurally this is ThenDiscard(Not(e), p) — run Not(e) for
// its gating effect, keep p's value — but it is implemented directly so
// the failure reads "Parser should not have succeeded." rather than Not's
// generic "Unexpected ...".
func Except[V, U, T any](p Parser[V, T], e Parser[U, T]) Parser[V, T] {
	requireParser(p, "Except")
	requireParser(e, "Except")
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		guard := e(input)
		if guard.successful {
			msg := NewMessage(Error, "Parser should not have succeeded.")
			return Failure[V, T](input).WithMessage(&msg)
		}
		return p(input)
	}
}
