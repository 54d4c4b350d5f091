package yargon

import (
	"fmt"
	"strings"
)

// Once runs p once and wraps its value in a single-element slice, so it
// composes with the other sequence-typed combinators.
func Once[V, T any](p Parser[V, T]) Parser[[]V, T] {
	requireParser(p, "Once")
	return Select(p, func(v V) []V { return []V{v} })
}

// Many repeatedly applies p, collecting successful values, until p fails.
// Many always succeeds. Its state machine has two states, Accumulating and
// Stopped: a success that advances the remainder stays Accumulating; a
// success that does not advance is collected once and then the loop
// Stops, to guarantee termination on a zero-consumption success; a failure
// discards its own diagnostics and Stops. The final remainder, and the
// concatenation of every collected success's messages/expectations, is
// that of the last successful iteration (or the original input if none
// succeeded).
func Many[V, T any](p Parser[V, T]) Parser[[]V, T] {
	requireParser(p, "Many")
	return func(input TokenStream[T]) ParseOutcome[[]V, T] {
		requireStream(input)
		results := make([]V, 0)
		var messages []Diagnostic
		var expectations []string
		current := input
		for {
			res := p(current)
			if !res.successful {
				break
			}
			results = append(results, res.value)
			messages = mergeMessages(messages, res.messages)
			expectations = mergeExpectations(expectations, res.expectations)
			stalled := res.remainder.Remaining() == current.Remaining()
			current = res.remainder
			if stalled {
				break
			}
		}
		out := Success[[]V, T](results, current)
		out.messages = messages
		out.expectations = expectations
		return out
	}
}

// AtLeastOnce fails iff the first invocation of p fails, preserving its
// diagnostics exactly. Otherwise it behaves like Once(p) followed by
// Many(p), concatenating the results.
func AtLeastOnce[V, T any](p Parser[V, T]) Parser[[]V, T] {
	requireParser(p, "AtLeastOnce")
	return Then(Once(p), func(first []V) Parser[[]V, T] {
		return Select(Many(p), func(rest []V) []V {
			out := make([]V, 0, len(first)+len(rest))
			out = append(out, first...)
			out = append(out, rest...)
			return out
		})
	})
}

// Maybe attempts p once; on success it wraps the value in a single-element
// slice, and on failure it succeeds with an empty slice and no
// diagnostics at all — the failed attempt's messages and expectations are
// dropped, because the absence of p is legitimate. This falls directly out
// of Otherwise: when Once(p) fails, Otherwise returns the unconditional
// Succeed branch untouched, without merging in the failed branch.
func Maybe[V, T any](p Parser[V, T]) Parser[[]V, T] {
	requireParser(p, "Maybe")
	return Otherwise(Once(p), Succeed[[]V, T]([]V{}))
}

// Until repeatedly applies p while stop has not yet succeeded, then
// consumes stop. It fails iff stop never succeeds before p itself fails
// (typically at end of input). The result is the slice p collected; stop
// runs only for its effect on the remainder, messages, and expectations.
func Until[V, U, T any](p Parser[V, T], stop Parser[U, T]) Parser[[]V, T] {
	requireParser(p, "Until")
	requireParser(stop, "Until")
	collected := Many(Except(p, stop))
	return Then(collected, func(items []V) Parser[[]V, T] {
		return Select(stop, func(U) []V { return items })
	})
}

// Take runs p exactly n times (n >= 0), failing as soon as any iteration
// fails. n == 0 always succeeds with an empty slice and the original
// input as remainder.
func Take[V, T any](p Parser[V, T], n int) Parser[[]V, T] {
	requireParser(p, "Take")
	if n < 0 {
		violate("yargon: Take requires n >= 0, got %d", n)
	}
	return func(input TokenStream[T]) ParseOutcome[[]V, T] {
		requireStream(input)
		if n == 0 {
			return Success[[]V, T]([]V{}, input)
		}
		results := make([]V, 0, n)
		var messages []Diagnostic
		var expectations []string
		current := input
		for i := 0; i < n; i++ {
			res := p(current)
			if !res.successful {
				failure := Failure[[]V, T](res.remainder)
				failure.messages = mergeMessages(messages, res.messages)
				failure.expectations = mergeExpectations(expectations, res.expectations)
				if len(res.messages) == 0 {
					text := "Unexpected end of input."
					if !current.AtEnd() {
						text = fmt.Sprintf("Unexpected token %s.", display(current.Current()))
					}
					msg := NewMessage(Error, text)
					failure = failure.WithMessage(&msg)
				}
				failure = failure.WithExpectation(fmt.Sprintf("%d repetitions of %s", n, strings.Join(res.expectations, ", ")))
				return failure
			}
			results = append(results, res.value)
			messages = mergeMessages(messages, res.messages)
			expectations = mergeExpectations(expectations, res.expectations)
			current = res.remainder
		}
		out := Success[[]V, T](results, current)
		out.messages = messages
		out.expectations = expectations
		return out
	}
}

// Concat sequences two sequence-typed parsers, concatenating their results:
// then(a, xs => select(b, ys => xs ++ ys)).
func Concat[V, T any](a, b Parser[[]V, T]) Parser[[]V, T] {
	requireParser(a, "Concat")
	requireParser(b, "Concat")
	return Then(a, func(xs []V) Parser[[]V, T] {
		return Select(b, func(ys []V) []V {
			out := make([]V, 0, len(xs)+len(ys))
			out = append(out, xs...)
			out = append(out, ys...)
			return out
		})
	})
}
