package yargon

import "fmt"

// Succeed always succeeds with value, consuming nothing.
func Succeed[V, T any](value V) Parser[V, T] {
	return SucceedNamed[V, T](value, "")
}

// SucceedNamed is Succeed, additionally recording name as an expectation
// of the resulting outcome (success or not — here, always success).
func SucceedNamed[V, T any](value V, name string) Parser[V, T] {
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		return Success[V, T](value, input).WithExpectation(name)
	}
}

// Fail always fails, consuming nothing and attaching no diagnostics of its
// own. Callers chain WithMessage/WithExpectation to annotate it.
func Fail[V, T any]() Parser[V, T] {
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		return Failure[V, T](input)
	}
}

// Token succeeds with the current token when predicate holds for it,
// advancing one position; it fails at end of input or when predicate
// rejects the token. name, if non-empty, is recorded as an expectation in
// every branch.
func Token[T any](predicate func(T) bool, name string) Parser[T, T] {
	if predicate == nil {
		violate("yargon: nil predicate passed to Token")
	}
	return func(input TokenStream[T]) ParseOutcome[T, T] {
		requireStream(input)
		if input.AtEnd() {
			msg := NewMessage(Error, "Unexpected end of input.")
			return Failure[T, T](input).WithMessage(&msg).WithExpectation(name)
		}
		cur := input.Current()
		if predicate(cur) {
			return Success[T, T](cur, input.Advance()).WithExpectation(name)
		}
		msg := NewMessage(Error, fmt.Sprintf("Unexpected token %s.", display(cur)))
		return Failure[T, T](input).WithMessage(&msg).WithExpectation(name)
	}
}

// End succeeds with a unit value at end of input, and fails otherwise.
func End[T any]() Parser[struct{}, T] {
	return func(input TokenStream[T]) ParseOutcome[struct{}, T] {
		requireStream(input)
		if input.AtEnd() {
			return Success[struct{}, T](struct{}{}, input).WithExpectation("end of input")
		}
		msg := NewMessage(Error, fmt.Sprintf("Unexpected token %s.", display(input.Current())))
		return Failure[struct{}, T](input).WithMessage(&msg).WithExpectation("end of input")
	}
}

// display renders a token for inclusion in a diagnostic. The core is
// parametric in the token type and assumes only that it can be shown this
// way; %v uses T's String method when it implements fmt.Stringer.
func display[T any](t T) string {
	return fmt.Sprintf("%v", t)
}
