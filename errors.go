package yargon

import "fmt"

// ContractViolation signals a programmer error: a nil token stream, a nil
// parser argument to a combinator constructor, or a negative repeat count.
// It is always raised via panic, never returned as a value — a parse
// failure is a ParseOutcome, not a ContractViolation.
type ContractViolation struct {
	Message string
}

func (e *ContractViolation) Error() string {
	return e.Message
}

func violate(format string, args ...interface{}) {
	panic(&ContractViolation{Message: fmt.Sprintf(format, args...)})
}

// requireStream panics with a ContractViolation if input is nil. Every
// combinator-returned Parser calls this at invocation time.
func requireStream[T any](input TokenStream[T]) {
	if input == nil {
		violate("yargon: nil token stream passed to parser")
	}
}

// requireParser panics with a ContractViolation if p is nil. Combinator
// constructors call this eagerly, at construction time.
func requireParser[V, T any](p Parser[V, T], context string) {
	if p == nil {
		violate("yargon: nil parser argument to %s", context)
	}
}
