package yargon

// ParseOutcome is the algebraic result of running a Parser: either a
// success carrying a value and the unconsumed remainder, or a failure —
// plus, in both cases, the accumulated diagnostic messages and
// expectations. Callers must not read Value() unless Successful() is true;
// its contents are unspecified otherwise.
type ParseOutcome[V, T any] struct {
	successful   bool
	value        V
	remainder    TokenStream[T]
	messages     []Diagnostic
	expectations []string
}

// Success builds a successful outcome.
func Success[V, T any](value V, remainder TokenStream[T]) ParseOutcome[V, T] {
	return ParseOutcome[V, T]{successful: true, value: value, remainder: remainder}
}

// Failure builds a failing outcome with no diagnostics yet attached.
func Failure[V, T any](remainder TokenStream[T]) ParseOutcome[V, T] {
	return ParseOutcome[V, T]{successful: false, remainder: remainder}
}

// Successful reports whether the parse succeeded.
func (o ParseOutcome[V, T]) Successful() bool { return o.successful }

// Value is defined only when Successful() is true.
func (o ParseOutcome[V, T]) Value() V { return o.value }

// Remainder is always defined: the input stream the parser refused to
// consume, or the furthest position reached on failure.
func (o ParseOutcome[V, T]) Remainder() TokenStream[T] { return o.remainder }

// Messages returns a defensive copy of the accumulated diagnostic log, in
// the order messages were attached.
func (o ParseOutcome[V, T]) Messages() []Diagnostic {
	out := make([]Diagnostic, len(o.messages))
	copy(out, o.messages)
	return out
}

// Expectations returns a defensive copy of the de-duplicated, insertion-
// ordered set of expectation names.
func (o ParseOutcome[V, T]) Expectations() []string {
	out := make([]string, len(o.expectations))
	copy(out, o.expectations)
	return out
}

// WithMessage appends a diagnostic to the outcome's message log. A nil m
// is ignored; everything else about the outcome is preserved.
func (o ParseOutcome[V, T]) WithMessage(m *Diagnostic) ParseOutcome[V, T] {
	if m == nil {
		return o
	}
	next := make([]Diagnostic, len(o.messages), len(o.messages)+1)
	copy(next, o.messages)
	o.messages = append(next, *m)
	return o
}

// WithMessages appends each non-nil diagnostic in ms, in order.
func (o ParseOutcome[V, T]) WithMessages(ms []*Diagnostic) ParseOutcome[V, T] {
	next := make([]Diagnostic, len(o.messages), len(o.messages)+len(ms))
	copy(next, o.messages)
	for _, m := range ms {
		if m != nil {
			next = append(next, *m)
		}
	}
	o.messages = next
	return o
}

// WithExpectation unions a single expectation name into the outcome's
// expectation set. An empty name is ignored.
func (o ParseOutcome[V, T]) WithExpectation(e string) ParseOutcome[V, T] {
	if e == "" {
		return o
	}
	o.expectations = mergeExpectations(o.expectations, []string{e})
	return o
}

// WithExpectations unions every non-empty name in es into the outcome's
// expectation set.
func (o ParseOutcome[V, T]) WithExpectations(es []string) ParseOutcome[V, T] {
	o.expectations = mergeExpectations(o.expectations, es)
	return o
}

// mergeMessages concatenates two message logs in order. Order is
// significant for messages, unlike expectations.
func mergeMessages(a, b []Diagnostic) []Diagnostic {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]Diagnostic, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// mergeExpectations unions two expectation sets, preserving first-seen
// order and dropping duplicates and empty names.
func mergeExpectations(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range a {
		add(s)
	}
	for _, s := range b {
		add(s)
	}
	return out
}

// onSuccess replaces a successful outcome with f's result; a failing
// outcome is re-typed to U, keeping its remainder, messages, and
// expectations. This is a free function rather than a method because it
// changes the value's type parameter, which a Go method cannot do.
func onSuccess[V, U, T any](o ParseOutcome[V, T], f func(V, TokenStream[T]) ParseOutcome[U, T]) ParseOutcome[U, T] {
	if o.successful {
		return f(o.value, o.remainder)
	}
	return ParseOutcome[U, T]{
		successful:   false,
		remainder:    o.remainder,
		messages:     o.messages,
		expectations: o.expectations,
	}
}

// and is the logical AND of two already-evaluated outcomes: when both
// succeeded, yields b's value at b's remainder; when either failed, yields
// a failure at b's remainder (the later stage). Messages and expectations
// are always the union of both, in that order.
func and[A, B, T any](a ParseOutcome[A, T], b ParseOutcome[B, T]) ParseOutcome[B, T] {
	messages := mergeMessages(a.messages, b.messages)
	expectations := mergeExpectations(a.expectations, b.expectations)
	if a.successful && b.successful {
		return ParseOutcome[B, T]{
			successful:   true,
			value:        b.value,
			remainder:    b.remainder,
			messages:     messages,
			expectations: expectations,
		}
	}
	return ParseOutcome[B, T]{
		successful:   false,
		remainder:    b.remainder,
		messages:     messages,
		expectations: expectations,
	}
}

// or is the choice-combinator's tie-breaker: first wins if it succeeded, else
// second if it succeeded, else whichever consumed more (smaller
// Remaining()) wins outright, and an exact tie merges both sides' messages
// and expectations under the shared remainder.
func or[V, T any](first, second ParseOutcome[V, T]) ParseOutcome[V, T] {
	if first.successful {
		return first
	}
	if second.successful {
		return second
	}
	r1 := first.remainder.Remaining()
	r2 := second.remainder.Remaining()
	if r1 < r2 {
		return first
	}
	if r2 < r1 {
		return second
	}
	return ParseOutcome[V, T]{
		successful:   false,
		remainder:    first.remainder,
		messages:     mergeMessages(first.messages, second.messages),
		expectations: mergeExpectations(first.expectations, second.expectations),
	}
}
