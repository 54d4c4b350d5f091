package yargon

// Lazy defers evaluation of thunk until the returned parser is actually
// invoked. It exists to break the construction-order cycle a recursive
// grammar runs into — a rule that refers to itself, directly or through a
// handful of others, needs some way to be referred to before it is fully
// built. It is the Go analog of a string-keyed symbol table resolved at
// parse time, expressed with a closure instead of a runtime-resolved name.
//
// Typical use:
//
//	var expr Parser[int, Tok]
//	paren := Then(openParen, func(Tok) Parser[int, Tok] {
//		return Then(Lazy(func() Parser[int, Tok] { return expr }), func(v int) Parser[int, Tok] {
//			return Select(closeParen, func(Tok) int { return v })
//		})
//	})
//	expr = Otherwise(paren, number)
func Lazy[V, T any](thunk func() Parser[V, T]) Parser[V, T] {
	if thunk == nil {
		violate("yargon: nil thunk passed to Lazy")
	}
	return func(input TokenStream[T]) ParseOutcome[V, T] {
		requireStream(input)
		p := thunk()
		requireParser(p, "Lazy thunk result")
		return p(input)
	}
}
