package main

import (
	"strconv"

	yargon "github.com/cyberlect/yargon-parsing"
	"github.com/cyberlect/yargon-parsing/token"
)

// tok matches a single token of the given kind and names it for diagnostics.
func tok(kind token.Kind) yargon.Parser[token.Token, token.Token] {
	return yargon.Token(func(t token.Token) bool { return t.Kind == kind }, kind.String())
}

// number parses a numeric literal token into its float64 value.
func number() yargon.Parser[float64, token.Token] {
	return yargon.Select(tok(token.Number), func(t token.Token) float64 {
		v, _ := strconv.ParseFloat(t.Text, 64)
		return v
	})
}

// expression is the entry point of the grammar: an additive expression
// followed by end of input (the EOF token token.Scan appends).
func expression() yargon.Parser[float64, token.Token] {
	return yargon.Then(additive(), func(v float64) yargon.Parser[float64, token.Token] {
		return yargon.Select(tok(token.EOF), func(token.Token) float64 { return v })
	})
}

// additive parses a left-associative chain of terms joined by + or -.
func additive() yargon.Parser[float64, token.Token] {
	return yargon.Then(term(), func(first float64) yargon.Parser[float64, token.Token] {
		return yargon.Select(
			yargon.Many(additiveOp()),
			func(rest []func(float64) float64) float64 {
				acc := first
				for _, apply := range rest {
					acc = apply(acc)
				}
				return acc
			},
		)
	})
}

func additiveOp() yargon.Parser[func(float64) float64, token.Token] {
	plus := yargon.SelectMany(tok(token.Plus), func(token.Token) yargon.Parser[float64, token.Token] {
		return term()
	}, func(_ token.Token, rhs float64) func(float64) float64 {
		return func(lhs float64) float64 { return lhs + rhs }
	})
	minus := yargon.SelectMany(tok(token.Minus), func(token.Token) yargon.Parser[float64, token.Token] {
		return term()
	}, func(_ token.Token, rhs float64) func(float64) float64 {
		return func(lhs float64) float64 { return lhs - rhs }
	})
	return yargon.Otherwise(plus, minus)
}

// term parses a left-associative chain of factors joined by * or /.
func term() yargon.Parser[float64, token.Token] {
	return yargon.Then(factor(), func(first float64) yargon.Parser[float64, token.Token] {
		return yargon.Select(
			yargon.Many(termOp()),
			func(rest []func(float64) float64) float64 {
				acc := first
				for _, apply := range rest {
					acc = apply(acc)
				}
				return acc
			},
		)
	})
}

func termOp() yargon.Parser[func(float64) float64, token.Token] {
	star := yargon.SelectMany(tok(token.Star), func(token.Token) yargon.Parser[float64, token.Token] {
		return factor()
	}, func(_ token.Token, rhs float64) func(float64) float64 {
		return func(lhs float64) float64 { return lhs * rhs }
	})
	slash := yargon.SelectMany(tok(token.Slash), func(token.Token) yargon.Parser[float64, token.Token] {
		return factor()
	}, func(_ token.Token, rhs float64) func(float64) float64 {
		return func(lhs float64) float64 { return lhs / rhs }
	})
	return yargon.Otherwise(star, slash)
}

// factor is a number or a parenthesized sub-expression. The parenthesized
// branch refers back to additive through Lazy, since additive is not yet
// built when factor is defined.
func factor() yargon.Parser[float64, token.Token] {
	paren := yargon.SelectMany(
		tok(token.LParen),
		func(token.Token) yargon.Parser[float64, token.Token] {
			return yargon.Lazy(additive)
		},
		func(_ token.Token, inner float64) float64 { return inner },
	)
	closed := yargon.Then(paren, func(v float64) yargon.Parser[float64, token.Token] {
		return yargon.Select(tok(token.RParen), func(token.Token) float64 { return v })
	})
	return yargon.Otherwise(number(), closed)
}
