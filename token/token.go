// Package token provides a concrete token type for instantiating the
// generic parser core at something more useful than a bare int, plus a
// small hand-written scanner that turns arithmetic source text into a
// slice of tokens.
package token

import (
	"fmt"
	"unicode"

	yargon "github.com/cyberlect/yargon-parsing"
)

// Kind classifies a Token.
type Kind int

const (
	Invalid Kind = iota
	Number
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
	EOF
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case LParen:
		return "("
	case RParen:
		return ")"
	case EOF:
		return "end of input"
	default:
		return "invalid"
	}
}

// Token is a lexeme together with its kind and source span.
type Token struct {
	Kind Kind
	Text string
	Span yargon.Span
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "<eof>"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// Scan lexes source into a sequence of Tokens, terminated by a single EOF
// token, or returns an error describing the first unrecognized rune. It
// scans by hand, rune at a time, in the manner of a recursive-descent
// scanner rather than through a regular-expression engine.
func Scan(source string) ([]Token, error) {
	var tokens []Token
	pos := yargon.DefaultSourcePosition()
	runes := []rune(source)
	i := 0

	advance := func(n int) yargon.Span {
		start := pos
		for j := 0; j < n; j++ {
			pos = pos.AddString(string(runes[i+j]))
		}
		i += n
		return yargon.Span{Start: start, End: pos}
	}

	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			advance(1)
		case r == '+':
			tokens = append(tokens, Token{Kind: Plus, Text: "+", Span: advance(1)})
		case r == '-':
			tokens = append(tokens, Token{Kind: Minus, Text: "-", Span: advance(1)})
		case r == '*':
			tokens = append(tokens, Token{Kind: Star, Text: "*", Span: advance(1)})
		case r == '/':
			tokens = append(tokens, Token{Kind: Slash, Text: "/", Span: advance(1)})
		case r == '(':
			tokens = append(tokens, Token{Kind: LParen, Text: "(", Span: advance(1)})
		case r == ')':
			tokens = append(tokens, Token{Kind: RParen, Text: ")", Span: advance(1)})
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			n := i - start
			text := string(runes[start:i])
			i = start
			tokens = append(tokens, Token{Kind: Number, Text: text, Span: advance(n)})
		default:
			return nil, fmt.Errorf("unrecognized character %q at %s", r, pos)
		}
	}

	tokens = append(tokens, Token{Kind: EOF, Span: yargon.Span{Start: pos, End: pos}})
	return tokens, nil
}

// NewStream wraps tokens in the library's reference TokenStream
// implementation.
func NewStream(tokens []Token) yargon.SliceStream[Token] {
	return yargon.NewSliceStream(tokens)
}
