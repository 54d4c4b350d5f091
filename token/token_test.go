package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSimpleExpression(t *testing.T) {
	toks, err := Scan("12 + 3 * (4 - 5)")
	require.NoError(t, err)
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{Number, Plus, Number, Star, LParen, Number, Minus, Number, RParen, EOF}, kinds)
	assert.Equal(t, "12", toks[0].Text)
	assert.Equal(t, "4", toks[5].Text)
}

func TestScanDecimalNumber(t *testing.T) {
	toks, err := Scan("3.14")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "3.14", toks[0].Text)
	assert.Equal(t, Number, toks[0].Kind)
}

func TestScanRejectsUnknownCharacter(t *testing.T) {
	_, err := Scan("1 & 2")
	require.Error(t, err)
}

func TestScanEmptySourceYieldsOnlyEOF(t *testing.T) {
	toks, err := Scan("")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
}

func TestScanTracksSpans(t *testing.T) {
	toks, err := Scan("1 + 22")
	require.NoError(t, err)
	assert.Equal(t, 0, toks[0].Span.Start.Offset)
	assert.Equal(t, 1, toks[0].Span.End.Offset)
	assert.Equal(t, 4, toks[2].Span.Start.Offset)
	assert.Equal(t, 6, toks[2].Span.End.Offset)
}

func TestNewStreamWrapsTokens(t *testing.T) {
	toks, err := Scan("1")
	require.NoError(t, err)
	s := NewStream(toks)
	assert.False(t, s.AtEnd())
	assert.Equal(t, Number, s.Current().Kind)
}
