package yargon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSourcePosition(t *testing.T) {
	p := DefaultSourcePosition()
	assert.Equal(t, SourcePosition{Offset: 0, Line: 1, Column: 1}, p)
}

func TestSourcePositionAddStringNoNewline(t *testing.T) {
	p := DefaultSourcePosition().AddString("abc")
	assert.Equal(t, SourcePosition{Offset: 3, Line: 1, Column: 4}, p)
}

func TestSourcePositionAddStringWithNewline(t *testing.T) {
	p := DefaultSourcePosition().AddString("ab\ncd")
	assert.Equal(t, SourcePosition{Offset: 5, Line: 2, Column: 3}, p)
}

func TestSourcePositionAddStringMultibyte(t *testing.T) {
	p := DefaultSourcePosition().AddString("é")
	assert.Equal(t, 2, p.Offset)
	assert.Equal(t, 1, p.Line)
	assert.Equal(t, 2, p.Column)
}

func TestSpanEmpty(t *testing.T) {
	pos := DefaultSourcePosition()
	assert.True(t, Span{Start: pos, End: pos}.Empty())
	assert.False(t, Span{Start: pos, End: pos.AddString("x")}.Empty())
}

func TestSourcePositionString(t *testing.T) {
	assert.Equal(t, "1:1", DefaultSourcePosition().String())
	assert.Equal(t, "2:3", DefaultSourcePosition().AddString("ab\ncd").String())
}
