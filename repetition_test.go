package yargon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnceWrapsSingleValue(t *testing.T) {
	stream := NewSliceStream([]int{0})
	out := Once(Token(isZero, "zero"))(stream)
	require.True(t, out.Successful())
	assert.Equal(t, []int{0}, out.Value())
}

func TestManyCollectsUntilFailure(t *testing.T) {
	stream := NewSliceStream([]int{0, 0, 1, 0})
	out := Many(Token(isZero, "zero"))(stream)
	require.True(t, out.Successful())
	assert.Equal(t, []int{0, 0}, out.Value())
	assert.Equal(t, 2, out.Remainder().Remaining())
}

func TestManyAlwaysSucceedsWithNoMatches(t *testing.T) {
	stream := NewSliceStream([]int{1, 1})
	out := Many(Token(isZero, "zero"))(stream)
	require.True(t, out.Successful())
	assert.Empty(t, out.Value())
	assert.Equal(t, stream, out.Remainder())
}

func TestManyTerminatesOnZeroConsumptionSuccess(t *testing.T) {
	stream := NewSliceStream([]int{0})
	stall := Maybe(Token(isOne, "one")) // always succeeds, never consumes on this input
	out := Many(stall)(stream)
	require.True(t, out.Successful())
	// Exactly one stalled success is collected, then the loop refuses to
	// spin forever on a parser that never advances.
	assert.Len(t, out.Value(), 1)
	assert.Equal(t, stream, out.Remainder())
}

func TestAtLeastOnceFailsIffFirstFails(t *testing.T) {
	stream := NewSliceStream([]int{1})
	out := AtLeastOnce(Token(isZero, "zero"))(stream)
	require.False(t, out.Successful())
	assert.Equal(t, stream, out.Remainder())
}

func TestAtLeastOnceSucceedsAndCollectsRest(t *testing.T) {
	stream := NewSliceStream([]int{0, 0, 1})
	out := AtLeastOnce(Token(isZero, "zero"))(stream)
	require.True(t, out.Successful())
	assert.Equal(t, []int{0, 0}, out.Value())
}

func TestMaybeAlwaysSucceeds(t *testing.T) {
	okStream := NewSliceStream([]int{0})
	okOut := Maybe(Token(isZero, "zero"))(okStream)
	require.True(t, okOut.Successful())
	assert.Equal(t, []int{0}, okOut.Value())

	failStream := NewSliceStream([]int{1})
	failOut := Maybe(Token(isZero, "zero"))(failStream)
	require.True(t, failOut.Successful())
	assert.Empty(t, failOut.Value())
}

func TestMaybeDropsFailedAttemptDiagnostics(t *testing.T) {
	stream := NewSliceStream([]int{1})
	out := Maybe(Token(isZero, "zero"))(stream)
	assert.Empty(t, out.Messages())
	assert.Empty(t, out.Expectations())
	assert.Equal(t, stream, out.Remainder())
}

func TestUntilCollectsAndConsumesTerminator(t *testing.T) {
	stream := NewSliceStream([]int{0, 0, 1, 0})
	out := Until(Token(func(int) bool { return true }, "any"), Token(isOne, "one"))(stream)
	require.True(t, out.Successful())
	assert.Equal(t, []int{0, 0}, out.Value())
	assert.Equal(t, 1, out.Remainder().Remaining())
}

func TestUntilFailsWhenTerminatorNeverArrives(t *testing.T) {
	stream := NewSliceStream([]int{0, 0})
	out := Until(Token(func(int) bool { return true }, "any"), Token(isOne, "one"))(stream)
	require.False(t, out.Successful())
}

func TestTakeZeroAlwaysSucceeds(t *testing.T) {
	stream := NewSliceStream([]int{0, 1})
	out := Take(Token(isZero, "zero"), 0)(stream)
	require.True(t, out.Successful())
	assert.Empty(t, out.Value())
	assert.Equal(t, stream, out.Remainder())
}

func TestTakeExactCount(t *testing.T) {
	stream := NewSliceStream([]int{0, 0, 0, 1})
	out := Take(Token(isZero, "zero"), 3)(stream)
	require.True(t, out.Successful())
	assert.Equal(t, []int{0, 0, 0}, out.Value())
	assert.Equal(t, 1, out.Remainder().Remaining())
}

func TestTakeFailsPastAvailableInput(t *testing.T) {
	stream := NewSliceStream([]int{0, 1, 0})
	out := Take(Token(func(int) bool { return true }, "any"), 4)(stream)
	require.False(t, out.Successful())
	assert.Equal(t, "Unexpected end of input.", out.Messages()[0].Text)
}

func TestTakeDoesNotDuplicateInnerParsersMessage(t *testing.T) {
	stream := NewSliceStream([]int{0, 1, 0})
	out := Take(Token(func(int) bool { return true }, "any"), 4)(stream)
	require.False(t, out.Successful())
	require.Len(t, out.Messages(), 1)
}

func TestTakeNegativeIsContractViolation(t *testing.T) {
	assert.Panics(t, func() {
		Take(Token(isZero, "zero"), -1)
	})
}

func TestConcatJoinsSequences(t *testing.T) {
	stream := NewSliceStream([]int{0, 0, 1, 1})
	out := Concat(Many(Token(isZero, "zero")), Many(Token(isOne, "one")))(stream)
	require.True(t, out.Successful())
	assert.Equal(t, []int{0, 0, 1, 1}, out.Value())
}
