//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trauts1234/Mandelbrot/internal/types"
)

func TestNewHistoryIsEmpty(t *testing.T) {
	h := NewHistory()
	assert.EqualValues(t, 0, h.Get(White, SqE2, SqE4))
	assert.Equal(t, MoveNone, h.GetCounterMove(SqE2, SqE4))
}

func TestUpdateAddsBonus(t *testing.T) {
	h := NewHistory()
	h.Update(White, SqE2, SqE4, 4)
	assert.EqualValues(t, 16, h.Get(White, SqE2, SqE4))
}

func TestUpdateIsClampedAndDiminishing(t *testing.T) {
	h := NewHistory()
	// drive the counter near historyMax and confirm it never exceeds it
	for i := 0; i < 1000; i++ {
		h.Update(White, SqD2, SqD4, 1000)
	}
	assert.LessOrEqual(t, h.Get(White, SqD2, SqD4), historyMax)
	assert.Greater(t, h.Get(White, SqD2, SqD4), int64(0))
}

func TestUpdateIsPerSideAndSquarePair(t *testing.T) {
	h := NewHistory()
	h.Update(White, SqE2, SqE4, 4)
	assert.EqualValues(t, 0, h.Get(Black, SqE2, SqE4))
	assert.EqualValues(t, 0, h.Get(White, SqD2, SqD4))
}

func TestCounterMoveRoundTrip(t *testing.T) {
	h := NewHistory()
	m := CreateMove(SqG8, SqF6)
	h.SetCounterMove(SqE2, SqE4, m)
	assert.Equal(t, m, h.GetCounterMove(SqE2, SqE4))
}

func TestClearResetsEverything(t *testing.T) {
	h := NewHistory()
	h.Update(White, SqE2, SqE4, 4)
	h.SetCounterMove(SqE2, SqE4, CreateMove(SqG8, SqF6))
	h.Clear()
	assert.EqualValues(t, 0, h.Get(White, SqE2, SqE4))
	assert.Equal(t, MoveNone, h.GetCounterMove(SqE2, SqE4))
}

func TestHistoryStringDoesNotPanic(t *testing.T) {
	h := NewHistory()
	h.Update(White, SqE2, SqE4, 4)
	assert.NotPanics(t, func() {
		_ = h.String()
	})
}
