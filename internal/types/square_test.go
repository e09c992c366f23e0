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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareType(t *testing.T) {
	assert.EqualValues(t, 0, SqA1)
	assert.EqualValues(t, 63, SqH8)
	assert.EqualValues(t, 64, SqNone)
	assert.EqualValues(t, 100, Square(100))
}

func TestValidSquare(t *testing.T) {
	assert.True(t, SqA1.IsValid())
	assert.True(t, SqH8.IsValid())
	assert.False(t, SqNone.IsValid())
	assert.False(t, Square(100).IsValid())
}

func TestSquareStr(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "-", SqNone.String())
	assert.Equal(t, "-", Square(100).String())
}

func TestSquareFromFileRank(t *testing.T) {
	assert.Equal(t, SqA1, SquareOf(FileA, Rank1))
	assert.Equal(t, SqH8, SquareOf(FileH, Rank8))
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
	assert.Equal(t, SqNone, SquareOf(File(100), Rank1))
}

func TestSquareDir(t *testing.T) {
	assert.Equal(t, SqA2, SqA1.To(North))
	assert.Equal(t, SqNone, SqA2.To(South).To(South))
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqH8.To(North))
	assert.Equal(t, SqNone, SqH8.To(East))
	assert.Equal(t, SqH7, SqH8.To(South))
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqNone, MakeSquare("z9"))
}
