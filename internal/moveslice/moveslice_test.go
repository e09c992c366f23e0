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

package moveslice

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trauts1234/Mandelbrot/internal/types"
)

const testCap = 128

var (
	e2e4 = CreateMove(SqE2, SqE4).SetValue(111)
	d7d5 = CreateMove(SqD7, SqD5).SetValue(222)
	e4d5 = CreateMove(SqE4, SqD5).SetValue(333)
	d8d5 = CreateMove(SqD8, SqD5).SetValue(444)
	b1c3 = CreateMove(SqB1, SqC3).SetValue(555)
)

func TestNew(t *testing.T) {
	ma := NewMoveSlice(testCap)
	assert.Equal(t, 0, len(*ma))
	assert.Equal(t, testCap, cap(*ma))
}

func TestMoveArrayPushBack(t *testing.T) {
	ma := NewMoveSlice(testCap)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)

	assert.Equal(t, 5, len(*ma))
	assert.Equal(t, testCap, cap(*ma))
}

func TestMoveArrayPopBack(t *testing.T) {
	ma := NewMoveSlice(testCap)
	assert.Panics(t, func() { ma.PopBack() })

	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)

	assert.Equal(t, 5, len(*ma))

	m1 := ma.PopBack()
	assert.Equal(t, b1c3, m1)
	m2 := ma.PopBack()
	assert.Equal(t, d8d5, m2)
	assert.Equal(t, 3, len(*ma))
}

func TestMoveArrayPushFront(t *testing.T) {
	ma := NewMoveSlice(testCap)
	ma.PushFront(e2e4)
	ma.PushFront(d7d5)
	ma.PushFront(e4d5)
	ma.PushFront(d8d5)
	ma.PushFront(b1c3)

	assert.Equal(t, 5, len(*ma))
	assert.Equal(t, b1c3, ma.Front())
}

func TestMoveArrayPopFront(t *testing.T) {
	ma := NewMoveSlice(testCap)
	assert.Panics(t, func() { ma.PopFront() })
	ma.PushFront(e2e4)
	ma.PushFront(d7d5)
	ma.PushFront(e4d5)
	ma.PushFront(d8d5)
	ma.PushFront(b1c3)
	assert.Equal(t, 5, len(*ma))

	m1 := ma.PopFront()
	assert.Equal(t, b1c3, m1)
	m2 := ma.PopFront()
	assert.Equal(t, d8d5, m2)
	assert.Equal(t, 3, len(*ma))
}

func TestMoveArrayClear(t *testing.T) {
	ma := NewMoveSlice(testCap)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)
	assert.Equal(t, 5, len(*ma))
	ma.Clear()
	assert.Equal(t, 0, len(*ma))
	assert.Equal(t, testCap, cap(*ma))
}

func TestMoveArrayAccess(t *testing.T) {
	ma := NewMoveSlice(testCap)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)

	assert.Equal(t, e2e4, ma.Front())
	assert.Equal(t, ma.At(0), ma.Front())
	assert.Equal(t, b1c3, ma.Back())
	assert.Equal(t, ma.At(len(*ma)-1), ma.Back())
	ma.Set(0, b1c3)
	assert.Equal(t, b1c3, ma.Front())
	assert.Equal(t, ma.At(0), ma.Front())
}

func TestMoveArrayString(t *testing.T) {
	ma := NewMoveSlice(testCap)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)
	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ma.StringUci())
}

func TestMoveArraySortRandom(t *testing.T) {
	ma := NewMoveSlice(testCap)
	items := 10_000

	for i := 0; i < items; i++ {
		from := Square(rand.Intn(64))
		to := Square(rand.Intn(64))
		ma.PushBack(CreateMove(from, to).SetValue(Value(rand.Int31())))
	}

	ma.Sort()

	tmp := ma.At(0).ValueOf()
	for i := 0; i < items; i++ {
		assert.True(t, tmp >= ma.At(i).ValueOf())
		tmp = ma.At(i).ValueOf()
	}
}

func TestMoveArrayFilter(t *testing.T) {
	ma := NewMoveSlice(testCap)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)

	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ma.StringUci())

	ma.Filter(func(i int) bool {
		return ma.At(i) != e4d5
	})

	assert.Equal(t, 4, len(*ma))
	assert.Equal(t, "e2e4 d7d5 d8d5 b1c3", ma.StringUci())
}

func TestMoveArrayFilterCopy(t *testing.T) {
	ma := NewMoveSlice(testCap)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)

	ma2 := NewMoveSlice(cap(*ma))
	ma.FilterCopy(ma2, func(i int) bool {
		return ma.At(i) != e4d5
	})

	assert.Equal(t, 5, len(*ma))
	assert.Equal(t, 4, len(*ma2))
	assert.Equal(t, "e2e4 d7d5 d8d5 b1c3", ma2.StringUci())
}

func TestMoveArrayClone(t *testing.T) {
	ma := NewMoveSlice(testCap)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)

	clone := ma.Clone()
	assert.True(t, ma.Equals(clone))
	clone.PushBack(e4d5)
	assert.False(t, ma.Equals(clone))
}

func TestForEachParallel(t *testing.T) {
	noOfItems := 1_000
	ma := NewMoveSlice(noOfItems)
	for i := 0; i < noOfItems; i++ {
		ma.PushBack(e2e4)
	}

	var mux sync.Mutex
	var counter int

	ma.ForEachParallel(func(i int) {
		m := ma.At(i)
		ma.Set(i, m.SetValue(999))
		mux.Lock()
		counter++
		mux.Unlock()
	})

	assert.Equal(t, noOfItems, counter)
	assert.Equal(t, Value(999), ma.Front().ValueOf())
	assert.Equal(t, Value(999), ma.Back().ValueOf())
}
