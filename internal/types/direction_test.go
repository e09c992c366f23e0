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

func TestDirectionValues(t *testing.T) {
	assert.EqualValues(t, 8, North)
	assert.EqualValues(t, -8, South)
	assert.EqualValues(t, 1, East)
	assert.EqualValues(t, -1, West)
	assert.EqualValues(t, 9, Northeast)
	assert.EqualValues(t, -7, Southeast)
	assert.EqualValues(t, -9, Southwest)
	assert.EqualValues(t, 7, Northwest)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "N", North.String())
	assert.Equal(t, "S", South.String())
	assert.Equal(t, "E", East.String())
	assert.Equal(t, "W", West.String())
	assert.Equal(t, "NE", Northeast.String())
	assert.Equal(t, "SE", Southeast.String())
	assert.Equal(t, "SW", Southwest.String())
	assert.Equal(t, "NW", Northwest.String())
}

func TestDirectionStringPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		_ = Direction(100).String()
	})
}
