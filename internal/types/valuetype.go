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

// ValueType tags what a stored search score actually bounds.
type ValueType int8

// Value type constants used by the search and the transposition table.
const (
	TtNone       ValueType = 0
	TtExact      ValueType = 1
	TtUpperBound ValueType = 2 // failed low against alpha
	TtLowerBound ValueType = 3 // failed high against beta

	valueTypeLength int = 4
)

// IsValid checks if vt represents a valid value type.
func (vt ValueType) IsValid() bool {
	return vt >= 0 && int(vt) < valueTypeLength
}

var valueTypeToString = [valueTypeLength]string{"NoneValue", "ExactValue", "UpperBoundValue", "LowerBoundValue"}

// String returns a string representation of this value type.
func (vt ValueType) String() string {
	return valueTypeToString[vt]
}
