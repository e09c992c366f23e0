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
	"math"
	"strconv"
	"strings"

	"github.com/trauts1234/Mandelbrot/internal/util"
)

// Value is the 32-bit signed evaluation of a position or search node,
// measured in centipawns from the point of view of the side to move.
type Value int32

// Reserved values. NullEval marks an empty transposition slot and the
// root's forced-single-reply short-circuit. CheckmateWin is the score
// of delivering mate on the current ply; scores with magnitude at or
// above FurthestMate are mate scores, the remaining distance to
// CheckmateWin encoding the number of plies to mate.
const (
	NullEval      Value = math.MaxInt32 - 1
	CheckmateWin  Value = math.MaxInt32 / 4
	FurthestMate  Value = CheckmateWin - 100
	StartNegative Value = -CheckmateWin - 1
	ValueZero     Value = 0
	ValueDraw     Value = 0
)

// IsMateValue returns true if v encodes a forced mate (magnitude at
// or above FurthestMate but not NullEval).
func (v Value) IsMateValue() bool {
	a := Value(util.Abs(int(v)))
	return a >= FurthestMate && a <= CheckmateWin
}

// MakeMatedEval returns the score for being checkmated plyFromRoot
// plies after the root.
func MakeMatedEval(plyFromRoot int) Value {
	return -(CheckmateWin - Value(plyFromRoot))
}

// String renders the value as a UCI-ish "mate k" or "cp v" string.
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v == NullEval:
		b.WriteString("N/A")
	case v.IsMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		k := (int(CheckmateWin) - util.Abs(int(v)) + 1) / 2
		b.WriteString(strconv.Itoa(k))
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
