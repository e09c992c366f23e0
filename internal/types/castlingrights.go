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

// CastlingRights is a bitmask with bit c set when castle c is still
// available.
type CastlingRights uint8

// Constants for castling rights.
const (
	CastlingNone CastlingRights = 0 // 0000

	CastlingWhiteOO  CastlingRights = 1                                  // 0001
	CastlingWhiteOOO CastlingRights = CastlingWhiteOO << 1               // 0010
	CastlingWhite    CastlingRights = CastlingWhiteOO | CastlingWhiteOOO // 0011

	CastlingBlackOO  CastlingRights = CastlingWhiteOO << 2               // 0100
	CastlingBlackOOO CastlingRights = CastlingBlackOO << 1               // 1000
	CastlingBlack    CastlingRights = CastlingBlackOO | CastlingBlackOOO // 1100

	CastlingAny    CastlingRights = CastlingWhite | CastlingBlack // 1111
	CastlingLength CastlingRights = 16
)

// Has checks if any of the rights in rhs is held.
func (c CastlingRights) Has(rhs CastlingRights) bool {
	return c&rhs > 0
}

// Remove clears a castling right from the receiver.
func (c *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*c = *c &^ rhs
	return *c
}

// Add sets a castling right on the receiver.
func (c *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*c = *c | rhs
	return *c
}

func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := ""
	if c.Has(CastlingWhiteOO) {
		s += "K"
	}
	if c.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if c.Has(CastlingBlackOO) {
		s += "k"
	}
	if c.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}

// CastleTag identifies which (if any) castling move a packed Move
// encodes. It is distinct from CastlingRights, which tracks which
// castles are still legally available.
type CastleTag uint8

// Constants for the castle tag carried in bits [24..26] of a Move.
const (
	CastleWK       CastleTag = 0
	CastleWQ       CastleTag = 1
	CastleBK       CastleTag = 2
	CastleBQ       CastleTag = 3
	CastleNone     CastleTag = 4
	CastleTagShift           = 24
	CastleTagMask  uint32    = 0x7
)

// rookFromSquares and rookToSquares give the rook's from/to squares
// for each castle tag.
var rookFromSquares = [4]Square{SqH1, SqA1, SqH8, SqA8}
var rookToSquares = [4]Square{SqF1, SqD1, SqF8, SqD8}

// RookFrom returns the rook's origin square for this castle tag.
func (t CastleTag) RookFrom() Square {
	return rookFromSquares[t]
}

// RookTo returns the rook's destination square for this castle tag.
func (t CastleTag) RookTo() Square {
	return rookToSquares[t]
}
