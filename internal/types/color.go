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

import "fmt"

// Color represents one of the two sides to move, White or Black.
type Color uint8

// Constants for each color.
const (
	White Color = 0
	Black Color = 1

	ColorLength = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c represents a valid color.
func (c Color) IsValid() bool {
	return c < ColorLength
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// pushDirection holds the pawn-push direction factor per color.
var pushDirection = [ColorLength]int{1, -1}

// MoveDirection returns +1 for White and -1 for Black, the direction
// pawns of this color advance in.
func (c Color) MoveDirection() int {
	return pushDirection[c]
}

var promotionRank = [ColorLength]Rank{Rank8, Rank1}

// PromotionRankBb returns the rank a pawn of this colour promotes on.
func (c Color) PromotionRankBb() Bitboard {
	return promotionRank[c].Bb()
}

var pawnDoubleRank = [ColorLength]Rank{Rank3, Rank6}

// PawnDoubleRank returns the rank a pawn of this colour lands on
// after a single step, from which a double push is still possible.
func (c Color) PawnDoubleRank() Bitboard {
	return pawnDoubleRank[c].Bb()
}

var pawnStartRank = [ColorLength]Rank{Rank2, Rank7}

// PawnStartRankBb returns the rank pawns of this colour start the
// game on, the only rank a double push may originate from.
func (c Color) PawnStartRankBb() Bitboard {
	return pawnStartRank[c].Bb()
}
