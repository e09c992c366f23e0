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

import "strings"

// Move packs a chess move into the low 32 bits of a 64-bit word:
//
//   bits [0..7]   from-square
//   bits [8..15]  to-square
//   bits [16..23] promotion base piece type, or PromoNone
//   bits [24..26] castle tag (WK/WQ/BK/BQ/NO_CASTLE)
//
// The high 32 bits are a search sort value, set and read only through
// SetValue/ValueOf; they play no part in move identity or equality of
// the packed 32-bit move itself (use MoveOf to compare).
type Move uint64

// PromoNone marks the absence of a promotion piece in the packed move.
const PromoNone PieceType = 16

// MoveNone is the zero move: not a valid move.
const MoveNone Move = 0

// NullMove is the reserved all-ones 32-bit sentinel used by search to
// mean "no move available to try here" (distinct from MoveNone, which
// is simply the zero value).
const NullMove Move = 0xFFFFFFFF

const (
	fromShift      = 0
	toShift        = 8
	promoShift     = 16
	castleTagShift = 24
	valueShift     = 32

	squareField    Move = 0xFF
	promoField     Move = 0xFF
	castleField    Move = 0x7
	packedMoveMask Move = 0xFFFFFFFF
)

// CreateMove packs a normal (non-promotion, non-castle) move.
func CreateMove(from, to Square) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(PromoNone)<<promoShift | Move(CastleNone)<<castleTagShift
}

// CreatePromotionMove packs a pawn promotion move.
func CreatePromotionMove(from, to Square, promo PieceType) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(promo)<<promoShift | Move(CastleNone)<<castleTagShift
}

// CreateCastleMove packs a castling move; from/to are the king's
// origin and destination squares.
func CreateCastleMove(from, to Square, tag CastleTag) Move {
	return Move(from)<<fromShift | Move(to)<<toShift | Move(PromoNone)<<promoShift | Move(tag)<<castleTagShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareField)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareField)
}

// PromotionType returns the promotion base piece type, or PromoNone.
func (m Move) PromotionType() PieceType {
	return PieceType((m >> promoShift) & promoField)
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.PromotionType() != PromoNone
}

// CastleTag returns the castle tag carried by the move.
func (m Move) CastleTag() CastleTag {
	return CastleTag((m >> castleTagShift) & castleField)
}

// IsCastle reports whether this move is a castling move.
func (m Move) IsCastle() bool {
	return m.CastleTag() != CastleNone
}

// MoveOf strips the sort value, returning the bare packed 32-bit move.
func (m Move) MoveOf() Move {
	return m & packedMoveMask
}

// ValueOf returns the search sort value encoded in the high 32 bits.
func (m Move) ValueOf() Value {
	return Value(int32(m >> valueShift))
}

// SetValue returns a copy of m with the given sort value encoded into
// the high 32 bits. A value is never stored on MoveNone.
func (m Move) SetValue(v Value) Move {
	if m == MoveNone {
		return m
	}
	return m.MoveOf() | Move(uint32(int32(v)))<<valueShift
}

// IsValid checks if the move has valid squares. MoveNone and NullMove
// are not valid in this sense.
func (m Move) IsValid() bool {
	return m.MoveOf() != MoveNone && m.MoveOf() != NullMove && m.From().IsValid() && m.To().IsValid()
}

// StringUci renders the move as a UCI coordinate string (e.g. "e2e4",
// "e7e8q"), or "NULL" for NullMove/MoveNone.
func (m Move) StringUci() string {
	if m.MoveOf() == MoveNone || m.MoveOf() == NullMove {
		return "NULL"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(strings.ToLower(m.PromotionType().String()))
	}
	return b.String()
}

// String is the debug representation of a move.
func (m Move) String() string {
	if m.MoveOf() == MoveNone {
		return "Move{None}"
	}
	return "Move{" + m.StringUci() + "}"
}
