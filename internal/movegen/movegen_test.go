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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trauts1234/Mandelbrot/internal/history"
	"github.com/trauts1234/Mandelbrot/internal/position"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

func TestStartPositionMoveCount(t *testing.T) {
	pos := position.NewPosition()
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 20, moves.Len())
}

func TestCapturesOnlyMode(t *testing.T) {
	pos, err := position.NewPositionFen("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	assert.NoError(t, err)
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenCap)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		isCapture := pos.GetPiece(m.To()) != PieceEmpty || m.To() == pos.GetEnPassantSquare()
		assert.True(t, isCapture, "move %s should be a capture", m.StringUci())
	}
}

// A pinned rook on the e-file may only move along the pin, never off it.
func TestPinnedRookRestrictedToPinLine(t *testing.T) {
	pos, err := position.NewPositionFen("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == SqE2 {
			assert.Equal(t, FileE, m.To().FileOf())
		}
	}
}

// Double check: only king moves are legal.
func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	pos, err := position.NewPositionFen("k7/8/8/8/8/1n5R/r7/K7 w - - 0 1")
	assert.NoError(t, err)
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	for i := 0; i < moves.Len(); i++ {
		assert.Equal(t, SqA1, moves.At(i).From())
	}
}

// En passant exd3 would remove both the d4 and e4 pawns from the 4th
// rank and expose the black king on a4 to the queen on h4.
func TestEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	pos, err := position.NewPositionFen("8/8/8/8/k2Pp2Q/8/8/2K5 b - d3 0 1")
	assert.NoError(t, err)
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == SqE4 {
			assert.NotEqual(t, SqD3, m.To(), "en passant would expose the king to the rook-like queen on the 4th rank")
		}
	}
}

func TestCastlingBlockedByAttackedSquare(t *testing.T) {
	pos, err := position.NewPositionFen("r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		assert.False(t, m.IsCastle() && m.From() == SqE1 && m.To() == SqG1, "king cannot castle kingside through the square attacked by the rook on f2")
	}
}

func TestPromotionEmitsFourMoves(t *testing.T) {
	pos, err := position.NewPositionFen("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	assert.NoError(t, err)
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)

	count := 0
	seen := map[PieceType]bool{}
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == SqE7 && m.To() == SqE8 {
			assert.True(t, m.IsPromotion())
			seen[m.PromotionType()] = true
			count++
		}
	}
	assert.Equal(t, 4, count)
	assert.True(t, seen[Queen])
	assert.True(t, seen[Rook])
	assert.True(t, seen[Bishop])
	assert.True(t, seen[Knight])
}

func TestScoreMovesOrdersHashMoveFirst(t *testing.T) {
	pos := position.NewPosition()
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)

	hash := CreateMove(SqE2, SqE4)
	ScoreMoves(pos, moves, hash, history.NewHistory())

	assert.Equal(t, hash.MoveOf(), moves.At(0).MoveOf())
}

func TestScoreMovesRanksCapturesAboveQuiet(t *testing.T) {
	pos, err := position.NewPositionFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	assert.NoError(t, err)
	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)

	ScoreMoves(pos, moves, MoveNone, history.NewHistory())

	var captureValue, quietValue Value
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if pos.GetPiece(m.To()) != PieceEmpty {
			captureValue = m.ValueOf()
			found = true
		} else if m.From() == SqB1 {
			quietValue = m.ValueOf()
		}
	}
	assert.True(t, found)
	assert.Greater(t, captureValue, quietValue)
}
