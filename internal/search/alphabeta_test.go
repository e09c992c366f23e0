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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trauts1234/Mandelbrot/internal/config"
	"github.com/trauts1234/Mandelbrot/internal/movegen"
	"github.com/trauts1234/Mandelbrot/internal/position"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

// newTestSearch builds a Search with its per-ply move generator
// buffer allocated and its evaluator attached to p, as s.run would,
// without going through the goroutine/timer machinery - for
// unit-testing negamax/quiescence directly against a prepared
// position.
func newTestSearch(maxDepth int, p *position.Position) *Search {
	s := NewSearch()
	plyBufferSize := maxDepth + config.Settings.Search.QuiescenceDepth + 8
	s.mg = make([]*movegen.Movegen, plyBufferSize)
	for i := range s.mg {
		s.mg[i] = movegen.NewMoveGen()
	}
	s.eval.AttachTo(p)
	s.searchLimits = &Limits{}
	return s
}

func TestIterativeDeepeningDepthOneReturnsLegalMove(t *testing.T) {
	p := position.NewPosition()
	s := newTestSearch(1, p)

	result := s.iterativeDeepening(p, 1)

	require.NotEqual(t, MoveNone, result.BestMove)

	mg := movegen.NewMoveGen()
	legal := mg.GenerateLegalMoves(p, movegen.GenAll)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i).MoveOf() == result.BestMove.MoveOf() {
			found = true
			break
		}
	}
	assert.True(t, found, "bestmove %s must be one of the 20 legal starting moves", result.BestMove.StringUci())
}

func TestIterativeDeepeningDepthZeroReturnsNullMoveAndScore(t *testing.T) {
	p := position.NewPosition()
	s := newTestSearch(0, p)

	result := s.iterativeDeepening(p, 0)

	assert.Equal(t, MoveNone, result.BestMove)
	assert.Equal(t, 0, result.SearchDepth)
}

func TestNegamaxFullWindowMatchesMinimaxSoundness(t *testing.T) {
	p := position.NewPosition()
	s := newTestSearch(3, p)

	value := s.negamax(p, nodeRoot, 3, 0, 0, StartNegative, -StartNegative, true)

	assert.True(t, value > StartNegative && value < -StartNegative)
	assert.NotEqual(t, MoveNone, p.CurrentPly().BestMove)
}

func TestNegamaxDetectsCheckmate(t *testing.T) {
	// Fool's mate (1.f3 e5 2.g4 Qh4#): White to move is checkmated
	// by the queen on h4.
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	s := newTestSearch(2, p)

	value := s.negamax(p, nodeRoot, 2, 0, 0, StartNegative, -StartNegative, true)

	assert.True(t, value.IsMateValue())
	assert.True(t, value < 0)
}

func TestNegamaxDoesNotMutatePositionAcrossSearch(t *testing.T) {
	p := position.NewPosition()
	s := newTestSearch(3, p)
	before := p.ZobristKey()

	s.negamax(p, nodeRoot, 3, 0, 0, StartNegative, -StartNegative, true)

	assert.Equal(t, before, p.ZobristKey())
}

func TestQuiescenceStandPatBoundsScore(t *testing.T) {
	p := position.NewPosition()
	s := newTestSearch(0, p)

	value := s.quiescence(p, 0, config.Settings.Search.QuiescenceDepth, StartNegative, -StartNegative)

	assert.True(t, value > StartNegative && value < -StartNegative)
}

func TestExtractPVFollowsStoredBestMovesAndRestoresPosition(t *testing.T) {
	p := position.NewPosition()
	s := newTestSearch(3, p)
	before := p.ZobristKey()

	s.negamax(p, nodeRoot, 3, 0, 0, StartNegative, -StartNegative, true)
	pv := s.extractPV(p)

	assert.Equal(t, before, p.ZobristKey())
	assert.GreaterOrEqual(t, pv.Len(), 1)
}

func TestNonPawnMaterialCountStartingPosition(t *testing.T) {
	p := position.NewPosition()
	s := newTestSearch(1, p)

	// 2 knights + 2 bishops + 2 rooks + 1 queen per side.
	assert.Equal(t, 7, s.nonPawnMaterialCount(p, White))
	assert.Equal(t, 7, s.nonPawnMaterialCount(p, Black))
}

func TestStalemateReturnsDraw(t *testing.T) {
	// Classic stalemate: Black to move, no legal moves, not in check.
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	s := newTestSearch(1, p)

	value := s.negamax(p, nodeRoot, 1, 0, 0, StartNegative, -StartNegative, true)
	assert.Equal(t, ValueDraw, value)
}
