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
	"time"

	"github.com/trauts1234/Mandelbrot/internal/config"
	"github.com/trauts1234/Mandelbrot/internal/moveslice"
	"github.com/trauts1234/Mandelbrot/internal/movegen"
	"github.com/trauts1234/Mandelbrot/internal/position"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

// iterativeDeepening runs negamax at increasing depths from the
// current position, narrowing around an aspiration window once a
// result has stabilized, until maxDepth is reached or the search is
// stopped.
//
// The reference algorithm this is grounded on starts its loop at
// depth 2, which for maxDepth==1 never executes the loop body at all
// and would leave the engine with no best move to play. Depths of 2
// and above are unchanged from that reference; the maxDepth==1 case
// is special-cased to run exactly one iteration at depth 1 so "go
// depth 1" always returns a legal move, matching this engine's own
// end-to-end UCI behaviour.
func (s *Search) iterativeDeepening(p *position.Position, maxDepth int) *Result {
	if maxDepth == 0 {
		score := s.quiescence(p, 0, config.Settings.Search.QuiescenceDepth, StartNegative, -StartNegative)
		s.driver.SendIterationInfo(0, moveslice.NewMoveSlice(0), score, s.tt.Hashfull(), s.nodesVisited)
		return &Result{BestMove: MoveNone, BestValue: score, SearchDepth: 0, Nodes: s.nodesVisited, SearchTime: time.Since(s.startTime)}
	}

	safeBest := MoveNone
	var safeValue Value

	alpha := StartNegative
	beta := -StartNegative

	currDepth := 2
	if maxDepth < 2 {
		currDepth = maxDepth
	}

	for currDepth <= maxDepth {
		value := s.negamax(p, nodeRoot, currDepth, 0, 0, alpha, beta, true)
		move := p.CurrentPly().BestMove

		if value == NullEval {
			// forced single reply: there is no score to re-search
			// around, so only the depth advances
			safeBest = move
			if currDepth >= 5 {
				break
			}
			currDepth++
			continue
		}

		s.pollTimer()
		if s.stopFlag.Load() {
			if move != MoveNone {
				safeBest = move
				safeValue = value
			}
			break
		}

		if value <= alpha {
			alpha = StartNegative
			s.statistics.AspirationResearches++
			continue
		}
		if value >= beta {
			beta = -StartNegative
			s.statistics.AspirationResearches++
			continue
		}

		pv := s.extractPV(p)
		s.driver.SendIterationInfo(currDepth, pv, value, s.tt.Hashfull(), s.nodesVisited)
		s.statistics.CurrentIterationDepth = currDepth

		if currDepth >= config.Settings.Search.AspirationStartDepth {
			window := Value(config.Settings.Search.AspirationWindow)
			alpha = value - window
			if alpha < StartNegative {
				alpha = StartNegative
			}
			beta = value + window
			if beta > -StartNegative {
				beta = -StartNegative
			}
		}

		safeBest = move
		safeValue = value
		currDepth++
	}

	s.stopFlag.Store(true)
	return &Result{
		BestMove:    safeBest,
		BestValue:   safeValue,
		SearchDepth: s.statistics.CurrentIterationDepth,
		Nodes:       s.nodesVisited,
		SearchTime:  time.Since(s.startTime),
	}
}

// negamax searches the subtree rooted at p to depth plies, returning
// a value in the open interval (alpha, beta): an exact score if the
// true value lies inside the window, otherwise the bound it failed
// against. It always leaves p.CurrentPly().BestMove set to whatever
// move, if any, produced that value.
func (s *Search) negamax(p *position.Position, node nodeType, depth, plyFromRoot, prevExt int, alpha, beta Value, allowNull bool) Value {
	if depth <= 0 {
		return s.quiescence(p, plyFromRoot, config.Settings.Search.QuiescenceDepth, alpha, beta)
	}

	p.CurrentPly().BestMove = MoveNone

	if node != nodeRoot && p.IsDraw() {
		return ValueDraw
	}

	entry := s.tt.ProbeAdjusted(p.ZobristKey(), int8(depth), plyFromRoot, alpha, beta)
	ttMove := entry.Move.MoveOf()
	if !entry.IsEmpty() {
		s.statistics.TTHit++
		if ttMove != MoveNone {
			p.CurrentPly().BestMove = ttMove
		}
		return entry.Value
	}
	s.statistics.TTMiss++

	moves := s.mg[plyFromRoot].GenerateLegalMoves(p, movegen.GenAll)
	n := moves.Len()

	if node == nodeRoot && n == 1 {
		p.CurrentPly().BestMove = moves.At(0).MoveOf()
		return NullEval
	}

	if n == 0 {
		if p.InCheck() {
			s.statistics.Checkmates++
			return MakeMatedEval(plyFromRoot)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	s.nodesVisited++
	if s.nodesVisited%2048 == 0 {
		s.pollTimer()
	}
	if s.stopFlag.Load() {
		return ValueZero
	}

	inCheck := p.InCheck()

	if node != nodeRoot && allowNull && config.Settings.Search.UseNullMove && !inCheck &&
		depth >= config.Settings.Search.NmpDepth && s.nonPawnMaterialCount(p, p.NextPlayer()) >= 3 {
		p.DoNullMove()
		val := -s.negamax(p, nodeNormal, depth-config.Settings.Search.NmpReduction, plyFromRoot+1, 0, -beta, 1-beta, false)
		p.UndoNullMove()
		if s.stopFlag.Load() {
			return ValueZero
		}
		if val >= beta {
			s.statistics.NullMoveCuts++
			return beta
		}
	}

	movegen.ScoreMoves(p, moves, ttMove, s.history)

	side := p.NextPlayer()
	bestMove := MoveNone
	improvedAlpha := false

	for i := 0; i < n; i++ {
		m := moves.At(i).MoveOf()
		from, to := m.From(), m.To()
		wasCapture := p.GetPiece(to) != PieceEmpty

		p.DoMove(m)

		ext := 0
		if node != nodeRoot && prevExt < config.Settings.Search.MaxExtensions {
			if n == 1 || p.InCheck() {
				ext = 1
			}
		}

		var score Value
		if config.Settings.Search.UseLmr && i > config.Settings.Search.LmrMovesSearched && depth >= config.Settings.Search.LmrDepth {
			score = -s.negamax(p, nodeNormal, depth-2+ext, plyFromRoot+1, prevExt+ext, -alpha-1, -alpha, true)
			if score > alpha && score < beta {
				s.statistics.LmrResearches++
				score = -s.negamax(p, nodeNormal, depth-1+ext, plyFromRoot+1, prevExt+ext, -beta, -alpha, true)
			}
		} else {
			score = -s.negamax(p, nodeNormal, depth-1+ext, plyFromRoot+1, prevExt+ext, -beta, -alpha, true)
		}

		p.UndoMove(m)

		if s.stopFlag.Load() {
			return ValueZero
		}

		if score > alpha {
			alpha = score
			improvedAlpha = true
			bestMove = m
			p.CurrentPly().BestMove = m

			if alpha >= beta {
				s.statistics.BetaCuts++
				s.tt.Set(p.ZobristKey(), m, int8(depth), beta, TtLowerBound, ValueZero)
				if !wasCapture {
					p.CurrentPly().KillerMove = m
					s.history.Update(side, from, to, depth)
				}
				return beta
			}
		}
	}

	valueType := TtUpperBound
	if improvedAlpha {
		valueType = TtExact
	}
	s.tt.Set(p.ZobristKey(), bestMove, int8(depth), alpha, valueType, ValueZero)
	return alpha
}

// quiescence extends the search along capturing lines only, using a
// stand-pat score from the evaluator as a lower bound so that a side
// with no good captures available isn't forced to make a losing one.
// It never touches the transposition table.
func (s *Search) quiescence(p *position.Position, plyFromRoot, depth int, alpha, beta Value) Value {
	s.nodesVisited++
	if s.nodesVisited%2048 == 0 {
		s.pollTimer()
	}
	if s.stopFlag.Load() {
		return ValueZero
	}

	standPat := s.eval.Evaluate(p)
	s.statistics.LeafPositionsEvaluated++

	if depth == 0 {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	idx := plyFromRoot
	if idx >= len(s.mg) {
		idx = len(s.mg) - 1
	}
	moves := s.mg[idx].GenerateLegalMoves(p, movegen.GenCap)
	movegen.ScoreMoves(p, moves, MoveNone, nil)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).MoveOf()
		p.DoMove(m)
		score := -s.quiescence(p, plyFromRoot+1, depth-1, -beta, -alpha)
		p.UndoMove(m)

		if s.stopFlag.Load() {
			return ValueZero
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// extractPV walks the transposition table from p's current position,
// following each entry's best move up to 20 plies, and returns the
// line found. It plays the moves on p to follow the table and undoes
// all of them again before returning, leaving p unchanged.
func (s *Search) extractPV(p *position.Position) *moveslice.MoveSlice {
	const maxPvLength = 20

	pv := moveslice.NewMoveSlice(maxPvLength)
	made := 0
	for made < maxPvLength {
		entry := s.tt.ProbeUnadjusted(p.ZobristKey())
		mv := entry.Move.MoveOf()
		if entry.IsEmpty() || mv == MoveNone {
			break
		}
		pv.PushBack(mv)
		p.DoMove(mv)
		made++
	}
	for i := made - 1; i >= 0; i-- {
		p.UndoMove(pv.At(i).MoveOf())
	}
	return pv
}

// nonPawnMaterialCount counts c's knights, bishops, rooks and queens,
// the zugzwang guard for null-move pruning.
func (s *Search) nonPawnMaterialCount(p *position.Position, c Color) int {
	return p.PiecesBb(c, Knight).PopCount() +
		p.PiecesBb(c, Bishop).PopCount() +
		p.PiecesBb(c, Rook).PopCount() +
		p.PiecesBb(c, Queen).PopCount()
}
