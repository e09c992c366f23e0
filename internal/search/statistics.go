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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var statOut = message.NewPrinter(language.German)

// Statistics counts what happened during the last search. Only the
// counters this engine's feature set can actually produce are kept;
// the teacher's richer search tracks a number of counters (reverse
// futility pruning, late move pruning, internal iterative deepening,
// counter moves, ...) for pruning techniques this engine doesn't
// implement.
type Statistics struct {
	LeafPositionsEvaluated uint64
	BetaCuts               uint64
	NullMoveCuts           uint64
	TTHit                  uint64
	TTMiss                 uint64
	TTCuts                 uint64
	LmrResearches          uint64
	AspirationResearches   uint64
	Checkmates             uint64
	Stalemates             uint64

	CurrentIterationDepth   int
	CurrentSearchDepth      int
	CurrentExtraSearchDepth int
}

// String renders the statistics the way the rest of this engine's
// types render themselves: one compact, localised line.
func (s *Statistics) String() string {
	return statOut.Sprintf(
		"leafs=%d betaCuts=%d nullMoveCuts=%d ttHit=%d ttMiss=%d ttCuts=%d lmrResearches=%d aspirationResearches=%d checkmates=%d stalemates=%d",
		s.LeafPositionsEvaluated, s.BetaCuts, s.NullMoveCuts, s.TTHit, s.TTMiss, s.TTCuts,
		s.LmrResearches, s.AspirationResearches, s.Checkmates, s.Stalemates)
}
