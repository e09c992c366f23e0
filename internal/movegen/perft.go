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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/trauts1234/Mandelbrot/internal/position"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts leaf nodes and move-class statistics over all legal
// move sequences to a fixed depth, the standard move-generator
// correctness check. Since GenerateLegalMoves never emits an illegal
// move, perft here needs no post-move legality recheck.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop aborts a perft run started in a goroutine.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti iterates StartPerft over every depth from startDepth
// to endDepth. Can be aborted with Stop when run in a goroutine.
func (perft *Perft) StartPerftMulti(fen string, startDepth, endDepth int) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i)
	}
}

// StartPerft runs a single perft search from fen to the given depth.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}

	perft.resetCounter()
	pos, _ := position.NewPositionFen(fen)
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, pos, mgList)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) miniMax(depth int, p *position.Position, mgList []*Movegen) uint64 {
	totalNodes := uint64(0)
	moves := mgList[depth].GenerateLegalMoves(p, GenAll)
	for i := 0; i < moves.Len(); i++ {
		if perft.stopFlag {
			return 0
		}
		move := moves.At(i)

		if depth > 1 {
			p.DoMove(move)
			totalNodes += perft.miniMax(depth-1, p, mgList)
			p.UndoMove(move)
			continue
		}

		capture := p.GetPiece(move.To()) != PieceEmpty
		enpassant := move.To() == p.GetEnPassantSquare() && p.GetPiece(move.From()).TypeOf() == Pawn && !capture
		castling := move.IsCastle()
		promotion := move.IsPromotion()

		p.DoMove(move)
		totalNodes++
		if enpassant {
			perft.EnpassantCounter++
			perft.CaptureCounter++
		}
		if capture {
			perft.CaptureCounter++
		}
		if castling {
			perft.CastleCounter++
		}
		if promotion {
			perft.PromotionCounter++
		}
		if p.InCheck() {
			perft.CheckCounter++
			if mgList[0].GenerateLegalMoves(p, GenAll).Len() == 0 {
				perft.CheckMateCounter++
			}
		}
		p.UndoMove(move)
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
