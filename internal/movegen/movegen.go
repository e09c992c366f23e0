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

// Package movegen generates legal chess moves in a single pass over a
// Position, parameterised by side to move and a captures-only flag.
// Rather than generating pseudo-legal moves and filtering them with a
// post-hoc king-safety check, it derives a check mask and two pin
// masks (orthogonal and diagonal) up front and uses them to restrict
// every piece's destinations directly, so every move this package
// returns is already legal.
package movegen

import (
	"regexp"
	"strings"

	"github.com/trauts1234/Mandelbrot/internal/history"
	"github.com/trauts1234/Mandelbrot/internal/moveslice"
	"github.com/trauts1234/Mandelbrot/internal/position"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

// MaxMoves bounds the move buffer. 256 comfortably covers any legal
// chess position; a captures-only buffer never needs more than 74.
const MaxMoves = 256

// GenMode selects which classes of moves GenerateLegalMoves produces.
type GenMode int

// Generation mode flags. GenAll is the bitwise union of both.
const (
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = GenCap | GenNonCap
)

// Movegen holds the reusable move buffer so repeated calls do not
// allocate. Create one with NewMoveGen and reuse it across a search.
type Movegen struct {
	moves *moveslice.MoveSlice
}

// NewMoveGen creates a move generator with a fresh move buffer.
func NewMoveGen() *Movegen {
	return &Movegen{moves: moveslice.NewMoveSlice(MaxMoves)}
}

// GenerateLegalMoves fills and returns the generator's move buffer
// with every legal move available to the side to move in pos under
// the given mode. The returned slice is only valid until the next
// call to GenerateLegalMoves on this Movegen.
func (mg *Movegen) GenerateLegalMoves(pos *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.moves.Clear()
	generate(pos, mode, mg.moves)
	return mg.moves
}

// generate implements the check-mask/pin-mask single-pass algorithm.
func generate(pos *position.Position, mode GenMode, out *moveslice.MoveSlice) {
	side := pos.NextPlayer()
	opp := side.Flip()

	me := pos.OccupiedBb(side)
	them := pos.OccupiedBb(opp)
	all := pos.OccupiedAll()

	kingSq := pos.KingSquare(side)
	kingBb := kingSq.Bb()
	occMinusMyKing := all ^ kingBb

	enemyOrth := (pos.PieceTypeBb(Rook) | pos.PieceTypeBb(Queen)) & them
	enemyDiag := (pos.PieceTypeBb(Bishop) | pos.PieceTypeBb(Queen)) & them
	enemyKnights := pos.PiecesBb(opp, Knight)
	enemyPawns := pos.PiecesBb(opp, Pawn)
	enemyKingSq := pos.KingSquare(opp)

	enemyAttacks := enemyAttackSquares(occMinusMyKing, enemyOrth, enemyDiag, enemyPawns, enemyKnights, enemyKingSq, opp)

	// King moves: squares not occupied by a friendly piece and not
	// attacked, intersected with the mode's target squares.
	modeEnd := modeEndSquares(mode, me, them)
	kingMoves := GetPseudoAttacks(King, kingSq) &^ me &^ enemyAttacks & modeEnd
	addFromBb(kingMoves, kingSq, out)

	if mode&GenNonCap != 0 && kingBb&enemyAttacks == 0 {
		generateCastling(pos, side, all, enemyAttacks, out)
	}

	// nonKingEnd starts as the mode's target squares and is narrowed
	// by check evasion below; it never applies to king moves, which
	// evade check by moving off the attacked square rather than by
	// blocking or capturing.
	nonKingEnd := modeEnd

	hvPin := pinsAndCheck(Rook, kingSq, enemyOrth, all, &nonKingEnd)
	diagPin := pinsAndCheck(Bishop, kingSq, enemyDiag, all, &nonKingEnd)

	if checkingKnights := GetPseudoAttacks(Knight, kingSq) & enemyKnights; checkingKnights != 0 {
		nonKingEnd &= checkingKnights
	}
	if checkingPawns := GetPawnAttacks(side, kingSq) & enemyPawns; checkingPawns != 0 {
		nonKingEnd &= checkingPawns
	}

	if nonKingEnd == 0 {
		// Double check: only the king move generated above can help.
		return
	}

	generateSliderMoves(Rook, (pos.PieceTypeBb(Rook)|pos.PieceTypeBb(Queen))&me, all, nonKingEnd, hvPin, diagPin, out)
	generateSliderMoves(Bishop, (pos.PieceTypeBb(Bishop)|pos.PieceTypeBb(Queen))&me, all, nonKingEnd, diagPin, hvPin, out)
	generateKnightMoves(pos.PiecesBb(side, Knight), nonKingEnd, hvPin|diagPin, out)
	generatePawnMoves(pos, side, mode, all, them, nonKingEnd, hvPin, diagPin, kingSq, enemyOrth, out)
}

func modeEndSquares(mode GenMode, me, them Bitboard) Bitboard {
	switch {
	case mode&GenNonCap == 0: // captures only
		return them
	case mode&GenCap == 0: // quiet only
		return ^me &^ them
	default: // all
		return ^me
	}
}

func enemyAttackSquares(occMinusMyKing, enemyOrth, enemyDiag, enemyPawns, enemyKnights Bitboard, enemyKingSq Square, enemySide Color) Bitboard {
	var attacks Bitboard
	t := enemyOrth
	for t != 0 {
		sq := t.PopLsb()
		attacks |= GetAttacksBb(Rook, sq, occMinusMyKing)
	}
	t = enemyDiag
	for t != 0 {
		sq := t.PopLsb()
		attacks |= GetAttacksBb(Bishop, sq, occMinusMyKing)
	}
	t = enemyPawns
	for t != 0 {
		sq := t.PopLsb()
		attacks |= GetPawnAttacks(enemySide, sq)
	}
	t = enemyKnights
	for t != 0 {
		sq := t.PopLsb()
		attacks |= GetPseudoAttacks(Knight, sq)
	}
	attacks |= GetPseudoAttacks(King, enemyKingSq)
	return attacks
}

// pinsAndCheck computes the pin mask for one slider direction (Rook
// for the orthogonal pair, Bishop for the diagonal pair) and narrows
// *nonKingEnd when an unblocked slider of that direction is giving
// check. It is the Go counterpart of a ray-cast toward every enemy
// slider aligned with the king along that direction.
func pinsAndCheck(dirPt PieceType, kingSq Square, enemySliders, allBlockers Bitboard, nonKingEnd *Bitboard) Bitboard {
	kingRay := GetAttacksBb(dirPt, kingSq, enemySliders)
	potentialPinners := kingRay & enemySliders

	var pinMask Bitboard
	t := potentialPinners
	for t != 0 {
		pinnerSq := t.PopLsb()
		between := Intermediate(kingSq, pinnerSq)
		pinnerBb := pinnerSq.Bb()
		switch (between & allBlockers).PopCount() {
		case 1:
			pinMask |= between | pinnerBb
		case 0:
			*nonKingEnd &= between | pinnerBb
		}
	}
	return pinMask
}

func generateSliderMoves(basePt PieceType, pieces, blockers, validEnd, inLinePin, outOfLinePin Bitboard, out *moveslice.MoveSlice) {
	pieces &^= outOfLinePin
	free := pieces &^ inLinePin
	pinned := pieces & inLinePin

	t := free
	for t != 0 {
		sq := t.PopLsb()
		addFromBb(GetAttacksBb(basePt, sq, blockers)&validEnd, sq, out)
	}
	t = pinned
	for t != 0 {
		sq := t.PopLsb()
		addFromBb(GetAttacksBb(basePt, sq, blockers)&validEnd&inLinePin, sq, out)
	}
}

func generateKnightMoves(pieces, validEnd, allPins Bitboard, out *moveslice.MoveSlice) {
	pieces &^= allPins // a pinned knight can never move without exposing the king
	for pieces != 0 {
		sq := pieces.PopLsb()
		addFromBb(GetPseudoAttacks(Knight, sq)&validEnd, sq, out)
	}
}

func generateCastling(pos *position.Position, side Color, all, enemyAttacks Bitboard, out *moveslice.MoveSlice) {
	rights := pos.CastlingRights()
	if rights == CastlingNone {
		return
	}

	type castle struct {
		right              CastlingRights
		kingFrom, kingTo   Square
		rookFrom           Square
		tag                CastleTag
	}

	var candidates [2]castle
	if side == White {
		candidates = [2]castle{
			{CastlingWhiteOO, SqE1, SqG1, SqH1, CastleWK},
			{CastlingWhiteOOO, SqE1, SqC1, SqA1, CastleWQ},
		}
	} else {
		candidates = [2]castle{
			{CastlingBlackOO, SqE8, SqG8, SqH8, CastleBK},
			{CastlingBlackOOO, SqE8, SqC8, SqA8, CastleBQ},
		}
	}

	for _, c := range candidates {
		if !rights.Has(c.right) {
			continue
		}
		pieceMask := Intermediate(c.kingFrom, c.rookFrom)
		checkMask := Intermediate(c.kingFrom, c.kingTo) | c.kingTo.Bb()
		if pieceMask&all != 0 {
			continue
		}
		if checkMask&enemyAttacks != 0 {
			continue
		}
		out.PushBack(CreateCastleMove(c.kingFrom, c.kingTo, c.tag))
	}
}

func generatePawnMoves(pos *position.Position, side Color, mode GenMode, all, them, nonKingEnd, hvPin, diagPin Bitboard, kingSq Square, enemyOrth Bitboard, out *moveslice.MoveSlice) {
	pushDir := Direction(side.MoveDirection()) * North
	promRank := side.PromotionRankBb()
	epSquare := pos.GetEnPassantSquare()
	capturesOnly := mode&GenNonCap == 0

	pawns := pos.PiecesBb(side, Pawn)
	for pawns != 0 {
		sq := pawns.PopLsb()
		fromBb := sq.Bb()

		captures := GetPawnAttacks(side, sq) & them
		var forward Bitboard
		var epCapture Bitboard

		if !capturesOnly {
			oneStep := ShiftBitboard(fromBb, pushDir) &^ all
			forward = oneStep
			if fromBb&side.PawnStartRankBb() != 0 {
				forward |= ShiftBitboard(oneStep, pushDir) &^ all
			}

			if epSquare != SqNone {
				epBb := epSquare.Bb()
				if attack := GetPawnAttacks(side, sq) & epBb; attack != 0 {
					victimSq := epSquare.To(Direction(side.Flip().MoveDirection()) * North)
					victimBb := victimSq.Bb()
					blockersAfter := (all &^ (victimBb | fromBb)) | epBb
					rookCheck := GetAttacksBb(Rook, kingSq, blockersAfter)&enemyOrth != 0
					missedCheckResolution := victimBb&^nonKingEnd != 0 && epBb&nonKingEnd == 0
					if !(missedCheckResolution || rookCheck) {
						epCapture = attack
					}
				}
			}
		}

		if fromBb&hvPin != 0 {
			captures = 0
			epCapture = 0
			forward &= hvPin
		}
		if fromBb&diagPin != 0 {
			forward = 0
			captures &= diagPin
			epCapture &= diagPin
		}

		end := (forward | captures) & nonKingEnd
		end |= epCapture // an en-passant capture may land outside nonKingEnd when it is itself what resolves the check

		addPawnMoves(end&^promRank, sq, out)
		addPromotions(end&promRank, sq, out)
	}
}

func addFromBb(bb Bitboard, from Square, out *moveslice.MoveSlice) {
	for bb != 0 {
		to := bb.PopLsb()
		out.PushBack(CreateMove(from, to))
	}
}

func addPawnMoves(bb Bitboard, from Square, out *moveslice.MoveSlice) {
	for bb != 0 {
		to := bb.PopLsb()
		out.PushBack(CreateMove(from, to))
	}
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func addPromotions(bb Bitboard, from Square, out *moveslice.MoveSlice) {
	for bb != 0 {
		to := bb.PopLsb()
		for _, pt := range promotionPieces {
			out.PushBack(CreatePromotionMove(from, to, pt))
		}
	}
}

// mvvLva is the MVV-LVA ordering table: rows are the victim's base
// piece type (Knight..Pawn), columns the attacker's (Knight..King).
var mvvLva = [5][6]Value{
	Knight: {Knight: 24, Bishop: 23, Rook: 22, Queen: 21, Pawn: 25, King: 20},
	Bishop: {Knight: 34, Bishop: 33, Rook: 32, Queen: 31, Pawn: 35, King: 30},
	Rook:   {Knight: 44, Bishop: 43, Rook: 42, Queen: 41, Pawn: 45, King: 40},
	Queen:  {Knight: 54, Bishop: 53, Rook: 52, Queen: 51, Pawn: 55, King: 50},
	Pawn:   {Knight: 14, Bishop: 13, Rook: 12, Queen: 11, Pawn: 15, King: 10},
}

// Move-ordering score bands, highest first: hash move, captures
// (MVV-LVA on top), killer, then history for everything else.
const (
	scoreHashMove Value = 900_000_000
	scoreCapture  Value = 800_000_000
	scoreKiller   Value = 700_000_000
)

// ScoreMoves assigns each move in ms a search-sort value per the
// PV/capture/killer/history ordering scheme and stably sorts the
// slice from highest to lowest. ttMove is the hash move hint (may be
// MoveNone); h may be nil, in which case quiet moves score 0.
func ScoreMoves(pos *position.Position, ms *moveslice.MoveSlice, ttMove Move, h *history.History) {
	side := pos.NextPlayer()
	ms.ForEach(func(i int) {
		m := ms.At(i)
		switch {
		case ttMove != MoveNone && m.MoveOf() == ttMove.MoveOf():
			ms.Set(i, m.SetValue(scoreHashMove))
		case pos.GetPiece(m.To()) != PieceEmpty:
			victim := pos.GetPiece(m.To()).TypeOf()
			attacker := pos.GetPiece(m.From()).TypeOf()
			ms.Set(i, m.SetValue(scoreCapture+mvvLva[victim][attacker]))
		case m.MoveOf() == pos.CurrentPly().KillerMove.MoveOf():
			ms.Set(i, m.SetValue(scoreKiller))
		default:
			var v Value
			if h != nil {
				v = Value(h.Get(side, m.From(), m.To()))
			}
			ms.Set(i, m.SetValue(v))
		}
	})
	ms.Sort()
}

// regexUciMove matches a move in UCI long algebraic notation, e.g.
// "e2e4" or "e7e8q", with an optional case-insensitive promotion
// letter.
var regexUciMove = regexp.MustCompile(`([a-h][1-8][a-h][1-8])([NBRQnbrq])?`)

// GetMoveFromUci generates every legal move for pos and matches uciMove
// against it, returning MoveNone if uciMove is malformed or not legal
// in this position. Intended for parsing "position ... moves ..." and
// "go searchmoves ..." input, not for use in a hot search loop.
func (mg *Movegen) GetMoveFromUci(pos *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}

	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		promotionPart = strings.ToLower(matches[2])
	}
	want := movePart + promotionPart

	legal := mg.GenerateLegalMoves(pos, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i).MoveOf()
		if m.StringUci() == want {
			return m
		}
	}
	return MoveNone
}
