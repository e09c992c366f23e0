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

// Package position represents the mailbox+bitboard board state, the
// per-ply undo/search stack and Zobrist hashing used throughout the
// engine. Create an instance with NewPosition(...); with no argument
// it is the standard chess start position.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/trauts1234/Mandelbrot/internal/assert"
	myLogging "github.com/trauts1234/Mandelbrot/internal/logging"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

var log *logging.Logger

// StartFen is the FEN of the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxGameLength bounds the per-search ply stack, grounded on the UCI
// "moves" limit a game can realistically reach.
const MaxGameLength = 5898

// Key is a Zobrist hash of a position.
type Key uint64

// Accumulator is the subset of the NN evaluator's incremental
// accumulator that Position needs to keep synchronized during
// make/unmake. A Position with a nil Accumulator simply skips NN
// bookkeeping (useful for perft and tests).
type Accumulator interface {
	AddPiece(p Piece, sq Square)
	RemovePiece(p Piece, sq Square)
}

// PlyData is the per-search-ply record described by the data model:
// it captures everything needed to reverse a move and everything the
// search writes while visiting this ply.
type PlyData struct {
	Zobrist        Key
	Enpassant      Square
	CastlingRights CastlingRights
	FiftyMoveRule  int
	PlyFromRoot    int
	Killed         Piece
	InCheck        bool
	BestMove       Move
	KillerMove     Move
}

// Position holds the mailbox, colour-agnostic piece bitboards, the
// two colour bitboards, side to move, an optional NN accumulator, and
// the PlyData stack that make/unmake and search operate on.
type Position struct {
	squares  [SqLength]Piece
	pieceBb  [PtLength]Bitboard // indexed by base PieceType, colour agnostic
	colourBb [ColorLength]Bitboard
	turn     Color

	kingSquare [ColorLength]Square

	acc Accumulator

	stack [MaxGameLength]PlyData
	ply   int // index of the current ply's record in stack
}

// NewPosition creates a position. With no argument it is the standard
// start position; an additional fen string sets up that position and
// is otherwise ignored beyond the first.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen creates a position from the given FEN string. Returns
// nil and an error if the FEN is invalid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	p.kingSquare[White] = SqNone
	p.kingSquare[Black] = SqNone
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("fen for position setup not valid and position can't be created: %s", e)
		return nil, e
	}
	return p, nil
}

// SetAccumulator attaches the NN evaluator's accumulator so that
// make/unmake keep it incrementally up to date. Call once, before any
// moves are made, with an accumulator already reset for this board.
func (p *Position) SetAccumulator(acc Accumulator) {
	p.acc = acc
}

// current returns the PlyData record for the position as it stands
// right now (before any pending move).
func (p *Position) current() *PlyData {
	return &p.stack[p.ply]
}

// PlyFromRoot returns how many plies deep into the search tree this
// position is.
func (p *Position) PlyFromRoot() int {
	return p.stack[p.ply].PlyFromRoot
}

// CurrentPly exposes the current PlyData for reading/writing by the
// move generator and search (best_move, killer_move, in_check).
func (p *Position) CurrentPly() *PlyData {
	return &p.stack[p.ply]
}

// ZobristKey returns the Zobrist hash of the current position.
func (p *Position) ZobristKey() Key {
	return p.stack[p.ply].Zobrist
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color {
	return p.turn
}

// GetPiece returns the piece on the given square, or PieceEmpty.
func (p *Position) GetPiece(sq Square) Piece {
	return p.squares[sq]
}

// PiecesBb returns the bitboard of pieces of type pt and colour c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.pieceBb[pt] & p.colourBb[c]
}

// PieceTypeBb returns the colour-agnostic bitboard of pieces of type pt.
func (p *Position) PieceTypeBb(pt PieceType) Bitboard {
	return p.pieceBb[pt]
}

// OccupiedAll returns a bitboard of all occupied squares.
func (p *Position) OccupiedAll() Bitboard {
	return p.colourBb[White] | p.colourBb[Black]
}

// OccupiedBb returns a bitboard of all squares occupied by colour c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.colourBb[c]
}

// GetEnPassantSquare returns the current en-passant target square, or
// SqNone.
func (p *Position) GetEnPassantSquare() Square {
	return p.stack[p.ply].Enpassant
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.stack[p.ply].CastlingRights
}

// KingSquare returns the square of colour c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the halfmove clock (plies since last capture
// or pawn move).
func (p *Position) HalfMoveClock() int {
	return p.stack[p.ply].FiftyMoveRule
}

// InCheck reports whether the side to move's king is attacked in the
// current position.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.kingSquare[p.turn], p.turn.Flip())
}

// IsDraw reports whether the current position is drawn by the
// fifty-move rule or by repetition. Repetition is checked by scanning
// backward in steps of 2 plies (so only positions with the same side
// to move are compared) up to the fifty-move counter's own halfmove
// count, looking for a Zobrist key equal to the current one.
func (p *Position) IsDraw() bool {
	fiftyMoveRule := p.stack[p.ply].FiftyMoveRule
	if fiftyMoveRule >= 100 {
		return true
	}
	zobrist := p.stack[p.ply].Zobrist
	for i := p.ply - 2; i >= 0 && i >= p.ply-fiftyMoveRule; i -= 2 {
		if p.stack[i].Zobrist == zobrist {
			return true
		}
	}
	return false
}

// IsAttacked reports whether sq is attacked by any piece of colour by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if GetPawnAttacks(by.Flip(), sq)&p.PiecesBb(by, Pawn) != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&p.PiecesBb(by, Knight) != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&p.PiecesBb(by, King) != 0 {
		return true
	}
	occ := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occ)&(p.PiecesBb(by, Bishop)|p.PiecesBb(by, Queen)) != 0 {
		return true
	}
	if GetAttacksBb(Rook, sq, occ)&(p.PiecesBb(by, Rook)|p.PiecesBb(by, Queen)) != 0 {
		return true
	}
	return false
}

// putPiece places piece on sq, updating the mailbox, both bitboards,
// the running Zobrist hash and the accumulator, if any.
func (p *Position) putPiece(piece Piece, sq Square, z *Key) {
	p.squares[sq] = piece
	p.pieceBb[piece.TypeOf()] |= sq.Bb()
	p.colourBb[piece.ColorOf()] |= sq.Bb()
	if z != nil {
		*z ^= pieceHash[sq][piece]
	}
	if p.acc != nil {
		p.acc.AddPiece(piece, sq)
	}
	if piece.TypeOf() == King {
		p.kingSquare[piece.ColorOf()] = sq
	}
}

// removePieceAt clears sq and returns the piece that was there,
// updating the mailbox, both bitboards, the running Zobrist hash and
// the accumulator, if any.
func (p *Position) removePieceAt(sq Square, z *Key) Piece {
	piece := p.squares[sq]
	p.squares[sq] = PieceEmpty
	p.pieceBb[piece.TypeOf()] &^= sq.Bb()
	p.colourBb[piece.ColorOf()] &^= sq.Bb()
	if z != nil {
		*z ^= pieceHash[sq][piece]
	}
	if p.acc != nil {
		p.acc.RemovePiece(piece, sq)
	}
	return piece
}

// DoMove commits m to the board and pushes a new PlyData record. The
// caller is responsible for only ever calling this with a legal move;
// no legality check is performed here.
func (p *Position) DoMove(m Move) {
	cur := p.current()
	from, to := m.From(), m.To()
	moved := p.squares[from]
	if assert.DEBUG {
		assert.Assert(moved.ColorOf() == p.turn, "moved piece colour does not match side to move")
	}

	p.ply++
	next := &p.stack[p.ply]
	next.FiftyMoveRule = cur.FiftyMoveRule + 1
	next.CastlingRights = cur.CastlingRights
	next.PlyFromRoot = cur.PlyFromRoot + 1
	z := cur.Zobrist

	// step 3: castling rights
	z ^= castlingHash[next.CastlingRights]
	if moved.TypeOf() == King {
		if p.turn == White {
			next.CastlingRights.Remove(CastlingWhite)
		} else {
			next.CastlingRights.Remove(CastlingBlack)
		}
	}
	dropRookRight(&next.CastlingRights, from)
	dropRookRight(&next.CastlingRights, to)
	z ^= castlingHash[next.CastlingRights]
	if assert.DEBUG {
		assert.Assert(next.CastlingRights&^cur.CastlingRights == 0, "castling rights must never be gained")
	}

	// step 4: remove mover, handle normal capture
	p.removePieceAt(from, &z)
	next.Killed = p.squares[to]
	if next.Killed != PieceEmpty {
		p.removePieceAt(to, &z)
		next.FiftyMoveRule = 0
	}
	if moved.TypeOf() == Pawn {
		next.FiftyMoveRule = 0
	}

	// step 5: en-passant capture
	if moved.TypeOf() == Pawn && to == cur.Enpassant && to != SqNone {
		var capturedSq Square
		if p.turn == White {
			capturedSq = to.To(South)
		} else {
			capturedSq = to.To(North)
		}
		p.removePieceAt(capturedSq, &z)
	}

	// step 6: en-passant square bookkeeping
	if cur.Enpassant != SqNone {
		z ^= enpassantHash[cur.Enpassant.FileOf()]
	}
	next.Enpassant = SqNone
	if moved.TypeOf() == Pawn {
		fromRank, toRank := int(from.RankOf()), int(to.RankOf())
		if toRank-fromRank == 2 || fromRank-toRank == 2 {
			next.Enpassant = SquareOf(from.FileOf(), Rank((fromRank+toRank)/2))
			z ^= enpassantHash[next.Enpassant.FileOf()]
		}
	}

	// step 7: castling rook motion
	if m.IsCastle() {
		tag := m.CastleTag()
		rook := p.removePieceAt(tag.RookFrom(), &z)
		p.putPiece(rook, tag.RookTo(), &z)
	}

	// step 8: place the mover (or its promotion) on to
	if m.IsPromotion() {
		p.putPiece(MakePiece(p.turn, m.PromotionType()), to, &z)
	} else {
		p.putPiece(moved, to, &z)
	}

	// step 9: flip side to move
	z ^= whiteTurnHash
	next.Zobrist = z
	p.turn = p.turn.Flip()
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove(m Move) {
	prev := &p.stack[p.ply-1]
	p.turn = p.turn.Flip()
	from, to := m.From(), m.To()

	mover := p.removePieceAt(to, nil)
	if m.IsPromotion() {
		mover = MakePiece(p.turn, Pawn)
	}

	if m.IsCastle() {
		tag := m.CastleTag()
		rook := p.removePieceAt(tag.RookTo(), nil)
		p.putPiece(rook, tag.RookFrom(), nil)
	}

	cur := &p.stack[p.ply]
	switch {
	case cur.Killed != PieceEmpty:
		// normal capture: the victim always sat on the move's own
		// destination square
		p.putPiece(cur.Killed, to, nil)
	case mover.TypeOf() == Pawn && prev.Enpassant != SqNone && to == prev.Enpassant:
		// en-passant capture: the victim never occupied to, it sat
		// beside from on the rank the capturing pawn started from
		var capturedSq Square
		if p.turn == White {
			capturedSq = to.To(South)
		} else {
			capturedSq = to.To(North)
		}
		p.putPiece(MakePiece(p.turn.Flip(), Pawn), capturedSq, nil)
	}

	p.putPiece(mover, from, nil)
	p.ply--
}

// DoNullMove flips side to move and clears en passant, for null-move
// pruning. Forbidden when the side to move is in check.
func (p *Position) DoNullMove() {
	cur := p.current()
	p.ply++
	next := &p.stack[p.ply]
	next.CastlingRights = cur.CastlingRights
	next.PlyFromRoot = cur.PlyFromRoot + 1
	next.FiftyMoveRule = 0
	z := cur.Zobrist
	if cur.Enpassant != SqNone {
		z ^= enpassantHash[cur.Enpassant.FileOf()]
	}
	next.Enpassant = SqNone
	z ^= whiteTurnHash
	next.Zobrist = z
	p.turn = p.turn.Flip()
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.turn = p.turn.Flip()
	p.ply--
}

// dropRookRight unconditionally removes the castling right tied to
// sq if sq is a rook's home square, regardless of which side the
// touching move belongs to.
func dropRookRight(rights *CastlingRights, sq Square) {
	switch sq {
	case SqH1:
		rights.Remove(CastlingWhiteOO)
	case SqA1:
		rights.Remove(CastlingWhiteOOO)
	case SqH8:
		rights.Remove(CastlingBlackOO)
	case SqA8:
		rights.Remove(CastlingBlackOOO)
	}
}

// StringFen renders the position as a FEN string. The fullmove field
// is always written as "0".
func (p *Position) StringFen() string {
	var b strings.Builder
	for rank := int(Rank8); rank >= int(Rank1); rank-- {
		empty := 0
		for file := int(FileA); file <= int(FileH); file++ {
			sq := SquareOf(File(file), Rank(rank))
			piece := p.squares[sq]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(piece.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > int(Rank1) {
			b.WriteString("/")
		}
	}
	b.WriteString(" ")
	b.WriteString(p.turn.String())
	b.WriteString(" ")
	b.WriteString(p.CastlingRights().String())
	b.WriteString(" ")
	b.WriteString(p.GetEnPassantSquare().String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.HalfMoveClock()))
	b.WriteString(" 0")
	return b.String()
}

func (p *Position) String() string {
	return p.StringFen()
}

// setupBoard parses fen and initializes the position from scratch,
// including its from-zero Zobrist key.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")
	if len(fenParts) == 0 || fenParts[0] == "" {
		return errors.New("fen must not be empty")
	}

	p.ply = 0
	p.turn = White
	var z Key

	currentSquare := SqA8
	for _, c := range fenParts[0] {
		if c == '/' {
			currentSquare = currentSquare.To(South).To(South)
			continue
		}
		if c >= '1' && c <= '8' {
			currentSquare = Square(int(currentSquare) + int(c-'0'))
			continue
		}
		piece := PieceFromChar(byte(c))
		if piece.IsEmpty() {
			return fmt.Errorf("invalid piece character: %c", c)
		}
		p.putPiece(piece, currentSquare, &z)
		currentSquare++
	}

	rights := CastlingNone
	enpassant := SqNone
	halfMoveClock := 0

	if len(fenParts) >= 2 {
		switch fenParts[1] {
		case "b":
			p.turn = Black
		default:
			p.turn = White
		}
	}
	if len(fenParts) >= 3 && fenParts[2] != "-" {
		for _, c := range fenParts[2] {
			switch c {
			case 'K':
				rights.Add(CastlingWhiteOO)
			case 'Q':
				rights.Add(CastlingWhiteOOO)
			case 'k':
				rights.Add(CastlingBlackOO)
			case 'q':
				rights.Add(CastlingBlackOOO)
			}
		}
	}
	if len(fenParts) >= 4 && fenParts[3] != "-" {
		enpassant = MakeSquare(fenParts[3])
	}
	if len(fenParts) >= 5 {
		if n, e := strconv.Atoi(fenParts[4]); e == nil {
			halfMoveClock = n
		}
	}

	z ^= castlingHash[rights]
	if enpassant != SqNone {
		z ^= enpassantHash[enpassant.FileOf()]
	}
	if p.turn == White {
		z ^= whiteTurnHash
	}

	p.stack[0] = PlyData{
		Zobrist:        z,
		Enpassant:      enpassant,
		CastlingRights: rights,
		FiftyMoveRule:  halfMoveClock,
		PlyFromRoot:    0,
		Killed:         PieceEmpty,
		InCheck:        false,
		BestMove:       MoveNone,
		KillerMove:     MoveNone,
	}
	return nil
}
