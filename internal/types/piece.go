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

// PieceType is a colour-agnostic chess piece kind.
type PieceType uint8

// Constants for the six base piece kinds. This exact ordering is
// relied upon for the NN input index and for MVV-LVA, so it must
// never be reordered.
const (
	Knight PieceType = 0
	Bishop PieceType = 1
	Rook   PieceType = 2
	Queen  PieceType = 3
	Pawn   PieceType = 4
	King   PieceType = 5

	PtNone   PieceType = 6
	PtLength           = 6
)

// IsValid checks if pt is one of the six base piece kinds.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

var pieceTypeChars = [PtLength]byte{'N', 'B', 'R', 'Q', 'P', 'K'}

// String returns the upper-case algebraic letter for the piece type.
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "-"
	}
	return string(pieceTypeChars[pt])
}

// Piece combines a PieceType with a colour. Black pieces carry the
// base value (0..5); white pieces carry base+6 (6..11). Empty is 16.
type Piece uint8

// Constants for every piece. Black pieces are the bare PieceType
// values; white pieces are offset by colorPieceOffset.
const (
	BlackKnight Piece = Piece(Knight)
	BlackBishop Piece = Piece(Bishop)
	BlackRook   Piece = Piece(Rook)
	BlackQueen  Piece = Piece(Queen)
	BlackPawn   Piece = Piece(Pawn)
	BlackKing   Piece = Piece(King)

	colorPieceOffset Piece = 6

	WhiteKnight Piece = Piece(Knight) + colorPieceOffset
	WhiteBishop Piece = Piece(Bishop) + colorPieceOffset
	WhiteRook   Piece = Piece(Rook) + colorPieceOffset
	WhiteQueen  Piece = Piece(Queen) + colorPieceOffset
	WhitePawn   Piece = Piece(Pawn) + colorPieceOffset
	WhiteKing   Piece = Piece(King) + colorPieceOffset

	PieceEmpty Piece = 16
	PieceLength     = 18 // indexing bound used by piece_hash
)

// MakePiece combines a colour and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if c == White {
		return Piece(pt) + colorPieceOffset
	}
	return Piece(pt)
}

// IsEmpty reports whether p is the empty-square sentinel.
func (p Piece) IsEmpty() bool {
	return p == PieceEmpty
}

// IsWhite reports whether p is a white piece. Undefined on Empty.
func (p Piece) IsWhite() bool {
	return p >= colorPieceOffset
}

// ColorOf returns the colour of p. Undefined on Empty.
func (p Piece) ColorOf() Color {
	if p.IsWhite() {
		return White
	}
	return Black
}

// TypeOf returns the base piece kind of p, stripping the colour
// offset. Undefined on Empty.
func (p Piece) TypeOf() PieceType {
	return PieceType(p % colorPieceOffset)
}

// PieceFromChar returns the Piece for a FEN piece letter (upper case
// is white, lower case is black), or PieceEmpty if unrecognised.
func PieceFromChar(c byte) Piece {
	var pt PieceType
	switch c {
	case 'N', 'n':
		pt = Knight
	case 'B', 'b':
		pt = Bishop
	case 'R', 'r':
		pt = Rook
	case 'Q', 'q':
		pt = Queen
	case 'P', 'p':
		pt = Pawn
	case 'K', 'k':
		pt = King
	default:
		return PieceEmpty
	}
	if c >= 'A' && c <= 'Z' {
		return MakePiece(White, pt)
	}
	return MakePiece(Black, pt)
}

// String renders p as a FEN piece letter, or "-" for Empty.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "-"
	}
	s := p.TypeOf().String()
	if p.IsWhite() {
		return s
	}
	return strLower(s)
}

func strLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
