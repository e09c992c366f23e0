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

package position

import (
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

// Zobrist hash component tables. pieceHash is indexed by square and
// the combined Piece value (0..17; only 0..11 are pieces, and 16,
// the empty square, contributes nothing); castlingHash is indexed by the full rights
// bitmask, not by individual bit; enpassantHash is indexed by file.
// All four are filled once, at package init, from a fixed seed so
// that hashes are stable across runs and machines.
var (
	pieceHash     [SqLength][PieceLength]Key
	castlingHash  [CastlingLength]Key
	enpassantHash [8]Key
	whiteTurnHash Key
)

// zobristSeed fixes the pseudo-random sequence used to build the hash
// tables below; any nonzero seed works, it just needs to be stable.
const zobristSeed uint64 = 5489

// zobristRng is a xorshift64star pseudo-random generator, the same
// algorithm magic.go uses to find magic numbers, mirrored here since
// its unexported implementation can't be reused across packages.
type zobristRng struct {
	s uint64
}

func (r *zobristRng) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	rng := &zobristRng{s: zobristSeed}
	for sq := SqA1; sq < SqLength; sq++ {
		for piece := Piece(0); piece < PieceLength; piece++ {
			pieceHash[sq][piece] = Key(rng.rand64())
		}
	}
	for c := CastlingRights(0); c < CastlingLength; c++ {
		castlingHash[c] = Key(rng.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		enpassantHash[f] = Key(rng.rand64())
	}
	whiteTurnHash = Key(rng.rand64())
}
