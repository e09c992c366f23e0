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

package config

// searchConfiguration is a data structure to hold the configuration of
// an instance of a search. Fields with no corresponding feature in
// this engine (opening book, static exchange evaluation, PVS/IID,
// per-node pruning toggles) have been dropped; this search's move
// ordering and pruning shape are fixed by the algorithm itself rather
// than switched at runtime.
type searchConfiguration struct {
	// Ponder
	UsePonder bool

	// Quiescence search
	QuiescenceDepth int

	// Transposition table
	UseTT  bool
	TTSize int

	// Null-move pruning
	UseNullMove  bool
	NmpDepth     int
	NmpReduction int

	// Search extensions, capped at MaxExtensions cumulative plies
	MaxExtensions int

	// Late move reductions
	UseLmr           bool
	LmrMovesSearched int
	LmrDepth         int

	// Aspiration window half-width in centipawns, and the root depth
	// at which aspiration narrowing begins
	AspirationWindow     int
	AspirationStartDepth int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UsePonder = true

	Settings.Search.QuiescenceDepth = 6

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128

	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 3

	Settings.Search.MaxExtensions = 6

	Settings.Search.UseLmr = true
	Settings.Search.LmrMovesSearched = 4
	Settings.Search.LmrDepth = 3

	Settings.Search.AspirationWindow = 50
	Settings.Search.AspirationStartDepth = 3
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {}
