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

// Package uciinterface declares the callback a search uses to report
// progress to whatever is driving it over UCI. It lives in its own
// package, separate from both internal/search and internal/uci,
// because the uci package holds a Search and the search package needs
// to call back into a uci handler: putting the interface in either of
// those two packages would make them import each other.
package uciinterface

import (
	"github.com/trauts1234/Mandelbrot/internal/moveslice"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

// Driver receives progress and result callbacks from a running search.
// A new search starts with NoopDriver, which discards the reports.
type Driver interface {
	// SendIterationInfo reports one completed iterative-deepening
	// iteration: "info depth <d> pv <m1> <m2>... score {cp <v>|mate
	// <k>} hashfull <permille> nodes <count>".
	SendIterationInfo(depth int, pv *moveslice.MoveSlice, value Value, hashfull int, nodes uint64)

	// SendBestMove reports the final search result: "bestmove <m>".
	SendBestMove(best Move)
}

// NoopDriver implements Driver by doing nothing. It is the driver of
// a search that no UCI handler has been attached to, e.g. in tests.
type NoopDriver struct{}

func (NoopDriver) SendIterationInfo(int, *moveslice.MoveSlice, Value, int, uint64) {}
func (NoopDriver) SendBestMove(Move)                                              {}

var _ Driver = NoopDriver{}
