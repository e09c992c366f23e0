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

package evaluator

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/trauts1234/Mandelbrot/internal/config"
	"github.com/trauts1234/Mandelbrot/internal/logging"
	"github.com/trauts1234/Mandelbrot/internal/movegen"
	"github.com/trauts1234/Mandelbrot/internal/position"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

var logTest *logging2.Logger

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	os.Exit(m.Run())
}

func newTestEvaluator() *Evaluator {
	return &Evaluator{log: logTest, network: NewSyntheticNetwork(123)}
}

func TestAttachToLoadsEveryStartingPiece(t *testing.T) {
	e := newTestEvaluator()
	p := position.NewPosition()
	e.AttachTo(p)

	fresh := NewSyntheticNetwork(123)
	fresh.ResetAccumulator()
	empty := fresh.first.output
	assert.NotEqual(t, empty, e.network.first.output)
}

func TestEvaluateMatchesRawOutputWhenWhiteToMove(t *testing.T) {
	e := newTestEvaluator()
	p := position.NewPosition()
	e.AttachTo(p)

	whiteToMoveValue := e.Evaluate(p)
	raw := Value(e.network.FastForward() * float32(config.Settings.Eval.OutputScale))
	assert.Equal(t, raw, whiteToMoveValue)
}

func TestEvaluateMakeUnmakeKeepsAccumulatorConsistent(t *testing.T) {
	e := newTestEvaluator()
	p := position.NewPosition()
	e.AttachTo(p)

	before := e.network.first.output
	mg := movegen.NewMoveGen()
	moves := mg.GenerateLegalMoves(p, movegen.GenAll)
	assert.Greater(t, moves.Len(), 0)

	m := moves.At(0)
	p.DoMove(m)
	assert.NotEqual(t, before, e.network.first.output)

	p.UndoMove(m)
	assert.Equal(t, before, e.network.first.output)
}
