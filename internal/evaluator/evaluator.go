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

// Package evaluator contains the efficiently-updatable neural-network
// position evaluator: a 768->64->8->1 feed-forward network whose first
// layer is maintained incrementally as an accumulator by
// Position.SetAccumulator, and whose remaining two layers are plain
// ReLU dense layers run fresh on every call.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/trauts1234/Mandelbrot/internal/config"
	myLogging "github.com/trauts1234/Mandelbrot/internal/logging"
	"github.com/trauts1234/Mandelbrot/internal/position"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

// Evaluator evaluates chess positions with the network. Create one
// with NewEvaluator and attach it to every Position it will evaluate
// via AttachTo before making any moves.
type Evaluator struct {
	log     *logging.Logger
	network *Network
}

// NewEvaluator loads the configured model file and builds an
// Evaluator around it. If the configured file can't be read - the
// expected state on a fresh checkout with no trained model committed -
// it falls back to a deterministic synthetic network and logs a
// warning; the engine is fully functional, just not strong, until a
// real model file is supplied.
func NewEvaluator() *Evaluator {
	log := myLogging.GetLog()
	net, err := LoadModelFile(config.Settings.Eval.ModelPath)
	if err != nil {
		log.Warningf("could not load NN model from %q (%v), using a synthetic placeholder network", config.Settings.Eval.ModelPath, err)
		net = NewSyntheticNetwork(1)
	}
	return &Evaluator{log: log, network: net}
}

// AttachTo resets p's accumulator to this evaluator's network for the
// current position on p's board and wires the network into p so
// make/unmake keep it incrementally up to date. Call once per Position
// before the first move is made on it.
func (e *Evaluator) AttachTo(p *position.Position) {
	e.network.ResetAccumulator()
	for sq := SqA1; sq <= SqH8; sq++ {
		piece := p.GetPiece(sq)
		if !piece.IsEmpty() {
			e.network.AddPiece(piece, sq)
		}
	}
	p.SetAccumulator(e.network)
}

// Evaluate runs the forward pass over the already-updated accumulator
// and returns the position's value from the side-to-move's point of
// view, scaled by the configured training normalization constant.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	whitePov := e.network.FastForward() * float32(config.Settings.Eval.OutputScale)
	if p.NextPlayer() == Black {
		whitePov = -whitePov
	}
	return Value(whitePov)
}
