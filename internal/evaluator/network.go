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
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

// Fixed network dimensions. The input layer has one slot per
// (piece, square) pair; the two hidden layer widths are a fixed
// architecture choice, not something a model file can change - a
// model file with a different LayerSizes line is rejected.
const (
	inputSize   = 12 * 64
	hiddenASize = 64
	hiddenBSize = 8
)

func relu(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

// accumulatorLayer is the efficiently-updatable first layer. Its
// weight matrix is stored transposed (matrix[outputSize*input + output])
// so that toggling a single input is a contiguous add/subtract over the
// output vector, not a column stride.
type accumulatorLayer struct {
	output [hiddenASize]float32
	matrix [inputSize * hiddenASize]float32
	bias   [hiddenASize]float32
}

// reset sets every output to the corresponding bias, i.e. the
// accumulator value for an empty board.
func (l *accumulatorLayer) reset() {
	l.output = l.bias
}

func (l *accumulatorLayer) addPiece(inputIdx int) {
	base := inputIdx * hiddenASize
	row := l.matrix[base : base+hiddenASize]
	for i := range l.output {
		l.output[i] += row[i]
	}
}

func (l *accumulatorLayer) removePiece(inputIdx int) {
	base := inputIdx * hiddenASize
	row := l.matrix[base : base+hiddenASize]
	for i := range l.output {
		l.output[i] -= row[i]
	}
}

// denseLayer is a plain fully-connected layer: every forward pass
// ReLUs its input and recomputes the full weighted sum, since unlike
// the accumulator layer its input changes on every call rather than
// incrementally.
type denseLayer struct {
	inputSize  int
	outputSize int
	matrix     []float32 // [outputSize][inputSize], row-major per neuron
	bias       []float32
	output     []float32
}

func newDenseLayer(inputSize, outputSize int) denseLayer {
	return denseLayer{
		inputSize:  inputSize,
		outputSize: outputSize,
		matrix:     make([]float32, inputSize*outputSize),
		bias:       make([]float32, outputSize),
		output:     make([]float32, outputSize),
	}
}

func (l *denseLayer) forward(previous []float32) []float32 {
	for o := 0; o < l.outputSize; o++ {
		sum := l.bias[o]
		row := l.matrix[o*l.inputSize : (o+1)*l.inputSize]
		for i := 0; i < l.inputSize; i++ {
			sum += relu(previous[i]) * row[i]
		}
		l.output[o] = sum
	}
	return l.output
}

// Network is the three-layer feed-forward position evaluator. The
// first layer's accumulator is kept incrementally up to date by
// AddPiece/RemovePiece, called from Position.putPiece/removePieceAt
// whenever a Position has been wired to a Network via
// Position.SetAccumulator.
type Network struct {
	first  accumulatorLayer
	hidden denseLayer
	final  denseLayer
}

// newNetwork allocates a zero-valued network of the fixed
// architecture (768 -> 64 -> 8 -> 1).
func newNetwork() *Network {
	return &Network{
		hidden: newDenseLayer(hiddenASize, hiddenBSize),
		final:  newDenseLayer(hiddenBSize, 1),
	}
}

// ResetAccumulator sets the first-layer accumulator to the "empty
// board" value. Callers must then AddPiece every occupied square.
func (n *Network) ResetAccumulator() {
	n.first.reset()
}

func inputIndex(p Piece, sq Square) int {
	return int(p)*64 + int(sq)
}

// AddPiece updates the accumulator for a piece entering sq. Satisfies
// position.Accumulator.
func (n *Network) AddPiece(p Piece, sq Square) {
	n.first.addPiece(inputIndex(p, sq))
}

// RemovePiece updates the accumulator for a piece leaving sq.
// Satisfies position.Accumulator.
func (n *Network) RemovePiece(p Piece, sq Square) {
	n.first.removePiece(inputIndex(p, sq))
}

// FastForward runs the already-up-to-date accumulator through the two
// remaining dense layers and returns the single output neuron's raw
// (un-normalized) value, from White's point of view.
func (n *Network) FastForward() float32 {
	hiddenOut := n.hidden.forward(n.first.output[:])
	finalOut := n.final.forward(hiddenOut)
	return finalOut[0]
}
