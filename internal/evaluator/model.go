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
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// layerSizes is the only LayerSizes line this engine accepts.
var layerSizes = []int{inputSize, hiddenASize, hiddenBSize, 1}

// LoadModelFile parses a text model file in the grammar:
//
//	LayerCount: <n>
//	LayerSizes: 768 64 8 1
//	Activations: <ignored tokens>
//	Weights: <64*768 floats, row-major per neuron>
//	Biases:  <64 floats>
//	Weights: <8*64 floats>
//	Biases:  <8 floats>
//	Weights: <1*8 floats>
//	Biases:  <1 float>
//
// Activations tokens are read and discarded; ReLU is assumed on every
// hidden layer.
func LoadModelFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseModel(f)
}

// ParseModel parses the model-file grammar from r.
func ParseModel(r io.Reader) (*Network, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	line, err := nextLine(scanner, "LayerCount:")
	if err != nil {
		return nil, err
	}
	if _, err := strconv.Atoi(line[0]); err != nil {
		return nil, fmt.Errorf("evaluator: bad LayerCount value %q: %w", line[0], err)
	}

	sizesTokens, err := nextLine(scanner, "LayerSizes:")
	if err != nil {
		return nil, err
	}
	sizes := make([]int, len(sizesTokens))
	for i, tok := range sizesTokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("evaluator: bad LayerSizes token %q: %w", tok, err)
		}
		sizes[i] = n
	}
	if !equalInts(sizes, layerSizes) {
		return nil, fmt.Errorf("evaluator: model file has LayerSizes %v, expected %v", sizes, layerSizes)
	}

	// Activations tokens are read and ignored.
	if _, err := nextLine(scanner, "Activations:"); err != nil {
		return nil, err
	}

	n := newNetwork()

	firstWeights, err := nextFloats(scanner, "Weights:")
	if err != nil {
		return nil, err
	}
	if len(firstWeights) != inputSize*hiddenASize {
		return nil, fmt.Errorf("evaluator: first Weights line has %d floats, expected %d", len(firstWeights), inputSize*hiddenASize)
	}
	firstBiases, err := nextFloats(scanner, "Biases:")
	if err != nil {
		return nil, err
	}
	if len(firstBiases) != hiddenASize {
		return nil, fmt.Errorf("evaluator: first Biases line has %d floats, expected %d", len(firstBiases), hiddenASize)
	}
	copy(n.first.bias[:], firstBiases)
	// firstWeights is row-major per output neuron (weights_vec[output][input]);
	// the accumulator's matrix is stored transposed for cache-friendly add/remove.
	for outputIdx := 0; outputIdx < hiddenASize; outputIdx++ {
		for inputIdx := 0; inputIdx < inputSize; inputIdx++ {
			n.first.matrix[hiddenASize*inputIdx+outputIdx] = firstWeights[outputIdx*inputSize+inputIdx]
		}
	}

	if err := readDenseLayer(scanner, &n.hidden); err != nil {
		return nil, err
	}
	if err := readDenseLayer(scanner, &n.final); err != nil {
		return nil, err
	}

	return n, nil
}

// readDenseLayer reads one Weights/Biases line pair directly into l's
// matrix, which is already stored in the natural [output][input]
// row-major order denseLayer.forward expects.
func readDenseLayer(scanner *bufio.Scanner, l *denseLayer) error {
	weights, err := nextFloats(scanner, "Weights:")
	if err != nil {
		return err
	}
	if len(weights) != l.inputSize*l.outputSize {
		return fmt.Errorf("evaluator: Weights line has %d floats, expected %d", len(weights), l.inputSize*l.outputSize)
	}
	copy(l.matrix, weights)

	biases, err := nextFloats(scanner, "Biases:")
	if err != nil {
		return err
	}
	if len(biases) != l.outputSize {
		return fmt.Errorf("evaluator: Biases line has %d floats, expected %d", len(biases), l.outputSize)
	}
	copy(l.bias, biases)
	return nil
}

// nextLine scans the next line, checks its label token matches want,
// and returns the remaining whitespace-separated tokens.
func nextLine(scanner *bufio.Scanner, want string) ([]string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("evaluator: model file ended, expected %q line", want)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) == 0 || fields[0] != want {
		return nil, fmt.Errorf("evaluator: expected %q line, got %q", want, scanner.Text())
	}
	return fields[1:], nil
}

func nextFloats(scanner *bufio.Scanner, want string) ([]float32, error) {
	tokens, err := nextLine(scanner, want)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return nil, fmt.Errorf("evaluator: bad float %q on %q line: %w", tok, want, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// NewSyntheticNetwork builds a deterministic, seeded random network of
// the fixed architecture. Its weights carry no playing strength - it
// exists so the engine has something to evaluate with on first run
// before a trained model file is supplied, and so tests don't depend
// on an external asset.
func NewSyntheticNetwork(seed int64) *Network {
	rnd := rand.New(rand.NewSource(seed))
	n := newNetwork()

	small := func() float32 { return float32(rnd.NormFloat64() * 0.05) }

	for i := range n.first.matrix {
		n.first.matrix[i] = small()
	}
	for i := range n.first.bias {
		n.first.bias[i] = small()
	}
	for i := range n.hidden.matrix {
		n.hidden.matrix[i] = small()
	}
	for i := range n.hidden.bias {
		n.hidden.bias[i] = small()
	}
	for i := range n.final.matrix {
		n.final.matrix[i] = small()
	}
	for i := range n.final.bias {
		n.final.bias[i] = small()
	}
	return n
}
