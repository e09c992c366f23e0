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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildModelText writes a syntactically valid model file where every
// weight and bias is a distinct, known float so layout can be checked.
func buildModelText() string {
	var b strings.Builder
	fmt.Fprintln(&b, "LayerCount: 3")
	fmt.Fprintf(&b, "LayerSizes: %d %d %d %d\n", inputSize, hiddenASize, hiddenBSize, 1)
	fmt.Fprintln(&b, "Activations: relu relu relu")

	writeFloats := func(label string, n int, gen func(i int) float32) {
		fmt.Fprint(&b, label)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, " %g", gen(i))
		}
		fmt.Fprintln(&b)
	}

	// first layer: weights_vec[output][input], output-major as the C++ loader expects.
	writeFloats("Weights:", inputSize*hiddenASize, func(i int) float32 {
		output := i / inputSize
		input := i % inputSize
		return float32(output*10000 + input)
	})
	writeFloats("Biases:", hiddenASize, func(i int) float32 { return float32(i) + 0.5 })

	writeFloats("Weights:", hiddenASize*hiddenBSize, func(i int) float32 { return float32(i) * 0.01 })
	writeFloats("Biases:", hiddenBSize, func(i int) float32 { return float32(i) * 0.1 })

	writeFloats("Weights:", hiddenBSize*1, func(i int) float32 { return float32(i) * 0.5 })
	writeFloats("Biases:", 1, func(i int) float32 { return 1.25 })

	return b.String()
}

func TestParseModelTransposesFirstLayerMatrix(t *testing.T) {
	net, err := ParseModel(strings.NewReader(buildModelText()))
	require.NoError(t, err)

	// output 3, input 5 in the file's output-major layout -> value 3*10000+5
	assert.Equal(t, float32(3*10000+5), net.first.matrix[hiddenASize*5+3])
	assert.Equal(t, float32(0.5), net.first.bias[0])
	assert.Equal(t, float32(hiddenASize-1)+0.5, net.first.bias[hiddenASize-1])
}

func TestParseModelReadsHiddenAndFinalLayersNaturally(t *testing.T) {
	net, err := ParseModel(strings.NewReader(buildModelText()))
	require.NoError(t, err)

	assert.Equal(t, float32(0), net.hidden.matrix[0])
	assert.Equal(t, float32(1)*0.01, net.hidden.matrix[1])
	assert.Equal(t, float32(1.25), net.final.bias[0])
}

func TestParseModelRejectsWrongLayerSizes(t *testing.T) {
	text := strings.Replace(buildModelText(), fmt.Sprintf("LayerSizes: %d %d %d %d", inputSize, hiddenASize, hiddenBSize, 1), "LayerSizes: 768 32 8 1", 1)
	_, err := ParseModel(strings.NewReader(text))
	assert.Error(t, err)
}

func TestParseModelRejectsWrongLabel(t *testing.T) {
	text := strings.Replace(buildModelText(), "LayerCount: 3", "LayerKount: 3", 1)
	_, err := ParseModel(strings.NewReader(text))
	assert.Error(t, err)
}

func TestParseModelRejectsTruncatedFile(t *testing.T) {
	lines := strings.Split(buildModelText(), "\n")
	truncated := strings.Join(lines[:3], "\n")
	_, err := ParseModel(strings.NewReader(truncated))
	assert.Error(t, err)
}

func TestSyntheticNetworkIsDeterministicPerSeed(t *testing.T) {
	a := NewSyntheticNetwork(5)
	b := NewSyntheticNetwork(5)
	assert.Equal(t, a.first.matrix, b.first.matrix)
	assert.Equal(t, a.first.bias, b.first.bias)

	c := NewSyntheticNetwork(6)
	assert.NotEqual(t, a.first.matrix, c.first.matrix)
}
