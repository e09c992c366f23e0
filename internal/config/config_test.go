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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSearchConfig(t *testing.T) {
	assert.True(t, Settings.Search.UsePonder)
	assert.Equal(t, 6, Settings.Search.QuiescenceDepth)
	assert.True(t, Settings.Search.UseTT)
	assert.Equal(t, 128, Settings.Search.TTSize)
	assert.True(t, Settings.Search.UseNullMove)
	assert.Equal(t, 3, Settings.Search.NmpDepth)
	assert.Equal(t, 3, Settings.Search.NmpReduction)
	assert.Equal(t, 6, Settings.Search.MaxExtensions)
	assert.True(t, Settings.Search.UseLmr)
	assert.Equal(t, 4, Settings.Search.LmrMovesSearched)
	assert.Equal(t, 3, Settings.Search.LmrDepth)
	assert.Equal(t, 50, Settings.Search.AspirationWindow)
	assert.Equal(t, 3, Settings.Search.AspirationStartDepth)
}

func TestDefaultEvalConfig(t *testing.T) {
	assert.Equal(t, "./assets/eval/model.txt", Settings.Eval.ModelPath)
	assert.Equal(t, 200, Settings.Eval.OutputScale)
}

func TestDefaultLogConfig(t *testing.T) {
	assert.Equal(t, "info", Settings.Log.LogLvl)
	assert.Equal(t, "info", Settings.Log.SearchLogLvl)
	assert.Equal(t, "debug", Settings.Log.TestLogLvl)
}

func TestLogLevelLookup(t *testing.T) {
	assert.Equal(t, 5, LogLevels["debug"])
	assert.Equal(t, 4, LogLevels["info"])
	assert.Equal(t, -1, LogLevels["off"])
}

func TestSetupIsIdempotent(t *testing.T) {
	Setup()
	firstLevel := LogLevel
	Setup()
	assert.Equal(t, firstLevel, LogLevel)
}
