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

// Package transpositiontable implements a single-entry, direct-mapped
// transposition table (cache) for a chess engine search. The TtTable
// type is not thread safe and needs to be synchronized externally if
// used from multiple goroutines; this is especially relevant for
// Resize and Clear, which must not be called while a search is using
// the table.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/trauts1234/Mandelbrot/internal/logging"
	. "github.com/trauts1234/Mandelbrot/internal/types"
	"github.com/trauts1234/Mandelbrot/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the maximal memory usage of the table.
	MaxSizeInMB = 65_536

	bytesPerMB = 1024 * 1024
)

// TtTable is the transposition table. Create with NewTtTable.
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds statistical data on table usage.
type TtStats struct {
	numberOfSets   uint64
	numberOfProbes uint64
	numberOfHits   uint64
	numberOfMisses uint64
}

// NewTtTable creates a new TtTable capped at sizeInMByte megabytes.
// The actual entry count is the largest power of two that fits, so
// the index can be computed with a bit mask.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the table, discarding all entries.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	entrySize := uint64(unsafe.Sizeof(TtEntry{}))
	tt.sizeInByte = uint64(sizeInMByte) * bytesPerMB
	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/entrySize))))
	}
	tt.hashKeyMask = tt.maxNumberOfEntries - 1
	tt.sizeInByte = tt.maxNumberOfEntries * entrySize

	tt.Clear()

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%d Byte) (requested were %d MBytes)",
		tt.sizeInByte/bytesPerMB, tt.maxNumberOfEntries, entrySize, sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// Set stores an entry, unconditionally overwriting whatever already
// occupies that index. depth is the remaining search depth the entry
// was produced at (the "subtree depth"); value is the search score
// before mate-distance adjustment for storage, already relative to
// the side to move at the node that produced it.
func (tt *TtTable) Set(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.numberOfSets++
	idx := tt.index(key)
	if tt.data[idx].Key == 0 && tt.data[idx].Value == NullEval {
		tt.numberOfEntries++
	}
	tt.data[idx] = TtEntry{
		Key:   key,
		Move:  move,
		Value: value,
		Eval:  eval,
		Depth: depth,
		Type:  valueType,
	}
}

// adjustEval applies the mate-distance correction and upper/lower
// bound logic to a stored score, or returns NullEval when the bound
// doesn't resolve against the caller's alpha/beta window.
func adjustEval(value Value, valueType ValueType, plyFromRoot int, alpha, beta Value) Value {
	switch {
	case value >= FurthestMate:
		value -= Value(plyFromRoot)
	case value <= -FurthestMate:
		value += Value(plyFromRoot)
	}

	switch valueType {
	case TtExact:
		return value
	case TtUpperBound:
		if value <= alpha {
			return alpha
		}
	case TtLowerBound:
		if value >= beta {
			return beta
		}
	}
	return NullEval
}

// ProbeAdjusted looks up key and, on a hit, returns the entry with its
// score mate-adjusted for plyFromRoot and resolved against the
// alpha/beta window. The returned entry's Move is always valid
// ordering guidance even when Value comes back as NullEval (the
// caller should check IsEmpty/Value, not discard the move).
func (tt *TtTable) ProbeAdjusted(key Key, requestedDepth int8, plyFromRoot int, alpha, beta Value) TtEntry {
	tt.Stats.numberOfProbes++
	if tt.maxNumberOfEntries == 0 {
		tt.Stats.numberOfMisses++
		return emptyEntry
	}
	e := tt.data[tt.index(key)]
	if e.Key != key || e.Value == NullEval {
		tt.Stats.numberOfMisses++
		return emptyEntry
	}
	tt.Stats.numberOfHits++

	e.Value = adjustEval(e.Value, e.Type, plyFromRoot, alpha, beta)
	if e.Depth < requestedDepth {
		e.Value = NullEval
	}
	return e
}

// ProbeUnadjusted returns the raw entry for key with no mate-distance
// or bound adjustment, used for PV extraction.
func (tt *TtTable) ProbeUnadjusted(key Key) TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return emptyEntry
	}
	e := tt.data[tt.index(key)]
	if e.Key != key || e.Value == NullEval {
		return emptyEntry
	}
	return e
}

// Clear discards all entries.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	for i := range tt.data {
		tt.data[i].Value = NullEval
	}
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull samples 1000 evenly spaced slots and returns how many are
// occupied, per the UCI "hashfull" permill convention.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries < 1000 {
		return 0
	}
	step := tt.maxNumberOfEntries / 1000
	count := 0
	for i := uint64(0); i < 1000; i++ {
		if tt.data[i*step].Value != NullEval {
			count++
		}
	}
	return count
}

// Len returns the number of occupied entries.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// String returns a human-readable summary of size and usage.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d entries %d (%d permill) sets %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/bytesPerMB, tt.maxNumberOfEntries, tt.numberOfEntries, tt.Hashfull(),
		tt.Stats.numberOfSets, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

func (tt *TtTable) index(key Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
