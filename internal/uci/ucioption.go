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

package uci

import (
	"math"
	"strconv"
	"strings"

	"github.com/trauts1234/Mandelbrot/internal/config"
)

// uciOptionType is an enum of the UCI option kinds this engine
// exposes. Only Spin is actually used, kept as an enum anyway to
// match the "option name <n> type <kind> ..." grammar the UCI
// protocol defines for all of its kinds.
type uciOptionType int

const (
	Check uciOptionType = iota
	Spin
	Combo
	Button
	String
)

// optionHandler is called from setOptionCommand when its option's
// value has just been updated.
type optionHandler func(*UciHandler, *uciOption)

// uciOption is one entry of the "uci" command's option list.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

// String renders o the way the "uci" command reports it:
// "option name <n> type <kind> default <v> [min <v> max <v>]".
func (o *uciOption) String() string {
	var b strings.Builder
	b.WriteString("option name ")
	b.WriteString(o.NameID)
	b.WriteString(" type ")
	switch o.OptionType {
	case Check:
		b.WriteString("check default ")
		b.WriteString(o.DefaultValue)
	case Spin:
		b.WriteString("spin default ")
		b.WriteString(o.DefaultValue)
		b.WriteString(" min ")
		b.WriteString(o.MinValue)
		b.WriteString(" max ")
		b.WriteString(o.MaxValue)
	case Button:
		b.WriteString("button")
	case String:
		b.WriteString("string default ")
		b.WriteString(o.DefaultValue)
	}
	return b.String()
}

type optionMap map[string]*uciOption

// uciOptions holds every option this engine reports to "uci", and
// sortOrderUciOptions fixes the order they're sent in. The teacher's
// engine reports two dozen feature toggles mirroring its own
// configuration fields (Use_SEE, Use_PVS, Use_IID, Eval_Mobility...);
// this engine's simplified, fixed pruning/ordering scheme has no
// per-technique toggles to expose, so only the hash size - the one
// option spec.md's protocol surface names - is reported.
var uciOptions optionMap
var sortOrderUciOptions []string

func init() {
	uciOptions = optionMap{
		"Hash": {
			NameID:       "Hash",
			HandlerFunc:  hashSize,
			OptionType:   Spin,
			DefaultValue: strconv.Itoa(config.Settings.Search.TTSize),
			CurrentValue: strconv.Itoa(config.Settings.Search.TTSize),
			MinValue:     "1",
			MaxValue:     strconv.Itoa(math.MaxInt32),
		},
	}
	sortOrderUciOptions = []string{"Hash"}
}

// GetOptions renders every option in sortOrderUciOptions order, ready
// to be sent one per line after "id author ...".
func (o optionMap) GetOptions() []string {
	options := make([]string, 0, len(sortOrderUciOptions))
	for _, name := range sortOrderUciOptions {
		options = append(options, o[name].String())
	}
	return options
}

func hashSize(u *UciHandler, o *uciOption) {
	v, err := strconv.Atoi(o.CurrentValue)
	if err != nil || v <= 0 {
		u.SendInfoString("setoption: invalid Hash value " + o.CurrentValue)
		return
	}
	config.Settings.Search.TTSize = v
	u.mySearch.ResizeHash(v)
}
