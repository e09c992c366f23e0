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

// Package uci contains the UciHandler data structure and functionality
// to handle the UCI protocol communication between the chess user
// interface and the engine.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/trauts1234/Mandelbrot/internal/evaluator"
	myLogging "github.com/trauts1234/Mandelbrot/internal/logging"
	"github.com/trauts1234/Mandelbrot/internal/movegen"
	"github.com/trauts1234/Mandelbrot/internal/moveslice"
	"github.com/trauts1234/Mandelbrot/internal/position"
	"github.com/trauts1234/Mandelbrot/internal/search"
	. "github.com/trauts1234/Mandelbrot/internal/types"
	"github.com/trauts1234/Mandelbrot/internal/uciinterface"
)

var log *logging.Logger

// UciHandler reads UCI protocol lines, updates a position and search
// limits from them, and drives a search.Search accordingly. Create an
// instance with NewUciHandler.
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	myMoveGen  *movegen.Movegen
	mySearch   *search.Search
	myPosition *position.Position
	myPerft    *movegen.Perft
	myEval     *evaluator.Evaluator

	uciLog *logging.Logger
}

// NewUciHandler creates a UciHandler reading from os.Stdin and writing
// to os.Stdout. Replace InIo/OutIo afterwards to redirect either.
func NewUciHandler() *UciHandler {
	if log == nil {
		log = myLogging.GetLog()
	}
	u := &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		myMoveGen:  movegen.NewMoveGen(),
		mySearch:   search.NewSearch(),
		myPosition: position.NewPosition(),
		myPerft:    movegen.NewPerft(),
		myEval:     evaluator.NewEvaluator(),
		uciLog:     myLogging.GetUciLog(),
	}
	var driver uciinterface.Driver = u
	u.mySearch.SetDriver(driver)
	return u
}

// Loop reads and handles commands from InIo until "quit" is received.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			return
		}
	}
}

// Command handles a single UCI protocol line and returns whatever it
// wrote to the output stream. Used by tests, where a full Loop isn't
// wanted.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// SendInfoString sends an arbitrary "info string ..." line.
func (u *UciHandler) SendInfoString(s string) {
	u.send("info string " + s)
}

// SendIterationInfo implements uciinterface.Driver, formatting one
// completed iterative-deepening iteration as "info depth <d> pv <m1>
// <m2>... score {cp <v>|mate <k>} hashfull <permille> nodes <count>".
// depth == 0 denotes the degenerate single-quiescence-probe search, for
// which pv is empty and is omitted from the line entirely.
func (u *UciHandler) SendIterationInfo(depth int, pv *moveslice.MoveSlice, value Value, hashfull int, nodes uint64) {
	if depth == 0 {
		u.send(fmt.Sprintf("info score %s hashfull %d nodes %d", value.String(), hashfull, nodes))
		return
	}
	u.send(fmt.Sprintf("info depth %d pv %s score %s hashfull %d nodes %d",
		depth, pv.StringUci(), value.String(), hashfull, nodes))
}

// SendBestMove implements uciinterface.Driver: "bestmove <m>", where m
// is a UCI coordinate move, or "NULL" for an empty-board/no-move search.
func (u *UciHandler) SendBestMove(best Move) {
	u.send("bestmove " + best.StringUci())
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand parses and dispatches a single command line.
// Returns true if the command was "quit".
func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)

	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.isReadyCommand()
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.stopCommand()
	case "ponderhit":
		u.ponderHitCommand()
	case "register":
		u.registerCommand()
	case "debug":
		u.debugCommand(tokens)
	case "static":
		u.staticCommand()
	default:
		log.Warningf("Unknown UCI command: %s", cmd)
	}
	return false
}

func (u *UciHandler) uciCommand() {
	u.send("id name Mandelbrot")
	u.send("id author the FrankyGo learning-exercise authors")
	for _, o := range uciOptions.GetOptions() {
		u.send(o)
	}
	u.send("uciok")
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	if len(tokens) < 2 || tokens[1] != "name" {
		u.SendInfoString("setoption malformed: " + strings.Join(tokens, " "))
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		name.WriteString(tokens[i])
		name.WriteString(" ")
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = tokens[i+1]
	}

	o, found := uciOptions[strings.TrimSpace(name.String())]
	if !found {
		u.SendInfoString("setoption: no such option '" + strings.TrimSpace(name.String()) + "'")
		return
	}
	o.CurrentValue = value
	o.HandlerFunc(u, o)
}

func (u *UciHandler) isReadyCommand() {
	u.send("readyok")
}

// ponderhit is accepted and no-opped: this engine never starts a
// pondering search in the first place.
func (u *UciHandler) ponderHitCommand() {
	log.Debug("ponderhit received (no-op, no pondering search runs)")
}

func (u *UciHandler) registerCommand() {
	log.Debug("register received (no-op, no registration is required)")
}

func (u *UciHandler) debugCommand(tokens []string) {
	log.Debugf("debug command received: %v (no-op)", tokens)
}

func (u *UciHandler) stopCommand() {
	u.mySearch.StopSearch()
	u.myPerft.Stop()
}

// staticCommand prints the static evaluation of the current position
// as a plain integer, per the "static" command's UCI surface.
func (u *UciHandler) staticCommand() {
	u.myEval.AttachTo(u.myPosition)
	value := u.myEval.Evaluate(u.myPosition)
	u.send(strconv.Itoa(int(value)))
}

func (u *UciHandler) goCommand(tokens []string) {
	if len(tokens) > 1 && tokens[1] == "perft" {
		u.perftCommand(tokens[1:])
		return
	}
	limits, malformed := u.readSearchLimits(tokens)
	if malformed {
		return
	}
	u.mySearch.StartSearch(*u.myPosition, *limits)
}

func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		} else {
			log.Warningf("go perft: invalid depth '%s'", tokens[1])
		}
	}
	endDepth := depth
	if len(tokens) > 2 {
		if d, err := strconv.Atoi(tokens[2]); err == nil {
			endDepth = d
		}
	}
	fen := u.myPosition.StringFen()
	go u.myPerft.StartPerftMulti(fen, depth, endDepth)
}

func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.SendInfoString("position malformed: " + strings.Join(tokens, " "))
		return
	}
	fen := position.StartFen
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(fenb.String())
		if len(fen) == 0 {
			u.SendInfoString("position malformed: empty fen")
			return
		}
	default:
		u.SendInfoString("position malformed: " + strings.Join(tokens, " "))
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		u.SendInfoString("position: invalid fen '" + fen + "'")
		return
	}
	u.myPosition = p

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			move := u.myMoveGen.GetMoveFromUci(u.myPosition, tokens[i])
			if !move.IsValid() {
				u.SendInfoString("position: invalid move '" + tokens[i] + "'")
				return
			}
			u.myPosition.DoMove(move)
		}
	}
	log.Debugf("New position: %s", u.myPosition.StringFen())
}

func (u *UciHandler) uciNewGameCommand() {
	u.myPosition = position.NewPosition()
	u.mySearch.StopSearch()
	u.mySearch.ClearHash()
}

func (u *UciHandler) readSearchLimits(tokens []string) (*search.Limits, bool) {
	sl := search.NewSearchLimits()
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "searchmoves":
			i++
			for i < len(tokens) {
				move := u.myMoveGen.GetMoveFromUci(u.myPosition, tokens[i])
				if !move.IsValid() {
					break
				}
				sl.Moves.PushBack(move)
				i++
			}
		case "infinite":
			sl.Infinite = true
			i++
		case "ponder":
			sl.Ponder = true
			i++
		case "depth":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.SendInfoString("go: invalid depth '" + tokens[i] + "'")
				return nil, true
			}
			sl.Depth = v
			i++
		case "nodes":
			i++
			v, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: invalid nodes '" + tokens[i] + "'")
				return nil, true
			}
			sl.Nodes = v
			i++
		case "mate":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.SendInfoString("go: invalid mate '" + tokens[i] + "'")
				return nil, true
			}
			sl.Mate = v
			i++
		case "movetime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: invalid movetime '" + tokens[i] + "'")
				return nil, true
			}
			sl.MoveTime = time.Duration(v) * time.Millisecond
			sl.TimeControl = true
			i++
		case "wtime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: invalid wtime '" + tokens[i] + "'")
				return nil, true
			}
			sl.WhiteTime = time.Duration(v) * time.Millisecond
			sl.TimeControl = true
			i++
		case "btime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: invalid btime '" + tokens[i] + "'")
				return nil, true
			}
			sl.BlackTime = time.Duration(v) * time.Millisecond
			sl.TimeControl = true
			i++
		case "winc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: invalid winc '" + tokens[i] + "'")
				return nil, true
			}
			sl.WhiteInc = time.Duration(v) * time.Millisecond
			i++
		case "binc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				u.SendInfoString("go: invalid binc '" + tokens[i] + "'")
				return nil, true
			}
			sl.BlackInc = time.Duration(v) * time.Millisecond
			i++
		case "movestogo":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				u.SendInfoString("go: invalid movestogo '" + tokens[i] + "'")
				return nil, true
			}
			sl.MovesToGo = v
			i++
		default:
			i++
		}
	}
	return sl, false
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
