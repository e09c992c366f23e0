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

// Package search implements iterative-deepening negamax with
// aspiration windows, null-move pruning, late move reductions and a
// quiescence search, driven by a single worker goroutine per "go"
// command.
package search

import (
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/trauts1234/Mandelbrot/internal/config"
	"github.com/trauts1234/Mandelbrot/internal/evaluator"
	"github.com/trauts1234/Mandelbrot/internal/history"
	myLogging "github.com/trauts1234/Mandelbrot/internal/logging"
	"github.com/trauts1234/Mandelbrot/internal/movegen"
	"github.com/trauts1234/Mandelbrot/internal/position"
	"github.com/trauts1234/Mandelbrot/internal/transpositiontable"
	"github.com/trauts1234/Mandelbrot/internal/uciinterface"
	"github.com/trauts1234/Mandelbrot/internal/util"
	. "github.com/trauts1234/Mandelbrot/internal/types"
)

// maxSearchDepth bounds iterative deepening when no "depth" limit was
// given on the "go" command line.
const maxSearchDepth = 128

// unboundedBudget marks a time budget that was never actually set by
// any of the controls on a "go" command, i.e. an infinite/depth-only
// search.
const unboundedBudget = time.Duration(1) << 61

// Result is what one completed "go" command produced.
type Result struct {
	BestMove    Move
	BestValue   Value
	SearchDepth int
	Nodes       uint64
	SearchTime  time.Duration
}

// nodeType distinguishes the search root, whose single-legal-reply
// case is handled differently, from every other node.
type nodeType int

const (
	nodeRoot nodeType = iota
	nodeNormal
)

// Search is a UCI search engine: one Search runs at most one worker
// goroutine at a time, driven by StartSearch/StopSearch.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	driver uciinterface.Driver

	tt      *transpositiontable.TtTable
	eval    *evaluator.Evaluator
	history *history.History
	mg      []*movegen.Movegen

	stopFlag *util.Bool
	running  *util.Bool
	group    *errgroup.Group

	startTime   time.Time
	deadline    util.TimePoint
	hasDeadline bool

	nodesVisited uint64
	statistics   Statistics

	currentPosition *position.Position
	searchLimits    *Limits

	lastResult *Result
}

// NewSearch creates a Search with its own transposition table,
// evaluator and history, ready to accept StartSearch calls.
func NewSearch() *Search {
	return &Search{
		log:      myLogging.GetLog(),
		slog:     myLogging.GetSearchLog(),
		driver:   uciinterface.NoopDriver{},
		tt:       transpositiontable.NewTtTable(config.Settings.Search.TTSize),
		eval:     evaluator.NewEvaluator(),
		history:  history.NewHistory(),
		stopFlag: util.NewBool(false),
		running:  util.NewBool(false),
	}
}

// SetDriver attaches the UCI callback that receives iteration and
// result reports. Pass uciinterface.NoopDriver{} (the default) to
// silence them.
func (s *Search) SetDriver(d uciinterface.Driver) {
	s.driver = d
}

// IsSearching reports whether a worker goroutine is currently running.
func (s *Search) IsSearching() bool {
	return s.running.Load()
}

// NodesVisited returns the node count of the most recently started
// search. Only meaningful to read once the worker has been joined.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// LastSearchResult returns the result of the most recently completed
// search, or nil if none has completed yet.
func (s *Search) LastSearchResult() *Result {
	return s.lastResult
}

// ClearHash discards every transposition table entry. Must not be
// called while a search is running.
func (s *Search) ClearHash() {
	s.tt.Clear()
}

// ResizeHash resizes the transposition table, discarding its
// contents. Must not be called while a search is running.
func (s *Search) ResizeHash(sizeInMByte int) {
	s.tt.Resize(sizeInMByte)
}

// WaitWhileSearching blocks until the current worker goroutine (if
// any) has returned. It also joins the previous worker before a new
// one may be started, giving the one-worker-at-a-time invariant.
func (s *Search) WaitWhileSearching() {
	if s.group != nil {
		_ = s.group.Wait()
	}
}

// StopSearch asks the running worker to stop at its next poll point
// and waits for it to actually finish.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// StartSearch joins any previous worker, then starts a new one
// against a private copy of p under limits sl. It returns once the
// worker has finished its own setup (so nodesVisited/statistics are
// zeroed and the move generator buffers are ready), not once the
// search itself is complete; use WaitWhileSearching or StopSearch to
// wait for the actual result.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	s.WaitWhileSearching()

	ready := make(chan struct{})
	var g errgroup.Group
	s.group = &g
	s.running.Store(true)

	g.Go(func() error {
		s.run(&p, &sl, ready)
		return nil
	})

	<-ready
}

// run is the worker goroutine body.
func (s *Search) run(p *position.Position, sl *Limits, ready chan struct{}) {
	defer s.running.Store(false)

	s.startTime = time.Now()
	s.stopFlag.Store(false)
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.currentPosition = p
	s.searchLimits = sl

	maxDepth := maxSearchDepth
	if sl.Depth > 0 && sl.Depth < maxDepth {
		maxDepth = sl.Depth
	}

	plyBufferSize := maxDepth + config.Settings.Search.QuiescenceDepth + 8
	s.mg = make([]*movegen.Movegen, plyBufferSize)
	for i := range s.mg {
		s.mg[i] = movegen.NewMoveGen()
	}

	s.eval.AttachTo(p)

	s.setupTimeControl(sl)
	if s.hasDeadline {
		go s.startTimer()
	}

	close(ready)

	result := s.iterativeDeepening(p, maxDepth)

	s.stopFlag.Store(true)
	s.lastResult = result
	s.slog.Info(s.statistics.String())
	s.driver.SendBestMove(result.BestMove)
}

// setupTimeControl computes s.deadline for time-controlled searches,
// per the budget formula min(movetime, my_time/20 + my_inc/2).
// Infinite, pondering or depth/nodes-only searches get no deadline at
// all and rely on their own limit instead.
func (s *Search) setupTimeControl(sl *Limits) {
	s.hasDeadline = false
	if sl.Infinite || sl.Ponder || !sl.TimeControl {
		return
	}

	myTime, myInc := sl.WhiteTime, sl.WhiteInc
	if s.currentPosition.NextPlayer() == Black {
		myTime, myInc = sl.BlackTime, sl.BlackInc
	}

	budget := unboundedBudget
	if myTime > 0 || myInc > 0 {
		budget = myTime/20 + myInc/2
	}
	if sl.MoveTime > 0 && sl.MoveTime < budget {
		budget = sl.MoveTime
	}
	if budget <= 0 || budget >= unboundedBudget {
		return
	}

	s.deadline = util.NowPlusMillis(budget.Milliseconds())
	s.hasDeadline = true
}

// startTimer busy-polls the deadline at a coarse interval and sets
// the stop flag once it has passed, letting the search notice it on
// its own next poll rather than being interrupted mid-node.
func (s *Search) startTimer() {
	for !s.stopFlag.Load() {
		if s.deadline.NowIsPastTimePoint() {
			s.stopFlag.Store(true)
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// pollTimer checks the deadline and the node limit, setting the stop
// flag if either has been exceeded. Called from the search's hot
// loop every ~2048 leaves, and once per completed root iteration.
func (s *Search) pollTimer() {
	if s.hasDeadline && s.deadline.NowIsPastTimePoint() {
		s.stopFlag.Store(true)
		return
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag.Store(true)
	}
}
