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

package util

import "time"

// TimePoint is a fixed point in monotonic time, stored as milliseconds
// since an arbitrary process-local epoch. It is comparable by value
// and safe to pass around and compare long after it was created.
type TimePoint struct {
	ms int64
}

var processEpoch = time.Now()

func millisSinceEpoch() int64 {
	return time.Since(processEpoch).Milliseconds()
}

// Now returns a TimePoint for the current instant.
func Now() TimePoint {
	return TimePoint{ms: millisSinceEpoch()}
}

// NowPlusMillis returns a TimePoint ms milliseconds in the future.
func NowPlusMillis(ms int64) TimePoint {
	return TimePoint{ms: millisSinceEpoch() + ms}
}

// NowIsPastTimePoint reports whether the current instant is at or
// past tp.
func (tp TimePoint) NowIsPastTimePoint() bool {
	return millisSinceEpoch() >= tp.ms
}

// HowLongAgo returns how many milliseconds have elapsed since tp. The
// caller is expected to have established NowIsPastTimePoint first;
// called on a TimePoint still in the future this returns a negative
// value rather than panicking.
func (tp TimePoint) HowLongAgo() int64 {
	return millisSinceEpoch() - tp.ms
}
