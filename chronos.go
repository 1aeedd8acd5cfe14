//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package uid

import (
	"runtime"
	"sync/atomic"
	"time"
)

// chronos is the default logical clock. The ⟨𝒕⟩ tick and ⟨𝒔⟩ sequence
// pair is packed into a single word so that allocation of the next pair
// is one compare-and-swap, the hot path carries no mutex.
//
//	  64 - seqBits bit       seqBits bit
//	|--------------------|----------------|
//	         ⟨𝒕⟩                 ⟨𝒔⟩
type chronos struct {
	ticker  func() uint64
	seqBits uint64
	seqMax  uint64
	state   atomic.Uint64
}

// newChronos creates a logical clock over the ticker function. seqBits
// defines the width of the sequence fraction in the packed word, seqMax
// the last usable sequence value within one tick (it may be below the
// width limit, e.g. v1 folds the sequence into 100ns sub-tick precision
// and exhausts at 9999).
func newChronos(ticker func() uint64, seqBits, seqMax uint64) *chronos {
	return &chronos{ticker: ticker, seqBits: seqBits, seqMax: seqMax}
}

// T returns the next ⟨𝒕⟩⟨𝒔⟩ pair. Pairs are strictly monotonic within
// the process:
//
// ↣ the wall clock advanced: the new tick is emitted, sequence resets.
//
// ↣ the wall clock stalled on the known tick: sequence increments.
//
// ↣ the wall clock moved backwards: the last known tick is held and the
// sequence keeps incrementing, a pair never regresses.
//
// ↣ the sequence space of the tick is exhausted: the call spins until
// real time advances past the held tick. The wait is bounded by clock
// resolution, not by external resources.
func (c *chronos) T() (uint64, uint64) {
	for {
		prev := c.state.Load()
		tick := prev >> c.seqBits
		seq := prev & (1<<c.seqBits - 1)

		switch now := c.ticker(); {
		case now > tick:
			if c.state.CompareAndSwap(prev, now<<c.seqBits) {
				return now, 0
			}
		case seq < c.seqMax:
			if c.state.CompareAndSwap(prev, prev+1) {
				return tick, seq + 1
			}
		default:
			runtime.Gosched()
		}
	}
}

func unixMilli() uint64 {
	return uint64(time.Now().UnixMilli())
}

// sequence widths of time-ordered families: v7 carries a 12-bit counter
// in rand_a, v1 folds a sub-millisecond counter into the 100ns fraction
// of its timestamp (10000 slots per millisecond tick).
const (
	seqBits7 = 12
	seqMax7  = 1<<seqBits7 - 1
	seqBits1 = 14
	seqMax1  = 9999
)

func newChronos7() *chronos { return newChronos(unixMilli, seqBits7, seqMax7) }
func newChronos1() *chronos { return newChronos(unixMilli, seqBits1, seqMax1) }

// NewChronosMock creates a deterministic clock emitting the fixed
// ⟨𝒕⟩⟨𝒔⟩ pair. It exists so that tests substitute real time with a
// known constant.
func NewChronosMock(tick, seq uint64) Chronos {
	return chronosMock{tick: tick, seq: seq}
}

type chronosMock struct{ tick, seq uint64 }

func (c chronosMock) T() (uint64, uint64) { return c.tick, c.seq }
