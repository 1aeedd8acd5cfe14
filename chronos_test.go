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
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fogfish/it/v2"
)

func TestChronosSequence(t *testing.T) {
	c := newChronos(func() uint64 { return 100 }, 12, 1<<12-1)

	t0, s0 := c.T()
	t1, s1 := c.T()
	t2, s2 := c.T()

	it.Then(t).Should(
		it.Equal(t0, 100),
		it.Equal(s0, 0),
		it.Equal(t1, 100),
		it.Equal(s1, 1),
		it.Equal(t2, 100),
		it.Equal(s2, 2),
	)
}

func TestChronosAdvance(t *testing.T) {
	var tick atomic.Uint64
	tick.Store(100)
	c := newChronos(tick.Load, 12, 1<<12-1)

	c.T()
	c.T()
	tick.Store(200)
	t1, s1 := c.T()

	it.Then(t).Should(
		it.Equal(t1, 200),
		it.Equal(s1, 0),
	)
}

// the clock never regresses: on rollback the last known tick is held
// and the sequence keeps incrementing
func TestChronosRollback(t *testing.T) {
	var tick atomic.Uint64
	tick.Store(200)
	c := newChronos(tick.Load, 12, 1<<12-1)

	t0, s0 := c.T()
	tick.Store(100)
	t1, s1 := c.T()
	t2, s2 := c.T()

	it.Then(t).Should(
		it.Equal(t0, 200),
		it.Equal(s0, 0),
		it.Equal(t1, 200),
		it.Equal(s1, 1),
		it.Equal(t2, 200),
		it.Equal(s2, 2),
	)
}

// exhausted sequence space blocks the call until the clock advances,
// then the sequence resets
func TestChronosExhaust(t *testing.T) {
	var tick atomic.Uint64
	tick.Store(100)
	c := newChronos(tick.Load, 4, 2)

	c.T()           // (100, 0)
	c.T()           // (100, 1)
	t0, s0 := c.T() // (100, 2), sequence space exhausted

	done := make(chan struct{})
	var t1, s1 uint64
	go func() {
		t1, s1 = c.T()
		close(done)
	}()

	tick.Store(101)
	<-done

	it.Then(t).Should(
		it.Equal(t0, 100),
		it.Equal(s0, 2),
		it.Equal(t1, 101),
		it.Equal(s1, 0),
	)
}

// concurrent draws never repeat a pair
func TestChronosConcurrent(t *testing.T) {
	var tick atomic.Uint64
	tick.Store(1)
	c := newChronos(tick.Load, 20, 1<<20-1)

	const workers = 8
	const draws = 10000

	pairs := make([][]uint64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			own := make([]uint64, draws)
			for k := 0; k < draws; k++ {
				at, seq := c.T()
				own[k] = at<<20 | seq
				if k%1000 == 0 {
					tick.Add(1)
				}
			}
			pairs[i] = own
		}()
	}
	wg.Wait()

	seen := make(map[uint64]struct{}, workers*draws)
	for _, own := range pairs {
		for _, val := range own {
			seen[val] = struct{}{}
		}
	}
	it.Then(t).Should(
		it.Equal(len(seen), workers*draws),
	)
}

func TestChronosUnix(t *testing.T) {
	c := newChronos7()
	t0, _ := c.T()
	t1, _ := c.T()

	it.Then(t).Should(
		it.True(t0 > 0),
		it.True(t1 >= t0),
	)
}
