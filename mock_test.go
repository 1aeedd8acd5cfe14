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

package uid_test

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/fogfish/uid"
)

func isError(err, kind error) bool {
	return errors.Is(err, kind)
}

// constEntropy emits the same byte forever, rendering becomes a pure
// function of the injected clocks.
type constEntropy byte

func (e constEntropy) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(e)
	}
	return len(p), nil
}

// flakyEntropy fails after the given number of successful reads.
type flakyEntropy struct {
	left atomic.Int64
}

func newFlakyEntropy(reads int) *flakyEntropy {
	e := &flakyEntropy{}
	e.left.Store(int64(reads))
	return e
}

func (e *flakyEntropy) Read(p []byte) (int, error) {
	if e.left.Add(-1) < 0 {
		return 0, fmt.Errorf("%w: injected fault", uid.ErrEntropyUnavailable)
	}
	for i := range p {
		p[i] = 0xab
	}
	return len(p), nil
}

// countingEntropy counts reads passing through the real entropy source.
type countingEntropy struct {
	src   uid.Entropy
	reads atomic.Int64
}

func newCountingEntropy() *countingEntropy {
	return &countingEntropy{src: uid.NewEntropy()}
}

func (e *countingEntropy) Read(p []byte) (int, error) {
	e.reads.Add(1)
	return e.src.Read(p)
}

// countingChronos counts pairs drawn from the wrapped clock.
type countingChronos struct {
	c     uid.Chronos
	draws atomic.Int64
}

func newCountingChronos(c uid.Chronos) *countingChronos {
	return &countingChronos{c: c}
}

func (c *countingChronos) T() (uint64, uint64) {
	c.draws.Add(1)
	return c.c.T()
}
