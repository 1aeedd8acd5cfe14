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
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"sync"
)

// size of the buffer each pooled reader keeps ahead of demand
const entropyBufSize = 4096

type entropy struct {
	pool sync.Pool
}

// NewEntropy creates the default entropy source: the operating system
// random generator behind a pool of per-caller buffered readers, so
// that concurrent allocation does not serialize on a single descriptor.
func NewEntropy() Entropy {
	return &entropy{
		pool: sync.Pool{
			New: func() any {
				return bufio.NewReaderSize(rand.Reader, entropyBufSize)
			},
		},
	}
}

func (e *entropy) Read(p []byte) (int, error) {
	buf := e.pool.Get().(*bufio.Reader)
	n, err := io.ReadFull(buf, p)
	if err != nil {
		// the reader state is unknown after a failed read, drop it
		return n, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	e.pool.Put(buf)
	return n, nil
}
