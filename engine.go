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
	"crypto/sha256"
	"fmt"
	"os"
	"runtime"
	"sync"
)

// EnvNodeID is the environment variable consulted by WithNodeFromEnv.
const EnvNodeID = "CONFIG_UID_NODE_ID"

// multicast bit marks the ⟨𝒍⟩ node of v1 as randomly allocated rather
// than harvested from a hardware address (RFC 9562 §6.10)
const nodeMulticast = 1 << 40

// Engine is the generation context: the entropy stream handle, the
// logical clocks of time-ordered families and the worker pool of batch
// allocation. An Engine is safe for concurrent use by any number of
// goroutines.
type Engine struct {
	entropy Entropy
	c1      Chronos
	c7      Chronos

	// ⟨𝒍⟩ node and clock sequence of v1, fixed at construction
	node     uint64
	hasNode  bool
	clockSeq uint64

	nanoAlphabet string
	nanoSize     int

	workers int
	tasks   chan func()
	stop    sync.Once
}

// Option configures the engine at construction time.
type Option func(*Engine)

// WithEntropy injects a custom entropy source, e.g. a deterministic one
// for testing.
func WithEntropy(src Entropy) Option {
	return func(e *Engine) { e.entropy = src }
}

// WithChronos1 injects the logical clock of v1 identifiers.
func WithChronos1(c Chronos) Option {
	return func(e *Engine) { e.c1 = c }
}

// WithChronos7 injects the logical clock of v7 identifiers (short id
// shares it).
func WithChronos7(c Chronos) Option {
	return func(e *Engine) { e.c7 = c }
}

// WithNodeID explicitly configures the ⟨𝒍⟩ spatially unique identifier
// of v1. The value is truncated to 48 bits.
func WithNodeID(id uint64) Option {
	return func(e *Engine) {
		e.node = id & 0x0000ffffffffffff
		e.hasNode = true
	}
}

// WithNodeFromEnv configures the ⟨𝒍⟩ spatially unique identifier from
// the CONFIG_UID_NODE_ID environment variable, hashed to 48 bits.
func WithNodeFromEnv() Option {
	return func(e *Engine) {
		hash := sha256.Sum256([]byte(os.Getenv(EnvNodeID)))
		e.node = uint64(hash[0])<<40 | uint64(hash[1])<<32 | uint64(hash[2])<<24 |
			uint64(hash[3])<<16 | uint64(hash[4])<<8 | uint64(hash[5])
		e.hasNode = true
	}
}

// WithNanoID configures the size and alphabet of nano id strings. The
// alphabet holds 2 to 256 symbols.
func WithNanoID(size int, alphabet string) Option {
	return func(e *Engine) {
		e.nanoSize = size
		e.nanoAlphabet = alphabet
	}
}

// WithWorkers configures the size of the worker pool serving batch
// allocation. The default is the number of logical cores.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// New creates an engine. The worker pool starts immediately and lives
// until Close.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		entropy:      NewEntropy(),
		c1:           newChronos1(),
		c7:           newChronos7(),
		nanoAlphabet: DefaultAlphabet,
		nanoSize:     DefaultNanoSize,
		workers:      runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.nanoSize < 1 || e.nanoSize > 256 {
		return nil, fmt.Errorf("%w: nano id size %d is out of [1, 256]", ErrInvalidArgument, e.nanoSize)
	}
	if len(e.nanoAlphabet) < 2 || len(e.nanoAlphabet) > 256 {
		return nil, fmt.Errorf("%w: nano id alphabet of %d symbols is out of [2, 256]", ErrInvalidArgument, len(e.nanoAlphabet))
	}
	if e.workers < 1 {
		return nil, fmt.Errorf("%w: worker pool of %d", ErrInvalidArgument, e.workers)
	}

	if err := e.seedV1(); err != nil {
		return nil, err
	}

	e.tasks = make(chan func())
	for i := 0; i < e.workers; i++ {
		go e.serve()
	}
	return e, nil
}

// seedV1 draws the random ⟨𝒍⟩ node (unless configured) and the initial
// clock sequence of v1 from the entropy source.
func (e *Engine) seedV1() error {
	var seed [8]byte
	if _, err := e.entropy.Read(seed[:]); err != nil {
		return err
	}
	e.clockSeq = uint64(seed[6])<<8 | uint64(seed[7])

	if !e.hasNode {
		e.node = (uint64(seed[0])<<40 | uint64(seed[1])<<32 | uint64(seed[2])<<24 |
			uint64(seed[3])<<16 | uint64(seed[4])<<8 | uint64(seed[5])) | nodeMulticast
	}
	return nil
}

func (e *Engine) serve() {
	for task := range e.tasks {
		task()
	}
}

// Close releases the worker pool. The engine must not be used after
// Close. The process-wide default engine is never closed.
func (e *Engine) Close() {
	e.stop.Do(func() { close(e.tasks) })
}

/*

Process-wide default engine, lazily created at the outermost api
boundary so that explicit engines stay injectable everywhere else.

*/

var (
	global     *Engine
	globalErr  error
	globalOnce sync.Once
)

func defaultEngine() (*Engine, error) {
	globalOnce.Do(func() {
		global, globalErr = New()
	})
	return global, globalErr
}
