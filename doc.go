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

/*
Package uid implements a high-throughput engine to generate unique
identifiers for Golang applications: RFC 9562 UUIDs (time-based v1,
random v4, time-ordered v7) and compact URL-safe strings (short id,
nano id), either one value at a time or in large batches fanned out
across CPU cores.

# Key features

This library aims important objectives:

↣ identifiers are allocated from cryptographically secure entropy only,
the engine never falls back to a weaker source.

↣ time-ordered identifiers (v1, v7) are monotonic within the process
even under concurrent allocation and wall clock rollback.

↣ batch allocation partitions work across a reusable pool of workers,
each consuming a disjoint slice of entropy and counter state, so the
result is globally unique without per-item locking.

↣ rendering is a pure function of identifier bytes, two equal values
always render to identical text.

# Usage

The package-level functions allocate identifiers from a process-wide
engine, lazily created on first use:

	uid.UUID7()
	uid.NanoID()
	uid.UUID4Batch(100000)

Applications requiring deterministic behavior (e.g. unit testing) or
custom tuning create own engine and inject the entropy source and the
logical clocks:

	engine, err := uid.New(
		uid.WithWorkers(8),
		uid.WithChronos7(uid.NewChronosMock(1<<32, 0)),
	)

The engine is the only shared mutable state, all access to it goes
through lock-free atomic operations or per-worker buffers.
*/
package uid
