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
	"encoding/binary"
	"fmt"
)

/*
UUID1 generates time-based RFC 9562 v1 identifier.

	    32 bit         16 bit     16 bit    16 bit     48 bit
	|--------------|----------|----------|---------|------------|
	   time low      time mid   time hi     ⟨𝒔⟩         ⟨𝒍⟩

The 60-bit timestamp counts 100ns intervals since 1582-10-15. The
logical clock ticks in milliseconds, its per-tick sequence is folded
into the 100ns fraction, so concurrent allocation yields strictly
increasing timestamps.
*/
func (e *Engine) UUID1() (UUID, error) {
	t, seq := e.c1.T()
	if t == 0 {
		return UUID{}, fmt.Errorf("%w: clock reports zero tick", ErrClockUnavailable)
	}
	ts := t*10000 + seq%10000 + epoch1582

	var uid UUID
	binary.BigEndian.PutUint32(uid[0:4], uint32(ts))
	binary.BigEndian.PutUint16(uid[4:6], uint16(ts>>32))
	binary.BigEndian.PutUint16(uid[6:8], uint16(ts>>48)&0x0fff|0x1000)
	binary.BigEndian.PutUint16(uid[8:10], uint16(e.clockSeq)&0x3fff|0x8000)
	uid[10] = byte(e.node >> 40)
	uid[11] = byte(e.node >> 32)
	uid[12] = byte(e.node >> 24)
	uid[13] = byte(e.node >> 16)
	uid[14] = byte(e.node >> 8)
	uid[15] = byte(e.node)
	return uid, nil
}

// UUID4 generates fully random RFC 9562 v4 identifier: 122 bits of
// entropy with version and variant bits set.
func (e *Engine) UUID4() (UUID, error) {
	var uid UUID
	if _, err := e.entropy.Read(uid[:]); err != nil {
		return UUID{}, err
	}
	uid[6] = uid[6]&0x0f | 0x40
	uid[8] = uid[8]&0x3f | 0x80
	return uid, nil
}

/*
UUID7 generates time-ordered RFC 9562 v7 identifier.

	     48 bit         4 bit   12 bit   2 bit      62 bit
	|----------------|-------|--------|------|----------------|
	        ⟨𝒕⟩          ver      ⟨𝒔⟩     var       entropy

⟨𝒕⟩ is unix milliseconds, ⟨𝒔⟩ the per-tick monotonic counter
(RFC 9562 §6.2 method 1), the tail is fresh entropy.
*/
func (e *Engine) UUID7() (UUID, error) {
	t, seq := e.c7.T()
	if t == 0 {
		return UUID{}, fmt.Errorf("%w: clock reports zero tick", ErrClockUnavailable)
	}

	var uid UUID
	if _, err := e.entropy.Read(uid[8:]); err != nil {
		return UUID{}, err
	}
	uid[0] = byte(t >> 40)
	uid[1] = byte(t >> 32)
	uid[2] = byte(t >> 24)
	uid[3] = byte(t >> 16)
	uid[4] = byte(t >> 8)
	uid[5] = byte(t)
	uid[6] = 0x70 | byte(seq>>8)&0x0f
	uid[7] = byte(seq)
	uid[8] = uid[8]&0x3f | 0x80
	return uid, nil
}

// ShortID generates a 16-character URL-safe identifier: a v7 layout
// truncated to 12 bytes and rendered as unpadded base64url. Short ids
// sort by allocation time.
func (e *Engine) ShortID() (string, error) {
	uid, err := e.UUID7()
	if err != nil {
		return "", err
	}
	return encodeShort(uid), nil
}

// NanoID generates a fixed-length random string over the 64-symbol
// URL-safe alphabet (size and alphabet are configurable via WithNanoID).
func (e *Engine) NanoID() (string, error) {
	return encodeNano(e.entropy, e.nanoAlphabet, e.nanoSize)
}

/*

Package level generators over the process-wide default engine.

*/

// UUID1 generates time-based v1 identifier.
func UUID1() (UUID, error) {
	e, err := defaultEngine()
	if err != nil {
		return UUID{}, err
	}
	return e.UUID1()
}

// UUID4 generates random v4 identifier.
func UUID4() (UUID, error) {
	e, err := defaultEngine()
	if err != nil {
		return UUID{}, err
	}
	return e.UUID4()
}

// UUID7 generates time-ordered v7 identifier.
func UUID7() (UUID, error) {
	e, err := defaultEngine()
	if err != nil {
		return UUID{}, err
	}
	return e.UUID7()
}

// ShortID generates a 16-character URL-safe time-ordered identifier.
func ShortID() (string, error) {
	e, err := defaultEngine()
	if err != nil {
		return "", err
	}
	return e.ShortID()
}

// NanoID generates a 21-character random URL-safe identifier.
func NanoID() (string, error) {
	e, err := defaultEngine()
	if err != nil {
		return "", err
	}
	return e.NanoID()
}
