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
	"encoding/json"
	"time"
)

// UUID is an immutable 128-bit identifier, RFC 9562 layout. The zero
// value is the nil UUID.
type UUID [16]byte

// Chronos is an abstraction of the logical clock used by generators of
// time-ordered identifiers. T returns a ⟨𝒕⟩ tick and ⟨𝒔⟩ sequence pair
// that is monotonically increasing under concurrent calls.
type Chronos interface {
	T() (uint64, uint64)
}

// Entropy is a supplier of cryptographically secure random bytes, safe
// for concurrent use. Read fills p entirely or fails, a short read is
// reported as an error.
type Entropy interface {
	Read(p []byte) (int, error)
}

// Version returns the UUID version number encoded in the value.
func (uid UUID) Version() int {
	return int(uid[6] >> 4)
}

// Variant returns the UUID variant bits, 2 for RFC 9562 values.
func (uid UUID) Variant() int {
	switch {
	case uid[8]&0x80 == 0x00:
		return 0
	case uid[8]&0xc0 == 0x80:
		return 2
	case uid[8]&0xe0 == 0xc0:
		return 6
	default:
		return 7
	}
}

// IsNil returns true for the zero UUID.
func (uid UUID) IsNil() bool {
	return uid == UUID{}
}

// Bytes returns a copy of the raw 16-byte form.
func (uid UUID) Bytes() []byte {
	bytes := make([]byte, 16)
	copy(bytes, uid[:])
	return bytes
}

// String encodes the value to its canonical 36-character hyphenated
// lower-case hex form.
func (uid UUID) String() string {
	return encodeUUID(uid)
}

/*

Lenses of UUID value

*/

// 100ns intervals between 1582-10-15 (start of gregorian calendar,
// zero point of v1 timestamps) and unix epoch
const epoch1582 = 122192928000000000

// Time returns ⟨𝒕⟩ timestamp fraction from the identifier. The lens is
// defined for time-ordered versions (1, 7), other versions yield the
// zero time.
func Time(uid UUID) time.Time {
	switch uid.Version() {
	case 1:
		t := uint64(uid[6]&0x0f)<<56 | uint64(uid[7])<<48 |
			uint64(uid[4])<<40 | uint64(uid[5])<<32 |
			uint64(uid[0])<<24 | uint64(uid[1])<<16 | uint64(uid[2])<<8 | uint64(uid[3])
		return time.Unix(0, int64(t-epoch1582)*100)
	case 7:
		t := uint64(uid[0])<<40 | uint64(uid[1])<<32 | uint64(uid[2])<<24 |
			uint64(uid[3])<<16 | uint64(uid[4])<<8 | uint64(uid[5])
		return time.UnixMilli(int64(t))
	default:
		return time.Time{}
	}
}

// Seq returns ⟨𝒔⟩ sequence fraction from the identifier: the clock
// sequence of v1, the per-tick counter of v7.
func Seq(uid UUID) uint64 {
	switch uid.Version() {
	case 1:
		return uint64(uid[8]&0x3f)<<8 | uint64(uid[9])
	case 7:
		return uint64(uid[6]&0x0f)<<8 | uint64(uid[7])
	default:
		return 0
	}
}

// Node returns ⟨𝒍⟩ node fraction from a v1 identifier.
func Node(uid UUID) uint64 {
	if uid.Version() != 1 {
		return 0
	}
	return uint64(uid[10])<<40 | uint64(uid[11])<<32 | uint64(uid[12])<<24 |
		uint64(uid[13])<<16 | uint64(uid[14])<<8 | uint64(uid[15])
}

/*

UUID "Algebra"

*/

// Eq compares UUIDs, returns true if values are equal.
func Eq(a, b UUID) bool {
	return a == b
}

// Lt compares UUIDs byte-wise, returns true if a sorts before b. For
// time-ordered versions the byte order coincides with allocation order.
func Lt(a, b UUID) bool {
	for i := 0; i < 16; i++ {
		switch {
		case a[i] < b[i]:
			return true
		case a[i] > b[i]:
			return false
		}
	}
	return false
}

// MarshalText encodes the value to its canonical text form.
func (uid UUID) MarshalText() ([]byte, error) {
	return []byte(encodeUUID(uid)), nil
}

// UnmarshalText decodes the canonical text form.
func (uid *UUID) UnmarshalText(text []byte) error {
	val, err := Parse(string(text))
	if err != nil {
		return err
	}
	*uid = val
	return nil
}

// MarshalJSON encodes the value to a canonical JSON string.
func (uid UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodeUUID(uid))
}

// UnmarshalJSON decodes the canonical JSON string to UUID value.
func (uid *UUID) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}
	return uid.UnmarshalText([]byte(val))
}
