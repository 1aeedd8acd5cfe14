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
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/bits"

	"github.com/google/uuid"
)

// DefaultAlphabet is the 64-symbol URL-safe alphabet of nano id.
const DefaultAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultNanoSize is the length of nano id strings.
const DefaultNanoSize = 21

// ShortIDSize is the length of short id strings: 12 bytes of a
// truncated v7 layout rendered as unpadded base64url.
const ShortIDSize = 16

// encodeUUID renders the canonical 8-4-4-4-12 hyphenated hex form.
// The rendering is referentially transparent, equal bytes always yield
// byte-identical text.
func encodeUUID(uid UUID) string {
	var b [36]byte
	hex.Encode(b[:8], uid[0:4])
	b[8] = '-'
	hex.Encode(b[9:13], uid[4:6])
	b[13] = '-'
	hex.Encode(b[14:18], uid[6:8])
	b[18] = '-'
	hex.Encode(b[19:23], uid[8:10])
	b[23] = '-'
	hex.Encode(b[24:], uid[10:16])
	return string(b[:])
}

// encodeShort renders the leading 12 bytes of the identifier as a
// 16-character unpadded base64url string. Truncation keeps the ⟨𝒕⟩
// fraction, short ids sort by allocation time.
func encodeShort(uid UUID) string {
	var b [ShortIDSize]byte
	base64.RawURLEncoding.Encode(b[:], uid[:12])
	return string(b[:])
}

// encodeNano draws size symbols uniformly from the alphabet using
// mask-based rejection sampling: bytes whose masked value falls outside
// the alphabet are discarded, never folded back by modulo, so symbol
// distribution carries no skew. With a 64-symbol alphabet the mask is
// exact and no byte is rejected.
func encodeNano(src Entropy, alphabet string, size int) (string, error) {
	mask := byte(1<<bits.Len(uint(len(alphabet)-1)) - 1)

	id := make([]byte, 0, size)
	buf := make([]byte, size)
	for {
		if _, err := src.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			b &= mask
			if int(b) >= len(alphabet) {
				continue
			}
			id = append(id, alphabet[b])
			if len(id) == size {
				return string(id), nil
			}
		}
	}
}

// Parse decodes the canonical text form of UUID. Decoding round-trips
// exactly with the String rendering.
func Parse(val string) (UUID, error) {
	uid, err := uuid.Parse(val)
	if err != nil {
		return UUID{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return UUID(uid), nil
}

// FromBytes decodes UUID from its raw 16-byte form.
func FromBytes(val []byte) (UUID, error) {
	if len(val) != 16 {
		return UUID{}, fmt.Errorf("%w: malformed uuid of %d bytes", ErrInvalidArgument, len(val))
	}
	var uid UUID
	copy(uid[:], val)
	return uid, nil
}
