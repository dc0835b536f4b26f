/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

// bitBuffer is an append-only, MSB-first bit-level writer. One element per
// bit keeps appendBits simple; packBytes folds it down to bytes once the
// stream is complete.
type bitBuffer []byte

// maxBitBufferLen is the largest bit length a segment's own length counter
// can report without overflowing a 32-bit signed field (spec: SegmentTooLong).
const maxBitBufferLen = 1<<31 - 1

// appendBits appends the low length bits of value, most significant bit
// first. Panics if length is out of [0, 31] or value doesn't fit in length
// bits; this mirrors the teacher's behavior for constructor-time misuse,
// which is a programmer error, not a runtime condition callers recover from.
func (bb *bitBuffer) appendBits(value int, length int8) {
	if length < 0 || length > 31 || value>>length != 0 {
		panic("value out of range")
	}

	for i := length - 1; i >= 0; i-- {
		*bb = append(*bb, byte(value>>i&1))
	}
}

// len returns the buffer's length in bits.
func (bb bitBuffer) len() int {
	return len(bb)
}

// packBytes folds a bit-per-element buffer into big-endian packed bytes.
// The caller must ensure len(bb) is a multiple of 8.
func (bb bitBuffer) packBytes() []byte {
	out := make([]byte, len(bb)/8)
	for i, bit := range bb {
		out[i>>3] |= bit << (7 - uint(i&7))
	}
	return out
}
