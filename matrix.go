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

// This file draws every function pattern (finders, separators, timing,
// alignment, dark module, format placeholder, version info), lays codewords
// into the data region in the standard zig-zag, and applies masking.

// setFunctionModule sets module (x, y) and marks it as a function module
// (never eligible for masking or data placement).
func (q *QRCode) setFunctionModule(x, y int, isDark bool) {
	q.modules[y][x] = bToModule(isDark)
	q.isFunction[y][x] = true
}

// drawFunctionPatterns draws timing patterns, the three finder patterns
// (with separators), every alignment pattern, placeholder format info, and
// the final version info (which does not depend on the mask). Real format
// bits are written later by chooseMask once the mask is known.
func (q *QRCode) drawFunctionPatterns() {
	for i := 0; i < q.size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.size-4, 3)
	q.drawFinderPattern(3, q.size-4)

	alignPatPos := alignmentPatternPositions[q.version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			// Skip the three corners, which already carry finder patterns.
			if (i == 0 && j == 0) || (i == 0 && j == numAlign-1) || (i == numAlign-1 && j == 0) {
				continue
			}
			q.drawAlignmentPattern(int(alignPatPos[i]), int(alignPatPos[j]))
		}
	}

	q.drawFormatBits(0)
	q.drawVersion()
}

// drawFinderPattern draws a 9x9 finder pattern (7x7 core plus its 1-module
// separator) centered at (x, y).
func (q *QRCode) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= q.size || yy < 0 || yy >= q.size {
				continue
			}
			dist := max(abs(dx), abs(dy))
			q.setFunctionModule(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (q *QRCode) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			q.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawCodewords lays the given codeword sequence (data + EC, already
// interleaved) into every non-function module of the data region,
// right-to-left in column pairs, alternating vertical direction each pair,
// skipping the vertical timing column. Any modules left over after the
// last bit (0-7, version dependent) stay 0 — they are the remainder bits.
func (q *QRCode) drawCodewords(data []byte) {
	if len(data) != numRawDataModules[q.version]/8 {
		panic("qrcodegen: codeword data is not the expected length")
	}

	i := 0 // Bit index into data.
	for right := q.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5 // The timing column has no data modules; skip it.
		}
		for vert := 0; vert < q.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = q.size - 1 - vert
				} else {
					y = vert
				}

				if !q.isFunction[y][x] && i < len(data)*8 {
					q.modules[y][x] = module(getBit(int(data[i>>3]), 7-(i&7)))
					i++
				}
			}
		}
	}

	if i != len(data)*8 {
		panic("qrcodegen: not all codeword bits were placed")
	}
}

// applyMask XORs every non-function module with mask's pattern. Applying
// the same mask twice is a no-op, which is how chooseMask undoes a trial
// mask during penalty scoring.
func (q *QRCode) applyMask(mask Mask) {
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if q.isFunction[y][x] {
				continue
			}
			if mask.invert(x, y) {
				q.modules[y][x] ^= 1
			}
		}
	}
}

// drawFormatBits writes the 15-bit format-info string (2-bit ECC ordinal,
// 3-bit mask, 10-bit BCH(15,5) remainder, XORed with the fixed mask
// 0x5412) in both of its reserved locations.
func (q *QRCode) drawFormatBits(mask Mask) {
	data := q.ecc.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ (rem>>9)*0x537
	}
	bits := (data<<10 | rem) ^ 0x5412
	if bits>>15 != 0 {
		panic("qrcodegen: format bits overflowed 15 bits")
	}

	for i := 0; i <= 5; i++ {
		q.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	q.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	q.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	for i := 0; i < 8; i++ {
		q.setFunctionModule(q.size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(8, q.size-15+i, getBitAsBool(bits, i))
	}
	q.setFunctionModule(8, q.size-8, true) // The dark module, always dark.
}

// drawVersion writes the 18-bit version-info string (6-bit version, 12-bit
// remainder mod 0x1F25) in both of its reserved locations. A no-op below
// version 7, which carries no version-info blocks.
func (q *QRCode) drawVersion() {
	if q.version < 7 {
		return
	}

	rem := int(q.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ (rem>>11)*0x1F25
	}
	bits := int(q.version)<<12 | rem
	if bits>>18 != 0 {
		panic("qrcodegen: version bits overflowed 18 bits")
	}

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := q.size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}
