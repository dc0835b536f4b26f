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

// Package qrcodegen implements the QR Code Model 2 symbol encoder
// (ISO/IEC 18004): segmentation, version and ECC selection, Reed-Solomon
// codeword generation, interleaving, function-pattern drawing, masking,
// and mask penalty scoring. It produces a finished module matrix; it has
// no opinion about how that matrix gets rendered.
package qrcodegen

import (
	"fmt"
	"strings"
)

// module is a single grid cell: 0 (light) or 1 (dark).
type module byte

// QRCode is a finished, immutable QR Code symbol.
type QRCode struct {
	version Version
	size    int
	ecc     ECC
	mask    Mask
	modules [][]module
	// isFunction is only needed while building; EncodeSegments discards it
	// before returning.
	isFunction [][]bool
}

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// EncodeText encodes text as a QR Code at the given ECC level, choosing a
// single segment in the densest applicable mode (see MakeSegments).
func EncodeText(text string, ecc ECC, opts ...Option) (*QRCode, error) {
	return EncodeSegments(MakeSegments(text), ecc, opts...)
}

// EncodeBinary encodes raw bytes as a single Byte-mode segment.
func EncodeBinary(data []byte, ecc ECC, opts ...Option) (*QRCode, error) {
	return EncodeSegments([]*Segment{MakeBytes(data)}, ecc, opts...)
}

// EncodeSegments assembles one or more segments into a QR Code symbol: it
// selects the minimum version that fits (within [minVersion, maxVersion]),
// optionally boosts the ECC level, builds the bit stream, splits it into
// Reed-Solomon blocks, interleaves the codewords, draws every function
// pattern and the data region, and applies the chosen (or forced) mask.
func EncodeSegments(segs []*Segment, ecc ECC, opts ...Option) (*QRCode, error) {
	s := defaultSegmentEncoder()
	for _, o := range opts {
		o(&s)
	}

	if s.minVersion < MinVersion || MaxVersion < s.maxVersion || s.maxVersion < s.minVersion {
		return nil, fmt.Errorf("qrcodegen: invalid version range [%d, %d]", s.minVersion, s.maxVersion)
	}
	if s.mask != autoMask && (s.mask < 0 || s.mask > 7) {
		return nil, fmt.Errorf("qrcodegen: mask value %d out of range", s.mask)
	}

	version, dataUsedBits, err := chooseVersion(segs, ecc, s.minVersion, s.maxVersion)
	if err != nil {
		return nil, err
	}

	if s.boostECL {
		for newECC := Medium; newECC <= High; newECC++ {
			if dataUsedBits <= numDataCodewords[newECC][version]*8 {
				ecc = newECC
			}
		}
	}

	dataCodewords, err := assembleDataCodewords(segs, version, ecc, dataUsedBits)
	if err != nil {
		return nil, err
	}

	size := version.Size()
	qr := &QRCode{
		version: version,
		size:    size,
		ecc:     ecc,
		modules: make([][]module, size),
		isFunction: make([][]bool, size),
	}
	for i := 0; i < size; i++ {
		qr.modules[i] = make([]module, size)
		qr.isFunction[i] = make([]bool, size)
	}

	qr.drawFunctionPatterns()
	allCodewords := qr.addECCAndInterleave(dataCodewords)
	qr.drawCodewords(allCodewords)
	qr.mask = qr.chooseMask(s.mask)

	qr.isFunction = nil
	return qr, nil
}

// chooseVersion picks the minimum version in [minVersion, maxVersion] whose
// data capacity (at ecc) can hold segs, per spec.md §4.3.
func chooseVersion(segs []*Segment, ecc ECC, minVersion, maxVersion Version) (Version, int, error) {
	for version := minVersion; ; version++ {
		capacityBits := numDataCodewords[ecc][version] * 8
		usedBits := getTotalBits(segs, version)
		if usedBits >= 0 && usedBits <= capacityBits {
			return version, usedBits, nil
		}
		if version >= maxVersion {
			if usedBits >= 0 {
				return 0, 0, &DataOverCapacityError{DataBits: usedBits, BestCapacityBits: capacityBits}
			}
			return 0, 0, &DataOverCapacityError{DataBits: -1, BestCapacityBits: capacityBits}
		}
	}
}

// assembleDataCodewords builds the full bit stream (mode indicators, char
// counts, payloads, terminator, byte padding, pad-byte filling) and packs
// it into data codewords, per spec.md §4.3 "Bit stream assembly".
func assembleDataCodewords(segs []*Segment, version Version, ecc ECC, dataUsedBits int) ([]byte, error) {
	bb := make(bitBuffer, 0, dataUsedBits)
	for _, seg := range segs {
		bb.appendBits(int(seg.modeBits), 4)
		bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
		bb = append(bb, seg.Data...)
		if bb.len() > maxBitBufferLen {
			return nil, &SegmentTooLongError{BitLength: bb.len()}
		}
	}

	capacityBits := numDataCodewords[ecc][version] * 8

	// Terminator: up to 4 zero bits, never more than remaining capacity.
	bb.appendBits(0, int8(min(4, capacityBits-bb.len())))
	// Pad to a byte boundary.
	bb.appendBits(0, int8((8-bb.len()%8)%8))

	// Alternate 0xEC, 0x11 pad bytes until the codeword budget is filled.
	for padByte := 0xEC; bb.len() < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	return bb.packBytes(), nil
}

// addECCAndInterleave splits data into blocks per (version, ecc), computes
// each block's Reed-Solomon remainder, and interleaves data then EC bytes
// columnar-style across blocks (spec §4.3 "Block splitting & ECC" and
// "Interleaving").
func (q *QRCode) addECCAndInterleave(data []byte) []byte {
	if len(data) != numDataCodewords[q.ecc][q.version] {
		panic("qrcodegen: data is not the expected length")
	}

	numBlocks := numErrorCorrectionBlocks[q.ecc][q.version]
	blockECCLen := eccCodeWordsPerBlock[q.ecc][q.version]
	rawCodewords := numRawDataModules[q.version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	blocks := make([][]byte, numBlocks)
	rsDiv := reedSolomonDivisors[blockECCLen]
	for i, k := 0, 0; i < numBlocks; i++ {
		dat := data[k : k+shortBlockLen-blockECCLen+bToI(i >= numShortBlocks)]
		k += len(dat)
		block := make([]byte, shortBlockLen+1)
		copy(block, dat)
		ecc := reedSolomonComputeRemainder(dat, rsDiv)
		copy(block[len(block)-len(ecc):], ecc)
		blocks[i] = block
	}

	result := make([]byte, rawCodewords)
	for i, k := 0, 0; i < len(blocks[0]); i++ {
		for j := 0; j < len(blocks); j++ {
			// Short blocks are missing one data byte; skip that position.
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[k] = blocks[j][i]
				k++
			}
		}
	}

	return result
}

// Module reports whether the module at (x, y) is dark. Coordinates outside
// [0, Size()) return false (the quiet zone), matching spec.md's contract.
func (q *QRCode) Module(x, y int) bool {
	if x < 0 || x >= q.size || y < 0 || y >= q.size {
		return false
	}
	return q.modules[y][x] == 1
}

// Size returns the module side length, 17 + 4*Version().
func (q *QRCode) Size() int { return q.size }

// Version returns the symbol's version, 1-40.
func (q *QRCode) Version() Version { return q.version }

// ECC returns the error correction level actually used (which may differ
// from the requested level if WithBoostECL(true) was given).
func (q *QRCode) ECC() ECC { return q.ecc }

// Mask returns the mask pattern actually applied, always in [0, 7].
func (q *QRCode) Mask() Mask { return q.mask }

// String renders the symbol as a block-character grid, for quick
// inspection in tests and REPLs. It is not the module's rendering surface;
// see internal/render for that.
func (q *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QRCode{version=%d, size=%d, ecc=%s, mask=%d}\n", q.version, q.size, q.ecc, q.mask)
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if q.Module(x, y) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
