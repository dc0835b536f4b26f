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

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Segment is a single mode-tagged fragment of a QR Code's data stream. A
// symbol may carry more than one segment (e.g. a numeric run followed by a
// byte run); EncodeSegments concatenates them in order.
//
// Segment constructors own their own validation: MakeNumeric and
// MakeAlphanumeric panic on characters outside their charset, matching the
// rest of this package's treatment of programmer errors (spec §7 — these
// are not recoverable conditions the main encode path propagates).
type Segment struct {
	Mode
	NumChars int // Count of the original, unencoded characters (0 for ECI).
	Data     bitBuffer
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// getTotalBits returns the total number of bits segs would occupy once
// assembled for the given version (mode indicator + char count + payload,
// summed over all segments), or -1 if a segment's character count doesn't
// fit its field width, or if the sum overflows an int32.
func getTotalBits(segs []*Segment, version Version) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.numCharCountBits(version)
		if seg.NumChars >= 1<<ccBits {
			return -1
		}

		result += int64(4 + int(ccBits) + seg.Data.len())
		if result > math.MaxInt32 {
			return -1
		}
	}

	return int(result)
}

// MakeAlphanumeric creates an alphanumeric segment from text, which must
// contain only digits, uppercase letters, and the symbols in the 45-entry
// alphanumeric charset (space $ % * + - . / :). Pairs of characters are
// packed into 11 bits as 45*a+b; a lone trailing character uses 6 bits.
func MakeAlphanumeric(text string) *Segment {
	if !alphanumericRegexp.MatchString(text) {
		panic("qrcodegen: string contains non-alphanumeric characters")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 {
		temp := strings.IndexByte(alphanumericCharset, text[i]) * 45
		temp += strings.IndexByte(alphanumericCharset, text[i+1])
		bb.appendBits(temp, 11)
	}
	if i < len(text) {
		bb.appendBits(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}

	return &Segment{Mode: Alphanumeric, NumChars: len(text), Data: bb}
}

// MakeBytes encodes data as a Byte-mode segment, 8 bits per octet. No
// charset validation is performed; the caller is responsible for the
// contents, which are passed through verbatim.
func MakeBytes(data []byte) *Segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}

	return &Segment{Mode: Byte, NumChars: len(data), Data: bb}
}

// MakeNumeric creates a numeric segment from a string of decimal digits.
// Digits are packed in groups of 3, 2, or 1 into 10, 7, or 4 bits.
func MakeNumeric(digits string) *Segment {
	if !numericRegexp.MatchString(digits) {
		panic("qrcodegen: string contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, err := strconv.Atoi(digits[i : i+n])
		if err != nil {
			// Unreachable: numericRegexp already guarantees digits-only input.
			panic(err)
		}
		bb.appendBits(d, int8(n*3+1))
		i += n
	}

	return &Segment{Mode: Numeric, NumChars: len(digits), Data: bb}
}

// MakeECI creates a segment carrying an Extended Channel Interpretation
// designator. assignValue must be in [0, 999999]; it is packed as 1, 2, or
// 3 bytes per ISO/IEC 18004 Table 4.
func MakeECI(assignValue int) (*Segment, error) {
	if assignValue < 0 {
		return nil, fmt.Errorf("qrcodegen: ECI assignment value %d is negative", assignValue)
	}

	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 1<<7:
		bb.appendBits(assignValue, 8)
	case assignValue < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	default:
		return nil, fmt.Errorf("qrcodegen: ECI assignment value %d out of range", assignValue)
	}

	return &Segment{Mode: ECI, NumChars: 0, Data: bb}, nil
}

// MakeSegments encodes text as a single segment, choosing the densest
// applicable mode: numeric if every character is a digit, else
// alphanumeric if every character is in the 45-character set, else byte.
// This is not optimal multi-segment splitting (ISO/IEC 18004 Annex J) — it
// is sufficient because correctness only requires the resulting segments
// to encode the original character sequence (spec §4.2).
func MakeSegments(text string) []*Segment {
	if len(text) == 0 {
		return []*Segment{}
	}

	if numericRegexp.MatchString(text) {
		return []*Segment{MakeNumeric(text)}
	}
	if alphanumericRegexp.MatchString(text) {
		return []*Segment{MakeAlphanumeric(text)}
	}
	return []*Segment{MakeBytes([]byte(text))}
}
