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

// ECC is the error correction level of a QR Code symbol.
type ECC int8

// ECC levels, in increasing order of redundancy.
const (
	Low      ECC = iota // Recovers about 7% of codewords.
	Medium              // Recovers about 15% of codewords.
	Quartile            // Recovers about 25% of codewords.
	High                // Recovers about 30% of codewords.
)

// formatBits returns the 2-bit ordinal this level contributes to the
// 15-bit format-info string. Per ISO/IEC 18004 Table 25 the bit pattern is
// not the same as iota order: L=1, M=0, Q=3, H=2.
func (e ECC) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown ECC level")
	}
}

func (e ECC) String() string {
	switch e {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case Quartile:
		return "Quartile"
	case High:
		return "High"
	default:
		return "invalid"
	}
}
