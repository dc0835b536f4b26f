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

// Reed-Solomon error correction over GF(2^8), reduction polynomial 0x11D
// (x^8 + x^4 + x^3 + x^2 + 1), generator element 2.

// reedSolomonComputeDivisor builds the generator polynomial g(x) of the
// given degree k = ∏_{i=0..k-1} (x - 2^i). Coefficients are stored
// highest-to-lowest power, excluding the always-1 leading term: the
// polynomial x^3 + 255x^2 + 8x + 93 is stored as []byte{255, 8, 93}.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("qrcodegen: degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the running product by (x - root).
		for j := 0; j < len(result); j++ {
			result[j] = reedSolomonMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = reedSolomonMultiply(root, 0x02)
	}

	return result
}

// reedSolomonMultiply multiplies two field elements modulo GF(2^8/0x11D)
// using Russian peasant multiplication.
func reedSolomonMultiply(x, y byte) byte {
	z := 0
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ z>>7*0x11D
		z ^= int(y>>i&1) * int(x)
	}
	return byte(z)
}

// reedSolomonComputeRemainder returns the len(divisor) coefficients of the
// remainder of data(x)·x^deg(divisor) divided by divisor(x), i.e. the EC
// codewords for one block of data.
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= reedSolomonMultiply(divisor[i], factor)
		}
	}
	return result
}
