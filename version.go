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

// Version is a QR Code version number in the range [1, 40]. The module side
// length of a symbol of this version is 17 + 4*version.
type Version int8

// MinVersion and MaxVersion bound the legal Version range.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// Size returns the module side length for this version.
func (v Version) Size() int {
	return int(v)*4 + 17
}

// BufferLen returns the number of bytes needed to hold a bit-packed
// size*size module grid (or is-function mask) for this version, rounded up
// to a whole byte. Callers that want a single scratch allocation sized for
// the largest version they might encode can use MaxVersion.BufferLen().
func (v Version) BufferLen() int {
	size := v.Size()
	return (size*size + 7) / 8
}
