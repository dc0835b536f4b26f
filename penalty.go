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

import "math"

// chooseMask applies and writes format info for the given mask, or — if
// mask is autoMask — tries all 8 masks, scores each with getPenaltyScore,
// and keeps the one with the lowest penalty (ties favor the lowest mask
// number). Either way the winning mask is left applied with its format
// bits written.
func (q *QRCode) chooseMask(mask Mask) Mask {
	if mask == autoMask {
		minPenalty := math.MaxInt32
		for i := Mask(0); i < 8; i++ {
			q.applyMask(i)
			q.drawFormatBits(i)
			penalty := q.getPenaltyScore()
			if penalty < minPenalty {
				mask = i
				minPenalty = penalty
			}
			q.applyMask(i) // XOR again to undo the trial mask.
		}
	}

	if mask < 0 || mask > 7 {
		panic("qrcodegen: illegal mask value")
	}

	q.applyMask(mask)
	q.drawFormatBits(mask)
	return mask
}

// getPenaltyScore computes the four standard penalty components (N1-N4)
// against the symbol's current module state.
func (q *QRCode) getPenaltyScore() int {
	result := 0

	// N1 + finder-like patterns, scanning rows.
	for y := 0; y < q.size; y++ {
		runColor := module(0)
		runX := 0
		var runHistory [7]int
		for x := 0; x < q.size; x++ {
			if q.modules[y][x] == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runX, &runHistory)
				if runColor == 0 {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.modules[y][x]
				runX = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runX, &runHistory) * penaltyN3
	}

	// N1 + finder-like patterns, scanning columns.
	for x := 0; x < q.size; x++ {
		runColor := module(0)
		runY := 0
		var runHistory [7]int
		for y := 0; y < q.size; y++ {
			if q.modules[y][x] == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				q.finderPenaltyAddHistory(runY, &runHistory)
				if runColor == 0 {
					result += q.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = q.modules[y][x]
				runY = 1
			}
		}
		result += q.finderPenaltyTerminateAndCount(runColor, runY, &runHistory) * penaltyN3
	}

	// N2: 2x2 blocks of a single color.
	for y := 0; y < q.size-1; y++ {
		for x := 0; x < q.size-1; x++ {
			color := q.modules[y][x]
			if color == q.modules[y][x+1] && color == q.modules[y+1][x] && color == q.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	// N4: balance of dark and light modules.
	dark := 0
	for _, row := range q.modules {
		for _, color := range row {
			if color == 1 {
				dark++
			}
		}
	}
	total := q.size * q.size
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// finderPenaltyAddHistory pushes a run length onto the front of the
// 7-entry sliding window used to detect finder-like patterns, dropping the
// oldest entry.
func (q *QRCode) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += q.size // First run borders the (virtual) light quiet zone.
	}
	copy(runHistory[1:], runHistory[:6])
	runHistory[0] = currentRunLength
}

// finderPenaltyCountPatterns reports how many of the two finder-like
// patterns (dark:light:dark:dark:dark:light:dark with a 4n light margin on
// one side or the other) the current history window matches.
func (q *QRCode) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	if n > q.size*3 {
		panic("qrcodegen: bad run history")
	}
	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n
	return bToI(core && runHistory[0] >= n*4 && runHistory[6] >= n) +
		bToI(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

// finderPenaltyTerminateAndCount flushes the final run of a row or column
// (padding it with the virtual light border) and returns the resulting
// finder-like pattern count.
func (q *QRCode) finderPenaltyTerminateAndCount(runColor module, runLength int, runHistory *[7]int) int {
	if runColor == 1 {
		q.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += q.size
	q.finderPenaltyAddHistory(runLength, runHistory)
	return q.finderPenaltyCountPatterns(runHistory)
}
