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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelfCheck(t *testing.T) {
	assert.NoError(t, SelfCheck())
}

func TestNumDataCodewords(t *testing.T) {
	cases := [][3]int{
		{3, int(Medium), 44}, {3, int(Quartile), 34}, {3, int(High), 26},
		{6, int(Low), 136},
		{7, int(Low), 156},
		{9, int(Low), 232}, {9, int(Medium), 182},
		{12, int(High), 158},
		{15, int(Low), 523},
		{16, int(Quartile), 325},
		{19, int(High), 341},
		{21, int(Low), 932},
		{22, int(Low), 1006}, {22, int(Medium), 782}, {22, int(High), 442},
		{24, int(Low), 1174}, {24, int(High), 514},
		{28, int(Low), 1531},
		{30, int(High), 745},
		{32, int(High), 845},
		{33, int(Low), 2071}, {33, int(High), 901},
		{35, int(Low), 2306}, {35, int(Medium), 1812}, {35, int(Quartile), 1286},
		{36, int(High), 1054},
		{37, int(High), 1096},
		{39, int(Medium), 2216},
		{40, int(Medium), 2334},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc[2], numDataCodewords[ECC(tc[1])][tc[0]])
		})
	}
}

func TestNumRawDataModules(t *testing.T) {
	cases := [][2]int{
		{1, 208}, {2, 359}, {3, 567}, {6, 1383}, {7, 1568},
		{12, 3728}, {15, 5243}, {18, 7211}, {22, 10068},
		{26, 13652}, {32, 19723}, {37, 25568}, {40, 29648},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc[1], numRawDataModules[tc[0]])
		})
	}
}

func TestGetAlignmentPatternPositions(t *testing.T) {
	cases := []struct {
		version  int
		expected []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{3, []int{6, 22}},
		{6, []int{6, 34}},
		{7, []int{6, 22, 38}},
		{8, []int{6, 24, 42}},
		{16, []int{6, 26, 50, 74}},
		{25, []int{6, 32, 58, 84, 110}},
		{32, []int{6, 34, 60, 86, 112, 138}},
		{33, []int{6, 30, 58, 86, 114, 142}},
		{39, []int{6, 26, 54, 82, 110, 138, 166}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("version=%d", tc.version), func(t *testing.T) {
			pos := alignmentPatternPositions[tc.version]
			assert.Len(t, pos, len(tc.expected))
			for i, want := range tc.expected {
				assert.Equal(t, want, int(pos[i]))
			}
		})
	}
}
