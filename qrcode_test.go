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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawFunctionPatternsCoversEveryVersion(t *testing.T) {
	for version := Version(1); version <= 40; version++ {
		size := version.Size()
		qr := &QRCode{
			version:    version,
			size:       size,
			modules:    make([][]module, size),
			isFunction: make([][]bool, size),
		}
		for i := 0; i < size; i++ {
			qr.modules[i] = make([]module, size)
			qr.isFunction[i] = make([]bool, size)
		}

		qr.drawFunctionPatterns()

		var hasDark, hasLight bool
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if qr.modules[y][x] == 1 {
					hasDark = true
				} else {
					hasLight = true
				}
			}
		}
		assert.True(t, hasDark, "version %d", version)
		assert.True(t, hasLight, "version %d", version)
	}
}

// TestHelloWorldQuartile is spec.md §8 reference scenario 1.
func TestHelloWorldQuartile(t *testing.T) {
	qr, err := EncodeText("HELLO WORLD", Quartile, WithMinVersion(1), WithMaxVersion(1))
	require.NoError(t, err)
	assert.Equal(t, Version(1), qr.Version())
	assert.Equal(t, 21, qr.Size())
	assert.Equal(t, Quartile, qr.ECC())
	assert.Equal(t, Mask(4), qr.Mask())
}

// TestDigitsMediumForcedMask is spec.md §8 reference scenario 2 (ISO/IEC
// 18004 Annex I worked example).
func TestDigitsMediumForcedMask(t *testing.T) {
	qr, err := EncodeText("01234567", Medium, WithMinVersion(1), WithMaxVersion(1), WithMask(2))
	require.NoError(t, err)
	assert.Equal(t, Version(1), qr.Version())
	assert.Equal(t, Mask(2), qr.Mask())
}

// TestBoostEclUpgradesToHigh is spec.md §8 reference scenario 3.
func TestBoostEclUpgradesToHigh(t *testing.T) {
	qr, err := EncodeBinary([]byte{0x00}, Low, WithBoostECL(true))
	require.NoError(t, err)
	assert.Equal(t, Version(1), qr.Version())
	assert.Equal(t, High, qr.ECC())
}

// TestLongTextFitsUnderVersion40 is spec.md §8 reference scenario 4.
func TestLongTextFitsUnderVersion40(t *testing.T) {
	qr, err := EncodeText(strings.Repeat("A", 500), Low)
	require.NoError(t, err)
	assert.LessOrEqual(t, int(qr.Version()), 40)
}

// TestOverCapacityFails is spec.md §8 reference scenario 5.
func TestOverCapacityFails(t *testing.T) {
	_, err := EncodeText(strings.Repeat("A", 5000), Low)
	require.Error(t, err)
	var capErr *DataOverCapacityError
	assert.ErrorAs(t, err, &capErr)
}

// TestDeterministicEncoding is spec.md §8 reference scenario 6.
func TestDeterministicEncoding(t *testing.T) {
	text := "HTTPS://EXAMPLE.COM/Q"
	qr1, err := EncodeText(text, High)
	require.NoError(t, err)
	qr2, err := EncodeText(text, High)
	require.NoError(t, err)

	assert.Equal(t, qr1.Version(), qr2.Version())
	assert.Equal(t, qr1.Mask(), qr2.Mask())
	for y := 0; y < qr1.Size(); y++ {
		for x := 0; x < qr1.Size(); x++ {
			assert.Equal(t, qr1.Module(x, y), qr2.Module(x, y), "(%d,%d)", x, y)
		}
	}
}

// TestMonotoneCapacity is spec.md §8 universal invariant 5: if encoding
// succeeds at version v, it must also succeed for every version in
// [v, maxVersion].
func TestMonotoneCapacity(t *testing.T) {
	text := strings.Repeat("HELLO ", 40)
	qr, err := EncodeText(text, Medium, WithMinVersion(1), WithMaxVersion(10))
	require.NoError(t, err)

	for v := int(qr.Version()); v <= 40; v++ {
		_, err := EncodeText(text, Medium, WithMinVersion(Version(v)), WithMaxVersion(40))
		assert.NoError(t, err, "version %d", v)
	}
}

// TestSizeMatchesVersionFormula is spec.md §8 universal invariant 1.
func TestSizeMatchesVersionFormula(t *testing.T) {
	for v := 1; v <= 40; v += 3 {
		qr, err := EncodeBinary(make([]byte, 1), Low, WithMinVersion(Version(v)), WithMaxVersion(Version(v)))
		require.NoError(t, err)
		assert.Equal(t, 17+4*v, qr.Size())
	}
}

// TestMaskAlwaysInRange is spec.md §8 universal invariant 2.
func TestMaskAlwaysInRange(t *testing.T) {
	qr, err := EncodeText("some arbitrary payload", Medium)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int(qr.Mask()), 0)
	assert.LessOrEqual(t, int(qr.Mask()), 7)
}

// TestQuietZoneOutOfRange is part of spec.md §6's Module contract.
func TestQuietZoneOutOfRange(t *testing.T) {
	qr, err := EncodeText("x", Low)
	require.NoError(t, err)
	assert.False(t, qr.Module(-1, 0))
	assert.False(t, qr.Module(0, -1))
	assert.False(t, qr.Module(qr.Size(), 0))
	assert.False(t, qr.Module(0, qr.Size()))
}

func TestInvalidVersionRangeRejected(t *testing.T) {
	_, err := EncodeText("x", Low, WithMinVersion(10), WithMaxVersion(5))
	assert.Error(t, err)
}

func TestForcedMaskOutOfRangeRejected(t *testing.T) {
	_, err := EncodeText("x", Low, WithMask(8))
	assert.Error(t, err)
}

func TestByteModeMatchesForcedByteSegment(t *testing.T) {
	// spec.md §8 universal invariant 6: forcing byte-mode segments for
	// numeric/alphanumeric input at equal version, no boosting, reproduces
	// EncodeBinary's matrix.
	text := "01234567"
	binary, err := EncodeBinary([]byte(text), Medium, WithMinVersion(1), WithMaxVersion(1), WithMask(0))
	require.NoError(t, err)

	seg := MakeBytes([]byte(text))
	forced, err := EncodeSegments([]*Segment{seg}, Medium, WithMinVersion(1), WithMaxVersion(1), WithMask(0))
	require.NoError(t, err)

	assert.Equal(t, binary.Version(), forced.Version())
	for y := 0; y < binary.Size(); y++ {
		for x := 0; x < binary.Size(); x++ {
			assert.Equal(t, binary.Module(x, y), forced.Module(x, y))
		}
	}
}

func TestEncodeSegmentsConcatenatesModes(t *testing.T) {
	segs := []*Segment{MakeNumeric("12345"), MakeAlphanumeric("ABC")}
	qr, err := EncodeSegments(segs, Medium)
	require.NoError(t, err)
	assert.NotNil(t, qr)
}

func TestFunctionModulesSurviveMasking(t *testing.T) {
	// spec.md §8 universal invariant 4: function modules are never XORed,
	// so the finder pattern's center 3x3 reads dark under each of the 8
	// forced masks.
	for m := Mask(0); m < 8; m++ {
		qr, err := EncodeText("THE QUICK BROWN FOX", Quartile, WithMask(m))
		require.NoError(t, err)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				assert.True(t, qr.Module(3+dx, 3+dy), "mask %d (%d,%d)", m, dx, dy)
			}
		}
	}
}
