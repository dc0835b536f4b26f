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

// segmentEncoder holds the options for EncodeSegments, EncodeText, and
// EncodeBinary.
type segmentEncoder struct {
	boostECL   bool
	mask       Mask
	minVersion Version
	maxVersion Version
}

func defaultSegmentEncoder() segmentEncoder {
	return segmentEncoder{
		boostECL:   false,
		mask:       autoMask,
		minVersion: MinVersion,
		maxVersion: MaxVersion,
	}
}

// Option configures an encode call. See WithMask, WithBoostECL,
// WithMinVersion, and WithMaxVersion.
type Option func(*segmentEncoder)

// WithMask forces the given mask instead of selecting one by penalty score.
func WithMask(mask Mask) Option {
	return func(s *segmentEncoder) {
		s.mask = mask
	}
}

// WithAutoMask requests penalty-based mask selection (the default).
func WithAutoMask() Option {
	return func(s *segmentEncoder) {
		s.mask = autoMask
	}
}

// WithBoostECL causes the encoder to upgrade the requested ECC level to the
// highest one that still fits the chosen version's capacity.
func WithBoostECL(boost bool) Option {
	return func(s *segmentEncoder) {
		s.boostECL = boost
	}
}

// WithMinVersion sets the minimum version the encoder may select.
func WithMinVersion(version Version) Option {
	return func(s *segmentEncoder) {
		s.minVersion = version
	}
}

// WithMaxVersion sets the maximum version the encoder may select.
func WithMaxVersion(version Version) Option {
	return func(s *segmentEncoder) {
		s.maxVersion = version
	}
}
