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

import "fmt"

// SegmentTooLongError reports that a single segment's encoded bit length
// would overflow the 32-bit counter used to track it. Practically
// unreachable for sane inputs.
type SegmentTooLongError struct {
	BitLength int
}

func (e *SegmentTooLongError) Error() string {
	return fmt.Sprintf("qrcodegen: segment bit length %d exceeds the 32-bit counter", e.BitLength)
}

// DataOverCapacityError reports that no version in the caller's requested
// [minVersion, maxVersion] range has enough capacity for the data at the
// requested ECC level.
type DataOverCapacityError struct {
	DataBits         int
	BestCapacityBits int
}

func (e *DataOverCapacityError) Error() string {
	return fmt.Sprintf("qrcodegen: data length = %d bits, max capacity = %d bits", e.DataBits, e.BestCapacityBits)
}
