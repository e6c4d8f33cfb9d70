/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package hll

import (
	"fmt"

	"github.com/streamhaus/sketches-go/internal"
)

// Array8Sketch is the simplest HLL register backend: one byte per register,
// giving the full value range with no bit packing. A HIP estimator tracks
// the cardinality estimate incrementally as registers are promoted.
type Array8Sketch struct {
	lgConfigK int
	regs      []byte
	numZeros  uint32
	estimator *hipEstimator
}

// NewArray8Sketch creates a sketch with 2^lgConfigK one-byte registers.
func NewArray8Sketch(lgConfigK int) (*Array8Sketch, error) {
	if _, err := checkLgK(lgConfigK); err != nil {
		return nil, err
	}
	k := 1 << lgConfigK
	return &Array8Sketch{
		lgConfigK: lgConfigK,
		regs:      make([]byte, k),
		numZeros:  uint32(k),
		estimator: newHipEstimator(lgConfigK),
	}, nil
}

// LgConfigK returns the configured log2 of the register count.
func (h *Array8Sketch) LgConfigK() int {
	return h.lgConfigK
}

// IsEmpty returns true if no register has been touched.
func (h *Array8Sketch) IsEmpty() bool {
	return h.numZeros == uint32(1)<<h.lgConfigK
}

// IsOutOfOrder returns true once out-of-order history has invalidated the
// HIP accumulator.
func (h *Array8Sketch) IsOutOfOrder() bool {
	return h.estimator.outOfOrder
}

// GetRegister returns the value of the given register slot.
func (h *Array8Sketch) GetRegister(slot int) byte {
	return h.regs[slot]
}

// Update applies a coupon: if its value exceeds the addressed register, the
// register is promoted and the HIP state advances atomically with the
// write.
func (h *Array8Sketch) Update(coupon int) {
	slot := CouponSlot(coupon) & ((1 << h.lgConfigK) - 1)
	newValue := CouponValue(coupon)

	oldValue := int(h.regs[slot])
	if newValue > oldValue {
		h.estimator.update(h.lgConfigK, oldValue, newValue)
		h.regs[slot] = byte(newValue)
		if oldValue == 0 {
			h.numZeros--
		}
	}
}

// UpdateUint64 hashes an unsigned 64-bit value and applies its coupon.
func (h *Array8Sketch) UpdateUint64(datum uint64) {
	h.Update(CouponForUint64(datum))
}

// UpdateInt64 hashes a signed 64-bit value and applies its coupon.
func (h *Array8Sketch) UpdateInt64(datum int64) {
	h.Update(CouponForUint64(uint64(datum)))
}

// UpdateString hashes a string and applies its coupon.
func (h *Array8Sketch) UpdateString(datum string) {
	h.Update(CouponForString(datum))
}

// UpdateSlice hashes a byte slice and applies its coupon.
func (h *Array8Sketch) UpdateSlice(datum []byte) {
	h.Update(CouponForBytes(datum))
}

// GetEstimate returns the cardinality estimate.
func (h *Array8Sketch) GetEstimate() float64 {
	return h.estimator.estimate(h.lgConfigK, 0, int(h.numZeros))
}

// GetUpperBound returns the approximate upper error bound for the given
// number of standard deviations (1, 2 or 3).
func (h *Array8Sketch) GetUpperBound(numStdDevs int) (float64, error) {
	return h.estimator.upperBound(h.lgConfigK, 0, int(h.numZeros), numStdDevs)
}

// GetLowerBound returns the approximate lower error bound for the given
// number of standard deviations (1, 2 or 3).
func (h *Array8Sketch) GetLowerBound(numStdDevs int) (float64, error) {
	return h.estimator.lowerBound(h.lgConfigK, 0, int(h.numZeros), numStdDevs)
}

// ToSlice serializes the sketch: the 40-byte HLL preamble followed by the
// register array. An empty sketch produces the compact form without the
// register tail.
func (h *Array8Sketch) ToSlice() []byte {
	empty := h.IsEmpty()
	size := hllByteArrStart
	if !empty {
		size += len(h.regs)
	}
	out := make([]byte, size)

	out[preambleIntsByte] = hllPreInts
	out[serVerByte] = serVer
	out[familyByte] = byte(internal.FamilyEnum.HLL.Id)
	out[lgKByte] = byte(h.lgConfigK)
	out[lgArrByte] = 0 // not used in HLL mode

	var flags byte
	if empty {
		flags |= emptyFlagMask | compactFlagMask
	}
	if h.estimator.outOfOrder {
		flags |= outOfOrderFlagMask
	}
	out[flagsByte] = flags

	out[curMinByte] = 0 // always 0 for an 8-bit array
	out[modeByte] = (tgtHll8 << 2) | curModeHll

	putF64LE(out, hipAccumDouble, h.estimator.hipAccum)
	putF64LE(out, kxq0Double, h.estimator.kxq0)
	putF64LE(out, kxq1Double, h.estimator.kxq1)
	putU32LE(out, curMinCountInt, h.numZeros)
	putU32LE(out, auxCountInt, 0) // no exception array for 8-bit registers

	if !empty {
		copy(out[hllByteArrStart:], h.regs)
	}
	return out
}

// DeserializeArray8Sketch reconstructs a sketch from bytes, validating the
// preamble. The compact empty form (preamble only) is accepted.
func DeserializeArray8Sketch(bytes []byte) (*Array8Sketch, error) {
	if len(bytes) < hllByteArrStart {
		return nil, fmt.Errorf("insufficient data (preamble)")
	}

	if got := int(bytes[preambleIntsByte] & 0x3F); got != hllPreInts {
		return nil, fmt.Errorf("invalid preamble ints: expected %d, got %d", hllPreInts, got)
	}
	if got := bytes[serVerByte]; got != serVer {
		return nil, fmt.Errorf("unsupported serial version: expected %d, got %d", serVer, got)
	}
	if err := internal.FamilyEnum.HLL.ValidateId(int(bytes[familyByte])); err != nil {
		return nil, err
	}
	if got := bytes[modeByte]; got != (tgtHll8<<2)|curModeHll {
		return nil, fmt.Errorf("unsupported mode byte: expected HLL_8/HLL, got %d", got)
	}

	lgConfigK := int(bytes[lgKByte])
	sketch, err := NewArray8Sketch(lgConfigK)
	if err != nil {
		return nil, err
	}
	k := 1 << lgConfigK

	flags := bytes[flagsByte]
	empty := flags&emptyFlagMask != 0
	compact := flags&compactFlagMask != 0

	sketch.estimator.hipAccum = getF64LE(bytes, hipAccumDouble)
	sketch.estimator.kxq0 = getF64LE(bytes, kxq0Double)
	sketch.estimator.kxq1 = getF64LE(bytes, kxq1Double)
	sketch.estimator.outOfOrder = flags&outOfOrderFlagMask != 0
	sketch.numZeros = getU32LE(bytes, curMinCountInt)

	if empty && compact {
		return sketch, nil
	}

	if len(bytes) < hllByteArrStart+k {
		return nil, fmt.Errorf("insufficient data (registers)")
	}
	copy(sketch.regs, bytes[hllByteArrStart:hllByteArrStart+k])

	return sketch, nil
}

func (h *Array8Sketch) String() string {
	return fmt.Sprintf("### HLL Array8 sketch: lgK=%d estimate=%f zeros=%d outOfOrder=%t",
		h.lgConfigK, h.GetEstimate(), h.numZeros, h.IsOutOfOrder())
}
