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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArray8Sketch(t *testing.T) {
	_, err := NewArray8Sketch(3)
	assert.ErrorContains(t, err, "log K must be between 4 and 21")
	_, err = NewArray8Sketch(22)
	assert.ErrorContains(t, err, "log K must be between 4 and 21")

	s, err := NewArray8Sketch(10)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0.0, s.GetEstimate())
	assert.False(t, s.IsOutOfOrder())
}

func TestCouponLayout(t *testing.T) {
	coupon := Coupon(0x3ffffff, 0) // slot all-ones, hi == 0 -> value capped at 63
	assert.Equal(t, 0x3ffffff, CouponSlot(coupon))
	assert.Equal(t, 63, CouponValue(coupon))

	coupon = Coupon(5, 1<<63) // no leading zeros -> value 1
	assert.Equal(t, 5, CouponSlot(coupon))
	assert.Equal(t, 1, CouponValue(coupon))
}

func TestUpdateMonotonicRegisters(t *testing.T) {
	s, err := NewArray8Sketch(4)
	require.NoError(t, err)

	pack := func(slot, value int) int {
		return (value << keyBits26) | slot
	}

	s.Update(pack(0, 5))
	assert.Equal(t, byte(5), s.GetRegister(0))

	// a smaller value is ignored
	s.Update(pack(0, 3))
	assert.Equal(t, byte(5), s.GetRegister(0))

	// a larger value promotes
	s.Update(pack(0, 42))
	assert.Equal(t, byte(42), s.GetRegister(0))

	s.Update(pack(1, 63))
	assert.Equal(t, byte(63), s.GetRegister(1))
}

func TestNumZerosBookkeeping(t *testing.T) {
	s, err := NewArray8Sketch(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(16), s.numZeros)

	s.Update((1 << keyBits26) | 0)
	assert.Equal(t, uint32(15), s.numZeros)

	// promoting the same slot again leaves numZeros alone
	s.Update((2 << keyBits26) | 0)
	assert.Equal(t, uint32(15), s.numZeros)
}

func TestEstimateGrowsWithUniques(t *testing.T) {
	s, err := NewArray8Sketch(10)
	require.NoError(t, err)

	for i := uint64(0); i < 10000; i++ {
		s.UpdateUint64(i)
	}

	estimate := s.GetEstimate()
	assert.False(t, math.IsNaN(estimate))
	assert.False(t, math.IsInf(estimate, 0))
	assert.Greater(t, estimate, 1000.0)
	assert.Less(t, estimate, 100000.0)

	lb, err := s.GetLowerBound(2)
	require.NoError(t, err)
	ub, err := s.GetUpperBound(2)
	require.NoError(t, err)
	assert.LessOrEqual(t, lb, estimate)
	assert.GreaterOrEqual(t, ub, estimate)

	_, err = s.GetUpperBound(4)
	assert.ErrorContains(t, err, "numStdDevs must be 1, 2 or 3")
}

func TestHipPreservedAcrossRoundTrip(t *testing.T) {
	s, err := NewArray8Sketch(10)
	require.NoError(t, err)
	for i := uint64(0); i < 10000; i++ {
		s.UpdateUint64(i)
	}

	image := s.ToSlice()
	assert.Equal(t, hllByteArrStart+(1<<10), len(image))

	decoded, err := DeserializeArray8Sketch(image)
	require.NoError(t, err)

	// exact bit equality of the estimator state
	assert.Equal(t, s.estimator.hipAccum, decoded.estimator.hipAccum)
	assert.Equal(t, s.estimator.kxq0, decoded.estimator.kxq0)
	assert.Equal(t, s.estimator.kxq1, decoded.estimator.kxq1)
	assert.Equal(t, s.numZeros, decoded.numZeros)
	assert.Equal(t, s.regs, decoded.regs)
	assert.Equal(t, s.GetEstimate(), decoded.GetEstimate())
}

func TestEmptyCompactRoundTrip(t *testing.T) {
	s, err := NewArray8Sketch(8)
	require.NoError(t, err)

	image := s.ToSlice()
	assert.Equal(t, hllByteArrStart, len(image)) // register tail omitted

	decoded, err := DeserializeArray8Sketch(image)
	require.NoError(t, err)
	assert.True(t, decoded.IsEmpty())
	assert.Equal(t, 0.0, decoded.GetEstimate())
}

func TestOutOfOrderFlagSurvivesRoundTrip(t *testing.T) {
	s, err := NewArray8Sketch(8)
	require.NoError(t, err)
	for i := uint64(0); i < 1000; i++ {
		s.UpdateUint64(i)
	}
	s.estimator.outOfOrder = true

	decoded, err := DeserializeArray8Sketch(s.ToSlice())
	require.NoError(t, err)
	assert.True(t, decoded.IsOutOfOrder())

	// composite estimate still lands in a sane range
	estimate := decoded.GetEstimate()
	assert.Greater(t, estimate, 100.0)
	assert.Less(t, estimate, 10000.0)
}

func TestDeserializeValidation(t *testing.T) {
	s, err := NewArray8Sketch(8)
	require.NoError(t, err)
	s.UpdateUint64(1)
	image := s.ToSlice()

	_, err = DeserializeArray8Sketch(image[:10])
	assert.ErrorContains(t, err, "insufficient data (preamble)")

	_, err = DeserializeArray8Sketch(image[:hllByteArrStart+5])
	assert.ErrorContains(t, err, "insufficient data (registers)")

	bad := append([]byte(nil), image...)
	bad[serVerByte] = 9
	_, err = DeserializeArray8Sketch(bad)
	assert.ErrorContains(t, err, "unsupported serial version")

	bad = append([]byte(nil), image...)
	bad[familyByte] = 3
	_, err = DeserializeArray8Sketch(bad)
	assert.ErrorContains(t, err, "sketch family mismatch")

	bad = append([]byte(nil), image...)
	bad[modeByte] = 0
	_, err = DeserializeArray8Sketch(bad)
	assert.ErrorContains(t, err, "unsupported mode byte")

	bad = append([]byte(nil), image...)
	bad[lgKByte] = 30
	_, err = DeserializeArray8Sketch(bad)
	assert.ErrorContains(t, err, "log K must be between")
}

func TestEstimateAccuracy(t *testing.T) {
	s, err := NewArray8Sketch(12)
	require.NoError(t, err)

	const n = 50000
	for i := uint64(0); i < n; i++ {
		s.UpdateUint64(i)
	}

	// HIP RSE at lg_k=12 is about 1.3%; allow 5 sigma
	assert.InDelta(t, float64(n), s.GetEstimate(), float64(n)*0.065)
}
