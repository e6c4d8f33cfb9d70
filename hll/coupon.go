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
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/streamhaus/sketches-go/internal"
	"github.com/twmb/murmur3"
)

// A coupon is the HLL update primitive: a 32-bit value carrying a register
// slot address in the low 26 bits and a 6-bit register value above it.

// Coupon builds a coupon from the two halves of a 128-bit item hash. The
// register value is the number of leading zeros of the high half plus one,
// capped to fit 6 bits.
func Coupon(hashLo, hashHi uint64) int {
	addr26 := hashLo & keyMask26
	lz := uint64(bits.LeadingZeros64(hashHi))
	value := min(lz, 62) + 1
	return int((value << keyBits26) | addr26)
}

// CouponSlot extracts the register slot address of a coupon.
func CouponSlot(coupon int) int {
	return coupon & keyMask26
}

// CouponValue extracts the 6-bit register value of a coupon.
func CouponValue(coupon int) int {
	return (coupon >> keyBits26) & valMask6
}

// CouponForBytes hashes arbitrary bytes into a coupon using the default
// update seed.
func CouponForBytes(data []byte) int {
	h1, h2 := murmur3.SeedSum128(internal.DEFAULT_UPDATE_SEED, internal.DEFAULT_UPDATE_SEED, data)
	return Coupon(h1, h2)
}

// CouponForUint64 hashes an unsigned 64-bit value into a coupon.
func CouponForUint64(datum uint64) int {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], datum)
	return CouponForBytes(scratch[:])
}

// CouponForString hashes a string into a coupon.
func CouponForString(datum string) int {
	return CouponForBytes([]byte(datum))
}

func checkLgK(lgK int) (int, error) {
	if lgK >= MinLgK && lgK <= MaxLgK {
		return lgK, nil
	}
	return 0, fmt.Errorf("log K must be between %d and %d, inclusive: %d", MinLgK, MaxLgK, lgK)
}

func checkNumStdDevs(numStdDevs int) error {
	if numStdDevs < 1 || numStdDevs > 3 {
		return fmt.Errorf("numStdDevs must be 1, 2 or 3: %d", numStdDevs)
	}
	return nil
}
