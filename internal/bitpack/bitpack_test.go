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

package bitpack

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackerRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(37))

	for trial := 0; trial < 20; trial++ {
		numValues := 1 + rng.Intn(100)
		values := make([]uint64, numValues)
		widths := make([]uint8, numValues)
		totalBits := 0
		for i := range values {
			widths[i] = uint8(rng.Intn(65)) // 0..64
			if widths[i] > 0 && widths[i] < 64 {
				values[i] = rng.Uint64() & ((1 << widths[i]) - 1)
			} else if widths[i] == 64 {
				values[i] = rng.Uint64()
			}
			totalBits += int(widths[i])
		}

		buf := make([]byte, (totalBits+7)/8)
		packer := NewPacker(buf)
		for i := range values {
			packer.PackValue(values[i], widths[i])
		}
		assert.Equal(t, (totalBits+7)/8, packer.ByteUsed())

		unpacker := NewUnpacker(buf)
		for i := range values {
			assert.Equal(t, values[i], unpacker.UnpackValue(widths[i]))
		}
		assert.Equal(t, packer.ByteUsed(), unpacker.ByteUsed())
	}
}

func TestPackerZeroBitsNoOp(t *testing.T) {
	buf := make([]byte, 1)
	packer := NewPacker(buf)
	packer.PackValue(0xffffffffffffffff, 0)
	assert.Equal(t, 0, packer.ByteUsed())

	unpacker := NewUnpacker(buf)
	assert.Equal(t, uint64(0), unpacker.UnpackValue(0))
}

func TestBlockRoundTripAllWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(53))

	for bits := uint8(1); bits <= 63; bits++ {
		t.Run(fmt.Sprintf("width_%d", bits), func(t *testing.T) {
			mask := uint64(1)<<bits - 1
			values := make([]uint64, BlockWidth)
			for i := range values {
				values[i] = rng.Uint64() & mask
			}
			// include the extremes
			values[0] = 0
			values[BlockWidth-1] = mask

			buf := make([]byte, bits)
			require.NoError(t, PackBlock8(values, buf, bits))

			unpacked := make([]uint64, BlockWidth)
			require.NoError(t, UnpackBlock8(unpacked, buf, bits))
			assert.Equal(t, values, unpacked)
		})
	}
}

func TestBlockMatchesStatefulPacker(t *testing.T) {
	rng := rand.New(rand.NewSource(91))

	for bits := uint8(1); bits <= 63; bits++ {
		mask := uint64(1)<<bits - 1
		values := make([]uint64, BlockWidth)
		for i := range values {
			values[i] = rng.Uint64() & mask
		}

		blockBuf := make([]byte, bits)
		require.NoError(t, PackBlock8(values, blockBuf, bits))

		statefulBuf := make([]byte, bits)
		packer := NewPacker(statefulBuf)
		for _, v := range values {
			packer.PackValue(v, bits)
		}

		assert.Equal(t, statefulBuf, blockBuf, "width %d", bits)
		assert.Equal(t, int(bits), packer.ByteUsed())

		// and the codecs are interchangeable across the pairing
		unpacker := NewUnpacker(blockBuf)
		for i := range values {
			assert.Equal(t, values[i], unpacker.UnpackValue(bits), "width %d value %d", bits, i)
		}
	}
}

func TestBlockRejectsBadWidths(t *testing.T) {
	values := make([]uint64, BlockWidth)
	buf := make([]byte, 64)
	assert.ErrorIs(t, PackBlock8(values, buf, 0), ErrBlockBits)
	assert.ErrorIs(t, PackBlock8(values, buf, 64), ErrBlockBits)
	assert.ErrorIs(t, UnpackBlock8(values, buf, 0), ErrBlockBits)
	assert.ErrorIs(t, UnpackBlock8(values, buf, 64), ErrBlockBits)
}

func TestPackerPanicsPastBufferEnd(t *testing.T) {
	buf := make([]byte, 1)
	packer := NewPacker(buf)
	packer.PackValue(0xff, 8)
	assert.Panics(t, func() {
		packer.PackValue(1, 1)
	})
}
