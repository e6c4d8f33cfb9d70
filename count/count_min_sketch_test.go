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

package count

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CountMinSketch(t *testing.T) {
	seed := int64(1234567)

	t.Run("CM init - throws", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[int64](5, 1, seed)
		assert.ErrorContains(t, err, "using fewer than 3 buckets incurs relative error greater than 1.0")
		assert.Nil(t, cms)

		cms, err = NewCountMinSketchWithSeed[int64](0, 5, seed)
		assert.ErrorContains(t, err, "num_hashes must be at least 1")
		assert.Nil(t, cms)

		cms, err = NewCountMinSketchWithSeed[int64](4, 268435456, seed)
		assert.ErrorContains(t, err, "these parameters generate a sketch that exceeds 2^30 elements")
		assert.Nil(t, cms)
	})

	t.Run("CM init", func(t *testing.T) {
		numHashes := int8(3)
		numBuckets := int32(5)
		cms, err := NewCountMinSketchWithSeed[int64](numHashes, numBuckets, seed)
		require.NoError(t, err)

		assert.Equal(t, numHashes, cms.GetNumHashes())
		assert.Equal(t, numBuckets, cms.GetNumBuckets())
		assert.Equal(t, seed, cms.GetSeed())
		assert.True(t, cms.IsEmpty())

		def, err := NewCountMinSketch[int64](3, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(9001), def.GetSeed())
	})

	t.Run("CM parameter suggestion", func(t *testing.T) {
		numBuckets, err := SuggestNumBuckets(-1.0)
		assert.ErrorContains(t, err, "relative error must be greater than 0.0")
		assert.Equal(t, int32(0), numBuckets)

		for _, tc := range []struct {
			relativeError float64
			want          int32
		}{
			{0.2, 14}, {0.1, 28}, {0.05, 55}, {0.01, 272},
		} {
			numBuckets, err = SuggestNumBuckets(tc.relativeError)
			require.NoError(t, err)
			assert.Equal(t, tc.want, numBuckets)

			cms, err := NewCountMinSketchWithSeed[int64](3, numBuckets, seed)
			require.NoError(t, err)
			assert.Less(t, cms.GetRelativeError(), tc.relativeError)
		}

		numHashes, err := SuggestNumHashes(10.0)
		assert.ErrorContains(t, err, "confidence must be between 0 and 1.0")
		assert.Equal(t, int8(0), numHashes)

		for _, tc := range []struct {
			confidence float64
			want       int8
		}{
			{0.682689492, 2}, {0.954499736, 4}, {0.997300204, 6},
		} {
			numHashes, err = SuggestNumHashes(tc.confidence)
			require.NoError(t, err)
			assert.Equal(t, tc.want, numHashes)
		}
	})

	t.Run("CM frequency estimates", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[int64](6, 128, seed)
		require.NoError(t, err)

		// k -> k*10 + 3 for k in 0..1000
		for k := uint64(0); k < 1000; k++ {
			cms.UpdateUint64(k, int64(k)*10+3)
		}

		margin := int64(cms.GetRelativeError() * float64(cms.GetTotalWeight()))
		for k := uint64(0); k < 1000; k++ {
			truth := int64(k)*10 + 3
			estimate := cms.GetEstimateUint64(k)
			assert.GreaterOrEqual(t, estimate, truth)
			assert.LessOrEqual(t, estimate, truth+margin)
			assert.LessOrEqual(t, cms.GetLowerBoundUint64(k), estimate)
			assert.GreaterOrEqual(t, cms.GetUpperBoundUint64(k), estimate)
		}
	})

	t.Run("CM update with weights and bounds", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[int64](3, 128, seed)
		require.NoError(t, err)

		cms.UpdateString("x", 1)
		cms.UpdateString("x", 9)
		assert.Equal(t, int64(10), cms.GetEstimateString("x"))
		assert.Equal(t, int64(10), cms.GetTotalWeight())

		lower := cms.GetLowerBound([]byte("x"))
		upper := cms.GetUpperBound([]byte("x"))
		assert.LessOrEqual(t, lower, int64(10))
		assert.GreaterOrEqual(t, upper, int64(10))
	})

	t.Run("CM negative weights", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[int64](2, 32, seed)
		require.NoError(t, err)

		cms.UpdateString("y", -1)
		assert.Equal(t, int64(1), cms.GetTotalWeight())
		assert.Equal(t, int64(-1), cms.GetEstimateString("y"))

		cms.UpdateString("x", 2)
		assert.Equal(t, int64(3), cms.GetTotalWeight())
	})

	t.Run("CM halve and decay", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[uint64](3, 128, seed)
		require.NoError(t, err)

		cms.UpdateString("x", 10)
		assert.Equal(t, uint64(10), cms.GetEstimateString("x"))

		cms.Halve()
		assert.Equal(t, uint64(5), cms.GetTotalWeight())
		assert.Equal(t, uint64(5), cms.GetEstimateString("x"))

		require.NoError(t, cms.Decay(0.5))
		assert.Equal(t, uint64(2), cms.GetTotalWeight())
		assert.Equal(t, uint64(2), cms.GetEstimateString("x"))

		assert.ErrorContains(t, cms.Decay(0.0), "decay factor must be in (0, 1]")
		assert.ErrorContains(t, cms.Decay(1.5), "decay factor must be in (0, 1]")
	})

	t.Run("CM merge", func(t *testing.T) {
		left, err := NewCountMinSketchWithSeed[int64](3, 64, seed)
		require.NoError(t, err)
		right, err := NewCountMinSketchWithSeed[int64](3, 64, seed)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			left.UpdateString("a", 1)
		}
		for i := 0; i < 4; i++ {
			right.UpdateString("a", 1)
			right.UpdateString("b", 1)
		}

		require.NoError(t, left.Merge(right))
		assert.Equal(t, int64(18), left.GetTotalWeight())
		assert.GreaterOrEqual(t, left.GetEstimateString("a"), int64(14))
		assert.GreaterOrEqual(t, left.GetEstimateString("b"), int64(4))

		assert.ErrorContains(t, left.Merge(left), "cannot merge sketch with itself")

		incompatible, err := NewCountMinSketchWithSeed[int64](2, 64, seed)
		require.NoError(t, err)
		assert.ErrorContains(t, left.Merge(incompatible), "sketches are incompatible")

		otherSeed, err := NewCountMinSketchWithSeed[int64](3, 64, seed+1)
		require.NoError(t, err)
		assert.ErrorContains(t, left.Merge(otherSeed), "sketches are incompatible")
	})

	t.Run("CM serialize empty", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[int64](2, 5, seed)
		require.NoError(t, err)

		image, err := cms.Serialize()
		require.NoError(t, err)
		assert.Equal(t, 16, len(image))

		decoded, err := DeserializeCountMinSketch[int64](image, seed)
		require.NoError(t, err)
		assert.True(t, decoded.IsEmpty())
		assert.Equal(t, int8(2), decoded.GetNumHashes())
		assert.Equal(t, int32(5), decoded.GetNumBuckets())
		assert.Equal(t, seed, decoded.GetSeed())
	})

	t.Run("CM serialize round trip", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[int64](3, 32, seed)
		require.NoError(t, err)
		for i := uint64(0); i < 100; i++ {
			cms.UpdateUint64(i, 1)
		}

		image, err := cms.Serialize()
		require.NoError(t, err)

		decoded, err := DeserializeCountMinSketch[int64](image, seed)
		require.NoError(t, err)
		assert.Equal(t, cms.GetTotalWeight(), decoded.GetTotalWeight())
		assert.Equal(t, cms.GetEstimateUint64(42), decoded.GetEstimateUint64(42))
		assert.Equal(t, cms.sketchSlice, decoded.sketchSlice)
	})

	t.Run("CM serialize round trip u64", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[uint64](3, 32, seed)
		require.NoError(t, err)
		for i := uint64(0); i < 100; i++ {
			cms.UpdateUint64(i, 1)
		}

		image, err := cms.Serialize()
		require.NoError(t, err)

		decoded, err := DeserializeCountMinSketch[uint64](image, seed)
		require.NoError(t, err)
		assert.Equal(t, cms.GetTotalWeight(), decoded.GetTotalWeight())
		assert.Equal(t, cms.GetEstimateUint64(42), decoded.GetEstimateUint64(42))
	})

	t.Run("CM deserialize validation", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[int64](3, 32, seed)
		require.NoError(t, err)
		cms.UpdateString("x", 1)

		image, err := cms.Serialize()
		require.NoError(t, err)

		// value-type tag mismatch
		_, err = DeserializeCountMinSketch[uint64](image, seed)
		assert.ErrorContains(t, err, "value type mismatch")

		// seed mismatch
		_, err = DeserializeCountMinSketch[int64](image, seed+1)
		assert.ErrorContains(t, err, "seed hash mismatch")

		// wrong family
		bad := append([]byte(nil), image...)
		bad[2] = 3
		_, err = DeserializeCountMinSketch[int64](bad, seed)
		assert.ErrorContains(t, err, "sketch family mismatch")

		// truncation
		_, err = DeserializeCountMinSketch[int64](image[:20], seed)
		assert.ErrorContains(t, err, "insufficient data")
	})

	t.Run("CM narrow counter type", func(t *testing.T) {
		cms, err := NewCountMinSketchWithSeed[uint8](3, 16, seed)
		require.NoError(t, err)
		cms.UpdateString("x", 200)
		assert.Equal(t, uint8(200), cms.GetEstimateString("x"))

		image, err := cms.Serialize()
		require.NoError(t, err)
		decoded, err := DeserializeCountMinSketch[uint8](image, seed)
		require.NoError(t, err)
		assert.Equal(t, uint8(200), decoded.GetEstimateString("x"))
	})
}
