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

package theta

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateSketchValidation(t *testing.T) {
	_, err := NewUpdateSketch(WithUpdateSketchLgK(4))
	assert.ErrorContains(t, err, "lg_k must not be less than 5")

	_, err = NewUpdateSketch(WithUpdateSketchLgK(27))
	assert.ErrorContains(t, err, "lg_k must not be greater than 26")

	_, err = NewUpdateSketch(WithUpdateSketchP(0))
	assert.ErrorContains(t, err, "sampling probability")

	_, err = NewUpdateSketch(WithUpdateSketchP(1.5))
	assert.ErrorContains(t, err, "sampling probability")
}

func TestEmptySketch(t *testing.T) {
	s, err := NewUpdateSketch()
	require.NoError(t, err)

	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsEstimationMode())
	assert.Equal(t, uint32(0), s.NumRetained())
	assert.Equal(t, 0.0, s.Estimate())
	assert.Equal(t, MaxTheta, s.Theta64())
}

func TestEmptySketchWithPResetsTheta(t *testing.T) {
	s, err := NewUpdateSketch(WithUpdateSketchP(0.5))
	require.NoError(t, err)

	// never successfully updated: compact form must report theta = max
	compact := s.Compact(true)
	assert.True(t, compact.IsEmpty())
	assert.Equal(t, MaxTheta, compact.Theta64())
	assert.Equal(t, 0.0, compact.Estimate())
}

func TestExactMode(t *testing.T) {
	s, err := NewUpdateSketch(WithUpdateSketchLgK(12))
	require.NoError(t, err)

	for i := int64(0); i < 2000; i++ {
		require.NoError(t, s.UpdateInt64(i))
	}

	assert.False(t, s.IsEmpty())
	assert.False(t, s.IsEstimationMode())
	assert.Equal(t, uint32(2000), s.NumRetained())
	assert.Equal(t, 2000.0, s.Estimate())

	lb, err := s.LowerBound(2)
	require.NoError(t, err)
	ub, err := s.UpperBound(2)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, lb)
	assert.Equal(t, 2000.0, ub)
}

func TestDuplicatesAreNotCounted(t *testing.T) {
	s, err := NewUpdateSketch(WithUpdateSketchLgK(12))
	require.NoError(t, err)

	require.NoError(t, s.UpdateInt64(42))
	assert.ErrorIs(t, s.UpdateInt64(42), ErrDuplicateKey)
	assert.Equal(t, uint32(1), s.NumRetained())
}

func TestEstimationMode(t *testing.T) {
	s, err := NewUpdateSketch(WithUpdateSketchLgK(5))
	require.NoError(t, err)

	const n = 5000
	for i := int64(0); i < n; i++ {
		err := s.UpdateInt64(i)
		if err != nil {
			// above theta after the sketch entered estimation mode
			assert.ErrorIs(t, err, ErrHashExceedsTheta)
		}
	}

	assert.True(t, s.IsEstimationMode())
	// bounded by the rebuild threshold of the full-size table
	assert.LessOrEqual(t, s.NumRetained(), uint32(60))

	estimate := s.Estimate()
	lb, err := s.LowerBound(2)
	require.NoError(t, err)
	ub, err := s.UpperBound(2)
	require.NoError(t, err)

	assert.LessOrEqual(t, lb, estimate)
	assert.GreaterOrEqual(t, ub, estimate)
	// very loose sanity range; lg_k=5 has a large relative error
	assert.Greater(t, estimate, 1000.0)
	assert.Less(t, estimate, 25000.0)
}

func TestRetainedSetBoundAndValidity(t *testing.T) {
	s, err := NewUpdateSketch(WithUpdateSketchLgK(5), WithUpdateSketchResizeFactor(ResizeX2))
	require.NoError(t, err)

	for i := int64(0); i < 10000; i++ {
		_ = s.UpdateInt64(i)
	}

	assert.LessOrEqual(t, s.NumRetained(), uint32(60))
	for h := range s.All() {
		assert.Greater(t, h, uint64(0))
		assert.Less(t, h, s.Theta64())
	}
}

func TestUpdateKinds(t *testing.T) {
	s, err := NewUpdateSketch()
	require.NoError(t, err)

	assert.ErrorIs(t, s.UpdateString(""), ErrUpdateEmptyString)
	require.NoError(t, s.UpdateString("apple"))
	require.NoError(t, s.UpdateBytes([]byte{1, 2, 3}))
	require.NoError(t, s.UpdateInt32(-7))
	require.NoError(t, s.UpdateUint64(1234567890123))
	assert.Equal(t, uint32(4), s.NumRetained())
}

func TestCanonicalDoubles(t *testing.T) {
	// -0.0 and +0.0 must hash identically, as must every NaN
	a, err := NewUpdateSketch()
	require.NoError(t, err)
	b, err := NewUpdateSketch()
	require.NoError(t, err)

	require.NoError(t, a.UpdateFloat64(0.0))
	require.NoError(t, b.UpdateFloat64(math.Copysign(0.0, -1)))
	assert.ErrorIs(t, a.UpdateFloat64(math.Copysign(0.0, -1)), ErrDuplicateKey)

	require.NoError(t, a.UpdateFloat64(math.NaN()))
	assert.ErrorIs(t, a.UpdateFloat64(math.Float64frombits(0x7ff8000000000001)), ErrDuplicateKey)
}

func TestReset(t *testing.T) {
	s, err := NewUpdateSketch(WithUpdateSketchLgK(5))
	require.NoError(t, err)

	for i := int64(0); i < 1000; i++ {
		_ = s.UpdateInt64(i)
	}
	s.Reset()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, uint32(0), s.NumRetained())
	assert.Equal(t, MaxTheta, s.Theta64())
}

func TestTrim(t *testing.T) {
	s, err := NewUpdateSketch(WithUpdateSketchLgK(5))
	require.NoError(t, err)

	for i := int64(0); i < 10000; i++ {
		_ = s.UpdateInt64(i)
	}
	s.Trim()
	assert.LessOrEqual(t, s.NumRetained(), uint32(1<<5))
}

func TestSeedHashesDiffer(t *testing.T) {
	a, err := NewUpdateSketch()
	require.NoError(t, err)
	b, err := NewUpdateSketch(WithUpdateSketchSeed(12345))
	require.NoError(t, err)

	ha, err := a.SeedHash()
	require.NoError(t, err)
	hb, err := b.SeedHash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}
