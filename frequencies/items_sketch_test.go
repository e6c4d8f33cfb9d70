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

package frequencies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsSketchConstruction(t *testing.T) {
	_, err := NewLongsSketch(100) // not a power of two
	assert.Error(t, err)

	s, err := NewLongsSketch(64)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.GetNumActiveItems())
	assert.Equal(t, int64(0), s.GetStreamLength())
	assert.Equal(t, 48, s.GetMaximumMapCapacity())
}

func TestEpsilonHelpers(t *testing.T) {
	_, err := GetEpsilon(100)
	assert.ErrorContains(t, err, "maxMapSize is not a power of 2")

	eps, err := GetEpsilon(64)
	require.NoError(t, err)
	assert.Equal(t, 3.5/64.0, eps)

	apriori, err := GetAprioriError(64, 1000)
	require.NoError(t, err)
	assert.Equal(t, 3.5/64.0*1000.0, apriori)
}

func TestHeavyHitters(t *testing.T) {
	s, err := NewLongsSketch(64)
	require.NoError(t, err)

	require.NoError(t, s.UpdateMany(1, 3))
	require.NoError(t, s.UpdateMany(2, 1))

	assert.Equal(t, int64(4), s.GetStreamLength())
	assert.GreaterOrEqual(t, s.GetEstimate(1), int64(3))
	assert.LessOrEqual(t, s.GetLowerBound(1), int64(3))
	assert.GreaterOrEqual(t, s.GetUpperBound(1), int64(3))

	rows := s.GetFrequentItems(NoFalseNegatives)
	items := make([]int64, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Item())
	}
	assert.Contains(t, items, int64(1))

	// rows come back sorted by estimate descending
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].GetEstimate(), rows[i].GetEstimate())
	}
}

func TestUpdateValidation(t *testing.T) {
	s, err := NewLongsSketch(64)
	require.NoError(t, err)

	assert.NoError(t, s.UpdateMany(1, 0)) // no-op
	assert.True(t, s.IsEmpty())
	assert.ErrorContains(t, s.UpdateMany(1, -1), "count may not be negative")
}

func TestBoundsSandwich(t *testing.T) {
	const maxMapSize = 64
	s, err := NewLongsSketch(maxMapSize)
	require.NoError(t, err)

	// force purges with many more distinct items than the map can hold
	trueCounts := make(map[int64]int64)
	for i := int64(0); i < 10000; i++ {
		item := i % 700
		require.NoError(t, s.UpdateMany(item, 1))
		trueCounts[item]++
	}

	eps, err := GetEpsilon(maxMapSize)
	require.NoError(t, err)
	maxError := s.GetMaximumError()
	assert.LessOrEqual(t, float64(maxError), eps*float64(s.GetStreamLength()))

	for item, truth := range trueCounts {
		lb := s.GetLowerBound(item)
		ub := s.GetUpperBound(item)
		assert.LessOrEqual(t, lb, truth, "item %d", item)
		assert.GreaterOrEqual(t, ub, truth, "item %d", item)
		assert.LessOrEqual(t, ub-lb, maxError)
	}
}

func TestOffsetGrowsOnPurge(t *testing.T) {
	s, err := NewLongsSketch(8)
	require.NoError(t, err)

	for i := int64(0); i < 100; i++ {
		require.NoError(t, s.Update(i))
	}
	assert.Greater(t, s.GetMaximumError(), int64(0))
	assert.LessOrEqual(t, s.GetNumActiveItems(), s.GetMaximumMapCapacity())
}

func TestReset(t *testing.T) {
	s, err := NewLongsSketch(64)
	require.NoError(t, err)
	for i := int64(0); i < 1000; i++ {
		require.NoError(t, s.Update(i % 100))
	}

	s.Reset()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, int64(0), s.GetStreamLength())
	assert.Equal(t, int64(0), s.GetMaximumError())
	assert.Equal(t, 0, s.GetNumActiveItems())
	assert.Equal(t, int64(0), s.GetEstimate(1))

	// the sketch is usable again after reset
	require.NoError(t, s.UpdateMany(7, 2))
	assert.Equal(t, int64(2), s.GetEstimate(7))
}

func TestMerge(t *testing.T) {
	a, err := NewLongsSketch(64)
	require.NoError(t, err)
	b, err := NewLongsSketch(128)
	require.NoError(t, err)

	require.NoError(t, a.UpdateMany(1, 10))
	require.NoError(t, a.UpdateMany(2, 5))
	require.NoError(t, b.UpdateMany(2, 3))
	require.NoError(t, b.UpdateMany(3, 7))

	merged, err := a.Merge(b)
	require.NoError(t, err)
	assert.Equal(t, int64(25), merged.GetStreamLength())
	assert.GreaterOrEqual(t, merged.GetEstimate(1), int64(10))
	assert.GreaterOrEqual(t, merged.GetEstimate(2), int64(8))
	assert.GreaterOrEqual(t, merged.GetEstimate(3), int64(7))

	// merging an empty peer is a no-op
	empty, err := NewLongsSketch(64)
	require.NoError(t, err)
	merged, err = merged.Merge(empty)
	require.NoError(t, err)
	assert.Equal(t, int64(25), merged.GetStreamLength())
}

func TestThresholdQueries(t *testing.T) {
	s, err := NewLongsSketch(64)
	require.NoError(t, err)

	require.NoError(t, s.UpdateMany(1, 100))
	require.NoError(t, s.UpdateMany(2, 50))
	require.NoError(t, s.UpdateMany(3, 1))

	rows := s.GetFrequentItemsWithThreshold(40, NoFalsePositives)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].Item())
	assert.Equal(t, int64(2), rows[1].Item())

	rows = s.GetFrequentItemsWithThreshold(99, NoFalsePositives)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].Item())
	assert.Equal(t, int64(100), rows[0].GetEstimate())
}

func TestLongsSerializationRoundTrip(t *testing.T) {
	s, err := NewLongsSketch(64)
	require.NoError(t, err)
	for i := int64(0); i < 25; i++ {
		require.NoError(t, s.UpdateMany(i, i+1))
	}

	image := s.ToSlice()
	decoded, err := DeserializeLongsSketch(image)
	require.NoError(t, err)

	assert.Equal(t, s.GetStreamLength(), decoded.GetStreamLength())
	assert.Equal(t, s.GetMaximumError(), decoded.GetMaximumError())
	assert.Equal(t, s.GetNumActiveItems(), decoded.GetNumActiveItems())
	for i := int64(0); i < 25; i++ {
		assert.Equal(t, s.GetEstimate(i), decoded.GetEstimate(i))
	}
}

func TestEmptySerializationRoundTrip(t *testing.T) {
	s, err := NewLongsSketch(64)
	require.NoError(t, err)

	image := s.ToSlice()
	assert.Equal(t, 8, len(image))

	decoded, err := DeserializeLongsSketch(image)
	require.NoError(t, err)
	assert.True(t, decoded.IsEmpty())
}

func TestStringsSketchUTF8RoundTrip(t *testing.T) {
	s, err := NewStringsSketch(64)
	require.NoError(t, err)

	words := []string{"абвгд", "еёжзи", "йклмн", "опрст", "уфхцч", "шщъыь", "эюя"}
	for i, word := range words {
		require.NoError(t, s.UpdateMany(word, int64(i+1)))
	}

	image := s.ToSlice()
	decoded, err := DeserializeStringsSketch(image)
	require.NoError(t, err)

	assert.Equal(t, int64(0), decoded.GetMaximumError())
	for i, word := range words {
		assert.Equal(t, int64(i+1), decoded.GetEstimate(word))
	}
}

func TestStringsSketchInvalidUTF8(t *testing.T) {
	s, err := NewStringsSketch(64)
	require.NoError(t, err)
	require.NoError(t, s.Update("hello"))

	image := s.ToSlice()
	// corrupt the string payload with an invalid UTF-8 byte
	image[len(image)-1] = 0xff
	_, err = DeserializeStringsSketch(image)
	assert.ErrorContains(t, err, "invalid UTF-8 string payload")
}

func TestDeserializeValidation(t *testing.T) {
	s, err := NewLongsSketch(64)
	require.NoError(t, err)
	require.NoError(t, s.UpdateMany(1, 2))
	image := s.ToSlice()

	bad := append([]byte(nil), image...)
	bad[_SER_VER_BYTE] = 9
	_, err = DeserializeLongsSketch(bad)
	assert.ErrorContains(t, err, "unsupported serial version")

	bad = append([]byte(nil), image...)
	bad[_FAMILY_BYTE] = 3
	_, err = DeserializeLongsSketch(bad)
	assert.ErrorContains(t, err, "sketch family mismatch")

	_, err = DeserializeLongsSketch(image[:4])
	assert.ErrorContains(t, err, "insufficient data")

	_, err = DeserializeLongsSketch(image[:len(image)-4])
	assert.ErrorContains(t, err, "insufficient data")
}

func TestPurgeKeepsHeavyHitters(t *testing.T) {
	s, err := NewLongsSketch(32)
	require.NoError(t, err)

	// one heavy item among a long tail
	for i := int64(0); i < 5000; i++ {
		require.NoError(t, s.Update(i % 500))
		if i%5 == 0 {
			require.NoError(t, s.Update(-1))
		}
	}

	rows := s.GetFrequentItems(NoFalseNegatives)
	found := false
	for _, row := range rows {
		if row.Item() == -1 {
			found = true
		}
	}
	assert.True(t, found)
	assert.GreaterOrEqual(t, s.GetUpperBound(-1), int64(1000))
}
