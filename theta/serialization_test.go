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
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesOf(s *CompactSketch) []uint64 {
	var entries []uint64
	for e := range s.All() {
		entries = append(entries, e)
	}
	return entries
}

func assertSketchesEqual(t *testing.T, expected, actual *CompactSketch) {
	t.Helper()
	assert.Equal(t, expected.IsEmpty(), actual.IsEmpty())
	assert.Equal(t, expected.IsOrdered(), actual.IsOrdered())
	assert.Equal(t, expected.Theta64(), actual.Theta64())
	assert.Equal(t, expected.NumRetained(), actual.NumRetained())
	assert.Equal(t, entriesOf(expected), entriesOf(actual))
	assert.Equal(t, expected.Estimate(), actual.Estimate())

	expectedSeedHash, err := expected.SeedHash()
	require.NoError(t, err)
	actualSeedHash, err := actual.SeedHash()
	require.NoError(t, err)
	assert.Equal(t, expectedSeedHash, actualSeedHash)
}

func buildSketch(t *testing.T, lgK uint8, n int64) *UpdateSketch {
	t.Helper()
	s, err := NewUpdateSketch(WithUpdateSketchLgK(lgK))
	require.NoError(t, err)
	for i := int64(0); i < n; i++ {
		_ = s.UpdateInt64(i)
	}
	return s
}

func TestSerializeEmptyRoundTrip(t *testing.T) {
	s, err := NewUpdateSketch()
	require.NoError(t, err)
	compact := s.Compact(true)

	image := compact.Serialize()
	assert.Equal(t, 8, len(image))
	assert.Equal(t, uint8(UncompressedSerialVersion), image[1])

	decoded, err := Deserialize(image)
	require.NoError(t, err)
	assert.True(t, decoded.IsEmpty())
	assert.Equal(t, MaxTheta, decoded.Theta64())
	assert.Equal(t, uint32(0), decoded.NumRetained())

	// empty sketches fall back to v3 on the compressed path
	compressed := compact.SerializeCompressed()
	assert.Equal(t, uint8(UncompressedSerialVersion), compressed[1])
	decoded, err = Deserialize(compressed)
	require.NoError(t, err)
	assert.True(t, decoded.IsEmpty())
}

func TestSerializeSingleEntryRoundTrip(t *testing.T) {
	s := buildSketch(t, 12, 1)
	compact := s.Compact(true)

	image := compact.Serialize()
	assert.Equal(t, 16, len(image)) // 1 preamble long + 1 entry

	decoded, err := Deserialize(image)
	require.NoError(t, err)
	assertSketchesEqual(t, compact, decoded)

	// a single-entry exact-mode sketch is not suitable for compression
	compressed := compact.SerializeCompressed()
	assert.Equal(t, uint8(UncompressedSerialVersion), compressed[1])
}

func TestSerializeExactModeRoundTrip(t *testing.T) {
	s := buildSketch(t, 12, 2000)
	compact := s.Compact(true)

	require.False(t, compact.IsEstimationMode())
	require.Equal(t, uint32(2000), compact.NumRetained())

	v3 := compact.Serialize()
	decodedV3, err := Deserialize(v3)
	require.NoError(t, err)
	assertSketchesEqual(t, compact, decodedV3)

	v4 := compact.SerializeCompressed()
	assert.Equal(t, uint8(CompressedSerialVersion), v4[1])
	assert.Less(t, len(v4), len(v3))
	decodedV4, err := Deserialize(v4)
	require.NoError(t, err)
	assertSketchesEqual(t, compact, decodedV4)

	// v3 and v4 reconstruct identical entry sets
	assert.Equal(t, entriesOf(decodedV3), entriesOf(decodedV4))
}

func TestSerializeCompressedTail(t *testing.T) {
	// 13 entries: one full block of 8 plus a partial tail of 5
	s := buildSketch(t, 12, 13)
	compact := s.Compact(true)
	require.Equal(t, uint32(13), compact.NumRetained())
	require.False(t, compact.IsEstimationMode())

	v4 := compact.SerializeCompressed()
	assert.Equal(t, uint8(CompressedSerialVersion), v4[1])

	decoded, err := Deserialize(v4)
	require.NoError(t, err)
	assertSketchesEqual(t, compact, decoded)
	assert.True(t, slices.IsSorted(entriesOf(decoded)))
}

func TestSerializeCompressedTwoCountBytes(t *testing.T) {
	s := buildSketch(t, 12, 300)
	compact := s.Compact(true)
	require.Greater(t, compact.NumRetained(), uint32(255))
	require.Equal(t, uint8(2), compact.numEntriesBytes())

	v4 := compact.SerializeCompressed()
	decoded, err := Deserialize(v4)
	require.NoError(t, err)
	assertSketchesEqual(t, compact, decoded)
}

func TestSerializeCompressedEstimationMode(t *testing.T) {
	s := buildSketch(t, 5, 5000)
	compact := s.Compact(true)
	require.True(t, compact.IsEstimationMode())

	v4 := compact.SerializeCompressed()
	assert.Equal(t, uint8(CompressedSerialVersion), v4[1])
	assert.Equal(t, uint8(2), v4[0]) // theta carried in the second preamble long

	decoded, err := Deserialize(v4)
	require.NoError(t, err)
	assertSketchesEqual(t, compact, decoded)
}

func TestSerializeUnorderedFallsBackToV3(t *testing.T) {
	s := buildSketch(t, 12, 100)
	compact := s.Compact(false)

	image := compact.SerializeCompressed()
	assert.Equal(t, uint8(UncompressedSerialVersion), image[1])

	decoded, err := Deserialize(image)
	require.NoError(t, err)
	assert.ElementsMatch(t, entriesOf(compact), entriesOf(decoded))
}

func TestDeserializeWithSeedMismatch(t *testing.T) {
	s, err := NewUpdateSketch(WithUpdateSketchSeed(12345))
	require.NoError(t, err)
	for i := int64(0); i < 100; i++ {
		_ = s.UpdateInt64(i)
	}
	image := s.Compact(true).Serialize()

	_, err = Deserialize(image) // default seed does not match
	assert.ErrorContains(t, err, "seed hash mismatch")

	decoded, err := DeserializeWithSeed(image, 12345)
	require.NoError(t, err)
	assert.Equal(t, uint32(100), decoded.NumRetained())
}

func TestDeserializeUnknownSerialVersion(t *testing.T) {
	image := buildSketch(t, 12, 10).Compact(true).Serialize()
	image[1] = 9
	_, err := Deserialize(image)
	assert.ErrorContains(t, err, "unsupported serial version")
}

func TestDeserializeWrongFamily(t *testing.T) {
	image := buildSketch(t, 12, 10).Compact(true).Serialize()
	image[2] = 7
	_, err := Deserialize(image)
	assert.ErrorContains(t, err, "sketch family mismatch")
}

func TestDeserializeTruncated(t *testing.T) {
	image := buildSketch(t, 12, 100).Compact(true).Serialize()
	_, err := Deserialize(image[:len(image)-9])
	assert.ErrorContains(t, err, "insufficient data (entries)")

	_, err = Deserialize(image[:3])
	assert.ErrorContains(t, err, "insufficient data")

	v4 := buildSketch(t, 12, 100).Compact(true).SerializeCompressed()
	_, err = Deserialize(v4[:len(v4)-1])
	assert.ErrorContains(t, err, "insufficient data")
}

func TestDeserializeCorruptEntry(t *testing.T) {
	image := buildSketch(t, 12, 2).Compact(true).Serialize()
	// zero out the first entry; preamble is 2 longs here
	for i := 16; i < 24; i++ {
		image[i] = 0
	}
	_, err := Deserialize(image)
	assert.ErrorIs(t, err, ErrInvalidRetainedHash)
}

func TestDeserializeLegacyV1(t *testing.T) {
	original := buildSketch(t, 12, 50).Compact(true)
	entries := entriesOf(original)

	// hand-build a v1 image: 3 preamble longs, fixed layout
	var buf bytes.Buffer
	buf.Write([]byte{3, 1, 3, 0})                  // preLongs, serVer, family, unused
	buf.Write([]byte{0, 0, 0, 0})                  // unused u32
	buf.Write(u32le(uint32(len(entries))))         // num_entries
	buf.Write([]byte{0, 0, 0, 0})                  // unused u32
	buf.Write(u64le(MaxTheta))                     // theta
	for _, e := range entries {
		buf.Write(u64le(e))
	}

	decoded, err := Deserialize(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, entries, entriesOf(decoded))
	assert.False(t, decoded.IsEmpty())
	assert.Equal(t, MaxTheta, decoded.Theta64())
}

func TestDeserializeLegacyV2(t *testing.T) {
	original := buildSketch(t, 12, 50).Compact(true)
	entries := entriesOf(original)
	seedHash, err := original.SeedHash()
	require.NoError(t, err)

	// tri-state layout, preamble 2 = precise
	var buf bytes.Buffer
	buf.Write([]byte{2, 2, 3, 0})
	buf.Write([]byte{0, 0}) // unused u16
	buf.Write(u16le(seedHash))
	buf.Write(u32le(uint32(len(entries))))
	buf.Write([]byte{0, 0, 0, 0})
	for _, e := range entries {
		buf.Write(u64le(e))
	}

	decoded, err := Deserialize(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, entries, entriesOf(decoded))
	assert.Equal(t, MaxTheta, decoded.Theta64())

	// preamble 1 = empty
	empty, err := Deserialize(append([]byte{1, 2, 3, 0, 0, 0}, u16le(seedHash)...))
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestEncoderDecoderStream(t *testing.T) {
	compact := buildSketch(t, 12, 500).Compact(true)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf, true).Encode(compact))

	decoded, err := NewDecoder(DefaultSeed).Decode(&buf)
	require.NoError(t, err)
	assertSketchesEqual(t, compact, decoded)
}

func u16le(v uint16) []byte {
	return []byte{byte(v), byte(v >> 8)}
}

func u32le(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func u64le(v uint64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}
