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
	"errors"
	"fmt"
	"io"

	"github.com/streamhaus/sketches-go/internal"
	"github.com/streamhaus/sketches-go/internal/bitpack"
)

// ErrInvalidRetainedHash is returned when a deserialized entry violates
// 0 < hash < theta.
var ErrInvalidRetainedHash = errors.New("corrupted: invalid retained hash value")

// Decoder decodes a compact sketch from a reader.
type Decoder struct {
	seed uint64
}

// NewDecoder creates a new decoder expecting sketches hashed with the given
// seed.
func NewDecoder(seed uint64) Decoder {
	return Decoder{seed: seed}
}

// Decode decodes a compact sketch from the given reader.
func (dec Decoder) Decode(r io.Reader) (*CompactSketch, error) {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DeserializeWithSeed(bytes, dec.seed)
}

// Deserialize decodes a compact sketch serialized with the default seed.
func Deserialize(bytes []byte) (*CompactSketch, error) {
	return DeserializeWithSeed(bytes, DefaultSeed)
}

// DeserializeWithSeed decodes a compact sketch from bytes, validating every
// header field. All four serial versions are recognized; the expected seed
// must match the embedded seed hash for any non-empty sketch.
func DeserializeWithSeed(bytes []byte, seed uint64) (*CompactSketch, error) {
	r := internal.NewSketchReader(bytes)

	preLongs, err := r.ReadU8("preamble_longs")
	if err != nil {
		return nil, err
	}
	serVer, err := r.ReadU8("serial_version")
	if err != nil {
		return nil, err
	}
	familyID, err := r.ReadU8("family_id")
	if err != nil {
		return nil, err
	}

	if err := internal.FamilyEnum.Theta.ValidateId(int(familyID)); err != nil {
		return nil, err
	}
	if err := internal.FamilyEnum.Theta.ValidatePreLongs(int(preLongs)); err != nil {
		return nil, err
	}

	switch serVer {
	case LegacySerialVersion1:
		return deserializeV1(r, seed)
	case LegacySerialVersion2:
		return deserializeV2(preLongs, r, seed)
	case UncompressedSerialVersion:
		return deserializeV3(preLongs, r, seed)
	case CompressedSerialVersion:
		return deserializeV4(preLongs, r, seed)
	default:
		return nil, fmt.Errorf("unsupported serial version: expected 1, 2, 3, or 4, got %d", serVer)
	}
}

// readEntries reads uncompressed 64-bit entries and validates each one
// against theta.
func readEntries(r *internal.SketchReader, numEntries int, theta uint64) ([]uint64, error) {
	entries := make([]uint64, 0, numEntries)
	for i := 0; i < numEntries; i++ {
		hash, err := r.ReadU64LE("entries")
		if err != nil {
			return nil, err
		}
		if hash == 0 || hash >= theta {
			return nil, ErrInvalidRetainedHash
		}
		entries = append(entries, hash)
	}
	return entries, nil
}

// deserializeV1 reads the legacy precise layout: an unused byte, two unused
// 32-bit words around the entry count, then theta and the entries. No seed
// hash is stored; the digest of the expected seed is adopted.
func deserializeV1(r *internal.SketchReader, expectedSeed uint64) (*CompactSketch, error) {
	seedHash, err := internal.ComputeSeedHash(expectedSeed)
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadU8("<unused>"); err != nil {
		return nil, err
	}
	if _, err := r.ReadU32LE("<unused_u32_0>"); err != nil {
		return nil, err
	}
	numEntries, err := r.ReadU32LE("num_entries")
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadU32LE("<unused_u32_1>"); err != nil {
		return nil, err
	}
	theta, err := r.ReadU64LE("theta_long")
	if err != nil {
		return nil, err
	}

	if numEntries == 0 && theta == MaxTheta {
		return newCompactSketchFromEntries(true, true, seedHash, theta, nil), nil
	}

	entries, err := readEntries(r, int(numEntries), theta)
	if err != nil {
		return nil, err
	}
	return newCompactSketchFromEntries(false, true, seedHash, theta, entries), nil
}

// deserializeV2 reads the legacy tri-state layout: the preamble size selects
// empty, precise or estimation form.
func deserializeV2(preLongs uint8, r *internal.SketchReader, expectedSeed uint64) (*CompactSketch, error) {
	if _, err := r.ReadU8("<unused>"); err != nil {
		return nil, err
	}
	if _, err := r.ReadU16LE("<unused_u16>"); err != nil {
		return nil, err
	}
	seedHash, err := r.ReadU16LE("seed_hash")
	if err != nil {
		return nil, err
	}
	expectedSeedHash, err := internal.ComputeSeedHash(expectedSeed)
	if err != nil {
		return nil, err
	}
	if err := CheckSeedHashEqual(seedHash, expectedSeedHash); err != nil {
		return nil, err
	}

	switch preLongs {
	case v2PreambleEmpty:
		return newCompactSketchFromEntries(true, true, seedHash, MaxTheta, nil), nil
	case v2PreamblePrecise:
		numEntries, err := r.ReadU32LE("num_entries")
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadU32LE("<unused_u32>"); err != nil {
			return nil, err
		}
		if numEntries == 0 {
			return newCompactSketchFromEntries(true, true, seedHash, MaxTheta, nil), nil
		}
		entries, err := readEntries(r, int(numEntries), MaxTheta)
		if err != nil {
			return nil, err
		}
		return newCompactSketchFromEntries(false, true, seedHash, MaxTheta, entries), nil
	case v2PreambleEstimate:
		numEntries, err := r.ReadU32LE("num_entries")
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadU32LE("<unused_u32>"); err != nil {
			return nil, err
		}
		theta, err := r.ReadU64LE("theta_long")
		if err != nil {
			return nil, err
		}
		empty := numEntries == 0 && theta == MaxTheta
		if empty {
			return newCompactSketchFromEntries(true, true, seedHash, theta, nil), nil
		}
		entries, err := readEntries(r, int(numEntries), theta)
		if err != nil {
			return nil, err
		}
		return newCompactSketchFromEntries(false, true, seedHash, theta, entries), nil
	default:
		return nil, fmt.Errorf("invalid preamble longs: expected 1, 2, or 3, got %d", preLongs)
	}
}

// deserializeV3 reads the canonical uncompressed layout.
func deserializeV3(preLongs uint8, r *internal.SketchReader, expectedSeed uint64) (*CompactSketch, error) {
	if _, err := r.ReadU16LE("<unused_u16>"); err != nil {
		return nil, err
	}
	flags, err := r.ReadU8("flags")
	if err != nil {
		return nil, err
	}
	seedHash, err := r.ReadU16LE("seed_hash")
	if err != nil {
		return nil, err
	}

	empty := flags&(1<<serializationFlagIsEmpty) != 0
	ordered := flags&(1<<serializationFlagIsOrdered) != 0
	if empty {
		return newCompactSketchFromEntries(true, true, seedHash, MaxTheta, nil), nil
	}

	expectedSeedHash, err := internal.ComputeSeedHash(expectedSeed)
	if err != nil {
		return nil, err
	}
	if err := CheckSeedHashEqual(seedHash, expectedSeedHash); err != nil {
		return nil, err
	}

	theta := MaxTheta
	numEntries := uint32(1)
	if preLongs > 1 {
		numEntries, err = r.ReadU32LE("num_entries")
		if err != nil {
			return nil, err
		}
		if _, err := r.ReadU32LE("<unused_u32>"); err != nil {
			return nil, err
		}
		if preLongs > 2 {
			theta, err = r.ReadU64LE("theta_long")
			if err != nil {
				return nil, err
			}
		}
	}

	entries, err := readEntries(r, int(numEntries), theta)
	if err != nil {
		return nil, err
	}
	return newCompactSketchFromEntries(false, ordered, seedHash, theta, entries), nil
}

// deserializeV4 reads the compressed layout: bit-packed deltas in blocks of
// 8, with a stateful-packed partial tail.
func deserializeV4(preLongs uint8, r *internal.SketchReader, expectedSeed uint64) (*CompactSketch, error) {
	entryBits, err := r.ReadU8("entry_bits")
	if err != nil {
		return nil, err
	}
	if entryBits == 0 || entryBits > 63 {
		return nil, fmt.Errorf("invalid entry bits: expected [1, 63], got %d", entryBits)
	}
	numEntriesBytes, err := r.ReadU8("num_entries")
	if err != nil {
		return nil, err
	}
	flags, err := r.ReadU8("flags")
	if err != nil {
		return nil, err
	}
	seedHash, err := r.ReadU16LE("seed_hash")
	if err != nil {
		return nil, err
	}

	empty := flags&(1<<serializationFlagIsEmpty) != 0
	if !empty {
		expectedSeedHash, err := internal.ComputeSeedHash(expectedSeed)
		if err != nil {
			return nil, err
		}
		if err := CheckSeedHashEqual(seedHash, expectedSeedHash); err != nil {
			return nil, err
		}
	}

	theta := MaxTheta
	if preLongs > 1 {
		theta, err = r.ReadU64LE("theta_long")
		if err != nil {
			return nil, err
		}
	}

	numEntries := 0
	for i := uint8(0); i < numEntriesBytes; i++ {
		entryCountByte, err := r.ReadU8("num_entries_byte")
		if err != nil {
			return nil, err
		}
		numEntries |= int(entryCountByte) << (i << 3)
	}

	// unpack full blocks of 8 deltas
	entries := make([]uint64, numEntries)
	block := make([]byte, entryBits)
	i := 0
	for i+bitpack.BlockWidth <= numEntries {
		if err := r.ReadExact(block, "delta_block"); err != nil {
			return nil, err
		}
		if err := bitpack.UnpackBlock8(entries[i:i+bitpack.BlockWidth], block, entryBits); err != nil {
			return nil, err
		}
		i += bitpack.BlockWidth
	}

	// unpack the remaining deltas (< 8)
	if i < numEntries {
		rem := numEntries - i
		tail := make([]byte, wholeBytesToHoldBits(rem*int(entryBits)))
		if err := r.ReadExact(tail, "delta_tail"); err != nil {
			return nil, err
		}
		unpacker := bitpack.NewUnpacker(tail)
		for ; i < numEntries; i++ {
			entries[i] = unpacker.UnpackValue(entryBits)
		}
	}

	// undo the deltas and validate the reconstructed hashes
	previous := uint64(0)
	for j := range entries {
		entries[j] += previous
		previous = entries[j]
		if entries[j] == 0 || entries[j] >= theta {
			return nil, ErrInvalidRetainedHash
		}
	}

	ordered := flags&(1<<serializationFlagIsOrdered) != 0
	return newCompactSketchFromEntries(empty, ordered, seedHash, theta, entries), nil
}
