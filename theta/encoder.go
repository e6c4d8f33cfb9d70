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
	"io"

	"github.com/streamhaus/sketches-go/internal"
	"github.com/streamhaus/sketches-go/internal/bitpack"
)

// Encoder encodes a compact theta sketch to a writer.
type Encoder struct {
	w          io.Writer
	compressed bool
}

// NewEncoder creates a new encoder. If compressed is true the encoder emits
// serial version 4 whenever the sketch is suitable for compression.
func NewEncoder(w io.Writer, compressed bool) Encoder {
	return Encoder{w: w, compressed: compressed}
}

// Encode encodes a compact theta sketch.
func (enc Encoder) Encode(sketch *CompactSketch) error {
	var bytes []byte
	if enc.compressed {
		bytes = sketch.SerializeCompressed()
	} else {
		bytes = sketch.Serialize()
	}

	n, err := enc.w.Write(bytes)
	if err != nil {
		return err
	}
	if n != len(bytes) {
		return io.ErrShortWrite
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler (uncompressed).
func (s *CompactSketch) MarshalBinary() ([]byte, error) {
	return s.Serialize(), nil
}

// Serialize writes this sketch in the canonical uncompressed format
// (serial version 3).
func (s *CompactSketch) Serialize() []byte {
	preambleLongs := s.preambleLongs(false)
	w := internal.NewSketchWriter(s.SerializedSizeBytes(false))

	w.WriteU8(preambleLongs)
	w.WriteU8(UncompressedSerialVersion)
	w.WriteU8(uint8(internal.FamilyEnum.Theta.Id))
	w.WriteU16BE(0) // unused; big-endian in the reference layout

	flags := uint8(0)
	flags |= 1 << serializationFlagIsCompact
	flags |= 1 << serializationFlagIsReadOnly
	if s.isEmpty {
		flags |= 1 << serializationFlagIsEmpty
	}
	if s.isOrdered {
		flags |= 1 << serializationFlagIsOrdered
	}
	w.WriteU8(flags)

	w.WriteU16LE(s.seedHash)

	if preambleLongs > 1 {
		w.WriteU32LE(uint32(len(s.entries)))
		w.WriteU32BE(0) // unused; big-endian in the reference layout
	}
	if s.IsEstimationMode() {
		w.WriteU64LE(s.theta)
	}
	for _, entry := range s.entries {
		w.WriteU64LE(entry)
	}

	return w.Bytes()
}

// SerializeCompressed writes this sketch in compressed form (serial
// version 4) when the sketch is ordered and non-trivial, and falls back to
// the uncompressed version 3 format otherwise.
func (s *CompactSketch) SerializeCompressed() []byte {
	if s.isSuitableForCompression() {
		return s.serializeV4()
	}
	return s.Serialize()
}

func (s *CompactSketch) serializeV4() []byte {
	preambleLongs := s.preambleLongs(true)
	entryBits := s.computeEntryBits()
	numEntriesBytes := s.numEntriesBytes()

	w := internal.NewSketchWriter(s.compressedSerializedSizeBytes(entryBits, numEntriesBytes))

	w.WriteU8(preambleLongs)
	w.WriteU8(CompressedSerialVersion)
	w.WriteU8(uint8(internal.FamilyEnum.Theta.Id))
	w.WriteU8(entryBits)
	w.WriteU8(numEntriesBytes)

	flags := uint8(0)
	flags |= 1 << serializationFlagIsCompact
	flags |= 1 << serializationFlagIsReadOnly
	flags |= 1 << serializationFlagIsOrdered
	w.WriteU8(flags)

	w.WriteU16LE(s.seedHash)

	if s.IsEstimationMode() {
		w.WriteU64LE(s.theta)
	}

	numEntries := uint32(len(s.entries))
	for i := uint8(0); i < numEntriesBytes; i++ {
		w.WriteU8(uint8(numEntries & 0xff))
		numEntries >>= 8
	}

	// pack full blocks of 8 deltas
	previous := uint64(0)
	var deltas [bitpack.BlockWidth]uint64
	block := make([]byte, entryBits)

	i := 0
	for i+bitpack.BlockWidth <= len(s.entries) {
		for j := 0; j < bitpack.BlockWidth; j++ {
			deltas[j] = s.entries[i+j] - previous
			previous = s.entries[i+j]
		}
		clear(block)
		// entryBits is always in range here: non-trivial ordered entries
		_ = bitpack.PackBlock8(deltas[:], block, entryBits)
		w.Write(block)
		i += bitpack.BlockWidth
	}

	// pack the remaining deltas (< 8) through the stateful packer,
	// padded to the next whole byte
	if i < len(s.entries) {
		clear(block)
		packer := bitpack.NewPacker(block)
		for ; i < len(s.entries); i++ {
			delta := s.entries[i] - previous
			previous = s.entries[i]
			packer.PackValue(delta, entryBits)
		}
		w.Write(block[:packer.ByteUsed()])
	}

	return w.Bytes()
}
