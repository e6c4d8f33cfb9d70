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

package internal

import (
	"encoding/binary"
	"fmt"
	"math"
)

// SketchReader is a cursor over a serialized sketch image. Every read names
// the field it is after, so a short buffer produces an
// "insufficient data (<field>)" error pointing at the exact spot.
type SketchReader struct {
	bytes  []byte
	offset int
}

func NewSketchReader(bytes []byte) *SketchReader {
	return &SketchReader{bytes: bytes}
}

func (r *SketchReader) need(n int, tag string) error {
	if r.offset+n > len(r.bytes) {
		return fmt.Errorf("insufficient data (%s)", tag)
	}
	return nil
}

func (r *SketchReader) ReadU8(tag string) (uint8, error) {
	if err := r.need(1, tag); err != nil {
		return 0, err
	}
	v := r.bytes[r.offset]
	r.offset++
	return v, nil
}

func (r *SketchReader) ReadU16LE(tag string) (uint16, error) {
	if err := r.need(2, tag); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.bytes[r.offset:])
	r.offset += 2
	return v, nil
}

func (r *SketchReader) ReadU32LE(tag string) (uint32, error) {
	if err := r.need(4, tag); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.bytes[r.offset:])
	r.offset += 4
	return v, nil
}

func (r *SketchReader) ReadU64LE(tag string) (uint64, error) {
	if err := r.need(8, tag); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.bytes[r.offset:])
	r.offset += 8
	return v, nil
}

func (r *SketchReader) ReadF64LE(tag string) (float64, error) {
	v, err := r.ReadU64LE(tag)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *SketchReader) ReadExact(dst []byte, tag string) error {
	if err := r.need(len(dst), tag); err != nil {
		return err
	}
	copy(dst, r.bytes[r.offset:])
	r.offset += len(dst)
	return nil
}

func (r *SketchReader) Remaining() int {
	return len(r.bytes) - r.offset
}

// SketchWriter builds a serialized sketch image in memory.
type SketchWriter struct {
	bytes []byte
}

func NewSketchWriter(capacity int) *SketchWriter {
	return &SketchWriter{bytes: make([]byte, 0, capacity)}
}

func (w *SketchWriter) WriteU8(v uint8) {
	w.bytes = append(w.bytes, v)
}

func (w *SketchWriter) WriteU16LE(v uint16) {
	w.bytes = binary.LittleEndian.AppendUint16(w.bytes, v)
}

// WriteU16BE exists for the two reference fields that are big-endian on the
// wire.
func (w *SketchWriter) WriteU16BE(v uint16) {
	w.bytes = binary.BigEndian.AppendUint16(w.bytes, v)
}

func (w *SketchWriter) WriteU32LE(v uint32) {
	w.bytes = binary.LittleEndian.AppendUint32(w.bytes, v)
}

func (w *SketchWriter) WriteU32BE(v uint32) {
	w.bytes = binary.BigEndian.AppendUint32(w.bytes, v)
}

func (w *SketchWriter) WriteU64LE(v uint64) {
	w.bytes = binary.LittleEndian.AppendUint64(w.bytes, v)
}

func (w *SketchWriter) WriteF64LE(v float64) {
	w.WriteU64LE(math.Float64bits(v))
}

func (w *SketchWriter) Write(bytes []byte) {
	w.bytes = append(w.bytes, bytes...)
}

func (w *SketchWriter) Bytes() []byte {
	return w.bytes
}
