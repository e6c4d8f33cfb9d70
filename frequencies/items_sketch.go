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
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/streamhaus/sketches-go/common"
	"github.com/streamhaus/sketches-go/internal"
)

// Preamble byte addresses
const (
	_PREAMBLE_LONGS_BYTE  = 0
	_SER_VER_BYTE         = 1
	_FAMILY_BYTE          = 2
	_LG_MAX_MAP_SIZE_BYTE = 3
	_LG_CUR_MAP_SIZE_BYTE = 4
	_FLAGS_BYTE           = 5

	// _EMPTY_FLAG_MASK: due to a mistake different bits were used in C++
	// and Java to indicate an empty sketch, therefore both are set and
	// checked for compatibility with the historical binary format.
	_EMPTY_FLAG_MASK = 5

	_SER_VER = 1

	_PREAMBLE_LONGS_EMPTY    = 1
	_PREAMBLE_LONGS_NONEMPTY = 4
)

// ItemsSketch tracks approximate frequencies of items of type C using a
// Misra-Gries-style reverse-purge hash map. The true frequency of any
// tracked item lies between its lower and upper bound, and the spread is at
// most 3.5/maxMapSize times the stream weight.
type ItemsSketch[C comparable] struct {
	// Log2 maximum length of the arrays internal to the hash map supported
	// by the data structure.
	lgMaxMapSize int
	// The current number of counters supported by the hash map.
	curMapCap int // the threshold to purge
	// Tracks the total of decremented counts.
	offset int64
	// The sum of all frequencies of the stream so far.
	streamWeight int64
	// The maximum number of samples used to compute the approximate median
	// of counters when decrementing.
	sampleSize int
	// Hash map mapping stored items to approximate counts.
	hashMap *reversePurgeHashMap[C]
	serde   common.ItemSketchSerde[C]
}

// NewItemsSketch constructs an ItemsSketch for a maxMapSize that must be a
// power of two. The maximum capacity of the internal hash map is
// 0.75 * maxMapSize; both the ultimate accuracy and the size of the sketch
// are functions of maxMapSize.
func NewItemsSketch[C comparable](maxMapSize int, hasher common.ItemSketchHasher[C], serde common.ItemSketchSerde[C]) (*ItemsSketch[C], error) {
	lgMaxMapSize, err := internal.ExactLog2(maxMapSize)
	if err != nil {
		return nil, fmt.Errorf("maxMapSize: %w", err)
	}
	return newItemsSketchWithLgSizes(lgMaxMapSize, _LG_MIN_MAP_SIZE, hasher, serde)
}

// NewLongsSketch constructs an ItemsSketch over int64 items.
func NewLongsSketch(maxMapSize int) (*ItemsSketch[int64], error) {
	return NewItemsSketch[int64](maxMapSize, common.ItemSketchLongHasher{}, common.ItemSketchLongSerDe{})
}

// NewStringsSketch constructs an ItemsSketch over string items.
func NewStringsSketch(maxMapSize int) (*ItemsSketch[string], error) {
	return NewItemsSketch[string](maxMapSize, common.ItemSketchStringHasher{}, common.ItemSketchStringSerDe{})
}

func newItemsSketchWithLgSizes[C comparable](lgMaxMapSize, lgCurMapSize int, hasher common.ItemSketchHasher[C], serde common.ItemSketchSerde[C]) (*ItemsSketch[C], error) {
	lgMaxMapSize = max(lgMaxMapSize, _LG_MIN_MAP_SIZE)
	lgCurMapSize = max(lgCurMapSize, _LG_MIN_MAP_SIZE)
	if lgCurMapSize > lgMaxMapSize {
		return nil, errors.New("lg_cur_map_size exceeds lg_max_map_size")
	}
	hashMap, err := newReversePurgeHashMap(1<<lgCurMapSize, hasher)
	if err != nil {
		return nil, err
	}
	maxMapCap := int(float64(uint64(1)<<lgMaxMapSize) * reversePurgeHashMapLoadFactor)
	return &ItemsSketch[C]{
		lgMaxMapSize: lgMaxMapSize,
		curMapCap:    hashMap.getCapacity(),
		offset:       0,
		sampleSize:   min(_SAMPLE_SIZE, maxMapCap),
		hashMap:      hashMap,
		serde:        serde,
	}, nil
}

// IsEmpty returns true if this sketch is empty.
func (s *ItemsSketch[C]) IsEmpty() bool {
	return s.GetNumActiveItems() == 0
}

// GetNumActiveItems returns the number of active items in the sketch.
func (s *ItemsSketch[C]) GetNumActiveItems() int {
	return s.hashMap.numActive
}

// GetStreamLength returns the sum of the frequencies (weights or counts) in
// the stream seen so far by the sketch.
func (s *ItemsSketch[C]) GetStreamLength() int64 {
	return s.streamWeight
}

// GetCurrentMapCapacity returns the number of counters the sketch currently
// supports.
func (s *ItemsSketch[C]) GetCurrentMapCapacity() int {
	return s.curMapCap
}

// GetMaximumMapCapacity returns the maximum number of counters the sketch
// is configured to support.
func (s *ItemsSketch[C]) GetMaximumMapCapacity() int {
	return int(float64(uint64(1)<<s.lgMaxMapSize) * reversePurgeHashMapLoadFactor)
}

// GetEstimate returns the estimate of the frequency of the given item.
// The true frequency of the item lies in [lower bound, upper bound].
func (s *ItemsSketch[C]) GetEstimate(item C) int64 {
	if itemCount, ok := s.hashMap.get(item); ok {
		return itemCount + s.offset
	}
	return 0
}

// GetLowerBound returns the guaranteed lower bound frequency of the given
// item: a number no larger than the real frequency, never negative.
func (s *ItemsSketch[C]) GetLowerBound(item C) int64 {
	itemCount, _ := s.hashMap.get(item)
	return itemCount
}

// GetUpperBound returns the guaranteed upper bound frequency of the given
// item: a number no smaller than the real frequency.
func (s *ItemsSketch[C]) GetUpperBound(item C) int64 {
	itemCount, _ := s.hashMap.get(item)
	return itemCount + s.offset
}

// GetMaximumError returns an upper bound on the maximum error of
// GetEstimate for any item. This is the maximum distance between the upper
// and lower bound of any item.
func (s *ItemsSketch[C]) GetMaximumError() int64 {
	return s.offset
}

// Update this sketch with an item and a frequency count of one.
func (s *ItemsSketch[C]) Update(item C) error {
	return s.UpdateMany(item, 1)
}

// UpdateMany updates this sketch with an item and a positive frequency
// count (or weight). A count of zero is a no-op; a negative count is an
// error.
func (s *ItemsSketch[C]) UpdateMany(item C, count int64) error {
	if count == 0 {
		return nil
	}
	if count < 0 {
		return errors.New("count may not be negative")
	}
	s.streamWeight += count
	if err := s.hashMap.adjustOrPutValue(item, count); err != nil {
		return err
	}

	if s.hashMap.numActive > s.curMapCap {
		// Over the threshold, we need to do something
		if s.hashMap.lgLength < s.lgMaxMapSize {
			// Below tgt size, we can grow
			if err := s.hashMap.resize(2 * len(s.hashMap.keys)); err != nil {
				return err
			}
			s.curMapCap = s.hashMap.getCapacity()
		} else {
			// At tgt size, must purge
			s.offset += s.hashMap.purge(s.sampleSize)
			if s.GetNumActiveItems() > s.GetMaximumMapCapacity() {
				return errors.New("purge did not reduce active items")
			}
		}
	}
	return nil
}

// Merge merges the other sketch into this one. The other sketch may be of a
// different size. The resulting sketch is within the guarantees of the
// larger error tolerance of the two.
func (s *ItemsSketch[C]) Merge(other *ItemsSketch[C]) (*ItemsSketch[C], error) {
	if other == nil || other.IsEmpty() {
		return s, nil
	}
	streamWt := s.streamWeight + other.streamWeight // capture before merge
	iter := other.hashMap.iterator()
	for iter.next() {
		if err := s.UpdateMany(iter.getKey(), iter.getValue()); err != nil {
			return nil, err
		}
	}
	s.offset += other.offset
	s.streamWeight = streamWt // corrected streamWeight
	return s, nil
}

// GetFrequentItems returns frequent items using the sketch maximum error as
// the threshold. This is the same as
// GetFrequentItemsWithThreshold(GetMaximumError(), errorType).
func (s *ItemsSketch[C]) GetFrequentItems(errorType ErrorType) []*Row[C] {
	return s.sortItems(s.GetMaximumError(), errorType)
}

// GetFrequentItemsWithThreshold returns rows of frequent items, estimates,
// upper and lower bounds given a threshold and an ErrorType. If the
// threshold is lower than GetMaximumError(), GetMaximumError() is used
// instead.
//
// If errorType is NoFalseNegatives, an item is included when its upper
// bound exceeds the threshold: no Type II error, possible false positives.
// If errorType is NoFalsePositives, an item is included when its lower
// bound exceeds the threshold: no Type I error, possible false negatives.
func (s *ItemsSketch[C]) GetFrequentItemsWithThreshold(threshold int64, errorType ErrorType) []*Row[C] {
	finalThreshold := max(threshold, s.GetMaximumError())
	return s.sortItems(finalThreshold, errorType)
}

func (s *ItemsSketch[C]) sortItems(threshold int64, errorType ErrorType) []*Row[C] {
	rowList := make([]*Row[C], 0)
	iter := s.hashMap.iterator()
	for iter.next() {
		lb := iter.getValue()
		ub := iter.getValue() + s.offset
		var include bool
		if errorType == NoFalseNegatives {
			include = ub > threshold
		} else { // NoFalsePositives
			include = lb > threshold
		}
		if include {
			rowList = append(rowList, newRow(iter.getKey(), ub, ub, lb))
		}
	}

	sort.SliceStable(rowList, func(i, j int) bool {
		return rowList[i].est > rowList[j].est
	})

	return rowList
}

// Reset resets this sketch to a virgin state.
func (s *ItemsSketch[C]) Reset() {
	hashMap, _ := newReversePurgeHashMap(1<<_LG_MIN_MAP_SIZE, s.hashMap.hasher)
	s.curMapCap = hashMap.getCapacity()
	s.offset = 0
	s.streamWeight = 0
	s.hashMap = hashMap
}

// ToSlice returns the serialized representation of this sketch.
func (s *ItemsSketch[C]) ToSlice() []byte {
	if s.IsEmpty() {
		w := internal.NewSketchWriter(8)
		w.WriteU8(_PREAMBLE_LONGS_EMPTY)
		w.WriteU8(_SER_VER)
		w.WriteU8(uint8(internal.FamilyEnum.Frequency.Id))
		w.WriteU8(uint8(s.lgMaxMapSize))
		w.WriteU8(uint8(s.hashMap.lgLength))
		w.WriteU8(_EMPTY_FLAG_MASK)
		w.WriteU16LE(0)
		return w.Bytes()
	}

	activeItems := s.GetNumActiveItems()
	itemBytes := s.serde.SerializeManyToSlice(s.hashMap.getActiveKeys())

	w := internal.NewSketchWriter(_PREAMBLE_LONGS_NONEMPTY*8 + activeItems*8 + len(itemBytes))
	w.WriteU8(_PREAMBLE_LONGS_NONEMPTY)
	w.WriteU8(_SER_VER)
	w.WriteU8(uint8(internal.FamilyEnum.Frequency.Id))
	w.WriteU8(uint8(s.lgMaxMapSize))
	w.WriteU8(uint8(s.hashMap.lgLength))
	w.WriteU8(0) // flags
	w.WriteU16LE(0)

	w.WriteU32LE(uint32(activeItems))
	w.WriteU32LE(0)
	w.WriteU64LE(uint64(s.streamWeight))
	w.WriteU64LE(uint64(s.offset))

	for _, value := range s.hashMap.getActiveValues() {
		w.WriteU64LE(uint64(value))
	}
	w.Write(itemBytes)

	return w.Bytes()
}

// DeserializeLongsSketch reconstructs an int64 ItemsSketch from bytes.
func DeserializeLongsSketch(bytes []byte) (*ItemsSketch[int64], error) {
	return DeserializeItemsSketch[int64](bytes, common.ItemSketchLongHasher{}, common.ItemSketchLongSerDe{})
}

// DeserializeStringsSketch reconstructs a string ItemsSketch from bytes.
func DeserializeStringsSketch(bytes []byte) (*ItemsSketch[string], error) {
	return DeserializeItemsSketch[string](bytes, common.ItemSketchStringHasher{}, common.ItemSketchStringSerDe{})
}

// DeserializeItemsSketch reconstructs an ItemsSketch from bytes, validating
// every header field before populating state.
func DeserializeItemsSketch[C comparable](bytes []byte, hasher common.ItemSketchHasher[C], serde common.ItemSketchSerde[C]) (*ItemsSketch[C], error) {
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
	lgMaxMapSize, err := r.ReadU8("lg_max_map_size")
	if err != nil {
		return nil, err
	}
	lgCurMapSize, err := r.ReadU8("lg_cur_map_size")
	if err != nil {
		return nil, err
	}
	flags, err := r.ReadU8("flags")
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadU16LE("<unused_u16>"); err != nil {
		return nil, err
	}

	if serVer != _SER_VER {
		return nil, fmt.Errorf("unsupported serial version: expected %d, got %d", _SER_VER, serVer)
	}
	if err := internal.FamilyEnum.Frequency.ValidateId(int(familyID)); err != nil {
		return nil, err
	}
	if lgCurMapSize > lgMaxMapSize {
		return nil, errors.New("lg_cur_map_size exceeds lg_max_map_size")
	}

	empty := flags&_EMPTY_FLAG_MASK != 0
	if empty {
		if preLongs != _PREAMBLE_LONGS_EMPTY {
			return nil, fmt.Errorf("invalid preamble longs: expected %d for an empty sketch, got %d",
				_PREAMBLE_LONGS_EMPTY, preLongs)
		}
		return newItemsSketchWithLgSizes(int(lgMaxMapSize), int(lgCurMapSize), hasher, serde)
	}
	if preLongs != _PREAMBLE_LONGS_NONEMPTY {
		return nil, fmt.Errorf("invalid preamble longs: expected %d, got %d",
			_PREAMBLE_LONGS_NONEMPTY, preLongs)
	}

	activeItems, err := r.ReadU32LE("active_items")
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadU32LE("<unused_u32>"); err != nil {
		return nil, err
	}
	streamWeight, err := r.ReadU64LE("stream_weight")
	if err != nil {
		return nil, err
	}
	offset, err := r.ReadU64LE("offset")
	if err != nil {
		return nil, err
	}

	values := make([]int64, activeItems)
	for i := range values {
		v, err := r.ReadU64LE("values")
		if err != nil {
			return nil, err
		}
		values[i] = int64(v)
	}

	itemsOffset := len(bytes) - r.Remaining()
	items, err := serde.DeserializeManyFromSlice(bytes, itemsOffset, int(activeItems))
	if err != nil {
		return nil, err
	}
	if len(items) != int(activeItems) {
		return nil, errors.New("item count mismatch during deserialization")
	}

	sketch, err := newItemsSketchWithLgSizes(int(lgMaxMapSize), int(lgCurMapSize), hasher, serde)
	if err != nil {
		return nil, err
	}
	sketch.streamWeight = 0 // restored after repopulating
	for i, item := range items {
		if err := sketch.UpdateMany(item, values[i]); err != nil {
			return nil, err
		}
	}
	sketch.streamWeight = int64(streamWeight)
	sketch.offset = int64(offset)
	return sketch, nil
}

func (s *ItemsSketch[C]) String() string {
	var sb strings.Builder
	sb.WriteString("FrequentItemsSketch:\n")
	sb.WriteString("  Stream Length    : " + strconv.FormatInt(s.streamWeight, 10) + "\n")
	sb.WriteString("  Max Error Offset : " + strconv.FormatInt(s.offset, 10) + "\n")
	sb.WriteString(s.hashMap.String())
	return sb.String()
}
