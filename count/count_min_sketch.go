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

// Package count implements the CountMin sketch data structure of Cormode and
// Muthukrishnan for approximate frequency estimation.
// [1] - http://dimacs.rutgers.edu/~graham/pubs/papers/cm-full.pdf
package count

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/streamhaus/sketches-go/internal"
	"github.com/twmb/murmur3"
)

const serialVersion1 = 1

const flagIsEmpty = 0 // bit position

// CountMinSketch is a d x w matrix of counters of type V. Items inserted
// into the sketch can be of arbitrary type, so long as they are hashable;
// update and estimate methods are provided for byte slices, uint64 and
// string.
type CountMinSketch[V Value] struct {
	numBuckets  int32 // counter array size for each of the hashing functions
	numHashes   int8  // number of hashing functions
	sketchSlice []V
	seed        int64
	totalWeight V
	hashSeeds   []int64
}

// NewCountMinSketch creates a CountMin sketch with numHashes rows of
// numBuckets counters each, using the default update seed.
func NewCountMinSketch[V Value](numHashes int8, numBuckets int32) (*CountMinSketch[V], error) {
	return NewCountMinSketchWithSeed[V](numHashes, numBuckets, int64(internal.DEFAULT_UPDATE_SEED))
}

// NewCountMinSketchWithSeed creates a CountMin sketch given parameters
// numHashes, numBuckets and hash seed.
func NewCountMinSketchWithSeed[V Value](numHashes int8, numBuckets int32, seed int64) (*CountMinSketch[V], error) {
	if numHashes < 1 {
		return nil, errors.New("num_hashes must be at least 1")
	}
	if numBuckets < 3 {
		return nil, errors.New("using fewer than 3 buckets incurs relative error greater than 1.0")
	}
	if int64(numBuckets)*int64(numHashes) >= 1<<30 {
		return nil, errors.New("these parameters generate a sketch that exceeds 2^30 elements")
	}

	// d pairwise-independent hash functions are derived from the seed
	rng := rand.New(rand.NewSource(seed))
	hashSeeds := make([]int64, numHashes)
	for i := range int(numHashes) {
		hashSeeds[i] = int64(rng.Int()) + seed
	}

	sketchSize := int(numBuckets) * int(numHashes)

	return &CountMinSketch[V]{
		numBuckets:  numBuckets,
		numHashes:   numHashes,
		sketchSlice: make([]V, sketchSize),
		seed:        seed,
		hashSeeds:   hashSeeds,
	}, nil
}

func (c *CountMinSketch[V]) GetNumBuckets() int32 {
	return c.numBuckets
}

func (c *CountMinSketch[V]) GetNumHashes() int8 {
	return c.numHashes
}

func (c *CountMinSketch[V]) GetTotalWeight() V {
	return c.totalWeight
}

func (c *CountMinSketch[V]) GetSeed() int64 {
	return c.seed
}

// GetRelativeError returns the error bound epsilon = e / num_buckets.
func (c *CountMinSketch[V]) GetRelativeError() float64 {
	return math.Exp(1.0) / float64(c.numBuckets)
}

// IsEmpty returns true if the sketch has seen no updates.
func (c *CountMinSketch[V]) IsEmpty() bool {
	return c.totalWeight == 0
}

func (c *CountMinSketch[V]) getHashes(item []byte) []int64 {
	sketchUpdateLocations := make([]int64, c.numHashes)

	for i, s := range c.hashSeeds {
		h1, _ := murmur3.SeedSum128(uint64(s), uint64(s), item)
		bucketIndex := h1 % uint64(c.numBuckets)
		sketchUpdateLocations[i] = int64(i)*int64(c.numBuckets) + int64(bucketIndex)
	}

	return sketchUpdateLocations
}

// Update adds a weight of one for the given item.
func (c *CountMinSketch[V]) Update(item []byte) {
	var one V = 1
	c.UpdateWithWeight(item, one)
}

// UpdateWithWeight adds the given weight for the item to each of the
// numHashes hashed buckets. The total weight grows by |weight|.
func (c *CountMinSketch[V]) UpdateWithWeight(item []byte, weight V) {
	if len(item) == 0 {
		return
	}

	c.totalWeight += valueAbs(weight)

	for _, h := range c.getHashes(item) {
		c.sketchSlice[h] += weight
	}
}

// UpdateUint64 updates the sketch with an unsigned 64-bit item.
func (c *CountMinSketch[V]) UpdateUint64(item uint64, weight V) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], item)
	c.UpdateWithWeight(b[:], weight)
}

// UpdateString updates the sketch with a string item.
func (c *CountMinSketch[V]) UpdateString(item string, weight V) {
	if len(item) == 0 {
		return
	}
	c.UpdateWithWeight([]byte(item), weight)
}

// GetEstimate returns the estimated frequency of the item: the counter of
// minimum magnitude among the numHashes hashed buckets. The estimate never
// underestimates the true count.
func (c *CountMinSketch[V]) GetEstimate(item []byte) V {
	var zero V
	if len(item) == 0 {
		return zero
	}

	hashLocations := c.getHashes(item)
	estimate := c.sketchSlice[hashLocations[0]]
	for _, h := range hashLocations[1:] {
		if valueAbs(c.sketchSlice[h]) < valueAbs(estimate) {
			estimate = c.sketchSlice[h]
		}
	}
	return estimate
}

// GetEstimateUint64 returns the estimate for an unsigned 64-bit item.
func (c *CountMinSketch[V]) GetEstimateUint64(item uint64) V {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], item)
	return c.GetEstimate(b[:])
}

// GetEstimateString returns the estimate for a string item.
func (c *CountMinSketch[V]) GetEstimateString(item string) V {
	var zero V
	if len(item) == 0 {
		return zero
	}
	return c.GetEstimate([]byte(item))
}

func (c *CountMinSketch[V]) errorMargin() V {
	return valueFromF64[V](c.GetRelativeError() * valueToF64(c.totalWeight))
}

// GetUpperBound returns estimate + epsilon * total_weight.
func (c *CountMinSketch[V]) GetUpperBound(item []byte) V {
	return c.GetEstimate(item) + c.errorMargin()
}

// GetUpperBoundUint64 returns the upper bound for an unsigned 64-bit item.
func (c *CountMinSketch[V]) GetUpperBoundUint64(item uint64) V {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], item)
	return c.GetUpperBound(b[:])
}

// GetLowerBound returns estimate - epsilon * total_weight, clamped so
// unsigned counters do not wrap below zero.
func (c *CountMinSketch[V]) GetLowerBound(item []byte) V {
	estimate := c.GetEstimate(item)
	margin := c.errorMargin()
	if !valueIsSigned[V]() && margin > estimate {
		var zero V
		return zero
	}
	return estimate - margin
}

// GetLowerBoundUint64 returns the lower bound for an unsigned 64-bit item.
func (c *CountMinSketch[V]) GetLowerBoundUint64(item uint64) V {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], item)
	return c.GetLowerBound(b[:])
}

// Halve divides every counter by 2, truncating toward zero.
func (c *CountMinSketch[V]) Halve() {
	for i := range c.sketchSlice {
		c.sketchSlice[i] /= 2
	}
	c.totalWeight /= 2
}

// Decay multiplies every counter by decay in (0, 1], truncating the result
// toward zero.
func (c *CountMinSketch[V]) Decay(decay float64) error {
	if decay <= 0 || decay > 1 {
		return errors.New("decay factor must be in (0, 1]")
	}
	for i := range c.sketchSlice {
		c.sketchSlice[i] = valueFromF64[V](valueToF64(c.sketchSlice[i]) * decay)
	}
	c.totalWeight = valueFromF64[V](valueToF64(c.totalWeight) * decay)
	return nil
}

// Merge adds the counters of another sketch into this one element-wise.
// The sketches must agree on numHashes, numBuckets and seed.
func (c *CountMinSketch[V]) Merge(other *CountMinSketch[V]) error {
	if c == other {
		return errors.New("cannot merge sketch with itself")
	}

	canMerge := c.GetNumHashes() == other.GetNumHashes() &&
		c.GetNumBuckets() == other.GetNumBuckets() &&
		c.GetSeed() == other.GetSeed()

	if !canMerge {
		return errors.New("sketches are incompatible")
	}

	for i := range c.sketchSlice {
		c.sketchSlice[i] += other.sketchSlice[i]
	}
	c.totalWeight += other.totalWeight

	return nil
}

// Serialize writes the sketch into a byte image. Empty sketches omit the
// counter block.
func (c *CountMinSketch[V]) Serialize() ([]byte, error) {
	seedHash, err := internal.ComputeSeedHash(uint64(c.seed))
	if err != nil {
		return nil, err
	}

	size := 16
	if !c.IsEmpty() {
		size += 8 + len(c.sketchSlice)*8
	}
	w := internal.NewSketchWriter(size)

	w.WriteU8(uint8(internal.FamilyEnum.CountMin.MinPreLongs))
	w.WriteU8(serialVersion1)
	w.WriteU8(uint8(internal.FamilyEnum.CountMin.Id))
	var flags uint8
	if c.IsEmpty() {
		flags |= 1 << flagIsEmpty
	}
	w.WriteU8(flags)
	w.WriteU32LE(0) // unused

	w.WriteU32LE(uint32(c.numBuckets))
	w.WriteU8(uint8(c.numHashes))
	w.WriteU16LE(seedHash)
	w.WriteU8(valueTypeTag[V]())

	if c.IsEmpty() {
		return w.Bytes(), nil
	}

	w.WriteU64LE(valueToWire(c.totalWeight))
	for _, counter := range c.sketchSlice {
		w.WriteU64LE(valueToWire(counter))
	}

	return w.Bytes(), nil
}

// DeserializeCountMinSketch reconstructs a sketch from a byte image,
// validating the header and that the embedded value-type tag matches V.
// The provided seed must be the one the sketch was built with.
func DeserializeCountMinSketch[V Value](bytes []byte, seed int64) (*CountMinSketch[V], error) {
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
	flags, err := r.ReadU8("flags")
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadU32LE("<unused_u32>"); err != nil {
		return nil, err
	}

	if err := internal.FamilyEnum.CountMin.ValidateId(int(familyID)); err != nil {
		return nil, err
	}
	if err := internal.FamilyEnum.CountMin.ValidatePreLongs(int(preLongs)); err != nil {
		return nil, err
	}
	if serVer != serialVersion1 {
		return nil, fmt.Errorf("unsupported serial version: expected %d, got %d", serialVersion1, serVer)
	}

	numBuckets, err := r.ReadU32LE("num_buckets")
	if err != nil {
		return nil, err
	}
	numHashes, err := r.ReadU8("num_hashes")
	if err != nil {
		return nil, err
	}
	seedHash, err := r.ReadU16LE("seed_hash")
	if err != nil {
		return nil, err
	}
	typeTag, err := r.ReadU8("value_type")
	if err != nil {
		return nil, err
	}

	expectedSeedHash, err := internal.ComputeSeedHash(uint64(seed))
	if err != nil {
		return nil, err
	}
	if seedHash != expectedSeedHash {
		return nil, fmt.Errorf("seed hash mismatch: expected %v, actual %v", expectedSeedHash, seedHash)
	}
	if typeTag != valueTypeTag[V]() {
		return nil, fmt.Errorf("value type mismatch: expected tag %d, actual %d", valueTypeTag[V](), typeTag)
	}

	cms, err := NewCountMinSketchWithSeed[V](int8(numHashes), int32(numBuckets), seed)
	if err != nil {
		return nil, err
	}

	if flags&(1<<flagIsEmpty) != 0 {
		return cms, nil
	}

	rawWeight, err := r.ReadU64LE("total_weight")
	if err != nil {
		return nil, err
	}
	cms.totalWeight, err = valueFromWire[V](rawWeight)
	if err != nil {
		return nil, err
	}

	for i := range cms.sketchSlice {
		raw, err := r.ReadU64LE("counters")
		if err != nil {
			return nil, err
		}
		cms.sketchSlice[i], err = valueFromWire[V](raw)
		if err != nil {
			return nil, err
		}
	}

	return cms, nil
}
