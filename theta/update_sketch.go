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
	"iter"
	"math"
	"strings"

	"github.com/streamhaus/sketches-go/internal"
	"github.com/streamhaus/sketches-go/internal/binomialbounds"
)

var (
	ErrUpdateEmptyString = errors.New("cannot update empty string")
	ErrDuplicateKey      = errors.New("duplicate key")
)

// UpdateSketch is a mutable Theta sketch built from input data via the
// update() methods. Snapshot it with Compact to query or serialize.
type UpdateSketch struct {
	table *Hashtable
}

type updateSketchOptions struct {
	theta     uint64
	seed      uint64
	p         float32
	lgCurSize uint8
	lgK       uint8
	rf        ResizeFactor
}

type UpdateSketchOptionFunc func(*updateSketchOptions)

// WithUpdateSketchLgK sets log2(k), where k is a nominal number of entries in the sketch
func WithUpdateSketchLgK(lgK uint8) UpdateSketchOptionFunc {
	return func(opts *updateSketchOptions) {
		opts.lgK = lgK
	}
}

// WithUpdateSketchResizeFactor sets a resize factor for the internal hash table (defaults to 8)
func WithUpdateSketchResizeFactor(rf ResizeFactor) UpdateSketchOptionFunc {
	return func(opts *updateSketchOptions) {
		opts.rf = rf
	}
}

// WithUpdateSketchP sets sampling probability (initial theta). The default is 1, so the sketch retains
// all entries until it reaches the limit, at which point it goes into the estimation mode
// and reduces the effective sampling probability (theta) as necessary
func WithUpdateSketchP(p float32) UpdateSketchOptionFunc {
	return func(opts *updateSketchOptions) {
		opts.p = p
	}
}

// WithUpdateSketchSeed sets the seed for the hash function. Should be used carefully if needed.
// Sketches produced with different seed are not compatible
// and cannot be mixed in set operations.
func WithUpdateSketchSeed(seed uint64) UpdateSketchOptionFunc {
	return func(opts *updateSketchOptions) {
		opts.seed = seed
	}
}

// NewUpdateSketch creates a new update sketch with the given options
func NewUpdateSketch(opts ...UpdateSketchOptionFunc) (*UpdateSketch, error) {
	options := &updateSketchOptions{
		lgK:  DefaultLgK,
		rf:   DefaultResizeFactor,
		p:    1.0,
		seed: DefaultSeed,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.lgK < MinLgK {
		return nil, fmt.Errorf("lg_k must not be less than %d: %d", MinLgK, options.lgK)
	}
	if options.lgK > MaxLgK {
		return nil, fmt.Errorf("lg_k must not be greater than %d: %d", MaxLgK, options.lgK)
	}
	if options.p <= 0 || options.p > 1 {
		return nil, errors.New("sampling probability must be between 0 and 1")
	}

	options.lgCurSize = startingSubMultiple(options.lgK+1, MinLgK, uint8(options.rf))
	options.theta = startingThetaFromP(options.p)

	return &UpdateSketch{
		table: NewHashtable(
			options.lgCurSize, options.lgK, options.rf, options.p, options.theta, options.seed, true,
		),
	}, nil
}

// IsEmpty returns true if this sketch represents an empty set
// (not the same as no retained entries!)
func (s *UpdateSketch) IsEmpty() bool {
	return s.table.isEmpty
}

// IsOrdered returns true if retained entries are ordered
func (s *UpdateSketch) IsOrdered() bool {
	return s.table.numEntries <= 1
}

// Theta64 returns theta as a positive integer between 0 and math.MaxInt64
func (s *UpdateSketch) Theta64() uint64 {
	if s.IsEmpty() {
		return MaxTheta
	}
	return s.table.theta
}

// NumRetained returns the number of retained entries in the sketch
func (s *UpdateSketch) NumRetained() uint32 {
	return s.table.numEntries
}

// SeedHash returns hash of the seed that was used to hash the input
func (s *UpdateSketch) SeedHash() (uint16, error) {
	return internal.ComputeSeedHash(s.table.seed)
}

// Estimate returns estimate of the distinct count of the input stream
func (s *UpdateSketch) Estimate() float64 {
	if s.IsEmpty() {
		return 0
	}
	return float64(s.NumRetained()) / s.Theta()
}

// LowerBound returns the approximate lower error bound given a number of standard deviations.
// This parameter is similar to the number of standard deviations of the normal distribution
// and corresponds to approximately 67%, 95% and 99% confidence intervals.
// numStdDevs number of Standard Deviations (1, 2 or 3)
func (s *UpdateSketch) LowerBound(numStdDevs uint8) (float64, error) {
	if !s.IsEstimationMode() {
		return float64(s.NumRetained()), nil
	}
	return binomialbounds.LowerBound(uint64(s.NumRetained()), s.Theta(), uint(numStdDevs))
}

// UpperBound returns the approximate upper error bound given a number of standard deviations.
// This parameter is similar to the number of standard deviations of the normal distribution
// and corresponds to approximately 67%, 95% and 99% confidence intervals.
// numStdDevs number of Standard Deviations (1, 2 or 3)
func (s *UpdateSketch) UpperBound(numStdDevs uint8) (float64, error) {
	if !s.IsEstimationMode() {
		return float64(s.NumRetained()), nil
	}
	return binomialbounds.UpperBound(uint64(s.NumRetained()), s.Theta(), uint(numStdDevs))
}

// IsEstimationMode returns true if the sketch is in estimation mode
// (as opposed to exact mode)
func (s *UpdateSketch) IsEstimationMode() bool {
	return s.Theta64() < MaxTheta && !s.IsEmpty()
}

// Theta returns theta as a fraction from 0 to 1 (effective sampling rate)
func (s *UpdateSketch) Theta() float64 {
	return float64(s.Theta64()) / float64(MaxTheta)
}

// String returns a human-readable summary of this sketch as a string
// If shouldPrintItems is true, include the list of items retained by the sketch
func (s *UpdateSketch) String(shouldPrintItems bool) string {
	seedHash, _ := s.SeedHash()
	lb, _ := s.LowerBound(2)
	ub, _ := s.UpperBound(2)

	var result strings.Builder
	result.WriteString("### Theta sketch summary:\n")
	result.WriteString(fmt.Sprintf("   num retained entries : %d\n", s.NumRetained()))
	result.WriteString(fmt.Sprintf("   seed hash            : %d\n", seedHash))
	result.WriteString(fmt.Sprintf("   empty?               : %t\n", s.IsEmpty()))
	result.WriteString(fmt.Sprintf("   ordered?             : %t\n", s.IsOrdered()))
	result.WriteString(fmt.Sprintf("   estimation mode?     : %t\n", s.IsEstimationMode()))
	result.WriteString(fmt.Sprintf("   theta (fraction)     : %f\n", s.Theta()))
	result.WriteString(fmt.Sprintf("   theta (raw 64-bit)   : %d\n", s.Theta64()))
	result.WriteString(fmt.Sprintf("   estimate             : %f\n", s.Estimate()))
	result.WriteString(fmt.Sprintf("   lower bound 95%% conf : %f\n", lb))
	result.WriteString(fmt.Sprintf("   upper bound 95%% conf : %f\n", ub))
	result.WriteString(fmt.Sprintf("   lg nominal size      : %d\n", s.LgK()))
	result.WriteString(fmt.Sprintf("   lg current size      : %d\n", s.table.lgCurSize))
	result.WriteString(fmt.Sprintf("   resize factor        : %d\n", 1<<s.ResizeFactor()))
	result.WriteString("### End sketch summary\n")

	if shouldPrintItems {
		result.WriteString("### Retained entries\n")

		for hash := range s.All() {
			result.WriteString(fmt.Sprintf("%d\n", hash))
		}

		result.WriteString("### End retained entries\n")
	}

	return result.String()
}

// LgK returns configured nominal number of entries in the sketch
func (s *UpdateSketch) LgK() uint8 {
	return s.table.lgNomSize
}

// ResizeFactor returns a configured resize factor of the sketch
func (s *UpdateSketch) ResizeFactor() ResizeFactor {
	return s.table.rf
}

func (s *UpdateSketch) insertScreened(hash uint64, err error) error {
	if err != nil {
		return err
	}

	index, err := s.table.Find(hash)
	if err != nil {
		if err == ErrKeyNotFound {
			s.table.Insert(index, hash)
			return nil
		}
		return err
	}

	return ErrDuplicateKey
}

// UpdateUint64 updates this sketch with a given unsigned 64-bit integer
func (s *UpdateSketch) UpdateUint64(value uint64) error {
	return s.UpdateInt64(int64(value))
}

// UpdateInt64 updates this sketch with a given signed 64-bit integer
func (s *UpdateSketch) UpdateInt64(value int64) error {
	return s.insertScreened(s.table.HashInt64AndScreen(value))
}

// UpdateInt32 updates this sketch with a given signed 32-bit integer
func (s *UpdateSketch) UpdateInt32(value int32) error {
	return s.UpdateInt64(int64(value))
}

// UpdateUint32 updates this sketch with a given unsigned 32-bit integer
func (s *UpdateSketch) UpdateUint32(value uint32) error {
	return s.UpdateInt64(int64(value))
}

// UpdateFloat64 updates this sketch with a given double-precision floating point value
func (s *UpdateSketch) UpdateFloat64(value float64) error {
	return s.UpdateInt64(canonicalDouble(value))
}

// UpdateFloat32 updates this sketch with a given floating point value
func (s *UpdateSketch) UpdateFloat32(value float32) error {
	return s.UpdateFloat64(float64(value))
}

// canonicalDouble collapses -0.0 to +0.0 and every NaN to the fixed bit
// pattern so stable hashes result regardless of how the caller produced
// their floating value.
func canonicalDouble(value float64) int64 {
	if value == 0.0 {
		value = 0.0 // canonicalize -0.0 to 0.0
	} else if math.IsNaN(value) {
		return 0x7ff8000000000000
	}
	return int64(math.Float64bits(value))
}

// UpdateString updates this sketch with a given string
func (s *UpdateSketch) UpdateString(value string) error {
	if value == "" {
		return ErrUpdateEmptyString
	}
	return s.insertScreened(s.table.HashStringAndScreen(value))
}

// UpdateBytes updates this sketch with given data
func (s *UpdateSketch) UpdateBytes(data []byte) error {
	return s.insertScreened(s.table.HashBytesAndScreen(data))
}

// Trim removes retained entries in excess of the nominal size k (if any)
func (s *UpdateSketch) Trim() {
	s.table.Trim()
}

// Reset resets the sketch to the initial empty state
func (s *UpdateSketch) Reset() {
	s.table.Reset()
}

// All returns an iterator over hash values in this sketch
func (s *UpdateSketch) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, entry := range s.table.entries {
			if entry != 0 {
				if !yield(entry) {
					return
				}
			}
		}
	}
}

// Compact returns this sketch in its immutable, serializable form.
// If ordered is true, retained hashes are sorted ascending.
func (s *UpdateSketch) Compact(ordered bool) *CompactSketch {
	return NewCompactSketch(s, ordered)
}

// CompactOrdered is shorthand for Compact(true).
func (s *UpdateSketch) CompactOrdered() *CompactSketch {
	return s.Compact(true)
}
