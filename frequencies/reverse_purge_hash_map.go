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
	"math/bits"
	"strings"

	"github.com/streamhaus/sketches-go/common"
	"github.com/streamhaus/sketches-go/internal"
)

const (
	reversePurgeHashMapLoadFactor = float64(0.75)
	// reversePurgeHashMapDriftLimit bounds the linear probe length; inserts
	// and deletes that reach it return an error.
	reversePurgeHashMapDriftLimit = 1024
	// maxSampleSize caps the number of values sampled for the purge median.
	maxSampleSize = 1024
)

// reversePurgeHashMap is a linear-probing hash map of (item, count) pairs
// with a backward-shift delete, which lets a purge remove entries from the
// tails of probe clusters toward their heads. The states array is the
// authority on occupancy: states[i] == 0 marks an empty slot, otherwise it
// holds the probe drift + 1.
type reversePurgeHashMap[C comparable] struct {
	lgLength      int
	loadThreshold int
	keys          []C
	values        []int64
	states        []int16
	numActive     int
	hasher        common.ItemSketchHasher[C]
}

type iteratorHashMap[C comparable] struct {
	keys_      []C
	values_    []int64
	states_    []int16
	numActive_ int
	stride_    int
	mask_      int
	i_         int
	count_     int
}

// newReversePurgeHashMap constructs a map with arrays of length mapSize,
// which must be a power of two. The load threshold is the largest number of
// keys that will not overload the table.
func newReversePurgeHashMap[C comparable](mapSize int, hasher common.ItemSketchHasher[C]) (*reversePurgeHashMap[C], error) {
	lgLength, err := internal.ExactLog2(mapSize)
	if err != nil {
		return nil, fmt.Errorf("mapSize: %w", err)
	}
	return &reversePurgeHashMap[C]{
		lgLength:      lgLength,
		loadThreshold: int(float64(mapSize) * reversePurgeHashMapLoadFactor),
		keys:          make([]C, mapSize),
		values:        make([]int64, mapSize),
		states:        make([]int16, mapSize),
		hasher:        hasher,
	}, nil
}

// get returns the count stored for key and whether the key is present.
func (r *reversePurgeHashMap[C]) get(key C) (int64, bool) {
	probe := r.hashProbe(key)
	if r.states[probe] > 0 && r.keys[probe] == key {
		return r.values[probe], true
	}
	return 0, false
}

// getCapacity returns the max number of keys that can be stored before a
// resize or purge.
func (r *reversePurgeHashMap[C]) getCapacity() int {
	return r.loadThreshold
}

// adjustOrPutValue increments the value mapped to the key if the key is
// present in the map, otherwise inserts the key with adjustAmount.
func (r *reversePurgeHashMap[C]) adjustOrPutValue(key C, adjustAmount int64) error {
	var (
		arrayMask = len(r.keys) - 1
		probe     = int(r.hasher.Hash(key)) & arrayMask
		drift     = 1
	)
	for r.states[probe] != 0 && r.keys[probe] != key {
		probe = (probe + 1) & arrayMask
		drift++
		if drift >= reversePurgeHashMapDriftLimit {
			return errors.New("drift >= driftLimit")
		}
	}
	// found either an empty slot or the key
	if r.states[probe] == 0 { // found empty slot
		if r.numActive > r.loadThreshold {
			return errors.New("numActive > loadThreshold")
		}
		r.keys[probe] = key
		r.values[probe] = adjustAmount
		r.states[probe] = int16(drift) // how far off we are
		r.numActive++
	} else { // found the key, adjust the value
		r.values[probe] += adjustAmount
	}
	return nil
}

func (r *reversePurgeHashMap[C]) resize(newSize int) error {
	oldKeys := r.keys
	oldValues := r.values
	oldStates := r.states
	r.keys = make([]C, newSize)
	r.values = make([]int64, newSize)
	r.states = make([]int16, newSize)
	r.loadThreshold = int(float64(newSize) * reversePurgeHashMapLoadFactor)
	r.lgLength = bits.TrailingZeros(uint(newSize))
	r.numActive = 0
	err := error(nil)
	for i := 0; i < len(oldKeys) && err == nil; i++ {
		if oldStates[i] > 0 {
			err = r.adjustOrPutValue(oldKeys[i], oldValues[i])
		}
	}
	return err
}

// purge subtracts a sample median from every stored value and deletes every
// entry that drops to zero or below. It returns the subtracted median.
func (r *reversePurgeHashMap[C]) purge(sampleSize int) int64 {
	limit := min(sampleSize, r.numActive, maxSampleSize)
	numSamples := 0
	i := 0
	samples := make([]int64, limit)
	for numSamples < limit {
		if r.states[i] > 0 {
			samples[numSamples] = r.values[i]
			numSamples++
		}
		i++
	}

	val := internal.QuickSelect(samples, 0, numSamples-1, limit/2)
	r.adjustAllValuesBy(-1 * val)
	r.keepOnlyPositiveCounts()
	return val
}

// adjustAllValuesBy shifts all values by adjustAmount. Only keys
// corresponding to positive values are retained afterwards.
func (r *reversePurgeHashMap[C]) adjustAllValuesBy(adjustAmount int64) {
	for i := len(r.values); i > 0; {
		i--
		r.values[i] += adjustAmount
	}
}

func (r *reversePurgeHashMap[C]) keepOnlyPositiveCounts() {
	// Starting from the back, find the first empty cell, which marks a
	// boundary between clusters.
	firstProbe := len(r.keys) - 1
	for r.states[firstProbe] > 0 {
		firstProbe--
	}
	// Work towards the front; delete any non-positive entries.
	for probe := firstProbe; probe > 0; {
		probe--
		if r.states[probe] > 0 && r.values[probe] <= 0 {
			r.hashDelete(probe)
			r.numActive--
		}
	}
	// Now work on the first cluster that was skipped.
	for probe := len(r.keys); probe-1 > firstProbe; {
		probe--
		if r.states[probe] > 0 && r.values[probe] <= 0 {
			r.hashDelete(probe)
			r.numActive--
		}
	}
}

// hashDelete marks the slot empty, then backward-shifts subsequent cluster
// slots into earlier positions, decrementing their stored drift.
func (r *reversePurgeHashMap[C]) hashDelete(deleteProbe int) error {
	var zero C
	r.states[deleteProbe] = 0
	r.keys[deleteProbe] = zero
	drift := 1
	arrayMask := len(r.keys) - 1
	probe := (deleteProbe + drift) & arrayMask
	// advance until an empty location, moving entries as needed
	for r.states[probe] != 0 {
		if r.states[probe] > int16(drift) {
			r.keys[deleteProbe] = r.keys[probe]
			r.values[deleteProbe] = r.values[probe]
			r.states[deleteProbe] = r.states[probe] - int16(drift)
			r.states[probe] = 0
			r.keys[probe] = zero
			drift = 0
			deleteProbe = probe
		}
		probe = (probe + 1) & arrayMask
		drift++
		// a probe run this long is reported as an error
		if drift >= reversePurgeHashMapDriftLimit {
			return errors.New("drift >= driftLimit")
		}
	}
	return nil
}

func (r *reversePurgeHashMap[C]) getActiveValues() []int64 {
	if r.numActive == 0 {
		return nil
	}
	returnValues := make([]int64, 0, r.numActive)
	for i := 0; i < len(r.values); i++ {
		if r.states[i] > 0 { // isActive
			returnValues = append(returnValues, r.values[i])
		}
	}
	return returnValues
}

func (r *reversePurgeHashMap[C]) getActiveKeys() []C {
	if r.numActive == 0 {
		return nil
	}
	returnKeys := make([]C, 0, r.numActive)
	for i := 0; i < len(r.keys); i++ {
		if r.states[i] > 0 { // isActive
			returnKeys = append(returnKeys, r.keys[i])
		}
	}
	return returnKeys
}

func (r *reversePurgeHashMap[C]) iterator() *iteratorHashMap[C] {
	return newIterator(r.keys, r.values, r.states, r.numActive)
}

func (r *reversePurgeHashMap[C]) hashProbe(key C) int {
	arrayMask := len(r.keys) - 1
	probe := int(r.hasher.Hash(key)) & arrayMask
	for r.states[probe] > 0 && r.keys[probe] != key {
		probe = (probe + 1) & arrayMask
	}
	return probe
}

func (r *reversePurgeHashMap[C]) String() string {
	var sb strings.Builder
	sb.WriteString("ReversePurgeHashMap:\n")
	sb.WriteString(fmt.Sprintf("  %12s:%11s%20s %s\n", "Index", "States", "Values", "Keys"))
	for i := 0; i < len(r.keys); i++ {
		if r.states[i] <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %12d:%11d%20d %v\n", i, r.states[i], r.values[i], r.keys[i]))
	}
	return sb.String()
}

// newIterator visits active entries with a golden-ratio stride, giving a
// near-uniform visiting order. purge does not use it: it samples slots in
// index order.
func newIterator[C comparable](keys []C, values []int64, states []int16, numActive int) *iteratorHashMap[C] {
	stride := int(uint64(float64(len(keys))*internal.InverseGolden) | 1)
	return &iteratorHashMap[C]{
		keys_:      keys,
		values_:    values,
		states_:    states,
		numActive_: numActive,

		stride_: stride,
		mask_:   len(keys) - 1,
		i_:      -stride,
	}
}

func (it *iteratorHashMap[C]) next() bool {
	it.i_ = (it.i_ + it.stride_) & it.mask_
	for it.count_ < it.numActive_ {
		if it.states_[it.i_] > 0 {
			it.count_++
			return true
		}
		it.i_ = (it.i_ + it.stride_) & it.mask_
	}
	return false
}

func (it *iteratorHashMap[C]) getKey() C {
	return it.keys_[it.i_]
}

func (it *iteratorHashMap[C]) getValue() int64 {
	return it.values_[it.i_]
}
