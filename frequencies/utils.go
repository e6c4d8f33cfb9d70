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

// Package frequencies is dedicated to streaming algorithms that enable
// estimation of the frequency of occurrence of items in a weighted multiset
// stream of items. If the frequency distribution of items is sufficiently
// skewed, these algorithms are very useful in identifying the "Heavy
// Hitters" that occurred most frequently in the stream. The accuracy of the
// estimation of the frequency of an item has well understood error bounds
// that can be returned by the sketch.
package frequencies

import (
	"errors"

	"github.com/streamhaus/sketches-go/internal"
)

const (
	// _LG_MIN_MAP_SIZE controls the size of the initial data structure for
	// the frequencies sketches and its value is somewhat arbitrary.
	_LG_MIN_MAP_SIZE = 3
	// _SAMPLE_SIZE is large enough so that computing the median of
	// SAMPLE_SIZE randomly selected entries from a list of numbers and
	// outputting the empirical median will give a constant-factor
	// approximation to the true median with high probability.
	_SAMPLE_SIZE = 1024
	// epsilonFactor fixes the worst-case per-item error rate at
	// 3.5 / max_map_size.
	epsilonFactor = 3.5
)

// ErrorType selects the guarantee of a frequent-items query.
type ErrorType int

const (
	// NoFalsePositives includes an item only when its lower bound exceeds
	// the threshold. There will be no Type I error; items with true
	// frequencies above the threshold may be omitted.
	NoFalsePositives ErrorType = iota + 1
	// NoFalseNegatives includes an item when its upper bound exceeds the
	// threshold. There will be no Type II error; items with true
	// frequencies below the threshold may be included.
	NoFalseNegatives
)

// GetEpsilon returns epsilon used to compute a priori error.
// This is just the value 3.5 / maxMapSize.
func GetEpsilon(maxMapSize int) (float64, error) {
	if !internal.IsPowerOf2(maxMapSize) {
		return 0, errors.New("maxMapSize is not a power of 2")
	}
	return epsilonFactor / float64(maxMapSize), nil
}

// GetAprioriError returns the estimated a priori error given the maxMapSize
// for the sketch and the estimated total stream weight.
func GetAprioriError(maxMapSize int, estimatedTotalStreamWeight int64) (float64, error) {
	epsilon, err := GetEpsilon(maxMapSize)
	if err != nil {
		return 0, err
	}
	return epsilon * float64(estimatedTotalStreamWeight), nil
}
