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

package binomialbounds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerBound(t *testing.T) {
	testCases := []struct {
		name         string
		numSamples   uint64
		theta        float64
		numStdDevs   uint
		wantErrorMsg string
		validate     func(t *testing.T, result float64)
	}{
		{
			name:       "numSamples == 0",
			numSamples: 0, theta: 0.5, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.Zero(t, result)
			},
		},
		{
			name:       "theta == 1.0",
			numSamples: 100, theta: 1.0, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.Equal(t, 100.0, result)
			},
		},
		{
			name:       "numSamples == 1",
			numSamples: 1, theta: 0.5, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.GreaterOrEqual(t, result, 0.0)
			},
		},
		{
			name:       "numSamples > 120",
			numSamples: 500, theta: 0.5, numStdDevs: 3,
			validate: func(t *testing.T, result float64) {
				assert.GreaterOrEqual(t, result, 500.0)
				assert.LessOrEqual(t, result, 1000.0)
			},
		},
		{
			name:       "2 <= numSamples <= 120 AND theta > (1-1e-5)",
			numSamples: 50, theta: 1.0 - 1e-6, numStdDevs: 2,
			validate: func(t *testing.T, result float64) {
				assert.Greater(t, 50.0*0.01, math.Abs(result-50.0))
			},
		},
		{
			name:       "2 <= numSamples <= 120 AND theta < numSamples/360",
			numSamples: 100, theta: 0.001, numStdDevs: 2,
			validate: func(t *testing.T, result float64) {
				assert.GreaterOrEqual(t, result, 0.0)
			},
		},
		{
			name:       "2 <= numSamples <= 120 AND middle range theta (exact calculation)",
			numSamples: 10, theta: 0.5, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.GreaterOrEqual(t, result, 10.0)
				assert.LessOrEqual(t, result, 20.0)
			},
		},
		{
			name:       "theta=0",
			numSamples: 10, theta: 0.0, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.True(t, math.IsNaN(result) || math.IsInf(result, 1))
			},
		},
		{
			name:       "theta very close to 0",
			numSamples: 10, theta: 1e-10, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.GreaterOrEqual(t, result, 0.0)
			},
		},
		{
			name:       "estimate clamping case",
			numSamples: 10, theta: 0.9, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.LessOrEqual(t, result, 10.0/0.9)
			},
		},
		{
			name:       "invalid theta > 1",
			numSamples: 100, theta: 1.1, numStdDevs: 1,
			wantErrorMsg: "theta must be in [0, 1]",
		},
		{
			name:       "invalid stddev = 4",
			numSamples: 100, theta: 0.5, numStdDevs: 4,
			wantErrorMsg: "numStdDevs must be 1, 2 or 3",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := LowerBound(tc.numSamples, tc.theta, tc.numStdDevs)
			if tc.wantErrorMsg != "" {
				assert.ErrorContains(t, err, tc.wantErrorMsg)
				return
			}
			assert.NoError(t, err)
			tc.validate(t, result)
		})
	}
}

func TestUpperBound(t *testing.T) {
	testCases := []struct {
		name         string
		numSamples   uint64
		theta        float64
		numStdDevs   uint
		wantErrorMsg string
		validate     func(t *testing.T, result float64)
	}{
		{
			name:       "theta == 1.0",
			numSamples: 100, theta: 1.0, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.Equal(t, 100.0, result)
			},
		},
		{
			name:       "numSamples == 0",
			numSamples: 0, theta: 0.5, numStdDevs: 2,
			validate: func(t *testing.T, result float64) {
				assert.Greater(t, result, 0.0)
			},
		},
		{
			name:       "numSamples > 120",
			numSamples: 500, theta: 0.5, numStdDevs: 2,
			validate: func(t *testing.T, result float64) {
				assert.GreaterOrEqual(t, result, 1000.0)
			},
		},
		{
			name:       "1 <= numSamples <= 120 AND theta > (1-1e-5)",
			numSamples: 50, theta: 1.0 - 1e-6, numStdDevs: 3,
			validate: func(t *testing.T, result float64) {
				assert.Equal(t, 51.0, result)
			},
		},
		{
			name:       "1 <= numSamples <= 120 AND theta < numSamples/360",
			numSamples: 100, theta: 0.001, numStdDevs: 2,
			validate: func(t *testing.T, result float64) {
				assert.GreaterOrEqual(t, result, 100000.0)
			},
		},
		{
			name:       "1 <= numSamples <= 120 AND middle range theta (exact calculation)",
			numSamples: 10, theta: 0.5, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.GreaterOrEqual(t, result, 20.0)
				assert.LessOrEqual(t, result, 40.0)
			},
		},
		{
			name:       "theta=0",
			numSamples: 10, theta: 0.0, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.True(t, math.IsNaN(result) || math.IsInf(result, 1))
			},
		},
		{
			name:       "estimate clamping case",
			numSamples: 10, theta: 0.9, numStdDevs: 1,
			validate: func(t *testing.T, result float64) {
				assert.GreaterOrEqual(t, result, 10.0/0.9)
			},
		},
		{
			name:       "invalid theta < 0",
			numSamples: 100, theta: -0.1, numStdDevs: 1,
			wantErrorMsg: "theta must be in [0, 1]",
		},
		{
			name:       "invalid stddev = 0",
			numSamples: 100, theta: 0.5, numStdDevs: 0,
			wantErrorMsg: "numStdDevs must be 1, 2 or 3",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := UpperBound(tc.numSamples, tc.theta, tc.numStdDevs)
			if tc.wantErrorMsg != "" {
				assert.ErrorContains(t, err, tc.wantErrorMsg)
				return
			}
			assert.NoError(t, err)
			tc.validate(t, result)
		})
	}
}

func TestBoundsSandwichEstimate(t *testing.T) {
	for _, numSamples := range []uint64{2, 10, 50, 120, 121, 1000} {
		for _, theta := range []float64{0.9, 0.5, 0.1} {
			for numStdDevs := uint(1); numStdDevs <= 3; numStdDevs++ {
				lb, err := LowerBound(numSamples, theta, numStdDevs)
				assert.NoError(t, err)
				ub, err := UpperBound(numSamples, theta, numStdDevs)
				assert.NoError(t, err)
				est := float64(numSamples) / theta
				assert.LessOrEqual(t, lb, est)
				assert.GreaterOrEqual(t, ub, est)
			}
		}
	}
}
