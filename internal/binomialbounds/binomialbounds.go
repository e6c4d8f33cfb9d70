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

// Package binomialbounds computes confidence bounds for the number of
// distinct items fed to a sampling sketch, given the number of retained
// samples and the sampling probability theta.
//
// The retained count k of a sketch over n distinct items is binomially
// distributed with parameters (n, theta). The bounds returned here invert
// that relationship: the lower bound is the smallest n that makes the
// observed k plausible at the requested confidence, the upper bound the
// largest. Small-sample ranges use the exact binomial tail; large samples
// use the classic Gaussian continuity approximation.
package binomialbounds

import (
	"errors"
	"math"
)

const (
	// Above this count the Gaussian approximation to the binomial is accurate
	// enough for all supported confidence levels.
	contClassicThreshold = 120

	// Thresholds splitting the small-sample range into the near-certain,
	// near-impossible and exact regimes.
	thetaNearOne     = 1.0 - 1e-5
	thetaTinyDivisor = 360.0

	// Backstop for the exact tail searches.
	maxTailSearch = 1 << 20
)

var (
	errTheta      = errors.New("theta must be in [0, 1]")
	errNumStdDevs = errors.New("numStdDevs must be 1, 2 or 3")
)

// LowerBound returns an approximate lower bound on the number of distinct
// items, given numSamples retained entries and the sampling fraction theta.
// numStdDevs selects the confidence level (1, 2 or 3 standard deviations).
func LowerBound(numSamples uint64, theta float64, numStdDevs uint) (float64, error) {
	if err := checkArgs(theta, numStdDevs); err != nil {
		return 0, err
	}
	if numSamples == 0 {
		return 0, nil
	}
	if theta == 1.0 {
		return float64(numSamples), nil
	}
	lb := approxLowerBound(numSamples, theta, numStdDevs)
	numSamplesF := float64(numSamples)
	est := numSamplesF / theta
	// The true count can never be below the retained count, nor can a lower
	// bound exceed the estimate.
	return math.Min(est, math.Max(numSamplesF, lb)), nil
}

// UpperBound returns an approximate upper bound on the number of distinct
// items, given numSamples retained entries and the sampling fraction theta.
// numStdDevs selects the confidence level (1, 2 or 3 standard deviations).
func UpperBound(numSamples uint64, theta float64, numStdDevs uint) (float64, error) {
	if err := checkArgs(theta, numStdDevs); err != nil {
		return 0, err
	}
	if theta == 1.0 {
		return float64(numSamples), nil
	}
	ub := approxUpperBound(numSamples, theta, numStdDevs)
	est := float64(numSamples) / theta
	return math.Max(est, ub), nil
}

func checkArgs(theta float64, numStdDevs uint) error {
	if theta < 0 || theta > 1 {
		return errTheta
	}
	if numStdDevs < 1 || numStdDevs > 3 {
		return errNumStdDevs
	}
	return nil
}

func approxLowerBound(numSamples uint64, theta float64, numStdDevs uint) float64 {
	delta := deltaOfNumStdDevs(numStdDevs)
	numSamplesF := float64(numSamples)

	if numSamples == 1 {
		return math.Floor(math.Log(1.0-delta) / math.Log(1.0-theta))
	}
	if numSamples > contClassicThreshold {
		return contClassicLB(numSamplesF, theta, float64(numStdDevs)) - 0.5
	}
	// 2 <= numSamples <= 120 from here on.
	if theta > thetaNearOne {
		return numSamplesF
	}
	if theta < numSamplesF/thetaTinyDivisor {
		return contClassicLB(numSamplesF, theta, float64(numStdDevs)) - 0.5
	}
	return exactLowerBound(numSamples, theta, delta)
}

func approxUpperBound(numSamples uint64, theta float64, numStdDevs uint) float64 {
	delta := deltaOfNumStdDevs(numStdDevs)
	numSamplesF := float64(numSamples)

	if numSamples == 0 {
		return math.Ceil(math.Log(delta) / math.Log(1.0-theta))
	}
	if numSamples > contClassicThreshold {
		return contClassicUB(numSamplesF, theta, float64(numStdDevs)) + 0.5
	}
	// 1 <= numSamples <= 120 from here on.
	if theta > thetaNearOne {
		return numSamplesF + 1.0
	}
	if theta < numSamplesF/thetaTinyDivisor {
		return contClassicUB(numSamplesF, theta, float64(numStdDevs)) + 0.5
	}
	return exactUpperBound(numSamples, theta, delta)
}

// contClassicLB is the classic Gaussian approximation with continuity
// correction, solved for the lower end of the interval.
func contClassicLB(numSamplesF, theta, numStdDevs float64) float64 {
	nHat := (numSamplesF - 0.5) / theta
	b := numStdDevs * math.Sqrt((1.0-theta)/theta)
	d := 0.5 * b * math.Sqrt((b*b)+(4.0*nHat))
	center := nHat + (0.5 * (b * b))
	return center - d
}

// contClassicUB is the upper-end counterpart of contClassicLB.
func contClassicUB(numSamplesF, theta, numStdDevs float64) float64 {
	nHat := (numSamplesF + 0.5) / theta
	b := numStdDevs * math.Sqrt((1.0-theta)/theta)
	d := 0.5 * b * math.Sqrt((b*b)+(4.0*nHat))
	center := nHat + (0.5 * (b * b))
	return center + d
}

// exactLowerBound finds the smallest n >= numSamples for which observing at
// least numSamples successes has probability greater than delta.
func exactLowerBound(numSamples uint64, theta, delta float64) float64 {
	k := int(numSamples)
	for n := k; n < maxTailSearch; n++ {
		if binomialTailGE(n, k, theta) > delta {
			return float64(n)
		}
	}
	return float64(maxTailSearch)
}

// exactUpperBound finds the largest n for which observing at most numSamples
// successes still has probability at least delta.
func exactUpperBound(numSamples uint64, theta, delta float64) float64 {
	k := int(numSamples)
	// P[X <= k] is 1 at n == k and decreases monotonically with n.
	for n := k + 1; n < maxTailSearch; n++ {
		if binomialTailLE(n, k, theta) < delta {
			return float64(n - 1)
		}
	}
	return float64(maxTailSearch)
}

// binomialTailGE returns P[X >= k] for X ~ Binomial(n, p).
func binomialTailGE(n, k int, p float64) float64 {
	tot := 0.0
	for j := k; j <= n; j++ {
		tot += binomialPmf(n, j, p)
	}
	return tot
}

// binomialTailLE returns P[X <= k] for X ~ Binomial(n, p).
func binomialTailLE(n, k int, p float64) float64 {
	tot := 0.0
	for j := 0; j <= k; j++ {
		tot += binomialPmf(n, j, p)
	}
	return tot
}

func binomialPmf(n, j int, p float64) float64 {
	lgN, _ := math.Lgamma(float64(n) + 1)
	lgJ, _ := math.Lgamma(float64(j) + 1)
	lgNJ, _ := math.Lgamma(float64(n-j) + 1)
	logPmf := lgN - lgJ - lgNJ +
		float64(j)*math.Log(p) + float64(n-j)*math.Log(1.0-p)
	return math.Exp(logPmf)
}

func deltaOfNumStdDevs(numStdDevs uint) float64 {
	return normalCDF(-1.0 * float64(numStdDevs))
}

// normalCDF approximates the standard normal CDF via the erf approximation
// below.
func normalCDF(x float64) float64 {
	return 0.5 * (1.0 + erf(x/math.Sqrt(2.0)))
}

// erf approximates erf() to roughly 7 decimal digits using Abramowitz and
// Stegun formula 7.1.28, p. 88.
func erf(x float64) float64 {
	if x < 0.0 {
		return -1.0 * erfOfNonneg(-1.0*x)
	}
	return erfOfNonneg(x)
}

func erfOfNonneg(x float64) float64 {
	// The constants, formatted for easy checking against the book.
	//    a1 = 0.07052 30784
	//    a3 = 0.00927 05272
	//    a5 = 0.00027 65672
	//    a2 = 0.04228 20123
	//    a4 = 0.00015 20143
	//    a6 = 0.00004 30638
	const a1 = 0.0705230784
	const a3 = 0.0092705272
	const a5 = 0.0002765672
	const a2 = 0.0422820123
	const a4 = 0.0001520143
	const a6 = 0.0000430638

	x2 := x * x
	x3 := x2 * x
	x4 := x2 * x2
	x5 := x2 * x3
	x6 := x3 * x3

	sum := 1.0 +
		(a1 * x) +
		(a2 * x2) +
		(a3 * x3) +
		(a4 * x4) +
		(a5 * x5) +
		(a6 * x6)

	sum2 := sum * sum // raise the sum to the 16th power
	sum4 := sum2 * sum2
	sum8 := sum4 * sum4
	sum16 := sum8 * sum8

	return 1.0 - (1.0 / sum16)
}
