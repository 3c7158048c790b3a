// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package buckets

import "math"

// decimalPlaces is the precision log-linear bounds are rounded to.
const decimalPlaces = 4

var roundingScale = math.Pow(10, decimalPlaces)

// exactAbove is 2^52. From there on every float64 is an integer, and scaling
// it by roundingScale could overflow.
const exactAbove = 1 << 52

// round rounds v to decimalPlaces, halves away from zero. It removes the
// noise of the float divisions, so 10/33 becomes 0.303 and 2/3 becomes 0.6667.
func round(v float64) float64 {
	if math.Abs(v) >= exactAbove {
		return v
	}
	return math.Round(v*roundingScale) / roundingScale
}

// lowestVisibleMagnitude returns a magnitude at or below the lowest one of
// base whose top bound base^(m+1) does not round to 0. Magnitudes below it
// contribute no bounds.
func lowestVisibleMagnitude(base float64, smallestMagnitude int) int {
	m := math.Ceil(math.Log(0.5/roundingScale)/math.Log(base)) - 2
	if m <= float64(smallestMagnitude) {
		return smallestMagnitude
	}
	return int(m)
}

// LogLinearBuckets creates buckets grouped by magnitude, modeled after DTrace's
// llquantize. For every magnitude m from smallestMagnitude to largestMagnitude
// (both inclusive) the range up to base^(m+1) is divided into
// bucketsPerMagnitude equally wide buckets, i.e. the bounds are k*base^(m+1)/
// bucketsPerMagnitude for k = 1..bucketsPerMagnitude.
//
// Bounds that a magnitude shares with the magnitudes below it are not
// repeated. When some of its buckets fall at or below the bounds already
// emitted, the remaining buckets of that magnitude are spread evenly between
// the highest emitted bound and base^(m+1) instead. For example base 10,
// magnitudes 0 to 1 with 10 buckets each yields 1, 2, ..., 10, 20, ..., 100,
// and base 2, magnitudes 0 to 6 with 2 buckets each yields 1, 2, 4, ..., 128.
//
// Every bound is rounded to four decimal places. Bounds that collapse onto
// the previous one after rounding are dropped, so the result is always
// strictly increasing.
//
// An error wrapping ErrInvalidArgument is returned if 'base' is less than or
// equal 1, if 'largestMagnitude' is less than 'smallestMagnitude', if
// 'bucketsPerMagnitude' is zero or negative, if the highest bound is not
// representable, or if more than 2^24 candidate bounds would have to be
// computed.
// Magnitudes whose bounds all round to 0 are skipped without being visited.
func LogLinearBuckets(base float64, smallestMagnitude, largestMagnitude, bucketsPerMagnitude int) ([]float64, error) {
	if err := checkFinite([]string{"base"}, base); err != nil {
		return nil, err
	}
	if base <= 1 {
		return nil, invalidArgf("base must be > 1, got %v", base)
	}
	if largestMagnitude < smallestMagnitude {
		return nil, invalidArgf(
			"largest magnitude must be >= smallest magnitude, got %d < %d",
			largestMagnitude, smallestMagnitude,
		)
	}
	if bucketsPerMagnitude < 1 {
		return nil, invalidArgf("buckets per magnitude must be > 0, got %d", bucketsPerMagnitude)
	}
	if top := math.Pow(base, float64(largestMagnitude)+1); math.IsInf(top, 0) {
		return nil, invalidArgf("largest bucket %v^%d overflows", base, largestMagnitude+1)
	}

	first := lowestVisibleMagnitude(base, smallestMagnitude)
	if span := int64(largestMagnitude) - int64(first) + 1; span > maxCandidates/int64(bucketsPerMagnitude) {
		return nil, invalidArgf(
			"%d magnitudes of base %v with %d buckets each exceed the limit of %d candidate bounds",
			span, base, bucketsPerMagnitude, maxCandidates,
		)
	}

	var (
		buckets = make([]float64, 0, capacityHint(first, largestMagnitude, bucketsPerMagnitude))
		last    float64
		perMag  = float64(bucketsPerMagnitude)
	)
	for m := first; m <= largestMagnitude; m++ {
		hi := math.Pow(base, float64(m)+1)
		step := hi / perMag

		above := 0
		for k := 1; k <= bucketsPerMagnitude; k++ {
			if round(float64(k)*step) > last {
				above++
			}
		}

		switch {
		case above == 0:
			continue
		case above == bucketsPerMagnitude:
			for k := 1; k <= bucketsPerMagnitude; k++ {
				buckets, last = appendBound(buckets, last, round(float64(k)*step))
			}
		default:
			lo := last
			width := (hi - lo) / float64(above)
			for j := 1; j <= above; j++ {
				buckets, last = appendBound(buckets, last, round(lo+float64(j)*width))
			}
		}
	}
	if len(buckets) == 0 {
		return nil, invalidArgf(
			"no bucket bound of base %v between magnitudes %d and %d survives rounding to %d decimal places",
			base, smallestMagnitude, largestMagnitude, decimalPlaces,
		)
	}
	return buckets, nil
}

// maxCandidates bounds the work of a single call. Base 2 spans about 1100
// magnitudes between 0.0001 and the float64 maximum, so only bases very close
// to 1 or absurd bucket counts reach it.
const maxCandidates = 1 << 24

// maxPrealloc caps the capacity reserved up front for very wide layouts.
const maxPrealloc = 1 << 12

func capacityHint(smallestMagnitude, largestMagnitude, bucketsPerMagnitude int) int {
	span := int64(largestMagnitude) - int64(smallestMagnitude) + 1
	if span < 1 {
		return 0
	}
	if span > maxPrealloc || int64(bucketsPerMagnitude) > maxPrealloc || span*int64(bucketsPerMagnitude) > maxPrealloc {
		return maxPrealloc
	}
	return int(span) * bucketsPerMagnitude
}

// appendBound appends v if it is above last and returns the new highest bound.
func appendBound(buckets []float64, last, v float64) ([]float64, float64) {
	if v <= last {
		return buckets, last
	}
	return append(buckets, v), v
}
