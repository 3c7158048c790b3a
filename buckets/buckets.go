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

// LinearBuckets creates 'count' buckets, each 'width' wide, where the lowest
// bucket has an upper bound of 'start'. The i-th bound is computed as
// start + i*width so that no error accumulates over long layouts.
//
// An error wrapping ErrInvalidArgument is returned if 'start' or 'width' is
// not strictly positive, if 'count' is zero or negative, or if 'width' is too
// small to separate two bounds at the magnitude of 'start'.
func LinearBuckets(start, width float64, count int) ([]float64, error) {
	if err := checkFinite([]string{"min", "width"}, start, width); err != nil {
		return nil, err
	}
	if start <= 0 {
		return nil, invalidArgf("min must be > 0, got %v", start)
	}
	if width <= 0 {
		return nil, invalidArgf("width must be > 0, got %v", width)
	}
	if count < 1 {
		return nil, invalidArgf("count must be > 0, got %d", count)
	}
	buckets := make([]float64, count)
	for i := range buckets {
		buckets[i] = start + float64(i)*width
		if math.IsInf(buckets[i], 0) {
			return nil, invalidArgf("largest bucket overflows: %v + %d*%v", start, count-1, width)
		}
		if i > 0 && buckets[i] <= buckets[i-1] {
			return nil, invalidArgf("width %v is below the float64 precision at %v", width, buckets[i-1])
		}
	}
	return buckets, nil
}

// ExponentialBuckets creates 'count' buckets, where the lowest bucket has an
// upper bound of 'start' and each following bucket's upper bound is 'factor'
// times the previous bucket's upper bound.
//
// An error wrapping ErrInvalidArgument is returned if 'start' is not strictly
// positive, if 'factor' is less than or equal 1, or if 'count' is zero or
// negative.
func ExponentialBuckets(start, factor float64, count int) ([]float64, error) {
	if err := checkFinite([]string{"min", "factor"}, start, factor); err != nil {
		return nil, err
	}
	if start <= 0 {
		return nil, invalidArgf("min must be > 0, got %v", start)
	}
	if factor <= 1 {
		return nil, invalidArgf("factor must be > 1, got %v", factor)
	}
	if count < 1 {
		return nil, invalidArgf("count must be > 0, got %d", count)
	}
	buckets := make([]float64, count)
	for i := range buckets {
		buckets[i] = start
		if math.IsInf(start, 0) {
			return nil, invalidArgf("largest bucket overflows after %d multiplications by %v", count-1, factor)
		}
		if i > 0 && buckets[i] <= buckets[i-1] {
			return nil, invalidArgf("factor %v is below the float64 precision at %v", factor, buckets[i-1])
		}
		start *= factor
	}
	return buckets, nil
}

// MustLinearBuckets is like LinearBuckets but panics on invalid input. It is
// meant for package level variables holding a fixed layout.
func MustLinearBuckets(start, width float64, count int) []float64 {
	b, err := LinearBuckets(start, width, count)
	if err != nil {
		panic(err)
	}
	return b
}

// MustExponentialBuckets is like ExponentialBuckets but panics on invalid
// input.
func MustExponentialBuckets(start, factor float64, count int) []float64 {
	b, err := ExponentialBuckets(start, factor, count)
	if err != nil {
		panic(err)
	}
	return b
}

// MustLogLinearBuckets is like LogLinearBuckets but panics on invalid input.
func MustLogLinearBuckets(base float64, smallestMagnitude, largestMagnitude, bucketsPerMagnitude int) []float64 {
	b, err := LogLinearBuckets(base, smallestMagnitude, largestMagnitude, bucketsPerMagnitude)
	if err != nil {
		panic(err)
	}
	return b
}

// Validate checks that bounds is usable as a bucket layout: it must not be
// empty, and its values must be finite and strictly increasing.
func Validate(bounds []float64) error {
	if len(bounds) == 0 {
		return invalidArgf("at least one bucket bound is required")
	}
	for i, b := range bounds {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return invalidArgf("bucket bound %d must be a finite number, got %v", i, b)
		}
		if i > 0 && b <= bounds[i-1] {
			return invalidArgf("bucket bounds must be strictly increasing, got %v after %v", b, bounds[i-1])
		}
	}
	return nil
}
