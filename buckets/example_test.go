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

package buckets_test

import (
	"fmt"

	"github.com/prometheus/histbuckets/buckets"
)

func ExampleLinearBuckets() {
	b, err := buckets.LinearBuckets(1, 1, 10)
	if err != nil {
		panic(err)
	}
	fmt.Println(b)
	// Output: [1 2 3 4 5 6 7 8 9 10]
}

func ExampleExponentialBuckets() {
	fmt.Println(buckets.MustExponentialBuckets(1, 2, 5))
	// Output: [1 2 4 8 16]
}

func ExampleLogLinearBuckets() {
	b, err := buckets.LogLinearBuckets(10, -3, 1, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println(b)
	// Output: [0.0025 0.005 0.0075 0.01 0.025 0.05 0.075 0.1 0.25 0.5 0.75 1 2.5 5 7.5 10 25 50 75 100]
}

func ExampleLinearBuckets_invalid() {
	_, err := buckets.LinearBuckets(0, 0.1, 10)
	fmt.Println(err)
	// Output: min must be > 0, got 0: invalid argument
}
