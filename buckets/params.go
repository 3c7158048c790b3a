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

import (
	"fmt"
	"strings"
)

// Algorithm names a bucket layout.
type Algorithm string

// Supported layouts. The zero value is not valid.
const (
	Linear      Algorithm = "linear"
	Exponential Algorithm = "exponential"
	LogLinear   Algorithm = "loglinear"
	// Explicit takes the bounds verbatim from Params.Bounds.
	Explicit Algorithm = "explicit"
)

// Params describes a bucket layout together with the parameters of its
// generator. Only the fields used by Type are read:
//
//   - Linear: Start, Width, Count.
//   - Exponential: Start, Factor, Count.
//   - LogLinear: Base, SmallestMagnitude, LargestMagnitude, BucketsPerMagnitude.
//   - Explicit: Bounds.
//
// Params can be decoded from YAML and JSON, which is how bucket layouts are
// usually put into configuration files.
type Params struct {
	Type Algorithm `yaml:"type" json:"type"`

	Start  float64 `yaml:"start,omitempty" json:"start,omitempty"`
	Width  float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Factor float64 `yaml:"factor,omitempty" json:"factor,omitempty"`
	Count  int     `yaml:"count,omitempty" json:"count,omitempty"`

	Base                float64 `yaml:"base,omitempty" json:"base,omitempty"`
	SmallestMagnitude   int     `yaml:"smallest_magnitude,omitempty" json:"smallest_magnitude,omitempty"`
	LargestMagnitude    int     `yaml:"largest_magnitude,omitempty" json:"largest_magnitude,omitempty"`
	BucketsPerMagnitude int     `yaml:"buckets_per_magnitude,omitempty" json:"buckets_per_magnitude,omitempty"`

	Bounds []float64 `yaml:"bounds,omitempty" json:"bounds,omitempty"`
}

// Generate returns the bucket bounds described by p. The result is a fresh
// slice owned by the caller, also for Explicit layouts.
func (p Params) Generate() ([]float64, error) {
	switch p.normalizedType() {
	case Linear:
		return LinearBuckets(p.Start, p.Width, p.Count)
	case Exponential:
		return ExponentialBuckets(p.Start, p.Factor, p.Count)
	case LogLinear:
		return LogLinearBuckets(p.Base, p.SmallestMagnitude, p.LargestMagnitude, p.BucketsPerMagnitude)
	case Explicit:
		if err := Validate(p.Bounds); err != nil {
			return nil, err
		}
		return append([]float64(nil), p.Bounds...), nil
	case "":
		return nil, invalidArgf("bucket layout type is required")
	default:
		return nil, invalidArgf("unknown bucket layout type %q", p.Type)
	}
}

func (p Params) normalizedType() Algorithm {
	return Algorithm(strings.ToLower(strings.TrimSpace(string(p.Type))))
}

// String returns the layout in the notation of the generator call, for
// example "loglinear(base=10, magnitudes=-3..1, per_magnitude=4)".
func (p Params) String() string {
	switch t := p.normalizedType(); t {
	case Linear:
		return fmt.Sprintf("linear(start=%v, width=%v, count=%d)", p.Start, p.Width, p.Count)
	case Exponential:
		return fmt.Sprintf("exponential(start=%v, factor=%v, count=%d)", p.Start, p.Factor, p.Count)
	case LogLinear:
		return fmt.Sprintf("loglinear(base=%v, magnitudes=%d..%d, per_magnitude=%d)",
			p.Base, p.SmallestMagnitude, p.LargestMagnitude, p.BucketsPerMagnitude)
	case Explicit:
		return fmt.Sprintf("explicit(%v)", p.Bounds)
	default:
		return fmt.Sprintf("unknown(%q)", string(p.Type))
	}
}
