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

// Package histogram hands bucket layouts generated by package buckets to the
// histogram implementations of the Prometheus and OpenTelemetry Go clients.
//
// The generated bounds are passed on unmodified and become the fixed bucket
// configuration of the created histogram.
package histogram

import (
	"github.com/efficientgo/core/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/prometheus/histbuckets/buckets"
)

// Opts returns a copy of opts with the Buckets field set to the layout
// described by p. It fails if opts already carries buckets, as one of the two
// would silently be ignored otherwise.
func Opts(opts prometheus.HistogramOpts, p buckets.Params) (prometheus.HistogramOpts, error) {
	if len(opts.Buckets) > 0 {
		return opts, errors.Newf("histogram %q: buckets set both explicitly and as %v", opts.Name, p)
	}
	b, err := p.Generate()
	if err != nil {
		return opts, errors.Wrapf(err, "histogram %q: generate %v", opts.Name, p)
	}
	opts.Buckets = b
	return opts, nil
}

// NewHistogram creates a Histogram whose buckets are generated from p.
func NewHistogram(opts prometheus.HistogramOpts, p buckets.Params) (prometheus.Histogram, error) {
	o, err := Opts(opts, p)
	if err != nil {
		return nil, err
	}
	return prometheus.NewHistogram(o), nil
}

// NewHistogramVec creates a HistogramVec partitioned by labelNames whose
// buckets are generated from p.
func NewHistogramVec(opts prometheus.HistogramOpts, p buckets.Params, labelNames []string) (*prometheus.HistogramVec, error) {
	o, err := Opts(opts, p)
	if err != nil {
		return nil, err
	}
	return prometheus.NewHistogramVec(o, labelNames), nil
}
