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

package histogram

import (
	"github.com/efficientgo/core/errors"
	"go.opentelemetry.io/otel/metric"

	"github.com/prometheus/histbuckets/buckets"
)

// OTelOptions returns the options to create an OpenTelemetry float64
// histogram with the explicit bucket boundaries described by p, followed by
// extra.
func OTelOptions(p buckets.Params, extra ...metric.Float64HistogramOption) ([]metric.Float64HistogramOption, error) {
	b, err := p.Generate()
	if err != nil {
		return nil, errors.Wrapf(err, "generate %v", p)
	}
	return append([]metric.Float64HistogramOption{metric.WithExplicitBucketBoundaries(b...)}, extra...), nil
}
