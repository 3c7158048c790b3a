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

// Package buckets computes the upper bounds used to bucketize observations in
// histogram metrics.
//
// Three layouts are provided:
//
//   - LinearBuckets: count bounds, each width apart, starting at start.
//   - ExponentialBuckets: count bounds, each factor times the previous one.
//   - LogLinearBuckets: bounds grouped by powers of a base, every magnitude
//     split into the same number of equally wide buckets. This is the layout
//     produced by DTrace's llquantize aggregation, and it keeps the relative
//     error of a bucket roughly constant over many orders of magnitude.
//
// All generators are pure functions. They validate their input before doing
// any work and return an error wrapping ErrInvalidArgument if a parameter is
// out of range. The returned slice belongs to the caller. It is meant to be
// handed to the Buckets field of prometheus.HistogramOpts (or any other
// histogram implementation) and not modified afterwards. The final +Inf
// bucket is never part of the returned slice.
//
// Params bundles the parameters of any of the layouts so that bucket layouts
// can be read from configuration files.
package buckets
