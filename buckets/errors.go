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
	"math"

	"github.com/efficientgo/core/errors"
)

// ErrInvalidArgument is wrapped by every error returned for parameters that
// cannot produce a valid bucket layout. Use errors.Is to check for it.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// checkFinite returns an error naming the first parameter that is NaN or
// infinite.
func checkFinite(names []string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidArgf("%s must be a finite number, got %v", names[i], v)
		}
	}
	return nil
}
