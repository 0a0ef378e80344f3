/*
 *     Copyright 2024 The Medalcast Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package training

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// LabelEncoder maps string labels to their index in sorted order.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// FitLabelEncoder returns an encoder of the distinct values.
func FitLabelEncoder(values []string) *LabelEncoder {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}

	classes := maps.Keys(seen)
	slices.Sort(classes)
	return &LabelEncoder{Classes: classes}
}

// Transform returns the code of a label.
func (e *LabelEncoder) Transform(label string) (int, error) {
	if i := slices.Index(e.Classes, label); i >= 0 {
		return i, nil
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownLabel, label)
}
