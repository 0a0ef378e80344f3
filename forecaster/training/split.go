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
	"math"
	"math/rand"
)

// Split shuffles n row indices with seed and holds out round(n*testPercent)
// of them, both partitions must be non-empty.
func Split(n int, testPercent float64, seed int64) ([]int, []int, error) {
	testCount := int(math.Round(float64(n) * testPercent))
	if testCount < 1 || n-testCount < 1 {
		return nil, nil, fmt.Errorf("%w: %d rows with test percent %v leave %d test rows", ErrDataInsufficient, n, testPercent, testCount)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return perm[testCount:], perm[:testCount], nil
}

func pick(rows [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = rows[j]
	}

	return out
}
