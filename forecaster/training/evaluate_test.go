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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		predicted [][]float64
		actual    [][]float64
		expect    func(t *testing.T, m Metrics, err error)
	}{
		{
			name:      "perfect fit",
			predicted: [][]float64{{1, 2}, {3, 4}},
			actual:    [][]float64{{1, 2}, {3, 4}},
			expect: func(t *testing.T, m Metrics, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(Metrics{R2: 1}, m)
			},
		},
		{
			name:      "uniform average over outputs",
			predicted: [][]float64{{2, 1}, {2, 3}},
			actual:    [][]float64{{1, 1}, {3, 3}},
			expect: func(t *testing.T, m Metrics, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(0.5, m.MAE)
				assert.Equal(0.5, m.MSE)
				assert.InDelta(math.Sqrt(0.5), m.RMSE, 1e-12)
				assert.Equal(0.5, m.R2)
			},
		},
		{
			name:      "constant actual values",
			predicted: [][]float64{{1}, {3}},
			actual:    [][]float64{{2}, {2}},
			expect: func(t *testing.T, m Metrics, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(0.0, m.R2)
				assert.Equal(1.0, m.MSE)
			},
		},
		{
			name:      "nan prediction",
			predicted: [][]float64{{math.NaN()}, {1}},
			actual:    [][]float64{{1}, {2}},
			expect: func(t *testing.T, m Metrics, err error) {
				assert.True(t, errors.Is(err, ErrModelNaN))
			},
		},
		{
			name:      "row count mismatch",
			predicted: [][]float64{{1}},
			actual:    [][]float64{{1}, {2}},
			expect: func(t *testing.T, m Metrics, err error) {
				assert.True(t, errors.Is(err, ErrDataInsufficient))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Evaluate(tc.predicted, tc.actual)
			tc.expect(t, m, err)
		})
	}
}
