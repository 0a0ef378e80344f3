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

	"github.com/montanaflynn/stats"
)

// StandardScaler removes the mean and scales to unit variance per column.
type StandardScaler struct {
	Means  []float64 `json:"means"`
	Scales []float64 `json:"scales"`
}

// FitScaler computes column means and population standard deviations,
// constant columns get a scale of one.
func FitScaler(x [][]float64) (*StandardScaler, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: fit scaler on empty rows", ErrDataInsufficient)
	}

	width := len(x[0])
	s := &StandardScaler{
		Means:  make([]float64, width),
		Scales: make([]float64, width),
	}

	col := make(stats.Float64Data, len(x))
	for j := 0; j < width; j++ {
		for i, row := range x {
			col[i] = row[j]
		}

		m, err := stats.Mean(col)
		if err != nil {
			return nil, err
		}

		sd, err := stats.StandardDeviationPopulation(col)
		if err != nil {
			return nil, err
		}

		if sd == 0 {
			sd = 1
		}

		s.Means[j] = m
		s.Scales[j] = sd
	}

	return s, nil
}

// Transform returns scaled copies of the rows.
func (s *StandardScaler) Transform(x [][]float64) ([][]float64, error) {
	out := make([][]float64, len(x))
	for i, row := range x {
		if len(row) != len(s.Means) {
			return nil, fmt.Errorf("row %d has %d columns, scaler has %d", i, len(row), len(s.Means))
		}

		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Means[j]) / s.Scales[j]
		}
		out[i] = scaled
	}

	return out, nil
}
