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

	"github.com/montanaflynn/stats"
)

// Metrics are held-out scores averaged uniformly over outputs.
type Metrics struct {
	// MAE Mean Absolute Error.
	MAE float64 `json:"mae"`

	// MSE Mean Squared Error.
	MSE float64 `json:"mse"`

	// RMSE Root Mean Square Error of the averaged MSE.
	RMSE float64 `json:"rmse"`

	// R² coefficient of determination.
	R2 float64 `json:"r2"`
}

// Evaluate scores predicted rows against actual rows.
func Evaluate(predicted, actual [][]float64) (Metrics, error) {
	if len(actual) == 0 || len(predicted) != len(actual) {
		return Metrics{}, fmt.Errorf("%w: evaluate %d predictions against %d rows", ErrDataInsufficient, len(predicted), len(actual))
	}

	width := len(actual[0])
	var m Metrics
	label := make(stats.Float64Data, len(actual))
	for k := 0; k < width; k++ {
		var maeSum, mseSum float64
		for i := range actual {
			diff := actual[i][k] - predicted[i][k]
			maeSum += math.Abs(diff)
			mseSum += diff * diff
			label[i] = actual[i][k]
		}

		mean, err := stats.Mean(label)
		if err != nil {
			return Metrics{}, err
		}

		var tssSum float64
		for _, v := range label {
			tssSum += (v - mean) * (v - mean)
		}

		r2 := 1 - mseSum/tssSum
		if tssSum == 0 {
			r2 = 0
			if mseSum == 0 {
				r2 = 1
			}
		}

		n := float64(len(actual))
		m.MAE += maeSum / n
		m.MSE += mseSum / n
		m.R2 += r2
	}

	m.MAE /= float64(width)
	m.MSE /= float64(width)
	m.R2 /= float64(width)
	m.RMSE = math.Sqrt(m.MSE)
	if err := m.CheckEval(); err != nil {
		return Metrics{}, err
	}

	return m, nil
}

func (m Metrics) CheckEval() error {
	if math.IsNaN(m.MAE) || math.IsNaN(m.MSE) || math.IsNaN(m.RMSE) || math.IsNaN(m.R2) {
		return ErrModelNaN
	}

	return nil
}
