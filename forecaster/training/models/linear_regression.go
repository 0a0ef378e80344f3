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

package models

import (
	"fmt"
	"math"

	"github.com/sajari/regression"
	"github.com/sjwhitworth/golearn/base"
)

// LinearRegression fits one ordinary least squares model per class attribute.
type LinearRegression struct {
	Fitted       bool        `json:"fitted"`
	Attrs        []string    `json:"attrs"`
	Classes      []string    `json:"classes"`
	Intercepts   []float64   `json:"intercepts"`
	Coefficients [][]float64 `json:"coefficients"`
}

// NewLinearRegression return an instance of linear regression model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{Fitted: false}
}

func (lr *LinearRegression) Type() string {
	return TypeLinearRegression
}

// Fit solves least squares for every class attribute. Constant columns and
// columns linearly dependent on earlier ones carry no information and keep a
// zero coefficient.
func (lr *LinearRegression) Fit(inst base.FixedDataGrid) error {
	s, err := extract(inst)
	if err != nil {
		return err
	}

	varying := independentColumns(s.x, len(s.attrs))

	// sajari/regression refuses fewer than three observations.
	need := len(varying) + 1
	if need < 3 {
		need = 3
	}
	if len(s.x) < need {
		return fmt.Errorf("%w: linear regression needs %d rows, got %d", ErrInsufficientRows, need, len(s.x))
	}

	intercepts := make([]float64, len(s.classes))
	coefficients := make([][]float64, len(s.classes))
	for k, class := range s.classes {
		coefficients[k] = make([]float64, len(s.attrs))
		if len(varying) == 0 {
			intercepts[k] = mean(s.y, allRows(len(s.y)), len(s.classes))[k]
			continue
		}

		r := new(regression.Regression)
		r.SetObserved(class)
		for j, col := range varying {
			r.SetVar(j, s.attrs[col])
		}

		for i, row := range s.x {
			vars := make([]float64, len(varying))
			for j, col := range varying {
				vars[j] = row[col]
			}

			r.Train(regression.DataPoint(s.y[i][k], vars))
		}

		if err := r.Run(); err != nil {
			return fmt.Errorf("fit %s: %w", class, err)
		}

		coeffs := r.GetCoeffs()
		intercepts[k] = coeffs[0]
		for j, col := range varying {
			coefficients[k][col] = coeffs[j+1]
		}
	}

	lr.Attrs = s.attrs
	lr.Classes = s.classes
	lr.Intercepts = intercepts
	lr.Coefficients = coefficients
	lr.Fitted = true
	return nil
}

// Predict use parameters of model to predict the data provided.
func (lr *LinearRegression) Predict(X base.FixedDataGrid) (base.FixedDataGrid, error) {
	if !lr.Fitted {
		return nil, ErrNotFitted
	}

	return predictGrid(X, lr.Attrs, lr.Classes, lr.predictRow)
}

func (lr *LinearRegression) predictRow(row []float64) []float64 {
	out := make([]float64, len(lr.Classes))
	for k := range lr.Classes {
		out[k] = lr.Intercepts[k]
		for j, v := range row {
			out[k] += v * lr.Coefficients[k][j]
		}
	}

	return out
}

// dependenceTolerance is the relative residual norm under which a centered
// column counts as a combination of the columns kept before it.
const dependenceTolerance = 1e-9

// independentColumns returns, in attribute order, the columns whose centered
// values are not a linear combination of the columns kept before them.
func independentColumns(x [][]float64, width int) []int {
	var (
		cols  []int
		basis [][]float64
	)

	for j := 0; j < width; j++ {
		v := make([]float64, len(x))
		var m float64
		for i := range x {
			m += x[i][j]
		}
		m /= float64(len(x))

		for i := range x {
			v[i] = x[i][j] - m
		}

		norm := l2(v)
		if norm == 0 {
			continue
		}

		for _, b := range basis {
			var dot float64
			for i := range v {
				dot += v[i] * b[i]
			}

			for i := range v {
				v[i] -= dot * b[i]
			}
		}

		residual := l2(v)
		if residual <= dependenceTolerance*norm {
			continue
		}

		for i := range v {
			v[i] /= residual
		}

		basis = append(basis, v)
		cols = append(cols, j)
	}

	return cols
}

func l2(v []float64) float64 {
	var sum float64
	for _, e := range v {
		sum += e * e
	}

	return math.Sqrt(sum)
}

func allRows(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}
